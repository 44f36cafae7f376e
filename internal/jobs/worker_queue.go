package jobs

import (
	"github.com/vytor/leitnerflash/internal/deck"
	"github.com/vytor/leitnerflash/internal/repository"
	"github.com/vytor/leitnerflash/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	importPool *worker.Pool
	cardRepo   repository.CardRepository
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(importPool *worker.Pool, cardRepo repository.CardRepository) JobQueue {
	return &WorkerQueue{
		importPool: importPool,
		cardRepo:   cardRepo,
	}
}

func (q *WorkerQueue) EnqueueImport(profileID int64, d *deck.Deck) error {
	return q.importPool.Submit(&worker.ImportDeckJob{
		CardRepo:  q.cardRepo,
		ProfileID: profileID,
		Deck:      d,
	})
}
