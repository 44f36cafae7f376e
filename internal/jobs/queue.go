package jobs

import "github.com/vytor/leitnerflash/internal/deck"

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	EnqueueImport(profileID int64, d *deck.Deck) error
}
