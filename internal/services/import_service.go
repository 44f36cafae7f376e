package services

import (
	"context"
	stderrors "errors"

	"github.com/vytor/leitnerflash/internal/deck"
	"github.com/vytor/leitnerflash/internal/errors"
	"github.com/vytor/leitnerflash/internal/jobs"
	"github.com/vytor/leitnerflash/internal/logger"
	"github.com/vytor/leitnerflash/internal/repository"
	"github.com/vytor/leitnerflash/internal/worker"
)

// ImportService handles deck import business logic
type ImportService interface {
	// QueueImport parses the deck and hands it to the background queue.
	QueueImport(ctx context.Context, profileID int64, data []byte) (*deck.Deck, error)
	// ImportNow parses the deck and inserts its cards before returning.
	ImportNow(ctx context.Context, profileID int64, data []byte) ([]int64, error)
}

type importService struct {
	queue       jobs.JobQueue
	profileRepo repository.ProfileRepository
	cardRepo    repository.CardRepository
}

// NewImportService creates a new ImportService. queue may be nil when only
// ImportNow is used.
func NewImportService(queue jobs.JobQueue, profileRepo repository.ProfileRepository, cardRepo repository.CardRepository) ImportService {
	return &importService{queue: queue, profileRepo: profileRepo, cardRepo: cardRepo}
}

func (s *importService) parse(ctx context.Context, profileID int64, data []byte) (*deck.Deck, error) {
	profile, err := s.profileRepo.Get(ctx, profileID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("profile", profileID)
	}

	d, err := deck.Parse(data)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}
	return d, nil
}

func (s *importService) QueueImport(ctx context.Context, profileID int64, data []byte) (*deck.Deck, error) {
	log := logger.FromContext(ctx).WithField("profile_id", profileID)

	d, err := s.parse(ctx, profileID, data)
	if err != nil {
		return nil, err
	}
	if s.queue == nil {
		return nil, errors.NewInternalError(stderrors.New("import queue not configured"))
	}

	log.Info("queueing deck import: deck=%q, cards=%d", d.Name, len(d.Cards))
	if err := s.queue.EnqueueImport(profileID, d); err != nil {
		if stderrors.Is(err, worker.ErrQueueFull) || stderrors.Is(err, worker.ErrPoolStopped) {
			return nil, errors.NewBusyError("import queue unavailable, try again later", err)
		}
		return nil, errors.NewInternalError(err)
	}
	return d, nil
}

func (s *importService) ImportNow(ctx context.Context, profileID int64, data []byte) ([]int64, error) {
	d, err := s.parse(ctx, profileID, data)
	if err != nil {
		return nil, err
	}

	var ids []int64
	job := &worker.ImportDeckJob{
		CardRepo:  s.cardRepo,
		ProfileID: profileID,
		Deck:      d,
		Done:      func(got []int64, _ error) { ids = got },
	}
	if err := job.Run(ctx); err != nil {
		return nil, errors.NewInternalError(err)
	}
	return ids, nil
}
