package worker

import (
	"context"
	"fmt"

	"github.com/vytor/leitnerflash/internal/deck"
	"github.com/vytor/leitnerflash/internal/logger"
	"github.com/vytor/leitnerflash/internal/repository"
)

// ImportDeckJob inserts a parsed deck's cards for one profile. The cards
// start in bucket 0.
type ImportDeckJob struct {
	CardRepo  repository.CardRepository
	ProfileID int64
	Deck      *deck.Deck
	// Done, when set, receives the job's result.
	Done func(ids []int64, err error)
}

func (j *ImportDeckJob) Name() string { return "import_deck" }

func (j *ImportDeckJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"profile_id": j.ProfileID,
		"deck":       j.Deck.Name,
	})
	log.Info("importing %d cards", len(j.Deck.Cards))

	ids, err := j.CardRepo.InsertBatch(ctx, j.Deck.ModelCards(j.ProfileID))
	if err != nil {
		err = fmt.Errorf("import deck %q: %w", j.Deck.Name, err)
	} else {
		log.Info("imported %d cards", len(ids))
	}
	if j.Done != nil {
		j.Done(ids, err)
	}
	return err
}
