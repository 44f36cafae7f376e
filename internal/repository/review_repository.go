package repository

import (
	"context"

	"github.com/vytor/leitnerflash/internal/flashcard"
	"github.com/vytor/leitnerflash/internal/models"
)

// ReviewRepository handles the append-only review history.
type ReviewRepository interface {
	Insert(ctx context.Context, cardID int64, difficulty flashcard.Difficulty, day int) error
	// History returns the profile's reviews oldest first, resolving card IDs
	// through cards. Reviews of cards missing from cards are skipped.
	History(ctx context.Context, profileID int64, cards map[int64]*models.Card) ([]flashcard.HistoryEntry, error)
	Count(ctx context.Context, profileID int64) (int, error)
}
