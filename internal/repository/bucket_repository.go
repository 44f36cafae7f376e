package repository

import (
	"context"

	"github.com/vytor/leitnerflash/internal/flashcard"
	"github.com/vytor/leitnerflash/internal/models"
)

// BucketRepository loads and saves a profile's bucket store. Load also
// returns the loaded cards by ID so callers can resolve the pointers the
// store is keyed by.
type BucketRepository interface {
	Load(ctx context.Context, profileID int64) (flashcard.BucketStore, map[int64]*models.Card, error)
	Save(ctx context.Context, profileID int64, store flashcard.BucketStore) error
}
