package repository

import (
	"context"

	"github.com/vytor/leitnerflash/internal/models"
)

// CardRepository handles card data access. New cards are placed in bucket 0.
type CardRepository interface {
	Insert(ctx context.Context, card models.Card) (int64, error)
	InsertBatch(ctx context.Context, cards []models.Card) ([]int64, error)
	Get(ctx context.Context, profileID, id int64) (*models.Card, error)
	List(ctx context.Context, filter models.CardFilter) ([]models.Card, error)
	Delete(ctx context.Context, profileID, id int64) error
}
