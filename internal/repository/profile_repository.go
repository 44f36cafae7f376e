package repository

import (
	"context"

	"github.com/vytor/leitnerflash/internal/models"
)

// ProfileRepository handles profile data access
type ProfileRepository interface {
	Get(ctx context.Context, id int64) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Upsert(ctx context.Context, username string) (*models.Profile, error)
	SetDay(ctx context.Context, id int64, day int) error
	Delete(ctx context.Context, id int64) error
}
