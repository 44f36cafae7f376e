package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/leitnerflash/internal/flashcard"
	"github.com/vytor/leitnerflash/internal/models"
)

// MockBucketRepository is a mock implementation of repository.BucketRepository
type MockBucketRepository struct {
	mock.Mock
}

func (m *MockBucketRepository) Load(ctx context.Context, profileID int64) (flashcard.BucketStore, map[int64]*models.Card, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(flashcard.BucketStore), args.Get(1).(map[int64]*models.Card), args.Error(2)
}

func (m *MockBucketRepository) Save(ctx context.Context, profileID int64, store flashcard.BucketStore) error {
	args := m.Called(ctx, profileID, store)
	return args.Error(0)
}
