package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/leitnerflash/internal/flashcard"
	"github.com/vytor/leitnerflash/internal/models"
)

// MockReviewRepository is a mock implementation of repository.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Insert(ctx context.Context, cardID int64, difficulty flashcard.Difficulty, day int) error {
	args := m.Called(ctx, cardID, difficulty, day)
	return args.Error(0)
}

func (m *MockReviewRepository) History(ctx context.Context, profileID int64, cards map[int64]*models.Card) ([]flashcard.HistoryEntry, error) {
	args := m.Called(ctx, profileID, cards)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]flashcard.HistoryEntry), args.Error(1)
}

func (m *MockReviewRepository) Count(ctx context.Context, profileID int64) (int, error) {
	args := m.Called(ctx, profileID)
	return args.Int(0), args.Error(1)
}
