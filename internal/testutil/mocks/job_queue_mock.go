package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/vytor/leitnerflash/internal/deck"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueImport(profileID int64, d *deck.Deck) error {
	args := m.Called(profileID, d)
	return args.Error(0)
}
