package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/leitnerflash/internal/deck"
	apperrors "github.com/vytor/leitnerflash/internal/errors"
	"github.com/vytor/leitnerflash/internal/models"
	"github.com/vytor/leitnerflash/internal/services"
	"github.com/vytor/leitnerflash/internal/testutil/mocks"
	"github.com/vytor/leitnerflash/internal/worker"
)

const smallDeck = "name = \"small\"\n[[cards]]\nfront = \"a\"\nback = \"b\"\n"

func TestQueueImport(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	profiles.On("Get", mock.Anything, int64(1)).Return(&models.Profile{ID: 1}, nil)
	queue := new(mocks.MockJobQueue)
	queue.On("EnqueueImport", int64(1), mock.AnythingOfType("*deck.Deck")).Return(nil)
	svc := services.NewImportService(queue, profiles, nil)

	d, err := svc.QueueImport(context.Background(), 1, []byte(smallDeck))
	require.NoError(t, err)
	assert.Equal(t, "small", d.Name)
	queue.AssertExpectations(t)
}

func TestQueueImport_Errors(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	profiles.On("Get", mock.Anything, int64(1)).Return(&models.Profile{ID: 1}, nil)
	profiles.On("Get", mock.Anything, int64(2)).Return(nil, nil)
	queue := new(mocks.MockJobQueue)
	queue.On("EnqueueImport", int64(1), mock.Anything).Return(worker.ErrQueueFull)
	svc := services.NewImportService(queue, profiles, nil)

	_, err := svc.QueueImport(context.Background(), 2, []byte(smallDeck))
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.As(err).Code)

	_, err = svc.QueueImport(context.Background(), 1, []byte("name = \"empty\""))
	assert.Equal(t, apperrors.ErrCodeBadRequest, apperrors.As(err).Code)

	_, err = svc.QueueImport(context.Background(), 1, []byte(smallDeck))
	assert.Equal(t, apperrors.ErrCodeBusy, apperrors.As(err).Code)
}

func TestImportNow(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	profiles.On("Get", mock.Anything, int64(1)).Return(&models.Profile{ID: 1}, nil)
	cards := new(mocks.MockCardRepository)
	d, err := deck.Parse([]byte(smallDeck))
	require.NoError(t, err)
	cards.On("InsertBatch", mock.Anything, d.ModelCards(1)).Return([]int64{11}, nil)
	svc := services.NewImportService(nil, profiles, cards)

	ids, err := svc.ImportNow(context.Background(), 1, []byte(smallDeck))
	require.NoError(t, err)
	assert.Equal(t, []int64{11}, ids)
}
