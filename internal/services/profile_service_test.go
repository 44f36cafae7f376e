package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vytor/leitnerflash/internal/errors"
	"github.com/vytor/leitnerflash/internal/models"
	"github.com/vytor/leitnerflash/internal/services"
	"github.com/vytor/leitnerflash/internal/testutil/mocks"
)

func TestCreateProfile_NormalisesUsername(t *testing.T) {
	repo := new(mocks.MockProfileRepository)
	repo.On("Upsert", mock.Anything, "ana").Return(&models.Profile{ID: 1, Username: "ana"}, nil)
	svc := services.NewProfileService(repo)

	p, err := svc.CreateProfile(context.Background(), "  ANA ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)

	_, err = svc.CreateProfile(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.As(err).Code)
}

func TestGetProfile(t *testing.T) {
	repo := new(mocks.MockProfileRepository)
	repo.On("Get", mock.Anything, int64(1)).Return(nil, nil)
	repo.On("Get", mock.Anything, int64(2)).Return(nil, errors.New("boom"))
	svc := services.NewProfileService(repo)

	_, err := svc.GetProfile(context.Background(), 1)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.As(err).Code)

	_, err = svc.GetProfile(context.Background(), 2)
	assert.Equal(t, apperrors.ErrCodeInternal, apperrors.As(err).Code)
}

func TestAdvanceDay(t *testing.T) {
	repo := new(mocks.MockProfileRepository)
	repo.On("Get", mock.Anything, int64(1)).Return(&models.Profile{ID: 1, CurrentDay: 3}, nil).Once()
	repo.On("SetDay", mock.Anything, int64(1), 4).Return(nil)
	repo.On("Get", mock.Anything, int64(1)).Return(&models.Profile{ID: 1, CurrentDay: 4}, nil).Once()
	svc := services.NewProfileService(repo)

	p, err := svc.AdvanceDay(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, p.CurrentDay)
	repo.AssertExpectations(t)
}

func TestSetDay_Errors(t *testing.T) {
	repo := new(mocks.MockProfileRepository)
	repo.On("SetDay", mock.Anything, int64(8), 1).Return(sql.ErrNoRows)
	svc := services.NewProfileService(repo)

	_, err := svc.SetDay(context.Background(), 1, -1)
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.As(err).Code)

	_, err = svc.SetDay(context.Background(), 8, 1)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.As(err).Code)
}
