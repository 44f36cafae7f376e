package services

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/vytor/leitnerflash/internal/errors"
	"github.com/vytor/leitnerflash/internal/flashcard"
	"github.com/vytor/leitnerflash/internal/logger"
	"github.com/vytor/leitnerflash/internal/models"
	"github.com/vytor/leitnerflash/internal/repository"
)

// CardService handles card-related business logic
type CardService interface {
	CreateCard(ctx context.Context, card models.Card) (*models.Card, error)
	GetCard(ctx context.Context, profileID, id int64) (*models.Card, error)
	ListCards(ctx context.Context, filter models.CardFilter) ([]models.Card, error)
	DeleteCard(ctx context.Context, profileID, id int64) error
	GetHint(ctx context.Context, profileID, id int64) (string, error)
}

type cardService struct {
	cardRepo repository.CardRepository
}

// NewCardService creates a new CardService
func NewCardService(cardRepo repository.CardRepository) CardService {
	return &cardService{cardRepo: cardRepo}
}

func (s *cardService) CreateCard(ctx context.Context, card models.Card) (*models.Card, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating card: profile_id=%d", card.ProfileID)

	card.Front = strings.TrimSpace(card.Front)
	card.Back = strings.TrimSpace(card.Back)
	if card.Front == "" {
		return nil, errors.NewValidationError("front", "cannot be empty")
	}
	if card.Back == "" {
		return nil, errors.NewValidationError("back", "cannot be empty")
	}
	tags := make([]string, 0, len(card.Tags))
	for _, t := range card.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	card.Tags = tags

	id, err := s.cardRepo.Insert(ctx, card)
	if err != nil {
		log.Error("failed to create card: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return s.GetCard(ctx, card.ProfileID, id)
}

func (s *cardService) GetCard(ctx context.Context, profileID, id int64) (*models.Card, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting card: id=%d", id)

	card, err := s.cardRepo.Get(ctx, profileID, id)
	if err != nil {
		log.Error("failed to get card: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("card", id)
	}
	return card, nil
}

func (s *cardService) ListCards(ctx context.Context, filter models.CardFilter) ([]models.Card, error) {
	if filter.Bucket != nil && *filter.Bucket < 0 {
		return nil, errors.NewValidationError("bucket", "cannot be negative")
	}

	cards, err := s.cardRepo.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list cards: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return cards, nil
}

func (s *cardService) DeleteCard(ctx context.Context, profileID, id int64) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting card: id=%d", id)

	if err := s.cardRepo.Delete(ctx, profileID, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NewNotFoundError("card", id)
		}
		log.Error("failed to delete card: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *cardService) GetHint(ctx context.Context, profileID, id int64) (string, error) {
	card, err := s.GetCard(ctx, profileID, id)
	if err != nil {
		return "", err
	}
	return flashcard.GetHint(card), nil
}
