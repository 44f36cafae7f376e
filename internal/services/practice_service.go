package services

import (
	"context"
	"sync"

	"github.com/vytor/leitnerflash/internal/errors"
	"github.com/vytor/leitnerflash/internal/flashcard"
	"github.com/vytor/leitnerflash/internal/logger"
	"github.com/vytor/leitnerflash/internal/models"
	"github.com/vytor/leitnerflash/internal/repository"
)

// Review is one entry of a batch review request.
type Review struct {
	CardID     int64                `json:"card_id"`
	Difficulty flashcard.Difficulty `json:"difficulty"`
}

// PracticeService runs the Leitner scheduler over a profile's stored cards.
type PracticeService interface {
	// DueCards returns the cards due on day, or on the profile's current day
	// when day is nil.
	DueCards(ctx context.Context, profileID int64, day *int) (*models.PracticeSet, error)
	ReviewCard(ctx context.Context, profileID, cardID int64, d flashcard.Difficulty) (*models.ReviewResult, error)
	// ReviewBatch applies reviews in order. Cards that are not in the
	// profile's buckets are skipped rather than failing the batch.
	ReviewBatch(ctx context.Context, profileID int64, reviews []Review) (*models.BatchReviewResult, error)
	Schedule(ctx context.Context, profileID int64) (*models.ScheduleStat, error)
	Progress(ctx context.Context, profileID int64) (*models.ProgressStat, error)
}

type practiceService struct {
	// mu serialises load-modify-save cycles on bucket stores.
	mu            sync.Mutex
	profileRepo   repository.ProfileRepository
	bucketRepo    repository.BucketRepository
	reviewRepo    repository.ReviewRepository
	practiceLimit int
}

// NewPracticeService creates a new PracticeService. A practiceLimit of 0
// returns every due card.
func NewPracticeService(
	profileRepo repository.ProfileRepository,
	bucketRepo repository.BucketRepository,
	reviewRepo repository.ReviewRepository,
	practiceLimit int,
) PracticeService {
	return &practiceService{
		profileRepo:   profileRepo,
		bucketRepo:    bucketRepo,
		reviewRepo:    reviewRepo,
		practiceLimit: practiceLimit,
	}
}

func (s *practiceService) profile(ctx context.Context, id int64) (*models.Profile, error) {
	profile, err := s.profileRepo.Get(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get profile: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("profile", id)
	}
	return profile, nil
}

func (s *practiceService) load(ctx context.Context, profileID int64) (flashcard.BucketStore, map[int64]*models.Card, error) {
	store, cards, err := s.bucketRepo.Load(ctx, profileID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load buckets: %v", err)
		return nil, nil, errors.NewInternalError(err)
	}
	return store, cards, nil
}

func (s *practiceService) DueCards(ctx context.Context, profileID int64, day *int) (*models.PracticeSet, error) {
	log := logger.FromContext(ctx)

	profile, err := s.profile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	d := profile.CurrentDay
	if day != nil {
		d = *day
	}
	if d < 0 {
		return nil, errors.NewValidationError("day", "cannot be negative")
	}

	store, _, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	due := flashcard.Practice(flashcard.ToBucketSets(store), d).Cards()
	total := len(due)
	if s.practiceLimit > 0 && len(due) > s.practiceLimit {
		due = due[:s.practiceLimit]
	}
	log.Debug("cards due: profile_id=%d, day=%d, total=%d, returned=%d", profileID, d, total, len(due))

	return &models.PracticeSet{Day: d, Total: total, Cards: due}, nil
}

func (s *practiceService) ReviewCard(ctx context.Context, profileID, cardID int64, d flashcard.Difficulty) (*models.ReviewResult, error) {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"profile_id": profileID,
		"card_id":    cardID,
		"difficulty": d,
	})

	if !d.IsValid() {
		return nil, errors.NewValidationError("difficulty", "must be one of wrong, hard, easy")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.profile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	store, cards, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	card, ok := cards[cardID]
	if !ok {
		return nil, errors.NewNotFoundError("card", cardID)
	}
	from, _ := flashcard.FindBucket(store, card)

	next, err := flashcard.Move(store, card, d)
	if err != nil {
		log.Error("move failed: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if err := s.bucketRepo.Save(ctx, profileID, next); err != nil {
		log.Error("failed to save buckets: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if err := s.reviewRepo.Insert(ctx, cardID, d, profile.CurrentDay); err != nil {
		// The move is already persisted; losing the history row only
		// affects progress.
		log.Warn("failed to store review history: %v", err)
	}

	to := flashcard.NextBucket(from, d)
	log.Debug("card reviewed: bucket %d -> %d", from, to)
	return &models.ReviewResult{
		CardID:     cardID,
		Difficulty: d.String(),
		FromBucket: from,
		ToBucket:   to,
		Day:        profile.CurrentDay,
	}, nil
}

func (s *practiceService) ReviewBatch(ctx context.Context, profileID int64, reviews []Review) (*models.BatchReviewResult, error) {
	log := logger.FromContext(ctx).WithField("profile_id", profileID)

	for _, r := range reviews {
		if !r.Difficulty.IsValid() {
			return nil, errors.NewValidationError("difficulty", "must be one of wrong, hard, easy")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.profile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	store, cards, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	result := &models.BatchReviewResult{Applied: []models.ReviewResult{}, Skipped: []int64{}}
	for _, r := range reviews {
		card, ok := cards[r.CardID]
		if !ok {
			// Update logs and ignores cards it cannot find.
			store = flashcard.Update(store, &models.Card{ID: r.CardID}, r.Difficulty)
			result.Skipped = append(result.Skipped, r.CardID)
			continue
		}
		from, _ := flashcard.FindBucket(store, card)
		store = flashcard.Update(store, card, r.Difficulty)
		result.Applied = append(result.Applied, models.ReviewResult{
			CardID:     r.CardID,
			Difficulty: r.Difficulty.String(),
			FromBucket: from,
			ToBucket:   flashcard.NextBucket(from, r.Difficulty),
			Day:        profile.CurrentDay,
		})
	}

	if len(result.Applied) == 0 {
		return result, nil
	}
	if err := s.bucketRepo.Save(ctx, profileID, store); err != nil {
		log.Error("failed to save buckets: %v", err)
		return nil, errors.NewInternalError(err)
	}
	for _, a := range result.Applied {
		d, _ := flashcard.ParseDifficulty(a.Difficulty)
		if err := s.reviewRepo.Insert(ctx, a.CardID, d, profile.CurrentDay); err != nil {
			log.Warn("failed to store review history for card %d: %v", a.CardID, err)
		}
	}
	log.Info("batch reviewed: applied=%d, skipped=%d", len(result.Applied), len(result.Skipped))
	return result, nil
}

func (s *practiceService) Schedule(ctx context.Context, profileID int64) (*models.ScheduleStat, error) {
	if _, err := s.profile(ctx, profileID); err != nil {
		return nil, err
	}
	store, _, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	schedule := flashcard.ToBucketSets(store)
	stat := &models.ScheduleStat{Buckets: make([]models.BucketStat, len(schedule))}
	for i, set := range schedule {
		stat.Buckets[i] = models.BucketStat{Bucket: i, Cards: set.Len()}
	}
	if r, ok := flashcard.GetBucketRange(schedule); ok {
		stat.MinBucket = &r.Min
		stat.MaxBucket = &r.Max
	}
	return stat, nil
}

func (s *practiceService) Progress(ctx context.Context, profileID int64) (*models.ProgressStat, error) {
	log := logger.FromContext(ctx)

	if _, err := s.profile(ctx, profileID); err != nil {
		return nil, err
	}
	store, cards, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	history, err := s.reviewRepo.History(ctx, profileID, cards)
	if err != nil {
		log.Error("failed to load history: %v", err)
		return nil, errors.NewInternalError(err)
	}
	total, err := s.reviewRepo.Count(ctx, profileID)
	if err != nil {
		log.Error("failed to count reviews: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return &models.ProgressStat{
		TotalCards:        flashcard.TotalCards(store),
		TotalReviews:      total,
		SuccessfulReviews: flashcard.SuccessfulReviews(history),
		Percent:           flashcard.ComputeProgress(store, history),
	}, nil
}
