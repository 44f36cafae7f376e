package flashcard

import (
	"errors"
	"fmt"

	"github.com/vytor/leitnerflash/internal/logger"
	"github.com/vytor/leitnerflash/internal/models"
)

var (
	ErrCardNotFound   = errors.New("flashcard: card not in any bucket")
	ErrNegativeBucket = errors.New("flashcard: negative bucket number")
	ErrDuplicateCard  = errors.New("flashcard: card in more than one bucket")
)

// NextBucket returns the bucket a card moves to from current after a review.
// Wrong never drops below bucket 0 and Easy has no ceiling.
func NextBucket(current int, d Difficulty) int {
	switch d {
	case Wrong:
		return max(0, current-1)
	case Easy:
		return current + 1
	default:
		return current
	}
}

// FindBucket returns the bucket holding card.
func FindBucket(store BucketStore, card *models.Card) (int, bool) {
	for b, set := range store {
		if set.Contains(card) {
			return b, true
		}
	}
	return 0, false
}

// Move returns a new store with card moved according to d. The input store
// is not modified; only the origin and destination sets are reallocated, the
// rest are shared. The origin bucket is kept even when it becomes empty.
func Move(store BucketStore, card *models.Card, d Difficulty) (BucketStore, error) {
	if !d.IsValid() {
		return store, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	from, ok := FindBucket(store, card)
	if !ok {
		return store, ErrCardNotFound
	}
	to := NextBucket(from, d)

	next := make(BucketStore, len(store)+1)
	for b, set := range store {
		next[b] = set
	}
	if to == from {
		return next, nil
	}

	origin := make(CardSet, len(store[from]))
	for c := range store[from] {
		if c != card {
			origin.Add(c)
		}
	}
	next[from] = origin

	dest := make(CardSet, len(store[to])+1)
	for c := range store[to] {
		dest.Add(c)
	}
	dest.Add(card)
	next[to] = dest

	return next, nil
}

// Update is Move with soft failure: when the card is not in the store, or
// d is invalid, the problem is logged and the original store is returned.
func Update(store BucketStore, card *models.Card, d Difficulty) BucketStore {
	next, err := Move(store, card, d)
	if err != nil {
		log := logger.Default().WithPrefix("leitner")
		if card != nil {
			log = log.WithField("card_id", card.ID)
		}
		log.Warn("update skipped: %v", err)
		return store
	}
	return next
}

// Validate checks that store has no negative buckets and that no card is in
// more than one bucket.
func Validate(store BucketStore) error {
	seen := make(map[*models.Card]int)
	for b, set := range store {
		if b < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeBucket, b)
		}
		for c := range set {
			if prev, ok := seen[c]; ok {
				return fmt.Errorf("%w: card %d in buckets %d and %d", ErrDuplicateCard, c.ID, min(prev, b), max(prev, b))
			}
			seen[c] = b
		}
	}
	return nil
}
