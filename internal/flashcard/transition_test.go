package flashcard_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/leitnerflash/internal/flashcard"
	"github.com/vytor/leitnerflash/internal/logger"
)

func TestNextBucket(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		difficulty flashcard.Difficulty
		expected   int
	}{
		{"wrong drops one bucket", 3, flashcard.Wrong, 2},
		{"wrong stays at zero", 0, flashcard.Wrong, 0},
		{"hard keeps bucket", 3, flashcard.Hard, 3},
		{"easy climbs one bucket", 3, flashcard.Easy, 4},
		{"easy has no ceiling", 1000, flashcard.Easy, 1001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, flashcard.NextBucket(tt.current, tt.difficulty))
		})
	}
}

func TestUpdate_Wrong(t *testing.T) {
	a, b := newCard(1, "a"), newCard(2, "b")
	store := flashcard.BucketStore{
		1: flashcard.NewCardSet(b),
		2: flashcard.NewCardSet(a),
	}

	next := flashcard.Update(store, a, flashcard.Wrong)

	assert.True(t, next[1].Contains(a))
	assert.True(t, next[1].Contains(b))
	require.Contains(t, next, 2, "emptied origin bucket should remain")
	assert.Equal(t, 0, next[2].Len())
	assert.NoError(t, flashcard.Validate(next))
}

func TestUpdate_WrongAtBucketZero(t *testing.T) {
	a := newCard(1, "a")
	store := flashcard.BucketStore{0: flashcard.NewCardSet(a)}

	next := flashcard.Update(store, a, flashcard.Wrong)

	assert.True(t, next[0].Contains(a))
	assert.Len(t, next, 1)
}

func TestUpdate_EasyCreatesDestination(t *testing.T) {
	a := newCard(1, "a")
	store := flashcard.BucketStore{0: flashcard.NewCardSet(a)}

	next := flashcard.Update(store, a, flashcard.Easy)

	require.Contains(t, next, 1)
	assert.True(t, next[1].Contains(a))
	assert.False(t, next[0].Contains(a))
	assert.Equal(t, 1, flashcard.TotalCards(next))
}

func TestUpdate_HardLeavesStoreUnchanged(t *testing.T) {
	a, b := newCard(1, "a"), newCard(2, "b")
	store := flashcard.BucketStore{
		0: flashcard.NewCardSet(b),
		3: flashcard.NewCardSet(a),
	}

	next := flashcard.Update(store, a, flashcard.Hard)

	assert.Equal(t, store, next)
	assert.True(t, next[3].Contains(a))
}

func TestUpdate_DoesNotMutateInput(t *testing.T) {
	a, b := newCard(1, "a"), newCard(2, "b")
	origin := flashcard.NewCardSet(a, b)
	store := flashcard.BucketStore{0: origin}

	next := flashcard.Update(store, a, flashcard.Easy)

	assert.True(t, origin.Contains(a), "origin set must not be modified")
	assert.Len(t, store, 1, "input map must not gain buckets")
	assert.NotContains(t, store, 1)
	assert.False(t, next[0].Contains(a))
	assert.True(t, next[0].Contains(b))
}

func TestUpdate_SharesUntouchedBuckets(t *testing.T) {
	a, b := newCard(1, "a"), newCard(2, "b")
	untouched := flashcard.NewCardSet(b)
	store := flashcard.BucketStore{0: flashcard.NewCardSet(a), 5: untouched}

	next := flashcard.Update(store, a, flashcard.Easy)

	next[5].Add(newCard(3, "probe"))
	assert.Equal(t, 2, untouched.Len(), "untouched bucket should be shared, not copied")
}

func TestUpdate_MissingCardIsNoop(t *testing.T) {
	var buf bytes.Buffer
	prev := logger.Default()
	logger.SetDefault(logger.New(logger.WithOutput(&buf), logger.WithColors(false)))
	t.Cleanup(func() { logger.SetDefault(prev) })

	a, stranger := newCard(1, "a"), newCard(99, "stranger")
	store := flashcard.BucketStore{0: flashcard.NewCardSet(a)}

	next := flashcard.Update(store, stranger, flashcard.Easy)

	assert.Equal(t, store, next)
	assert.Contains(t, buf.String(), "card not in any bucket")
	assert.Contains(t, buf.String(), "card_id=99")
}

func TestMove_Errors(t *testing.T) {
	a := newCard(1, "a")
	store := flashcard.BucketStore{0: flashcard.NewCardSet(a)}

	_, err := flashcard.Move(store, newCard(2, "b"), flashcard.Easy)
	assert.ErrorIs(t, err, flashcard.ErrCardNotFound)

	_, err = flashcard.Move(store, a, flashcard.Difficulty(9))
	assert.ErrorIs(t, err, flashcard.ErrInvalidDifficulty)
}

func TestMove_RepeatedReviews(t *testing.T) {
	a := newCard(1, "a")
	store := flashcard.BucketStore{0: flashcard.NewCardSet(a)}

	for _, d := range []flashcard.Difficulty{flashcard.Easy, flashcard.Easy, flashcard.Easy, flashcard.Wrong, flashcard.Hard} {
		var err error
		store, err = flashcard.Move(store, a, d)
		require.NoError(t, err)
		require.NoError(t, flashcard.Validate(store))
	}

	bucket, ok := flashcard.FindBucket(store, a)
	require.True(t, ok)
	assert.Equal(t, 2, bucket)
}

func TestValidate(t *testing.T) {
	a := newCard(1, "a")

	assert.NoError(t, flashcard.Validate(flashcard.BucketStore{}))
	assert.ErrorIs(t, flashcard.Validate(flashcard.BucketStore{-1: flashcard.NewCardSet(a)}), flashcard.ErrNegativeBucket)
	assert.ErrorIs(t, flashcard.Validate(flashcard.BucketStore{
		0: flashcard.NewCardSet(a),
		2: flashcard.NewCardSet(a),
	}), flashcard.ErrDuplicateCard)
}
