package flashcard

import "github.com/vytor/leitnerflash/internal/models"

// HistoryEntry records one past review.
type HistoryEntry struct {
	Card       *models.Card
	Difficulty Difficulty
}

// GetHint returns the card's hint exactly as stored.
func GetHint(card *models.Card) string {
	return card.Hint
}

// TotalCards counts the cards across all buckets.
func TotalCards(store BucketStore) int {
	n := 0
	for _, set := range store {
		n += len(set)
	}
	return n
}

// SuccessfulReviews counts history entries rated Hard or better.
func SuccessfulReviews(history []HistoryEntry) int {
	n := 0
	for _, h := range history {
		if h.Difficulty.Successful() {
			n++
		}
	}
	return n
}

// ComputeProgress returns successful reviews as a percentage of the cards in
// store, or 0 for an empty store. The numerator counts review events, not
// distinct cards, so repeated successes can push the result above 100.
func ComputeProgress(store BucketStore, history []HistoryEntry) float64 {
	total := TotalCards(store)
	if total == 0 {
		return 0
	}
	return float64(SuccessfulReviews(history)) / float64(total) * 100
}
