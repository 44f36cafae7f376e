package flashcard

import (
	"sort"

	"github.com/vytor/leitnerflash/internal/models"
)

// CardSet is a set of cards keyed by identity.
type CardSet map[*models.Card]struct{}

// NewCardSet returns a set holding cards.
func NewCardSet(cards ...*models.Card) CardSet {
	s := make(CardSet, len(cards))
	for _, c := range cards {
		s[c] = struct{}{}
	}
	return s
}

func (s CardSet) Add(c *models.Card) { s[c] = struct{}{} }

func (s CardSet) Contains(c *models.Card) bool {
	_, ok := s[c]
	return ok
}

func (s CardSet) Len() int { return len(s) }

// Cards returns the members ordered by ID.
func (s CardSet) Cards() []*models.Card {
	out := make([]*models.Card, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// BucketStore maps a bucket number to the cards in it. Bucket numbers are
// non-negative and need not be contiguous. A card appears in at most one
// bucket.
type BucketStore map[int]CardSet

// BucketSchedule is the dense view of a BucketStore: index i holds bucket i,
// and missing buckets are empty sets.
type BucketSchedule []CardSet

// BucketRange is the lowest and highest non-empty bucket of a schedule.
type BucketRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ToBucketSets converts a store into a schedule of length max(bucket)+1.
// Sets from the store are shared, not copied.
func ToBucketSets(store BucketStore) BucketSchedule {
	if len(store) == 0 {
		return BucketSchedule{}
	}
	highest := -1
	for b := range store {
		if b > highest {
			highest = b
		}
	}
	schedule := make(BucketSchedule, highest+1)
	for i := range schedule {
		if set, ok := store[i]; ok && set != nil {
			schedule[i] = set
		} else {
			schedule[i] = CardSet{}
		}
	}
	return schedule
}

// GetBucketRange returns the lowest and highest non-empty buckets. ok is
// false when every bucket is empty.
func GetBucketRange(schedule BucketSchedule) (r BucketRange, ok bool) {
	for i, set := range schedule {
		if len(set) == 0 {
			continue
		}
		if !ok {
			r.Min = i
			ok = true
		}
		r.Max = i
	}
	return r, ok
}

// Practice returns the cards due on day: the union of buckets 0..day-1.
// Days past the end of the schedule select every bucket.
func Practice(schedule BucketSchedule, day int) CardSet {
	due := CardSet{}
	for i := 0; i < day && i < len(schedule); i++ {
		for c := range schedule[i] {
			due.Add(c)
		}
	}
	return due
}
