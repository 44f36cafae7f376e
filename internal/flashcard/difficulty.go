package flashcard

import (
	"encoding"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDifficulty is returned for difficulties outside Wrong..Easy.
var ErrInvalidDifficulty = errors.New("flashcard: invalid difficulty")

// Difficulty is how hard a card was to recall. Values are ordered, so
// comparisons like d >= Hard are meaningful.
type Difficulty int

const (
	Wrong Difficulty = iota + 1 // Not recalled.
	Hard                        // Recalled with effort.
	Easy                        // Recalled without effort.
)

var difficultyNames = [...]string{Wrong: "wrong", Hard: "hard", Easy: "easy"}

var (
	_ fmt.Stringer             = Difficulty(0)
	_ encoding.TextMarshaler   = Difficulty(0)
	_ encoding.TextUnmarshaler = (*Difficulty)(nil)
)

func (d Difficulty) String() string {
	if d.IsValid() {
		return difficultyNames[d]
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// IsValid reports whether d is one of Wrong, Hard or Easy.
func (d Difficulty) IsValid() bool {
	return d >= Wrong && d <= Easy
}

// Successful reports whether a review at this difficulty counts towards
// progress.
func (d Difficulty) Successful() bool {
	return d >= Hard && d.IsValid()
}

// ParseDifficulty accepts the difficulty names case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := Wrong; d <= Easy; d++ {
		if difficultyNames[d] == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	return []byte(difficultyNames[d]), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	v, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
