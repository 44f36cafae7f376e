// Package deck reads flashcard decks written as TOML:
//
//	name = "Spanish basics"
//
//	[[cards]]
//	front = "hola"
//	back  = "hello"
//	hint  = "greeting"
//	tags  = ["greetings"]
package deck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vytor/leitnerflash/internal/models"
)

var ErrEmptyDeck = errors.New("deck has no cards")

type Card struct {
	Front string   `toml:"front"`
	Back  string   `toml:"back"`
	Hint  string   `toml:"hint"`
	Tags  []string `toml:"tags"`
}

type Deck struct {
	Name  string `toml:"name"`
	Cards []Card `toml:"cards"`
}

// Parse decodes and validates a deck. Unknown keys are rejected so typos do
// not silently drop fields.
func Parse(data []byte) (*Deck, error) {
	var d Deck
	md, err := toml.Decode(string(data), &d)
	if err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("parse deck: unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks that the deck has cards and every card has a front and a
// back. Card positions in errors are 1-based.
func (d *Deck) Validate() error {
	if len(d.Cards) == 0 {
		return ErrEmptyDeck
	}
	for i, c := range d.Cards {
		if strings.TrimSpace(c.Front) == "" {
			return fmt.Errorf("card %d: front is required", i+1)
		}
		if strings.TrimSpace(c.Back) == "" {
			return fmt.Errorf("card %d: back is required", i+1)
		}
	}
	return nil
}

// ModelCards converts the deck into cards owned by profileID. Hints are kept
// verbatim.
func (d *Deck) ModelCards(profileID int64) []models.Card {
	cards := make([]models.Card, len(d.Cards))
	for i, c := range d.Cards {
		cards[i] = models.Card{
			ProfileID: profileID,
			Front:     strings.TrimSpace(c.Front),
			Back:      strings.TrimSpace(c.Back),
			Hint:      c.Hint,
			Tags:      c.Tags,
		}
	}
	return cards
}
