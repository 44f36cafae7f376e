package deck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/leitnerflash/internal/deck"
)

const spanish = `
name = "Spanish basics"

[[cards]]
front = "hola"
back  = "hello"
hint  = "  greeting  "
tags  = ["greetings", "a1"]

[[cards]]
front = "gato"
back  = "cat"
`

func TestParse(t *testing.T) {
	d, err := deck.Parse([]byte(spanish))
	require.NoError(t, err)

	assert.Equal(t, "Spanish basics", d.Name)
	require.Len(t, d.Cards, 2)
	assert.Equal(t, []string{"greetings", "a1"}, d.Cards[0].Tags)
	assert.Equal(t, "", d.Cards[1].Hint)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"invalid toml", `name = `, "parse deck"},
		{"no cards", `name = "empty"`, "deck has no cards"},
		{"missing back", "[[cards]]\nfront = \"a\"\nback = \"b\"\n[[cards]]\nfront = \"c\"", "card 2: back is required"},
		{"blank front", "[[cards]]\nfront = \"  \"\nback = \"b\"", "card 1: front is required"},
		{"unknown key", "[[cards]]\nfront = \"a\"\nback = \"b\"\nhnit = \"typo\"", "unknown keys: cards.hnit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deck.Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestModelCards_KeepsHintVerbatim(t *testing.T) {
	d, err := deck.Parse([]byte(spanish))
	require.NoError(t, err)

	cards := d.ModelCards(7)
	require.Len(t, cards, 2)
	assert.Equal(t, int64(7), cards[0].ProfileID)
	assert.Equal(t, "hola", cards[0].Front)
	assert.Equal(t, "  greeting  ", cards[0].Hint)
}
