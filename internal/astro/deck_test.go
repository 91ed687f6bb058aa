package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckHas78DistinctCards(t *testing.T) {
	require.Len(t, Deck, 78)
	seen := make(map[string]struct{}, len(Deck))
	for _, card := range Deck {
		_, dup := seen[card]
		require.False(t, dup, "duplicate card %q", card)
		seen[card] = struct{}{}
	}
}

func TestDrawCardsReturnsDistinctDeckCards(t *testing.T) {
	deckSet := make(map[string]struct{}, len(Deck))
	for _, card := range Deck {
		deckSet[card] = struct{}{}
	}

	for i := 0; i < 50; i++ {
		cards := DrawCards(3)
		require.Len(t, cards, 3)
		assert.NotEqual(t, cards[0], cards[1])
		assert.NotEqual(t, cards[1], cards[2])
		assert.NotEqual(t, cards[0], cards[2])
		for _, card := range cards {
			_, ok := deckSet[card]
			assert.True(t, ok, "card %q not in deck", card)
		}
	}
}

func TestDrawCardsRejectsBadCounts(t *testing.T) {
	assert.Nil(t, DrawCards(0))
	assert.Nil(t, DrawCards(len(Deck)+1))
}
