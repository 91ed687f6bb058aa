package astro

import "math/rand"

// Deck is the fixed 78-card tarot deck: 22 major arcana plus four suits
// of fourteen cards each.
var Deck = buildDeck()

func buildDeck() []string {
	deck := []string{
		"The Fool", "The Magician", "The High Priestess", "The Empress", "The Emperor",
		"The Hierophant", "The Lovers", "The Chariot", "Strength", "The Hermit",
		"Wheel of Fortune", "Justice", "The Hanged Man", "Death", "Temperance",
		"The Devil", "The Tower", "The Star", "The Moon", "The Sun",
		"Judgement", "The World",
	}

	ranks := []string{
		"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
		"Eight", "Nine", "Ten", "Page", "Knight", "Queen", "King",
	}
	suits := []string{"Wands", "Cups", "Swords", "Pentacles"}

	for _, suit := range suits {
		for _, rank := range ranks {
			deck = append(deck, rank+" of "+suit)
		}
	}
	return deck
}

// SpreadPositions labels the three cards of a draw in order.
var SpreadPositions = [3]string{"Past", "Present", "Future"}

// DrawCards selects n distinct cards uniformly without replacement.
func DrawCards(n int) []string {
	if n <= 0 || n > len(Deck) {
		return nil
	}
	cards := make([]string, 0, n)
	for _, idx := range rand.Perm(len(Deck))[:n] {
		cards = append(cards, Deck[idx])
	}
	return cards
}
