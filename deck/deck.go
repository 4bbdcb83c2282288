package deck

import (
	"math/rand"
)

// Deck represents a deck of cards
type Deck []Card

// New creates the full 48-card Literature deck in index order
func New() Deck {
	cards := make(Deck, NumCards)
	for i := range cards {
		cards[i] = Card(i)
	}
	return cards
}

// Shuffle shuffles the deck of cards.
// The caller owns the rand source so games can be replayed under test.
func (d Deck) Shuffle(rng *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Deal deals n cards from the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := (*d)[startingIndex:numCardsInDeck]
	*d = (*d)[:startingIndex]
	return subSlice
}
