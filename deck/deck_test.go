package deck

import (
	"math/rand"
	"testing"

	utils "github.com/minaorangina/literature/internal"
)

func TestDeck(t *testing.T) {
	t.Run("a new deck has all 48 cards", func(t *testing.T) {
		d := New()
		utils.AssertEqual(t, len(d), NumCards)

		seen := map[Card]struct{}{}
		for _, c := range d {
			seen[c] = struct{}{}
		}
		utils.AssertEqual(t, len(seen), NumCards)
	})

	t.Run("shuffling preserves the card population", func(t *testing.T) {
		d := New()
		d.Shuffle(rand.New(rand.NewSource(1)))

		seen := map[Card]struct{}{}
		for _, c := range d {
			seen[c] = struct{}{}
		}
		utils.AssertEqual(t, len(seen), NumCards)
	})

	t.Run("dealing empties the deck", func(t *testing.T) {
		d := New()
		first := d.Deal(8)
		utils.AssertEqual(t, len(first), 8)
		utils.AssertEqual(t, len(d), NumCards-8)

		rest := d.Deal(NumCards - 8)
		utils.AssertEqual(t, len(rest), NumCards-8)
		utils.AssertEqual(t, len(d), 0)
	})

	t.Run("dealing more cards than remain deals nothing", func(t *testing.T) {
		d := New()
		got := d.Deal(NumCards + 1)
		utils.AssertEqual(t, len(got), 0)
		utils.AssertEqual(t, len(d), NumCards)
	})
}
