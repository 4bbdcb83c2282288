package tracker

import (
	"testing"

	"github.com/minaorangina/literature/deck"
	utils "github.com/minaorangina/literature/internal"
	"github.com/stretchr/testify/assert"
)

func TestPlayerSet(t *testing.T) {
	ps := NewPlayerSet(0, 3, 5)

	utils.AssertEqual(t, ps.Count(), 3)
	utils.AssertTrue(t, ps.Has(3))
	utils.AssertTrue(t, !ps.Has(1))

	ps = ps.Remove(3)
	utils.AssertEqual(t, ps.Count(), 2)
	assert.Equal(t, []int{0, 5}, ps.Members())

	assert.True(t, NewPlayerSet(0, 5).SubsetOf(NewPlayerSet(0, 2, 5)))
	assert.False(t, NewPlayerSet(0, 1).SubsetOf(NewPlayerSet(0, 2, 5)))
}

func TestTracker(t *testing.T) {
	card := deck.NewCard(deck.Queen, deck.Hearts)

	t.Run("a fresh tracker suspects everyone", func(t *testing.T) {
		tr := New(6)
		v := tr.View(0, nil)

		b := v.Beliefs[card]
		utils.AssertTrue(t, b.InPlay)
		utils.AssertTrue(t, !b.Certain)
		// the observer knows they don't hold what isn't in their hand
		utils.AssertEqual(t, b.Candidates.Count(), 5)
		utils.AssertEqual(t, b.Weight, MaxWeight/5)
	})

	t.Run("own hand is always certain with weight zero", func(t *testing.T) {
		tr := New(6)
		v := tr.View(2, []deck.Card{card})

		b := v.Beliefs[card]
		utils.AssertTrue(t, b.Certain)
		utils.AssertEqual(t, b.Holder, 2)
		utils.AssertEqual(t, b.Weight, 0.0)
		assert.Equal(t, []int{2}, b.Candidates.Members())
	})

	t.Run("a successful ask collapses the card to the asker", func(t *testing.T) {
		tr := New(6)
		tr.ObserveSuccessfulAsk(1, card)

		// certain even from a third party's view
		b := tr.View(4, nil).Beliefs[card]
		utils.AssertTrue(t, b.Certain)
		utils.AssertEqual(t, b.Holder, 1)
		utils.AssertEqual(t, b.Weight, 0.0)
	})

	t.Run("a failed ask eliminates both parties", func(t *testing.T) {
		tr := New(6)
		tr.ObserveFailedAsk(1, 4, card)

		b := tr.View(0, nil).Beliefs[card]
		utils.AssertTrue(t, !b.Candidates.Has(1))
		utils.AssertTrue(t, !b.Candidates.Has(4))
		utils.AssertEqual(t, b.Candidates.Count(), 3) // 6 minus asker, asked, observer
		utils.AssertEqual(t, b.Weight, MaxWeight/3)
	})

	t.Run("elimination accumulates across asks", func(t *testing.T) {
		tr := New(6)
		tr.ObserveFailedAsk(1, 4, card)
		tr.ObserveFailedAsk(3, 5, card)

		b := tr.View(0, nil).Beliefs[card]
		assert.Equal(t, []int{2}, b.Candidates.Members())
		utils.AssertEqual(t, b.Weight, MaxWeight)
	})

	t.Run("a failed ask never disturbs a revealed card", func(t *testing.T) {
		tr := New(6)
		tr.ObserveSuccessfulAsk(2, card)
		tr.ObserveFailedAsk(1, 4, card)

		b := tr.View(0, nil).Beliefs[card]
		utils.AssertTrue(t, b.Certain)
		utils.AssertEqual(t, b.Holder, 2)
	})

	t.Run("a call removes the whole set from tracking", func(t *testing.T) {
		tr := New(6)
		tr.ObserveSuccessfulAsk(2, card)
		tr.ObserveCall(card.Set())

		v := tr.View(0, nil)
		for _, c := range card.Set().Cards() {
			utils.AssertTrue(t, !v.Beliefs[c].InPlay)
		}
		// other sets are untouched
		other := deck.NewCard(deck.Ace, deck.Clubs)
		utils.AssertTrue(t, v.Beliefs[other].InPlay)
	})
}
