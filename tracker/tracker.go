package tracker

import (
	"github.com/minaorangina/literature/deck"
)

// MaxWeight is the belief weight of a card whose holder is completely
// unknown to a single observer. Weights are only ever compared, never
// summed, so the constant is arbitrary.
const MaxWeight = 48.0

// PlayerSet is a bitset of seat indices
type PlayerSet uint16

// NewPlayerSet constructs a set containing the given seats
func NewPlayerSet(seats ...int) PlayerSet {
	var ps PlayerSet
	for _, s := range seats {
		ps = ps.Add(s)
	}
	return ps
}

func allSeats(n int) PlayerSet {
	return PlayerSet(1<<uint(n)) - 1
}

// Add returns the set with the seat included
func (ps PlayerSet) Add(seat int) PlayerSet {
	return ps | 1<<uint(seat)
}

// Remove returns the set with the seat excluded
func (ps PlayerSet) Remove(seat int) PlayerSet {
	return ps &^ (1 << uint(seat))
}

// Has reports whether the seat is in the set
func (ps PlayerSet) Has(seat int) bool {
	return ps&(1<<uint(seat)) != 0
}

// Count returns the number of seats in the set
func (ps PlayerSet) Count() int {
	n := 0
	for ; ps != 0; ps &= ps - 1 {
		n++
	}
	return n
}

// Members returns the seats in the set in ascending order
func (ps PlayerSet) Members() []int {
	members := []int{}
	for seat := 0; ps != 0; seat, ps = seat+1, ps>>1 {
		if ps&1 != 0 {
			members = append(members, seat)
		}
	}
	return members
}

// Intersect returns the seats present in both sets
func (ps PlayerSet) Intersect(other PlayerSet) PlayerSet {
	return ps & other
}

// SubsetOf reports whether every seat in ps is also in other
func (ps PlayerSet) SubsetOf(other PlayerSet) bool {
	return ps&^other == 0
}

// cardState is what the whole table has learnt about one card from the
// move log alone. A player's own hand is layered on per observer in View.
type cardState int

const (
	stateUnknown cardState = iota
	stateKnown             // revealed by a successful ask
	stateOut               // its set was called and left play
)

// Tracker maintains the shared elimination state for every card still in
// play. It is derived entirely from public information (the move log), so a
// single Tracker serves all observers; View layers an observer's private
// hand knowledge on top.
type Tracker struct {
	numPlayers int
	states     [deck.NumCards]cardState
	owners     [deck.NumCards]int8 // seat, only meaningful when stateKnown
	candidates [deck.NumCards]PlayerSet
}

// New constructs a tracker with every card a candidate for every seat
func New(numPlayers int) *Tracker {
	t := &Tracker{numPlayers: numPlayers}
	everyone := allSeats(numPlayers)
	for i := range t.candidates {
		t.candidates[i] = everyone
		t.owners[i] = -1
	}
	return t
}

// ObserveSuccessfulAsk collapses the card to its new holder. Everyone at
// the table saw the card change hands, so this is public certainty.
func (t *Tracker) ObserveSuccessfulAsk(asker int, card deck.Card) {
	t.states[card] = stateKnown
	t.owners[card] = int8(asker)
	t.candidates[card] = NewPlayerSet(asker)
}

// ObserveFailedAsk eliminates both parties: the asker proved they do not
// hold the card (asking for a held card is illegal) and the asked player
// declined it.
func (t *Tracker) ObserveFailedAsk(asker, askedFrom int, card deck.Card) {
	if t.states[card] != stateUnknown {
		return
	}
	t.candidates[card] = t.candidates[card].Remove(asker).Remove(askedFrom)
}

// ObserveCall removes every card of the called set from tracking. The set
// leaves play whether or not the call was correct.
func (t *Tracker) ObserveCall(s deck.Set) {
	for _, c := range s.Cards() {
		t.states[c] = stateOut
		t.owners[c] = -1
		t.candidates[c] = 0
	}
}

// A transfer reveals nothing about card locations, so there is no
// ObserveTransfer.

// Belief is one observer's view of a single card
type Belief struct {
	// InPlay is false once the card's set has been called
	InPlay bool
	// Certain is true when the observer can name the holder exactly
	Certain bool
	// Holder is the known holder's seat; only meaningful when Certain
	Holder int
	// Candidates are the seats not yet eliminated as holders
	Candidates PlayerSet
	// Weight is MaxWeight / |Candidates|, or 0 when Certain
	Weight float64
}

// View is an observer's belief over every card
type View struct {
	Observer int
	Beliefs  [deck.NumCards]Belief
}

// View computes the per-observer beliefs. hand must be the observer's
// actual current hand; those cards are certain to the observer, and the
// observer is excluded as a candidate for every card they do not hold.
func (t *Tracker) View(observer int, hand []deck.Card) View {
	v := View{Observer: observer}

	held := map[deck.Card]bool{}
	for _, c := range hand {
		held[c] = true
	}

	for i := range v.Beliefs {
		c := deck.Card(i)

		if t.states[c] == stateOut {
			continue
		}

		b := Belief{InPlay: true}

		switch {
		case held[c]:
			b.Certain = true
			b.Holder = observer
			b.Candidates = NewPlayerSet(observer)

		case t.states[c] == stateKnown:
			b.Certain = true
			b.Holder = int(t.owners[c])
			b.Candidates = NewPlayerSet(b.Holder)

		default:
			cands := t.candidates[c].Remove(observer)
			b.Candidates = cands
			if n := cands.Count(); n > 0 {
				b.Weight = MaxWeight / float64(n)
			}
		}

		v.Beliefs[i] = b
	}

	return v
}
