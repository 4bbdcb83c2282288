package bot

import (
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/minaorangina/literature/deck"
	"github.com/minaorangina/literature/game"
	"github.com/minaorangina/literature/protocol"
	"github.com/minaorangina/literature/tracker"
)

// ErrNoMove means the seat has no legal move at all. For an in-progress
// game with cards remaining this is a logic bug, not a user error; the
// caller should log it as an operational alert.
var ErrNoMove = errors.New("no legal move available")

// Bot chooses moves for automated seats. Decisions go back through the
// same validate-and-execute pipeline as human moves.
type Bot struct {
	rng *rand.Rand
}

// New constructs a bot. A nil rng gets a time-seeded one.
func New(rng *rand.Rand) *Bot {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Bot{rng: rng}
}

// Decide picks the seat's next move in strict precedence: transfer after
// our own successful call, then a call if a whole set is pinned down
// within our team, then the best-ranked ask.
func (b *Bot) Decide(g *game.Game, seat int) (protocol.MoveRequest, error) {
	view := g.Tracker.View(seat, g.HandOf(seat))

	if req, ok := b.transferMove(g, seat); ok {
		return req, nil
	}
	if req, ok := b.callMove(g, view, seat); ok {
		return req, nil
	}
	if req, ok := b.askMove(g, view, seat); ok {
		return req, nil
	}

	return protocol.MoveRequest{}, ErrNoMove
}

// seatsWithCards returns the seats still holding at least one card
func seatsWithCards(g *game.Game) tracker.PlayerSet {
	var ps tracker.PlayerSet
	for _, p := range g.Players {
		if g.HandCount(p.Seat) > 0 {
			ps = ps.Add(p.Seat)
		}
	}
	return ps
}

func teamSeats(g *game.Game, team int) tracker.PlayerSet {
	return tracker.NewPlayerSet(g.Teams[team].Seats...)
}

// transferMove hands the turn onwards after our own successful call,
// favouring the teammate with the most cards left
func (b *Bot) transferMove(g *game.Game, seat int) (protocol.MoveRequest, bool) {
	call, ok := g.LastMove().(game.Call)
	if !ok || !call.Success || call.Caller != seat {
		return protocol.MoveRequest{}, false
	}

	team := g.Players[seat].Team
	candidates := []int{}
	for _, s := range g.Teams[team].Seats {
		if s != seat && g.HandCount(s) > 0 {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return protocol.MoveRequest{}, false
	}

	sort.Slice(candidates, func(i, j int) bool {
		return g.HandCount(candidates[i]) > g.HandCount(candidates[j])
	})

	return protocol.MoveRequest{
		Type:     protocol.TransferMove,
		Transfer: protocol.TransferPayload{TransferTo: g.Players[candidates[0]].ID},
	}, true
}

type callOption struct {
	set deck.Set
	// holders are the per-card effective candidate seats, in set order
	holders   [deck.SetSize]tracker.PlayerSet
	ambiguous int
	weight    float64
}

// callMove looks for a set whose six cards all resolve within our own
// team. Players out of cards are eliminated as holders first.
func (b *Bot) callMove(g *game.Game, view tracker.View, seat int) (protocol.MoveRequest, bool) {
	team := teamSeats(g, g.Players[seat].Team)
	holding := seatsWithCards(g)
	hand := map[deck.Card]bool{}
	for _, c := range g.HandOf(seat) {
		hand[c] = true
	}

	options := []callOption{}

	for set := deck.Set(0); set < deck.NumSets; set++ {
		opt := callOption{set: set}
		callable := true
		ours := false

		for i, c := range set.Cards() {
			belief := view.Beliefs[c]
			if !belief.InPlay {
				callable = false
				break
			}
			if hand[c] {
				ours = true
			}

			eff := belief.Candidates.Intersect(holding)
			if eff.Count() == 0 || !eff.SubsetOf(team) {
				callable = false
				break
			}

			opt.holders[i] = eff
			if eff.Count() > 1 {
				opt.ambiguous++
			}
			opt.weight += belief.Weight
		}

		// a call without one of our own cards would be rejected as delegated
		if callable && ours {
			options = append(options, opt)
		}
	}

	if len(options) == 0 {
		return protocol.MoveRequest{}, false
	}

	sort.Slice(options, func(i, j int) bool {
		if options[i].ambiguous != options[j].ambiguous {
			return options[i].ambiguous < options[j].ambiguous
		}
		return options[i].weight > options[j].weight
	})
	best := options[0]

	payload := protocol.CallPayload{}
	for i, c := range best.set.Cards() {
		members := best.holders[i].Members()
		holder := members[0]
		if len(members) > 1 {
			holder = members[b.rng.Intn(len(members))]
		}
		payload.Claim = append(payload.Claim, protocol.ClaimEntry{
			Card:   int(c),
			Holder: g.Players[holder].ID,
		})
	}

	return protocol.MoveRequest{Type: protocol.CallMove, Call: payload}, true
}

// askMove ranks every (card, opponent) pair across the sets we hold a
// card of, preferring the most certainly located cards
func (b *Bot) askMove(g *game.Game, view tracker.View, seat int) (protocol.MoveRequest, bool) {
	opponents := teamSeats(g, 1-g.Players[seat].Team).Intersect(seatsWithCards(g))
	hand := map[deck.Card]bool{}
	live := map[deck.Set]bool{}
	for _, c := range g.HandOf(seat) {
		hand[c] = true
		live[c.Set()] = true
	}

	var (
		found     bool
		bestScore float64
		bestCard  deck.Card
		bestOpp   int
	)

	for set := range live {
		for _, c := range set.Cards() {
			if hand[c] {
				continue
			}
			belief := view.Beliefs[c]
			if !belief.InPlay {
				continue
			}

			holders := belief.Candidates.Intersect(opponents)
			if holders.Count() == 0 {
				continue
			}

			// a revealed card is a guaranteed hit; an unknown one is
			// ranked by how far elimination has narrowed it down
			score := belief.Weight
			if belief.Certain {
				score = tracker.MaxWeight * 2
			}

			if !found || score > bestScore {
				members := holders.Members()
				found = true
				bestScore = score
				bestCard = c
				bestOpp = members[b.rng.Intn(len(members))]
			}
		}
	}

	if !found {
		return protocol.MoveRequest{}, false
	}

	return protocol.MoveRequest{
		Type: protocol.AskMove,
		Ask:  protocol.AskPayload{AskedFrom: g.Players[bestOpp].ID, Card: int(bestCard)},
	}, true
}
