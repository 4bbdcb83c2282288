package game

import (
	"fmt"

	"github.com/minaorangina/literature/deck"
)

// The Apply functions are only ever invoked with facts from a successful
// validation, so execution itself cannot fail and is never partial.

// ApplyAsk moves the card to the asker on success, or hands the turn to
// the asked player on failure, and updates card tracking either way.
func (g *Game) ApplyAsk(f AskFacts) Ask {
	askerName := g.Players[f.Asker].Name
	fromName := g.Players[f.AskedFrom].Name

	var desc string
	if f.Holds {
		g.Owners[f.Card] = int8(f.Asker)
		g.CurrentTurn = f.Asker
		g.Tracker.ObserveSuccessfulAsk(f.Asker, f.Card)
		desc = fmt.Sprintf("%s asked %s for the %s and got it", askerName, fromName, f.Card)
	} else {
		g.CurrentTurn = f.AskedFrom
		g.Tracker.ObserveFailedAsk(f.Asker, f.AskedFrom, f.Card)
		desc = fmt.Sprintf("%s asked %s for the %s and was turned away", askerName, fromName, f.Card)
	}

	m := Ask{
		Asker:     f.Asker,
		AskedFrom: f.AskedFrom,
		Card:      f.Card,
		Success:   f.Holds,
		Desc:      desc,
	}
	g.Record(m)
	return m
}

// ApplyCall resolves the called set out of play, scores it for the
// winning team, and computes the next turn unless the game is over.
func (g *Game) ApplyCall(f CallFacts) Call {
	for _, c := range f.Set.Cards() {
		g.Owners[c] = noOwner
	}
	g.Tracker.ObserveCall(f.Set)
	g.SetsCalled++

	callerTeam := g.Players[f.Caller].Team
	winner := callerTeam
	if !f.Success {
		winner = 1 - callerTeam
	}
	g.Teams[winner].Score++
	g.Teams[winner].SetsWon = append(g.Teams[winner].SetsWon, f.Set)

	callerName := g.Players[f.Caller].Name
	var desc string
	if f.Success {
		desc = fmt.Sprintf("%s called %s correctly for %s", callerName, f.Set, g.Teams[winner].Name)
	} else {
		desc = fmt.Sprintf("%s called %s wrongly, handing it to %s", callerName, f.Set, g.Teams[winner].Name)
	}

	if g.SetsCalled == deck.NumSets {
		// ignoring the error: InProgress -> Completed is always legal here
		g.transition(Completed)
	} else {
		g.CurrentTurn = g.nextTurnAfterCall(f.Caller, f.Success)
	}

	m := Call{
		Caller:  f.Caller,
		Set:     f.Set,
		Claimed: f.Claimed,
		Actual:  f.Actual,
		Success: f.Success,
		Desc:    desc,
	}
	g.Record(m)
	return m
}

// ApplyTransfer hands the turn to the receiving teammate
func (g *Game) ApplyTransfer(f TransferFacts) Transfer {
	g.CurrentTurn = f.To

	m := Transfer{
		From: f.From,
		To:   f.To,
		Desc: fmt.Sprintf("%s passed the turn to %s", g.Players[f.From].Name, g.Players[f.To].Name),
	}
	g.Record(m)
	return m
}

// nextTurnAfterCall picks who plays after a call. A correct call keeps
// the initiative with the caller's side; a wrong one hands it to the
// opponents. The pick among teammates with cards is an arbitrary shuffle,
// deterministic only under a seeded rng.
func (g *Game) nextTurnAfterCall(caller int, success bool) int {
	if success && g.HandCount(caller) > 0 {
		return caller
	}

	own := g.Players[caller].Team
	order := [2]int{own, 1 - own}
	if !success {
		order = [2]int{1 - own, own}
	}

	for _, team := range order {
		if seat, ok := g.anySeatWithCards(team, caller); ok {
			return seat
		}
	}

	// nobody has cards; should not happen before the game completes
	return caller
}

func (g *Game) anySeatWithCards(team, exclude int) (int, bool) {
	seats := append([]int{}, g.Teams[team].Seats...)
	g.rng.Shuffle(len(seats), func(i, j int) { seats[i], seats[j] = seats[j], seats[i] })

	for _, s := range seats {
		if s != exclude && g.HandCount(s) > 0 {
			return s, true
		}
	}
	return 0, false
}
