package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/minaorangina/literature/deck"
	utils "github.com/minaorangina/literature/internal"
	"github.com/minaorangina/literature/protocol"
)

var testNames = []string{"Ava", "Ben", "Cleo", "Dan", "Edie", "Fred", "Gus", "Hana"}

// sixPlayerGame builds an in-progress 6-player game with a deterministic
// deal: the deck is unshuffled, so card c sits with seat c%6. Seats
// alternate between the Reds (0, 2, 4) and the Blues (1, 3, 5).
func sixPlayerGame(t *testing.T) *Game {
	t.Helper()

	g, err := New("game-id", "ABCDEF", 6, rand.New(rand.NewSource(42)))
	utils.AssertNoError(t, err)

	for i := 0; i < 6; i++ {
		utils.AssertNoError(t, g.AddPlayer(playerID(i), testNames[i], false))
	}
	utils.AssertNoError(t, g.FormTeams("Reds", "Blues"))
	utils.AssertNoError(t, g.Deal(deck.New()))

	return g
}

func playerID(seat int) string {
	return fmt.Sprintf("p%d", seat+1)
}

// giveSetToReds rearranges ownership of a set so the Reds hold all of it:
// two cards with seat 0 and four spread over seats 2 and 4
func giveSetToReds(g *Game, s deck.Set) {
	seats := []int{0, 0, 2, 2, 4, 4}
	for i, c := range s.Cards() {
		g.Owners[c] = int8(seats[i])
	}
}

func askPayload(from string, card int) protocol.AskPayload {
	return protocol.AskPayload{AskedFrom: from, Card: card}
}

// callPayload builds a correct claim for a set straight off the owner mapping
func callPayload(g *Game, s deck.Set) protocol.CallPayload {
	p := protocol.CallPayload{}
	for _, c := range s.Cards() {
		p.Claim = append(p.Claim, protocol.ClaimEntry{
			Card:   int(c),
			Holder: g.Players[int(g.Owners[c])].ID,
		})
	}
	return p
}

func claimFor(g *Game, s deck.Set) Claim {
	var claim Claim
	for i, c := range s.Cards() {
		claim[i] = int(g.Owners[c])
	}
	return claim
}

func cardsAccountedFor(g *Game) bool {
	total := 0
	for _, p := range g.Players {
		total += g.HandCount(p.Seat)
	}
	return total+deck.SetSize*g.SetsCalled == deck.NumCards
}
