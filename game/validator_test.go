package game

import (
	"testing"

	"github.com/minaorangina/literature/deck"
	utils "github.com/minaorangina/literature/internal"
	"github.com/minaorangina/literature/protocol"
	"github.com/stretchr/testify/assert"
)

func TestValidateAsk(t *testing.T) {
	t.Run("rejects asks out of turn", func(t *testing.T) {
		g := sixPlayerGame(t)
		g.CurrentTurn = 1

		_, err := g.ValidateAsk("p1", askPayload("p4", 3))
		utils.AssertEqual(t, err, ErrNotYourTurn)
	})

	t.Run("rejects unknown players and cards", func(t *testing.T) {
		g := sixPlayerGame(t)
		g.CurrentTurn = 0

		_, err := g.ValidateAsk("nobody", askPayload("p4", 3))
		utils.AssertEqual(t, err, ErrUnknownPlayer)

		_, err = g.ValidateAsk("p1", askPayload("nobody", 3))
		utils.AssertEqual(t, err, ErrUnknownPlayer)

		_, err = g.ValidateAsk("p1", askPayload("p4", deck.NumCards))
		utils.AssertEqual(t, err, ErrUnknownCard)
	})

	t.Run("rejects asking a teammate", func(t *testing.T) {
		g := sixPlayerGame(t)
		g.CurrentTurn = 0

		// p3 sits with p1 on the Reds
		_, err := g.ValidateAsk("p1", askPayload("p3", 2))
		utils.AssertEqual(t, err, ErrSameTeamAsk)

		// asking yourself is the degenerate same-team case
		_, err = g.ValidateAsk("p1", askPayload("p1", 2))
		utils.AssertEqual(t, err, ErrSameTeamAsk)
	})

	t.Run("rejects asking for a card in your own hand", func(t *testing.T) {
		g := sixPlayerGame(t)
		g.CurrentTurn = 0

		// card 6 sits with seat 0 under the deterministic deal
		_, err := g.ValidateAsk("p1", askPayload("p4", 6))
		utils.AssertEqual(t, err, ErrCardInOwnHand)
	})

	t.Run("rejects asking for a resolved card", func(t *testing.T) {
		g := sixPlayerGame(t)
		g.CurrentTurn = 0
		for _, c := range deck.Set(0).Cards() {
			g.Owners[c] = noOwner
		}
		g.SetsCalled++

		_, err := g.ValidateAsk("p1", askPayload("p4", 3))
		utils.AssertEqual(t, err, ErrCardOutOfPlay)
	})

	t.Run("resolves whether the asked player holds the card", func(t *testing.T) {
		g := sixPlayerGame(t)
		g.CurrentTurn = 0

		// p4 is seat 3 and holds card 3
		facts, err := g.ValidateAsk("p1", askPayload("p4", 3))
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, facts.Holds)
		utils.AssertEqual(t, facts.AskedFrom, 3)
		utils.AssertEqual(t, facts.Card, deck.Card(3))

		// card 2 sits with p3, not p4
		facts, err = g.ValidateAsk("p1", askPayload("p4", 2))
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, !facts.Holds)
	})

	t.Run("validation has no side effects", func(t *testing.T) {
		g := sixPlayerGame(t)
		g.CurrentTurn = 0
		before := g.Owners

		g.ValidateAsk("p1", askPayload("p4", 3))
		g.ValidateAsk("p1", askPayload("p3", 2))

		assert.Equal(t, before, g.Owners)
		utils.AssertEqual(t, g.CurrentTurn, 0)
		utils.AssertEqual(t, len(g.Moves), 0)
	})
}

func TestValidateCall(t *testing.T) {
	readyToCall := func(t *testing.T) *Game {
		t.Helper()
		g := sixPlayerGame(t)
		giveSetToReds(g, deck.Set(0))
		g.CurrentTurn = 0
		return g
	}

	t.Run("accepts a correct claim", func(t *testing.T) {
		g := readyToCall(t)

		facts, err := g.ValidateCall("p1", callPayload(g, deck.Set(0)))
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, facts.Success)
		utils.AssertEqual(t, facts.Set, deck.Set(0))
		assert.Equal(t, facts.Claimed, facts.Actual)
	})

	t.Run("a misnamed holder fails the call but validates", func(t *testing.T) {
		g := readyToCall(t)

		p := callPayload(g, deck.Set(0))
		p.Claim[2].Holder = "p5" // actually with p3
		facts, err := g.ValidateCall("p1", p)
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, !facts.Success)
	})

	t.Run("claim shape errors", func(t *testing.T) {
		g := readyToCall(t)

		cases := []struct {
			name    string
			mutate  func(*protocol.CallPayload)
			wantErr error
		}{
			{
				name:    "too few cards",
				mutate:  func(p *protocol.CallPayload) { p.Claim = p.Claim[:5] },
				wantErr: ErrClaimSize,
			},
			{
				name:    "card from another set",
				mutate:  func(p *protocol.CallPayload) { p.Claim[5].Card = int(deck.NewCard(deck.King, deck.Spades)) },
				wantErr: ErrClaimNotOneSet,
			},
			{
				name:    "duplicate card",
				mutate:  func(p *protocol.CallPayload) { p.Claim[5].Card = p.Claim[4].Card },
				wantErr: ErrClaimDuplicateCard,
			},
			{
				name:    "unknown holder",
				mutate:  func(p *protocol.CallPayload) { p.Claim[3].Holder = "nobody" },
				wantErr: ErrUnknownPlayer,
			},
			{
				name:    "cross-team claim",
				mutate:  func(p *protocol.CallPayload) { p.Claim[3].Holder = "p2" },
				wantErr: ErrClaimCrossTeam,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				p := callPayload(g, deck.Set(0))
				tc.mutate(&p)
				_, err := g.ValidateCall("p1", p)
				utils.AssertEqual(t, err, tc.wantErr)
			})
		}
	})

	t.Run("the caller must claim a card of their own", func(t *testing.T) {
		g := readyToCall(t)

		p := callPayload(g, deck.Set(0))
		// reassign p1's two claimed cards to teammates
		p.Claim[0].Holder = "p3"
		p.Claim[1].Holder = "p5"
		_, err := g.ValidateCall("p1", p)
		utils.AssertEqual(t, err, ErrCallerNotInClaim)
	})

	t.Run("a called-out set cannot be called again", func(t *testing.T) {
		g := readyToCall(t)
		p := callPayload(g, deck.Set(0))

		facts, err := g.ValidateCall("p1", p)
		utils.AssertNoError(t, err)
		g.ApplyCall(facts)

		g.CurrentTurn = 0
		_, err = g.ValidateCall("p1", p)
		utils.AssertEqual(t, err, ErrSetOutOfPlay)
	})
}

func TestValidateTransfer(t *testing.T) {
	afterOwnCall := func(t *testing.T) *Game {
		t.Helper()
		g := sixPlayerGame(t)
		g.Record(Call{Caller: 0, Set: deck.Set(0), Success: true})
		g.CurrentTurn = 0
		return g
	}

	t.Run("requires the mover's own successful call", func(t *testing.T) {
		g := sixPlayerGame(t)
		g.CurrentTurn = 0

		_, err := g.ValidateTransfer("p1", protocol.TransferPayload{TransferTo: "p3"})
		utils.AssertEqual(t, err, ErrTransferNotAfterCall)

		// someone else's call doesn't count
		g.Record(Call{Caller: 2, Set: deck.Set(0), Success: true})
		_, err = g.ValidateTransfer("p1", protocol.TransferPayload{TransferTo: "p3"})
		utils.AssertEqual(t, err, ErrTransferNotAfterCall)

		// nor does the mover's failed call
		g.Record(Call{Caller: 0, Set: deck.Set(1), Success: false})
		_, err = g.ValidateTransfer("p1", protocol.TransferPayload{TransferTo: "p3"})
		utils.AssertEqual(t, err, ErrTransferNotAfterCall)
	})

	t.Run("only teammates with cards can receive the turn", func(t *testing.T) {
		g := afterOwnCall(t)

		_, err := g.ValidateTransfer("p1", protocol.TransferPayload{TransferTo: "p4"})
		utils.AssertEqual(t, err, ErrTransferNotTeammate)

		_, err = g.ValidateTransfer("p1", protocol.TransferPayload{TransferTo: "p1"})
		utils.AssertEqual(t, err, ErrTransferNotTeammate)

		// strip p5's cards
		for i, owner := range g.Owners {
			if owner == 4 {
				g.Owners[i] = 2
			}
		}
		_, err = g.ValidateTransfer("p1", protocol.TransferPayload{TransferTo: "p5"})
		utils.AssertEqual(t, err, ErrTransferNoCards)

		facts, err := g.ValidateTransfer("p1", protocol.TransferPayload{TransferTo: "p3"})
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, facts.To, 2)
	})
}
