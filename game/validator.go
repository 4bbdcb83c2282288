package game

import (
	"github.com/minaorangina/literature/deck"
	"github.com/minaorangina/literature/protocol"
)

var (
	ErrNotInProgress        = ValidationError("game is not in progress")
	ErrNotYourTurn          = ValidationError("it is not your turn")
	ErrUnknownPlayer        = ValidationError("player is not in this game")
	ErrUnknownCard          = ValidationError("unknown card")
	ErrSameTeamAsk          = ValidationError("cannot ask a teammate for a card")
	ErrCardInOwnHand        = ValidationError("cannot ask for a card you hold")
	ErrCardOutOfPlay        = ValidationError("card is no longer in play")
	ErrClaimSize            = ValidationError("a call must name exactly 6 cards")
	ErrClaimNotOneSet       = ValidationError("a call must cover a single set")
	ErrClaimDuplicateCard   = ValidationError("a call names the same card twice")
	ErrCallerNotInClaim     = ValidationError("the caller must claim at least one card as their own")
	ErrClaimCrossTeam       = ValidationError("a call must name players from one team only")
	ErrSetOutOfPlay         = ValidationError("set has already been called")
	ErrTransferNotAfterCall = ValidationError("a transfer must follow your own successful call")
	ErrTransferNotTeammate  = ValidationError("the turn can only be transferred to a teammate")
	ErrTransferNoCards      = ValidationError("transfer target has no cards left")
)

// AskFacts is everything the executor needs to apply a validated ask
type AskFacts struct {
	Asker     int
	AskedFrom int
	Card      deck.Card
	Holds     bool
}

// CallFacts is everything the executor needs to apply a validated call
type CallFacts struct {
	Caller  int
	Set     deck.Set
	Claimed Claim
	Actual  Claim
	Success bool
}

// TransferFacts is everything the executor needs to apply a validated transfer
type TransferFacts struct {
	From int
	To   int
}

// turnOf checks the shared preconditions for every move type and resolves
// the acting player's seat
func (g *Game) turnOf(playerID string) (int, error) {
	if g.Status != InProgress {
		return -1, ErrNotInProgress
	}
	seat, ok := g.Seat(playerID)
	if !ok {
		return -1, ErrUnknownPlayer
	}
	if seat != g.CurrentTurn {
		return -1, ErrNotYourTurn
	}
	return seat, nil
}

// ValidateAsk checks an ask against current state. It never mutates
// anything; the resolved facts carry whether the ask will succeed.
func (g *Game) ValidateAsk(playerID string, p protocol.AskPayload) (AskFacts, error) {
	seat, err := g.turnOf(playerID)
	if err != nil {
		return AskFacts{}, err
	}

	from, ok := g.Seat(p.AskedFrom)
	if !ok {
		return AskFacts{}, ErrUnknownPlayer
	}

	card, err := deck.ParseCard(p.Card)
	if err != nil {
		return AskFacts{}, ErrUnknownCard
	}

	if g.Players[from].Team == g.Players[seat].Team {
		return AskFacts{}, ErrSameTeamAsk
	}
	if g.Owners[card] == int8(seat) {
		return AskFacts{}, ErrCardInOwnHand
	}
	if g.Owners[card] == noOwner {
		return AskFacts{}, ErrCardOutOfPlay
	}

	return AskFacts{
		Asker:     seat,
		AskedFrom: from,
		Card:      card,
		Holds:     g.Owners[card] == int8(from),
	}, nil
}

// ValidateCall checks a call claim against current state. The claim must
// name all six cards of one in-play set, held entirely within the caller's
// team and including at least one of the caller's own cards.
func (g *Game) ValidateCall(playerID string, p protocol.CallPayload) (CallFacts, error) {
	seat, err := g.turnOf(playerID)
	if err != nil {
		return CallFacts{}, err
	}

	if len(p.Claim) != deck.SetSize {
		return CallFacts{}, ErrClaimSize
	}

	var (
		set         deck.Set
		claimed     Claim
		cardClaimed [deck.SetSize]bool
		callerNamed bool
	)

	for i, entry := range p.Claim {
		card, err := deck.ParseCard(entry.Card)
		if err != nil {
			return CallFacts{}, ErrUnknownCard
		}

		if i == 0 {
			set = card.Set()
		} else if card.Set() != set {
			return CallFacts{}, ErrClaimNotOneSet
		}

		pos := int(card) % deck.SetSize
		if cardClaimed[pos] {
			return CallFacts{}, ErrClaimDuplicateCard
		}
		cardClaimed[pos] = true

		holder, ok := g.Seat(entry.Holder)
		if !ok {
			return CallFacts{}, ErrUnknownPlayer
		}
		if g.Players[holder].Team != g.Players[seat].Team {
			return CallFacts{}, ErrClaimCrossTeam
		}
		if holder == seat {
			callerNamed = true
		}

		claimed[pos] = holder
	}

	if !callerNamed {
		return CallFacts{}, ErrCallerNotInClaim
	}
	if !g.setInPlay(set) {
		return CallFacts{}, ErrSetOutOfPlay
	}

	var actual Claim
	success := true
	for i, c := range set.Cards() {
		actual[i] = int(g.Owners[c])
		if actual[i] != claimed[i] {
			success = false
		}
	}

	return CallFacts{
		Caller:  seat,
		Set:     set,
		Claimed: claimed,
		Actual:  actual,
		Success: success,
	}, nil
}

// ValidateTransfer checks a turn transfer. It is only legal immediately
// after the acting player's own successful call, to a teammate who still
// holds at least one card.
func (g *Game) ValidateTransfer(playerID string, p protocol.TransferPayload) (TransferFacts, error) {
	seat, err := g.turnOf(playerID)
	if err != nil {
		return TransferFacts{}, err
	}

	call, ok := g.LastMove().(Call)
	if !ok || !call.Success || call.Caller != seat {
		return TransferFacts{}, ErrTransferNotAfterCall
	}

	to, ok := g.Seat(p.TransferTo)
	if !ok {
		return TransferFacts{}, ErrUnknownPlayer
	}
	if to == seat || g.Players[to].Team != g.Players[seat].Team {
		return TransferFacts{}, ErrTransferNotTeammate
	}
	if g.HandCount(to) == 0 {
		return TransferFacts{}, ErrTransferNoCards
	}

	return TransferFacts{From: seat, To: to}, nil
}
