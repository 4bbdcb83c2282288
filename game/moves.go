package game

import (
	"github.com/minaorangina/literature/deck"
)

// Claim assigns a holder seat to each card of a set, in set order
// (Claim[i] is the claimed holder of Set.Cards()[i]).
type Claim [deck.SetSize]int

// Move is a closed sum over the three move kinds. The executor and
// tracker dispatch on the concrete type.
type Move interface {
	Succeeded() bool
	Description() string
	isMove()
}

// Ask records a request for a specific card from an opponent
type Ask struct {
	Asker     int
	AskedFrom int
	Card      deck.Card
	Success   bool
	Desc      string
}

func (a Ask) Succeeded() bool     { return a.Success }
func (a Ask) Description() string { return a.Desc }
func (a Ask) isMove()             {}

// Call records a declaration of a full set's holders. Claimed is the
// caller's assignment, Actual the true one at call time.
type Call struct {
	Caller  int
	Set     deck.Set
	Claimed Claim
	Actual  Claim
	Success bool
	Desc    string
}

func (c Call) Succeeded() bool     { return c.Success }
func (c Call) Description() string { return c.Desc }
func (c Call) isMove()             {}

// Transfer records the turn passing to a teammate after a successful call
type Transfer struct {
	From int
	To   int
	Desc string
}

func (t Transfer) Succeeded() bool     { return true }
func (t Transfer) Description() string { return t.Desc }
func (t Transfer) isMove()             {}
