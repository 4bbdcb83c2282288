package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/minaorangina/literature/deck"
	"github.com/minaorangina/literature/tracker"
)

var (
	ErrPlayerCount     = errors.New("games are for 6 or 8 players")
	ErrGameFull        = errors.New("game is full")
	ErrDuplicatePlayer = errors.New("player is already in the game")
	ErrPlayersNotReady = errors.New("game does not have its full complement of players")
	ErrTeamsNotFormed  = errors.New("teams have not been formed")
	ErrWrongSizedDeck  = errors.New("a full 48-card deck is required to deal")
)

// ValidationError means a proposed move is illegal given current state.
// Validation never mutates anything, so a rejected move is safe to retry
// with corrected input.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

// Player represents a seat at the table
type Player struct {
	ID    string
	Name  string
	Seat  int
	Team  int // -1 until teams are formed
	IsBot bool
}

// Team is one side of the table
type Team struct {
	Name    string
	Score   int
	SetsWon []deck.Set
	Seats   []int
}

const noOwner = int8(-1)

// Game is the authoritative state of one Literature game. It is not safe
// for concurrent use; the engine serializes access to it.
type Game struct {
	ID         string
	JoinCode   string
	NumPlayers int
	Status     Status
	Players    []Player
	Teams      [2]Team

	// Owners maps each card to the seat holding it, or noOwner once the
	// card's set has been called out of play (or before dealing).
	Owners [deck.NumCards]int8

	CurrentTurn int
	SetsCalled  int

	// Moves is the move log, most recent first
	Moves []Move

	Tracker *tracker.Tracker

	rng *rand.Rand
}

// New constructs a game waiting for players. A nil rng gets a time-seeded
// one; tests pass their own to pin the deal and turn tie-breaks.
func New(id, joinCode string, numPlayers int, rng *rand.Rand) (*Game, error) {
	if numPlayers != 6 && numPlayers != 8 {
		return nil, ErrPlayerCount
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		ID:          id,
		JoinCode:    joinCode,
		NumPlayers:  numPlayers,
		CurrentTurn: -1,
		rng:         rng,
	}
	for i := range g.Owners {
		g.Owners[i] = noOwner
	}

	return g, nil
}

// AddPlayer seats a joining player. When the table is full the game moves
// to PlayersReady and further joins are rejected.
func (g *Game) AddPlayer(id, name string, isBot bool) error {
	if g.Status != Created {
		return ErrGameFull
	}
	for _, p := range g.Players {
		if p.ID == id {
			return ErrDuplicatePlayer
		}
	}

	g.Players = append(g.Players, Player{
		ID:    id,
		Name:  name,
		Seat:  len(g.Players),
		Team:  -1,
		IsBot: isBot,
	})

	if len(g.Players) == g.NumPlayers {
		return g.transition(PlayersReady)
	}
	return nil
}

// FormTeams splits the table into two equal teams, alternating by seat so
// turn order weaves between the sides.
func (g *Game) FormTeams(nameA, nameB string) error {
	if g.Status != PlayersReady {
		return ErrPlayersNotReady
	}

	g.Teams[0] = Team{Name: nameA}
	g.Teams[1] = Team{Name: nameB}

	for i := range g.Players {
		team := i % 2
		g.Players[i].Team = team
		g.Teams[team].Seats = append(g.Teams[team].Seats, i)
	}

	return g.transition(TeamsCreated)
}

// Deal assigns the full deck round-robin, initialises card tracking and
// picks a random opening turn. The game is now in progress.
func (g *Game) Deal(d deck.Deck) error {
	if g.Status != TeamsCreated {
		return ErrTeamsNotFormed
	}
	if len(d) != deck.NumCards {
		return ErrWrongSizedDeck
	}

	for i, c := range d {
		g.Owners[c] = int8(i % g.NumPlayers)
	}

	g.Tracker = tracker.New(g.NumPlayers)
	g.CurrentTurn = g.rng.Intn(g.NumPlayers)

	return g.transition(InProgress)
}

// DealShuffled shuffles a fresh deck with the game's own rng and deals it
func (g *Game) DealShuffled() error {
	d := deck.New()
	d.Shuffle(g.rng)
	return g.Deal(d)
}

// Seat resolves a player ID to their seat
func (g *Game) Seat(playerID string) (int, bool) {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p.Seat, true
		}
	}
	return -1, false
}

// HandCount returns the number of cards a seat currently holds
func (g *Game) HandCount(seat int) int {
	n := 0
	for _, owner := range g.Owners {
		if owner == int8(seat) {
			n++
		}
	}
	return n
}

// HandOf returns the cards a seat currently holds, in card order
func (g *Game) HandOf(seat int) []deck.Card {
	hand := []deck.Card{}
	for i, owner := range g.Owners {
		if owner == int8(seat) {
			hand = append(hand, deck.Card(i))
		}
	}
	return hand
}

// LastMove returns the most recent move, or nil before any move
func (g *Game) LastMove() Move {
	if len(g.Moves) == 0 {
		return nil
	}
	return g.Moves[0]
}

// Record prepends a move to the log. The executor calls it after every
// applied move; it is exported so state can be rebuilt from a stored log.
func (g *Game) Record(m Move) {
	g.Moves = append([]Move{m}, g.Moves...)
}

func (g *Game) setInPlay(s deck.Set) bool {
	for _, c := range s.Cards() {
		if g.Owners[c] != noOwner {
			return true
		}
	}
	return false
}
