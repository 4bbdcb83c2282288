package deck

import (
	"errors"
	"fmt"
)

// A Literature deck is a standard deck with the Sevens removed: 48 cards,
// split into 8 sets of 6. Each suit has a Low set (Ace to Six) and a High
// set (Eight to King).
const (
	NumCards     = 48
	NumSets      = 8
	SetSize      = 6
	ranksPerSuit = 12
)

// Rank represents a rank in a Literature deck. There is no Seven.
type Rank int

var rankNames = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	return rankNames[r]
}

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	return suitNames[s]
}

// Card identifies a single card as a compact index in [0, NumCards).
// Cards are ordered by suit, then rank, so a card's set is card/SetSize.
type Card int

// NewCard constructs a card from its rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card(int(suit)*ranksPerSuit + int(rank))
}

// ParseCard validates a raw card index from the wire
func ParseCard(idx int) (Card, error) {
	if idx < 0 || idx >= NumCards {
		return 0, errors.New("card index out of range")
	}
	return Card(idx), nil
}

// Rank returns a card's rank
func (c Card) Rank() Rank {
	return Rank(int(c) % ranksPerSuit)
}

// Suit returns a card's suit
func (c Card) Suit() Suit {
	return Suit(int(c) / ranksPerSuit)
}

// Set returns the set a card belongs to
func (c Card) Set() Set {
	return Set(int(c) / SetSize)
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank(), c.Suit())
}

// Set identifies one of the 8 callable six-card sets
type Set int

// ParseSet validates a raw set index from the wire
func ParseSet(idx int) (Set, error) {
	if idx < 0 || idx >= NumSets {
		return 0, errors.New("set index out of range")
	}
	return Set(idx), nil
}

// Suit returns the suit a set belongs to
func (s Set) Suit() Suit {
	return Suit(int(s) / 2)
}

// High reports whether the set is the high half of its suit (Eight to King)
func (s Set) High() bool {
	return int(s)%2 == 1
}

// Cards returns the six cards of a set in rank order
func (s Set) Cards() [SetSize]Card {
	var cards [SetSize]Card
	for i := 0; i < SetSize; i++ {
		cards[i] = Card(int(s)*SetSize + i)
	}
	return cards
}

func (s Set) String() string {
	half := "Low"
	if s.High() {
		half = "High"
	}
	return fmt.Sprintf("%s %s", half, s.Suit())
}
