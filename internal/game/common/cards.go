package common

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCard = errors.New("invalid card")
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidSuit = errors.New("invalid suit")
)

// Suit ordinals are part of the card order: Spades < Clubs < Diamonds < Hearts.
type Suit int

const (
	Spades Suit = iota
	Clubs
	Diamonds
	Hearts
)

// Rank ordinals run Ace (0, low) through King (12).
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

const (
	numSuits = 4
	numRanks = 13

	// DeckSize is the number of cards in a standard deck.
	DeckSize = numSuits * numRanks
)

var suitNames = [numSuits]string{"Spades", "Clubs", "Diamonds", "Hearts"}

var rankNames = [numRanks]string{
	"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

func (s Suit) Valid() bool { return s >= Spades && s <= Hearts }

func (r Rank) Valid() bool { return r >= Ace && r <= King }

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Suits returns every suit in ordinal order.
func Suits() []Suit {
	return []Suit{Spades, Clubs, Diamonds, Hearts}
}

// Ranks returns every rank in ordinal order.
func Ranks() []Rank {
	out := make([]Rank, 0, numRanks)
	for r := Ace; r <= King; r++ {
		out = append(out, r)
	}
	return out
}

// Card is an immutable (rank, suit) value. Cards are comparable with ==.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Compare orders cards by rank, then suit. It returns -1, 0 or +1.
func (c Card) Compare(other Card) int {
	switch {
	case c.Rank < other.Rank:
		return -1
	case c.Rank > other.Rank:
		return 1
	case c.Suit < other.Suit:
		return -1
	case c.Suit > other.Suit:
		return 1
	default:
		return 0
	}
}

func (c Card) Less(other Card) bool { return c.Compare(other) < 0 }

func (c Card) Equal(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// Hash mixes the ordinals; equal cards always hash equal.
func (c Card) Hash() int32 {
	return int32(c.Rank)*397 ^ int32(c.Suit)
}

// String describes the card, e.g. "Ace of Spades".
func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}
