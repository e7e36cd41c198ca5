package common

import (
	"encoding/binary"
	"encoding/json"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Deck is an ordered set of the 52 standard cards. Sort and Shuffle reorder
// it in place; its contents never change. A Deck is owned by one goroutine.
type Deck struct {
	cards []Card
}

// NewDeck returns a deck in suit-major order: Ace..King of Spades, then
// Clubs, Diamonds and Hearts.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			cards = append(cards, NewCard(r, s))
		}
	}
	return &Deck{cards: cards}
}

// Cards returns a copy of the current order.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

func (d *Deck) Len() int { return len(d.cards) }

func (d *Deck) At(i int) Card { return d.cards[i] }

// Sort puts the deck in ascending card order (rank, then suit).
func (d *Deck) Sort() {
	slices.SortFunc(d.cards, Card.Compare)
}

// Shuffle shuffles with a fresh seed and returns it. Passing the seed to
// ShuffleWithSeed on a deck in the same starting order reproduces the result.
func (d *Deck) Shuffle() int32 {
	seed := NewSeed()
	d.ShuffleWithSeed(seed)
	return seed
}

// ShuffleWithSeed runs Fisher-Yates from the front of the deck using a
// Subtractive generator seeded with seed.
//
// The scan stops at len-3, so the last two positions are only settled by
// the final draw. Existing seeds depend on that bound; do not extend it.
func (d *Deck) ShuffleWithSeed(seed int32) {
	g := NewSubtractive(seed)
	n := len(d.cards)
	for i := 0; i < n-2; i++ {
		j := g.Range(i, n)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// String lists one card description per line.
func (d *Deck) String() string {
	lines := make([]string, len(d.cards))
	for i, c := range d.cards {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}

func (d *Deck) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.cards)
}

// NewSeed draws a seed from a random (v4) UUID folded down to 32 bits.
func NewSeed() int32 {
	id := uuid.New()
	var h uint32
	for i := 0; i < len(id); i += 4 {
		h ^= binary.LittleEndian.Uint32(id[i : i+4])
	}
	return int32(h)
}
