package models

import (
	"fmt"
	"strconv"
	"strings"

	"card-shuffler-go/internal/game/common"
)

// Deck orders accepted by BuildDeck.
const (
	OrderInitial  = "initial"
	OrderSorted   = "sorted"
	OrderShuffled = "shuffled"
)

// Output formats for a deck listing.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// DeckRequest describes which deck to build. Seed is only read for the
// shuffled order; nil means draw a fresh one.
type DeckRequest struct {
	Order string
	Seed  *int32
}

type DeckResponse struct {
	Order string        `json:"order"`
	Seed  *int32        `json:"seed,omitempty"`
	Count int           `json:"count"`
	Cards []common.Card `json:"cards"`
}

type CompareResponse struct {
	A      common.Card `json:"a"`
	B      common.Card `json:"b"`
	Result int         `json:"result"`
	Equal  bool        `json:"equal"`
}

// ParseSeed reads a decimal signed 32-bit seed.
func ParseSeed(s string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeed, s)
	}
	return int32(n), nil
}

// ParseFormat normalizes a format name; empty means JSON.
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatText, "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// BuildDeck constructs a fresh deck and puts it in the requested order.
func BuildDeck(req DeckRequest) (*common.Deck, DeckResponse, error) {
	d := common.NewDeck()
	resp := DeckResponse{Order: req.Order}
	switch req.Order {
	case "", OrderInitial:
		resp.Order = OrderInitial
	case OrderSorted:
		d.Sort()
	case OrderShuffled:
		var seed int32
		if req.Seed != nil {
			seed = *req.Seed
			d.ShuffleWithSeed(seed)
		} else {
			seed = d.Shuffle()
		}
		resp.Seed = &seed
	default:
		return nil, DeckResponse{}, fmt.Errorf("%w: %q", ErrInvalidOrder, req.Order)
	}
	resp.Cards = d.Cards()
	resp.Count = len(resp.Cards)
	return d, resp, nil
}

// CompareCards parses two cards and orders them.
func CompareCards(a, b string) (CompareResponse, error) {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return CompareResponse{}, ErrMissingCard
	}
	ca, err := common.ParseCard(a)
	if err != nil {
		return CompareResponse{}, err
	}
	cb, err := common.ParseCard(b)
	if err != nil {
		return CompareResponse{}, err
	}
	return CompareResponse{A: ca, B: cb, Result: ca.Compare(cb), Equal: ca.Equal(cb)}, nil
}
