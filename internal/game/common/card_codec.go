package common

import (
	"encoding/json"
	"fmt"
	"strings"
)

var rankSymbols = [numRanks]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

var suitLetters = [numSuits]string{"S", "C", "D", "H"}

// Code returns the short form of the card: "AS", "10H", "QD".
func (c Card) Code() string {
	if !c.Rank.Valid() || !c.Suit.Valid() {
		return "??"
	}
	return rankSymbols[c.Rank] + suitLetters[c.Suit]
}

// ParseRank accepts a rank name ("Queen") or symbol ("Q", "10", "T"), case-insensitive.
func ParseRank(s string) (Rank, error) {
	s = strings.TrimSpace(s)
	for r := Ace; r <= King; r++ {
		if strings.EqualFold(s, rankNames[r]) || strings.EqualFold(s, rankSymbols[r]) {
			return r, nil
		}
	}
	if strings.EqualFold(s, "T") {
		return Ten, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
}

// ParseSuit accepts a suit name ("Hearts") or letter ("H"), case-insensitive.
func ParseSuit(s string) (Suit, error) {
	s = strings.TrimSpace(s)
	for su := Spades; su <= Hearts; su++ {
		if strings.EqualFold(s, suitNames[su]) || strings.EqualFold(s, suitLetters[su]) {
			return su, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

// ParseCard reads either the short form ("QH", "10s", "Td") or the
// description form ("Queen of Hearts").
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if rs, ss, ok := cutFold(s, " of "); ok {
		r, err := ParseRank(rs)
		if err != nil {
			return Card{}, fmt.Errorf("%w: %v", ErrInvalidCard, err)
		}
		su, err := ParseSuit(ss)
		if err != nil {
			return Card{}, fmt.Errorf("%w: %v", ErrInvalidCard, err)
		}
		return NewCard(r, su), nil
	}
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	r, err := ParseRank(s[:len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	su, err := ParseSuit(s[len(s)-1:])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	return NewCard(r, su), nil
}

// cutFold is strings.Cut with ASCII case folding. It compares byte windows of
// s so the returned indexes stay valid for input that is not UTF-8.
func cutFold(s, sep string) (before, after string, ok bool) {
	for i := 0; i+len(sep) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(sep)], sep) {
			return s[:i], s[i+len(sep):], true
		}
	}
	return s, "", false
}

func (r Rank) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRank, int(r))
	}
	return json.Marshal(rankNames[r])
}

func (r *Rank) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for v := Ace; v <= King; v++ {
		if s == rankNames[v] {
			*r = v
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidRank, s)
}

func (s Suit) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSuit, int(s))
	}
	return json.Marshal(suitNames[s])
}

func (s *Suit) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	for v := Spades; v <= Hearts; v++ {
		if str == suitNames[v] {
			*s = v
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidSuit, str)
}
