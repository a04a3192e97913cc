package poker

import (
	"errors"
	"fmt"
	"strings"
)

// Card is a single playing card encoded as suit*13 + rank.
type Card uint8

// NoCard marks an unused slot.
const NoCard Card = 255

// Ranks, lowest first.
const (
	Two uint8 = iota
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
	Ace
)

// Suits, in text-notation order.
const (
	Clubs uint8 = iota
	Diamonds
	Hearts
	Spades
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

// ErrInvalidCard is returned when a card token cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// NewCard builds a card from a rank (0-12) and suit (0-3).
func NewCard(rank, suit uint8) Card {
	return Card(suit*13 + rank)
}

// CardFromCode wraps a raw card code without validation.
func CardFromCode(code uint8) Card {
	return Card(code)
}

// Rank returns 0 (two) through 12 (ace).
func (c Card) Rank() uint8 {
	return uint8(c) % 13
}

// Suit returns 0 (clubs) through 3 (spades).
func (c Card) Suit() uint8 {
	return uint8(c) / 13
}

// IsValid reports whether c is one of the 52 real cards.
func (c Card) IsValid() bool {
	return c < 52
}

// String returns the two-character notation, e.g. "As".
func (c Card) String() string {
	if !c.IsValid() {
		return "??"
	}
	return string([]byte{rankChars[c.Rank()], suitChars[c.Suit()]})
}

// ParseCard parses a two-character token such as "Td" or "2c".
// Parsing is case-sensitive.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return NoCard, fmt.Errorf("%w %q: want 2 characters, got %d", ErrInvalidCard, s, len(s))
	}
	rank := strings.IndexByte(rankChars, s[0])
	if rank < 0 {
		return NoCard, fmt.Errorf("%w %q: unknown rank %q", ErrInvalidCard, s, s[0])
	}
	suit := strings.IndexByte(suitChars, s[1])
	if suit < 0 {
		return NoCard, fmt.Errorf("%w %q: unknown suit %q", ErrInvalidCard, s, s[1])
	}
	return NewCard(uint8(rank), uint8(suit)), nil
}

// MustParseCard is like ParseCard but panics on malformed input.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}
