package poker

import (
	"errors"
	"fmt"
	"strings"
)

// MaxCards is the capacity of a CardSet: five community cards plus two hole cards.
const MaxCards = 7

// ErrTooManyCards is returned (or panicked with) when more than MaxCards cards are supplied.
var ErrTooManyCards = errors.New("card set holds at most 7 cards")

// CardSet is a fixed-capacity ordered set of up to seven cards.
// Occupied slots are always the first Len() entries; the rest hold NoCard.
// Callers guarantee the occupied cards are distinct.
type CardSet struct {
	cards [MaxCards]Card
	size  uint8
}

// NewCardSet builds a set from the given cards. It panics if more than MaxCards are given.
func NewCardSet(cards ...Card) CardSet {
	if len(cards) > MaxCards {
		panic(fmt.Errorf("%w: got %d", ErrTooManyCards, len(cards)))
	}
	cs := emptyCardSet()
	cs.SetCardsPartial(cards, 0)
	return cs
}

// CardSetFromCodes builds a set from raw card codes.
func CardSetFromCodes(codes []uint8) CardSet {
	if len(codes) > MaxCards {
		panic(fmt.Errorf("%w: got %d", ErrTooManyCards, len(codes)))
	}
	cs := emptyCardSet()
	for i, code := range codes {
		cs.cards[i] = Card(code)
	}
	cs.size = uint8(len(codes))
	return cs
}

// ParseCardSet parses card tokens laid out on a 3-character stride, e.g. "4h 2c 3c As".
// The character between tokens is ignored.
func ParseCardSet(s string) (CardSet, error) {
	cs := emptyCardSet()
	if s == "" {
		return cs, nil
	}
	if len(s)%3 == 1 {
		return cs, fmt.Errorf("%w %q: dangling character", ErrInvalidCard, s)
	}
	count := (len(s) + 1) / 3
	if count > MaxCards {
		return cs, fmt.Errorf("%w: got %d", ErrTooManyCards, count)
	}
	for i := 0; i < count; i++ {
		c, err := ParseCard(s[i*3 : i*3+2])
		if err != nil {
			return emptyCardSet(), err
		}
		cs.cards[i] = c
	}
	cs.size = uint8(count)
	return cs, nil
}

// MustParseCardSet is like ParseCardSet but panics on malformed input.
func MustParseCardSet(s string) CardSet {
	cs, err := ParseCardSet(s)
	if err != nil {
		panic(err)
	}
	return cs
}

func emptyCardSet() CardSet {
	var cs CardSet
	for i := range cs.cards {
		cs.cards[i] = NoCard
	}
	return cs
}

// Len returns the number of occupied slots.
func (cs *CardSet) Len() int {
	return int(cs.size)
}

// Cards returns the occupied slots. The slice aliases the set's storage.
func (cs *CardSet) Cards() []Card {
	return cs.cards[:cs.size]
}

// At returns the card in slot i.
func (cs *CardSet) At(i int) Card {
	return cs.cards[i]
}

// SetCardsPartial overlays cards starting at offset, growing the set if needed.
// This is how community and hole cards are merged into one 7-card set.
func (cs *CardSet) SetCardsPartial(cards []Card, offset int) {
	if offset+len(cards) > MaxCards {
		panic(fmt.Errorf("%w: offset %d + %d cards", ErrTooManyCards, offset, len(cards)))
	}
	copy(cs.cards[offset:], cards)
	if end := uint8(offset + len(cards)); end > cs.size {
		cs.size = end
	}
}

// Increment advances the set to the next strictly increasing combination of card codes.
// It returns false once the last combination has been passed; the contents are then
// meaningless. Used to enumerate all C(52, n) sets.
func (cs *CardSet) Increment() bool {
	n := int(cs.size)
	if n == 0 {
		return false
	}
	cs.cards[n-1]++
	for i := n - 1; i >= 0; i-- {
		if int(cs.cards[i]) >= 52-(n-1-i) {
			if i == 0 {
				return false
			}
			cs.cards[i-1]++
			continue
		}
		for j := i + 1; j < n; j++ {
			cs.cards[j] = cs.cards[i] + Card(j-i)
		}
		break
	}
	return true
}

// Identifier packs all seven slots into a 42-bit key, six bits per slot, first slot
// most significant. Empty slots contribute 0x3f. Canonicalized sets that are
// suit-isomorphic share an identifier.
func (cs CardSet) Identifier() uint64 {
	var id uint64
	for _, c := range cs.cards {
		id = id<<6 | uint64(c&0x3f)
	}
	return id
}

// String renders the occupied cards separated by spaces.
func (cs CardSet) String() string {
	var b strings.Builder
	for i := 0; i < int(cs.size); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(cs.cards[i].String())
	}
	return b.String()
}
