package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/holdemcore/internal/randutil"
)

// permuteSuits relabels every card's suit through perm.
func permuteSuits(cs CardSet, perm [4]uint8) CardSet {
	cards := make([]Card, 0, cs.Len())
	for _, c := range cs.Cards() {
		cards = append(cards, NewCard(c.Rank(), perm[c.Suit()]))
	}
	return NewCardSet(cards...)
}

func allSuitPermutations() [][4]uint8 {
	var perms [][4]uint8
	for a := uint8(0); a < 4; a++ {
		for b := uint8(0); b < 4; b++ {
			for c := uint8(0); c < 4; c++ {
				d := 6 - a - b - c
				if a == b || a == c || b == c || d > 3 || d == a || d == b || d == c {
					continue
				}
				perms = append(perms, [4]uint8{a, b, c, d})
			}
		}
	}
	return perms
}

func TestCanonicalizeLayout(t *testing.T) {
	t.Parallel()

	// Hearts dominate and become suit 3; the lone spade and club order by rank fingerprint.
	cs := MustParseCardSet("5h 4h 3h 2h Ah Kc Qs")
	cs.Canonicalize()
	assert.Equal(t, "As 5s 4s 3s 2s Kh Qd", cs.String())

	// Every suit empty except one: that suit becomes spades.
	single := MustParseCardSet("Tc")
	single.Canonicalize()
	assert.Equal(t, "Ts", single.String())

	empty := NewCardSet()
	empty.Canonicalize()
	assert.Equal(t, 0, empty.Len())
}

func TestCanonicalizeIdempotent(t *testing.T) {
	t.Parallel()

	deck := NewDeck(randutil.New(7))
	for i := 0; i < 500; i++ {
		deck.Shuffle()
		cs := NewCardSet(deck.Deal(1 + i%MaxCards)...)
		once := cs.Canonical()
		twice := once.Canonical()
		assert.Equal(t, once, twice, "canonicalizing %s twice", cs)
		assert.True(t, once.IsCanonical())
	}
}

func TestCanonicalSuitIsomorphism(t *testing.T) {
	t.Parallel()

	perms := allSuitPermutations()
	assert.Len(t, perms, 24)

	deck := NewDeck(randutil.New(11))
	for i := 0; i < 200; i++ {
		deck.Shuffle()
		cs := NewCardSet(deck.Deal(2 + i%6)...)
		want := cs.Canonical().Identifier()
		for _, perm := range perms {
			got := permuteSuits(cs, perm).Canonical().Identifier()
			assert.Equal(t, want, got, "%s under %v", cs, perm)
		}
	}
}

func TestCanonicalOrderInsensitive(t *testing.T) {
	t.Parallel()

	a := MustParseCardSet("As Kh 7d 7c 2s")
	b := MustParseCardSet("7c 2s Kh As 7d")
	assert.Equal(t, a.Canonical(), b.Canonical())

	assert.Equal(t,
		MustParseCardSet("As Kh").Canonical().Identifier(),
		MustParseCardSet("Ad Kc").Canonical().Identifier())
	assert.NotEqual(t,
		MustParseCardSet("As Ks").Canonical().Identifier(),
		MustParseCardSet("As Kh").Canonical().Identifier(),
		"suited and offsuit are different classes")
}
