package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdemcore/internal/randutil"
)

func TestDeck(t *testing.T) {
	t.Parallel()

	deck := NewDeck(randutil.New(42))

	cards1 := deck.Deal(2)
	require.Len(t, cards1, 2)
	cards2 := deck.Deal(3)
	require.Len(t, cards2, 3)
	for _, c1 := range cards1 {
		for _, c2 := range cards2 {
			assert.NotEqual(t, c1, c2, "dealt same card twice")
		}
	}

	remaining := deck.Deal(47)
	require.Len(t, remaining, 47)
	assert.Equal(t, 0, deck.CardsRemaining())
	assert.Nil(t, deck.Deal(1), "should not deal from an empty deck")
	assert.Equal(t, NoCard, deck.DealOne())

	deck.Shuffle()
	assert.Equal(t, 52, deck.CardsRemaining())
	assert.True(t, deck.DealOne().IsValid())
}

func TestDeckContainsEveryCard(t *testing.T) {
	t.Parallel()

	deck := NewDeck(randutil.New(7))
	var seen [52]bool
	for deck.CardsRemaining() > 0 {
		c := deck.DealOne()
		require.True(t, c.IsValid())
		require.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
}

func TestDeckDeterministic(t *testing.T) {
	t.Parallel()

	a := NewDeck(randutil.New(123))
	b := NewDeck(randutil.New(123))
	assert.Equal(t, a.Deal(52), b.Deal(52))

	c := NewDeck(randutil.New(124))
	d := NewDeck(randutil.New(123))
	assert.NotEqual(t, c.Deal(52), d.Deal(52))
}

func TestNewOrderedDeck(t *testing.T) {
	t.Parallel()

	first := MustParseCardSet("As Ks 5h")
	deck := NewOrderedDeck(first.Cards()...)
	assert.Equal(t, first.Cards(), deck.Deal(3))

	// Remaining cards follow in code order, skipping the ones already dealt
	assert.Equal(t, []Card{0, 1, 2}, deck.Deal(3))
	assert.Equal(t, 46, deck.CardsRemaining())

	// Shuffling without a source keeps the order
	deck.Shuffle()
	assert.Equal(t, first.Cards(), deck.Deal(3))

	// Repeated and invalid cards are ignored
	dup := NewOrderedDeck(MustParseCard("2c"), MustParseCard("2c"), NoCard)
	assert.Equal(t, 52, dup.CardsRemaining())
	assert.Equal(t, []Card{0, 1}, dup.Deal(2))
}
