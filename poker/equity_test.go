package poker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func holeCards(s string) [2]Card {
	cs := MustParseCardSet(s)
	return [2]Card{cs.At(0), cs.At(1)}
}

func TestEstimateEquity(t *testing.T) {
	t.Parallel()

	t.Run("pocket aces heads-up preflop", func(t *testing.T) {
		t.Parallel()
		res, err := EstimateEquity(context.Background(), holeCards("As Ah"), nil, 1, 20000, 42)
		require.NoError(t, err)
		assert.Equal(t, 20000, res.Samples)
		assert.InDelta(t, 0.85, res.Equity(), 0.02)
	})

	t.Run("made royal flush never loses", func(t *testing.T) {
		t.Parallel()
		board := MustParseCardSet("Qh Jh Th 2c 3d")
		res, err := EstimateEquity(context.Background(), holeCards("Ah Kh"), board.Cards(), 3, 500, 1)
		require.NoError(t, err)
		assert.Equal(t, 500, res.Wins)
		assert.Equal(t, 1.0, res.Equity())
	})

	t.Run("board plays for everyone", func(t *testing.T) {
		t.Parallel()
		board := MustParseCardSet("As Ks Qs Js Ts")
		res, err := EstimateEquity(context.Background(), holeCards("2c 3d"), board.Cards(), 2, 300, 1)
		require.NoError(t, err)
		assert.Equal(t, 300, res.Ties)
		assert.InDelta(t, 1.0/3, res.Equity(), 1e-9)
	})

	t.Run("same seed same estimate", func(t *testing.T) {
		t.Parallel()
		board := MustParseCardSet("7c 8d 2h")
		a, err := EstimateEquity(context.Background(), holeCards("9c Tc"), board.Cards(), 2, 3000, 99)
		require.NoError(t, err)
		b, err := EstimateEquity(context.Background(), holeCards("9c Tc"), board.Cards(), 2, 3000, 99)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestEstimateEquityInvalid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	longBoard := MustParseCardSet("2c 3c 4c 5c 6c 7c")
	tests := []struct {
		name      string
		hole      [2]Card
		board     []Card
		opponents int
		samples   int
	}{
		{"repeated card", holeCards("As Ah"), []Card{MustParseCard("As")}, 1, 10},
		{"sentinel in hole", [2]Card{NoCard, MustParseCard("2c")}, nil, 1, 10},
		{"six card board", holeCards("As Ah"), longBoard.Cards(), 1, 10},
		{"no opponents", holeCards("As Ah"), nil, 0, 10},
		{"no samples", holeCards("As Ah"), nil, 1, 0},
		{"deck too small", holeCards("As Ah"), nil, 23, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := EstimateEquity(ctx, tc.hole, tc.board, tc.opponents, tc.samples, 1)
			require.ErrorIs(t, err, ErrInvalidEquityQuery)
		})
	}
}

func TestEstimateEquityCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := EstimateEquity(ctx, holeCards("As Ah"), nil, 1, 1000, 1)
	require.ErrorIs(t, err, context.Canceled)
}
