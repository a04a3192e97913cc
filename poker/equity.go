package poker

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdemcore/internal/randutil"
)

// equityWorkers is fixed so a seed reproduces the same estimate on any machine.
const equityWorkers = 8

// ErrInvalidEquityQuery is returned when an equity estimate is asked for an impossible deal.
var ErrInvalidEquityQuery = errors.New("invalid equity query")

// EquityResult holds the outcome of a Monte Carlo equity run.
type EquityResult struct {
	Wins    int     // Samples where the hero held the strictly best hand
	Ties    int     // Samples where the hero split the pot
	Samples int     // Samples evaluated
	Share   float64 // Sum of pot fractions won across all samples
}

// Equity returns the hero's expected share of the pot.
func (r EquityResult) Equity() float64 {
	if r.Samples == 0 {
		return 0
	}
	return r.Share / float64(r.Samples)
}

func (r *EquityResult) merge(o EquityResult) {
	r.Wins += o.Wins
	r.Ties += o.Ties
	r.Samples += o.Samples
	r.Share += o.Share
}

// EstimateEquity estimates the share of the pot hole wins against opponents
// random hands by completing board samples times. The work is split across a
// fixed number of workers, each with its own source derived from seed.
func EstimateEquity(ctx context.Context, hole [2]Card, board []Card, opponents, samples int, seed int64) (EquityResult, error) {
	if len(board) > 5 {
		return EquityResult{}, fmt.Errorf("%w: board has %d cards", ErrInvalidEquityQuery, len(board))
	}
	if opponents < 1 || samples < 1 {
		return EquityResult{}, fmt.Errorf("%w: need at least one opponent and one sample", ErrInvalidEquityQuery)
	}

	var used [52]bool
	known := append(append([]Card{}, hole[:]...), board...)
	for _, c := range known {
		if !c.IsValid() || used[c] {
			return EquityResult{}, fmt.Errorf("%w: card %s is invalid or repeated", ErrInvalidEquityQuery, c)
		}
		used[c] = true
	}
	available := make([]Card, 0, 52-len(known))
	for c := Card(0); c < 52; c++ {
		if !used[c] {
			available = append(available, c)
		}
	}
	if need := 2*opponents + 5 - len(board); need > len(available) {
		return EquityResult{}, fmt.Errorf("%w: %d opponents need %d cards, %d left", ErrInvalidEquityQuery, opponents, need, len(available))
	}

	base := emptyCardSet()
	base.SetCardsPartial(board, 0)

	results := make([]EquityResult, equityWorkers)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for w := 0; w < equityWorkers; w++ {
		workerSamples := samples / equityWorkers
		if w < samples%equityWorkers {
			workerSamples++
		}
		if workerSamples == 0 {
			continue
		}
		g.Go(func() error {
			res, err := runEquityWorker(ctx, hole, base, available, opponents, workerSamples, seed, w)
			results[w] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return EquityResult{}, err
	}

	var total EquityResult
	for _, r := range results {
		total.merge(r)
	}
	return total, nil
}

func runEquityWorker(ctx context.Context, hole [2]Card, board CardSet, available []Card, opponents, samples int, seed int64, worker int) (EquityResult, error) {
	rng := randutil.Derive(seed, worker)
	pool := append([]Card(nil), available...)
	boardLen := board.Len()
	draw := 2*opponents + 5 - boardLen

	var res EquityResult
	for i := 0; i < samples; i++ {
		if i&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		// Partial Fisher-Yates: the first draw entries of pool are the sample.
		for j := 0; j < draw; j++ {
			k := j + rng.IntN(len(pool)-j)
			pool[j], pool[k] = pool[k], pool[j]
		}

		full := board
		full.SetCardsPartial(pool[:5-boardLen], boardLen)

		hero := full
		hero.SetCardsPartial(hole[:], 5)
		heroValue := hero.Strength()

		best, tied := HandValue(0), 0
		for o := 0; o < opponents; o++ {
			opp := full
			opp.SetCardsPartial(pool[5-boardLen+2*o:5-boardLen+2*o+2], 5)
			v := opp.Strength()
			switch {
			case v > best:
				best, tied = v, 1
			case v == best:
				tied++
			}
		}

		res.Samples++
		switch {
		case heroValue > best:
			res.Wins++
			res.Share++
		case heroValue == best:
			res.Ties++
			res.Share += 1 / float64(tied+1)
		}
	}
	return res, nil
}
