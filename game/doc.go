// Package game implements a single no-limit Texas Hold'em betting round from
// blinds to showdown.
//
// The main type is RoundState. Construct one per hand, feed it bet sizes with
// DoAction until IsFinished reports true; the final DoAction resolves the
// showdown and pays every pot (including side pots) back into FreeChips.
//
// # Basic Usage
//
//	rs := game.NewRoundState([]float64{100, 100, 100}, game.WithSeed(42))
//	for !rs.IsFinished() {
//	    rs.DoAction(0) // check or call
//	}
//
// A negative bet folds, a bet up to the amount owed checks or calls, and
// anything larger raises (at least by MinRaise, capped at the player's stack).
//
// # Deterministic Testing
//
// The deck shuffle is the only source of randomness. Pass WithSeed, WithRNG,
// WithDeck or a mock clock via WithClock to make deals reproducible:
//
//	board := poker.MustParseCardSet("As Ks 5h 6c 8c")
//	deck := poker.NewOrderedDeck(board.Cards()...)
//	rs := game.NewRoundState(stacks, game.WithDeck(deck))
//
// # Concurrency
//
// A RoundState is not safe for concurrent use, but rounds share no state with
// each other, so independent rounds can be simulated in parallel freely.
package game
