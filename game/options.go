package game

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdemcore/poker"
)

// Default blind sizes, in big blinds.
const (
	DefaultSmallBlind = 0.5
	DefaultBigBlind   = 1.0
)

// Option configures a RoundState during creation.
type Option func(*roundConfig)

// roundConfig holds all configuration for creating a round.
type roundConfig struct {
	rng        *rand.Rand
	seed       *int64
	clock      quartz.Clock
	deck       *poker.Deck // If provided, overrides every other randomness source
	button     int
	smallBlind float64
	bigBlind   float64
	logger     *log.Logger
}

func defaultRoundConfig() *roundConfig {
	return &roundConfig{
		clock:      quartz.NewReal(),
		smallBlind: DefaultSmallBlind,
		bigBlind:   DefaultBigBlind,
	}
}

// WithRNG shuffles the deck with rng.
func WithRNG(rng *rand.Rand) Option {
	return func(c *roundConfig) {
		c.rng = rng
	}
}

// WithSeed shuffles the deck with a source seeded from seed.
func WithSeed(seed int64) Option {
	return func(c *roundConfig) {
		c.seed = &seed
	}
}

// WithClock sets the clock used to seed the shuffle when neither WithRNG nor
// WithSeed is given. Default is the real clock.
func WithClock(clock quartz.Clock) Option {
	return func(c *roundConfig) {
		c.clock = clock
	}
}

// WithDeck deals from a prepared deck instead of shuffling a new one.
func WithDeck(deck *poker.Deck) Option {
	return func(c *roundConfig) {
		c.deck = deck
	}
}

// WithButton sets the dealer seat. Default is 0.
func WithButton(button int) Option {
	return func(c *roundConfig) {
		c.button = button
	}
}

// WithBlinds sets the small and big blind. The big blind is also the opening
// minimum raise on every street.
func WithBlinds(small, big float64) Option {
	return func(c *roundConfig) {
		c.smallBlind = small
		c.bigBlind = big
	}
}

// WithLogger sets the logger used for debug tracing. Default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(c *roundConfig) {
		c.logger = logger
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
