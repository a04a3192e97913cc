// Package config loads table settings for a round from HCL, with environment
// overrides for the values most often changed between runs.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdemcore/game"
)

// Environment variable names
const (
	// EnvSeed overrides the shuffle seed (0 means seed from the clock)
	EnvSeed = "HOLDEM_SEED"

	// EnvLogLevel overrides the log level
	EnvLogLevel = "HOLDEM_LOG_LEVEL"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents a complete configuration file
type Config struct {
	Table TableConfig `hcl:"table,block"`
}

// TableConfig describes one table: its seats and blinds.
type TableConfig struct {
	Stacks     []float64 `hcl:"stacks"`
	SmallBlind float64   `hcl:"small_blind,optional"`
	BigBlind   float64   `hcl:"big_blind,optional"`
	Button     int       `hcl:"button,optional"`
	Seed       int64     `hcl:"seed,optional"`
	LogLevel   string    `hcl:"log_level,optional"`
}

// Default returns a six-handed table with 100 big blind stacks.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			Stacks:     []float64{100, 100, 100, 100, 100, 100},
			SmallBlind: game.DefaultSmallBlind,
			BigBlind:   game.DefaultBigBlind,
			LogLevel:   "info",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields Default().
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills in defaults for omitted values.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Table.SmallBlind == 0 {
		cfg.Table.SmallBlind = game.DefaultSmallBlind
	}
	if cfg.Table.BigBlind == 0 {
		cfg.Table.BigBlind = game.DefaultBigBlind
	}
	if cfg.Table.LogLevel == "" {
		cfg.Table.LogLevel = "info"
	}
	return &cfg, nil
}

// ApplyEnv overrides the seed and log level from the environment.
func (c *Config) ApplyEnv() error {
	if seedStr := os.Getenv(EnvSeed); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Table.Seed = seed
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Table.LogLevel = level
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	t := c.Table
	if len(t.Stacks) < game.MinPlayers || len(t.Stacks) > game.MaxPlayers {
		return fmt.Errorf("%w: need %d-%d stacks, got %d", ErrInvalidConfig, game.MinPlayers, game.MaxPlayers, len(t.Stacks))
	}
	for i, s := range t.Stacks {
		if s < 0 {
			return fmt.Errorf("%w: stack %d is negative (%g)", ErrInvalidConfig, i, s)
		}
	}
	if t.SmallBlind <= 0 || t.BigBlind <= 0 {
		return fmt.Errorf("%w: blinds must be positive", ErrInvalidConfig)
	}
	if t.SmallBlind > t.BigBlind {
		return fmt.Errorf("%w: small blind %g exceeds big blind %g", ErrInvalidConfig, t.SmallBlind, t.BigBlind)
	}
	if t.Button < 0 || t.Button >= len(t.Stacks) {
		return fmt.Errorf("%w: button %d out of range", ErrInvalidConfig, t.Button)
	}
	if _, err := log.ParseLevel(t.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Logger builds a logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(c.Table.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{Level: level})
}

// Options converts the table settings to round options. A zero seed leaves
// seeding to the round's clock.
func (c *Config) Options(logger *log.Logger) []game.Option {
	opts := []game.Option{
		game.WithBlinds(c.Table.SmallBlind, c.Table.BigBlind),
		game.WithButton(c.Table.Button),
	}
	if c.Table.Seed != 0 {
		opts = append(opts, game.WithSeed(c.Table.Seed))
	}
	if logger != nil {
		opts = append(opts, game.WithLogger(logger))
	}
	return opts
}

// NewRound validates the configuration and starts a round with it.
func (c *Config) NewRound(logger *log.Logger) (*game.RoundState, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return game.NewRoundState(c.Table.Stacks, c.Options(logger)...), nil
}
