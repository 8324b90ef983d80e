// SPDX-License-Identifier: MIT
// Package: magicsquare/square
//
// options.go — functional options and the internal build configuration.
//
// Contract:
//   • Options are functional (type Option func(*config)), applied in order; last wins.
//   • Option constructors PANIC only on programmer errors (nil RNG, nil logger).
//   • User data (the base number) is never validated by panicking: WithBase only
//     records the value and New returns ErrInvalidBase for it.
//   • Determinism is explicit: the default base draw is reproducible only under
//     WithSeed or WithRand.

package square

import (
	"io"
	"log/slog"
	"math/rand"
)

// Option customizes New by mutating a config before the grid is built.
type Option func(*config)

// config is the single source of truth for construction knobs.
type config struct {
	base    int  // explicit base number; meaningful only when hasBase
	hasBase bool // WithBase was applied
	rng     *rand.Rand
	logger  *slog.Logger
}

// WithBase sets the value placed in the first filled cell.
// Non-positive values are reported by New as ErrInvalidBase; they are never
// replaced with a random default.
func WithBase(n int) Option {
	return func(c *config) {
		c.base = n
		c.hasBase = true
	}
}

// WithRand provides the RNG used to draw a default base number.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("square: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed draws the default base number from a seeded RNG.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger attaches a structured logger; New logs at debug level only.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("square: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// newConfig applies opts over the defaults: no explicit base, process RNG,
// discarding logger.
func newConfig(opts ...Option) config {
	cfg := config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// drawBase returns a uniform value in [DefaultBaseMin, DefaultBaseMax].
func (c config) drawBase() int {
	n := DefaultBaseMax - DefaultBaseMin + 1
	if c.rng != nil {
		return DefaultBaseMin + c.rng.Intn(n)
	}

	return DefaultBaseMin + rand.Intn(n)
}
