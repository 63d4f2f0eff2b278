// SPDX-License-Identifier: MIT
// Package: walknet/builder
//
// options.go - functional options and the resolved builder configuration.
//
// Contract:
//   • Options mutate Config in order; later options win.
//   • Option constructors validate and PANIC on meaningless input.
//   • Defaults are deterministic: no RNG, offset 0.

package builder

import "math/rand"

// Config aggregates the knobs constructors read. Constructors written
// outside this package read it through Offset and Rand.
// It is passed by value so constructors cannot alter it for each other.
type Config struct {
	// rng drives stochastic constructors; nil means "no randomness".
	rng *rand.Rand
	// offset is added to every generated node ID.
	offset int
}

// BuilderOption customizes a Config before construction begins.
type BuilderOption func(*Config)

// newBuilderConfig applies opts over the deterministic defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) Config {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// id maps a local index to the node ID.
func (c Config) id(i int) int { return c.offset + i }

// Offset reports the ID shift applied by WithOffset.
func (c Config) Offset() int { return c.offset }

// Rand returns the configured RNG, or nil when none was set.
func (c Config) Rand() *rand.Rand { return c.rng }

// WithSeed creates a seeded *rand.Rand for reproducible stochastic topologies.
func WithSeed(seed int64) BuilderOption {
	return func(c *Config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *Config) { c.rng = r }
}

// WithOffset shifts generated IDs by k (k >= 0). Panics on negative k.
func WithOffset(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithOffset(k<0)")
	}
	return func(c *Config) { c.offset = k }
}
