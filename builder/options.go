// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
)

// Option customizes a generator by mutating a config before generation.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithIDScheme sets the source ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPrefix sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithPrefix("v") → "v0","v1",...
func WithPrefix(prefix string) Option {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// config aggregates the generator knobs. Passed by value to generators.
type config struct {
	idFn IDFn       // source index -> ID
	rng  *rand.Rand // nil means no randomness
}

// newConfig applies opts over deterministic defaults, later options
// overriding earlier ones.
func newConfig(opts ...Option) config {
	cfg := config{
		idFn: DefaultIDFn,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
