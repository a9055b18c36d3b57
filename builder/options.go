// SPDX-License-Identifier: MIT
// Package: lusolve/builder
//
// options.go: functional options and the internal config they resolve to.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through config.

package builder

import "math/rand"

// Deterministic defaults.
const (
	// DefaultSeed is used when no RNG option is supplied, and for WithSeed(0).
	DefaultSeed int64 = 1
	// DefaultMin and DefaultMax bound RandomInteger entries (inclusive).
	DefaultMin = 1
	DefaultMax = 9
)

// Option customizes a constructor by mutating config before generation.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	lo, hi int
}

// WithSeed creates a new *rand.Rand with the given seed.
// Seed 0 maps to DefaultSeed so the zero value stays reproducible.
func WithSeed(seed int64) Option {
	if seed == 0 {
		seed = DefaultSeed
	}

	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. The generator is advanced by the
// constructor; do not share it across goroutines. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithRange sets the inclusive integer bounds [lo, hi] for RandomInteger entries.
// Panics if lo > hi.
func WithRange(lo, hi int) Option {
	if lo > hi {
		panic("builder: WithRange(lo > hi)")
	}

	return func(c *config) { c.lo, c.hi = lo, hi }
}

// newConfig applies opts in order over the deterministic defaults.
func newConfig(opts ...Option) config {
	c := config{lo: DefaultMin, hi: DefaultMax}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return c
}
