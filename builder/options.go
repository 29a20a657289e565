// SPDX-License-Identifier: MIT
// Package: roadpath/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator used by Random: idx -> string.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil;
// prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds both the RNG used by Random and the terrain field used by Grid.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.seed = seed
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator used by Random.
// The function receives the RNG and must be pure w.r.t. its state. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithWeightRange bounds generated weights to [min, max].
// Panics unless 0 ≤ min ≤ max.
func WithWeightRange(min, max int64) BuilderOption {
	if min < 0 || max < min {
		panic(ErrOptionViolation.Error() + ": require 0 ≤ min ≤ max")
	}
	return func(c *builderConfig) {
		c.minWeight = min
		c.maxWeight = max
	}
}

// WithScale sets the terrain sampling step for Grid: small values give
// smooth, correlated weights; large values give rugged ones. Panics if ≤ 0.
func WithScale(scale float64) BuilderOption {
	if scale <= 0 {
		panic(ErrOptionViolation.Error() + ": scale must be > 0")
	}
	return func(c *builderConfig) {
		c.noiseScale = scale
	}
}
