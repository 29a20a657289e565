// SPDX-License-Identifier: MIT
// Package: roadpath/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = decimalID ("0","1","2",...)
//   • rng        = nil (Random refuses to run without one)
//   • weightFn   = uniform in [1, maxWeight] when rng is set, else 1
//   • seed       = 0 (terrain field seed for Grid)
//   • noiseScale = 0.15
//   • minWeight  = 1, maxWeight = 10

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn func(*rand.Rand) int64

	seed       int64
	noiseScale float64
	minWeight  int64
	maxWeight  int64
}

const (
	defaultNoiseScale = 0.15
	defaultMinWeight  = int64(1)
	defaultMaxWeight  = int64(10)
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       decimalID,
		noiseScale: defaultNoiseScale,
		minWeight:  defaultMinWeight,
		maxWeight:  defaultMaxWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.weightFn == nil {
		cfg.weightFn = uniformWeight(cfg.minWeight, cfg.maxWeight)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}
