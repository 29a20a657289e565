// SPDX-License-Identifier: MIT
// Package: roadpath/builder
//
// weight_fn.go — edge weight policies.

package builder

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// uniformWeight samples integers uniformly in [min, max]. With a nil RNG it
// returns min, keeping unseeded builds deterministic.
func uniformWeight(min, max int64) func(*rand.Rand) int64 {
	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// ConstantWeight returns a weight function that always yields w.
// Panics if w < 0.
func ConstantWeight(w int64) func(*rand.Rand) int64 {
	if w < 0 {
		panic(ErrOptionViolation.Error() + ": constant weight must be ≥ 0")
	}

	return func(*rand.Rand) int64 { return w }
}

// terrain maps 2D points to weights in [min, max] through OpenSimplex noise.
// Nearby points get similar weights, which mimics hills and valleys on a map.
type terrain struct {
	noise    opensimplex.Noise
	scale    float64
	min, max int64
}

func newTerrain(cfg builderConfig) terrain {
	return terrain{
		noise: opensimplex.New(cfg.seed),
		scale: cfg.noiseScale,
		min:   cfg.minWeight,
		max:   cfg.maxWeight,
	}
}

// weight samples the field at (x, y) in grid units.
func (t terrain) weight(x, y float64) int64 {
	// Eval2 lies in [-1, 1]; fold into [0, 1].
	v := (t.noise.Eval2(x*t.scale, y*t.scale) + 1) / 2
	v = math.Max(0, math.Min(1, v))

	return t.min + int64(math.Round(v*float64(t.max-t.min)))
}
