// SPDX-License-Identifier: MIT
// Package: roadpath/builder
//
// impl_random.go — Random(n, m): n nodes joined by m random edges.
//
// Contract:
//   • n ≥ 1, m ≥ 0 (else ErrTooFewVertices); an RNG is required (ErrNeedRandSource).
//   • Nodes cfg.idFn(0..n-1) are all added, so isolated nodes exist.
//   • Each edge picks endpoints u ≠ v (when n > 1) and a weight from cfg.weightFn,
//     then goes through g.AddEdge: one-way on directed graphs, mirrored otherwise.
//   • Parallel edges may occur; that is intended (the store keeps them).

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadpath/core"
)

const (
	methodRandom      = "Random"
	minRandomVertices = 1
)

// Random returns a Constructor sampling m edges over n nodes.
func Random(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices || m < 0 {
			return fmt.Errorf("%s: n=%d, m=%d: %w", methodRandom, n, m, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodRandom, i, err)
			}
		}

		for k := 0; k < m; k++ {
			u := cfg.rng.Intn(n)
			v := cfg.rng.Intn(n)
			if n > 1 {
				for v == u {
					v = cfg.rng.Intn(n)
				}
			}
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(cfg.idFn(u), cfg.idFn(v), w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodRandom, u, v, err)
			}
		}

		return nil
	}
}
