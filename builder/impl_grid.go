// SPDX-License-Identifier: MIT
// Package: roadpath/builder
//
// impl_grid.go — Grid(rows, cols): a city-block road network.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex IDs "r,c", added in row-major order.
//   • Two-way roads to the right (r,c+1) and bottom (r+1,c) neighbors.
//   • Road weight = terrain field sampled at the road midpoint, in
//     [minWeight, maxWeight]; the field is seeded by WithSeed.
//
// Determinism:
//   • Stable edge order: for each (r,c) emit Right then Bottom if present.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols grid of two-way roads.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		field := newTerrain(cfg)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					w := field.weight(float64(c)+0.5, float64(r))
					if err := g.AddRoad(u, GridID(r, c+1), w); err != nil {
						return fmt.Errorf("%s: AddRoad(%s right): %w", methodGrid, u, err)
					}
				}
				if r+1 < rows {
					w := field.weight(float64(c), float64(r)+0.5)
					if err := g.AddRoad(u, GridID(r+1, c), w); err != nil {
						return fmt.Errorf("%s: AddRoad(%s down): %w", methodGrid, u, err)
					}
				}
			}
		}

		return nil
	}
}

// GridID returns the vertex ID Grid uses for cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}
