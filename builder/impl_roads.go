// SPDX-License-Identifier: MIT
// Package: roadpath/builder
//
// impl_roads.go — explicit road lists.
//
// Contract:
//   • OneWay roads go through g.AddEdge (mirrored only if g is undirected).
//   • Two-way roads go through g.AddRoad (always mirrored).
//   • Roads are inserted in list order, which fixes per-node edge order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadpath/core"
)

const methodRoads = "Roads"

// Road is one entry of an explicit road list.
type Road struct {
	From   string
	To     string
	Weight int64
	OneWay bool
}

// Roads returns a Constructor inserting every road of list in order.
func Roads(list []Road) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i, r := range list {
			var err error
			if r.OneWay {
				err = g.AddEdge(r.From, r.To, r.Weight)
			} else {
				err = g.AddRoad(r.From, r.To, r.Weight)
			}
			if err != nil {
				return fmt.Errorf("%s: road %d (%q→%q): %w", methodRoads, i, r.From, r.To, err)
			}
		}

		return nil
	}
}
