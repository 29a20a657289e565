// SPDX-License-Identifier: MIT
// Package: roadpath/builder
//
// fixtures.go — the fixed networks of the delivery and gas-station programs.
// Each call returns a fresh graph the caller may mutate.

package builder

import "github.com/katalvlaran/roadpath/core"

// Delivery is the three-city delivery triangle:
//
//	A–B 4, B–C 2, A–C 5 (two-way).
func Delivery() *core.Graph {
	return mustBuild(nil, []Road{
		{From: "A", To: "B", Weight: 4},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 5},
	})
}

// DeliveryMap is the six-city delivery map (two-way roads):
//
//	[A] ----(4)---- [B] ----(2)---- [C]
//	 |             /    \
//	(1)         (3)    (7)
//	 |          /        \
//	[D] ----(5)---- [E] ----(1)---- [F]
func DeliveryMap() *core.Graph {
	return mustBuild(nil, []Road{
		{From: "A", To: "B", Weight: 4},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "D", Weight: 1},
		{From: "B", To: "D", Weight: 3},
		{From: "B", To: "E", Weight: 7},
		{From: "D", To: "E", Weight: 5},
		{From: "E", To: "F", Weight: 1},
	})
}

// Warehouse is the one-way warehouse → customer network, weights in minutes.
// The fastest delivery is W → A → D → C (25).
//
//	(W) --10--> (A) --20--> (C)
//	 |           |           ^
//	30           5           |
//	 v           v           |
//	(B) --15--> (D) ---10----+
func Warehouse() *core.Graph {
	return mustBuild([]core.GraphOption{core.WithDirected(true)}, []Road{
		{From: "W", To: "A", Weight: 10, OneWay: true},
		{From: "A", To: "C", Weight: 20, OneWay: true},
		{From: "W", To: "B", Weight: 30, OneWay: true},
		{From: "A", To: "D", Weight: 5, OneWay: true},
		{From: "B", To: "D", Weight: 15, OneWay: true},
		{From: "D", To: "C", Weight: 10, OneWay: true},
	})
}

// GasStations is the one-way route network of the gas-station finder.
// Destination is a registered node without outgoing roads.
func GasStations() *core.Graph {
	return mustBuild([]core.GraphOption{core.WithDirected(true)}, []Road{
		{From: "Start", To: "A", Weight: 5, OneWay: true},
		{From: "Start", To: "B", Weight: 10, OneWay: true},
		{From: "A", To: "C", Weight: 10, OneWay: true},
		{From: "A", To: "Gas1", Weight: 3, OneWay: true},
		{From: "B", To: "C", Weight: 5, OneWay: true},
		{From: "B", To: "Gas2", Weight: 4, OneWay: true},
		{From: "C", To: "Destination", Weight: 8, OneWay: true},
		{From: "Gas1", To: "C", Weight: 2, OneWay: true},
		{From: "Gas2", To: "C", Weight: 3, OneWay: true},
	})
}

// mustBuild runs a static road list. The lists above are valid by
// construction, so an error here is a programming mistake.
func mustBuild(gopts []core.GraphOption, roads []Road) *core.Graph {
	g, err := BuildGraph(gopts, nil, Roads(roads))
	if err != nil {
		panic(err)
	}

	return g
}
