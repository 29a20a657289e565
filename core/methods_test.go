// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph query contracts.
//
// Purpose:
//   - Lock in the "empty, not error" neighbor lookup.
//   - Lock in deterministic ordering of Vertices/Edges/Neighbors.
package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/roadpath/core"
)

func TestNeighbors_UnknownOrIsolatedIsEmpty(t *testing.T) {
	g := core.NewGraph()
	assert.Empty(t, g.Neighbors("nowhere"))
	assert.Empty(t, g.Neighbors(""))

	_ = g.AddVertex("lonely")
	assert.Empty(t, g.Neighbors("lonely"))
	assert.Zero(t, g.OutDegree("lonely"))
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdge("Start", "B", 10)
	_ = g.AddEdge("Start", "A", 5)
	_ = g.AddEdge("Start", "C", 1)

	want := []core.Edge{
		{From: "Start", To: "B", Weight: 10},
		{From: "Start", To: "A", Weight: 5},
		{From: "Start", To: "C", Weight: 1},
	}
	if diff := cmp.Diff(want, g.Neighbors("Start")); diff != "" {
		t.Errorf("Neighbors(Start): mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, g.OutDegree("Start"))
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddRoad("A", "B", 1)

	out := g.Neighbors("A")
	out[0].Weight = 99

	assert.Equal(t, int64(1), g.Neighbors("A")[0].Weight)
}

func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddRoad("C", "A", 1)
	_ = g.AddVertex("B")

	if diff := cmp.Diff([]string{"A", "B", "C"}, g.Vertices()); diff != "" {
		t.Errorf("Vertices(): mismatch (-want +got):\n%s", diff)
	}
}

func TestEdges_InsertionOrderWithMirrors(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddRoad("A", "B", 4)
	_ = g.AddRoad("B", "C", 2)

	want := []core.Edge{
		{From: "A", To: "B", Weight: 4},
		{From: "B", To: "A", Weight: 4},
		{From: "B", To: "C", Weight: 2},
		{From: "C", To: "B", Weight: 2},
	}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Errorf("Edges(): mismatch (-want +got):\n%s", diff)
	}
}
