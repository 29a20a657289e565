// SPDX-License-Identifier: MIT
// Package builder_test verifies fixtures and generated topologies.
package builder_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadpath/builder"
	"github.com/katalvlaran/roadpath/core"
)

func TestFixtures_Shapes(t *testing.T) {
	cases := []struct {
		name     string
		g        *core.Graph
		directed bool
		vertices []string
		edges    int
	}{
		{"Delivery", builder.Delivery(), false, []string{"A", "B", "C"}, 6},
		{"DeliveryMap", builder.DeliveryMap(), false, []string{"A", "B", "C", "D", "E", "F"}, 14},
		{"Warehouse", builder.Warehouse(), true, []string{"A", "B", "C", "D", "W"}, 6},
		{"GasStations", builder.GasStations(), true,
			[]string{"A", "B", "C", "Destination", "Gas1", "Gas2", "Start"}, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.directed, tc.g.Directed())
			if diff := cmp.Diff(tc.vertices, tc.g.Vertices()); diff != "" {
				t.Errorf("Vertices(): mismatch (-want +got):\n%s", diff)
			}
			require.Equal(t, tc.edges, tc.g.EdgeCount())
		})
	}
}

func TestFixtures_FreshCopies(t *testing.T) {
	a := builder.Delivery()
	require.NoError(t, a.AddRoad("C", "D", 1))
	require.False(t, builder.Delivery().HasVertex("D"))
}

func TestGasStations_DestinationIsDeadEnd(t *testing.T) {
	g := builder.GasStations()
	require.True(t, g.HasVertex("Destination"))
	require.Empty(t, g.Neighbors("Destination"))
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRoads_PropagatesCoreErrors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Roads([]builder.Road{{From: "", To: "B", Weight: 1}}))
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGrid_Topology(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)}, builder.Grid(3, 4))
	require.NoError(t, err)

	require.Equal(t, 12, g.VertexCount())
	// Roads: rows*(cols-1) + (rows-1)*cols = 9 + 8 = 17, each mirrored.
	require.Equal(t, 34, g.EdgeCount())
	require.Len(t, g.Neighbors(builder.GridID(0, 0)), 2)
	require.Len(t, g.Neighbors(builder.GridID(1, 1)), 4)

	for _, e := range g.Edges() {
		require.GreaterOrEqual(t, e.Weight, int64(1))
		require.LessOrEqual(t, e.Weight, int64(10))
	}
}

func TestGrid_DeterministicPerSeed(t *testing.T) {
	build := func(seed int64) []core.Edge {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightRange(1, 100)},
			builder.Grid(5, 5))
		require.NoError(t, err)
		return g.Edges()
	}
	if diff := cmp.Diff(build(42), build(42)); diff != "" {
		t.Errorf("same seed produced different grids (-first +second):\n%s", diff)
	}
}

func TestGrid_TooSmall(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Grid(0, 3))
	require.True(t, errors.Is(err, builder.ErrTooFewVertices))
}

func TestRandom_RequiresRNG(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Random(5, 5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandom_CountsAndDeterminism(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(true)},
			[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightRange(0, 9)},
			builder.Random(10, 25),
		)
		require.NoError(t, err)
		return g
	}
	g := build()
	require.Equal(t, 10, g.VertexCount())
	require.Equal(t, 25, g.EdgeCount())
	for _, e := range g.Edges() {
		require.NotEqual(t, e.From, e.To)
		require.GreaterOrEqual(t, e.Weight, int64(0))
		require.LessOrEqual(t, e.Weight, int64(9))
	}
	require.Equal(t, g.Edges(), build().Edges())
}

func TestRandom_CustomWeightAndIDs(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSeed(1),
			builder.WithWeightFn(builder.ConstantWeight(3)),
			builder.WithIDScheme(func(i int) string { return string(rune('a' + i)) }),
		},
		builder.Random(3, 2))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, g.Vertices())
	for _, e := range g.Edges() {
		require.Equal(t, int64(3), e.Weight)
	}
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { builder.WithWeightRange(5, 1) })
	require.Panics(t, func() { builder.WithWeightRange(-1, 1) })
	require.Panics(t, func() { builder.WithScale(0) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.ConstantWeight(-1) })
}
