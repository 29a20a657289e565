package greedy_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadpath/builder"
	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/dijkstra"
	"github.com/katalvlaran/roadpath/greedy"
	"github.com/katalvlaran/roadpath/route"
)

func TestRoute_GasStations(t *testing.T) {
	// fuel=10: Start→A (5, fuel 5), A→Gas1 (3, fuel 2), Gas1→C (2, fuel 0),
	// C→Destination needs 8: refuel to 15 at C, arrive with 7.
	res, err := greedy.Route(builder.GasStations(), "Start", "Destination", 10)
	require.NoError(t, err)

	want := route.Result{
		Status:  route.Found,
		Path:    []string{"Start", "A", "Gas1", "C", "Destination"},
		Cost:    18,
		Refuels: []string{"C"},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("Route(): mismatch (-want +got):\n%s", diff)
	}
}

func TestRoute_EmptyTankRefuelsAtStart(t *testing.T) {
	res, err := greedy.Route(builder.GasStations(), "Start", "Destination", 0)
	require.NoError(t, err)
	assert.Equal(t, route.Found, res.Status)
	assert.Equal(t, []string{"Start", "C"}, res.Refuels)
}

func TestRoute_Deterministic(t *testing.T) {
	g := builder.GasStations()
	first, err := greedy.Route(g, "Start", "Destination", 10)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := greedy.Route(g, "Start", "Destination", 10)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestRoute_FuelExhausted(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("X", "Y", 20))

	res, err := greedy.Route(g, "X", "Y", 10)
	require.NoError(t, err)
	assert.Equal(t, route.FuelExhausted, res.Status)
	assert.Equal(t, []string{"X"}, res.Path)
	assert.Equal(t, []string{"X"}, res.Refuels)
	assert.Equal(t, "Ran out of fuel", res.String())

	// A bigger tank makes the same hop possible.
	res, err = greedy.Route(g, "X", "Y", 10, greedy.WithRefuelLevel(25))
	require.NoError(t, err)
	assert.Equal(t, route.Found, res.Status)
}

func TestRoute_EnoughFuelNoRefuel(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("X", "Y", 20))

	res, err := greedy.Route(g, "X", "Y", 20)
	require.NoError(t, err)
	assert.Equal(t, route.Found, res.Status)
	assert.Nil(t, res.Refuels)
}

func TestRoute_DeadEnd(t *testing.T) {
	res, err := greedy.Route(builder.GasStations(), "Destination", "Start", 10)
	require.NoError(t, err)
	assert.Equal(t, route.NotFound, res.Status)
	assert.Equal(t, []string{"Destination"}, res.Path)
}

func TestRoute_UnknownStart(t *testing.T) {
	res, err := greedy.Route(builder.Delivery(), "Z", "A", 10)
	require.NoError(t, err)
	assert.Equal(t, route.NotFound, res.Status)
}

func TestRoute_SameNode(t *testing.T) {
	res, err := greedy.Route(builder.Delivery(), "A", "A", 0)
	require.NoError(t, err)
	assert.Equal(t, route.Result{Status: route.Found, Path: []string{"A"}}, res)
}

func TestRoute_CirclingStops(t *testing.T) {
	// The cheap A–B road lures the walk back and forth; C is never chosen.
	g := core.NewGraph()
	require.NoError(t, g.AddRoad("A", "B", 1))
	require.NoError(t, g.AddRoad("A", "C", 10))

	res, err := greedy.Route(g, "A", "C", 10)
	require.NoError(t, err)
	assert.Equal(t, route.NotFound, res.Status)
	assert.Greater(t, len(res.Path), 2)

	// Dijkstra has no trouble with it.
	opt, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, route.NewFound([]string{"A", "C"}, 10), opt)
}

func TestRoute_CirclingWithHugeTank(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddRoad("A", "B", 1))
	require.NoError(t, g.AddRoad("A", "C", 10))

	res, err := greedy.Route(g, "A", "C", math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, route.NotFound, res.Status)
	assert.Equal(t, []string{"A", "B", "A"}, res.Path, "the walk stops on its first return")
	assert.Equal(t, int64(2), res.Cost)
}

func TestRoute_LoopWithRoadLongerThanTank(t *testing.T) {
	// A full tank cannot cover A→B or B→A, so the loop ends dry once the
	// initial fuel is spent.
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 20))
	require.NoError(t, g.AddEdge("B", "A", 20))
	require.NoError(t, g.AddEdge("A", "T", 30))

	res, err := greedy.Route(g, "A", "T", 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, route.FuelExhausted, res.Status)
	assert.Equal(t, []string{"A", "B", "A"}, res.Path)

	res, err = greedy.Route(g, "A", "T", 1_000_000, greedy.WithRefuelLevel(20))
	require.NoError(t, err)
	assert.Equal(t, route.NotFound, res.Status)
}

func TestRoute_CostSaturates(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", math.MaxInt64-1))
	require.NoError(t, g.AddEdge("B", "C", 10))

	res, err := greedy.Route(g, "A", "C", math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, route.Found, res.Status)
	assert.Equal(t, int64(math.MaxInt64), res.Cost)
}

func TestRoute_TieBreakByTargetID(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("S", "X", 3))
	require.NoError(t, g.AddEdge("S", "W", 3))
	require.NoError(t, g.AddEdge("W", "T", 1))
	require.NoError(t, g.AddEdge("X", "T", 1))

	res, err := greedy.Route(g, "S", "T", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "W", "T"}, res.Path)
}

func TestRoute_Validation(t *testing.T) {
	g := builder.GasStations()

	_, err := greedy.Route(g, "", "Destination", 1)
	assert.ErrorIs(t, err, greedy.ErrEmptySource)
	_, err = greedy.Route(g, "Start", "", 1)
	assert.ErrorIs(t, err, greedy.ErrEmptyDestination)
	_, err = greedy.Route(nil, "Start", "Destination", 1)
	assert.ErrorIs(t, err, greedy.ErrNilGraph)
	_, err = greedy.Route(g, "Start", "Destination", -1)
	assert.ErrorIs(t, err, greedy.ErrNegativeFuel)

	neg := core.NewGraph()
	require.NoError(t, neg.AddEdge("A", "B", -3))
	_, err = greedy.Route(neg, "A", "B", 1)
	assert.ErrorIs(t, err, greedy.ErrNegativeWeight)

	assert.PanicsWithValue(t, greedy.ErrBadRefuelLevel.Error(), func() { greedy.WithRefuelLevel(0) })
}

func TestProperty_NeverBeatsDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(true)},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightRange(1, 12)},
			builder.Random(10, 30),
		)
		require.NoError(t, err)

		for _, dest := range g.Vertices() {
			gr, err := greedy.Route(g, "0", dest, 10)
			require.NoError(t, err)
			if !gr.OK() {
				continue
			}
			opt, err := dijkstra.ShortestPath(g, "0", dest)
			require.NoError(t, err)
			require.True(t, opt.OK(), "greedy reached %s, dijkstra must too (seed=%d)", dest, seed)
			require.GreaterOrEqual(t, gr.Cost, opt.Cost, "seed=%d dest=%s", seed, dest)

			cost, err := route.PathCost(g, gr.Path)
			require.NoError(t, err)
			require.Equal(t, gr.Cost, cost)
		}
	}
}
