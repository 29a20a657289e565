// Package greedy implements a fuel-constrained nearest-neighbor router.
//
// At every node the router takes the cheapest outgoing edge, without looking
// ahead. Fuel is spent per edge; when the tank holds less than the next edge
// needs, the car refuels to a fixed level before driving on. The walk is a
// heuristic meant to be compared with dijkstra.ShortestPath, not a
// replacement for it.
//
// Walk states:
//
//	traveling ──(fuel < w: refuel, same step)──► traveling
//	traveling ──(node == dest)──────────────────► arrived        route.Found
//	traveling ──(no outgoing edge)──────────────► stuck          route.NotFound
//	traveling ──(fuel - w < 0 after refuel)─────► out of fuel    route.FuelExhausted
//	traveling ──(node visited before)───────────► circling       see below
//
// The edge taken from a node depends on the node alone, never on the fuel.
// Reaching a node a second time therefore means the walk repeats the same
// loop forever without meeting dest. The router stops there: if some road of
// the loop is longer than a full tank the car would eventually run dry on it
// (route.FuelExhausted), otherwise it would circle forever (route.NotFound).
package greedy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/route"
)

// RefuelLevel is the default amount of fuel in the tank after a refuel.
const RefuelLevel int64 = 15

// Sentinel errors returned by Route.
var (
	// ErrEmptySource indicates that the start node ID is empty.
	ErrEmptySource = errors.New("greedy: source vertex ID is empty")

	// ErrEmptyDestination indicates that the destination node ID is empty.
	ErrEmptyDestination = errors.New("greedy: destination vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Route.
	ErrNilGraph = errors.New("greedy: graph is nil")

	// ErrNegativeFuel indicates a negative initial fuel quantity.
	ErrNegativeFuel = errors.New("greedy: initial fuel is negative")

	// ErrNegativeWeight indicates a negative edge weight, which would add fuel.
	ErrNegativeWeight = errors.New("greedy: negative edge weight encountered")

	// ErrBadRefuelLevel indicates a refuel level of zero or less.
	ErrBadRefuelLevel = errors.New("greedy: refuel level must be positive")
)

// Options configures Route.
type Options struct {
	// RefuelLevel is the tank content right after a refuel. Default RefuelLevel.
	RefuelLevel int64
}

// Option represents a functional option for configuring Route.
type Option func(*Options)

// WithRefuelLevel overrides the tank content after a refuel.
// Panics with ErrBadRefuelLevel if level ≤ 0.
func WithRefuelLevel(level int64) Option {
	if level <= 0 {
		panic(ErrBadRefuelLevel.Error())
	}
	return func(o *Options) {
		o.RefuelLevel = level
	}
}

// Route walks from start towards dest with the given initial fuel, always
// taking the cheapest outgoing edge. Ties go to the lexicographically smaller
// target, then to the edge inserted first.
//
// Each step: if fuel < w the tank is refilled to the refuel level (and the
// node is recorded in Result.Refuels); then w is subtracted. If fuel is still
// negative the walk ends with route.FuelExhausted.
//
// On any outcome Result.Path holds the nodes visited so far (start first) and
// Result.Cost their total weight, saturating at math.MaxInt64. A circling
// walk stops on its first return to a node, so Path ends with that node.
//
// Errors:
//   - ErrEmptySource, ErrEmptyDestination for empty IDs.
//   - ErrNilGraph if g == nil.
//   - ErrNegativeFuel if fuel < 0.
//   - ErrNegativeWeight (wrapped with the offending edge).
//
// Complexity: O(V · d) regardless of fuel; every node is left at most once
// and d is its out-degree.
func Route(g *core.Graph, start, dest string, fuel int64, opts ...Option) (route.Result, error) {
	cfg := Options{RefuelLevel: RefuelLevel}
	for _, opt := range opts {
		opt(&cfg)
	}

	if start == "" {
		return route.Result{}, ErrEmptySource
	}
	if dest == "" {
		return route.Result{}, ErrEmptyDestination
	}
	if g == nil {
		return route.Result{}, ErrNilGraph
	}
	if fuel < 0 {
		return route.Result{}, fmt.Errorf("%w: %d", ErrNegativeFuel, fuel)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return route.Result{}, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	w := &walker{
		g:     g,
		level: cfg.RefuelLevel,
		fuel:  fuel,
		cur:   start,
		res:   route.Result{Path: []string{start}},
		seen:  make(map[string]int),
	}

	return w.run(dest), nil
}

// walker holds the mutable state of one Route call.
type walker struct {
	g     *core.Graph
	level int64
	fuel  int64
	cur   string
	res   route.Result
	seen  map[string]int // node → index in res.Path of its first visit
	hops  []int64        // hops[i] is the weight driven from Path[i] to Path[i+1]
}

func (w *walker) run(dest string) route.Result {
	for w.cur != dest {
		if first, ok := w.seen[w.cur]; ok {
			return w.stop(w.loopOutcome(first))
		}
		w.seen[w.cur] = len(w.res.Path) - 1

		e, ok := nearest(w.g.Neighbors(w.cur))
		if !ok {
			return w.stop(route.NotFound)
		}

		if w.fuel < e.Weight {
			w.fuel = w.level
			w.res.Refuels = append(w.res.Refuels, w.cur)
		}
		w.fuel -= e.Weight
		if w.fuel < 0 {
			return w.stop(route.FuelExhausted)
		}

		w.res.Path = append(w.res.Path, e.To)
		w.res.Cost = route.AddCost(w.res.Cost, e.Weight)
		w.hops = append(w.hops, e.Weight)
		w.cur = e.To
	}

	return w.stop(route.Found)
}

// loopOutcome classifies the loop that starts at Path[first]. Each lap
// burns a positive amount of fuel unless every road in it is free, so a road
// longer than a full tank is met with too little fuel sooner or later.
func (w *walker) loopOutcome(first int) route.Status {
	for _, h := range w.hops[first:] {
		if h > w.level {
			return route.FuelExhausted
		}
	}

	return route.NotFound
}

func (w *walker) stop(s route.Status) route.Result {
	w.res.Status = s

	return w.res
}

// nearest returns the cheapest edge of out; ties go to the smaller target ID,
// then to the earlier edge. ok is false when out is empty.
func nearest(out []core.Edge) (best core.Edge, ok bool) {
	for i, e := range out {
		if i == 0 || e.Weight < best.Weight || (e.Weight == best.Weight && e.To < best.To) {
			best = e
		}
	}

	return best, len(out) > 0
}
