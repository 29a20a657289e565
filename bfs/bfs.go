// Package bfs provides breadth-first search over a core.Graph, returning
// road-count distances, parent links and visit order, plus FewestStops: the
// route with the fewest road segments between two nodes.
//
// Weights are ignored when choosing the route and only summed for the
// reported cost. Neighbors are expanded in insertion order, so the visit
// sequence and the chosen route are fully reproducible.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/route"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrEmptySource or ErrStartVertexNotFound for invalid
// input, ErrOptionViolation for bad options, the context error on
// cancellation, or the wrapped OnVisit error.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start == "" {
		return nil, ErrEmptySource
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
			Weight: make(map[string]int64, n),
		},
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// FewestStops returns the route from start to dest that uses the fewest road
// segments. Cost is the summed weight of that route. An unknown start or an
// unreachable dest yields route.NotFound; start == dest yields [start] at 0.
func FewestStops(g *core.Graph, start, dest string, opts ...Option) (route.Result, error) {
	if g == nil {
		return route.Result{}, ErrGraphNil
	}
	if start == "" {
		return route.Result{}, ErrEmptySource
	}
	if dest == "" {
		return route.Result{}, ErrEmptyDestination
	}
	if start == dest {
		return route.NewFound([]string{start}, 0), nil
	}
	if !g.HasVertex(start) {
		return route.Result{Status: route.NotFound}, nil
	}

	res, err := BFS(g, start, opts...)
	if err != nil {
		return route.Result{}, err
	}
	path, cost, ok := res.PathTo(dest)
	if !ok {
		return route.Result{Status: route.NotFound}, nil
	}

	return route.NewFound(path, cost), nil
}

func (w *walker) enqueue(id string, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		w.expand(item)
	}

	return nil
}

// expand enqueues every unseen neighbor reachable through an allowed road.
// A parallel road to a node discovered from the same parent lowers its
// recorded weight.
func (w *walker) expand(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.Neighbors(item.id) {
		if !w.opts.FilterRoad(e) {
			continue
		}
		if !w.visited[e.To] {
			w.res.Parent[e.To] = item.id
			w.res.Weight[e.To] = e.Weight
			w.enqueue(e.To, next)
			continue
		}
		if p, ok := w.res.Parent[e.To]; ok && p == item.id && e.Weight < w.res.Weight[e.To] {
			w.res.Weight[e.To] = e.Weight
		}
	}
}
