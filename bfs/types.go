// Package bfs provides tunable options and error definitions
// for breadth-first search over a road graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/route"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrEmptySource is returned for an empty start ID.
	ErrEmptySource = errors.New("bfs: empty source")

	// ErrEmptyDestination is returned for an empty destination ID.
	ErrEmptyDestination = errors.New("bfs: empty destination")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS
// is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for one search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is dequeued. A non-nil error aborts the
	// search and is returned wrapped.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many roads.
	MaxDepth int

	// FilterRoad skips a road when it returns false.
	FilterRoad func(e core.Edge) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(string, int) error { return nil },
		FilterRoad: func(core.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visit.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at depth d.
//
//	d > 0:  limit to d roads from start
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterRoad skips roads for which fn returns false, e.g. closed or
// overweight segments.
func WithFilterRoad(fn func(e core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterRoad = fn
		}
	}
}

// WithMaxRoadWeight skips every road heavier than w.
func WithMaxRoadWeight(w int64) Option {
	return WithFilterRoad(func(e core.Edge) bool { return e.Weight <= w })
}

// Result holds the outcome of a traversal.
//   - Order: nodes in visit sequence.
//   - Depth: node → number of roads from the start.
//   - Parent: node → its predecessor in the BFS tree.
//   - Weight: node → weight of the cheapest road from Parent[node] to node.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
	Weight map[string]int64
}

// PathTo reconstructs the path from the start node to dest and its weight.
// ok is false if dest was not reached.
func (r *Result) PathTo(dest string) (path []string, cost int64, ok bool) {
	if _, seen := r.Depth[dest]; !seen {
		return nil, 0, false
	}
	for cur := dest; ; {
		path = append(path, cur)
		prev, has := r.Parent[cur]
		if !has {
			break
		}
		cost = route.AddCost(cost, r.Weight[cur])
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, cost, true
}
