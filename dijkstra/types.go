// Package dijkstra defines sentinel errors and configuration options
// for the shortest-path engine.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; nodes beyond it are not reported.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– Predecessors:     caller-owned map that Distances fills with the shortest-path tree.
//
// Errors (sentinel):
//
//	– ErrEmptySource      if the start node ID is empty.
//	– ErrEmptyDestination if the destination node ID is empty (ShortestPath only).
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrNegativeWeight   if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance   if MaxDistance < 0 (panic in option constructor).
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0 (panic in option constructor).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided start node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrEmptyDestination indicates that the provided destination node ID is empty.
	ErrEmptyDestination = errors.New("dijkstra: destination vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of both query modes.
//
// MaxDistance      – nodes whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are skipped.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
//
// Predecessors     – when non-nil, Distances records prev[v] = u for the last
//
//	improving relaxation u→v. The start node has no entry.
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64
	Predecessors     map[string]string
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		// Option constructors validate eagerly; algorithms never panic.
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are
// considered non-traversable.
// Panics with ErrBadInfThreshold on zero or negative values.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithPredecessors asks Distances to fill prev with the shortest-path tree.
// Existing entries are overwritten, others are left untouched. Panics on nil.
func WithPredecessors(prev map[string]string) Option {
	if prev == nil {
		panic("dijkstra: WithPredecessors(nil)")
	}
	return func(o *Options) {
		o.Predecessors = prev
	}
}

// DefaultOptions returns Options with no distance cap, no impassable edges
// and no predecessor recording.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
