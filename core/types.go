// Package core defines the Graph and Edge types and the NewGraph constructor.
//
// This file declares Edge, Graph, GraphOption and the sentinel errors.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a node ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")
)

// Edge is one outgoing connection of a node.
//
// From is the node the edge leaves, To the node it reaches and Weight the
// distance or travel time of the hop.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether AddEdge stores one-way edges (true) or mirrors
// them (false, the default).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory road network.
//
// adjacency holds, per node, its outgoing edges in insertion order.
// arcs is the catalog of every stored edge in insertion order (a mirrored
// road contributes two arcs).
type Graph struct {
	mu sync.RWMutex

	directed bool
	version  uint64

	nodes     map[string]struct{}
	adjacency map[string][]Edge
	arcs      []Edge
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[string]struct{}),
		adjacency: make(map[string][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether AddEdge stores one-way edges.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Version returns the mutation counter. It starts at 0 and increases by one
// on every successful AddVertex (of a new node), AddEdge or AddRoad.
func (g *Graph) Version() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.version
}
