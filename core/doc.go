// Package core provides the in-memory road graph shared by every routing
// algorithm in roadpath.
//
// A Graph maps a node ID (a city, a depot, a gas station) to the ordered list
// of its outgoing edges. Each Edge carries a target and an integer weight that
// stands for distance or travel time.
//
//	     [A] ----(4)---- [B]
//	      \             /
//	      (5)        (2)
//	        \       /
//	          [C]
//
// Direction is an explicit construction choice:
//
//   - NewGraph()                      – undirected: AddEdge mirrors every edge.
//   - NewGraph(WithDirected(true))    – directed: AddEdge stores from→to only.
//   - AddRoad(a, b, w)                – always two-way, whatever the default.
//
// Contracts:
//
//   - Inserting an edge registers both endpoints as nodes, so every edge
//     target is itself a key of the graph.
//   - Neighbors(id) returns outgoing edges in insertion order; an unknown node
//     or a dead end yields an empty slice, never an error.
//   - Self-loops and parallel edges are kept as inserted.
//   - Weights are stored as given. Non-negativity is a precondition checked by
//     the algorithms that need it (dijkstra, greedy), not by the store.
//   - Version() increases on every mutation; caches key their entries on it.
//
// Errors:
//
//	ErrEmptyVertexID – zero-length node ID passed to a mutator.
//
// Thread safety:
//
//	All methods are guarded by a sync.RWMutex. Queries may run concurrently;
//	algorithms never mutate the graph they read.
package core
