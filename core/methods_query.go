// File: methods_query.go
// Role: Read-only queries: Neighbors, HasVertex, Vertices, Edges, counts.
// Determinism:
//   - Neighbors() and Edges() return insertion order.
//   - Vertices() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Every query holds the read lock and returns an independent copy.

package core

import "sort"

// Neighbors returns the outgoing edges of id in insertion order.
//
// An unknown node, an empty id or a node without outgoing edges all yield an
// empty slice. The result is a copy and may be modified by the caller.
//
// Complexity: O(d), d = out-degree of id.
func (g *Graph) Neighbors(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.adjacency[id]
	if len(out) == 0 {
		return nil
	}
	res := make([]Edge, len(out))
	copy(res, out)

	return res
}

// OutDegree returns the number of outgoing edges of id (0 if unknown).
func (g *Graph) OutDegree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// HasVertex reports whether id is a node of the graph.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Vertices returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// Edges returns every stored edge in insertion order. A mirrored road shows
// up as two edges, one per direction.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	res := make([]Edge, len(g.arcs))
	copy(res, g.arcs)

	return res
}

// VertexCount returns the number of nodes.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of stored edges (mirrors included).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.arcs)
}
