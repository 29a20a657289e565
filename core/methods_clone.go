// File: methods_clone.go
// Role: Deep copy of a graph.
// Concurrency:
//   - Holds the source read lock while copying; the clone is independent.

package core

// Clone returns a deep copy of g: same direction flag, nodes, edges and
// per-node edge order. The clone's Version starts at the source's version.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:  g.directed,
		version:   g.version,
		nodes:     make(map[string]struct{}, len(g.nodes)),
		adjacency: make(map[string][]Edge, len(g.adjacency)),
		arcs:      make([]Edge, len(g.arcs)),
	}
	for id := range g.nodes {
		c.nodes[id] = struct{}{}
	}
	for id, out := range g.adjacency {
		c.adjacency[id] = append([]Edge(nil), out...)
	}
	copy(c.arcs, g.arcs)

	return c
}
