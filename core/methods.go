// File: methods.go
// Role: Mutators: AddVertex, AddEdge, AddRoad.
// Determinism:
//   - Edges are appended; per-node order is insertion order.
// Concurrency:
//   - All mutators hold the write lock for their whole duration.

package core

// AddVertex registers id as a node. Adding an existing node is a no-op.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ensureVertex(id) {
		g.version++
	}

	return nil
}

// AddEdge inserts the edge from→to with the given weight. On an undirected
// graph the mirror to→from is inserted as well (except for self-loops, which
// are stored once). Missing endpoints are created.
//
// Errors:
//   - ErrEmptyVertexID if from or to is empty.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.link(from, to, weight, !g.directed)

	return nil
}

// AddRoad inserts a two-way road between a and b: a→b and b→a, both with the
// given weight, regardless of the graph's default direction.
//
// Errors:
//   - ErrEmptyVertexID if a or b is empty.
//
// Complexity: O(1) amortized.
func (g *Graph) AddRoad(a, b string, weight int64) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.link(a, b, weight, true)

	return nil
}

// link stores from→to and, when mirror is set and the edge is not a loop,
// to→from. Caller must hold the write lock.
func (g *Graph) link(from, to string, weight int64, mirror bool) {
	g.ensureVertex(from)
	g.ensureVertex(to)

	g.appendArc(Edge{From: from, To: to, Weight: weight})
	if mirror && from != to {
		g.appendArc(Edge{From: to, To: from, Weight: weight})
	}
	g.version++
}

func (g *Graph) appendArc(e Edge) {
	g.adjacency[e.From] = append(g.adjacency[e.From], e)
	g.arcs = append(g.arcs, e)
}

// ensureVertex registers id and reports whether it was new.
// Caller must hold the write lock.
func (g *Graph) ensureVertex(id string) bool {
	if _, ok := g.nodes[id]; ok {
		return false
	}
	g.nodes[id] = struct{}{}

	return true
}
