// Package dijkstra provides Dijkstra's shortest-path engine for road graphs
// with non-negative integer weights.
//
// Overview:
//
//   - Two query modes share one priority-queue core:
//     Distances    – all-distances mode: minimal cumulative weight from a start
//     node to every reachable node.
//     ShortestPath – single-destination mode: the literal ordered path of
//     minimal total weight from start to a destination.
//   - A min-heap frontier always expands the closest pending node.
//
// All-distances mode:
//
//   - There is no visited set. A node may be expanded more than once; only the
//     strict relaxation test (d(u) + w(u,v) < best(v)) lets an improvement
//     propagate. Frontier entries can therefore be stale; one whose distance is
//     already worse than the recorded best is skipped when popped, which gives
//     the same table as expanding it.
//   - An unknown start node yields exactly {start: 0}.
//
// Single-destination mode:
//
//   - A node is finalized the first time it is popped; later pops are ignored.
//   - The search stops the moment the destination is popped.
//   - No path is reported as route.Result{Status: route.NotFound}, never as a
//     magic node name.
//   - Finalized nodes are tracked in a sparse set over interned node indices.
//
// Tie-breaking:
//
//   - Entries with equal distance pop in ascending node-ID order, so repeated
//     queries on an unmodified graph return identical results.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), with up to E entries in the heap under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrEmptyDestination: empty node IDs.
//   - ErrNilGraph: nil *core.Graph.
//   - ErrNegativeWeight: any negative edge, detected by an O(E) pre-scan.
//   - ErrBadMaxDistance / ErrBadInfThreshold: panics from option constructors.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddRoad("A", "B", 4)
//	_ = g.AddRoad("B", "C", 2)
//	_ = g.AddRoad("A", "C", 5)
//	dist, _ := dijkstra.Distances(g, "A") // map[A:0 B:4 C:5]
//
// Thread safety:
//
//   - Queries only read the graph. Concurrent queries on one graph are safe as
//     long as nobody mutates it meanwhile.
package dijkstra
