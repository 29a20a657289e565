// Package dijkstra implements Dijkstra's shortest-path algorithm on road graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We use a “lazy” decrease-key strategy: an improved node is pushed again and
//     the superseded entry stays in the heap. Such stale entries are skipped when popped.
//   - Equal distances pop in lexicographic node-ID order, so results are stable across runs.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/route"
)

// Distances computes the minimal cumulative weight from start to every node
// reachable from it.
//
// The returned table always contains start with distance 0, including when
// start is not a node of g (the table is then exactly {start: 0}).
// Unreachable nodes are absent from the table.
//
// Errors:
//   - ErrEmptySource if start == "".
//   - ErrNilGraph if g == nil.
//   - ErrNegativeWeight (wrapped with the offending edge).
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Distances(g *core.Graph, start string, opts ...Option) (map[string]int64, error) {
	cfg := resolve(opts)
	if start == "" {
		return nil, ErrEmptySource
	}
	if err := validateGraph(g); err != nil {
		return nil, err
	}

	r := newRunner(g, cfg)
	r.push(start, "", 0)
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// A better distance was recorded after this entry was pushed.
		if item.dist > r.dist[item.id] {
			continue
		}
		if item.dist > cfg.MaxDistance {
			break
		}

		r.relax(item.id, item.dist, nil)
	}

	if cfg.Predecessors != nil {
		for v, u := range r.prev {
			cfg.Predecessors[v] = u
		}
	}

	return r.dist, nil
}

// ShortestPath returns the minimum-weight path from start to dest.
//
// Each node is finalized the first time it is popped; later entries for it
// are skipped. The search stops as soon as dest is popped. If the frontier
// runs dry first the result has Status route.NotFound.
// start == dest yields a one-node path of cost 0.
//
// Errors:
//   - ErrEmptySource, ErrEmptyDestination for empty IDs.
//   - ErrNilGraph if g == nil.
//   - ErrNegativeWeight (wrapped with the offending edge).
//
// Complexity:
//   - Time:  O((V + E) log V) worst case; usually less thanks to the early stop.
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, start, dest string, opts ...Option) (route.Result, error) {
	cfg := resolve(opts)
	if start == "" {
		return route.Result{}, ErrEmptySource
	}
	if dest == "" {
		return route.Result{}, ErrEmptyDestination
	}
	if err := validateGraph(g); err != nil {
		return route.Result{}, err
	}

	r := newRunner(g, cfg)
	// One extra slot: start may not be a node of g.
	visited := newVisitSet(g.VertexCount() + 1)
	parent := make(map[string]string)

	r.push(start, "", 0)
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if visited.contains(item.id) {
			continue
		}
		if item.dist > cfg.MaxDistance {
			break
		}
		visited.insert(item.id)
		if item.id != start {
			parent[item.id] = item.parent
		}

		if item.id == dest {
			return route.NewFound(walkBack(parent, start, dest), item.dist), nil
		}

		r.relax(item.id, item.dist, visited)
	}

	return route.Result{Status: route.NotFound}, nil
}

// validateGraph rejects nil graphs and graphs holding any negative weight.
func validateGraph(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// walkBack rebuilds start→dest from the finalized parent links.
func walkBack(parent map[string]string, start, dest string) []string {
	var rev []string
	for cur := dest; cur != start; cur = parent[cur] {
		rev = append(rev, cur)
	}
	rev = append(rev, start)

	path := make([]string, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path
}

// runner holds the mutable state for a single query.
type runner struct {
	g       *core.Graph       // read-only within a query
	options Options           // resolved configuration
	dist    map[string]int64  // best-known distance from start
	prev    map[string]string // last improving predecessor
	pq      nodePQ            // min-heap of *nodeItem
}

func newRunner(g *core.Graph, cfg Options) *runner {
	v := g.VertexCount()

	return &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, v),
		prev:    make(map[string]string, v),
		pq:      make(nodePQ, 0, v),
	}
}

// push records d as the best distance to id and enqueues it.
func (r *runner) push(id, parent string, d int64) {
	r.dist[id] = d
	if parent != "" {
		r.prev[id] = parent
	}
	heap.Push(&r.pq, &nodeItem{id: id, parent: parent, dist: d})
}

// relax examines each outgoing edge of u (popped at distance d) and enqueues
// every neighbor whose distance strictly improves. Neighbors already in
// visited are skipped; visited is nil in all-distances mode.
func (r *runner) relax(u string, d int64, visited *visitSet) {
	for _, e := range r.g.Neighbors(u) {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if visited != nil && visited.contains(e.To) {
			continue
		}

		// d + w would not fit in int64; such a node is out of reach.
		if e.Weight > math.MaxInt64-d {
			continue
		}
		nd := d + e.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		// Strict "<": equal distances never re-enqueue.
		if cur, ok := r.dist[e.To]; ok && nd >= cur {
			continue
		}

		r.push(e.To, u, nd)
	}
}

// visitSet interns node IDs to dense indices so the finalized set can live
// in a sparse set instead of a map[string]bool.
type visitSet struct {
	index map[string]int
	set   *sparsesets.Set
}

func newVisitSet(capacity int) *visitSet {
	return &visitSet{
		index: make(map[string]int, capacity),
		set:   sparsesets.New(capacity),
	}
}

func (s *visitSet) contains(id string) bool {
	i, ok := s.index[id]

	return ok && s.set.Contains(i)
}

func (s *visitSet) insert(id string) {
	i, ok := s.index[id]
	if !ok {
		i = len(s.index)
		s.index[id] = i
	}
	s.set.Insert(i)
}

// nodeItem is a frontier entry: a node, the node it was reached from and the
// tentative distance at push time.
type nodeItem struct {
	id     string
	parent string
	dist   int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by id.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by smaller dist first; equal distances pop in ascending id order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
