// Package route defines the outcome of a routing query.
//
// Routing algorithms never signal "no route" with a magic node name. They
// return a Result whose Status tells the three outcomes apart:
//
//	Found          – Path holds the nodes from start to destination.
//	NotFound       – the destination cannot be reached (dead end, unreachable,
//	                 or a walk that can only go around in circles).
//	FuelExhausted  – a fuel-constrained walk met a hop longer than a full tank.
//
// Invalid input (nil graph, empty IDs, negative weights) is reported as an
// error by the algorithm itself, never as a Status.
package route

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/roadpath/core"
)

// Sentinel errors returned by PathCost.
var (
	// ErrEmptyPath indicates PathCost was given a path with no nodes.
	ErrEmptyPath = errors.New("route: path is empty")

	// ErrBrokenPath indicates two consecutive path nodes are not joined by an edge.
	ErrBrokenPath = errors.New("route: no edge between consecutive nodes")
)

// Status is the tag of a Result.
type Status int

const (
	// NotFound is the zero value so an unset Result never reads as a success.
	NotFound Status = iota
	// Found means Path reaches the destination.
	Found
	// FuelExhausted means the walk stopped because fuel would go negative.
	FuelExhausted
)

// String returns the human phrase for s.
func (s Status) String() string {
	switch s {
	case Found:
		return "Found"
	case NotFound:
		return "No Path Found"
	case FuelExhausted:
		return "Ran out of fuel"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of one routing query.
//
// When Status == Found, Path runs from start to destination and Cost is its
// total weight. Otherwise Path is either nil or, for walks that advance step by
// step, the prefix travelled before getting stuck (Cost is then its weight).
// Refuels lists the nodes at which a fuel-constrained walk filled up, in
// travel order; it is nil for algorithms that do not model fuel.
type Result struct {
	Status  Status
	Path    []string
	Cost    int64
	Refuels []string
}

// OK reports whether the destination was reached.
func (r Result) OK() bool { return r.Status == Found }

// String renders a found route as "Start → A → B (cost 18)" and any other
// outcome as its Status phrase.
func (r Result) String() string {
	if r.Status != Found {
		return r.Status.String()
	}

	return fmt.Sprintf("%s (cost %d)", strings.Join(r.Path, " → "), r.Cost)
}

// NewFound returns a successful Result.
func NewFound(path []string, cost int64) Result {
	return Result{Status: Found, Path: path, Cost: cost}
}

// PathCost sums, hop by hop, the cheapest edge joining consecutive nodes of
// path in g. A single-node path costs 0. The sum saturates at math.MaxInt64.
//
// Errors:
//   - ErrEmptyPath if path has no nodes.
//   - ErrBrokenPath (wrapped with the hop) if a hop has no edge.
//
// Complexity: O(Σ out-degree of the path nodes).
func PathCost(g *core.Graph, path []string) (int64, error) {
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}

	var total int64
	for i := 1; i < len(path); i++ {
		w, ok := cheapestHop(g, path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: %s→%s", ErrBrokenPath, path[i-1], path[i])
		}
		total = AddCost(total, w)
	}

	return total, nil
}

// AddCost returns a + b for non-negative costs, saturating at math.MaxInt64
// instead of wrapping around.
func AddCost(a, b int64) int64 {
	if b > math.MaxInt64-a {
		return math.MaxInt64
	}

	return a + b
}

func cheapestHop(g *core.Graph, from, to string) (int64, bool) {
	var (
		best  int64
		found bool
	)
	for _, e := range g.Neighbors(from) {
		if e.To != to {
			continue
		}
		if !found || e.Weight < best {
			best, found = e.Weight, true
		}
	}

	return best, found
}
