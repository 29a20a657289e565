// Package planner is the query facade used by the roadpath CLI.
//
// A Planner wraps one road graph and answers the routing questions of the
// delivery and gas-station programs: all delivery distances from a city, the
// optimal path between two nodes, the greedy fuel-constrained walk and the
// route with the fewest stops. Compare runs greedy and optimal side by side.
//
// Distance tables are cached per (graph version, start node), so mutating the
// graph never serves a stale table. Every query is tagged with a UUID that
// appears in the log lines it produces.
package planner

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/katalvlaran/roadpath/bfs"
	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/dijkstra"
	"github.com/katalvlaran/roadpath/greedy"
	"github.com/katalvlaran/roadpath/route"
)

const (
	// DefaultCacheTTL is how long a distance table stays cached.
	DefaultCacheTTL = 10 * time.Minute

	cleanupFactor = 2
)

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger used for per-query log lines. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("planner: WithLogger(nil)")
	}
	return func(p *Planner) { p.log = l }
}

// WithCacheTTL sets the lifetime of cached distance tables. Panics if ttl ≤ 0.
func WithCacheTTL(ttl time.Duration) Option {
	if ttl <= 0 {
		panic("planner: cache TTL must be positive")
	}
	return func(p *Planner) { p.ttl = ttl }
}

// WithRefuelLevel sets the refuel level used by Greedy and Compare.
// Panics if level ≤ 0.
func WithRefuelLevel(level int64) Option {
	if level <= 0 {
		panic(greedy.ErrBadRefuelLevel.Error())
	}
	return func(p *Planner) { p.refuel = level }
}

// Planner answers routing queries over one graph. It is safe for concurrent use
// as long as the graph itself is not mutated concurrently with queries.
type Planner struct {
	g      *core.Graph
	log    *log.Logger
	ttl    time.Duration
	refuel int64
	tables *cache.Cache
}

// Comparison is the side-by-side outcome of Compare.
type Comparison struct {
	ID      string
	Greedy  route.Result
	Optimal route.Result
	// Overhead is Greedy.Cost - Optimal.Cost when both found a route, else 0.
	Overhead int64
}

// New returns a Planner over g. By default it logs nowhere, caches tables for
// DefaultCacheTTL and refuels to greedy.RefuelLevel.
func New(g *core.Graph, opts ...Option) *Planner {
	p := &Planner{
		g:      g,
		log:    log.New(io.Discard, "", 0),
		ttl:    DefaultCacheTTL,
		refuel: greedy.RefuelLevel,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.tables = cache.New(p.ttl, cleanupFactor*p.ttl)

	return p
}

// Distances returns the all-distances table from start. The returned map is
// the caller's to modify.
func (p *Planner) Distances(start string) (map[string]int64, error) {
	id := uuid.NewString()
	key := tableKey(p.g, start)

	if v, ok := p.tables.Get(key); ok {
		dist := v.(map[string]int64)
		p.log.Printf("query=%s op=distances start=%s reachable=%d cached=true", id, start, len(dist))

		return copyTable(dist), nil
	}

	dist, err := dijkstra.Distances(p.g, start)
	if err != nil {
		p.log.Printf("query=%s op=distances start=%s err=%v", id, start, err)

		return nil, err
	}
	p.tables.Set(key, dist, cache.DefaultExpiration)
	p.log.Printf("query=%s op=distances start=%s reachable=%d cached=false", id, start, len(dist))

	return copyTable(dist), nil
}

// Path returns the minimum-weight path from start to dest.
func (p *Planner) Path(start, dest string) (route.Result, error) {
	return p.path(uuid.NewString(), start, dest)
}

// Greedy returns the nearest-neighbor walk from start to dest with fuel.
func (p *Planner) Greedy(start, dest string, fuel int64) (route.Result, error) {
	return p.greedy(uuid.NewString(), start, dest, fuel)
}

// Stops returns the route from start to dest with the fewest road segments.
func (p *Planner) Stops(start, dest string) (route.Result, error) {
	id := uuid.NewString()
	res, err := bfs.FewestStops(p.g, start, dest)
	if err != nil {
		p.log.Printf("query=%s op=stops start=%s dest=%s err=%v", id, start, dest, err)

		return route.Result{}, err
	}
	p.log.Printf("query=%s op=stops start=%s dest=%s status=%q hops=%d cost=%d",
		id, start, dest, res.Status, max(len(res.Path)-1, 0), res.Cost)

	return res, nil
}

// Compare runs Greedy and Path for the same trip under one query ID.
func (p *Planner) Compare(start, dest string, fuel int64) (Comparison, error) {
	cmp := Comparison{ID: uuid.NewString()}

	var err error
	if cmp.Greedy, err = p.greedy(cmp.ID, start, dest, fuel); err != nil {
		return Comparison{}, err
	}
	if cmp.Optimal, err = p.path(cmp.ID, start, dest); err != nil {
		return Comparison{}, err
	}
	if cmp.Greedy.OK() && cmp.Optimal.OK() {
		cmp.Overhead = cmp.Greedy.Cost - cmp.Optimal.Cost
	}
	p.log.Printf("query=%s op=compare greedy=%q optimal=%q overhead=%d",
		cmp.ID, cmp.Greedy.Status, cmp.Optimal.Status, cmp.Overhead)

	return cmp, nil
}

// CachedTables returns the number of distance tables currently cached.
func (p *Planner) CachedTables() int {
	return p.tables.ItemCount()
}

// Flush drops every cached distance table.
func (p *Planner) Flush() {
	p.tables.Flush()
}

func (p *Planner) path(id, start, dest string) (route.Result, error) {
	res, err := dijkstra.ShortestPath(p.g, start, dest)
	if err != nil {
		p.log.Printf("query=%s op=path start=%s dest=%s err=%v", id, start, dest, err)

		return route.Result{}, err
	}
	p.log.Printf("query=%s op=path start=%s dest=%s status=%q cost=%d", id, start, dest, res.Status, res.Cost)

	return res, nil
}

func (p *Planner) greedy(id, start, dest string, fuel int64) (route.Result, error) {
	res, err := greedy.Route(p.g, start, dest, fuel, greedy.WithRefuelLevel(p.refuel))
	if err != nil {
		p.log.Printf("query=%s op=greedy start=%s dest=%s err=%v", id, start, dest, err)

		return route.Result{}, err
	}
	p.log.Printf("query=%s op=greedy start=%s dest=%s fuel=%d status=%q cost=%d refuels=%d",
		id, start, dest, fuel, res.Status, res.Cost, len(res.Refuels))

	return res, nil
}

// tableKey names a cached table. A nil graph still gets a key; the query
// itself reports ErrNilGraph and nothing is stored.
func tableKey(g *core.Graph, start string) string {
	var version uint64
	if g != nil {
		version = g.Version()
	}

	return fmt.Sprintf("dist:%d:%s", version, start)
}

func copyTable(src map[string]int64) map[string]int64 {
	dst := make(map[string]int64, len(src))
	for k, v := range src {
		dst[k] = v
	}

	return dst
}
