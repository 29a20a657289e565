// Command roadpath answers delivery and gas-station routing questions over a
// built-in road map, a generated terrain grid or a MySQL roads table.
//
//	roadpath -graph delivery -mode distances -from A
//	roadpath -graph gas -mode compare -fuel 10
//	roadpath -graph warehouse -mode stops
//	roadpath -graph mysql -dsn 'user:pw@tcp(localhost:3306)/maps' -mode path -from X -to Y
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"time"

	"github.com/katalvlaran/roadpath/builder"
	"github.com/katalvlaran/roadpath/config"
	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/planner"
	"github.com/katalvlaran/roadpath/roadstore"
)

const loadTimeout = 10 * time.Second

func main() {
	cfg, err := config.FromFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(os.Stderr, "roadpath ", log.LstdFlags)
	}

	if err := run(context.Background(), cfg, os.Stdout, logger); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.Config, out io.Writer, logger *log.Logger) error {
	g, err := loadGraph(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Printf("graph=%s vertices=%d edges=%d", cfg.Graph, g.VertexCount(), g.EdgeCount())

	p := planner.New(g,
		planner.WithLogger(logger),
		planner.WithCacheTTL(cfg.CacheTTL),
		planner.WithRefuelLevel(cfg.RefuelLevel),
	)

	switch cfg.Mode {
	case config.ModeDistances:
		dist, err := p.Distances(cfg.From)
		if err != nil {
			return err
		}
		printTable(out, cfg.From, dist)

	case config.ModePath:
		res, err := p.Path(cfg.From, cfg.To)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Dijkstra's Path:", res)

	case config.ModeGreedy:
		res, err := p.Greedy(cfg.From, cfg.To, cfg.Fuel)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Greedy Path:", res)
		if len(res.Refuels) > 0 {
			fmt.Fprintln(out, "Refueled at:", res.Refuels)
		}

	case config.ModeCompare:
		cmp, err := p.Compare(cfg.From, cfg.To, cfg.Fuel)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Greedy Path:", cmp.Greedy)
		fmt.Fprintln(out, "Dijkstra's Path:", cmp.Optimal)
		if cmp.Overhead > 0 {
			fmt.Fprintf(out, "Greedy overhead: %d\n", cmp.Overhead)
		}

	case config.ModeStops:
		res, err := p.Stops(cfg.From, cfg.To)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Fewest-stops Path:", res)

	default:
		return fmt.Errorf("%w: %q", config.ErrBadMode, cfg.Mode)
	}

	return nil
}

func loadGraph(ctx context.Context, cfg config.Config) (*core.Graph, error) {
	switch cfg.Graph {
	case config.GraphDelivery:
		return builder.Delivery(), nil
	case config.GraphDeliveryMap:
		return builder.DeliveryMap(), nil
	case config.GraphWarehouse:
		return builder.Warehouse(), nil
	case config.GraphGas:
		return builder.GasStations(), nil
	case config.GraphGrid:
		return builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(cfg.Seed)},
			builder.Grid(cfg.GridSize, cfg.GridSize))
	case config.GraphMySQL:
		ctx, cancel := context.WithTimeout(ctx, loadTimeout)
		defer cancel()

		db, err := roadstore.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		return roadstore.Load(ctx, db, roadstore.WithTable(cfg.Table))
	}

	return nil, fmt.Errorf("%w: %q", config.ErrBadGraph, cfg.Graph)
}

// printTable prints one "node: distance" line per reachable node, sorted.
func printTable(out io.Writer, start string, dist map[string]int64) {
	ids := make([]string, 0, len(dist))
	for id := range dist {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "Shortest distances from %s:\n", start)
	for _, id := range ids {
		fmt.Fprintf(out, "  %s: %d\n", id, dist[id])
	}
}
