// Package config turns command-line flags and ROADPATH_* environment
// variables into the settings of one roadpath run.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Modes.
const (
	ModeDistances = "distances"
	ModePath      = "path"
	ModeGreedy    = "greedy"
	ModeCompare   = "compare"
	ModeStops     = "stops"
)

// Graph sources.
const (
	GraphDelivery    = "delivery"
	GraphDeliveryMap = "delivery-map"
	GraphWarehouse   = "warehouse"
	GraphGas         = "gas"
	GraphGrid        = "grid"
	GraphMySQL       = "mysql"
)

var (
	ErrBadMode     = errors.New("config: unknown mode")
	ErrBadGraph    = errors.New("config: unknown graph")
	ErrMissingDSN  = errors.New("config: mysql graph needs -dsn or ROADPATH_DSN")
	ErrBadGridSize = errors.New("config: grid size must be ≥ 2")
	ErrBadFuel     = errors.New("config: fuel must be ≥ 0 and refuel level > 0")
	ErrBadCacheTTL = errors.New("config: cache TTL must be positive")
)

// Config holds one run's settings.
type Config struct {
	Mode  string
	Graph string
	From  string
	To    string

	Fuel        int64
	RefuelLevel int64

	DSN      string
	Table    string
	GridSize int
	Seed     int64
	CacheTTL time.Duration
	Verbose  bool
}

// FromFlags parses args (without the program name). Flag defaults come from
// the environment so that ROADPATH_MODE=compare works like -mode compare.
func FromFlags(args []string) (Config, error) {
	var c Config

	fs := flag.NewFlagSet("roadpath", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&c.Mode, "mode", getEnvWithDefault("ROADPATH_MODE", ModeCompare), "distances | path | greedy | compare | stops")
	fs.StringVar(&c.Graph, "graph", getEnvWithDefault("ROADPATH_GRAPH", GraphGas), "delivery | delivery-map | warehouse | gas | grid | mysql")
	fs.StringVar(&c.From, "from", getEnvWithDefault("ROADPATH_FROM", ""), "start node (default depends on -graph)")
	fs.StringVar(&c.To, "to", getEnvWithDefault("ROADPATH_TO", ""), "destination node (default depends on -graph)")
	fs.Int64Var(&c.Fuel, "fuel", getEnvAsInt64("ROADPATH_FUEL", 10), "initial fuel for greedy")
	fs.Int64Var(&c.RefuelLevel, "refuel", getEnvAsInt64("ROADPATH_REFUEL", 15), "fuel level after a refuel stop")
	fs.StringVar(&c.DSN, "dsn", os.Getenv("ROADPATH_DSN"), "MySQL DSN for -graph mysql")
	fs.StringVar(&c.Table, "table", getEnvWithDefault("ROADPATH_TABLE", "roads"), "MySQL table for -graph mysql")
	fs.IntVar(&c.GridSize, "grid-size", int(getEnvAsInt64("ROADPATH_GRID_SIZE", 8)), "rows and columns for -graph grid")
	fs.Int64Var(&c.Seed, "seed", getEnvAsInt64("ROADPATH_SEED", 1), "terrain seed for -graph grid")
	fs.DurationVar(&c.CacheTTL, "cache-ttl", getEnvAsDuration("ROADPATH_CACHE_TTL", 10*time.Minute), "distance table cache lifetime")
	fs.BoolVar(&c.Verbose, "v", getEnvAsBool("ROADPATH_VERBOSE", false), "log every query to stderr")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c.defaultEndpoints()

	return c, c.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeDistances, ModePath, ModeGreedy, ModeCompare, ModeStops:
	default:
		return fmt.Errorf("%w: %q", ErrBadMode, c.Mode)
	}

	switch c.Graph {
	case GraphDelivery, GraphDeliveryMap, GraphWarehouse, GraphGas:
	case GraphGrid:
		if c.GridSize < 2 {
			return fmt.Errorf("%w: %d", ErrBadGridSize, c.GridSize)
		}
	case GraphMySQL:
		if c.DSN == "" {
			return ErrMissingDSN
		}
	default:
		return fmt.Errorf("%w: %q", ErrBadGraph, c.Graph)
	}

	if c.Fuel < 0 || c.RefuelLevel <= 0 {
		return fmt.Errorf("%w: fuel=%d refuel=%d", ErrBadFuel, c.Fuel, c.RefuelLevel)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("%w: %s", ErrBadCacheTTL, c.CacheTTL)
	}

	return nil
}

// defaultEndpoints fills From/To with the natural trip for built-in graphs.
func (c *Config) defaultEndpoints() {
	var from, to string
	switch c.Graph {
	case GraphDelivery:
		from, to = "A", "C"
	case GraphDeliveryMap:
		from, to = "A", "F"
	case GraphWarehouse:
		from, to = "W", "C"
	case GraphGas:
		from, to = "Start", "Destination"
	case GraphGrid:
		from, to = "0,0", fmt.Sprintf("%d,%d", c.GridSize-1, c.GridSize-1)
	}
	if c.From == "" {
		c.From = from
	}
	if c.To == "" {
		c.To = to
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseInt(value, 10, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if v, err := time.ParseDuration(value); err == nil {
			return v
		}
	}
	return defaultValue
}
