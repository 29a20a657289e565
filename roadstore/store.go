// Package roadstore loads road networks from a MySQL table into a core.Graph.
//
// Expected layout (see Schema):
//
//	roads(src VARCHAR, dst VARCHAR, weight BIGINT, directed BOOL)
//
// Rows with directed = false become two-way roads; directed rows become
// one-way edges src→dst. Rows are read in primary-key order so the
// per-node edge order of the graph is stable between loads.
package roadstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/go-sql-driver/mysql"

	"github.com/katalvlaran/roadpath/core"
)

// DefaultTable is the table read by Load unless WithTable says otherwise.
const DefaultTable = "roads"

// Schema creates the default table.
const Schema = `CREATE TABLE IF NOT EXISTS roads (
	road_id  BIGINT AUTO_INCREMENT PRIMARY KEY,
	src      VARCHAR(255) NOT NULL,
	dst      VARCHAR(255) NOT NULL,
	weight   BIGINT NOT NULL,
	directed BOOL NOT NULL DEFAULT FALSE
)`

var (
	// ErrBadTable indicates a table name that is not a plain SQL identifier.
	ErrBadTable = errors.New("roadstore: invalid table name")

	// ErrBadDSN indicates a DSN the MySQL driver cannot parse.
	ErrBadDSN = errors.New("roadstore: invalid DSN")
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// Querier is the part of *sql.DB (or *sql.Tx, *sql.Conn) Load needs.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Execer is the part of *sql.DB EnsureSchema needs.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Option configures Load.
type Option func(*options)

type options struct {
	table string
}

// WithTable reads roads from table instead of DefaultTable.
func WithTable(table string) Option {
	return func(o *options) { o.table = table }
}

// Open parses dsn with the MySQL driver, enables parseTime and returns a
// handle whose connection has been verified with a ping.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDSN, err)
	}
	cfg.ParseTime = true

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("roadstore: connector: %w", err)
	}
	db := sql.OpenDB(connector)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("roadstore: ping %s: %w", cfg.Addr, err)
	}

	return db, nil
}

// EnsureSchema creates the default roads table if it does not exist.
func EnsureSchema(ctx context.Context, db Execer) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("roadstore: create schema: %w", err)
	}

	return nil
}

// Load reads every row of the roads table into a new graph.
//
// The graph is created directed so that one-way rows stay one-way; two-way
// rows are inserted with AddRoad.
func Load(ctx context.Context, db Querier, opts ...Option) (*core.Graph, error) {
	o := options{table: DefaultTable}
	for _, opt := range opts {
		opt(&o)
	}
	if !identRe.MatchString(o.table) {
		return nil, fmt.Errorf("%w: %q", ErrBadTable, o.table)
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf(
		"SELECT src, dst, weight, directed FROM %s ORDER BY road_id", o.table))
	if err != nil {
		return nil, fmt.Errorf("roadstore: query %s: %w", o.table, err)
	}
	defer rows.Close()

	g := core.NewGraph(core.WithDirected(true))
	n := 0
	for rows.Next() {
		var (
			src, dst string
			weight   int64
			directed bool
		)
		if err := rows.Scan(&src, &dst, &weight, &directed); err != nil {
			return nil, fmt.Errorf("roadstore: scan row %d: %w", n, err)
		}
		if directed {
			err = g.AddEdge(src, dst, weight)
		} else {
			err = g.AddRoad(src, dst, weight)
		}
		if err != nil {
			return nil, fmt.Errorf("roadstore: row %d (%q→%q): %w", n, src, dst, err)
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("roadstore: read %s: %w", o.table, err)
	}

	return g, nil
}
