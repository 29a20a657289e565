package roadstore_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/dijkstra"
	"github.com/katalvlaran/roadpath/roadstore"
)

// fakeConnector serves canned rows through database/sql without a server.
type fakeConnector struct {
	rows     [][]driver.Value
	queryErr error
	queries  []string
}

func (c *fakeConnector) Connect(context.Context) (driver.Conn, error) { return &fakeConn{c: c}, nil }
func (c *fakeConnector) Driver() driver.Driver                        { return fakeDriver{c} }

type fakeDriver struct{ c *fakeConnector }

func (d fakeDriver) Open(string) (driver.Conn, error) { return &fakeConn{c: d.c}, nil }

type fakeConn struct{ c *fakeConnector }

func (fc *fakeConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("prepare unsupported") }
func (fc *fakeConn) Close() error                        { return nil }
func (fc *fakeConn) Begin() (driver.Tx, error)           { return nil, errors.New("tx unsupported") }

func (fc *fakeConn) QueryContext(_ context.Context, q string, _ []driver.NamedValue) (driver.Rows, error) {
	fc.c.queries = append(fc.c.queries, q)
	if fc.c.queryErr != nil {
		return nil, fc.c.queryErr
	}
	return &fakeRows{data: fc.c.rows}, nil
}

func (fc *fakeConn) ExecContext(_ context.Context, q string, _ []driver.NamedValue) (driver.Result, error) {
	fc.c.queries = append(fc.c.queries, q)
	return driver.RowsAffected(0), nil
}

type fakeRows struct {
	data [][]driver.Value
	i    int
}

func (r *fakeRows) Columns() []string { return []string{"src", "dst", "weight", "directed"} }
func (r *fakeRows) Close() error      { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.i >= len(r.data) {
		return io.EOF
	}
	copy(dest, r.data[r.i])
	r.i++
	return nil
}

func openFake(t *testing.T, fc *fakeConnector) *sql.DB {
	t.Helper()
	db := sql.OpenDB(fc)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoad_MixedDirections(t *testing.T) {
	fc := &fakeConnector{rows: [][]driver.Value{
		{"Start", "A", int64(5), int64(1)},
		{"A", "Gas1", int64(3), int64(1)},
		{"Gas1", "Destination", int64(4), int64(0)},
	}}
	g, err := roadstore.Load(context.Background(), openFake(t, fc))
	require.NoError(t, err)

	require.Len(t, fc.queries, 1)
	assert.Contains(t, fc.queries[0], "FROM roads")

	assert.Equal(t, []core.Edge{{From: "Start", To: "A", Weight: 5}}, g.Neighbors("Start"))
	assert.Len(t, g.Neighbors("A"), 1, "one-way rows are not mirrored")
	assert.Equal(t, []core.Edge{{From: "Destination", To: "Gas1", Weight: 4}}, g.Neighbors("Destination"))

	res, err := dijkstra.ShortestPath(g, "Start", "Destination")
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.Cost)
}

func TestLoad_CustomTable(t *testing.T) {
	fc := &fakeConnector{}
	g, err := roadstore.Load(context.Background(), openFake(t, fc), roadstore.WithTable("city_roads"))
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
	assert.Contains(t, fc.queries[0], "FROM city_roads")
}

func TestLoad_RejectsBadTable(t *testing.T) {
	fc := &fakeConnector{}
	_, err := roadstore.Load(context.Background(), openFake(t, fc), roadstore.WithTable("roads; DROP TABLE x"))
	require.ErrorIs(t, err, roadstore.ErrBadTable)
	assert.Empty(t, fc.queries)
}

func TestLoad_QueryError(t *testing.T) {
	boom := errors.New("boom")
	_, err := roadstore.Load(context.Background(), openFake(t, &fakeConnector{queryErr: boom}))
	require.ErrorIs(t, err, boom)
}

func TestLoad_EmptyNodeID(t *testing.T) {
	fc := &fakeConnector{rows: [][]driver.Value{{"", "A", int64(1), int64(0)}}}
	_, err := roadstore.Load(context.Background(), openFake(t, fc))
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestEnsureSchema(t *testing.T) {
	fc := &fakeConnector{}
	require.NoError(t, roadstore.EnsureSchema(context.Background(), openFake(t, fc)))
	require.Equal(t, []string{roadstore.Schema}, fc.queries)
}

func TestOpen_BadDSN(t *testing.T) {
	_, err := roadstore.Open(context.Background(), "definitely not a dsn")
	require.ErrorIs(t, err, roadstore.ErrBadDSN)
}
