package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
)

// stubConn is a minimal database/sql driver connection for exercising
// repository logic without a MySQL server. Exec calls return the configured
// affected-row count, query calls return the configured rows, and every
// statement text is recorded in order.
type stubConn struct {
	affected int64
	cols     []string
	rows     [][]driver.Value
	queries  []string
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}
func (c *stubConn) Close() error { return nil }
func (c *stubConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func (c *stubConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	c.queries = append(c.queries, query)
	return stubResult{affected: c.affected}, nil
}

func (c *stubConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	c.queries = append(c.queries, query)
	return &stubRows{cols: c.cols, vals: c.rows}, nil
}

type stubResult struct{ affected int64 }

func (r stubResult) LastInsertId() (int64, error) { return 1, nil }
func (r stubResult) RowsAffected() (int64, error) { return r.affected, nil }

type stubRows struct {
	cols []string
	vals [][]driver.Value
	i    int
}

func (r *stubRows) Columns() []string { return r.cols }
func (r *stubRows) Close() error      { return nil }
func (r *stubRows) Next(dest []driver.Value) error {
	if r.i >= len(r.vals) {
		return io.EOF
	}
	copy(dest, r.vals[r.i])
	r.i++
	return nil
}

type stubConnector struct{ conn *stubConn }

func (c stubConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }
func (c stubConnector) Driver() driver.Driver                        { return stubDriver{} }

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("open not supported")
}

func newStubDB(conn *stubConn) *sql.DB {
	return sql.OpenDB(stubConnector{conn: conn})
}
