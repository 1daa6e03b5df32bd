package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeDB is a database/sql driver that answers every SELECT with canned rows.
// Column labels follow Postgres: the alias when one is given, otherwise the
// last segment of the column reference.
type fakeDB struct {
	mu      sync.Mutex
	rows    []map[string]driver.Value
	err     error
	queries []string
	args    [][]driver.Value
}

var (
	fakeDBsMu sync.Mutex
	fakeDBs   = map[string]*fakeDB{}
)

func init() {
	sql.Register("fakepg", fakeDriver{})
}

func newFakeDB(t *testing.T, rows []map[string]driver.Value, err error) (*sql.DB, *fakeDB) {
	t.Helper()
	fdb := &fakeDB{rows: rows, err: err}

	fakeDBsMu.Lock()
	fakeDBs[t.Name()] = fdb
	fakeDBsMu.Unlock()

	db, openErr := sql.Open("fakepg", t.Name())
	require.NoError(t, openErr)
	t.Cleanup(func() {
		_ = db.Close()
		fakeDBsMu.Lock()
		delete(fakeDBs, t.Name())
		fakeDBsMu.Unlock()
	})
	return db, fdb
}

type fakeDriver struct{}

func (fakeDriver) Open(name string) (driver.Conn, error) {
	fakeDBsMu.Lock()
	defer fakeDBsMu.Unlock()
	fdb, ok := fakeDBs[name]
	if !ok {
		return nil, errors.New("fakepg: unknown database " + name)
	}
	return &fakeConn{db: fdb}, nil
}

type fakeConn struct {
	db *fakeDB
}

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	return &fakeStmt{db: c.db, query: query}, nil
}

func (c *fakeConn) Close() error { return nil }

func (c *fakeConn) Begin() (driver.Tx, error) {
	return nil, errors.New("fakepg: transactions are not supported")
}

type fakeStmt struct {
	db    *fakeDB
	query string
}

func (s *fakeStmt) Close() error  { return nil }
func (s *fakeStmt) NumInput() int { return -1 }

func (s *fakeStmt) Exec([]driver.Value) (driver.Result, error) {
	return nil, errors.New("fakepg: exec is not supported")
}

func (s *fakeStmt) Query(args []driver.Value) (driver.Rows, error) {
	s.db.mu.Lock()
	s.db.queries = append(s.db.queries, s.query)
	s.db.args = append(s.db.args, args)
	s.db.mu.Unlock()

	if s.db.err != nil {
		return nil, s.db.err
	}

	labels, cols := selectList(s.query)
	return &fakeRows{labels: labels, cols: cols, rows: s.db.rows}, nil
}

// selectList returns the result labels and the source columns of a SELECT.
func selectList(query string) (labels, cols []string) {
	start := strings.Index(query, "SELECT ") + len("SELECT ")
	end := strings.Index(query, " FROM ")
	for _, item := range strings.Split(query[start:end], ",") {
		item = strings.TrimSpace(item)
		expr, alias := item, ""
		if i := strings.Index(strings.ToLower(item), " as "); i >= 0 {
			expr, alias = item[:i], item[i+len(" as "):]
		}

		segs := strings.Split(expr, ".")
		col := strings.Trim(segs[len(segs)-1], `"`)
		label := col
		if alias != "" {
			label = strings.Trim(alias, `"`)
		}
		labels = append(labels, label)
		cols = append(cols, col)
	}
	return labels, cols
}

type fakeRows struct {
	labels []string
	cols   []string
	rows   []map[string]driver.Value
	next   int
}

func (r *fakeRows) Columns() []string { return r.labels }
func (r *fakeRows) Close() error      { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.next >= len(r.rows) {
		return io.EOF
	}
	row := r.rows[r.next]
	r.next++
	for i, col := range r.cols {
		dest[i] = row[col]
	}
	return nil
}
