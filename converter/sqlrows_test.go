package converter_test

import (
	"database/sql"
	"database/sql/driver"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowconv/catalog"
	"rowconv/converter"
)

// A minimal database/sql driver serving canned rows, so the adapter can be
// tested without a database.
type cannedDriver struct{}

type cannedConn struct{}

type cannedRows struct {
	columns []string
	rows    [][]driver.Value
	pos     int
}

var cannedResult = cannedRows{
	columns: []string{"id", "name"},
	rows: [][]driver.Value{
		{int64(1), "Ann"},
		{int64(2), "Bob"},
	},
}

func (cannedDriver) Open(string) (driver.Conn, error) { return cannedConn{}, nil }

func (cannedConn) Prepare(string) (driver.Stmt, error) { return nil, driver.ErrSkip }
func (cannedConn) Close() error { return nil }
func (cannedConn) Begin() (driver.Tx, error) { return nil, driver.ErrSkip }

func (cannedConn) Query(string, []driver.Value) (driver.Rows, error) {
	rows := cannedResult
	return &rows, nil
}

func (r *cannedRows) Columns() []string { return r.columns }
func (r *cannedRows) Close() error { return nil }

func (r *cannedRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		return io.EOF
	}

	copy(dest, r.rows[r.pos])
	r.pos++

	return nil
}

func init() {
	sql.Register("canned", cannedDriver{})
}

func TestFromSQLRows(t *testing.T) {
	db, err := sql.Open("canned", "")
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query("select id, name from people")
	require.NoError(t, err)
	defer rows.Close()

	r, ctx, _ := newResolving(t)

	iface, err := ctx.Of((*catalog.Person)(nil))
	require.NoError(t, err)

	var people []catalog.Person

	for rows.Next() {
		src, err := converter.FromSQLRows(rows)
		require.NoError(t, err)

		out, err := r.MapRow(iface, src, nil)
		require.NoError(t, err)

		people = append(people, out.(catalog.Person))
	}

	require.NoError(t, rows.Err())
	require.Len(t, people, 2)
	assert.Equal(t, "Ann", people[0].GetName())
	assert.Equal(t, "Bob", people[1].GetName())
	assert.Equal(t, int64(2), people[1].GetID())
}
