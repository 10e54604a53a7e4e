package converter_test

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowconv/catalog"
	"rowconv/converter"
)

// fakePGXRows serves one fixed row without a connection.
type fakePGXRows struct {
	fields []pgconn.FieldDescription
	values []any
	err    error
}

func (f *fakePGXRows) Close() {}
func (f *fakePGXRows) Err() error { return f.err }
func (f *fakePGXRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (f *fakePGXRows) FieldDescriptions() []pgconn.FieldDescription { return f.fields }
func (f *fakePGXRows) Next() bool { return false }
func (f *fakePGXRows) Scan(dest ...any) error { return nil }
func (f *fakePGXRows) Values() ([]any, error) { return f.values, f.err }
func (f *fakePGXRows) RawValues() [][]byte { return nil }
func (f *fakePGXRows) Conn() *pgx.Conn { return nil }

func TestFromPGXRows(t *testing.T) {
	rows := &fakePGXRows{
		fields: []pgconn.FieldDescription{{Name: "id"}, {Name: "name"}},
		values: []any{int64(1), "Ann"},
	}

	src, err := converter.FromPGXRows(rows)
	require.NoError(t, err)

	v, ok := src.Value("id")
	require.True(t, ok)
	assert.Equal(t, int64(1), v)

	assert.Equal(t, []string{"id", "name"}, src.Columns())
}

func TestFromPGXRowsFieldMismatch(t *testing.T) {
	rows := &fakePGXRows{
		fields: []pgconn.FieldDescription{{Name: "id"}},
		values: []any{int64(1), "stray"},
	}

	_, err := converter.FromPGXRows(rows)
	require.Error(t, err)
}

func TestMapRowFromPGXSnapshot(t *testing.T) {
	r, ctx, _ := newResolving(t)

	rows := &fakePGXRows{
		fields: []pgconn.FieldDescription{{Name: "id"}, {Name: "name"}},
		values: []any{int64(1), "Ann"},
	}

	src, err := converter.FromPGXRows(rows)
	require.NoError(t, err)

	iface, err := ctx.Of((*catalog.Person)(nil))
	require.NoError(t, err)

	out, err := r.MapRow(iface, src, nil)
	require.NoError(t, err)

	person := out.(catalog.ImmutablePerson)
	assert.Equal(t, "Ann", person.GetName())
}
