package converter

import (
	"sort"
	"strings"
)

// RowSource is read access to one row of a result set.
type RowSource interface {
	// Columns returns the column names present in the row.
	Columns() []string
	// Value returns the raw value of a column and whether the column exists.
	Value(column string) (any, bool)
}

// RowMap is a map-backed RowSource, used by the row adapters and in tests.
type RowMap map[string]any

// Columns returns the column names in sorted order.
func (m RowMap) Columns() []string {
	cols := make([]string, 0, len(m))
	for c := range m {
		cols = append(cols, c)
	}

	sort.Strings(cols)

	return cols
}

// Value returns the raw value of a column.
func (m RowMap) Value(column string) (any, bool) {
	v, ok := m[column]
	return v, ok
}

// prefixedRow scopes a row to the columns under a prefix, so that nested
// materialization composes without string bookkeeping at every level.
type prefixedRow struct {
	base   RowSource
	prefix string
}

func scoped(row RowSource, prefix string) RowSource {
	if prefix == "" {
		return row
	}

	return prefixedRow{base: row, prefix: prefix}
}

func (p prefixedRow) Columns() []string {
	var cols []string

	for _, c := range p.base.Columns() {
		if trimmed, ok := strings.CutPrefix(c, p.prefix); ok {
			cols = append(cols, trimmed)
		}
	}

	return cols
}

func (p prefixedRow) Value(column string) (any, bool) {
	return p.base.Value(p.prefix + column)
}

// hasColumns reports whether the row exposes any column at all. Used to
// decide if an absent nested entity should stay zero.
func hasColumns(row RowSource) bool {
	return len(row.Columns()) > 0
}
