package converter

import (
	"database/sql"
	"fmt"
)

// FromSQLRows snapshots the current row of a database/sql result set into a
// RowSource. The caller drives rows.Next; one snapshot per row.
func FromSQLRows(rows *sql.Rows) (RowSource, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("converter: reading columns: %w", err)
	}

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))

	for i := range values {
		ptrs[i] = &values[i]
	}

	if err := rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("converter: scanning row: %w", err)
	}

	row := make(RowMap, len(cols))
	for i, c := range cols {
		row[c] = values[i]
	}

	return row, nil
}
