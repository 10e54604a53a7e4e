package converter

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

// FromPGXRows snapshots the current row of a pgx result set into a
// RowSource. The caller drives rows.Next; one snapshot per row.
func FromPGXRows(rows pgx.Rows) (RowSource, error) {
	values, err := rows.Values()
	if err != nil {
		return nil, fmt.Errorf("converter: reading row values: %w", err)
	}

	fields := rows.FieldDescriptions()
	if len(fields) != len(values) {
		return nil, fmt.Errorf("converter: %d field descriptions for %d values",
			len(fields), len(values))
	}

	row := make(RowMap, len(fields))
	for i, f := range fields {
		row[f.Name] = values[i]
	}

	return row, nil
}
