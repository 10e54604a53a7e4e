package converter

// IdentifierPart is one column/value pair of an Identifier.
type IdentifierPart struct {
	Column string
	Value  any
}

// Identifier carries back-reference column values from a parent row into
// path-based mapping. It is immutable; With returns a new Identifier.
type Identifier struct {
	parts []IdentifierPart
}

// NewIdentifier creates an Identifier from the given parts.
func NewIdentifier(parts ...IdentifierPart) Identifier {
	return Identifier{parts: parts}
}

// With returns a copy of the identifier extended by one part.
func (id Identifier) With(column string, value any) Identifier {
	parts := make([]IdentifierPart, len(id.parts)+1)
	copy(parts, id.parts)
	parts[len(id.parts)] = IdentifierPart{Column: column, Value: value}

	return Identifier{parts: parts}
}

// Parts returns the identifier parts in insertion order. The returned slice
// must not be modified.
func (id Identifier) Parts() []IdentifierPart { return id.parts }

// IsEmpty reports whether the identifier carries no parts.
func (id Identifier) IsEmpty() bool { return len(id.parts) == 0 }

// overlayRow lays identifier values over a row; identifier columns win.
type overlayRow struct {
	base RowSource
	id   Identifier
}

func overlay(row RowSource, id Identifier) RowSource {
	if id.IsEmpty() {
		return row
	}

	return overlayRow{base: row, id: id}
}

func (o overlayRow) Columns() []string {
	cols := o.base.Columns()

	for _, p := range o.id.parts {
		if _, exists := o.base.Value(p.Column); !exists {
			cols = append(cols, p.Column)
		}
	}

	return cols
}

func (o overlayRow) Value(column string) (any, bool) {
	for _, p := range o.id.parts {
		if p.Column == column {
			return p.Value, true
		}
	}

	return o.base.Value(column)
}
