package converter

import "rowconv/entity"

// EntityPath is the view of a property path the converter operates on.
// *entity.Path implements it; decorators may substitute single accessors.
type EntityPath interface {
	// Root returns the entity the path starts from.
	Root() *entity.Descriptor
	// Hops returns the property hop sequence.
	Hops() []*entity.Property
	// Leaf returns the entity descriptor at the end of the path.
	Leaf() *entity.Descriptor
	// ColumnPrefix returns the column prefix for leaf properties.
	ColumnPrefix() string
}

var _ EntityPath = (*entity.Path)(nil)

// Converter maps result-set rows to entity instances.
//
// Implementations must be safe for concurrent use; both operations are
// stateless request/response transforms.
type Converter interface {
	// MapRow materializes one row into an instance of the given entity.
	// The key identifies the row within a keyed collection and is passed
	// through unchanged.
	MapRow(d *entity.Descriptor, row RowSource, key any) (any, error)

	// MapPathRow materializes one row into an instance of the entity at the
	// leaf of the path, with identifier values overlaid on the row.
	MapPathRow(path EntityPath, row RowSource, id Identifier, key any) (any, error)
}
