package entity

import "reflect"

// PropertyKind classifies how a property is materialized from a row.
type PropertyKind int

const (
	PropertyScalar   PropertyKind = iota // read directly from a column
	PropertyEmbedded                     // nested struct, read from prefixed columns
	PropertyEntity                       // interface-declared entity, resolved per hop
)

// String returns a human-readable representation of the PropertyKind.
func (k PropertyKind) String() string {
	switch k {
	case PropertyScalar:
		return "scalar"
	case PropertyEmbedded:
		return "embedded"
	case PropertyEntity:
		return "entity"
	default:
		return "unknown"
	}
}

// Property describes one structural property of a mapped entity.
//
// Struct-derived properties carry a field index and are settable; properties
// derived from interface getters carry only name, column and type, and exist
// so that an interface descriptor reports the same structure its generated
// implementation will have.
type Property struct {
	name       string
	column     string
	typ        reflect.Type
	kind       PropertyKind
	index      []int // struct field index; nil for getter-derived properties
	identifier bool
}

// Name returns the property name, e.g. "OrderID".
func (p *Property) Name() string { return p.name }

// Column returns the derived or tagged column name, e.g. "order_id".
func (p *Property) Column() string { return p.column }

// Type returns the declared Go type of the property.
func (p *Property) Type() reflect.Type { return p.typ }

// Kind reports how the property is materialized.
func (p *Property) Kind() PropertyKind { return p.kind }

// IsIdentifier reports whether this property is the entity identifier.
func (p *Property) IsIdentifier() bool { return p.identifier }

// FieldIndex returns the struct field index, or nil for getter-derived
// properties.
func (p *Property) FieldIndex() []int { return p.index }
