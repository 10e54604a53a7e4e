package entity

import (
	"fmt"
	"reflect"
	"strings"
)

// getterPrefix is the accessor prefix that turns an interface method into a
// property, e.g. GetOrderID -> OrderID.
const getterPrefix = "Get"

// tagKey is the struct tag consulted for column overrides, e.g.
// `db:"order_id"`, `db:",pk"`, `db:"-"`.
const tagKey = "db"

// Descriptor describes the relational structure of one mapped type.
// Descriptors are immutable once built; build them through a Context.
type Descriptor struct {
	id         TypeID
	typ        reflect.Type
	table      string
	props      []*Property
	byName     map[string]*Property
	byColumn   map[string]*Property
	identifier *Property
}

// ID returns the qualified type identity.
func (d *Descriptor) ID() TypeID { return d.id }

// Type returns the declared Go type of the entity.
func (d *Descriptor) Type() reflect.Type { return d.typ }

// Name returns the simple type name.
func (d *Descriptor) Name() string { return d.id.Name }

// QualifiedName returns "<pkg-path>.<Name>".
func (d *Descriptor) QualifiedName() string { return d.id.String() }

// Table returns the derived table name.
func (d *Descriptor) Table() string { return d.table }

// IsInterface reports whether the entity is declared as an interface type
// and therefore has no instantiation strategy of its own.
func (d *Descriptor) IsInterface() bool { return d.typ.Kind() == reflect.Interface }

// Properties returns the ordered structural properties. The returned slice
// must not be modified.
func (d *Descriptor) Properties() []*Property { return d.props }

// Property returns the property with the given name.
func (d *Descriptor) Property(name string) (*Property, bool) {
	p, ok := d.byName[name]
	return p, ok
}

// PropertyByColumn returns the property mapped to the given column.
func (d *Descriptor) PropertyByColumn(column string) (*Property, bool) {
	p, ok := d.byColumn[column]
	return p, ok
}

// Identifier returns the identifier property, or nil if the entity has none.
func (d *Descriptor) Identifier() *Property { return d.identifier }

// Columns returns the column names of all scalar properties, in order.
func (d *Descriptor) Columns() []string {
	cols := make([]string, 0, len(d.props))

	for _, p := range d.props {
		if p.kind == PropertyScalar {
			cols = append(cols, p.column)
		}
	}

	return cols
}

// newDescriptor builds a Descriptor for a struct or interface type.
func newDescriptor(t reflect.Type) (*Descriptor, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Name() == "" {
		return nil, fmt.Errorf("entity: cannot describe unnamed type %s", t)
	}

	d := &Descriptor{
		id:       TypeIDOf(t),
		typ:      t,
		table:    TableName(t.Name()),
		byName:   make(map[string]*Property),
		byColumn: make(map[string]*Property),
	}

	var err error

	switch t.Kind() {
	case reflect.Struct:
		err = d.collectFields(t, nil)
	case reflect.Interface:
		err = d.collectGetters(t)
	default:
		return nil, fmt.Errorf("entity: %s is neither a struct nor an interface", d.id)
	}

	if err != nil {
		return nil, err
	}

	return d, nil
}

// collectFields derives properties from exported struct fields.
// Anonymous embedded structs are flattened into the parent.
func (d *Descriptor) collectFields(t reflect.Type, indexPrefix []int) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		index := append(append([]int{}, indexPrefix...), i)

		if f.Anonymous && f.Type.Kind() == reflect.Struct && !isScalarType(f.Type) {
			if err := d.collectFields(f.Type, index); err != nil {
				return err
			}

			continue
		}

		column, pk, skip := parseTag(f.Tag.Get(tagKey))
		if skip {
			continue
		}

		if column == "" {
			column = ColumnName(f.Name)
		}

		kind, ok := classify(f.Type)
		if !ok {
			// Collections and other unmappable shapes are not materialized
			// from a single row; they are left to relation loading.
			continue
		}

		if err := d.add(&Property{
			name:       f.Name,
			column:     column,
			typ:        f.Type,
			kind:       kind,
			index:      index,
			identifier: pk || f.Name == "ID",
		}); err != nil {
			return err
		}
	}

	return nil
}

// collectGetters derives properties from Get* accessor methods of an
// interface type.
func (d *Descriptor) collectGetters(t reflect.Type) error {
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)

		name, ok := strings.CutPrefix(m.Name, getterPrefix)
		if !ok || name == "" {
			continue
		}

		if m.Type.NumIn() != 0 || m.Type.NumOut() != 1 {
			continue
		}

		out := m.Type.Out(0)

		kind, ok := classify(out)
		if !ok {
			continue
		}

		if err := d.add(&Property{
			name:       name,
			column:     ColumnName(name),
			typ:        out,
			kind:       kind,
			identifier: name == "ID",
		}); err != nil {
			return err
		}
	}

	return nil
}

func (d *Descriptor) add(p *Property) error {
	if _, exists := d.byName[p.name]; exists {
		return fmt.Errorf("entity: duplicate property %s on %s", p.name, d.id)
	}

	if prev, exists := d.byColumn[p.column]; exists && p.kind == PropertyScalar {
		return fmt.Errorf("entity: column %q claimed by both %s and %s on %s",
			p.column, prev.name, p.name, d.id)
	}

	d.props = append(d.props, p)
	d.byName[p.name] = p

	if p.kind == PropertyScalar {
		d.byColumn[p.column] = p
	}

	if p.identifier && d.identifier == nil {
		d.identifier = p
	}

	return nil
}

// classify maps a property type onto its materialization kind.
// The second result is false for shapes that cannot be read from one row.
func classify(t reflect.Type) (PropertyKind, bool) {
	if isScalarType(t) {
		return PropertyScalar, true
	}

	switch t.Kind() {
	case reflect.Interface:
		return PropertyEntity, true
	case reflect.Struct:
		return PropertyEmbedded, true
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Struct {
			return PropertyEmbedded, true
		}

		return 0, false
	default:
		return 0, false
	}
}

// parseTag splits a `db` tag into column name, pk marker and skip marker.
func parseTag(tag string) (column string, pk bool, skip bool) {
	if tag == "-" {
		return "", false, true
	}

	if tag == "" {
		return "", false, false
	}

	parts := strings.Split(tag, ",")
	column = parts[0]

	for _, opt := range parts[1:] {
		if opt == "pk" {
			pk = true
		}
	}

	return column, pk, false
}
