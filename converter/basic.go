package converter

import (
	"errors"
	"fmt"
	"reflect"

	"rowconv/entity"
	"rowconv/internal/match"
)

// ErrInterfaceEntity is returned when a row must be materialized into an
// interface-declared entity with no implementation substituted for it.
var ErrInterfaceEntity = errors.New("converter: cannot materialize interface entity")

// ErrUnknownColumn is returned in strict mode for row columns that map to
// no property of the target entity.
var ErrUnknownColumn = errors.New("converter: unknown column")

// Basic is the default row converter. It materializes struct entities via
// reflection, coercing raw column values into field types.
//
// Nested entity-valued properties are mapped through the root converter, so
// a decorator wrapping a Basic (see Resolving) also intercepts nested hops.
type Basic struct {
	ctx  *entity.Context
	root Converter

	// StrictColumns makes MapRow fail on row columns that map to no
	// property, with a near-miss suggestion. Set before first use.
	StrictColumns bool
}

// NewBasic creates a Basic converter over a mapping context.
func NewBasic(ctx *entity.Context) *Basic {
	b := &Basic{ctx: ctx}
	b.root = b

	return b
}

// BindRoot points nested-entity mapping at the outermost converter of a
// decorator chain. Called by decorators during construction.
func (b *Basic) BindRoot(root Converter) { b.root = root }

// MapRow materializes one row into an instance of the given entity.
func (b *Basic) MapRow(d *entity.Descriptor, row RowSource, key any) (any, error) {
	if b.StrictColumns {
		if err := b.checkColumns(d, row); err != nil {
			return nil, err
		}
	}

	return b.materialize(d, row)
}

// MapPathRow materializes one row into an instance of the path's leaf
// entity, reading leaf properties from prefixed columns and overlaying the
// identifier's back-reference values.
func (b *Basic) MapPathRow(path EntityPath, row RowSource, id Identifier, key any) (any, error) {
	effective := overlay(scoped(row, path.ColumnPrefix()), id)

	return b.materialize(path.Leaf(), effective)
}

func (b *Basic) materialize(d *entity.Descriptor, row RowSource) (any, error) {
	if d.IsInterface() {
		return nil, fmt.Errorf("%w: %s has no registered implementation",
			ErrInterfaceEntity, d.QualifiedName())
	}

	v := reflect.New(d.Type()).Elem()

	for _, p := range d.Properties() {
		field := v.FieldByIndex(p.FieldIndex())

		switch p.Kind() {
		case entity.PropertyScalar:
			raw, ok := row.Value(p.Column())
			if !ok || raw == nil {
				continue
			}

			fv, err := coerce(raw, p.Type())
			if err != nil {
				return nil, fmt.Errorf("converter: %s.%s from column %q: %w",
					d.Name(), p.Name(), p.Column(), err)
			}

			field.Set(fv)

		case entity.PropertyEmbedded:
			sub := scoped(row, p.Column()+"_")
			if !hasColumns(sub) {
				continue
			}

			subDesc, err := b.ctx.Get(p.Type())
			if err != nil {
				return nil, err
			}

			inst, err := b.materialize(subDesc, sub)
			if err != nil {
				return nil, err
			}

			if err := assign(field, inst); err != nil {
				return nil, fmt.Errorf("converter: %s.%s: %w", d.Name(), p.Name(), err)
			}

		case entity.PropertyEntity:
			sub := scoped(row, p.Column()+"_")
			if !hasColumns(sub) {
				continue
			}

			path, err := entity.NewPath(b.ctx, d).Extend(p.Name())
			if err != nil {
				return nil, err
			}

			// Through the root converter, so decorators see the hop.
			inst, err := b.root.MapPathRow(path, row, Identifier{}, nil)
			if err != nil {
				return nil, err
			}

			if err := assign(field, inst); err != nil {
				return nil, fmt.Errorf("converter: %s.%s: %w", d.Name(), p.Name(), err)
			}
		}
	}

	return v.Interface(), nil
}

// checkColumns rejects row columns that map to no property of the entity,
// suggesting the closest known column.
func (b *Basic) checkColumns(d *entity.Descriptor, row RowSource) error {
	known := d.Columns()

	for _, col := range row.Columns() {
		if _, ok := d.PropertyByColumn(col); ok {
			continue
		}

		if isNestedColumn(d, col) {
			continue
		}

		if hint := match.Suggest(col, known); hint != "" {
			return fmt.Errorf("%w: %q on %s (did you mean %q?)",
				ErrUnknownColumn, col, d.Name(), hint)
		}

		return fmt.Errorf("%w: %q on %s", ErrUnknownColumn, col, d.Name())
	}

	return nil
}

// isNestedColumn reports whether a column belongs to a nested entity of d.
func isNestedColumn(d *entity.Descriptor, col string) bool {
	for _, p := range d.Properties() {
		if p.Kind() == entity.PropertyScalar {
			continue
		}

		if len(col) > len(p.Column())+1 && col[:len(p.Column())+1] == p.Column()+"_" {
			return true
		}
	}

	return false
}

// assign sets a field from a materialized instance, taking a pointer when
// the field expects one or when only the pointer type implements the
// field's interface.
func assign(field reflect.Value, inst any) error {
	iv := reflect.ValueOf(inst)

	switch {
	case iv.Type().AssignableTo(field.Type()):
		field.Set(iv)
	case reflect.PointerTo(iv.Type()).AssignableTo(field.Type()):
		ptr := reflect.New(iv.Type())
		ptr.Elem().Set(iv)
		field.Set(ptr)
	default:
		return fmt.Errorf("%s is not assignable to %s", iv.Type(), field.Type())
	}

	return nil
}
