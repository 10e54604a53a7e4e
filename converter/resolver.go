package converter

import (
	"rowconv/entity"
	"rowconv/registry"
)

// Resolving decorates a Converter so that interface-declared entities are
// materialized as their registered implementation type. Exactly two
// operations are intercepted; everything else is the delegate's behavior,
// including every failure mode.
type Resolving struct {
	delegate Converter
	ctx      *entity.Context
	reg      *registry.Registry
}

// NewResolving wraps a delegate converter. If the delegate routes nested
// hops through a root converter (see Basic.BindRoot), the decorator installs
// itself as that root so nested entities resolve too.
func NewResolving(delegate Converter, ctx *entity.Context, reg *registry.Registry) *Resolving {
	r := &Resolving{delegate: delegate, ctx: ctx, reg: reg}

	if b, ok := delegate.(interface{ BindRoot(Converter) }); ok {
		b.BindRoot(r)
	}

	return r
}

// ResolveEntity substitutes the registered implementation descriptor for an
// interface-declared entity.
//
// Non-interface descriptors are returned unchanged, as are interface
// descriptors with no resolvable implementation; an unresolved
// implementation is the plain-entity case, not an error. The result is
// never itself resolvable again, so the operation is idempotent.
func (r *Resolving) ResolveEntity(d *entity.Descriptor) *entity.Descriptor {
	if d == nil || !d.IsInterface() {
		return d
	}

	implType, ok := r.reg.ResolveName(d.Type())
	if !ok {
		return d
	}

	impl, err := r.ctx.Get(implType)
	if err != nil {
		// Keep the silent-fallback contract; the delegate reports the
		// instantiation failure in its own terms.
		return d
	}

	return impl
}

// MapRow resolves the entity and delegates.
func (r *Resolving) MapRow(d *entity.Descriptor, row RowSource, key any) (any, error) {
	return r.delegate.MapRow(r.ResolveEntity(d), row, key)
}

// MapPathRow resolves the path's leaf entity, substitutes it through a
// leaf-override wrapper and delegates.
func (r *Resolving) MapPathRow(path EntityPath, row RowSource, id Identifier, key any) (any, error) {
	leaf := path.Leaf()

	if resolved := r.ResolveEntity(leaf); resolved != leaf {
		path = overrideLeaf{EntityPath: path, leaf: resolved}
	}

	return r.delegate.MapPathRow(path, row, id, key)
}

// overrideLeaf reports a caller-supplied leaf entity instead of the path's
// natural leaf. The hop sequence and every other accessor delegate to the
// wrapped path; the wrapper is immutable after construction.
type overrideLeaf struct {
	EntityPath
	leaf *entity.Descriptor
}

// Leaf returns the substituted leaf entity.
func (o overrideLeaf) Leaf() *entity.Descriptor { return o.leaf }
