package entity

import (
	"fmt"
	"strings"
)

// Path is an ordered sequence of property hops from a root entity to a
// nested leaf entity. Paths are immutable; Extend returns a new Path.
type Path struct {
	ctx  *Context
	root *Descriptor
	hops []*Property
	leaf *Descriptor
}

// NewPath creates an empty path rooted at the given entity.
// An empty path's leaf is its root.
func NewPath(ctx *Context, root *Descriptor) *Path {
	return &Path{ctx: ctx, root: root, leaf: root}
}

// Extend appends a hop and returns the extended path. The hop must be an
// entity-valued or embedded property of the current leaf.
func (p *Path) Extend(name string) (*Path, error) {
	prop, ok := p.leaf.Property(name)
	if !ok {
		return nil, fmt.Errorf("entity: %s has no property %s", p.leaf.QualifiedName(), name)
	}

	if prop.Kind() == PropertyScalar {
		return nil, fmt.Errorf("entity: property %s.%s is scalar, not an entity hop",
			p.leaf.Name(), name)
	}

	leaf, err := p.ctx.Get(prop.Type())
	if err != nil {
		return nil, err
	}

	hops := make([]*Property, len(p.hops)+1)
	copy(hops, p.hops)
	hops[len(p.hops)] = prop

	return &Path{ctx: p.ctx, root: p.root, hops: hops, leaf: leaf}, nil
}

// Root returns the entity the path starts from.
func (p *Path) Root() *Descriptor { return p.root }

// Hops returns the property hop sequence. The returned slice must not be
// modified.
func (p *Path) Hops() []*Property { return p.hops }

// Leaf returns the entity descriptor at the end of the path.
func (p *Path) Leaf() *Descriptor { return p.leaf }

// ColumnPrefix returns the column prefix for properties of the leaf entity,
// e.g. "customer_" for the path Order.Customer.
func (p *Path) ColumnPrefix() string {
	if len(p.hops) == 0 {
		return ""
	}

	var sb strings.Builder

	for _, h := range p.hops {
		sb.WriteString(h.Column())
		sb.WriteByte('_')
	}

	return sb.String()
}

// String returns a readable path like "Order.Customer".
func (p *Path) String() string {
	parts := make([]string, 0, len(p.hops)+1)
	parts = append(parts, p.root.Name())

	for _, h := range p.hops {
		parts = append(parts, h.Name())
	}

	return strings.Join(parts, ".")
}
