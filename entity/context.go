package entity

import (
	"fmt"
	"reflect"
	"sync"
)

// Context is the mapping context: a process-wide cache of entity descriptors.
//
// Descriptors are built lazily on first request and cached forever; the cache
// is read-mostly and safe for concurrent use.
type Context struct {
	mu     sync.RWMutex
	byType map[reflect.Type]*Descriptor
	byName map[string]*Descriptor
}

// NewContext creates an empty mapping context.
func NewContext() *Context {
	return &Context{
		byType: make(map[reflect.Type]*Descriptor),
		byName: make(map[string]*Descriptor),
	}
}

// Get returns the descriptor for a type, building it on first use.
// Pointer types are normalized to their element type.
func (c *Context) Get(t reflect.Type) (*Descriptor, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	c.mu.RLock()
	d, ok := c.byType[t]
	c.mu.RUnlock()

	if ok {
		return d, nil
	}

	d, err := newDescriptor(t)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have built it in the meantime; keep the first.
	if prev, ok := c.byType[t]; ok {
		return prev, nil
	}

	c.byType[t] = d
	c.byName[d.QualifiedName()] = d

	return d, nil
}

// Of returns the descriptor for a value's type.
// A nil pointer to an interface, e.g. (*catalog.Person)(nil), describes the
// interface itself.
func (c *Context) Of(v any) (*Descriptor, error) {
	if v == nil {
		return nil, fmt.Errorf("entity: cannot describe nil")
	}

	return c.Get(reflect.TypeOf(v))
}

// GetByName returns an already built descriptor by its qualified name.
func (c *Context) GetByName(qualified string) (*Descriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.byName[qualified]

	return d, ok
}
