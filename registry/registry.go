package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"rowconv/entity"
)

// implementationFormat is the name scheme generated implementations follow:
// an interface pkg.Foo is implemented by pkg.ImmutableFoo.
const implementationFormat = "%s.Immutable%s"

var (
	ErrNotAnInterface   = errors.New("registry: first argument must be a nil pointer to an interface type")
	ErrNotConcrete      = errors.New("registry: implementation must be a concrete type")
	ErrDoesNotImplement = errors.New("registry: implementation does not implement the interface")
)

// ImplementationName returns the conventional implementation name for an
// interface type. Pure function of (package path, simple name).
func ImplementationName(t reflect.Type) string {
	return fmt.Sprintf(implementationFormat, t.PkgPath(), t.Name())
}

// Entry is a single (name, type) association in a Registry snapshot.
type Entry struct {
	Name string
	Type reflect.Type
}

// Registry resolves qualified type names to loaded concrete types.
// It is populated at initialization time and read-mostly afterwards;
// all methods are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	types    map[string]reflect.Type
	bindings map[string]string // interface qualified name -> implementation qualified name
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		types:    make(map[string]reflect.Type),
		bindings: make(map[string]string),
	}
}

var defaultRegistry = New()

// Default returns the process-wide registry that generated registration
// files populate from init functions.
func Default() *Registry { return defaultRegistry }

// Register associates an interface type with its implementation type and
// registers the implementation under its qualified name.
//
// The interface is passed as a nil interface pointer, the implementation as
// a value:
//
//	registry.Default().Register((*catalog.Person)(nil), catalog.ImmutablePerson{})
//
// Registration is idempotent for the same pair; registering a different type
// under an already taken name fails.
func (r *Registry) Register(iface, impl any) error {
	ifaceType := reflect.TypeOf(iface)
	if ifaceType == nil || ifaceType.Kind() != reflect.Pointer || ifaceType.Elem().Kind() != reflect.Interface {
		return ErrNotAnInterface
	}

	ifaceElem := ifaceType.Elem()

	implType := reflect.TypeOf(impl)
	if implType == nil || implType.Kind() == reflect.Interface {
		return ErrNotConcrete
	}

	if !implType.Implements(ifaceElem) && !reflect.PointerTo(implType).Implements(ifaceElem) {
		return fmt.Errorf("%w: %s does not implement %s",
			ErrDoesNotImplement, implType, ifaceElem)
	}

	return r.RegisterType(implType)
}

// RegisterType registers a concrete type under its qualified name without
// an interface check. Used for explicitly bound implementations.
func (r *Registry) RegisterType(t reflect.Type) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() == reflect.Interface {
		return ErrNotConcrete
	}

	name := entity.TypeIDOf(t).String()
	if name == "." || t.Name() == "" {
		return fmt.Errorf("registry: cannot register unnamed type %s", t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.types[name]; ok {
		if prev == t {
			return nil
		}

		return fmt.Errorf("registry: name %s already registered to %s", name, prev)
	}

	r.types[name] = t

	return nil
}

// Lookup returns the type registered under a qualified name.
func (r *Registry) Lookup(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[name]

	return t, ok
}

// Bind records an explicit interface-to-implementation binding that takes
// precedence over the naming convention. The implementation must be
// registered separately (RegisterType) to be resolvable.
func (r *Registry) Bind(interfaceName, implementationName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bindings[interfaceName] = implementationName
}

// ResolveName returns the implementation type for an interface type, trying
// explicit bindings first and the naming convention second. The second
// result is false when no implementation is resolvable.
func (r *Registry) ResolveName(ifaceType reflect.Type) (reflect.Type, bool) {
	ifaceName := entity.TypeIDOf(ifaceType).String()

	r.mu.RLock()
	bound, hasBinding := r.bindings[ifaceName]
	r.mu.RUnlock()

	if hasBinding {
		if t, ok := r.Lookup(bound); ok {
			return t, true
		}
	}

	return r.Lookup(ImplementationName(ifaceType))
}

// Entries returns a snapshot of all registered types for diagnostics.
// Order is unspecified.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.types))
	for name, t := range r.types {
		entries = append(entries, Entry{Name: name, Type: t})
	}

	return entries
}
