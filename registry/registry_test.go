package registry_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowconv/catalog"
	"rowconv/registry"
)

func TestImplementationName(t *testing.T) {
	personType := reflect.TypeOf((*catalog.Person)(nil)).Elem()

	assert.Equal(t, "rowconv/catalog.ImmutablePerson", registry.ImplementationName(personType))
}

func TestRegisterAndResolve(t *testing.T) {
	r := registry.New()

	require.NoError(t, r.Register((*catalog.Person)(nil), catalog.ImmutablePerson{}))

	impl, ok := r.Lookup("rowconv/catalog.ImmutablePerson")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(catalog.ImmutablePerson{}), impl)

	resolved, ok := r.ResolveName(reflect.TypeOf((*catalog.Person)(nil)).Elem())
	require.True(t, ok)
	assert.Equal(t, impl, resolved)
}

func TestRegisterIsIdempotent(t *testing.T) {
	r := registry.New()

	require.NoError(t, r.Register((*catalog.Person)(nil), catalog.ImmutablePerson{}))
	require.NoError(t, r.Register((*catalog.Person)(nil), catalog.ImmutablePerson{}))

	assert.Len(t, r.Entries(), 1)
}

func TestRegisterValidation(t *testing.T) {
	r := registry.New()

	// Not a nil interface pointer.
	err := r.Register(catalog.ImmutablePerson{}, catalog.ImmutablePerson{})
	assert.ErrorIs(t, err, registry.ErrNotAnInterface)

	// Implementation does not implement the interface.
	err = r.Register((*catalog.Order)(nil), catalog.ImmutablePerson{})
	assert.ErrorIs(t, err, registry.ErrDoesNotImplement)
}

func TestUnresolvableInterface(t *testing.T) {
	r := registry.New()

	_, ok := r.ResolveName(reflect.TypeOf((*catalog.Supplier)(nil)).Elem())
	assert.False(t, ok)
}

func TestExplicitBinding(t *testing.T) {
	r := registry.New()

	require.NoError(t, r.RegisterType(reflect.TypeOf(catalog.LegacySupplier{})))
	r.Bind("rowconv/catalog.Supplier", "rowconv/catalog.LegacySupplier")

	resolved, ok := r.ResolveName(reflect.TypeOf((*catalog.Supplier)(nil)).Elem())
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(catalog.LegacySupplier{}), resolved)
}

func TestExplicitBindingWinsOverConvention(t *testing.T) {
	r := registry.New()

	// Both a conventional implementation and an explicit binding are
	// resolvable; the binding takes precedence.
	require.NoError(t, r.Register((*catalog.Person)(nil), catalog.ImmutablePerson{}))
	require.NoError(t, r.RegisterType(reflect.TypeOf(catalog.LegacySupplier{})))
	r.Bind("rowconv/catalog.Person", "rowconv/catalog.LegacySupplier")

	resolved, ok := r.ResolveName(reflect.TypeOf((*catalog.Person)(nil)).Elem())
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(catalog.LegacySupplier{}), resolved)
}

func TestBindingToUnregisteredNameFallsBackToConvention(t *testing.T) {
	r := registry.New()

	require.NoError(t, r.Register((*catalog.Person)(nil), catalog.ImmutablePerson{}))
	r.Bind("rowconv/catalog.Person", "rowconv/catalog.DoesNotExist")

	resolved, ok := r.ResolveName(reflect.TypeOf((*catalog.Person)(nil)).Elem())
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(catalog.ImmutablePerson{}), resolved)
}

func TestRegistryConcurrentUse(t *testing.T) {
	r := registry.New()
	personType := reflect.TypeOf((*catalog.Person)(nil)).Elem()

	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			assert.NoError(t, r.Register((*catalog.Person)(nil), catalog.ImmutablePerson{}))

			if resolved, ok := r.ResolveName(personType); ok {
				assert.Equal(t, reflect.TypeOf(catalog.ImmutablePerson{}), resolved)
			}

			r.Entries()
		}()
	}

	wg.Wait()

	impl, ok := r.Lookup("rowconv/catalog.ImmutablePerson")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(catalog.ImmutablePerson{}), impl)
	assert.Len(t, r.Entries(), 1)
}

func TestDefaultRegistryPopulatedByGeneratedCode(t *testing.T) {
	// catalog/immutables.gen.go registers from init.
	for _, name := range []string{
		"rowconv/catalog.ImmutablePerson",
		"rowconv/catalog.ImmutableCustomer",
		"rowconv/catalog.ImmutableOrder",
	} {
		_, ok := registry.Default().Lookup(name)
		assert.True(t, ok, name)
	}
}
