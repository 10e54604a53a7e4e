package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_Scan(t *testing.T) {
	result, err := NewScanner("").Scan("rowconv/catalog")
	require.NoError(t, err)
	require.NotNil(t, result)

	pairs := result.PairsIn("rowconv/catalog")
	require.Len(t, pairs, 3)

	// Sorted by interface name within the package.
	assert.Equal(t, "Customer", pairs[0].Interface.Name)
	assert.Equal(t, "ImmutableCustomer", pairs[0].Implementation.Name)
	assert.Equal(t, "Order", pairs[1].Interface.Name)
	assert.Equal(t, "Person", pairs[2].Interface.Name)

	assert.Equal(t, "rowconv/catalog.Person", pairs[2].Interface.String())

	pkg, ok := result.Packages["rowconv/catalog"]
	require.True(t, ok)
	assert.Equal(t, "catalog", pkg.Name)
	assert.NotEmpty(t, pkg.Dir)
}

func TestScanner_MissingImplementationIsWarning(t *testing.T) {
	result, err := NewScanner("").Scan("rowconv/catalog")
	require.NoError(t, err)

	// Supplier has no ImmutableSupplier; that is legal but worth flagging.
	require.False(t, result.Diagnostics.HasErrors())
	require.Len(t, result.Diagnostics.Warnings, 1)

	w := result.Diagnostics.Warnings[0]
	assert.Equal(t, CodeMissingImplementation, w.Code)
	assert.Equal(t, "rowconv/catalog.Supplier", w.Entity)
}

func TestScanner_UnknownPattern(t *testing.T) {
	_, err := NewScanner("").Scan("rowconv/nonexistent")
	require.Error(t, err)
}
