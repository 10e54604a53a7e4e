package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowconv/internal/scan"
)

func fakeResult(dir string) *scan.Result {
	return &scan.Result{
		Pairs: []scan.Pair{
			{
				Interface:      scan.TypeID{PkgPath: "example.com/crm", Name: "Account"},
				Implementation: scan.TypeID{PkgPath: "example.com/crm", Name: "ImmutableAccount"},
			},
			{
				Interface:      scan.TypeID{PkgPath: "example.com/crm", Name: "Contact"},
				Implementation: scan.TypeID{PkgPath: "example.com/crm", Name: "ImmutableContact"},
			},
		},
		Packages: map[string]scan.Package{
			"example.com/crm": {Path: "example.com/crm", Name: "crm", Dir: dir},
		},
	}
}

func TestGenerate(t *testing.T) {
	files, err := Generate(fakeResult("/tmp/crm"), DefaultConfig())
	require.NoError(t, err)
	require.Len(t, files, 1)

	f := files[0]
	assert.Equal(t, "/tmp/crm", f.Dir)
	assert.Equal(t, "immutables.gen.go", f.Filename)

	src := string(f.Content)
	assert.Contains(t, src, "// Code generated by rowconv-gen. DO NOT EDIT.")
	assert.Contains(t, src, "package crm")
	assert.Contains(t, src, `import "rowconv/registry"`)
	assert.Contains(t, src, "must(registry.Default().Register((*Account)(nil), ImmutableAccount{}))")
	assert.Contains(t, src, "must(registry.Default().Register((*Contact)(nil), ImmutableContact{}))")
	assert.Contains(t, src, "func must(err error)")
}

func TestGenerateEmptyResult(t *testing.T) {
	files, err := Generate(&scan.Result{}, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestGenerateDeterministicOrder(t *testing.T) {
	result := &scan.Result{
		Pairs: []scan.Pair{
			{
				Interface:      scan.TypeID{PkgPath: "example.com/b", Name: "B"},
				Implementation: scan.TypeID{PkgPath: "example.com/b", Name: "ImmutableB"},
			},
			{
				Interface:      scan.TypeID{PkgPath: "example.com/a", Name: "A"},
				Implementation: scan.TypeID{PkgPath: "example.com/a", Name: "ImmutableA"},
			},
		},
		Packages: map[string]scan.Package{
			"example.com/b": {Path: "example.com/b", Name: "b", Dir: "/tmp/b"},
			"example.com/a": {Path: "example.com/a", Name: "a", Dir: "/tmp/a"},
		},
	}

	files, err := Generate(result, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "/tmp/a", files[0].Dir)
	assert.Equal(t, "/tmp/b", files[1].Dir)
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	files, err := Generate(fakeResult(filepath.Join(dir, "crm")), DefaultConfig())
	require.NoError(t, err)

	require.NoError(t, WriteFiles(files))

	written, err := os.ReadFile(filepath.Join(dir, "crm", "immutables.gen.go"))
	require.NoError(t, err)
	assert.Equal(t, files[0].Content, written)
}
