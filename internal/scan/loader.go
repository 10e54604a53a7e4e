package scan

import (
	"fmt"
	"go/types"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// getterPrefix is the accessor convention entity interfaces follow.
const getterPrefix = "Get"

// implementationPrefix is the name scheme implementations follow: an
// interface Foo is implemented by ImmutableFoo in the same package.
const implementationPrefix = "Immutable"

// Diagnostic codes reported by the scanner.
const (
	CodeMissingImplementation = "missing-implementation"
	CodeNotAStruct            = "not-a-struct"
	CodeNotImplementing       = "not-implementing"
)

// Scanner loads Go packages and pairs entity interfaces with their
// implementation structs.
type Scanner struct {
	dir string
}

// NewScanner creates a Scanner. dir is the working directory for package
// loading; empty means the current directory.
func NewScanner(dir string) *Scanner {
	return &Scanner{dir: dir}
}

// Scan loads the given package patterns and returns the matched pairs.
// Patterns are standard Go package patterns (e.g. "./catalog", "rowconv/...").
func (s *Scanner) Scan(patterns ...string) (*Result, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  s.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	result := &Result{Packages: make(map[string]Package)}
	for _, pkg := range pkgs {
		s.scanPackage(pkg, result)
	}

	sort.Slice(result.Pairs, func(i, j int) bool {
		a, b := result.Pairs[i].Interface, result.Pairs[j].Interface
		if a.PkgPath != b.PkgPath {
			return a.PkgPath < b.PkgPath
		}

		return a.Name < b.Name
	})

	return result, nil
}

// scanPackage finds entity interfaces in one package and matches each with
// its implementation struct.
func (s *Scanner) scanPackage(pkg *packages.Package, result *Result) {
	scope := pkg.Types.Scope()

	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !obj.Exported() {
			continue
		}

		iface, ok := obj.Type().Underlying().(*types.Interface)
		if !ok || !isEntityInterface(iface) {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}

		implObj, ok := scope.Lookup(implementationPrefix + name).(*types.TypeName)
		if !ok {
			// Absence is legal: unresolved interfaces fall back to the
			// interface descriptor at mapping time.
			result.Diagnostics.AddWarning(CodeMissingImplementation,
				fmt.Sprintf("no %s%s found", implementationPrefix, name), id.String())

			continue
		}

		if _, ok := implObj.Type().Underlying().(*types.Struct); !ok {
			result.Diagnostics.AddError(CodeNotAStruct,
				fmt.Sprintf("%s is not a struct", implObj.Name()), id.String())

			continue
		}

		if !implements(implObj.Type(), iface) {
			result.Diagnostics.AddError(CodeNotImplementing,
				fmt.Sprintf("%s does not implement %s", implObj.Name(), name), id.String())

			continue
		}

		result.Pairs = append(result.Pairs, Pair{
			Interface:      id,
			Implementation: TypeID{PkgPath: pkg.PkgPath, Name: implObj.Name()},
		})

		if _, ok := result.Packages[pkg.PkgPath]; !ok {
			result.Packages[pkg.PkgPath] = Package{
				Path: pkg.PkgPath,
				Name: pkg.Name,
				Dir:  packageDir(pkg),
			}
		}
	}
}

// packageDir derives the package's directory from its source files.
func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) > 0 {
		return filepath.Dir(pkg.GoFiles[0])
	}

	return ""
}

// isEntityInterface reports whether every method of the interface is
// getter-shaped and there is at least one.
func isEntityInterface(iface *types.Interface) bool {
	if iface.NumMethods() == 0 {
		return false
	}

	for i := 0; i < iface.NumMethods(); i++ {
		if !isGetter(iface.Method(i)) {
			return false
		}
	}

	return true
}

// isGetter reports whether a method follows the accessor convention:
// Get prefix with a non-empty remainder, no parameters, one result.
func isGetter(m *types.Func) bool {
	name := m.Name()
	if !strings.HasPrefix(name, getterPrefix) || len(name) == len(getterPrefix) {
		return false
	}

	sig, ok := m.Type().(*types.Signature)
	if !ok {
		return false
	}

	return sig.Params().Len() == 0 && sig.Results().Len() == 1
}

// implements reports whether the type or its pointer satisfies the interface.
func implements(t types.Type, iface *types.Interface) bool {
	return types.Implements(t, iface) || types.Implements(types.NewPointer(t), iface)
}
