package scan

import (
	"rowconv/internal/diagnostic"
)

// TypeID identifies a named type by package import path and simple name.
type TypeID struct {
	PkgPath string
	Name    string
}

// String returns the qualified name, "pkgpath.Name".
func (id TypeID) String() string {
	return id.PkgPath + "." + id.Name
}

// Pair is an entity interface matched with its implementation struct.
type Pair struct {
	Interface      TypeID
	Implementation TypeID
}

// Package describes a scanned package that produced at least one pair.
type Package struct {
	Path string
	Name string
	Dir  string
}

// Result is the outcome of scanning a set of packages.
type Result struct {
	// Pairs are the matched interface/implementation pairs, ordered by
	// package path and interface name.
	Pairs []Pair
	// Packages indexes pair-producing packages by import path.
	Packages map[string]Package
	// Diagnostics collects everything worth reporting about unmatched or
	// ill-shaped candidates.
	Diagnostics diagnostic.Diagnostics
}

// PairsIn returns the pairs whose interface lives in the given package.
func (r *Result) PairsIn(pkgPath string) []Pair {
	var pairs []Pair

	for _, p := range r.Pairs {
		if p.Interface.PkgPath == pkgPath {
			pairs = append(pairs, p)
		}
	}

	return pairs
}
