// Package scan discovers entity interfaces and their conventionally named
// implementations in loaded Go packages.
//
// It uses golang.org/x/tools/go/packages with go/types to find exported
// interfaces whose methods are all getter-shaped (Get prefix, no parameters,
// one result) and pairs each with an Immutable<Name> struct from the same
// package. The pairs feed the registration file generator.
package scan
