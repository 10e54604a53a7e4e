// Package registry maps interface-declared entity types to their concrete
// implementation types.
//
// Go has no class loader to probe by formatted name, so resolvability is an
// explicit registration: generated code (see cmd/rowconv-gen) or application
// startup registers each implementation under its qualified type name, and
// the converter probes the registry with the fixed naming convention
// "<pkg-path>.Immutable<Name>". Explicit YAML bindings can override the
// convention for non-conforming names.
package registry
