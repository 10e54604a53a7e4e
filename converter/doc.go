// Package converter materializes entity instances from result-set rows.
//
// Basic is the default row converter. Resolving decorates any Converter so
// that interface-declared entities are materialized as their registered
// Immutable* implementation instead, substituting the implementation's
// descriptor before delegating; when no implementation is registered the
// original descriptor is used unchanged and the delegate decides the outcome.
package converter
