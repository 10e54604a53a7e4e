// Package match provides identifier normalization and similarity scoring.
//
// It backs two concerns of the converter:
//   - deriving snake_case column names from Go identifiers
//   - suggesting near-miss column names in mapping errors
package match
