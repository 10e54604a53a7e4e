// Package gen renders registration files from scan results.
//
// For every package that declares matched interface/implementation pairs it
// produces one immutables.gen.go with an init function that registers the
// pairs in the process-wide registry.
package gen
