// Package diagnostic collects scan findings with severity, code, and the
// entity they relate to, so the generator can report all problems at once
// instead of stopping at the first.
package diagnostic
