// Package entity derives and caches relational metadata for mapped Go types.
//
// A Descriptor describes one mapped type: its identity, table, and structural
// properties. Struct types contribute properties through exported fields;
// interface types contribute properties through protobuf-style Get* accessor
// methods, which lets an entity be declared as an interface and materialized
// as a generated implementation struct.
//
// The Context is the mapping context: a read-mostly, lazily populated cache
// of descriptors safe for concurrent use.
package entity
