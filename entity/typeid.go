package entity

import "reflect"

// TypeID uniquely identifies a mapped type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "rowconv/catalog"
	Name    string // e.g., "Order"
}

// TypeIDOf returns the TypeID for a reflect.Type.
func TypeIDOf(t reflect.Type) TypeID {
	return TypeID{PkgPath: t.PkgPath(), Name: t.Name()}
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}
