package entity

import (
	"database/sql"
	"reflect"
	"time"

	"github.com/gertd/go-pluralize"
	"github.com/google/uuid"

	"rowconv/internal/match"
)

var plural = pluralize.NewClient()

// ColumnName derives the default column name for a property name.
func ColumnName(property string) string {
	return match.SnakeCase(property)
}

// TableName derives the default table name for an entity name.
// Example: "OrderItem" -> "order_items".
func TableName(entityName string) string {
	return plural.Plural(match.SnakeCase(entityName))
}

var (
	timeType    = reflect.TypeOf(time.Time{})
	uuidType    = reflect.TypeOf(uuid.UUID{})
	bytesType   = reflect.TypeOf([]byte(nil))
	scannerType = reflect.TypeOf((*sql.Scanner)(nil)).Elem()
)

// isScalarType reports whether a type is read directly from a single column.
func isScalarType(t reflect.Type) bool {
	if t == timeType || t == uuidType || t == bytesType {
		return true
	}

	if t.Implements(scannerType) || reflect.PointerTo(t).Implements(scannerType) {
		return true
	}

	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	case reflect.Pointer:
		return isScalarType(t.Elem())
	default:
		return false
	}
}
