package converter

import (
	"database/sql"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	uuidType     = reflect.TypeOf(uuid.UUID{})
	bytesType    = reflect.TypeOf([]byte(nil))
	scannerType  = reflect.TypeOf((*sql.Scanner)(nil)).Elem()
)

// coerce converts a raw driver value into a value of the target type.
// nil raw values yield the zero value.
func coerce(raw any, target reflect.Type) (reflect.Value, error) {
	if raw == nil {
		return reflect.Zero(target), nil
	}

	rv := reflect.ValueOf(raw)
	if rv.Type() == target {
		return rv, nil
	}

	if target.Kind() == reflect.Pointer {
		elem, err := coerce(raw, target.Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		out := reflect.New(target.Elem())
		out.Elem().Set(elem)

		return out, nil
	}

	switch target {
	case timeType:
		return coerceTime(raw)
	case durationType:
		return coerceDuration(raw)
	case uuidType:
		return coerceUUID(raw)
	case bytesType:
		return coerceBytes(raw)
	}

	// Scanner targets decide for themselves what they accept.
	if reflect.PointerTo(target).Implements(scannerType) {
		out := reflect.New(target)

		err := out.Interface().(sql.Scanner).Scan(raw)
		if err != nil {
			return reflect.Value{}, err
		}

		return out.Elem(), nil
	}

	switch target.Kind() {
	case reflect.Bool:
		return coerceBool(raw)

	case reflect.String:
		switch v := raw.(type) {
		case string:
			return reflect.ValueOf(v).Convert(target), nil
		case []byte:
			return reflect.ValueOf(string(v)).Convert(target), nil
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return coerceNumber(raw, target)
	}

	if rv.Type().ConvertibleTo(target) && rv.Kind() == target.Kind() {
		return rv.Convert(target), nil
	}

	return reflect.Value{}, fmt.Errorf("cannot convert %T to %s", raw, target)
}

func coerceBool(raw any) (reflect.Value, error) {
	switch v := raw.(type) {
	case bool:
		return reflect.ValueOf(v), nil
	case int64:
		return reflect.ValueOf(v != 0), nil
	}

	return reflect.Value{}, fmt.Errorf("cannot convert %T to bool", raw)
}

func coerceBytes(raw any) (reflect.Value, error) {
	switch v := raw.(type) {
	case []byte:
		return reflect.ValueOf(v), nil
	case string:
		return reflect.ValueOf([]byte(v)), nil
	}

	return reflect.Value{}, fmt.Errorf("cannot convert %T to []byte", raw)
}

func coerceTime(raw any) (reflect.Value, error) {
	switch v := raw.(type) {
	case time.Time:
		return reflect.ValueOf(v), nil
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid timestamp %q: %w", v, err)
		}

		return reflect.ValueOf(t), nil
	case []byte:
		return coerceTime(string(v))
	}

	return reflect.Value{}, fmt.Errorf("cannot convert %T to time.Time", raw)
}

func coerceDuration(raw any) (reflect.Value, error) {
	switch v := raw.(type) {
	case time.Duration:
		return reflect.ValueOf(v), nil
	case int64:
		return reflect.ValueOf(time.Duration(v)), nil
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid duration %q: %w", v, err)
		}

		return reflect.ValueOf(d), nil
	}

	return reflect.Value{}, fmt.Errorf("cannot convert %T to time.Duration", raw)
}

func coerceUUID(raw any) (reflect.Value, error) {
	switch v := raw.(type) {
	case uuid.UUID:
		return reflect.ValueOf(v), nil
	case [16]byte:
		return reflect.ValueOf(uuid.UUID(v)), nil
	case string:
		u, err := uuid.Parse(v)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid uuid %q: %w", v, err)
		}

		return reflect.ValueOf(u), nil
	case []byte:
		if len(v) == 16 {
			u, err := uuid.FromBytes(v)
			if err != nil {
				return reflect.Value{}, err
			}

			return reflect.ValueOf(u), nil
		}

		return coerceUUID(string(v))
	}

	return reflect.Value{}, fmt.Errorf("cannot convert %T to uuid.UUID", raw)
}

// coerceNumber converts between numeric representations with range checks,
// so a narrowing assignment fails loudly instead of wrapping around.
func coerceNumber(raw any, target reflect.Type) (reflect.Value, error) {
	out := reflect.New(target).Elem()

	switch v := raw.(type) {
	case int64:
		switch target.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if out.OverflowInt(v) {
				return reflect.Value{}, fmt.Errorf("value %d overflows %s", v, target)
			}

			out.SetInt(v)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if v < 0 || out.OverflowUint(uint64(v)) {
				return reflect.Value{}, fmt.Errorf("value %d overflows %s", v, target)
			}

			out.SetUint(uint64(v))
		case reflect.Float32, reflect.Float64:
			out.SetFloat(float64(v))
		}

		return out, nil

	case float64:
		switch target.Kind() {
		case reflect.Float32, reflect.Float64:
			if out.OverflowFloat(v) {
				return reflect.Value{}, fmt.Errorf("value %v overflows %s", v, target)
			}

			out.SetFloat(v)

			return out, nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			// math.MaxInt64 rounds up to 2^63 as a float64, so the upper
			// bound is exclusive.
			if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
				return reflect.Value{}, fmt.Errorf("value %v is not an integral %s", v, target)
			}

			return coerceNumber(int64(v), target)
		}

	case int:
		return coerceNumber(int64(v), target)
	case int32:
		return coerceNumber(int64(v), target)
	case uint64:
		if v > math.MaxInt64 {
			return reflect.Value{}, fmt.Errorf("value %d overflows int64", v)
		}

		return coerceNumber(int64(v), target)
	case float32:
		return coerceNumber(float64(v), target)
	}

	return reflect.Value{}, fmt.Errorf("cannot convert %T to %s", raw, target)
}
