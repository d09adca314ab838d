package props

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

// The conversions below accept any value a Record may hold for a field of
// the target kind: the normalized values Encode produces (string, int64,
// float64, bool, time.Time, and uint64 above math.MaxInt64) as well as
// values put in by hand.
// Generated PropsDecode methods use them.

// Uint returns u as the value a Record holds for it: an int64 when it fits,
// a uint64 otherwise.
func Uint(u uint64) any {
	if u <= math.MaxInt64 {
		return int64(u)
	}
	return u
}

// normalize maps the integers msgpack decodes as uint64 onto int64, so a
// field holds the same type whatever its magnitude. Nested maps and slices
// are normalized in place.
func normalize(v any) any {
	switch x := v.(type) {
	case uint64:
		return Uint(x)
	case map[string]any:
		for k, e := range x {
			x[k] = normalize(e)
		}
	case []any:
		for i, e := range x {
			x[i] = normalize(e)
		}
	}
	return v
}

// String converts v to a string. Named string types are accepted.
func String(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	return "", fmt.Errorf("%w: %T is not a string", ErrDecode, v)
}

// Int64 converts v to an int64. Unsigned values that do not fit and floats
// with a fractional part are rejected.
func Int64(v any) (int64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d overflows int64", ErrDecode, u)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrDecode, f)
		}
		return int64(f), nil
	}
	return 0, fmt.Errorf("%w: %T is not an integer", ErrDecode, v)
}

// Uint64 converts v to a uint64. Negative values are rejected.
func Uint64(v any) (uint64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < 0 {
			return 0, fmt.Errorf("%w: %d is negative", ErrDecode, n)
		}
		return uint64(n), nil
	}
	return 0, fmt.Errorf("%w: %T is not an unsigned integer", ErrDecode, v)
}

// Float64 converts v to a float64.
func Float64(v any) (float64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	}
	return 0, fmt.Errorf("%w: %T is not a number", ErrDecode, v)
}

// Bool converts v to a bool.
func Bool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %T is not a bool", ErrDecode, v)
	}
	return b, nil
}

// Time converts v to a time.Time. RFC 3339 strings are accepted.
func Time(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return parsed, nil
	}
	return time.Time{}, fmt.Errorf("%w: %T is not a time", ErrDecode, v)
}
