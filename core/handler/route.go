package handler

import (
	"encoding"
	"fmt"
	"maps"
	"strconv"
	"time"
)

var emptyRoute = &Route{}

// Route holds the path params bound by a successful match.
// It is immutable once constructed.
type Route struct {
	pattern string
	params  map[string]string
}

// NewRoute creates a Route from a params map. The map is copied.
func NewRoute(params map[string]string) *Route {
	return NewRouteWithPattern("", params)
}

// NewRouteWithPattern creates a Route that also records the pattern it was
// matched against. The map is copied.
func NewRouteWithPattern(pattern string, params map[string]string) *Route {
	return &Route{pattern: pattern, params: maps.Clone(params)}
}

// Pattern returns the registered pattern that produced this route, if known.
func (r *Route) Pattern() string {
	return r.pattern
}

// Param returns the raw value of a path param.
func (r *Route) Param(key string) (string, bool) {
	v, ok := r.params[key]
	return v, ok
}

// Params returns a copy of all path params.
func (r *Route) Params() map[string]string {
	out := make(map[string]string, len(r.params))
	maps.Copy(out, r.params)
	return out
}

// Len returns the number of bound params.
func (r *Route) Len() int {
	return len(r.params)
}

// Get parses the param key into T.
//
// Supported types are string, bool, all sized and unsized integers, float32,
// float64, time.Duration and any type whose pointer implements
// encoding.TextUnmarshaler. A missing key yields ErrParamMissing, a value
// that cannot be parsed into T yields ErrParamTypeMismatch; both are
// wrapped in a *ParamError.
func Get[T any](r *Route, key string) (T, error) {
	var out T

	raw, ok := r.Param(key)
	if !ok {
		return out, &ParamError{Key: key, Err: ErrParamMissing}
	}

	if err := parseParam(&out, raw); err != nil {
		return out, &ParamError{Key: key, Value: raw, Err: err}
	}
	return out, nil
}

// MustGet is like Get but panics on error.
func MustGet[T any](r *Route, key string) T {
	v, err := Get[T](r, key)
	if err != nil {
		panic(err)
	}
	return v
}

func parseParam(dst any, raw string) error {
	// TextUnmarshaler first so named types over builtins can customize parsing.
	if u, ok := dst.(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText([]byte(raw))
	}

	switch p := dst.(type) {
	case *string:
		*p = raw
	case *bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		*p = v
	case *int:
		v, err := strconv.ParseInt(raw, 10, strconv.IntSize)
		if err != nil {
			return err
		}
		*p = int(v)
	case *int8:
		v, err := strconv.ParseInt(raw, 10, 8)
		if err != nil {
			return err
		}
		*p = int8(v)
	case *int16:
		v, err := strconv.ParseInt(raw, 10, 16)
		if err != nil {
			return err
		}
		*p = int16(v)
	case *int32:
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return err
		}
		*p = int32(v)
	case *time.Duration:
		v, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		*p = v
	case *int64:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		*p = v
	case *uint:
		v, err := strconv.ParseUint(raw, 10, strconv.IntSize)
		if err != nil {
			return err
		}
		*p = uint(v)
	case *uint8:
		v, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			return err
		}
		*p = uint8(v)
	case *uint16:
		v, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return err
		}
		*p = uint16(v)
	case *uint32:
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return err
		}
		*p = uint32(v)
	case *uint64:
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return err
		}
		*p = v
	case *float32:
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return err
		}
		*p = float32(v)
	case *float64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		*p = v
	default:
		return fmt.Errorf("unsupported type %T", dst)
	}
	return nil
}
