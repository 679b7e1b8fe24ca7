package router

import (
	"errors"
	"fmt"
)

var (
	// Dispatch errors
	ErrRouteMismatch   = errors.New("route not found")
	ErrNextCalledTwice = errors.New("continuation called more than once")
	ErrNilRequest      = errors.New("nil request")

	// Registration errors
	ErrNilHandler       = errors.New("nil handler")
	ErrNilTween         = errors.New("nil tween")
	ErrInvalidPattern   = errors.New("invalid route path pattern")
	ErrWildcardPosition = errors.New("catch-all wildcard must be the last segment")
	ErrWildcardConflict = errors.New("conflicting wildcard at the same path position")
	ErrDuplicateParam   = errors.New("duplicate parameter name")
)

// ConfigError is returned when a route or tween cannot be registered.
// It is raised before serving begins and is never produced per request.
type ConfigError struct {
	Pattern string
	Segment string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Segment != "" {
		return fmt.Sprintf("router: %s: %q in pattern %q", e.Err, e.Segment, e.Pattern)
	}
	if e.Pattern != "" {
		return fmt.Sprintf("router: %s: pattern %q", e.Err, e.Pattern)
	}
	return "router: " + e.Err.Error()
}

// Unwrap allows errors.Is to match the underlying sentinel.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
