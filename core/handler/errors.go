package handler

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrParamMissing      = errors.New("param does not exist")
	ErrParamTypeMismatch = errors.New("param has wrong type")
)

// ParamError is returned by Get when a path param is absent or cannot be
// parsed into the requested type.
type ParamError struct {
	Key   string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *ParamError) Error() string {
	if errors.Is(e.Err, ErrParamMissing) {
		return fmt.Sprintf("param %q: %s", e.Key, ErrParamMissing)
	}
	return fmt.Sprintf("param %q: %s: %v", e.Key, ErrParamTypeMismatch, e.Err)
}

// Unwrap exposes the kind sentinel and, for parse failures, the cause.
func (e *ParamError) Unwrap() []error {
	if errors.Is(e.Err, ErrParamMissing) {
		return []error{e.Err}
	}
	return []error{ErrParamTypeMismatch, e.Err}
}

// StatusCode lets hosts render param failures as 400 Bad Request.
func (e *ParamError) StatusCode() int {
	return http.StatusBadRequest
}
