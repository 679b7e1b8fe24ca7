package handler

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
)

// Response describes the result of a dispatch. Writing it to the wire is the
// host's job.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Text creates a text/plain response.
func Text(status int, body string) Response {
	return Response{
		Status: status,
		Header: http.Header{"Content-Type": {"text/plain; charset=utf-8"}},
		Body:   []byte(body),
	}
}

// JSON creates an application/json response by encoding v.
func JSON(status int, v any) (Response, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Response{}, fmt.Errorf("failed to encode json response: %w", err)
	}
	return Response{
		Status: status,
		Header: http.Header{"Content-Type": {"application/json; charset=utf-8"}},
		Body:   b,
	}, nil
}

// NoContent creates an empty 204 response.
func NoContent() Response {
	return Response{Status: http.StatusNoContent}
}

// NotFound is the response returned when no route matches.
func NotFound() Response {
	return Text(http.StatusNotFound, "404")
}

// WithHeader returns a copy of the response with key set to value.
// The receiver's header map is not modified.
func (r Response) WithHeader(key, value string) Response {
	h := make(http.Header, len(r.Header)+1)
	maps.Copy(h, r.Header)
	h.Set(key, value)
	r.Header = h
	return r
}

// StatusCode returns Status, or 200 when it is unset.
func (r Response) StatusCode() int {
	if r.Status == 0 {
		return http.StatusOK
	}
	return r.Status
}
