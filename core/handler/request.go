package handler

import (
	"context"
	"net/http"
)

// Request is an already parsed incoming request. The router only looks at
// Path; the rest is carried for handlers and tweens.
type Request struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte

	// RemoteAddr is the network address of the client, as reported by the host.
	RemoteAddr string

	ctx context.Context
}

// NewRequest creates a request with empty headers and body.
func NewRequest(method, path string) *Request {
	return &Request{
		Method: method,
		Path:   path,
		Header: make(http.Header),
	}
}

// Context returns the request's context. It is never nil.
// Cancellation is owned by the host; the router never blocks on it.
func (r *Request) Context() context.Context {
	if r.ctx != nil {
		return r.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of r with its context changed to ctx.
func (r *Request) WithContext(ctx context.Context) *Request {
	if ctx == nil {
		panic("handler: nil context")
	}
	r2 := *r
	r2.ctx = ctx
	return &r2
}
