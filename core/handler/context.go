package handler

import "net/http"

// Context is the per-request value threaded through a dispatch chain.
//
// It is an immutable value: State is replaced by deriving a new Context
// with With, while the matched Route and the Request are shared by pointer
// between every layer of the chain and must not be mutated.
type Context[S any] struct {
	State S

	route *Route
	req   *Request
}

// NewContext creates a Context from its parts.
// Nil route or request are replaced with empty values.
func NewContext[S any](state S, route *Route, req *Request) Context[S] {
	if route == nil {
		route = emptyRoute
	}
	if req == nil {
		req = NewRequest(http.MethodGet, "/")
	}
	return Context[S]{State: state, route: route, req: req}
}

// EmptyContext creates a Context with the given state, a route without
// params and a GET request for "/". Useful for testing tweens and handlers.
func EmptyContext[S any](state S) Context[S] {
	return NewContext(state, nil, nil)
}

// With returns a copy of the context carrying state. Route and request are
// shared with the receiver.
func (c Context[S]) With(state S) Context[S] {
	return Context[S]{State: state, route: c.route, req: c.req}
}

// Route returns the matched route.
func (c Context[S]) Route() *Route {
	if c.route == nil {
		return emptyRoute
	}
	return c.route
}

// Request returns the incoming request.
func (c Context[S]) Request() *Request {
	return c.req
}

// Param is shorthand for c.Route().Param(key) without the presence flag.
func (c Context[S]) Param(key string) string {
	v, _ := c.Route().Param(key)
	return v
}
