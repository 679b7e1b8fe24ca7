// Package handler defines the per-request data model shared by the router,
// tweens and hosts: the Context threaded through a dispatch chain, the Route
// holding bound path params, and the transport-free Request and Response
// descriptors.
//
// # Core Types
//
//	// Terminal handler, never receives a continuation
//	type Handler[S any] func(ctx Context[S]) (Response, error)
//
//	// Rest of the chain as seen by a tween
//	type Next[S any] func(ctx Context[S]) (Response, error)
//
//	// Middleware wrapping the rest of the chain
//	type Tween[S any] func(ctx Context[S], next Next[S]) (Response, error)
//
// S is the application state. It is copied into every Context, so it should
// be cheap to copy: a small struct, or a pointer to shared services.
//
// # Context
//
// A Context is immutable. A tween that wants to change state derives a new
// context and hands it to the continuation; route and request stay shared:
//
//	func withUser(ctx handler.Context[State], next handler.Next[State]) (handler.Response, error) {
//		st := ctx.State
//		st.User = ctx.Request().Header.Get("X-User")
//		return next(ctx.With(st))
//	}
//
// # Path Params
//
// Params are read raw with Route.Param or parsed with the generic Get:
//
//	id, err := handler.Get[int64](ctx.Route(), "id")
//	if errors.Is(err, handler.ErrParamTypeMismatch) {
//		return handler.Text(http.StatusBadRequest, "id must be a number"), nil
//	}
//
// Routes can be built standalone for tests:
//
//	route := handler.NewRoute(map[string]string{"name": "Walt", "age": "42"})
//	age, _ := handler.Get[uint32](route, "age") // 42
//
// # Responses
//
// Handlers return a Response descriptor; serialising it is the host's job:
//
//	return handler.Text(http.StatusOK, "Hello World!"), nil
//
// Any returned error travels unchanged up the chain. Hosts turn it into a
// response, honouring an optional StatusCode() int method on the error.
package handler
