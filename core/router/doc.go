// Package router provides a segment-tree HTTP router with composable tween
// middleware. It resolves a request path to a registered handler, binds path
// params on the way, and runs the handler inside the registered tweens.
//
// The router never touches the network: it consumes an already parsed
// handler.Request and returns a handler.Response descriptor. Hosts such as
// core/server convert to and from the wire.
//
// # Features
//
//   - Flat, index-addressed routing tree
//   - Literal, named-param (":id") and catch-all ("*path") segments
//   - Literal segments always win over wildcards at the same position
//   - Type-safe application state threaded through every layer
//   - Tweens that can replace state, short-circuit, or post-process
//   - Registration errors surface before serving starts
//
// # Basic Usage
//
//	import (
//		"github.com/dmitrymomot/spellbook/core/handler"
//		"github.com/dmitrymomot/spellbook/core/router"
//	)
//
//	type State struct {
//		Name string
//	}
//
//	r := router.New[State]().
//		Handle("/", func(ctx handler.Context[State]) (handler.Response, error) {
//			return handler.Text(http.StatusOK, "Hello World!"), nil
//		}).
//		Handle("/users/:id", getUser).
//		Handle("/static/*file", serveStatic)
//
//	resp, err := r.Dispatch(State{}, handler.NewRequest(http.MethodGet, "/users/42"))
//
// Routes are method agnostic: the request method is carried to handlers but
// never used for matching.
//
// # Path Params
//
//	func getUser(ctx handler.Context[State]) (handler.Response, error) {
//		id, err := handler.Get[int64](ctx.Route(), "id")
//		if err != nil {
//			return handler.Response{}, err
//		}
//		...
//	}
//
// A catch-all binds the rest of the path: "/static/css/site.css" against
// "/static/*file" binds file to "css/site.css".
//
// # Tweens
//
// A tween receives the context and the rest of the chain. The tween
// registered last runs first:
//
//	r.Use(m1) // runs third
//	r.Use(m2) // runs second
//	r.Use(m3) // runs first
//
// Each continuation may be called at most once per request; a second call
// returns ErrNextCalledTwice.
//
//	func greet(ctx handler.Context[State], next handler.Next[State]) (handler.Response, error) {
//		return next(ctx.With(State{Name: "Walt Longmire"}))
//	}
//
// # Registration Errors
//
// Register returns a *ConfigError for invalid patterns; Handle and Use panic
// with it. A node holds at most one wildcard, so "/users/:id" followed by
// "/users/:name" is rejected with ErrWildcardConflict rather than silently
// replacing the first route.
//
// # Concurrency
//
// Build the router at startup, then only dispatch. Dispatch never mutates
// the router, so concurrent dispatches are safe. Clone gives an independent
// snapshot when registration has to continue elsewhere.
package router
