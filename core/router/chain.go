package router

import "github.com/dmitrymomot/spellbook/core/handler"

// chain builds a single callable from the registered tweens and the endpoint.
//
// Tweens are given in registration order. Each one wraps everything
// registered before it, so the last registered tween is the outermost layer
// and runs first: registering M1, M2, M3 executes M3, M2, M1, endpoint.
//
// The chain is built iteratively and is meant for a single dispatch: every
// continuation handed to a tween refuses to run a second time.
func chain[S any](tweens []handler.Tween[S], endpoint handler.Handler[S]) handler.Next[S] {
	next := handler.Next[S](endpoint)

	for _, tw := range tweens {
		next = wrap(tw, once(next))
	}

	return next
}

func wrap[S any](tw handler.Tween[S], inner handler.Next[S]) handler.Next[S] {
	return func(ctx handler.Context[S]) (handler.Response, error) {
		return tw(ctx, inner)
	}
}

// once guards a continuation against being called more than once.
func once[S any](next handler.Next[S]) handler.Next[S] {
	called := false
	return func(ctx handler.Context[S]) (handler.Response, error) {
		if called {
			return handler.Response{}, ErrNextCalledTwice
		}
		called = true
		return next(ctx)
	}
}
