package middleware

import "github.com/dmitrymomot/spellbook/core/handler"

// InjectState replaces the state seen by the rest of the chain with the
// value fn derives from the current context.
//
//	r.Use(middleware.InjectState(func(ctx handler.Context[AppState]) AppState {
//		ctx.State.Name = "Walt Longmire"
//		return ctx.State
//	}))
//
// Panics if fn is nil.
func InjectState[S any](fn func(ctx handler.Context[S]) S) handler.Tween[S] {
	if fn == nil {
		panic("inject state tween: nil state func")
	}

	return func(ctx handler.Context[S], next handler.Next[S]) (handler.Response, error) {
		return next(ctx.With(fn(ctx)))
	}
}
