package handler

// Handler is the terminal step of a dispatch chain. It never receives a
// continuation.
type Handler[S any] func(ctx Context[S]) (Response, error)

// Next is the rest of the chain as seen by a tween.
type Next[S any] func(ctx Context[S]) (Response, error)

// Tween wraps the rest of the chain. It may derive a new Context with
// ctx.With, call next at most once, or return without calling next at all.
type Tween[S any] func(ctx Context[S], next Next[S]) (Response, error)

// ErrorHandler renders a failure returned from a dispatch chain.
// It is used by hosts, the core never calls it.
type ErrorHandler func(req *Request, err error) Response
