// Package middleware provides tweens for common cross-cutting concerns:
// request IDs, dispatch logging, panic recovery, rate limiting and state
// injection.
//
// Every constructor is generic over the router's state type and returns a
// handler.Tween, so it is registered with Router.Use. The most recently
// registered tween runs first, so register the outermost concern last:
//
//	r := router.New[AppState]()
//	r.Use(middleware.Logging[AppState]())  // runs third, sees the request ID
//	r.Use(middleware.RequestID[AppState]()) // runs second
//	r.Use(middleware.Recover[AppState]())   // runs first, wraps everything
//
// # Conventions
//
// Configurable tweens follow the same shape:
//   - a Config struct with an optional Skip func
//   - X() with defaults and XWithConfig(cfg) for the rest
//   - Get* helpers for values stored in the request context
//
// # Request ID
//
//	r.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig[AppState]{
//		UseExisting: true, // trust X-Request-ID from the proxy
//	}))
//
//	func show(ctx handler.Context[AppState]) (handler.Response, error) {
//		id, _ := middleware.GetRequestID(ctx)
//		...
//	}
//
// # Recover
//
// A panic below Recover is returned as *PanicError, which the host renders
// as 500. The stack is attached unless DisableStack is set.
//
// # Rate limiting
//
// RateLimit keeps one golang.org/x/time/rate limiter per key (client IP by
// default) and answers 429 with Retry-After when the bucket is empty:
//
//	r.Use(middleware.RateLimit(middleware.RateLimitConfig[AppState]{
//		Rate:  rate.Every(100 * time.Millisecond),
//		Burst: 20,
//	}))
//
// Forwarded headers only count when they hold a valid IP; anything else
// falls back to the connection address. Keys idle for IdleTTL are dropped
// and at most MaxKeys limiters are kept.
//
// # State injection
//
// InjectState derives the state passed to the rest of the chain:
//
//	r.Use(middleware.InjectState(func(ctx handler.Context[AppState]) AppState {
//		ctx.State.Name = "Walt Longmire"
//		return ctx.State
//	}))
package middleware
