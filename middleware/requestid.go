package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrymomot/spellbook/core/handler"
)

// requestIDContextKey is used as a key for storing request ID in request context.
type requestIDContextKey struct{}

// RequestIDConfig configures the request ID tween.
type RequestIDConfig[S any] struct {
	// Skip defines a function to skip tween execution for specific requests
	Skip func(ctx handler.Context[S]) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting determines whether to use an existing request ID from the incoming request
	UseExisting bool
}

// RequestID creates a request ID tween with default configuration.
// It generates a new UUID for each request and includes it in both the request
// context and the response headers.
func RequestID[S any]() handler.Tween[S] {
	return RequestIDWithConfig(RequestIDConfig[S]{})
}

// RequestIDWithConfig creates a request ID tween with custom configuration.
// Tweens registered before it (so running after it) can read the ID with GetRequestID.
func RequestIDWithConfig[S any](cfg RequestIDConfig[S]) handler.Tween[S] {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}

	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(ctx handler.Context[S], next handler.Next[S]) (handler.Response, error) {
		req := ctx.Request()
		if req == nil || (cfg.Skip != nil && cfg.Skip(ctx)) {
			return next(ctx)
		}

		var requestID string
		if cfg.UseExisting {
			requestID = req.Header.Get(cfg.HeaderName)
		}
		if requestID == "" {
			requestID = cfg.Generator()
		}

		req = req.WithContext(context.WithValue(req.Context(), requestIDContextKey{}, requestID))

		resp, err := next(handler.NewContext(ctx.State, ctx.Route(), req))
		if err != nil {
			return resp, err
		}

		return resp.WithHeader(cfg.HeaderName, requestID), nil
	}
}

// GetRequestID retrieves the request ID stored by the RequestID tween.
// Returns the request ID and a boolean indicating whether it was found.
func GetRequestID[S any](ctx handler.Context[S]) (string, bool) {
	if ctx.Request() == nil {
		return "", false
	}
	return RequestIDFromContext(ctx.Request().Context())
}

// RequestIDFromContext is GetRequestID for code that only holds a context.Context.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}
