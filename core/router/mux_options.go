package router

import (
	"log/slog"

	"github.com/dmitrymomot/spellbook/core/handler"
)

// Option configures a Router during creation.
type Option[S any] func(*Router[S])

// WithLogger sets a logger for registration events.
func WithLogger[S any](logger *slog.Logger) Option[S] {
	return func(r *Router[S]) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithNotFound sets the handler used when no route matches.
// It runs without the tween chain.
func WithNotFound[S any](h handler.Handler[S]) Option[S] {
	return func(r *Router[S]) {
		if h != nil {
			r.notFound = h
		}
	}
}

// WithTweens registers tweens as if Use was called for each, in order.
func WithTweens[S any](tweens ...handler.Tween[S]) Option[S] {
	return func(r *Router[S]) {
		for _, tw := range tweens {
			r.Use(tw)
		}
	}
}
