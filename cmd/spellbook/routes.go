package main

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/dmitrymomot/spellbook/core/handler"
	"github.com/dmitrymomot/spellbook/core/health"
	"github.com/dmitrymomot/spellbook/core/router"
	"github.com/dmitrymomot/spellbook/middleware"
)

// State is the per-request value every handler receives.
type State struct {
	Name string
}

func newRouter(cfg Config, log *slog.Logger) *router.Router[State] {
	r := router.New(router.WithLogger[State](log))

	r.Handle("/", greet).
		Handle("/hello/:name", greetParam).
		Handle("/users/:id", showUser).
		Handle("/static/*path", showStatic).
		Handle("/health/live", health.Liveness[State]).
		Handle("/health/ready", health.Readiness[State](log)).
		Handle("/ping", health.NoContent[State])

	// Registered first, so runs innermost.
	if cfg.InjectName != "" {
		r.Use(middleware.InjectState(func(ctx handler.Context[State]) State {
			ctx.State.Name = cfg.InjectName
			return ctx.State
		}))
	}
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(middleware.RateLimitConfig[State]{
			Rate:  rate.Limit(cfg.RateLimitRPS),
			Burst: cfg.RateLimitBurst,
		}))
	}
	r.Use(middleware.LoggingWithLogger[State](log))
	r.Use(middleware.RequestID[State]())
	r.Use(middleware.RecoverWithConfig(middleware.RecoverConfig[State]{Logger: log}))

	return r
}

func greet(ctx handler.Context[State]) (handler.Response, error) {
	return handler.Text(http.StatusOK, "Hello "+ctx.State.Name+"!"), nil
}

func greetParam(ctx handler.Context[State]) (handler.Response, error) {
	return handler.Text(http.StatusOK, "Hello "+ctx.Param("name")+"!"), nil
}

func showUser(ctx handler.Context[State]) (handler.Response, error) {
	id, err := handler.Get[uint64](ctx.Route(), "id")
	if err != nil {
		return handler.Response{}, err
	}

	return handler.JSON(http.StatusOK, map[string]any{
		"id":      id,
		"pattern": ctx.Route().Pattern(),
	})
}

func showStatic(ctx handler.Context[State]) (handler.Response, error) {
	return handler.Text(http.StatusOK, "static file: "+ctx.Param("path")), nil
}
