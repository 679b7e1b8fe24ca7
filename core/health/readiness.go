package health

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/spellbook/core/handler"
	"github.com/dmitrymomot/spellbook/core/logger"
)

// Readiness runs every check concurrently with the request's context.
// Returns "READY" if all pass, otherwise 503 "NOT READY" after logging the
// first failure.
func Readiness[S any](log *slog.Logger, checks ...func(context.Context) error) handler.Handler[S] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx handler.Context[S]) (handler.Response, error) {
		reqCtx := context.Background()
		if req := ctx.Request(); req != nil {
			reqCtx = req.Context()
		}

		eg, egCtx := errgroup.WithContext(reqCtx)
		for _, check := range checks {
			eg.Go(func() error {
				return check(egCtx)
			})
		}

		if err := eg.Wait(); err != nil {
			log.ErrorContext(reqCtx, "readiness check failed", logger.Component("health"), logger.Error(err))
			return handler.Text(http.StatusServiceUnavailable, "NOT READY"), nil
		}

		return handler.Text(http.StatusOK, "READY"), nil
	}
}
