package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/dmitrymomot/spellbook/core/handler"
	"github.com/dmitrymomot/spellbook/core/logger"
)

// PanicError carries a value recovered from a panicking handler or tween.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic recovered: %v", e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// RecoverConfig configures the recover tween.
type RecoverConfig[S any] struct {
	// Logger receives one error record per recovered panic (default: slog.Default())
	Logger *slog.Logger
	// DisableStack omits the stack trace from the error and the log record
	DisableStack bool
}

// Recover creates a recover tween with default configuration.
func Recover[S any]() handler.Tween[S] {
	return RecoverWithConfig(RecoverConfig[S]{})
}

// RecoverWithConfig turns a panic anywhere below the tween into a *PanicError
// returned through the chain. Register it last so it wraps everything else.
func RecoverWithConfig[S any](cfg RecoverConfig[S]) handler.Tween[S] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(ctx handler.Context[S], next handler.Next[S]) (resp handler.Response, err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}

			perr := &PanicError{Value: v}
			if !cfg.DisableStack {
				perr.Stack = debug.Stack()
			}

			attrs := []slog.Attr{
				logger.Component("recover"),
				logger.Error(perr),
			}
			logCtx := context.Background()
			if req := ctx.Request(); req != nil {
				logCtx = req.Context()
				id, _ := GetRequestID(ctx)
				attrs = append(attrs, logger.Method(req.Method), logger.Path(req.Path), logger.RequestID(id))
			}
			if perr.Stack != nil {
				attrs = append(attrs, slog.String("stack", string(perr.Stack)))
			}
			cfg.Logger.LogAttrs(logCtx, slog.LevelError, "panic recovered", attrs...)

			resp, err = handler.Response{}, perr
		}()

		return next(ctx)
	}
}
