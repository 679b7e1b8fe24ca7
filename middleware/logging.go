package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/spellbook/core/handler"
	"github.com/dmitrymomot/spellbook/core/logger"
)

// LoggingConfig configures the dispatch logging tween.
type LoggingConfig[S any] struct {
	// Skip defines a function to skip tween execution for specific requests
	Skip func(ctx handler.Context[S]) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for successful requests (default: slog.LevelInfo)
	LogLevel slog.Level

	// LogParams adds the bound path params to every record
	LogParams bool

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "http")
	Component string
}

// Logging creates a logging tween with default configuration.
func Logging[S any]() handler.Tween[S] {
	return LoggingWithConfig(LoggingConfig[S]{})
}

// LoggingWithLogger creates a logging tween with a custom logger.
func LoggingWithLogger[S any](log *slog.Logger) handler.Tween[S] {
	return LoggingWithConfig(LoggingConfig[S]{Logger: log})
}

// LoggingWithConfig creates a tween that logs one record per dispatch after
// the rest of the chain returns. Errors are logged at error level, 4xx and
// slow requests at warn, everything else at cfg.LogLevel.
func LoggingWithConfig[S any](cfg LoggingConfig[S]) handler.Tween[S] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}

	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}

	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(ctx handler.Context[S], next handler.Next[S]) (handler.Response, error) {
		req := ctx.Request()
		if req == nil || (cfg.Skip != nil && cfg.Skip(ctx)) {
			return next(ctx)
		}

		start := time.Now()
		resp, err := next(ctx)
		duration := time.Since(start)

		requestID, _ := GetRequestID(ctx)

		attrs := []slog.Attr{
			logger.Component(cfg.Component),
			logger.Event("dispatch"),
			logger.Method(req.Method),
			logger.Path(req.Path),
			logger.Pattern(ctx.Route().Pattern()),
			logger.RequestID(requestID),
			logger.ClientIP(clientIP(req)),
			logger.Latency(duration),
		}
		if cfg.LogParams {
			attrs = append(attrs, logger.Params(ctx.Route().Params()))
		}

		level := cfg.LogLevel
		switch status := resp.StatusCode(); {
		case err != nil:
			level = slog.LevelError
			attrs = append(attrs, logger.Error(err))
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
			attrs = append(attrs, logger.StatusCode(status), logger.BytesOut(len(resp.Body)))
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
			attrs = append(attrs, logger.StatusCode(status), logger.BytesOut(len(resp.Body)))
		default:
			if duration > cfg.SlowRequestThreshold {
				level = slog.LevelWarn
				attrs = append(attrs, slog.Bool("slow_request", true))
			}
			attrs = append(attrs, logger.StatusCode(status), logger.BytesOut(len(resp.Body)))
		}

		cfg.Logger.LogAttrs(req.Context(), level, "request completed", attrs...)

		return resp, err
	}
}
