// Package logger builds slog loggers and provides attribute helpers for the
// events the router, its tweens and hosts emit.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/spellbook/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(logger.WithProduction("myapp"))
//
//	// From environment (LOG_LEVEL, LOG_FORMAT)
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log := logger.New(logger.WithConfig(cfg))
//
// # Attribute Helpers
//
//	log.Info("request completed",
//		logger.Method(req.Method),
//		logger.Path(req.Path),
//		logger.Pattern(route.Pattern()),
//		logger.StatusCode(resp.Status),
//		logger.Latency(time.Since(start)),
//	)
//
// Helpers return the empty slog.Attr for nil errors and empty strings, which
// slog omits, so they can be passed without checks:
//
//	log.Error("dispatch failed", logger.Error(err), logger.RequestID(id))
package logger
