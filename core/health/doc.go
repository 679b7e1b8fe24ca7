// Package health provides route handlers for service health probes.
//
// Handlers:
//   - Liveness: process is running (no dependency checks)
//   - Readiness: every dependency check passes
//   - NoContent: 204 for minimal overhead
//
// Usage:
//
//	r.Handle("/health/live", health.Liveness[AppState])
//	r.Handle("/health/ready", health.Readiness[AppState](log, db.Ping, cache.Ping))
//	r.Handle("/ping", health.NoContent[AppState])
//
// Checks follow the func(context.Context) error signature and receive the
// request's context.
package health
