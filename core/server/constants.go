package server

import "time"

// Fallbacks for Config fields and options left at zero. The envDefault tags
// on Config mirror these values.
const (
	DefaultAddr = ":8080"

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = time.Minute
	DefaultShutdownTimeout = 30 * time.Second

	DefaultMaxHeaderBytes       = 1 << 20
	DefaultMaxBodyBytes   int64 = 10 << 20
)
