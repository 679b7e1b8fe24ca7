package server

import (
	"fmt"
	"time"
)

// Config is the environment-driven setup for a service: the listener built
// by NewFromConfig and the request adapter configured via HandlerOptions.
// It is meant to be embedded in an application config and loaded with
// config.Load; zero values fall back to the Default* constants.
type Config struct {
	Addr string `env:"SERVER_ADDR" envDefault:":8080"`

	Timeouts Timeouts
	Limits   Limits
	TLS      TLSFiles

	// ErrorDetails exposes dispatch error messages in 5xx bodies. Disable
	// in production to answer with the bare status text instead.
	ErrorDetails bool `env:"SERVER_ERROR_DETAILS" envDefault:"true"`
}

// Timeouts bound the phases of a connection and of graceful shutdown.
type Timeouts struct {
	Read     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	Write    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	Idle     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	Shutdown time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Limits caps request sizes. MaxHeaderBytes is enforced by net/http,
// MaxBodyBytes by the adapter.
type Limits struct {
	MaxHeaderBytes int   `env:"SERVER_MAX_HEADER_BYTES" envDefault:"1048576"`
	MaxBodyBytes   int64 `env:"SERVER_MAX_BODY_BYTES" envDefault:"10485760"`
}

// TLSFiles points at a PEM key pair. HTTPS is served only when both are set.
type TLSFiles struct {
	CertFile string `env:"SERVER_TLS_CERT_FILE"`
	KeyFile  string `env:"SERVER_TLS_KEY_FILE"`
}

func (f TLSFiles) enabled() bool {
	return f.CertFile != "" && f.KeyFile != ""
}

// DefaultConfig mirrors the envDefault tags, for use without config.Load.
func DefaultConfig() Config {
	return Config{
		Addr: DefaultAddr,
		Timeouts: Timeouts{
			Read:     DefaultReadTimeout,
			Write:    DefaultWriteTimeout,
			Idle:     DefaultIdleTimeout,
			Shutdown: DefaultShutdownTimeout,
		},
		Limits: Limits{
			MaxHeaderBytes: DefaultMaxHeaderBytes,
			MaxBodyBytes:   DefaultMaxBodyBytes,
		},
		ErrorDetails: true,
	}
}

// Validate reports settings that cannot produce a working server.
func (c Config) Validate() error {
	if c.Addr == "" {
		return ErrMissingAddress
	}
	if (c.TLS.CertFile == "") != (c.TLS.KeyFile == "") {
		return fmt.Errorf("%w: both SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE must be set", ErrFailedLoadCert)
	}
	return nil
}

// NewFromConfig validates cfg and builds a Server from it. opts are applied
// after the config-derived options, so they take precedence.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	serverOpts, err := cfg.serverOptions()
	if err != nil {
		return nil, err
	}

	return New(cfg.Addr, append(serverOpts, opts...)...), nil
}

func (c Config) serverOptions() ([]Option, error) {
	// the With* options ignore non-positive values, so zero fields keep New's defaults
	opts := []Option{
		WithReadTimeout(c.Timeouts.Read),
		WithWriteTimeout(c.Timeouts.Write),
		WithIdleTimeout(c.Timeouts.Idle),
		WithShutdownTimeout(c.Timeouts.Shutdown),
		WithMaxHeaderBytes(c.Limits.MaxHeaderBytes),
	}

	if c.TLS.enabled() {
		tlsConfig, err := loadTLSFromFiles(c.TLS.CertFile, c.TLS.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("server: tls key pair %s, %s: %w", c.TLS.CertFile, c.TLS.KeyFile, err)
		}
		opts = append(opts, WithTLS(tlsConfig))
	}

	return opts, nil
}

// HandlerOptions translates the adapter part of cfg into NewHandler options:
//
//	h := server.NewHandler(r, state, server.HandlerOptions[AppState](cfg.Server)...)
//
// Options passed after these override them.
func HandlerOptions[S any](cfg Config) []HandlerOption[S] {
	opts := []HandlerOption[S]{
		WithMaxBodyBytes[S](cfg.Limits.MaxBodyBytes),
	}
	if !cfg.ErrorDetails {
		opts = append(opts, WithErrorHandler[S](MaskedErrorHandler))
	}
	return opts
}
