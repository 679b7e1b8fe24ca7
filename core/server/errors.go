package server

import "errors"

var (
	// Configuration errors
	ErrMissingAddress = errors.New("server address is required")
	ErrFailedLoadCert = errors.New("failed to load certificate")

	// Server lifecycle errors
	ErrServerAlreadyRunning = errors.New("server is already running")

	// Request errors
	ErrBodyTooLarge = errors.New("request body too large")
	ErrReadBody     = errors.New("failed to read request body")
)
