package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"

	"github.com/dmitrymomot/spellbook/core/handler"
	"github.com/dmitrymomot/spellbook/core/logger"
	"github.com/dmitrymomot/spellbook/core/router"
)

// HandlerOption configures the adapter built by NewHandler.
type HandlerOption[S any] func(*adapter[S])

// WithErrorHandler replaces the renderer for errors returned by dispatch.
func WithErrorHandler[S any](fn handler.ErrorHandler) HandlerOption[S] {
	return func(a *adapter[S]) {
		if fn != nil {
			a.errorHandler = fn
		}
	}
}

// WithHandlerLogger sets the logger used for dispatch failures.
func WithHandlerLogger[S any](l *slog.Logger) HandlerOption[S] {
	return func(a *adapter[S]) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMaxBodyBytes limits how much of the request body is read. Larger
// bodies are answered with 413 without dispatching. Non-positive values
// keep the default.
func WithMaxBodyBytes[S any](n int64) HandlerOption[S] {
	return func(a *adapter[S]) {
		if n > 0 {
			a.maxBodyBytes = n
		}
	}
}

// WithStateFunc derives the state for each request instead of copying the
// value passed to NewHandler.
func WithStateFunc[S any](fn func(r *http.Request) S) HandlerOption[S] {
	return func(a *adapter[S]) {
		a.stateFunc = fn
	}
}

type adapter[S any] struct {
	router       *router.Router[S]
	state        S
	stateFunc    func(r *http.Request) S
	errorHandler handler.ErrorHandler
	logger       *slog.Logger
	maxBodyBytes int64
}

// statusCoder lets errors pick the status they are rendered with.
type statusCoder interface {
	StatusCode() int
}

// NewHandler exposes r as an http.Handler. The router is cloned, so routes
// registered on r afterwards are not served. Every request is dispatched
// with its own copy of state.
//
// Errors returned by dispatch are rendered by the error handler: by default
// the status comes from a StatusCode() method on the error, falling back to
// 500, and the body is the error message.
func NewHandler[S any](r *router.Router[S], state S, opts ...HandlerOption[S]) http.Handler {
	a := &adapter[S]{
		router:       r.Clone(),
		state:        state,
		errorHandler: DefaultErrorHandler,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxBodyBytes: DefaultMaxBodyBytes,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (a *adapter[S]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := a.convert(w, r)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrBodyTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		a.logger.WarnContext(r.Context(), "rejected request",
			logger.Component("server"),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Error(err),
		)
		writeResponse(w, handler.Text(status, err.Error()))
		return
	}

	state := a.state
	if a.stateFunc != nil {
		state = a.stateFunc(r)
	}

	resp, err := a.router.Dispatch(state, req)
	if err != nil {
		resp = a.errorHandler(req, err)
		a.logger.ErrorContext(r.Context(), "dispatch failed",
			logger.Component("server"),
			logger.Method(req.Method),
			logger.Path(req.Path),
			logger.StatusCode(resp.StatusCode()),
			logger.Error(err),
		)
	}

	writeResponse(w, resp)
}

// convert copies r into a router request, reading at most maxBodyBytes of the body.
func (a *adapter[S]) convert(w http.ResponseWriter, r *http.Request) (*handler.Request, error) {
	req := handler.NewRequest(r.Method, r.URL.Path)
	req.Query = r.URL.RawQuery
	req.Header = r.Header.Clone()
	req.RemoteAddr = r.RemoteAddr

	if r.Body != nil && r.Body != http.NoBody {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, a.maxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
			}
			return nil, errors.Join(ErrReadBody, err)
		}
		req.Body = body
	}

	return req.WithContext(r.Context()), nil
}

// DefaultErrorHandler renders err as plain text. The status is taken from a
// StatusCode() method anywhere in the error chain, otherwise 500.
func DefaultErrorHandler(_ *handler.Request, err error) handler.Response {
	status := http.StatusInternalServerError
	var sc statusCoder
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}
	return handler.Text(status, err.Error())
}

// MaskedErrorHandler behaves like DefaultErrorHandler for client errors but
// answers 5xx with the status text only, keeping internal messages out of
// responses. The full error is still logged by the adapter.
func MaskedErrorHandler(req *handler.Request, err error) handler.Response {
	resp := DefaultErrorHandler(req, err)
	if status := resp.StatusCode(); status >= http.StatusInternalServerError {
		return handler.Text(status, http.StatusText(status))
	}
	return resp
}

func writeResponse(w http.ResponseWriter, resp handler.Response) {
	h := w.Header()
	for k, vs := range resp.Header {
		h[k] = slices.Clone(vs)
	}
	w.WriteHeader(resp.StatusCode())
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
}
