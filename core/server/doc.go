// Package server hosts a router over net/http and runs the HTTP listener
// with graceful shutdown.
//
// # Adapter
//
// NewHandler turns a router into an http.Handler. Each request is copied
// into a router request (body read up to a limit), dispatched with a copy
// of the state value and the result written back as status, headers and body:
//
//	r := router.New[AppState]()
//	r.Handle("/", func(ctx handler.Context[AppState]) (handler.Response, error) {
//		return handler.Text(http.StatusOK, "Hello "+ctx.State.Name+"!"), nil
//	})
//
//	h := server.NewHandler(r, AppState{Name: "World"},
//		server.WithMaxBodyBytes[AppState](1<<20),
//		server.WithHandlerLogger[AppState](log),
//	)
//
// Dispatch errors become 500 responses carrying the error message unless
// the error has a StatusCode() int method, or a custom handler is set with
// WithErrorHandler. MaskedErrorHandler hides 5xx messages. Unmatched paths
// produce 404 with body "404".
//
// The same settings can come from Config, which also drives the listener:
//
//	h := server.NewHandler(r, state, server.HandlerOptions[AppState](cfg.Server)...)
//
// # Lifecycle
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(srv.Run(ctx, h))
//	return eg.Wait()
//
// Start blocks until the context is canceled; Stop shuts down with the
// configured timeout. Run wraps both for errgroup.
//
// # TLS
//
// Setting SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE serves HTTPS using
// DefaultTLSConfig with the loaded key pair. WithTLS accepts any *tls.Config.
package server
