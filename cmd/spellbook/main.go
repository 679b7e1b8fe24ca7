package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/spellbook/core/config"
	"github.com/dmitrymomot/spellbook/core/logger"
	"github.com/dmitrymomot/spellbook/core/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg) // panic on error

	log := logger.New(
		logger.WithConfig(cfg.Log),
		logger.WithAttr(slog.String("app", cfg.AppName)),
	)

	r := newRouter(cfg, log)
	log.Info("routes registered", logger.Event("startup"), slog.Any("routes", r.Routes()))

	h := server.NewHandler(r, State{Name: cfg.GreetingName},
		append(server.HandlerOptions[State](cfg.Server), server.WithHandlerLogger[State](log))...,
	)

	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.Error("Failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(s.Run(ctx, h))

	if err := eg.Wait(); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}
