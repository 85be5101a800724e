package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/OMD2Planner_Go/internal/bootstrap"
	"github.com/osse101/OMD2Planner_Go/internal/config"
	"github.com/osse101/OMD2Planner_Go/internal/server"
	"github.com/osse101/OMD2Planner_Go/internal/session"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration failed: %v\n", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger setup failed: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err := run(cfg); err != nil {
		slog.Error("Planner failed", "error", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := bootstrap.LoadEngine(ctx, cfg)
	if err != nil {
		return err
	}

	stores, err := bootstrap.InitializeStores(ctx, cfg)
	if err != nil {
		return err
	}

	svc := session.NewService(engine, stores.Session, cfg.PublicURL)
	srv := server.NewServer(server.Options{
		Port:             cfg.Port,
		ServiceName:      cfg.ServiceName,
		TrustedProxies:   cfg.TrustedProxies,
		RequestSizeLimit: cfg.RequestSizeLimit,
		RateLimit:        cfg.RateLimit,
		RateWindow:       server.DefaultRateWindow,
	}, svc, stores.Session.Name())

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		stores.Close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, Stores: stores})
	return nil
}
