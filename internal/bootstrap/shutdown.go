package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/OMD2Planner_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Stores *Stores
}

// GracefulShutdown stops the HTTP server first so no request is left holding
// a store connection, then closes the stores.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Stores != nil {
		components.Stores.Close()
	}

	slog.Info(LogMsgServerStopped)
}
