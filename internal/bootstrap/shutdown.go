package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Farmstead_Go/internal/server"
	"github.com/osse101/Farmstead_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	TurnClock *TurnClock
	Server    *server.Server
	SSEHub    *sse.Hub
	DBPool    *pgxpool.Pool
}

// GracefulShutdown stops components in order:
// 1. Turn clock (no more background turns)
// 2. SSE hub (ends open event streams so the server can drain)
// 3. HTTP server (stop accepting new requests, finish in-flight ones)
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.TurnClock != nil {
		slog.Info(LogMsgStoppingClock)
		components.TurnClock.Stop()
	}

	if components.SSEHub != nil {
		slog.Info(LogMsgShuttingDownSSE)
		components.SSEHub.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
