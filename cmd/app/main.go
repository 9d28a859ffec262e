package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/Farmstead_Go/internal/bootstrap"
	"github.com/osse101/Farmstead_Go/internal/config"
	"github.com/osse101/Farmstead_Go/internal/event"
	"github.com/osse101/Farmstead_Go/internal/profile"
	"github.com/osse101/Farmstead_Go/internal/server"
	"github.com/osse101/Farmstead_Go/internal/sse"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)

	slog.Info("Starting Farmstead",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"port", cfg.Port,
		"profile_store", cfg.ProfileStore)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Farmstead exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		return err
	}

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		if repos.Pool != nil {
			repos.Pool.Close()
		}
		return err
	}

	bus := event.NewMemoryBus()
	hub := sse.NewHub()
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{EventBus: bus, SSEHub: hub}); err != nil {
		bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{SSEHub: hub, DBPool: repos.Pool})
		return err
	}

	ctrl, err := bootstrap.InitializeSimulation(cfg, cat, bus)
	if err != nil {
		bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{SSEHub: hub, DBPool: repos.Pool})
		return err
	}

	clock := bootstrap.InitializeTurnClock(cfg, ctrl)
	profiles := profile.NewService(repos.Profile, cfg.ProfileCacheSize, cfg.ProfileCacheTTL)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
		ProfileID:      cfg.ProfileID,
	}, repos.ReadinessPool(), ctrl, profiles, hub)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		TurnClock: clock,
		Server:    srv,
		SSEHub:    hub,
		DBPool:    repos.Pool,
	})
	return runErr
}
