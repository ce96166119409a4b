package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/harborfleet/event-gateway/internal/config"
	"github.com/harborfleet/event-gateway/internal/game"
	"github.com/harborfleet/event-gateway/internal/server"
	"github.com/harborfleet/event-gateway/internal/synthetic"
	"github.com/harborfleet/event-gateway/internal/trigger"
)

func main() {
	configPath := flag.String("config", "gateway.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config", "config", cfg)

	// 2. Initialize the engine client (domain processing + sends)
	engineClient, err := game.NewClient(cfg.Engine.URL, cfg.Engine.Source)
	if err != nil {
		slog.Error("Failed to initialize engine client", "error", err)
		os.Exit(1)
	}

	// 3. Initialize the trigger pipeline
	triggerSvc := trigger.NewService(trigger.CloudEventParser{}, engineClient, cfg.Server.MaxBodySizeMB)

	// 4. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), cfg.Server.Mode)
	triggerSvc.RegisterRoutes(srv.Engine)

	// The synthetic facility is constructed only outside production; when
	// disabled its route does not exist at all.
	if cfg.Synthetic.Enabled {
		syntheticSvc := synthetic.NewService(synthetic.NewValidator(), synthetic.NewEmitter(engineClient))
		syntheticSvc.RegisterRoutes(srv.Engine)
		slog.Info("Synthetic event endpoint enabled")
	}

	// 5. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler → triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
