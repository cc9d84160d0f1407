// Command api is the Arenascope proxy server.
//
// Usage:
//
//	arenascope-api
//	API_PORT=8080 arenascope-api

// @title Arenascope API
// @version 1.0.0
// @description Proxy API serving League of Legends Arena match data, static reference lookups, and win/placement predictions.
// @host localhost:3001
// @BasePath /
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/arenascope/arenascope/internal/api"
	"github.com/arenascope/arenascope/internal/api/handler"
	"github.com/arenascope/arenascope/internal/arena"
	"github.com/arenascope/arenascope/internal/config"
	"github.com/arenascope/arenascope/internal/ddragon"
	"github.com/arenascope/arenascope/internal/predictor"
	"github.com/arenascope/arenascope/internal/riot"

	_ "github.com/arenascope/arenascope/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration — exits immediately on a missing or malformed key
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Outbound clients
	riotClient := riot.NewClient(cfg.RiotRegion, cfg.RiotAPIKey, cfg.RiotRequestsPer2M, logger)
	staticClient := ddragon.NewClient()

	// Reference cache: cold load now, eager table refresh in the background
	refs := ddragon.NewReferenceCache(staticClient, cfg.FallbackVersion, logger,
		ddragon.WithTTLs(cfg.VersionTTL, cfg.ReferenceTTL))
	refs.Load(ctx)
	go refs.StartRefresher(ctx)
	logger.Info("Reference cache initialized", "stats", refs.Stats())

	// Services
	fetcher := arena.NewService(riotClient, refs, logger)
	bridge := predictor.NewBridge(cfg.PredictorPython, cfg.PredictorScript, cfg.PredictorTimeout, logger)

	// Create router
	h := handler.New(riotClient, fetcher, refs, bridge, cfg)
	router := api.NewRouter(h, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Arenascope API",
			"addr", addr,
			"environment", cfg.Environment,
			"region", cfg.RiotRegion,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
