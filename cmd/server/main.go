package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/parascope/parascope/internal/api"
	"github.com/parascope/parascope/internal/config"
	"github.com/parascope/parascope/internal/profile"
	"github.com/parascope/parascope/internal/runstore"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	profiles, err := profile.LoadDir(cfg.ProfileDir)
	if err != nil {
		log.Error("failed to load profiles", "dir", cfg.ProfileDir, "error", err)
		os.Exit(1)
	}
	log.Info("profiles loaded", "count", len(profiles), "names", profile.Names(profiles))

	runs := runstore.New(cfg.RunTTL)
	runs.StartCleanup(ctx, cfg.CleanupInterval)

	srv := api.NewServer(runs, profiles, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting parascope", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
