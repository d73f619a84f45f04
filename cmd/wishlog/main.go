package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wishlog/internal/backend"
	"wishlog/internal/cli"
	apphttp "wishlog/internal/http"
	"wishlog/internal/metadata"
	"wishlog/internal/store"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	storage, cleanup, err := backend.Open(cfg, logger.Logger)
	if err != nil {
		logger.Error("Failed to initialize storage backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Error("Storage cleanup failed", "error", err)
		}
	}()

	st := store.New(storage, nil, cfg.ExportCooldown)
	if err := st.Load(context.Background()); err != nil {
		if errors.Is(err, store.ErrCorruptData) {
			// keep serving with an empty collection rather than refuse to start
			logger.Warn("Stored collection is corrupt, starting empty", "error", err)
		} else {
			logger.Error("Failed to load stored collection", "error", err)
			os.Exit(1)
		}
	}

	fetcher := metadata.NewFetcher(cfg.MetadataTimeout, cfg.MetadataCacheMax, cfg.MetadataCacheTTL)

	srv := apphttp.NewServer(":"+cfg.Port, st, storage, fetcher, apphttp.Options{
		RequestsPerMinute: cfg.RequestsPerMinute,
	})

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting wishlog server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
