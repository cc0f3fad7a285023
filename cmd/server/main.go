// Animal API - Random Animal Images and GIFs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animalapi

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/animalapi/docs" // Import generated swagger docs
	"github.com/tomtom215/animalapi/internal/api"
	"github.com/tomtom215/animalapi/internal/config"
	"github.com/tomtom215/animalapi/internal/dataset"
	"github.com/tomtom215/animalapi/internal/logging"
	"github.com/tomtom215/animalapi/internal/metrics"
	"github.com/tomtom215/animalapi/internal/supervisor"
	"github.com/tomtom215/animalapi/internal/supervisor/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = api.DefaultVersion

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Animal API with supervisor tree")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS to restrict it")
	}

	ds, source, err := dataset.LoadFrom(cfg.Dataset.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("source", source).Msg("Failed to load animal dataset")
	}
	images, gifs := ds.MediaCounts()
	logging.Info().
		Str("source", source).
		Int("animals", ds.Len()).
		Int("images", images).
		Int("gifs", gifs).
		Msg("Dataset loaded")
	if ds.Len() == 0 {
		logging.Warn().Str("source", source).Msg("Dataset defines no animals; readiness will report not_ready")
	}

	metrics.SetDatasetStats(ds.Len(), images, gifs)
	metrics.SetAppInfo(version)

	handler := api.NewHandler(ds, dataset.DefaultPicker, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security), api.RouterOptions{
		MetricsEnabled: cfg.Observability.MetricsEnabled,
		SwaggerEnabled: cfg.Observability.SwaggerEnabled,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		treeErr = <-errCh
	case treeErr = <-errCh:
	}

	exitCode := 0
	// Any error while ctx is still live means the tree stopped on its own.
	if treeErr != nil && ctx.Err() == nil && !errors.Is(treeErr, context.Canceled) {
		logging.Error().Err(treeErr).Msg("Supervisor tree error")
		exitCode = 1
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	if exitCode != 0 {
		cancel()
		os.Exit(exitCode)
	}
	logging.Info().Msg("Application stopped gracefully")
}
