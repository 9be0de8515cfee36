// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package main is the Reelmatch HTTP server.
//
// Startup order:
//
//  1. Configuration: defaults, config file, environment (koanf v2)
//  2. Logging: zerolog with the configured level and format
//  3. Catalog: the initial load must succeed or the server exits
//  4. Supervisor tree: catalog service and HTTP server
//
// # Signals
//
//   - SIGINT, SIGTERM: graceful shutdown bounded by HTTP_SHUTDOWN_TIMEOUT
//   - SIGHUP: reload the catalog now
//
// # Example Usage
//
//	export CATALOG_PATH=data/movies.csv
//	export HTTP_PORT=8080
//	./reelmatch-server
//
// Remote catalog refreshed hourly:
//
//	export CATALOG_URL=https://example.com/movies.json
//	export CATALOG_REFRESH_INTERVAL=1h
//	./reelmatch-server
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/reelmatch/internal/api"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

// initialLoadTimeout bounds the startup catalog load.
const initialLoadTimeout = 2 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		App:       "reelmatch",
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("catalog", cfg.Catalog.Location()).
		Bool("remote", cfg.Catalog.IsRemote()).
		Str("similarity", cfg.Recommend.Similarity).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Reelmatch")

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*)")
	}

	logger := logging.Logger()

	source, err := newSource(&cfg.Catalog, logging.WithComponent("catalog"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid catalog source")
	}

	live, err := recommend.NewLive(source, engineConfig(&cfg.Recommend),
		catalog.BuildOptions{RejectDuplicates: cfg.Catalog.RejectDuplicates},
		logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	loadCtx, cancelLoad := context.WithTimeout(
		logging.ContextWithNewCorrelationID(context.Background()), initialLoadTimeout)
	_, err = live.Reload(loadCtx)
	cancelLoad()
	if err != nil {
		logging.Fatal().Err(err).Str("catalog", cfg.Catalog.Location()).Msg("Failed to load catalog")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logger), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// === CATALOG LAYER ===

	catalogCfg := services.CatalogServiceConfig{
		RefreshInterval: cfg.Catalog.RefreshInterval,
	}
	if cfg.Catalog.Watch && !cfg.Catalog.IsRemote() {
		catalogCfg.WatchPath = cfg.Catalog.Path
	}
	catalogSvc := services.NewCatalogService(live, catalogCfg, logging.WithComponent("catalog"))
	tree.AddCatalogService(catalogSvc)

	// === API LAYER ===

	handler := api.NewHandler(live, engineConfig(&cfg.Recommend))
	mw := api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		CORSAllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		CORSAllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.Security.RateLimitRequests,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	})
	router := api.NewRouter(handler, mw, cfg.Server.Timeout)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))

	// === SIGNALS ===

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		for sig := range sigCh {
			if sig == syscall.SIGHUP {
				logging.Info().Msg("Received SIGHUP, reloading catalog")
				catalogSvc.Trigger()
				continue
			}
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
			return
		}
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Reelmatch stopped")
}
