// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// CatalogReloader rebuilds the served catalog. Satisfied by *recommend.Live.
type CatalogReloader interface {
	Reload(ctx context.Context) (*recommend.Engine, error)
}

// CatalogServiceConfig holds configuration for the catalog service.
type CatalogServiceConfig struct {
	// WatchPath is the catalog file to watch. Empty disables watching.
	WatchPath string

	// Debounce is the quiet period before a file change triggers a reload.
	Debounce time.Duration

	// RefreshInterval reloads on a timer. Zero disables periodic refresh.
	RefreshInterval time.Duration

	// ReloadTimeout bounds a single reload.
	// Default: 1m
	ReloadTimeout time.Duration
}

// CatalogService keeps the served catalog current. It reloads when the
// catalog file changes, on every RefreshInterval tick, and on Trigger.
// A failed reload is logged and the previous catalog keeps serving.
type CatalogService struct {
	reloader CatalogReloader
	config   CatalogServiceConfig
	logger   zerolog.Logger
	trigger  chan struct{}
	name     string
}

// NewCatalogService creates a new catalog service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogService(reloader CatalogReloader, cfg CatalogServiceConfig, logger zerolog.Logger) *CatalogService {
	if cfg.ReloadTimeout <= 0 {
		cfg.ReloadTimeout = time.Minute
	}
	return &CatalogService{
		reloader: reloader,
		config:   cfg,
		logger:   logger.With().Str("service", "catalog").Logger(),
		trigger:  make(chan struct{}, 1),
		name:     "catalog-service",
	}
}

// Trigger requests a reload. It never blocks; requests made while one is
// already pending are merged.
func (s *CatalogService) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Serve implements the suture.Service interface.
func (s *CatalogService) Serve(ctx context.Context) error {
	s.logger.Info().
		Str("watch_path", s.config.WatchPath).
		Dur("refresh_interval", s.config.RefreshInterval).
		Msg("catalog service starting")

	watchErr := make(chan error, 1)
	if s.config.WatchPath != "" {
		watcher, err := catalog.NewWatcher(s.config.WatchPath, s.config.Debounce, s.logger)
		if err != nil {
			return fmt.Errorf("catalog watcher: %w", err)
		}
		go func() {
			watchErr <- watcher.Run(ctx, s.Trigger)
		}()
	}

	var tick <-chan time.Time
	if s.config.RefreshInterval > 0 {
		ticker := time.NewTicker(s.config.RefreshInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog service shutting down")
			return ctx.Err()

		case err := <-watchErr:
			if errors.Is(err, context.Canceled) {
				return ctx.Err()
			}
			// Returning lets the supervisor restart the watch with backoff.
			return fmt.Errorf("catalog watcher: %w", err)

		case <-tick:
			s.reload(ctx, "refresh")

		case <-s.trigger:
			s.reload(ctx, "trigger")
		}
	}
}

// reload runs one rebuild under its own correlation ID.
func (s *CatalogService) reload(ctx context.Context, reason string) {
	ctx = logging.ContextWithNewCorrelationID(ctx)
	reloadCtx, cancel := context.WithTimeout(ctx, s.config.ReloadTimeout)
	defer cancel()

	log := s.logger.With().
		Str("correlation_id", logging.CorrelationIDFromContext(ctx)).
		Str("reason", reason).
		Logger()

	start := time.Now()
	engine, err := s.reloader.Reload(reloadCtx)
	if err != nil {
		log.Warn().Err(err).Msg("catalog reload failed, keeping previous catalog")
		return
	}

	items := 0
	if engine != nil {
		items = engine.Len()
	}
	log.Debug().
		Int("items", items).
		Dur("duration", time.Since(start)).
		Msg("catalog reloaded")
}

// String returns the service name for logging.
func (s *CatalogService) String() string {
	return s.name
}
