// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// Live publishes the current Engine and rebuilds it from a catalog source.
//
// Readers call Engine and never block. Reload builds a complete new index
// and engine before swapping the pointer; a failed reload leaves the
// previous engine in place.
type Live struct {
	source    catalog.Source
	config    Config
	buildOpts catalog.BuildOptions
	logger    zerolog.Logger

	current atomic.Pointer[Engine]
	group   singleflight.Group

	mu     sync.Mutex
	status Status
}

// NewLive creates a Live holder. No catalog is loaded until Reload.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewLive(source catalog.Source, cfg *Config, opts catalog.BuildOptions, logger zerolog.Logger) (*Live, error) {
	if source == nil {
		return nil, errors.New("catalog source is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Live{
		source:    source,
		config:    *cfg,
		buildOpts: opts,
		logger:    logger.With().Str("component", "catalog-loader").Logger(),
		status: Status{
			Source:     source.Name(),
			Similarity: cfg.Similarity,
		},
	}, nil
}

// Engine returns the current engine, or nil before the first successful load.
func (l *Live) Engine() *Engine {
	return l.current.Load()
}

// Ready reports whether a catalog has been loaded.
func (l *Live) Ready() bool {
	return l.current.Load() != nil
}

// Source returns the catalog source.
func (l *Live) Source() catalog.Source {
	return l.source
}

// Status returns a snapshot of the load state.
func (l *Live) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Reload loads the catalog and swaps in a new engine. Concurrent callers
// share a single rebuild. The rebuild is not canceled when ctx is; ctx
// only bounds how long this caller waits.
func (l *Live) Reload(ctx context.Context) (*Engine, error) {
	ch := l.group.DoChan("reload", func() (interface{}, error) {
		return l.rebuild(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Engine), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *Live) rebuild(ctx context.Context) (*Engine, error) {
	start := time.Now()
	log := l.logger
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		log = log.With().Str("correlation_id", id).Logger()
	}

	engine, raw, err := l.build(ctx)
	duration := time.Since(start)
	metrics.RecordCatalogReload(err, engine.Len(), duration)

	l.mu.Lock()
	l.status.LastAttempt = start
	if err != nil {
		l.status.LastError = err.Error()
		l.mu.Unlock()
		log.Error().Err(err).Str("source", l.source.Name()).Dur("duration", duration).Msg("Catalog reload failed")
		return nil, err
	}
	l.current.Store(engine)
	l.status.Version++
	l.status.Items = engine.Len()
	l.status.LoadedAt = time.Now()
	l.status.LastError = ""
	version := l.status.Version
	l.mu.Unlock()

	log.Info().
		Str("source", l.source.Name()).
		Int("rows", raw).
		Int("titles", engine.Len()).
		Uint64("version", version).
		Dur("duration", duration).
		Msg("Catalog loaded")

	return engine, nil
}

// build returns the new engine and the number of rows read from the source.
func (l *Live) build(ctx context.Context) (*Engine, int, error) {
	items, err := l.source.Load(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("load catalog from %s: %w", l.source.Name(), err)
	}

	idx, err := catalog.BuildWithOptions(items, l.buildOpts)
	if err != nil {
		return nil, len(items), fmt.Errorf("build catalog index: %w", err)
	}

	engine, err := NewEngine(idx, &l.config, l.logger)
	if err != nil {
		return nil, len(items), fmt.Errorf("build engine: %w", err)
	}
	return engine, len(items), nil
}
