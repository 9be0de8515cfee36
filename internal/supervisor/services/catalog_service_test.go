// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// mockReloader counts reloads and signals each one.
type mockReloader struct {
	calls     atomic.Int32
	err       error
	reloaded  chan struct{}
	sawCorrID atomic.Bool
}

func newMockReloader() *mockReloader {
	return &mockReloader{reloaded: make(chan struct{}, 16)}
}

func (m *mockReloader) Reload(ctx context.Context) (*recommend.Engine, error) {
	m.calls.Add(1)
	if logging.CorrelationIDFromContext(ctx) != "" {
		m.sawCorrID.Store(true)
	}
	select {
	case m.reloaded <- struct{}{}:
	default:
	}
	return nil, m.err
}

func waitReload(t *testing.T, m *mockReloader, within time.Duration) {
	t.Helper()
	select {
	case <-m.reloaded:
	case <-time.After(within):
		t.Fatalf("no reload within %v", within)
	}
}

func runService(t *testing.T, svc *CatalogService) (cancel func(), done <-chan error) {
	t.Helper()
	ctx, cancelFn := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	t.Cleanup(cancelFn)
	return cancelFn, errCh
}

func TestCatalogService_Interface(t *testing.T) {
	var _ suture.Service = (*CatalogService)(nil)
	var _ CatalogReloader = (*recommend.Live)(nil)
}

func TestCatalogService_Trigger(t *testing.T) {
	reloader := newMockReloader()
	svc := NewCatalogService(reloader, CatalogServiceConfig{}, zerolog.Nop())

	cancel, done := runService(t, svc)

	svc.Trigger()
	waitReload(t, reloader, time.Second)

	if !reloader.sawCorrID.Load() {
		t.Error("reload context has no correlation ID")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() error = %v, want context.Canceled", err)
	}
}

func TestCatalogService_TriggerNeverBlocks(t *testing.T) {
	svc := NewCatalogService(newMockReloader(), CatalogServiceConfig{}, zerolog.Nop())

	finished := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			svc.Trigger()
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Trigger blocked without a running service")
	}
}

func TestCatalogService_RefreshInterval(t *testing.T) {
	reloader := newMockReloader()
	svc := NewCatalogService(reloader, CatalogServiceConfig{RefreshInterval: 20 * time.Millisecond}, zerolog.Nop())

	runService(t, svc)

	waitReload(t, reloader, time.Second)
	waitReload(t, reloader, time.Second)
}

func TestCatalogService_FailedReloadKeepsRunning(t *testing.T) {
	reloader := newMockReloader()
	reloader.err = errors.New("source unavailable")
	svc := NewCatalogService(reloader, CatalogServiceConfig{}, zerolog.Nop())

	_, done := runService(t, svc)

	svc.Trigger()
	waitReload(t, reloader, time.Second)
	svc.Trigger()
	waitReload(t, reloader, time.Second)

	select {
	case err := <-done:
		t.Fatalf("Serve returned after failed reload: %v", err)
	default:
	}
}

func TestCatalogService_WatchesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movies.csv")
	if err := os.WriteFile(path, []byte("title,genres\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	reloader := newMockReloader()
	svc := NewCatalogService(reloader, CatalogServiceConfig{
		WatchPath: path,
		Debounce:  20 * time.Millisecond,
	}, zerolog.Nop())

	runService(t, svc)

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("title,genres\nHeat (1995),Action\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	waitReload(t, reloader, 2*time.Second)
}

func TestCatalogService_String(t *testing.T) {
	svc := NewCatalogService(newMockReloader(), CatalogServiceConfig{}, zerolog.Nop())
	if svc.String() != "catalog-service" {
		t.Errorf("String() = %q, want catalog-service", svc.String())
	}
	if svc.config.ReloadTimeout != time.Minute {
		t.Errorf("ReloadTimeout = %v, want 1m", svc.config.ReloadTimeout)
	}
}
