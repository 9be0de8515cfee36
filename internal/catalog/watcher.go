// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is the quiet period after the last file event before a
// change is reported. Editors and copy tools emit bursts of events.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reports changes to a single catalog file.
//
// The parent directory is watched rather than the file itself so that
// atomic replace-by-rename (the usual way to publish a new catalog) is seen.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   zerolog.Logger
}

// NewWatcher creates a Watcher for path. A non-positive debounce uses
// DefaultDebounce.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewWatcher(path string, debounce time.Duration, logger zerolog.Logger) (*Watcher, error) {
	if path == "" {
		return nil, errors.New("watch path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{path: abs, debounce: debounce, logger: logger}, nil
}

// Path returns the absolute watched path.
func (w *Watcher) Path() string {
	return w.path
}

// Run watches until ctx is canceled, calling onChange once per debounced
// burst of write, create or rename events on the file. It returns
// ctx.Err() on cancellation or an error if the watch cannot be set up.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.logger.Info().Str("path", w.path).Dur("debounce", w.debounce).Msg("Watching catalog file")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fw.Events:
			if !ok {
				return errors.New("fsnotify event channel closed")
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug().Str("op", ev.Op.String()).Str("name", ev.Name).Msg("Catalog file event")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return errors.New("fsnotify error channel closed")
			}
			w.logger.Warn().Err(err).Str("path", w.path).Msg("Catalog watcher error")

		case <-fire:
			fire = nil
			onChange()
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
