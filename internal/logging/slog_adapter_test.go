// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level slog.Level
		want  zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelInfo + 2, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		if got := slogToZerologLevel(tt.level); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.New(nil).Level(zerolog.WarnLevel))
	ctx := context.Background()

	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("Enabled(info) = true for warn logger")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("Enabled(error) = false for warn logger")
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewSlogLogger(zerolog.New(&buf))

	logger.Warn("service restarted",
		"service", "catalog",
		"attempt", 2,
		"backoff", 1500*time.Millisecond,
		"healthy", false,
		"err", errors.New("watcher closed"),
	)

	output := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"message":"service restarted"`,
		`"service":"catalog"`,
		`"attempt":2`,
		`"healthy":false`,
		`"err":"watcher closed"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %s: %s", want, output)
		}
	}
}

func TestSlogHandler_WithAttrsAndGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewSlogLogger(zerolog.New(&buf)).
		With("layer", "api").
		WithGroup("supervisor").
		WithGroup("event")

	logger.Info("tick", "name", "http-server", slog.Group("backoff", "count", 3))

	output := buf.String()
	for _, want := range []string{
		`"layer":"api"`,
		`"supervisor.event.name":"http-server"`,
		`"supervisor.event.backoff.count":3`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %s: %s", want, output)
		}
	}
}

func TestSlogHandler_WithGroupEmpty(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.Nop())
	if got := h.WithGroup(""); got != h {
		t.Error("WithGroup(\"\") returned a new handler")
	}
}
