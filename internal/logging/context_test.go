// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGenerateIDs(t *testing.T) {
	t.Parallel()

	c1, c2 := GenerateCorrelationID(), GenerateCorrelationID()
	if len(c1) != 8 {
		t.Errorf("len(GenerateCorrelationID()) = %d, want 8", len(c1))
	}
	if c1 == c2 {
		t.Error("GenerateCorrelationID returned duplicate IDs")
	}

	r1, r2 := GenerateRequestID(), GenerateRequestID()
	if len(r1) != 36 {
		t.Errorf("len(GenerateRequestID()) = %d, want 36", len(r1))
	}
	if r1 == r2 {
		t.Error("GenerateRequestID returned duplicate IDs")
	}
}

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if id := CorrelationIDFromContext(ctx); id != "" {
		t.Errorf("CorrelationIDFromContext(empty) = %q", id)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		t.Errorf("RequestIDFromContext(empty) = %q", id)
	}

	ctx = ContextWithCorrelationID(ctx, "corr-1")
	ctx = ContextWithRequestID(ctx, "req-1")
	if id := CorrelationIDFromContext(ctx); id != "corr-1" {
		t.Errorf("CorrelationIDFromContext() = %q, want corr-1", id)
	}
	if id := RequestIDFromContext(ctx); id != "req-1" {
		t.Errorf("RequestIDFromContext() = %q, want req-1", id)
	}

	if id := CorrelationIDFromContext(ContextWithNewCorrelationID(context.Background())); len(id) != 8 {
		t.Errorf("ContextWithNewCorrelationID() id = %q", id)
	}
}

func TestContextWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	custom := zerolog.New(&buf).With().Str("custom", "field").Logger()

	ctx := ContextWithLogger(context.Background(), custom)
	logger := LoggerFromContext(ctx)
	logger.Info().Msg("test")

	if !strings.Contains(buf.String(), `"custom":"field"`) {
		t.Errorf("output missing custom field: %s", buf.String())
	}
}

func TestCtx(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf))
	ctx = ContextWithCorrelationID(ctx, "corr-123")
	ctx = ContextWithRequestID(ctx, "req-456")

	Ctx(ctx).Info().Msg("context test")

	output := buf.String()
	if !strings.Contains(output, `"correlation_id":"corr-123"`) {
		t.Errorf("output missing correlation_id: %s", output)
	}
	if !strings.Contains(output, `"request_id":"req-456"`) {
		t.Errorf("output missing request_id: %s", output)
	}
}

func TestCtxWith(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf))
	ctx = ContextWithRequestID(ctx, "req-789")

	logger := CtxWith(ctx).Str("title", "Heat (1995)").Logger()
	logger.Info().Msg("lookup")

	output := buf.String()
	if !strings.Contains(output, "req-789") || !strings.Contains(output, "Heat (1995)") {
		t.Errorf("unexpected output: %s", output)
	}
	if strings.Contains(output, "correlation_id") {
		t.Errorf("output has correlation_id without one in context: %s", output)
	}
}
