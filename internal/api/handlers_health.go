// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// HealthLive handles liveness probes. It answers 200 whenever the process
// can serve HTTP, whether or not a catalog is loaded.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probes: 200 once a catalog is loaded,
// 503 before.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	status := h.source.Status()
	data := map[string]interface{}{
		"ready":  h.source.Ready(),
		"items":  status.Items,
		"uptime": time.Since(h.startTime).Seconds(),
	}

	if !h.source.Ready() {
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			recommend.ErrNotLoaded.Error(), data)
		return
	}
	rw.Success(data)
}
