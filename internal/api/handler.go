// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// EngineSource supplies the engine serving the current catalog.
// *recommend.Live implements it.
type EngineSource interface {
	Engine() *recommend.Engine
	Ready() bool
	Status() recommend.Status
}

// resultKey identifies one ranked neighbor list. The engine pointer scopes
// entries to the catalog that produced them.
type resultKey struct {
	engine *recommend.Engine
	title  string
	n      int
}

// Handler serves the recommendation endpoints.
type Handler struct {
	source    EngineSource
	config    recommend.Config
	startTime time.Time

	results   *cache.LRU[resultKey, []recommend.Neighbor]
	cachedFor atomic.Pointer[recommend.Engine]
}

// NewHandler creates a Handler. cfg supplies request defaults and limits;
// nil uses recommend.DefaultConfig.
func NewHandler(source EngineSource, cfg *recommend.Config) *Handler {
	if cfg == nil {
		cfg = recommend.DefaultConfig()
	}
	return &Handler{
		source:    source,
		config:    *cfg,
		startTime: time.Now(),
		results:   cache.NewLRU[resultKey, []recommend.Neighbor](cache.DefaultCapacity),
	}
}

// neighbors returns the ranked neighbors of the canonical title, memoized
// per engine. The returned slice is shared and must not be modified.
func (h *Handler) neighbors(engine *recommend.Engine, title string, n int) []recommend.Neighbor {
	if prev := h.cachedFor.Swap(engine); prev != engine {
		// A reload happened; drop entries that pin the old catalog.
		h.results.Purge()
	}

	key := resultKey{engine: engine, title: title, n: n}
	if cached, ok := h.results.Get(key); ok {
		return cached
	}
	out, _ := engine.RecommendScored(title, n)
	h.results.Add(key, out)
	return out
}

// engine returns the current engine or writes a 503 and returns nil.
func (h *Handler) engine(rw *ResponseWriter) *recommend.Engine {
	e := h.source.Engine()
	if e == nil {
		rw.ServiceUnavailable(recommend.ErrNotLoaded.Error())
	}
	return e
}

// methodNotAllowed is used by chi for wrong-method requests on known routes.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
}

// notFound is used by chi for unknown API routes.
func notFound(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).NotFound("Route not found", nil)
}
