// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/reelmatch/internal/middleware"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	timeout       time.Duration
}

// NewRouter creates a Router. timeout bounds every request's context;
// zero disables the bound. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware, timeout time.Duration) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw, timeout: timeout}
}

// SetupChi configures all routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	if router.timeout > 0 {
		r.Use(chimiddleware.Timeout(router.timeout))
	}

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	// ========================
	// Page and compatibility endpoint
	// ========================
	r.With(middleware.Compression).Get("/", router.handler.Index)
	r.With(router.chiMiddleware.RateLimit()).Post("/recommend", router.handler.Recommend)

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Recommendation API
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())

		r.Get("/recommendations", router.handler.Recommendations)
		r.Get("/suggest", router.handler.Suggest)
		r.With(middleware.Compression).Get("/titles", router.handler.Titles)
		r.Get("/catalog/status", router.handler.CatalogStatus)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
