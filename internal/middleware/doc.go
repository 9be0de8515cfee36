// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides the HTTP middleware shared by the Reelmatch API.

All middleware has the chi signature func(http.Handler) http.Handler:

  - RequestID: accepts or generates X-Request-ID and stores it in the
    logging context together with a fresh correlation ID
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern so path parameters do not explode cardinality
  - Compression: gzip for clients that accept it, used on the title list
    and index page

Typical stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
