// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query operations.
const (
	OperationRecommend = "recommend"
	OperationSuggest   = "suggest"
)

// Query results.
const (
	ResultResolved   = "resolved"
	ResultUnresolved = "unresolved"
	ResultEmpty      = "empty"
)

// Reload statuses.
const (
	ReloadSuccess = "success"
	ReloadFailure = "failure"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)

	// Query Metrics
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_queries_total",
			Help: "Total number of recommend and suggest queries by result",
		},
		[]string{"operation", "result"},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_query_duration_seconds",
			Help:    "Time spent ranking or matching inside the engine",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
		[]string{"operation"},
	)

	// Catalog Metrics
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_catalog_items",
			Help: "Number of distinct titles in the active catalog index",
		},
	)

	CatalogReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_catalog_reloads_total",
			Help: "Total number of catalog reloads by status",
		},
		[]string{"status"},
	)

	CatalogReloadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelmatch_catalog_reload_duration_seconds",
			Help:    "Time to load the catalog and rebuild the index",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 9), // 1ms .. ~65s
		},
	)

	CatalogLastReload = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_catalog_last_reload_timestamp_seconds",
			Help: "Unix time of the last successful catalog reload",
		},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordQuery records one engine query.
func RecordQuery(operation, result string, duration time.Duration) {
	QueriesTotal.WithLabelValues(operation, result).Inc()
	QueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordCatalogReload records a reload attempt. items is ignored on failure.
func RecordCatalogReload(err error, items int, duration time.Duration) {
	CatalogReloadDuration.Observe(duration.Seconds())
	if err != nil {
		CatalogReloadsTotal.WithLabelValues(ReloadFailure).Inc()
		return
	}
	CatalogReloadsTotal.WithLabelValues(ReloadSuccess).Inc()
	CatalogItems.Set(float64(items))
	CatalogLastReload.SetToCurrentTime()
}
