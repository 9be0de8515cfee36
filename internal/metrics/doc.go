// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics provides Prometheus instrumentation for Reelmatch.

All collectors are registered on the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP:
  - reelmatch_api_requests_total{method,endpoint,status}
  - reelmatch_api_request_duration_seconds{method,endpoint}
  - reelmatch_api_active_requests

Queries:
  - reelmatch_queries_total{operation,result}
  - reelmatch_query_duration_seconds{operation}

Catalog:
  - reelmatch_catalog_items
  - reelmatch_catalog_reloads_total{status}
  - reelmatch_catalog_reload_duration_seconds
  - reelmatch_catalog_last_reload_timestamp_seconds

Endpoint labels use the chi route pattern, never the raw path, to keep
cardinality bounded.
*/
package metrics
