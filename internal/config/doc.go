// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package config loads Reelmatch configuration from layered sources.

Layers are applied in order, later layers winning:

 1. Built-in defaults
 2. An optional YAML file: $CONFIG_PATH, config.yaml, config.yml,
    /etc/reelmatch/config.yaml
 3. Environment variables, through an explicit mapping table

Environment variables not in the mapping table are ignored.

# Environment Variables

Catalog:
  - CATALOG_PATH: catalog file (default: data/movies.csv)
  - CATALOG_URL: remote catalog; overrides CATALOG_PATH when set
  - CATALOG_FORMAT: csv or json (default: inferred)
  - CATALOG_SEPARATOR: label separator (default: |)
  - CATALOG_TITLE_COLUMN, CATALOG_LABELS_COLUMN: CSV header names (default: title, genres)
  - CATALOG_SANITIZE: strip markup from titles and labels (default: true)
  - CATALOG_IGNORED_LABELS: comma-separated labels to drop
  - CATALOG_REJECT_DUPLICATES: fail the load on colliding titles (default: false)
  - CATALOG_WATCH: reload when the catalog file changes (default: true)
  - CATALOG_REFRESH_INTERVAL: periodic reload, 0 disables (default: 0)
  - CATALOG_FETCH_TIMEOUT, CATALOG_FETCH_RETRIES: remote fetch tuning (default: 30s, 3)

Recommendations:
  - RECOMMEND_TOP_N, RECOMMEND_MAX_TOP_N (default: 10, 100)
  - SUGGEST_LIMIT, MAX_SUGGEST_LIMIT (default: 5, 50)
  - RECOMMEND_SIMILARITY: jaccard or tfidf (default: jaccard)

Server and security:
  - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
  - CORS_ORIGINS: comma-separated allowed origins
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

Config is not modified after Load and may be read from any goroutine.
*/
package config
