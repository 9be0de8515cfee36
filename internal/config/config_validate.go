// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateLogging()
}

var validCatalogFormats = map[string]bool{
	"":     true,
	"csv":  true,
	"json": true,
}

func (c *Config) validateCatalog() error {
	if c.Catalog.URL != "" {
		if err := validateHTTPURL(c.Catalog.URL, "CATALOG_URL"); err != nil {
			return err
		}
	} else if strings.TrimSpace(c.Catalog.Path) == "" {
		return fmt.Errorf("CATALOG_PATH or CATALOG_URL is required")
	}

	if !validCatalogFormats[strings.ToLower(c.Catalog.Format)] {
		return fmt.Errorf("CATALOG_FORMAT must be one of: csv, json")
	}
	if c.Catalog.Separator == "" {
		return fmt.Errorf("CATALOG_SEPARATOR must not be empty")
	}
	if strings.TrimSpace(c.Catalog.TitleColumn) == "" || strings.TrimSpace(c.Catalog.LabelsColumn) == "" {
		return fmt.Errorf("CATALOG_TITLE_COLUMN and CATALOG_LABELS_COLUMN must not be empty")
	}
	if c.Catalog.RefreshInterval < 0 {
		return fmt.Errorf("CATALOG_REFRESH_INTERVAL must not be negative, got %v", c.Catalog.RefreshInterval)
	}
	if c.Catalog.RefreshInterval > 0 && c.Catalog.RefreshInterval < time.Second {
		return fmt.Errorf("CATALOG_REFRESH_INTERVAL must be at least 1s, got %v", c.Catalog.RefreshInterval)
	}
	if c.Catalog.FetchTimeout <= 0 {
		return fmt.Errorf("CATALOG_FETCH_TIMEOUT must be positive, got %v", c.Catalog.FetchTimeout)
	}
	if c.Catalog.FetchRetries < 0 || c.Catalog.FetchRetries > 10 {
		return fmt.Errorf("CATALOG_FETCH_RETRIES must be between 0 and 10, got %d", c.Catalog.FetchRetries)
	}
	return nil
}

var validSimilarities = map[string]bool{
	"jaccard": true,
	"tfidf":   true,
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.TopN <= 0 {
		return fmt.Errorf("recommend.top_n must be positive, got %d", r.TopN)
	}
	if r.MaxTopN < r.TopN {
		return fmt.Errorf("recommend.max_top_n (%d) must be at least recommend.top_n (%d)", r.MaxTopN, r.TopN)
	}
	if r.SuggestLimit <= 0 {
		return fmt.Errorf("recommend.suggest_limit must be positive, got %d", r.SuggestLimit)
	}
	if r.MaxSuggestLimit < r.SuggestLimit {
		return fmt.Errorf("recommend.max_suggest_limit (%d) must be at least recommend.suggest_limit (%d)", r.MaxSuggestLimit, r.SuggestLimit)
	}
	if !validSimilarities[strings.ToLower(r.Similarity)] {
		return fmt.Errorf("RECOMMEND_SIMILARITY must be one of: jaccard, tfidf")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	return nil
}

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitRequests < minRateLimitRequests || c.Security.RateLimitRequests > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
