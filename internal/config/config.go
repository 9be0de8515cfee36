// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// CatalogConfig describes where the catalog comes from and how it is parsed.
type CatalogConfig struct {
	// Path is the catalog file. Ignored when URL is set.
	Path string `koanf:"path"`

	// URL is an http(s) location to fetch the catalog from.
	URL string `koanf:"url"`

	// Format is csv or json. Empty infers it from the file extension.
	Format string `koanf:"format"`

	Separator    string `koanf:"separator"`
	TitleColumn  string `koanf:"title_column"`
	LabelsColumn string `koanf:"labels_column"`

	// Sanitize strips HTML markup from titles and labels.
	Sanitize bool `koanf:"sanitize"`

	// IgnoredLabels are dropped after splitting, e.g. "(no genres listed)".
	IgnoredLabels []string `koanf:"ignored_labels"`

	// RejectDuplicates fails a load when two titles fold to the same key.
	// The default keeps the last one.
	RejectDuplicates bool `koanf:"reject_duplicates"`

	// Watch reloads the catalog when the file changes. File sources only.
	Watch bool `koanf:"watch"`

	// RefreshInterval reloads the catalog periodically. Zero disables.
	RefreshInterval time.Duration `koanf:"refresh_interval"`

	FetchTimeout time.Duration `koanf:"fetch_timeout"`
	FetchRetries int           `koanf:"fetch_retries"`
}

// IsRemote reports whether the catalog is fetched over HTTP.
func (c *CatalogConfig) IsRemote() bool {
	return c.URL != ""
}

// Location returns the URL or path the catalog is read from.
func (c *CatalogConfig) Location() string {
	if c.IsRemote() {
		return c.URL
	}
	return c.Path
}

// RecommendConfig holds query defaults and limits.
type RecommendConfig struct {
	TopN            int    `koanf:"top_n"`
	MaxTopN         int    `koanf:"max_top_n"`
	SuggestLimit    int    `koanf:"suggest_limit"`
	MaxSuggestLimit int    `koanf:"max_suggest_limit"`
	Similarity      string `koanf:"similarity"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

