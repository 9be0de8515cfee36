// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import "fmt"

// Defaults for the engine tunables.
const (
	DefaultTopN            = 10
	DefaultMaxTopN         = 100
	DefaultSuggestLimit    = 5
	DefaultMaxSuggestLimit = 50
)

// Config holds the engine tunables.
type Config struct {
	// TopN is the neighbor count used when the caller does not pass one.
	TopN int `json:"top_n"`

	// MaxTopN caps caller-supplied neighbor counts at the API boundary.
	MaxTopN int `json:"max_top_n"`

	// SuggestLimit is the suggestion count used when the caller does not pass one.
	SuggestLimit int `json:"suggest_limit"`

	// MaxSuggestLimit caps caller-supplied suggestion limits at the API boundary.
	MaxSuggestLimit int `json:"max_suggest_limit"`

	// Similarity names the measure: "jaccard" or "tfidf".
	Similarity string `json:"similarity"`
}

// DefaultConfig returns the default tunables.
func DefaultConfig() *Config {
	return &Config{
		TopN:            DefaultTopN,
		MaxTopN:         DefaultMaxTopN,
		SuggestLimit:    DefaultSuggestLimit,
		MaxSuggestLimit: DefaultMaxSuggestLimit,
		Similarity:      SimilarityJaccard,
	}
}

// Validate checks the tunables.
func (c *Config) Validate() error {
	if c.TopN < 1 {
		return fmt.Errorf("recommend.top_n must be positive, got %d", c.TopN)
	}
	if c.MaxTopN < c.TopN {
		return fmt.Errorf("recommend.max_top_n must be >= top_n (%d), got %d", c.TopN, c.MaxTopN)
	}
	if c.SuggestLimit < 1 {
		return fmt.Errorf("recommend.suggest_limit must be positive, got %d", c.SuggestLimit)
	}
	if c.MaxSuggestLimit < c.SuggestLimit {
		return fmt.Errorf("recommend.max_suggest_limit must be >= suggest_limit (%d), got %d", c.SuggestLimit, c.MaxSuggestLimit)
	}
	if !IsKnownSimilarity(c.Similarity) {
		return fmt.Errorf("recommend.similarity: %w: %q", ErrUnknownSimilarity, c.Similarity)
	}
	return nil
}

// ClampTopN bounds a requested neighbor count. Zero or negative falls back
// to TopN; anything above MaxTopN is capped.
func (c *Config) ClampTopN(n int) int {
	if n <= 0 {
		return c.TopN
	}
	if n > c.MaxTopN {
		return c.MaxTopN
	}
	return n
}

// ClampSuggestLimit bounds a requested suggestion limit like ClampTopN.
func (c *Config) ClampSuggestLimit(n int) int {
	if n <= 0 {
		return c.SuggestLimit
	}
	if n > c.MaxSuggestLimit {
		return c.MaxSuggestLimit
	}
	return n
}
