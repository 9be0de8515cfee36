// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"time"
)

var (
	// ErrUnknownSimilarity is returned for an unrecognized similarity name.
	ErrUnknownSimilarity = errors.New("unknown similarity measure")

	// ErrNotLoaded is returned when no catalog has been loaded yet.
	ErrNotLoaded = errors.New("catalog not loaded")
)

// Neighbor is one ranked recommendation.
type Neighbor struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// Resolution is the outcome of resolving a free-text query.
type Resolution struct {
	// Query is the input as given.
	Query string `json:"query"`

	// Title is the canonical title when Found.
	Title string `json:"title,omitempty"`

	// Found reports whether the query named a catalog entry.
	Found bool `json:"found"`

	// Suggestions holds near-matches when not Found.
	Suggestions []string `json:"suggestions,omitempty"`
}

// Status describes the catalog currently served by a Live holder.
type Status struct {
	Source      string    `json:"source"`
	Items       int       `json:"items"`
	Similarity  string    `json:"similarity"`
	Version     uint64    `json:"version"`
	LoadedAt    time.Time `json:"loaded_at,omitempty"`
	LastAttempt time.Time `json:"last_attempt,omitempty"`
	LastError   string    `json:"last_error,omitempty"`
}
