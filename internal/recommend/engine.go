// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// Engine answers recommend, suggest and resolve queries over one immutable
// catalog index.
type Engine struct {
	index      *catalog.Index
	similarity Similarity
	config     Config
	logger     zerolog.Logger
}

// NewEngine creates an engine over idx. A nil idx is treated as an empty
// catalog and a nil cfg as DefaultConfig().
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(idx *catalog.Index, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if idx == nil {
		idx = catalog.Build(nil)
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sim, err := SimilarityByName(cfg.Similarity, idx)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		index:      idx,
		similarity: sim,
		config:     *cfg,
		logger:     logger.With().Str("component", "recommend").Logger(),
	}
	e.logger.Debug().
		Int("titles", idx.Len()).
		Str("similarity", sim.Name()).
		Msg("Recommendation engine ready")
	return e, nil
}

// Index returns the underlying catalog index.
func (e *Engine) Index() *catalog.Index {
	return e.index
}

// Config returns a copy of the engine tunables.
func (e *Engine) Config() Config {
	return e.config
}

// SimilarityName returns the active measure name.
func (e *Engine) SimilarityName() string {
	return e.similarity.Name()
}

// Len returns the number of distinct catalog titles. A nil Engine has none.
func (e *Engine) Len() int {
	if e == nil {
		return 0
	}
	return e.index.Len()
}

// Titles returns all canonical titles in catalog order.
func (e *Engine) Titles() []string {
	return e.index.Titles()
}

// Recommend returns the configured default number of neighbors for title.
// ok is false when the title is not in the catalog.
func (e *Engine) Recommend(title string) (titles []string, ok bool) {
	return e.RecommendN(title, e.config.TopN)
}

// RecommendN returns up to topN canonical titles most similar to title,
// excluding title itself. A topN of zero or less yields an empty slice.
func (e *Engine) RecommendN(title string, topN int) (titles []string, ok bool) {
	neighbors, ok := e.RecommendScored(title, topN)
	if !ok {
		return nil, false
	}
	titles = make([]string, len(neighbors))
	for i, n := range neighbors {
		titles[i] = n.Title
	}
	return titles, true
}

// RecommendScored is RecommendN with similarity scores attached.
func (e *Engine) RecommendScored(title string, topN int) ([]Neighbor, bool) {
	base, ok := e.index.Lookup(title)
	if !ok {
		return nil, false
	}
	if topN <= 0 || e.index.Len() < 2 {
		return []Neighbor{}, true
	}

	type candidate struct {
		entry catalog.Entry
		score float64
	}

	candidates := make([]candidate, 0, e.index.Len()-1)
	e.index.Range(func(other catalog.Entry) bool {
		if other.Key != base.Key {
			candidates = append(candidates, candidate{
				entry: other,
				score: e.similarity.Score(base.Labels, other.Labels),
			})
		}
		return true
	})

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.entry.Title != b.entry.Title {
			return a.entry.Title < b.entry.Title
		}
		return a.entry.Key < b.entry.Key
	})

	if topN > len(candidates) {
		topN = len(candidates)
	}
	out := make([]Neighbor, topN)
	for i := range out {
		out[i] = Neighbor{Title: candidates[i].entry.Title, Score: candidates[i].score}
	}
	return out, true
}

// Suggest returns up to the configured default number of titles containing
// query.
func (e *Engine) Suggest(query string) []string {
	return e.SuggestN(query, e.config.SuggestLimit)
}

// SuggestN returns up to limit canonical titles whose folded form contains
// the folded query, in catalog order. Surrounding whitespace in query is
// ignored; a blank query or a limit of zero or less yields an empty slice.
func (e *Engine) SuggestN(query string, limit int) []string {
	needle := catalog.Fold(strings.TrimSpace(query))
	if needle == "" || limit <= 0 {
		return []string{}
	}

	out := make([]string, 0, min(limit, 16))
	e.index.Range(func(entry catalog.Entry) bool {
		if strings.Contains(entry.Key, needle) {
			out = append(out, entry.Title)
		}
		return len(out) < limit
	})
	return out
}

// Resolve looks query up exactly and, when that fails, collects
// suggestions. Resolution.Suggestions is empty when Found.
func (e *Engine) Resolve(query string) Resolution {
	if entry, ok := e.index.Lookup(query); ok {
		return Resolution{Query: query, Title: entry.Title, Found: true}
	}
	return Resolution{Query: query, Suggestions: e.Suggest(query)}
}

// Labels returns the labels of title, if present.
func (e *Engine) Labels(title string) (catalog.LabelSet, bool) {
	entry, ok := e.index.Lookup(title)
	return entry.Labels, ok
}
