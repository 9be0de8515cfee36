// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend ranks catalog titles by genre similarity and resolves
// free-text queries against the catalog.
//
// # Engine
//
// An Engine wraps one immutable catalog.Index and answers three queries:
//
//   - Recommend / RecommendN: neighbors of a title, most similar first
//   - Suggest / SuggestN: case-insensitive substring matches, catalog order
//   - Resolve: exact lookup, falling back to suggestions when not found
//
// Every query is a pure in-memory computation. An unknown title is reported
// through a false ok value, never an error. Engines are safe for concurrent
// use without locking.
//
// # Ranking
//
// Neighbors are scored with a Similarity (Jaccard by default, TF-IDF cosine
// optionally) and ordered by score descending, then canonical title
// ascending, then key ascending. The order is total, so repeated queries
// return identical results.
//
// # Live Reload
//
// Live holds the current Engine behind an atomic pointer. Reload loads the
// catalog source, builds a fresh index and engine, and swaps the pointer;
// concurrent Reload calls share one rebuild. Readers never block and never
// see a partially built index.
//
// # Usage
//
//	idx := catalog.Build(items)
//	engine, err := recommend.NewEngine(idx, recommend.DefaultConfig(), logger)
//	titles, ok := engine.Recommend("Heat (1995)")
//	if !ok {
//	    fmt.Println(engine.Suggest("heat"))
//	}
package recommend
