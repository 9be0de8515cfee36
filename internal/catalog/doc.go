// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package catalog holds the in-memory movie catalog and its lookup index.
//
// A catalog is a list of Items, each a canonical title plus a set of
// categorical labels (genres). Build turns the list into an immutable Index
// keyed by the case-folded title:
//
//	items, err := catalog.DecodeCSV(f, catalog.DefaultLoadOptions())
//	idx := catalog.Build(items)
//	entry, ok := idx.Lookup("the matrix (1999)")
//
// The Index is never mutated after Build returns. A changed catalog is
// published by building a new Index and swapping the reference.
//
// # Sources
//
// Catalogs are read through the Source interface:
//   - FileSource: CSV (MovieLens movies.csv layout) or JSON from disk
//   - HTTPSource: CSV or JSON fetched with retries behind a circuit breaker
//
// Watcher reports changes to a catalog file so callers can rebuild.
package catalog
