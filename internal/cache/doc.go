// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package cache provides a small generic LRU used to memoize query results.
//
// Entries carry no TTL. Results are valid for as long as the catalog that
// produced them, so owners purge the cache when the catalog changes
// instead of waiting for entries to expire.
package cache
