// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

// Messages returned by POST /recommend.
const (
	msgEmptyTitle     = "Type a movie title to get recommendations."
	msgNotFoundPrefix = "Movie not found. Try: "
	msgNotFound       = "Movie not found. Try a full title with year."
	msgNotLoaded      = "The movie catalog is still loading. Try again shortly."
)
