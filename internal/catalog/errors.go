// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import "errors"

var (
	// ErrDuplicateTitle is returned by BuildWithOptions when RejectDuplicates
	// is set and two items fold to the same key.
	ErrDuplicateTitle = errors.New("duplicate catalog title")

	// ErrUnsupportedFormat is returned for catalog formats other than csv and json.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")

	// ErrMissingColumn is returned when a CSV header lacks a required column.
	ErrMissingColumn = errors.New("missing catalog column")

	// ErrFetchStatus is returned when a remote catalog responds with a non-200 status.
	ErrFetchStatus = errors.New("unexpected catalog fetch status")

	// ErrCatalogTooLarge is returned when a remote catalog exceeds its size cap.
	ErrCatalogTooLarge = errors.New("catalog exceeds size limit")
)
