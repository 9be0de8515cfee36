// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the lookup key for a title or query.
//
// The input is NFC-normalized and then Unicode case folded, so "HEAT",
// "Heat" and "heat" share a key, as do composed and decomposed accents.
// Surrounding whitespace is preserved; trimming is the caller's job.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	// cases.Caser is stateful and must not be shared between goroutines.
	return cases.Fold().String(norm.NFC.String(s))
}
