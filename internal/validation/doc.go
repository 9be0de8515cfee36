// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation validates API request structs with go-playground/validator.
//
// A single validator instance is shared process-wide; it caches struct
// metadata after first use. Field names in errors come from the query or
// json tag, so messages refer to parameters the way clients spell them.
//
//	type suggestRequest struct {
//	    Query string `query:"q" validate:"max=200"`
//	    Limit int    `query:"limit" validate:"min=0,max=50"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // respond 400 with apiErr.Code, apiErr.Message, apiErr.Details
//	}
//
// In addition to the built-in tags, "notblank" rejects strings that are
// empty after trimming whitespace.
package validation
