// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// recommendRequest is the body of POST /recommend.
type recommendRequest struct {
	Title string `json:"title"`
}

// recommendationsQuery holds GET /api/v1/recommendations parameters.
type recommendationsQuery struct {
	Title string `query:"title" validate:"notblank,max=500"`
	Limit int    `query:"limit" validate:"gte=0,lte=1000"`
}

// suggestQuery holds GET /api/v1/suggest parameters.
type suggestQuery struct {
	Query string `query:"q" validate:"max=500"`
	Limit int    `query:"limit" validate:"gte=0,lte=1000"`
}

// titlesQuery holds GET /api/v1/titles parameters.
type titlesQuery struct {
	Limit  int `query:"limit" validate:"gte=0,lte=1000"`
	Offset int `query:"offset" validate:"gte=0"`
}

// queryInt parses an integer query parameter, returning def when absent.
func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return v, nil
}
