// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// SuggestData is the data of GET /api/v1/suggest.
type SuggestData struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

// Suggest handles GET /api/v1/suggest?q=&limit=.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	start := time.Now()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		rw.Error(http.StatusBadRequest, ErrCodeValidationFailed, err.Error())
		return
	}
	req := suggestQuery{Query: strings.TrimSpace(r.URL.Query().Get("q")), Limit: limit}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	engine := h.engine(rw)
	if engine == nil {
		return
	}

	suggestions := engine.SuggestN(req.Query, h.config.ClampSuggestLimit(req.Limit))
	result := metrics.ResultResolved
	switch {
	case req.Query == "":
		result = metrics.ResultEmpty
	case len(suggestions) == 0:
		result = metrics.ResultUnresolved
	}
	metrics.RecordQuery(metrics.OperationSuggest, result, time.Since(start))

	rw.Success(SuggestData{Query: req.Query, Suggestions: suggestions})
}

// defaultTitlesLimit is the page size of GET /api/v1/titles.
const defaultTitlesLimit = 100

// Titles handles GET /api/v1/titles?limit=&offset=, listing canonical
// titles in catalog order.
func (h *Handler) Titles(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, err := queryInt(r, "limit", defaultTitlesLimit)
	if err != nil {
		rw.Error(http.StatusBadRequest, ErrCodeValidationFailed, err.Error())
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		rw.Error(http.StatusBadRequest, ErrCodeValidationFailed, err.Error())
		return
	}
	req := titlesQuery{Limit: limit, Offset: offset}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}
	if req.Limit == 0 {
		req.Limit = defaultTitlesLimit
	}

	engine := h.engine(rw)
	if engine == nil {
		return
	}

	all := engine.Titles()
	lo := min(req.Offset, len(all))
	hi := min(lo+req.Limit, len(all))
	page := all[lo:hi]

	rw.SuccessWithPagination(page, &PaginationMeta{
		Total:   len(all),
		Count:   len(page),
		Offset:  req.Offset,
		Limit:   req.Limit,
		HasMore: hi < len(all),
	})
}

// CatalogStatusData is the data of GET /api/v1/catalog/status.
type CatalogStatusData struct {
	recommend.Status
	Cache cache.Stats `json:"cache"`
}

// CatalogStatus handles GET /api/v1/catalog/status.
func (h *Handler) CatalogStatus(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(CatalogStatusData{
		Status: h.source.Status(),
		Cache:  h.results.Stats(),
	})
}
