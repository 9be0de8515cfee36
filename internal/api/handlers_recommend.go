// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// maxRecommendBody bounds the POST /recommend body.
const maxRecommendBody = 16 << 10

// RecommendResponse is the body of POST /recommend.
type RecommendResponse struct {
	OK      bool     `json:"ok"`
	Results []string `json:"results"`
	Error   string   `json:"error,omitempty"`
}

// RecommendationsData is the data of GET /api/v1/recommendations.
type RecommendationsData struct {
	Title      string               `json:"title"`
	Similarity string               `json:"similarity"`
	Results    []recommend.Neighbor `json:"results"`
}

// Recommend handles POST /recommend, the endpoint used by the index page.
// It always answers 200; failures are reported with ok=false.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req recommendRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRecommendBody))
	if err == nil && len(body) > 0 {
		if jsonErr := json.Unmarshal(body, &req); jsonErr != nil {
			// A malformed body counts as an empty title.
			req = recommendRequest{}
		}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		metrics.RecordQuery(metrics.OperationRecommend, metrics.ResultEmpty, time.Since(start))
		writeJSON(w, http.StatusOK, RecommendResponse{OK: false, Results: []string{}, Error: msgEmptyTitle})
		return
	}

	engine := h.source.Engine()
	if engine == nil {
		writeJSON(w, http.StatusOK, RecommendResponse{OK: false, Results: []string{}, Error: msgNotLoaded})
		return
	}

	res := engine.Resolve(title)
	if !res.Found {
		metrics.RecordQuery(metrics.OperationRecommend, metrics.ResultUnresolved, time.Since(start))
		logging.Ctx(r.Context()).Debug().Str("title", title).Int("suggestions", len(res.Suggestions)).Msg("Title not found")
		writeJSON(w, http.StatusOK, RecommendResponse{
			OK:      false,
			Results: []string{},
			Error:   notFoundMessage(res.Suggestions),
		})
		return
	}

	neighbors := h.neighbors(engine, res.Title, h.config.TopN)
	results := make([]string, len(neighbors))
	for i, n := range neighbors {
		results[i] = n.Title
	}
	metrics.RecordQuery(metrics.OperationRecommend, metrics.ResultResolved, time.Since(start))
	writeJSON(w, http.StatusOK, RecommendResponse{OK: true, Results: results})
}

// notFoundMessage builds the unresolved-title message.
func notFoundMessage(suggestions []string) string {
	if len(suggestions) == 0 {
		return msgNotFound
	}
	return msgNotFoundPrefix + strings.Join(suggestions, ", ")
}

// Recommendations handles GET /api/v1/recommendations?title=&limit=.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	start := time.Now()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		rw.Error(http.StatusBadRequest, ErrCodeValidationFailed, err.Error())
		return
	}
	req := recommendationsQuery{
		Title: strings.TrimSpace(r.URL.Query().Get("title")),
		Limit: limit,
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	engine := h.engine(rw)
	if engine == nil {
		return
	}

	res := engine.Resolve(req.Title)
	if !res.Found {
		metrics.RecordQuery(metrics.OperationRecommend, metrics.ResultUnresolved, time.Since(start))
		suggestions := res.Suggestions
		if suggestions == nil {
			suggestions = []string{}
		}
		rw.NotFound(notFoundMessage(res.Suggestions), map[string]interface{}{
			"title":       req.Title,
			"suggestions": suggestions,
		})
		return
	}

	results := h.neighbors(engine, res.Title, h.config.ClampTopN(req.Limit))
	metrics.RecordQuery(metrics.OperationRecommend, metrics.ResultResolved, time.Since(start))
	rw.Success(RecommendationsData{
		Title:      res.Title,
		Similarity: engine.SimilarityName(),
		Results:    results,
	})
}
