// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/tomtom215/reelmatch/internal/logging"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type indexPage struct {
	Count  int
	Titles []string
}

// Index serves the HTML page: a datalist of catalog titles and a form that
// posts to /recommend.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	var page indexPage
	if engine := h.source.Engine(); engine != nil {
		page.Titles = engine.Titles()
		page.Count = len(page.Titles)
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, page); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render index page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
