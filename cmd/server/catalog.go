// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// loadOptions maps catalog config onto parser options.
func loadOptions(cfg *config.CatalogConfig) catalog.LoadOptions {
	return catalog.LoadOptions{
		Separator:     cfg.Separator,
		TitleColumn:   cfg.TitleColumn,
		LabelsColumn:  cfg.LabelsColumn,
		Sanitize:      cfg.Sanitize,
		IgnoredLabels: cfg.IgnoredLabels,
	}
}

// newSource builds the file or HTTP catalog source the config points at.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func newSource(cfg *config.CatalogConfig, logger zerolog.Logger) (catalog.Source, error) {
	format, err := catalog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	if cfg.IsRemote() {
		// fetch_retries is already defaulted by config; zero means no retries.
		retries := cfg.FetchRetries
		if retries == 0 {
			retries = -1
		}
		src, err := catalog.NewHTTPSource(catalog.HTTPSourceConfig{
			URL:      cfg.URL,
			Format:   format,
			Options:  loadOptions(cfg),
			Timeout:  cfg.FetchTimeout,
			RetryMax: retries,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("catalog source: %w", err)
		}
		return src, nil
	}

	src, err := catalog.NewFileSource(cfg.Path, format, loadOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("catalog source: %w", err)
	}
	return src, nil
}

// engineConfig maps recommend config onto engine settings.
func engineConfig(cfg *config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		TopN:            cfg.TopN,
		MaxTopN:         cfg.MaxTopN,
		SuggestLimit:    cfg.SuggestLimit,
		MaxSuggestLimit: cfg.MaxSuggestLimit,
		Similarity:      cfg.Similarity,
	}
}
