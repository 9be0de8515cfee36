// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/goccy/go-json"
)

// Format identifies a catalog encoding.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. The empty string is returned as-is
// so callers can fall back to inference.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath infers the format from a file or URL path extension.
func FormatFromPath(p string) (Format, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: cannot infer from %q", ErrUnsupportedFormat, p)
	}
}

// FormatFromContentType infers the format from an HTTP Content-Type header.
func FormatFromContentType(ct string) (Format, error) {
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", fmt.Errorf("%w: content type %q", ErrUnsupportedFormat, ct)
	}
	switch mediaType {
	case "text/csv", "application/csv":
		return FormatCSV, nil
	case "application/json", "text/json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: content type %q", ErrUnsupportedFormat, ct)
	}
}

// Decode reads items in the given format.
func Decode(r io.Reader, f Format, opts LoadOptions) ([]Item, error) {
	switch f {
	case FormatCSV:
		return DecodeCSV(r, opts)
	case FormatJSON:
		return DecodeJSON(r, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// DecodeCSV reads a headed CSV catalog. The title and labels columns are
// located by name (case-insensitive); other columns are ignored. Rows whose
// field count differs from the header are skipped.
func DecodeCSV(r io.Reader, opts LoadOptions) ([]Item, error) {
	b := newItemBuilder(opts)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	titleCol, labelsCol := -1, -1
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		switch name {
		case strings.ToLower(b.opts.TitleColumn):
			titleCol = i
		case strings.ToLower(b.opts.LabelsColumn):
			labelsCol = i
		}
	}
	if titleCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, b.opts.TitleColumn)
	}
	if labelsCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, b.opts.LabelsColumn)
	}

	width := len(header)
	items := make([]Item, 0, 1024)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		if len(record) != width {
			continue
		}
		items = append(items, b.item(record[titleCol], record[labelsCol]))
	}

	return items, nil
}

// jsonItem is the wire form of one catalog entry. Genres holds the
// delimited label string; Labels is accepted as an alternative.
type jsonItem struct {
	Title  string   `json:"title"`
	Genres string   `json:"genres"`
	Labels []string `json:"labels,omitempty"`
}

// DecodeJSON reads a JSON array of {"title", "genres"} objects.
func DecodeJSON(r io.Reader, opts LoadOptions) ([]Item, error) {
	b := newItemBuilder(opts)

	var raw []jsonItem
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return []Item{}, nil
		}
		return nil, fmt.Errorf("decode json catalog: %w", err)
	}

	items := make([]Item, 0, len(raw))
	for _, ri := range raw {
		labels := ri.Labels
		if len(labels) == 0 {
			labels = SplitLabels(ri.Genres, b.opts.Separator)
		}
		items = append(items, b.itemFromLabels(ri.Title, labels))
	}
	return items, nil
}

// EncodeJSON writes items as a JSON array in the DecodeJSON layout, with
// labels joined by sep.
func EncodeJSON(w io.Writer, items []Item, sep string) error {
	if sep == "" {
		sep = DefaultSeparator
	}
	out := make([]jsonItem, len(items))
	for i, it := range items {
		out[i] = jsonItem{Title: it.Title, Genres: it.Labels.Join(sep)}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode json catalog: %w", err)
	}
	return nil
}
