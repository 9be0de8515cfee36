// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"fmt"
	"os"
)

// Source produces the raw catalog. Implementations must be safe to call
// repeatedly; each call returns a fresh item slice.
type Source interface {
	// Name identifies the source in logs and status output.
	Name() string

	// Load reads the whole catalog.
	Load(ctx context.Context) ([]Item, error)
}

// StaticSource serves a fixed item list. Used by tests and embedded catalogs.
type StaticSource struct {
	Label string
	Items []Item
}

// Name implements Source.
func (s *StaticSource) Name() string {
	if s.Label == "" {
		return "static"
	}
	return s.Label
}

// Load implements Source.
func (s *StaticSource) Load(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Item, len(s.Items))
	copy(out, s.Items)
	return out, nil
}

// FileSource reads a catalog file from disk.
type FileSource struct {
	path    string
	format  Format
	options LoadOptions
}

// NewFileSource creates a FileSource. An empty format is inferred from the
// file extension.
func NewFileSource(path string, format Format, opts LoadOptions) (*FileSource, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog path is required")
	}
	if format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		format = f
	}
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	return &FileSource{path: path, format: format, options: opts}, nil
}

// Name implements Source.
func (s *FileSource) Name() string {
	return "file:" + s.path
}

// Path returns the watched file path.
func (s *FileSource) Path() string {
	return s.path
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	items, err := Decode(f, s.format, s.options)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return items, nil
}
