// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// LoadOptions control how raw rows become Items.
type LoadOptions struct {
	// Separator splits the raw labels column. Default: "|"
	Separator string

	// TitleColumn is the CSV header holding the title. JSON catalogs always
	// use the "title" field. Default: "title"
	TitleColumn string

	// LabelsColumn is the CSV header holding the delimited labels. Default: "genres"
	LabelsColumn string

	// Sanitize strips HTML markup from titles and labels.
	Sanitize bool

	// IgnoredLabels are dropped after splitting, e.g. "(no genres listed)".
	IgnoredLabels []string
}

// DefaultLoadOptions returns options matching the MovieLens movies.csv layout.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Separator:    DefaultSeparator,
		TitleColumn:  "title",
		LabelsColumn: "genres",
		Sanitize:     true,
	}
}

func (o LoadOptions) withDefaults() LoadOptions {
	if o.Separator == "" {
		o.Separator = DefaultSeparator
	}
	if o.TitleColumn == "" {
		o.TitleColumn = "title"
	}
	if o.LabelsColumn == "" {
		o.LabelsColumn = "genres"
	}
	return o
}

// Sanitizer removes markup from catalog text using a bluemonday strict
// policy. Entities left behind by the policy are unescaped again so that
// "Tom & Jerry" survives unchanged.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer. It is safe for concurrent use.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean returns s without markup. A nil Sanitizer returns s trimmed.
func (z *Sanitizer) Clean(s string) string {
	if z == nil || !strings.ContainsAny(s, "<>&") {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(html.UnescapeString(z.policy.Sanitize(s)))
}

// itemBuilder turns raw title/label strings into Items under LoadOptions.
type itemBuilder struct {
	opts      LoadOptions
	sanitizer *Sanitizer
	ignored   map[string]struct{}
}

func newItemBuilder(opts LoadOptions) *itemBuilder {
	opts = opts.withDefaults()
	b := &itemBuilder{opts: opts}
	if opts.Sanitize {
		b.sanitizer = NewSanitizer()
	}
	if len(opts.IgnoredLabels) > 0 {
		b.ignored = make(map[string]struct{}, len(opts.IgnoredLabels))
		for _, l := range opts.IgnoredLabels {
			b.ignored[strings.TrimSpace(l)] = struct{}{}
		}
	}
	return b
}

// item builds an Item from a title and a delimited label string.
func (b *itemBuilder) item(title, rawLabels string) Item {
	return b.itemFromLabels(title, SplitLabels(rawLabels, b.opts.Separator))
}

// itemFromLabels builds an Item from a title and already split labels.
func (b *itemBuilder) itemFromLabels(title string, labels []string) Item {
	kept := make([]string, 0, len(labels))
	for _, l := range labels {
		l = b.sanitizer.Clean(l)
		if l == "" {
			continue
		}
		if _, skip := b.ignored[l]; skip {
			continue
		}
		kept = append(kept, l)
	}
	return Item{
		Title:  b.sanitizer.Clean(title),
		Labels: NewLabelSet(kept...),
	}
}
