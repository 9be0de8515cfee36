// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"fmt"
	"strings"
)

// Item is one catalog entry as read from a source.
type Item struct {
	// Title is the canonical display form.
	Title string

	// Labels are the item's genres.
	Labels LabelSet
}

// NewItem builds an Item from a title and individual labels.
func NewItem(title string, labels ...string) Item {
	return Item{Title: title, Labels: NewLabelSet(labels...)}
}

// Entry is an indexed item: the case-folded key, the canonical title
// and the label set.
type Entry struct {
	Key    string
	Title  string
	Labels LabelSet
}

// BuildOptions control index construction.
type BuildOptions struct {
	// RejectDuplicates fails the build when two items fold to the same key.
	// When false the later item wins.
	RejectDuplicates bool
}

// Index maps case-folded titles to canonical titles and label sets.
//
// Both mappings share one key domain. Iteration order is the order in
// which each key was first inserted; a later duplicate replaces the title
// and labels in place. An Index is safe for concurrent readers.
type Index struct {
	entries []Entry
	byKey   map[string]int
}

// Build indexes items. Items with an empty title are skipped and duplicate
// keys resolve last-write-wins. Build never fails.
func Build(items []Item) *Index {
	idx, _ := build(items, BuildOptions{})
	return idx
}

// BuildWithOptions indexes items with the given options. It returns
// ErrDuplicateTitle only when opts.RejectDuplicates is set.
func BuildWithOptions(items []Item, opts BuildOptions) (*Index, error) {
	return build(items, opts)
}

func build(items []Item, opts BuildOptions) (*Index, error) {
	idx := &Index{
		entries: make([]Entry, 0, len(items)),
		byKey:   make(map[string]int, len(items)),
	}

	for _, item := range items {
		// Queries are trimmed, so a blank title could never resolve.
		if strings.TrimSpace(item.Title) == "" {
			continue
		}

		key := Fold(item.Title)
		if pos, ok := idx.byKey[key]; ok {
			if opts.RejectDuplicates {
				return nil, fmt.Errorf("%w: %q collides with %q", ErrDuplicateTitle, item.Title, idx.entries[pos].Title)
			}
			idx.entries[pos].Title = item.Title
			idx.entries[pos].Labels = item.Labels
			continue
		}

		idx.byKey[key] = len(idx.entries)
		idx.entries = append(idx.entries, Entry{Key: key, Title: item.Title, Labels: item.Labels})
	}

	return idx, nil
}

// Len returns the number of distinct keys.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}

// Get returns the entry stored under an already folded key.
func (x *Index) Get(key string) (Entry, bool) {
	if x == nil {
		return Entry{}, false
	}
	pos, ok := x.byKey[key]
	if !ok {
		return Entry{}, false
	}
	return x.entries[pos], true
}

// Lookup folds title and returns its entry.
func (x *Index) Lookup(title string) (Entry, bool) {
	return x.Get(Fold(title))
}

// Title returns the canonical title for a folded key.
func (x *Index) Title(key string) (string, bool) {
	e, ok := x.Get(key)
	return e.Title, ok
}

// Labels returns the label set for a folded key.
func (x *Index) Labels(key string) (LabelSet, bool) {
	e, ok := x.Get(key)
	return e.Labels, ok
}

// Titles returns all canonical titles in iteration order.
func (x *Index) Titles() []string {
	out := make([]string, x.Len())
	for i := range out {
		out[i] = x.entries[i].Title
	}
	return out
}

// Items returns the indexed items in iteration order, one per key.
func (x *Index) Items() []Item {
	out := make([]Item, x.Len())
	for i := range out {
		out[i] = Item{Title: x.entries[i].Title, Labels: x.entries[i].Labels}
	}
	return out
}

// Range calls fn for each entry in iteration order until fn returns false.
func (x *Index) Range(fn func(e Entry) bool) {
	for i := 0; i < x.Len(); i++ {
		if !fn(x.entries[i]) {
			return
		}
	}
}
