// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"sort"
	"strings"
)

// DefaultSeparator splits a raw genre string such as "Action|Comedy".
const DefaultSeparator = "|"

// LabelSet is an immutable set of category labels.
//
// Labels are stored sorted and de-duplicated so set operations run as a
// linear merge. The zero value is the empty set.
type LabelSet struct {
	labels []string
}

// NewLabelSet builds a set from individual labels. Each label is trimmed and
// empty labels are dropped.
func NewLabelSet(labels ...string) LabelSet {
	if len(labels) == 0 {
		return LabelSet{}
	}

	out := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return LabelSet{}
	}

	sort.Strings(out)
	uniq := out[:1]
	for _, l := range out[1:] {
		if l != uniq[len(uniq)-1] {
			uniq = append(uniq, l)
		}
	}
	return LabelSet{labels: uniq}
}

// SplitLabels splits raw on sep, trims every token and discards empty ones.
// An empty sep falls back to DefaultSeparator.
func SplitLabels(raw, sep string) []string {
	if sep == "" {
		sep = DefaultSeparator
	}
	parts := strings.Split(raw, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseLabels is SplitLabels followed by NewLabelSet.
//
//	ParseLabels(" Action | |Comedy", "|") // {Action, Comedy}
func ParseLabels(raw, sep string) LabelSet {
	return NewLabelSet(SplitLabels(raw, sep)...)
}

// Len returns the number of distinct labels.
func (s LabelSet) Len() int {
	return len(s.labels)
}

// IsEmpty reports whether the set has no labels.
func (s LabelSet) IsEmpty() bool {
	return len(s.labels) == 0
}

// Contains reports whether label is in the set. Matching is exact.
func (s LabelSet) Contains(label string) bool {
	i := sort.SearchStrings(s.labels, label)
	return i < len(s.labels) && s.labels[i] == label
}

// Labels returns a sorted copy of the labels.
func (s LabelSet) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Each calls fn for every label in sorted order.
func (s LabelSet) Each(fn func(label string)) {
	for _, l := range s.labels {
		fn(l)
	}
}

// IntersectionSize returns |s ∩ other|.
func (s LabelSet) IntersectionSize(other LabelSet) int {
	a, b := s.labels, other.labels
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return n
}

// UnionSize returns |s ∪ other|.
func (s LabelSet) UnionSize(other LabelSet) int {
	return len(s.labels) + len(other.labels) - s.IntersectionSize(other)
}

// Join renders the set with sep between labels.
func (s LabelSet) Join(sep string) string {
	return strings.Join(s.labels, sep)
}

// String renders the set in the catalog's "A|B" form.
func (s LabelSet) String() string {
	return s.Join(DefaultSeparator)
}
