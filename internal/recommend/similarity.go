// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// Similarity measure names.
const (
	SimilarityJaccard = "jaccard"
	SimilarityTFIDF   = "tfidf"
)

// Similarity scores two label sets. Implementations must be symmetric,
// return values in [0, 1], and return 0 when either set is empty.
type Similarity interface {
	Name() string
	Score(a, b catalog.LabelSet) float64
}

// IsKnownSimilarity reports whether name selects a built-in measure.
func IsKnownSimilarity(name string) bool {
	switch strings.ToLower(name) {
	case SimilarityJaccard, SimilarityTFIDF:
		return true
	default:
		return false
	}
}

// SimilarityByName returns the named measure prepared for idx.
func SimilarityByName(name string, idx *catalog.Index) (Similarity, error) {
	switch strings.ToLower(name) {
	case SimilarityJaccard:
		return Jaccard{}, nil
	case SimilarityTFIDF:
		return NewTFIDF(idx), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSimilarity, name)
	}
}

// Jaccard is |A ∩ B| / |A ∪ B|.
type Jaccard struct{}

// Name implements Similarity.
func (Jaccard) Name() string { return SimilarityJaccard }

// Score implements Similarity.
func (Jaccard) Score(a, b catalog.LabelSet) float64 {
	if a.IsEmpty() || b.IsEmpty() {
		return 0
	}
	inter := a.IntersectionSize(b)
	if inter == 0 {
		return 0
	}
	return float64(inter) / float64(a.UnionSize(b))
}

// TFIDF is the cosine similarity of L2-normalized label vectors weighted by
// smoothed inverse document frequency:
//
//	idf(l) = ln((1 + N) / (1 + df(l))) + 1
//
// Rare labels (e.g. "Film-Noir") count for more than common ones (e.g.
// "Drama"). Label frequencies are fixed when the measure is built, so a
// TFIDF must be rebuilt together with its index.
type TFIDF struct {
	idf    map[string]float64
	unseen float64
}

// NewTFIDF computes label frequencies over idx.
func NewTFIDF(idx *catalog.Index) *TFIDF {
	df := make(map[string]int)
	idx.Range(func(e catalog.Entry) bool {
		e.Labels.Each(func(l string) { df[l]++ })
		return true
	})

	n := float64(idx.Len())
	idf := make(map[string]float64, len(df))
	for l, c := range df {
		idf[l] = math.Log((1+n)/(1+float64(c))) + 1
	}
	return &TFIDF{idf: idf, unseen: math.Log(1+n) + 1}
}

// Name implements Similarity.
func (t *TFIDF) Name() string { return SimilarityTFIDF }

// Score implements Similarity.
func (t *TFIDF) Score(a, b catalog.LabelSet) float64 {
	if a.IsEmpty() || b.IsEmpty() {
		return 0
	}

	var dot, normA, normB float64
	a.Each(func(l string) {
		w := t.weight(l)
		normA += w * w
		if b.Contains(l) {
			dot += w * w
		}
	})
	if dot == 0 {
		return 0
	}
	b.Each(func(l string) {
		w := t.weight(l)
		normB += w * w
	})

	score := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if score > 1 {
		// Rounding can push identical vectors a hair past 1.
		score = 1
	}
	return score
}

// weight returns the idf of a label. Labels unseen at build time get the
// weight of a label that occurs nowhere.
func (t *TFIDF) weight(label string) float64 {
	if w, ok := t.idf[label]; ok {
		return w
	}
	return t.unseen
}
