// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"math"
	"testing"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

func labelSets() []catalog.LabelSet {
	return []catalog.LabelSet{
		{},
		catalog.NewLabelSet("Action"),
		catalog.NewLabelSet("Action", "Comedy"),
		catalog.NewLabelSet("Comedy", "Drama"),
		catalog.NewLabelSet("Action", "Comedy", "Drama", "Thriller"),
		catalog.NewLabelSet("Horror"),
		catalog.NewLabelSet("Film-Noir", "Mystery", "Drama"),
	}
}

func TestJaccard_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b catalog.LabelSet
		want float64
	}{
		{"identical", catalog.NewLabelSet("Action", "Comedy"), catalog.NewLabelSet("Comedy", "Action"), 1},
		{"one of three", catalog.NewLabelSet("Action", "Comedy"), catalog.NewLabelSet("Comedy", "Drama"), 1.0 / 3.0},
		{"disjoint", catalog.NewLabelSet("Action"), catalog.NewLabelSet("Drama"), 0},
		{"subset", catalog.NewLabelSet("Action"), catalog.NewLabelSet("Action", "Drama", "War", "Crime"), 0.25},
		{"left empty", catalog.LabelSet{}, catalog.NewLabelSet("Drama"), 0},
		{"both empty", catalog.LabelSet{}, catalog.LabelSet{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := (Jaccard{}).Score(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Jaccard(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarity_SymmetricAndBounded(t *testing.T) {
	t.Parallel()

	sets := labelSets()
	items := make([]catalog.Item, len(sets))
	for i, s := range sets {
		items[i] = catalog.Item{Title: string(rune('A' + i)), Labels: s}
	}
	idx := catalog.Build(items)

	measures := []Similarity{Jaccard{}, NewTFIDF(idx)}
	for _, m := range measures {
		for _, a := range sets {
			for _, b := range sets {
				ab, ba := m.Score(a, b), m.Score(b, a)
				if ab != ba {
					t.Errorf("%s not symmetric: (%v,%v) = %v, reverse = %v", m.Name(), a, b, ab, ba)
				}
				if ab < 0 || ab > 1 {
					t.Errorf("%s(%v,%v) = %v, out of [0,1]", m.Name(), a, b, ab)
				}
				if (a.IsEmpty() || b.IsEmpty()) && ab != 0 {
					t.Errorf("%s(%v,%v) = %v, want 0 for empty set", m.Name(), a, b, ab)
				}
			}
			if !a.IsEmpty() {
				if self := m.Score(a, a); math.Abs(self-1) > 1e-12 {
					t.Errorf("%s(%v,%v) = %v, want 1", m.Name(), a, a, self)
				}
			}
		}
	}
}

func TestTFIDF_UnseenLabels(t *testing.T) {
	t.Parallel()

	tf := NewTFIDF(catalog.Build([]catalog.Item{catalog.NewItem("A", "Drama")}))
	a := catalog.NewLabelSet("Drama", "Western")
	b := catalog.NewLabelSet("Western")
	if got := tf.Score(a, b); got <= 0 || got >= 1 {
		t.Errorf("Score with unseen label = %v, want in (0,1)", got)
	}
}

func TestSimilarityByName(t *testing.T) {
	t.Parallel()

	idx := catalog.Build(nil)
	for _, name := range []string{"jaccard", "JACCARD", "tfidf", "TfIdf"} {
		s, err := SimilarityByName(name, idx)
		if err != nil {
			t.Errorf("SimilarityByName(%q) error = %v", name, err)
			continue
		}
		if !IsKnownSimilarity(s.Name()) {
			t.Errorf("SimilarityByName(%q).Name() = %q", name, s.Name())
		}
	}

	_, err := SimilarityByName("cosine", idx)
	if !errors.Is(err, ErrUnknownSimilarity) {
		t.Errorf("SimilarityByName(cosine) error = %v, want ErrUnknownSimilarity", err)
	}
}
