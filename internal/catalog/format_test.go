// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const movieLensSample = `movieId,title,genres
1,Toy Story (1995),Adventure|Animation|Children|Comedy|Fantasy
2,Jumanji (1995),Adventure|Children|Fantasy
6,Heat (1995),Action|Crime|Thriller
11,"American President, The (1995)",Comedy|Drama|Romance
99,broken row
182,<b>Markup</b> &amp; Co (2001),Drama
183,No Genres (2002),(no genres listed)
`

func TestDecodeCSV_MovieLens(t *testing.T) {
	t.Parallel()

	items, err := DecodeCSV(strings.NewReader(movieLensSample), DefaultLoadOptions())
	require.NoError(t, err)
	require.Len(t, items, 6)

	assert.Equal(t, "Toy Story (1995)", items[0].Title)
	assert.Equal(t, []string{"Adventure", "Animation", "Children", "Comedy", "Fantasy"}, items[0].Labels.Labels())
	assert.Equal(t, "American President, The (1995)", items[3].Title)
	assert.Equal(t, "Markup & Co (2001)", items[4].Title)
	assert.Equal(t, []string{"(no genres listed)"}, items[5].Labels.Labels())
}

func TestDecodeCSV_IgnoredLabels(t *testing.T) {
	t.Parallel()

	opts := DefaultLoadOptions()
	opts.IgnoredLabels = []string{"(no genres listed)"}

	items, err := DecodeCSV(strings.NewReader(movieLensSample), opts)
	require.NoError(t, err)
	assert.True(t, items[5].Labels.IsEmpty())
}

func TestDecodeCSV_WithoutSanitize(t *testing.T) {
	t.Parallel()

	opts := DefaultLoadOptions()
	opts.Sanitize = false

	items, err := DecodeCSV(strings.NewReader(movieLensSample), opts)
	require.NoError(t, err)
	assert.Equal(t, "<b>Markup</b> &amp; Co (2001)", items[4].Title)
}

func TestDecodeCSV_CustomColumns(t *testing.T) {
	t.Parallel()

	data := "Name;Tags\n"
	_, err := DecodeCSV(strings.NewReader(data), DefaultLoadOptions())
	require.ErrorIs(t, err, ErrMissingColumn)

	data = "\ufeffNAME,Tags,year\nHeat,Action/Crime,1995\n"
	opts := LoadOptions{TitleColumn: "name", LabelsColumn: "tags", Separator: "/"}
	items, err := DecodeCSV(strings.NewReader(data), opts)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Heat", items[0].Title)
	assert.Equal(t, []string{"Action", "Crime"}, items[0].Labels.Labels())
}

func TestDecodeCSV_Empty(t *testing.T) {
	t.Parallel()

	items, err := DecodeCSV(strings.NewReader(""), DefaultLoadOptions())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	data := `[
		{"title": "Heat (1995)", "genres": "Action|Crime|Thriller"},
		{"title": "Casino (1995)", "labels": ["Crime", " Drama "]},
		{"title": "", "genres": "Drama"}
	]`

	items, err := DecodeJSON(strings.NewReader(data), DefaultLoadOptions())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"Action", "Crime", "Thriller"}, items[0].Labels.Labels())
	assert.Equal(t, []string{"Crime", "Drama"}, items[1].Labels.Labels())

	// Empty titles are left for Build to skip.
	assert.Equal(t, 2, Build(items).Len())
}

func TestDecodeJSON_Invalid(t *testing.T) {
	t.Parallel()

	_, err := DecodeJSON(strings.NewReader(`{"title": "not an array"}`), DefaultLoadOptions())
	require.Error(t, err)
}

func TestEncodeJSON_RoundTripsThroughDecode(t *testing.T) {
	t.Parallel()

	in := []Item{
		NewItem("Heat (1995)", "Thriller", "Action"),
		NewItem("Tom & Jerry (1992)", "Animation"),
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, in, ""))
	assert.Contains(t, buf.String(), `"genres":"Action|Thriller"`)
	assert.Contains(t, buf.String(), `Tom & Jerry`)

	out, err := DecodeJSON(&buf, DefaultLoadOptions())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, in[1].Title, out[1].Title)
	assert.Equal(t, in[0].Labels.Labels(), out[0].Labels.Labels())
}

func TestFormatInference(t *testing.T) {
	t.Parallel()

	f, err := FormatFromPath("/data/movies.CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = FormatFromPath("https://example.com/catalog.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = FormatFromPath("movies.xlsx")
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	f, err = FormatFromContentType("text/csv; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = FormatFromContentType("text/html")
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	f, err = ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("yaml")
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Decode(strings.NewReader(""), Format("xml"), DefaultLoadOptions())
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSanitizer(t *testing.T) {
	t.Parallel()

	s := NewSanitizer()
	assert.Equal(t, "Heat", s.Clean("  Heat "))
	assert.Equal(t, "Alert", s.Clean(`<script>x()</script>Alert`))
	assert.Equal(t, "Tom & Jerry", s.Clean("Tom &amp; Jerry"))
	assert.Equal(t, "Tom & Jerry", s.Clean("Tom & Jerry"))

	var nilSanitizer *Sanitizer
	assert.Equal(t, "<i>x</i>", nilSanitizer.Clean(" <i>x</i> "))
}
