package corpus_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"uni_advisor/internal/corpus"
	"uni_advisor/internal/domain"
)

const mixed = `{"all": [
  {"university": "Hull University", "reviews": [
    {"review": "Great lecturers", "rating": 9},
    {"review": "Tiny rooms", "rating": 3}
  ]},
  {"university": "Flat College", "review": "Nice place", "rating": 8},
  {"university": "hull university  ", "reviews": [{"review": "Friendly city", "rating": "7,5"}]},
  {"entity": "Entity Tech", "reviews": []},
  {"review": "orphan text"}
]}`

func decode(t *testing.T, doc string) *corpus.Index {
	t.Helper()
	idx, err := corpus.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	return idx
}

func TestReviewsFor_CaseAndWhitespaceInsensitive(t *testing.T) {
	idx := decode(t, mixed)

	want := []string{"Great lecturers", "Tiny rooms", "Friendly city"}
	require.Equal(t, want, idx.ReviewsFor("Hull University"))
	require.Equal(t, want, idx.ReviewsFor("  hull University "))

	name, ok := idx.CanonicalName("HULL UNIVERSITY")
	require.True(t, ok)
	require.Equal(t, "Hull University", name)
}

func TestReviewsFor_FlatRecordsNeverMatch(t *testing.T) {
	idx := decode(t, mixed)
	require.Empty(t, idx.ReviewsFor("Flat College"))
	require.Empty(t, idx.ReviewsFor("Nonexistent U"))
	require.Empty(t, idx.ReviewsFor("Entity Tech"))
}

// HasEntity and ReviewsFor are deliberately independent predicates.
func TestHasEntity_DisagreesWithReviewsFor(t *testing.T) {
	idx := decode(t, mixed)

	// exists exactly, has reviews
	require.True(t, idx.HasEntity("Hull University"))
	// folded lookup finds reviews but exact check fails
	require.False(t, idx.HasEntity("  hull University "))
	require.NotEmpty(t, idx.ReviewsFor("  hull University "))
	// flat record: exists but yields no reviews
	require.True(t, idx.HasEntity("Flat College"))
	require.Empty(t, idx.ReviewsFor("Flat College"))
	// the "entity" key counts too
	require.True(t, idx.HasEntity("Entity Tech"))
}

func TestCanonicalReviewList(t *testing.T) {
	idx := decode(t, mixed)
	rs := idx.Reviews()
	require.Len(t, rs, 5)
	require.Equal(t, "Great lecturers", rs[0].Text)
	require.Equal(t, 9.0, rs[0].RatingOrZero())
	require.Equal(t, "Nice place", rs[2].Text)
	require.Equal(t, "Flat College", rs[2].Entity)
	require.Equal(t, 7.5, rs[3].RatingOrZero())
	require.Equal(t, "orphan text", rs[4].Text)
	require.Nil(t, rs[4].Rating)
	require.Equal(t, 0.0, rs[4].RatingOrZero())
	require.Equal(t, 5, idx.Len())
	require.Equal(t, 2, idx.Entities())
}

func TestGroupReviews_FirstExactMatch(t *testing.T) {
	idx := decode(t, mixed)
	require.Len(t, idx.GroupReviews("Hull University"), 2)
	require.Nil(t, idx.GroupReviews("hull university"))
	require.Nil(t, idx.GroupReviews("Flat College"))
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":         `{"all": [`,
		"missing all":      `{"items": []}`,
		"reviews not list": `{"all": [{"university": "X", "reviews": "nope"}]}`,
		"nested no text":   `{"all": [{"university": "X", "reviews": [{"rating": 3}]}]}`,
		"entity not text":  `{"all": [{"university": 12, "review": "x"}]}`,
		"record not obj":   `{"all": [null]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := corpus.Decode(strings.NewReader(doc))
			require.Error(t, err)
			require.True(t, errors.Is(err, domain.ErrDataLoad), "got %v", err)
		})
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "reviews.json")
	require.NoError(t, os.WriteFile(p, []byte(mixed), 0o600))

	idx, err := corpus.Load(p)
	require.NoError(t, err)
	require.Equal(t, 5, idx.Len())

	_, err = corpus.Load(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, domain.ErrDataLoad)
}
