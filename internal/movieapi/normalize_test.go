package movieapi

import (
	"encoding/json"
	"strings"
	"testing"
)

func rawItem(t *testing.T, src string) rawMovie {
	t.Helper()
	var r rawMovie
	if err := json.Unmarshal([]byte(src), &r); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return r
}

func TestNormalizePosterPriority(t *testing.T) {
	cases := []struct {
		name string
		item string
		want string
	}{
		{
			"poster_path wins",
			`{"title":"A","poster_path":"/p.jpg","backdrop_path":"/b.jpg","poster_url":"http://x/y.jpg"}`,
			"https://image.tmdb.org/t/p/w500/p.jpg",
		},
		{
			"poster_path gets a slash prefixed",
			`{"title":"A","poster_path":"p.jpg"}`,
			"https://image.tmdb.org/t/p/w500/p.jpg",
		},
		{
			"backdrop_path second",
			`{"title":"A","backdrop_path":"b.jpg"}`,
			"https://image.tmdb.org/t/p/w500/b.jpg",
		},
		{
			"legacy relative treated as CDN path",
			`{"title":"A","poster_url":"/legacy.jpg"}`,
			"https://image.tmdb.org/t/p/w500/legacy.jpg",
		},
		{
			"legacy absolute used verbatim",
			`{"title":"A","image":"https://cdn.example.com/a.jpg"}`,
			"https://cdn.example.com/a.jpg",
		},
		{
			"legacy garbage discarded",
			`{"title":"A","poster":"not-a-url"}`,
			"",
		},
		{
			"first non-empty legacy field is the only one considered",
			`{"title":"A","poster":"garbage","image":"https://cdn.example.com/a.jpg"}`,
			"",
		},
		{
			"no poster fields",
			`{"title":"A"}`,
			"",
		},
	}
	for _, tc := range cases {
		got := normalize([]rawMovie{rawItem(t, tc.item)}, 10)
		if len(got) != 1 {
			t.Fatalf("%s: expected one record", tc.name)
		}
		if got[0].PosterURL != tc.want {
			t.Errorf("%s: poster = %q, want %q", tc.name, got[0].PosterURL, tc.want)
		}
	}
}

func TestNormalizeRating(t *testing.T) {
	cases := []struct {
		item string
		want float64
	}{
		{`{"title":"A","vote_average":7.6543}`, 7.7},
		{`{"title":"A","vote_average":"8.25"}`, 8.3},
		{`{"title":"A","vote_average":"n/a"}`, 0},
		{`{"title":"A"}`, 0},
		{`{"title":"A","vote_average":null}`, 0},
	}
	for _, tc := range cases {
		got := normalize([]rawMovie{rawItem(t, tc.item)}, 10)
		if got[0].Rating != tc.want {
			t.Errorf("rating for %s = %v, want %v", tc.item, got[0].Rating, tc.want)
		}
	}
}

func TestNormalizeOverviewTruncation(t *testing.T) {
	long := strings.Repeat("x", 600)
	got := normalize([]rawMovie{rawItem(t, `{"title":"A","overview":"`+long+`"}`)}, 10)
	if len(got[0].Overview) != 503 || !strings.HasSuffix(got[0].Overview, "...") {
		t.Fatalf("expected 500 chars plus ellipsis, got len %d", len(got[0].Overview))
	}

	got = normalize([]rawMovie{rawItem(t, `{"title":"A"}`)}, 10)
	if got[0].Overview != "No overview available" {
		t.Errorf("expected default overview, got %q", got[0].Overview)
	}
}

func TestNormalizeTitleAndRelease(t *testing.T) {
	got := normalize([]rawMovie{rawItem(t, `{"name":"Named Only","year":2015}`)}, 10)
	if got[0].Title != "Named Only" {
		t.Errorf("expected name fallback for title, got %q", got[0].Title)
	}
	if got[0].ReleaseDate != "2015" {
		t.Errorf("expected year fallback, got %q", got[0].ReleaseDate)
	}

	got = normalize([]rawMovie{rawItem(t, `{"title":"A"}`)}, 10)
	if got[0].ReleaseDate != "Unknown" {
		t.Errorf("expected Unknown release date, got %q", got[0].ReleaseDate)
	}

	got = normalize([]rawMovie{rawItem(t, `{"title":"A","id":42}`)}, 10)
	if got[0].ID != "42" {
		t.Errorf("expected numeric id coerced to string, got %q", got[0].ID)
	}
}

func TestNormalizeRespectsLimit(t *testing.T) {
	items := []rawMovie{
		rawItem(t, `{"title":"A"}`),
		rawItem(t, `{"title":"B"}`),
		rawItem(t, `{"title":"C"}`),
	}
	got := normalize(items, 2)
	if len(got) != 2 || got[0].Title != "A" || got[1].Title != "B" {
		t.Fatalf("expected first two items, got %+v", got)
	}
}
