package movieapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"mood-movie-recommender/internal/cache"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient("test-key", "test-host", srv.URL, cache.NewMemory(time.Minute)), &calls
}

func TestSearchNormalizesAndCaches(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "happy movies" {
			t.Errorf("unexpected query param: %q", r.URL.Query().Get("q"))
		}
		if r.Header.Get("x-rapidapi-key") != "test-key" || r.Header.Get("x-rapidapi-host") != "test-host" {
			t.Errorf("missing rapidapi headers")
		}
		w.Write([]byte(`{"movies":[
			{"id":1,"title":"3 Idiots","vote_average":8.4,"poster_path":"/a.jpg","release_date":"2009-12-25"},
			{"name":"PK","vote_average":"8.0","year":2014}
		]}`))
	})

	ctx := context.Background()
	got, err := c.Search(ctx, "happy movies", 8)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(got))
	}
	if got[0].ID != "1" || got[0].Rating != 8.4 || got[0].PosterURL != "https://image.tmdb.org/t/p/w500/a.jpg" {
		t.Errorf("unexpected first record: %+v", got[0])
	}
	if got[1].Title != "PK" || got[1].ReleaseDate != "2014" {
		t.Errorf("unexpected second record: %+v", got[1])
	}

	// Identical request within TTL must come from cache, not the provider.
	again, err := c.Search(ctx, "HAPPY MOVIES", 8)
	if err != nil {
		t.Fatalf("cached search: %v", err)
	}
	if len(again) != 2 {
		t.Fatalf("expected cached batch of 2, got %d", len(again))
	}
	if calls.Load() != 1 {
		t.Fatalf("expected one upstream call, got %d", calls.Load())
	}
}

func TestSearchRateLimited(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Search(context.Background(), "sad movies", 4)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != ErrRateLimited {
		t.Fatalf("expected rate_limited error, got %v", err)
	}
	if apiErr.Status != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", apiErr.Status)
	}
}

func TestSearchUpstreamStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := c.Search(context.Background(), "sad movies", 4)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != ErrUpstream {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestSearchMalformedBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"movies": [`))
	})

	_, err := c.Search(context.Background(), "sad movies", 4)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != ErrMalformed {
		t.Fatalf("expected malformed error, got %v", err)
	}
}

func TestSearchFailureNotCached(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"movies":[{"title":"Drishyam"}]}`))
	})

	ctx := context.Background()
	if _, err := c.Search(ctx, "bored movies", 4); err == nil {
		t.Fatalf("expected error on first call")
	}

	fail.Store(false)
	got, err := c.Search(ctx, "bored movies", 4)
	if err != nil {
		t.Fatalf("second search: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Drishyam" {
		t.Fatalf("unexpected batch: %+v", got)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected two upstream calls, got %d", calls.Load())
	}
}
