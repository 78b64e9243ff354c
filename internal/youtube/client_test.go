package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFindTrailer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "RRR official trailer 2022" {
			t.Errorf("unexpected query: %q", got)
		}
		if r.URL.Query().Get("maxResults") != "1" {
			t.Errorf("expected maxResults=1")
		}
		w.Write([]byte(`{"items":[{"id":{"videoId":"abc123"}}]}`))
	}))
	defer srv.Close()

	c := NewClient("k", "h", srv.URL)
	id, err := c.FindTrailer(context.Background(), "RRR", "2022")
	if err != nil {
		t.Fatalf("find trailer: %v", err)
	}
	if id != "abc123" {
		t.Fatalf("expected abc123, got %q", id)
	}
}

func TestFindTrailerNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	c := NewClient("k", "h", srv.URL)
	id, err := c.FindTrailer(context.Background(), "Obscure Film", "")
	if err != nil {
		t.Fatalf("find trailer: %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty id, got %q", id)
	}
}

func TestFindTrailerUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("k", "h", srv.URL)
	if _, err := c.FindTrailer(context.Background(), "RRR", "2022"); err == nil {
		t.Fatalf("expected error on non-200")
	}
}

func TestFindTrailerTrimsEmptyYear(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Sholay official trailer" {
			t.Errorf("expected trimmed query, got %q", got)
		}
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	c := NewClient("k", "h", srv.URL)
	if _, err := c.FindTrailer(context.Background(), "Sholay", ""); err != nil {
		t.Fatalf("find trailer: %v", err)
	}
}
