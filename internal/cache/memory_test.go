package cache

import (
	"context"
	"testing"
	"time"

	"mood-movie-recommender/internal/models"
)

func TestKeyLowercasesQuery(t *testing.T) {
	if got := Key("Happy Movies", 8); got != "happy movies::8" {
		t.Fatalf("unexpected key: %q", got)
	}
	if Key("happy movies", 8) != Key("HAPPY MOVIES", 8) {
		t.Fatalf("expected casing variants to share a key")
	}
	if Key("happy movies", 8) == Key("happy movies", 4) {
		t.Fatalf("expected limit to be part of the key")
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	store := NewMemory(time.Minute)
	ctx := context.Background()

	batch := []models.Movie{
		{ID: "1", Title: "Inception", Rating: 8.8},
		{Title: "Dangal", Rating: 8.3},
	}
	store.Set(ctx, Key("happy movies", 8), batch)

	got, ok := store.Get(ctx, Key("happy movies", 8))
	if !ok {
		t.Fatalf("expected hit within TTL")
	}
	if len(got) != 2 || got[0].Title != "Inception" || got[1].Title != "Dangal" {
		t.Fatalf("unexpected batch: %+v", got)
	}

	if _, ok := store.Get(ctx, Key("sad movies", 8)); ok {
		t.Fatalf("expected miss for unknown key")
	}
}

func TestMemoryTTLExpiry(t *testing.T) {
	store := NewMemory(30 * time.Millisecond)
	ctx := context.Background()

	store.Set(ctx, "k1", []models.Movie{{Title: "PK"}})
	if _, ok := store.Get(ctx, "k1"); !ok {
		t.Fatalf("expected hit before expiry")
	}

	time.Sleep(60 * time.Millisecond)
	if _, ok := store.Get(ctx, "k1"); ok {
		t.Fatalf("expected miss after ttl expiry")
	}
}
