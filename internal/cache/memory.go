package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"mood-movie-recommender/internal/models"
)

// Memory is the default in-process cache backend. It has no capacity bound
// (size 0 disables LRU eviction); entries only leave via TTL expiry.
type Memory struct {
	lru *expirable.LRU[string, []models.Movie]
}

// NewMemory creates an in-process cache whose entries expire after ttl.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		lru: expirable.NewLRU[string, []models.Movie](0, nil, ttl),
	}
}

// Get returns the cached batch for key, or false if absent or expired.
func (m *Memory) Get(_ context.Context, key string) ([]models.Movie, bool) {
	return m.lru.Get(key)
}

// Set stores the batch under key, resetting its TTL.
func (m *Memory) Set(_ context.Context, key string, batch []models.Movie) {
	m.lru.Add(key, batch)
}
