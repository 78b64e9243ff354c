// Package cache provides the search-result cache used by the provider
// client. Entries are keyed by (query, limit) and expire after a fixed TTL.
// Implementations must be safe for concurrent use.
package cache

import (
	"context"
	"strconv"
	"strings"

	"mood-movie-recommender/internal/models"
)

// Store is the cache contract. Get returns false on a miss, including
// entries that have outlived the TTL.
type Store interface {
	Get(ctx context.Context, key string) ([]models.Movie, bool)
	Set(ctx context.Context, key string, batch []models.Movie)
}

// Key builds the cache key for a search query and requested limit. The
// query is lower-cased so that casing variants share an entry.
func Key(query string, limit int) string {
	return strings.ToLower(query) + "::" + strconv.Itoa(limit)
}
