package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"mood-movie-recommender/internal/models"
)

const redisKeyPrefix = "search:"

// Redis is a cache backend shared across instances. Reads and writes are
// best-effort: any Redis failure is treated as a miss or a dropped write,
// never an error for the caller.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis creates a Redis-backed cache with the given TTL.
func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

// Get returns the cached batch for key, or false if absent, expired, or
// Redis is unavailable.
func (r *Redis) Get(ctx context.Context, key string) ([]models.Movie, bool) {
	val, err := r.rdb.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		return nil, false
	}
	var batch []models.Movie
	if err := json.Unmarshal([]byte(val), &batch); err != nil {
		return nil, false
	}
	return batch, true
}

// Set stores the batch under key with the configured TTL.
func (r *Redis) Set(ctx context.Context, key string, batch []models.Movie) {
	data, err := json.Marshal(batch)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, redisKeyPrefix+key, data, r.ttl).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}
