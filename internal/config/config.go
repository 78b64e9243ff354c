package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the recommender service.
type Config struct {
	RapidAPI  RapidAPIConfig
	Redis     RedisConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Port      string
}

// RapidAPIConfig holds credentials and hosts for the RapidAPI providers.
// The key is never hardcoded; an empty key still starts the service, which
// then serves fallback recommendations only.
type RapidAPIConfig struct {
	Key              string
	MovieHost        string
	MovieBaseURL     string
	YouTubeHost      string
	YouTubeSearchURL string
}

// RedisConfig holds Redis configuration. Redis is optional; when it is
// unreachable the service falls back to the in-process cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CacheConfig holds search-result cache settings.
type CacheConfig struct {
	TTL time.Duration
}

// RateLimitConfig holds API rate limiting settings.
type RateLimitConfig struct {
	MaxRequests int
	WindowSec   int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "6h"))
	if err != nil {
		cacheTTL = 6 * time.Hour
	}
	maxReqs, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX", "60"))
	windowSec, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SEC", "60"))

	cfg := &Config{
		RapidAPI: RapidAPIConfig{
			Key:              getEnv("RAPIDAPI_KEY", ""),
			MovieHost:        getEnv("RAPIDAPI_MOVIE_HOST", "ai-movie-recommender.p.rapidapi.com"),
			MovieBaseURL:     getEnv("RAPIDAPI_MOVIE_BASE_URL", "https://ai-movie-recommender.p.rapidapi.com/api"),
			YouTubeHost:      getEnv("RAPIDAPI_YOUTUBE_HOST", "youtube-v31.p.rapidapi.com"),
			YouTubeSearchURL: getEnv("RAPIDAPI_YOUTUBE_SEARCH_URL", "https://youtube-v31.p.rapidapi.com/search"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Cache: CacheConfig{
			TTL: cacheTTL,
		},
		RateLimit: RateLimitConfig{
			MaxRequests: maxReqs,
			WindowSec:   windowSec,
		},
		Port: getEnv("SERVER_PORT", "8080"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
