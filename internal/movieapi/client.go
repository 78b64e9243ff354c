// Package movieapi is the client for the RapidAPI movie search provider.
// It normalizes the provider's heterogeneous response shapes into canonical
// movie records and memoizes successful batches in the result cache.
package movieapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"mood-movie-recommender/internal/cache"
	"mood-movie-recommender/internal/models"
)

const requestTimeout = 15 * time.Second

// Client is the movie search API client.
type Client struct {
	apiKey  string
	host    string
	baseURL string
	store   cache.Store
	http    *http.Client
}

// NewClient creates a new movie search client. Successful batches are
// written through to store.
func NewClient(apiKey, host, baseURL string, store cache.Store) *Client {
	return &Client{
		apiKey:  apiKey,
		host:    host,
		baseURL: baseURL,
		store:   store,
		http: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// searchResponse is the provider's search envelope.
type searchResponse struct {
	Movies []rawMovie `json:"movies"`
}

// rawMovie tolerates the field sets observed across provider responses.
// Numeric-or-string fields are kept raw and coerced during normalization.
type rawMovie struct {
	ID           json.RawMessage `json:"id"`
	Title        string          `json:"title"`
	Name         string          `json:"name"`
	Overview     string          `json:"overview"`
	VoteAverage  json.RawMessage `json:"vote_average"`
	PosterPath   string          `json:"poster_path"`
	BackdropPath string          `json:"backdrop_path"`
	PosterURL    string          `json:"poster_url"`
	Poster       string          `json:"poster"`
	Image        string          `json:"image"`
	ReleaseDate  string          `json:"release_date"`
	Year         json.RawMessage `json:"year"`
}

// Search returns up to limit normalized movies for the query. Failures come
// back as a classified *APIError; there is no retry here because the caller
// retries across different queries, not the same one.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]models.Movie, error) {
	key := cache.Key(query, limit)
	if batch, ok := c.store.Get(ctx, key); ok {
		slog.Debug("search cache hit", "query", query, "limit", limit)
		return batch, nil
	}

	u := fmt.Sprintf("%s/search?q=%s", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &APIError{Kind: ErrUpstream, Err: err}
	}
	req.Header.Set("x-rapidapi-host", c.host)
	req.Header.Set("x-rapidapi-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		kind := ErrUpstream
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			kind = ErrTimeout
		}
		return nil, &APIError{Kind: kind, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &APIError{
			Kind:   ErrRateLimited,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("provider rate limit for query %q", query),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &APIError{
			Kind:   ErrUpstream,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &APIError{Kind: ErrMalformed, Err: fmt.Errorf("failed to decode search response: %w", err)}
	}

	movies := normalize(result.Movies, limit)
	c.store.Set(ctx, key, movies)
	return movies, nil
}
