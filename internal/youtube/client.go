// Package youtube looks up movie trailers through the RapidAPI YouTube
// search endpoint. Lookups are best-effort: callers treat any failure as
// "no trailer found".
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const requestTimeout = 15 * time.Second

// Client is the YouTube search API client.
type Client struct {
	apiKey    string
	host      string
	searchURL string
	http      *http.Client
}

// NewClient creates a new YouTube search client.
func NewClient(apiKey, host, searchURL string) *Client {
	return &Client{
		apiKey:    apiKey,
		host:      host,
		searchURL: searchURL,
		http: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

// FindTrailer returns the first matching trailer video ID for a title, or
// an empty string when nothing matched.
func (c *Client) FindTrailer(ctx context.Context, title, year string) (string, error) {
	query := strings.TrimSpace(fmt.Sprintf("%s official trailer %s", title, year))

	params := url.Values{}
	params.Set("q", query)
	params.Set("part", "id,snippet")
	params.Set("type", "video")
	params.Set("maxResults", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("x-rapidapi-host", c.host)
	req.Header.Set("x-rapidapi-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("trailer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("trailer search returned status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode trailer response: %w", err)
	}
	if len(result.Items) == 0 {
		return "", nil
	}
	return result.Items[0].ID.VideoID, nil
}
