package movieapi

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"mood-movie-recommender/internal/models"
)

const (
	imageBaseURL       = "https://image.tmdb.org/t/p/w500"
	maxOverviewLen     = 500
	missingOverview    = "No overview available"
	unknownReleaseDate = "Unknown"
)

// normalize converts at most limit raw provider items into canonical movie
// records, applying documented defaults for missing or malformed fields.
func normalize(raw []rawMovie, limit int) []models.Movie {
	if limit > 0 && len(raw) > limit {
		raw = raw[:limit]
	}
	movies := make([]models.Movie, 0, len(raw))
	for _, r := range raw {
		title := r.Title
		if title == "" {
			title = r.Name
		}

		overview := r.Overview
		if overview == "" {
			overview = missingOverview
		}
		if runes := []rune(overview); len(runes) > maxOverviewLen {
			overview = string(runes[:maxOverviewLen]) + "..."
		}

		release := r.ReleaseDate
		if release == "" {
			release = rawString(r.Year)
		}
		if release == "" {
			release = unknownReleaseDate
		}

		movies = append(movies, models.Movie{
			ID:          rawString(r.ID),
			Title:       title,
			Overview:    overview,
			Rating:      math.Round(rawFloat(r.VoteAverage)*10) / 10,
			PosterURL:   resolvePoster(r),
			ReleaseDate: release,
		})
	}
	return movies
}

// resolvePoster picks a poster URL by priority: poster_path, backdrop_path,
// then the first non-empty legacy field (poster_url, poster, image). Legacy
// values are CDN-relative when they start with "/", absolute when they start
// with "http", and discarded otherwise.
func resolvePoster(r rawMovie) string {
	if r.PosterPath != "" {
		return imageBaseURL + leadingSlash(r.PosterPath)
	}
	if r.BackdropPath != "" {
		return imageBaseURL + leadingSlash(r.BackdropPath)
	}

	var legacy string
	for _, candidate := range []string{r.PosterURL, r.Poster, r.Image} {
		if candidate != "" {
			legacy = candidate
			break
		}
	}
	switch {
	case strings.HasPrefix(legacy, "/"):
		return imageBaseURL + legacy
	case strings.HasPrefix(legacy, "http"):
		return legacy
	default:
		return ""
	}
}

func leadingSlash(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}

// rawString coerces a raw JSON scalar (string or number) into a string.
func rawString(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return s
}

// rawFloat coerces a raw JSON scalar (number or numeric string) into a
// float, defaulting to 0 on anything unparsable.
func rawFloat(raw []byte) float64 {
	s := rawString(raw)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
