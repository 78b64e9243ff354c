package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strings"

	"mood-movie-recommender/internal/catalog"
	"mood-movie-recommender/internal/models"
	"mood-movie-recommender/internal/mood"
	"mood-movie-recommender/internal/movieapi"
	"mood-movie-recommender/internal/planner"
)

const (
	// targetCount is the desired result-set size. Live search stops early
	// once it is reached; the fallback catalog tops up shortfalls.
	targetCount = 8

	// minPerQuery is the smallest batch worth asking the provider for.
	minPerQuery = 4
)

// ErrEmptyInput is returned when the request carries no mood text.
var ErrEmptyInput = errors.New("please enter how you are feeling")

// ErrNoRecommendations is returned when both live search and the curated
// fallback produce nothing. Callers should present it as retryable.
var ErrNoRecommendations = errors.New("no movies found, please try again")

// Searcher issues one provider search. *movieapi.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]models.Movie, error)
}

// RecommendationService drives the full pipeline: classify mood, plan
// queries, fetch sequentially with early exit, dedup, score, and top up
// from the curated catalog.
type RecommendationService struct {
	classifier *mood.Classifier
	planner    *planner.Planner
	searcher   Searcher
	target     int
	shuffle    func(n int, swap func(i, j int))
}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService(classifier *mood.Classifier, p *planner.Planner, searcher Searcher) *RecommendationService {
	return &RecommendationService{
		classifier: classifier,
		planner:    p,
		searcher:   searcher,
		target:     targetCount,
		shuffle:    rand.Shuffle,
	}
}

// Recommend turns free-text mood input into a ranked, deduplicated movie
// list of the target size, falling back to curated data when live search
// underperforms.
func (s *RecommendationService) Recommend(ctx context.Context, req models.RecommendRequest) (*models.RecommendResponse, error) {
	text := strings.TrimSpace(req.MoodText)
	if text == "" {
		return nil, ErrEmptyInput
	}
	req.Validate(s.target)
	pref := models.ParsePreference(strings.ToLower(req.Preference))

	detected := s.classifier.Classify(text, req.Emoji)
	queries := s.planner.Plan(detected, text, pref)

	// Fetch queries in order until the pool is large enough. Failures only
	// slow the pool's growth; the next query may still succeed.
	var pool []models.Movie
	var used []string
	for _, q := range queries {
		if len(pool) >= s.target {
			break
		}
		want := s.target - len(pool)
		if want < minPerQuery {
			want = minPerQuery
		}
		batch, err := s.searcher.Search(ctx, q, want)
		if err != nil {
			var apiErr *movieapi.APIError
			if errors.As(err, &apiErr) && apiErr.Kind == movieapi.ErrRateLimited {
				slog.Warn("provider rate limited, moving to next query", "query", q)
			} else {
				slog.Warn("search failed", "query", q, "error", err)
			}
			continue
		}
		if len(batch) == 0 {
			slog.Debug("query returned no movies", "query", q)
			continue
		}
		pool = append(pool, batch...)
		used = append(used, q)
		slog.Info("query returned movies", "query", q, "count", len(batch))
	}

	movies := dedupe(pool)
	sortByScore(movies, detected)
	if len(movies) > s.target {
		movies = movies[:s.target]
	}

	usedFallback := false
	if len(movies) < s.target {
		added := s.topUp(&movies, detected)
		usedFallback = true
		slog.Info("topped up from fallback catalog", "mood", detected, "added", added)
	}
	if len(movies) == 0 {
		return nil, ErrNoRecommendations
	}

	return &models.RecommendResponse{
		Mood:        detected,
		Emoji:       detected.Emoji(),
		Movies:      movies,
		TotalMovies: len(movies),
		Preference:  pref,
		Queries:     used,
		Fallback:    usedFallback,
	}, nil
}

// dedupe collapses the pool by dedup key, first occurrence wins. Records
// without id or title are dropped.
func dedupe(pool []models.Movie) []models.Movie {
	seen := make(map[string]bool, len(pool))
	unique := make([]models.Movie, 0, len(pool))
	for _, m := range pool {
		key := m.DedupKey()
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, m)
	}
	return unique
}

// sortByScore orders movies by rating plus mood bias, descending. The sort
// must be stable: equal scores keep their pre-sort relative order so that
// identical inputs always produce identical output.
func sortByScore(movies []models.Movie, m models.Mood) {
	bias := moodBias(m)
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].Rating+bias > movies[j].Rating+bias
	})
}

// moodBias nudges upbeat and high-energy moods toward higher-rated picks.
func moodBias(m models.Mood) float64 {
	switch {
	case m == models.MoodHappy || m == models.MoodRomantic:
		return 0.3
	case m.Energetic():
		return 0.2
	default:
		return 0
	}
}

// topUp appends shuffled curated picks for the mood, skipping dedup-key
// collisions, until the target size is reached or the catalog runs out.
// Returns the number of records added.
func (s *RecommendationService) topUp(movies *[]models.Movie, m models.Mood) int {
	fallback := catalog.ForMood(m)
	s.shuffle(len(fallback), func(i, j int) {
		fallback[i], fallback[j] = fallback[j], fallback[i]
	})

	existing := make(map[string]bool, len(*movies))
	for _, mv := range *movies {
		existing[mv.DedupKey()] = true
	}

	added := 0
	for _, fb := range fallback {
		if len(*movies) >= s.target {
			break
		}
		key := fb.DedupKey()
		if key == "" || existing[key] {
			continue
		}
		existing[key] = true
		*movies = append(*movies, fb)
		added++
	}
	return added
}
