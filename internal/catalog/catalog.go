// Package catalog holds the curated fallback movie lists used when live
// search comes up short.
package catalog

import "mood-movie-recommender/internal/models"

// Up to this many picks are composed per mood: the mood list first, then
// the general pool.
const maxPicks = 12

// ForMood returns the curated picks for a mood, deduplicated by dedup key.
// An unknown mood falls back to the happy list. The returned slice is a
// fresh copy; callers may reorder it freely.
func ForMood(mood models.Mood) []models.Movie {
	list, ok := moodLists[mood]
	if !ok {
		list = moodLists[models.MoodHappy]
	}

	picks := make([]models.Movie, 0, maxPicks)
	seen := make(map[string]bool, maxPicks)
	for _, source := range [][]models.Movie{list, generalPool} {
		for _, m := range source {
			key := m.DedupKey()
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			picks = append(picks, m)
			if len(picks) >= maxPicks {
				return picks
			}
		}
	}
	return picks
}
