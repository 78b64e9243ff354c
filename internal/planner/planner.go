// Package planner turns a mood, the user's raw text and a source preference
// into an ordered list of candidate search queries.
package planner

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"mood-movie-recommender/internal/models"
)

// Short user text gets spliced into extra queries; anything longer is too
// noisy to search on.
const maxSpliceTokens = 4

// Planner builds candidate query lists. The shuffle source is injectable so
// tests can pin the order while production keeps true randomization.
type Planner struct {
	shuffle func(n int, swap func(i, j int))
}

// New creates a Planner backed by the process-wide random source.
func New() *Planner {
	return &Planner{shuffle: rand.Shuffle}
}

// NewWithRand creates a Planner with a seedable random source. The caller
// must not share r across goroutines.
func NewWithRand(r *rand.Rand) *Planner {
	return &Planner{shuffle: r.Shuffle}
}

// Plan returns the candidate queries for one recommendation request. The
// list is shuffled once so repeated requests with the same mood do not keep
// hitting the provider in the same order; callers must treat it as a set.
func (p *Planner) Plan(mood models.Mood, userText string, pref models.Preference) []string {
	var queries []string

	if pref == models.PreferenceMixed || pref == models.PreferenceForeign {
		queries = append(queries, fmt.Sprintf("%s movies", mood))
		if mood == models.MoodHappy {
			queries = append(queries, fmt.Sprintf("%s comedy movies", mood))
		} else {
			queries = append(queries, fmt.Sprintf("%s drama movies", mood))
		}
		if mood.Energetic() {
			queries = append(queries, fmt.Sprintf("%s action movies", mood))
		} else {
			queries = append(queries, fmt.Sprintf("%s romantic movies", mood))
		}
	}

	if pref == models.PreferenceMixed || pref == models.PreferenceLocal {
		queries = append(queries, fmt.Sprintf("%s bollywood movies", mood))
		if mood.Energetic() {
			queries = append(queries, fmt.Sprintf("%s bollywood action movies", mood))
		} else {
			queries = append(queries, fmt.Sprintf("%s bollywood romantic movies", mood))
		}
	}

	if text := strings.TrimSpace(userText); text != "" && len(strings.Fields(text)) <= maxSpliceTokens {
		lower := strings.ToLower(text)
		if pref == models.PreferenceMixed || pref == models.PreferenceForeign {
			queries = append(queries, fmt.Sprintf("%s movies %s", mood, lower))
		}
		if pref == models.PreferenceMixed || pref == models.PreferenceLocal {
			queries = append(queries, fmt.Sprintf("%s bollywood %s", mood, lower))
		}
	}

	p.shuffle(len(queries), func(i, j int) {
		queries[i], queries[j] = queries[j], queries[i]
	})
	return queries
}
