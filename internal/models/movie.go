package models

// Movie is the canonical movie record returned to clients, regardless of
// where it came from (live search or the curated catalog).
type Movie struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	Rating      float64 `json:"rating"`
	PosterURL   string  `json:"poster_url,omitempty"`
	ReleaseDate string  `json:"release_date"`
}

// DedupKey identifies a movie for deduplication: the provider ID when
// present, otherwise the title. An empty key means the record carries
// neither and is unusable.
func (m Movie) DedupKey() string {
	if m.ID != "" {
		return m.ID
	}
	return m.Title
}

// Preference narrows which query variants the planner generates.
type Preference string

const (
	PreferenceMixed   Preference = "mixed"
	PreferenceLocal   Preference = "local"
	PreferenceForeign Preference = "foreign"
)

// ParsePreference normalizes a raw preference value, defaulting to mixed.
func ParsePreference(s string) Preference {
	switch Preference(s) {
	case PreferenceLocal, PreferenceForeign:
		return Preference(s)
	default:
		return PreferenceMixed
	}
}

// RecommendRequest is the body of POST /recommend.
type RecommendRequest struct {
	MoodText   string `json:"mood_text"`
	Emoji      string `json:"emoji"`
	Preference string `json:"preference"`
	Limit      int    `json:"limit"`
}

// Validate clamps the requested limit to [4, 20] and raises it to at least
// the internal target size. The final result set is still capped by the
// target count; the limit only bounds per-query fetches.
func (r *RecommendRequest) Validate(target int) {
	if r.Limit == 0 {
		r.Limit = 10
	}
	if r.Limit < 4 {
		r.Limit = 4
	}
	if r.Limit > 20 {
		r.Limit = 20
	}
	if r.Limit < target {
		r.Limit = target
	}
}

// RecommendResponse is the body of a successful recommendation.
type RecommendResponse struct {
	Mood        Mood       `json:"mood"`
	Emoji       string     `json:"emoji"`
	Movies      []Movie    `json:"movies"`
	TotalMovies int        `json:"total_movies"`
	Preference  Preference `json:"preference"`
	Queries     []string   `json:"queries,omitempty"`
	Fallback    bool       `json:"fallback,omitempty"`
}

// TrailerResponse is the body of GET /trailer. VideoID is null when no
// trailer could be found.
type TrailerResponse struct {
	VideoID *string `json:"videoId"`
}

// MoodInfo describes one mood category for the moods listing endpoint.
type MoodInfo struct {
	Mood         Mood   `json:"mood"`
	Emoji        string `json:"emoji"`
	SearchPhrase string `json:"search_phrase"`
}
