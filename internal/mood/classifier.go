// Package mood maps free-text input to a mood category using VADER
// sentiment polarity, with an emoji override table taking precedence.
package mood

import (
	"strings"

	"github.com/jonreiter/govader"

	"mood-movie-recommender/internal/models"
)

// Classifier scores text sentiment and maps it to a mood. It is stateless
// after construction and safe for concurrent use.
type Classifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewClassifier creates a Classifier with the built-in VADER lexicon.
func NewClassifier() *Classifier {
	return &Classifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Classify returns the mood for the given text. A recognized emoji override
// wins outright and skips sentiment analysis; that is the only path to the
// angry, romantic, scared, nostalgic and adventurous moods.
func (c *Classifier) Classify(text, emoji string) models.Mood {
	if m, ok := models.EmojiToMood[strings.TrimSpace(emoji)]; ok {
		return m
	}
	return moodForPolarity(c.analyzer.PolarityScores(text).Compound)
}

// moodForPolarity maps a compound polarity in [-1, 1] to a mood, first match
// wins. The thresholds intentionally reach only five of the ten moods from
// text; widening them would change user-visible behavior.
func moodForPolarity(polarity float64) models.Mood {
	switch {
	case polarity > 0.3:
		return models.MoodHappy
	case polarity > 0.1:
		return models.MoodExcited
	case polarity > -0.1:
		return models.MoodRelaxed
	case polarity > -0.3:
		return models.MoodBored
	default:
		return models.MoodSad
	}
}
