package models

// Mood is one of the fixed emotional categories driving query generation
// and fallback selection.
type Mood string

const (
	MoodHappy       Mood = "happy"
	MoodSad         Mood = "sad"
	MoodAngry       Mood = "angry"
	MoodRelaxed     Mood = "relaxed"
	MoodBored       Mood = "bored"
	MoodExcited     Mood = "excited"
	MoodRomantic    Mood = "romantic"
	MoodScared      Mood = "scared"
	MoodNostalgic   Mood = "nostalgic"
	MoodAdventurous Mood = "adventurous"
)

// AllMoods lists every mood category in a stable order.
var AllMoods = []Mood{
	MoodHappy, MoodSad, MoodAngry, MoodRelaxed, MoodBored,
	MoodExcited, MoodRomantic, MoodScared, MoodNostalgic, MoodAdventurous,
}

var moodEmojis = map[Mood]string{
	MoodHappy:       "😊",
	MoodSad:         "😢",
	MoodAngry:       "😠",
	MoodRelaxed:     "😌",
	MoodBored:       "😴",
	MoodExcited:     "🤩",
	MoodRomantic:    "💕",
	MoodScared:      "😨",
	MoodNostalgic:   "😌",
	MoodAdventurous: "🏃‍♂️",
}

// EmojiToMood maps the emoji picker values to moods. A match here overrides
// sentiment analysis entirely.
var EmojiToMood = map[string]Mood{
	"😊":  MoodHappy,
	"😢":  MoodSad,
	"😠":  MoodAngry,
	"😌":  MoodRelaxed,
	"😴":  MoodBored,
	"🤩":  MoodExcited,
	"💕":  MoodRomantic,
	"😨":  MoodScared,
	"🕵️": MoodBored,
	"🚀":  MoodAdventurous,
}

// Per-mood search phrases with a regional flavor, reported alongside
// recommendations and in the moods listing.
var moodSearchPhrases = map[Mood]string{
	MoodHappy:       "happy comedy movies bollywood",
	MoodSad:         "sad drama movies indian",
	MoodAngry:       "action thriller movies bollywood",
	MoodRelaxed:     "calm relaxing movies indian",
	MoodBored:       "exciting adventure movies bollywood",
	MoodExcited:     "action adventure movies indian",
	MoodRomantic:    "romantic movies bollywood",
	MoodScared:      "horror thriller movies indian",
	MoodNostalgic:   "classic vintage movies bollywood",
	MoodAdventurous: "adventure action movies indian",
}

// Emoji returns the display emoji for the mood, defaulting to the happy one.
func (m Mood) Emoji() string {
	if e, ok := moodEmojis[m]; ok {
		return e
	}
	return moodEmojis[MoodHappy]
}

// SearchPhrase returns the curated search phrase for the mood.
func (m Mood) SearchPhrase() string {
	if p, ok := moodSearchPhrases[m]; ok {
		return p
	}
	return moodSearchPhrases[MoodHappy]
}

// Energetic reports whether the mood belongs to the high-energy subset that
// steers query qualifiers and scoring toward action titles.
func (m Mood) Energetic() bool {
	return m == MoodAngry || m == MoodExcited || m == MoodAdventurous
}
