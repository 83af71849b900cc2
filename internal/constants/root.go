package constants

import "time"

// Mood is one of the seven primary facial-emotion categories tracked per day
type Mood string

// EEGState is an emotional state derived from the dominant EEG band
type EEGState string

// Band is a derived EEG frequency band label (title case)
type Band string

// Valence classifies a mood as positive, negative, or neutral
type Valence string

const (
	AppName = "moodbuddy"
	Version = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// CacheKeyPrefix prefixes the per-user mood cache key
	CacheKeyPrefix = "moodEntries_"

	// MaxNoteLength bounds the free-text note on a mood entry
	MaxNoteLength = 500

	// EEG collection window defaults
	DefaultSampleWindow   = 10
	DefaultSampleInterval = time.Second

	// Mood constants
	MoodHappy    Mood = "happy"
	MoodSad      Mood = "sad"
	MoodNeutral  Mood = "neutral"
	MoodSurprise Mood = "surprise"
	MoodFear     Mood = "fear"
	MoodDisgust  Mood = "disgust"
	MoodAngry    Mood = "angry"

	// Derived band labels
	BandAlpha Band = "Alpha"
	BandBeta  Band = "Beta"
	BandTheta Band = "Theta"
	BandDelta Band = "Delta"
	BandGamma Band = "Gamma"

	// EEG emotional states
	StatePeacefulContentment    EEGState = "Peaceful Contentment"
	StateMentalAgitation        EEGState = "Mental Agitation"
	StateEmotionalVulnerability EEGState = "Emotional Vulnerability"
	StateSubconsciousProcessing EEGState = "Subconscious Processing"
	StateIntenseProcessing      EEGState = "Intense Processing"

	// Valence constants
	ValencePositive Valence = "positive"
	ValenceNegative Valence = "negative"
	ValenceNeutral  Valence = "neutral"
)

// MoodOrder is the fixed presentation order for legends, donut arcs, and
// stacking. Charts and legends must agree on it.
var MoodOrder = []Mood{
	MoodHappy, MoodSad, MoodNeutral, MoodSurprise, MoodFear, MoodDisgust, MoodAngry,
}

// EEGStates lists the five derived emotional states in dominant-band order.
var EEGStates = []EEGState{
	StatePeacefulContentment,
	StateMentalAgitation,
	StateEmotionalVulnerability,
	StateSubconsciousProcessing,
	StateIntenseProcessing,
}
