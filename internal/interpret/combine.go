package interpret

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moodbuddy/moodbuddy/internal/constants"
	"github.com/moodbuddy/moodbuddy/internal/models"
)

// moodColors are the facial-analysis display colors.
var moodColors = map[constants.Mood]string{
	constants.MoodHappy:    "#4CAF50",
	constants.MoodSad:      "#2196F3",
	constants.MoodAngry:    "#F44336",
	constants.MoodNeutral:  "#9E9E9E",
	constants.MoodFear:     "#FF9800",
	constants.MoodSurprise: "#9C27B0",
	constants.MoodDisgust:  "#795548",
}

type pairing struct {
	title          string
	interpretation string
}

// combinedPairings is the fixed (mood, band) table. Any pair not listed falls
// back to the templated "Complex Emotional State" reading, so Combine is a
// total function.
var combinedPairings = map[constants.Mood]map[constants.Band]pairing{
	constants.MoodHappy: {
		constants.BandAlpha: {
			title:          "Peaceful Joy",
			interpretation: "You experienced happiness in a relaxed, centered state.",
		},
		constants.BandBeta: {
			title:          "Energetic Happiness",
			interpretation: "Your happiness comes with an alert, driven mental state.",
		},
	},
	constants.MoodSad: {
		constants.BandTheta: {
			title:          "Emotional Processing",
			interpretation: "Your sadness aligns with deep emotional processing in your brain patterns.",
		},
	},
}

// MoodColor returns the display color for a facial mood.
func MoodColor(mood constants.Mood) string {
	if color, ok := moodColors[mood]; ok {
		return color
	}
	return moodColors[constants.MoodNeutral]
}

// MoodValence classifies a mood as positive, negative, or neutral.
func MoodValence(mood constants.Mood) constants.Valence {
	switch mood {
	case constants.MoodHappy, constants.MoodSurprise:
		return constants.ValencePositive
	case constants.MoodSad, constants.MoodAngry, constants.MoodFear, constants.MoodDisgust:
		return constants.ValenceNegative
	default:
		return constants.ValenceNeutral
	}
}

// MoodTitle renders a mood enum for display.
func MoodTitle(mood constants.Mood) string {
	s := string(mood)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// newSessionID builds a scan session identifier in the backend's format.
func newSessionID() string {
	ms := time.Now().UnixMilli()
	return fmt.Sprintf("session_%d_%s", ms, uuid.NewString()[:8])
}

// Combine pairs a facial emotion with a dominant EEG band. Every input pair
// produces an analysis, never an error.
func Combine(mood constants.Mood, band constants.Band) models.CombinedAnalysis {
	eegAnalysis := BandAnalysis(band)

	pair, ok := combinedPairings[mood][band]
	if !ok {
		pair = pairing{
			title: "Complex Emotional State",
			interpretation: fmt.Sprintf("Your %s emotion aligns with %s brain wave patterns.",
				mood, strings.ToLower(string(band))),
		}
	}

	return models.CombinedAnalysis{
		SessionID: newSessionID(),
		Facial: models.FacialAnalysis{
			Emotion: mood,
			Title:   MoodTitle(mood),
			Color:   MoodColor(mood),
			Valence: MoodValence(mood),
		},
		EEG:            eegAnalysis,
		Title:          pair.title,
		Interpretation: pair.interpretation,
		CombinedMood:   fmt.Sprintf("%s_%s", mood, strings.ToLower(string(band))),
		ChatAsk:        "Discuss your mood analysis",
		ChatPrompt:     fmt.Sprintf("I'm feeling %s. Can you help me understand this better?", mood),
	}
}
