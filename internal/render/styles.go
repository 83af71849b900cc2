package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/moodbuddy/moodbuddy/internal/constants"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	todayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
)

// moodGlyphs is a presentation-only lookup; the mood enum is the domain key
// and the glyph never flows back into stored data.
var moodGlyphs = map[constants.Mood]string{
	constants.MoodHappy:    "😀",
	constants.MoodSad:      "😢",
	constants.MoodNeutral:  "😐",
	constants.MoodSurprise: "😲",
	constants.MoodFear:     "😨",
	constants.MoodDisgust:  "🤢",
	constants.MoodAngry:    "😠",
}

// moodTermColors approximate the product's mood palette in ANSI space.
var moodTermColors = map[constants.Mood]lipgloss.Color{
	constants.MoodHappy:    lipgloss.Color("42"),
	constants.MoodSad:      lipgloss.Color("33"),
	constants.MoodNeutral:  lipgloss.Color("245"),
	constants.MoodSurprise: lipgloss.Color("135"),
	constants.MoodFear:     lipgloss.Color("208"),
	constants.MoodDisgust:  lipgloss.Color("94"),
	constants.MoodAngry:    lipgloss.Color("196"),
}

// MoodGlyph returns the emoji for a mood, or a placeholder for unknown input.
func MoodGlyph(mood constants.Mood) string {
	if glyph, ok := moodGlyphs[mood]; ok {
		return glyph
	}
	return "·"
}

// MoodStyle returns a lipgloss style colored for the mood.
func MoodStyle(mood constants.Mood) lipgloss.Style {
	color, ok := moodTermColors[mood]
	if !ok {
		color = lipgloss.Color("245")
	}
	return lipgloss.NewStyle().Foreground(color)
}
