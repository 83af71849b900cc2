package render

import (
	"fmt"
	"strings"

	"github.com/moodbuddy/moodbuddy/internal/constants"
	"github.com/moodbuddy/moodbuddy/internal/interpret"
	"github.com/moodbuddy/moodbuddy/internal/models"
	"github.com/moodbuddy/moodbuddy/internal/stats"
)

// DonutBreakdown renders the half-circle arc layout as proportional bars in
// the fixed mood order, one row per non-zero mood.
func DonutBreakdown(arcs []stats.Arc, total int) string {
	if total == 0 {
		return subtleStyle.Render("No moods recorded this month.")
	}

	var b strings.Builder
	for _, arc := range arcs {
		span := arc.End - arc.Start
		width := int(span / stats.DonutSpreadDegrees * 40)
		if width < 1 {
			width = 1
		}

		bar := MoodStyle(arc.Mood).Render(strings.Repeat("█", width))
		fmt.Fprintf(&b, "%s %-8s %s %d (%.0f°)\n",
			MoodGlyph(arc.Mood), arc.Mood, bar, arc.Count, span)
	}
	fmt.Fprintf(&b, "%s\n", subtleStyle.Render(fmt.Sprintf("%d entries", total)))
	return b.String()
}

// DailySeries renders the chronological (day, mood) line behind the mobile
// app's line chart.
func DailySeries(series []stats.DailyPoint) string {
	if len(series) == 0 {
		return subtleStyle.Render("No daily data.")
	}

	var b strings.Builder
	for _, point := range series {
		day := point.Date[len(point.Date)-2:]
		fmt.Fprintf(&b, "%s %s %s\n", subtleStyle.Render(day),
			MoodGlyph(point.Mood), MoodStyle(point.Mood).Render(string(point.Mood)))
	}
	return b.String()
}

// BandBars renders averaged band powers as horizontal bars, marking the
// dominant band.
func BandBars(averaged []models.AveragedBandPower, dominant constants.Band) string {
	if len(averaged) == 0 {
		return subtleStyle.Render("No EEG data collected.")
	}

	var b strings.Builder
	for _, band := range averaged {
		width := int(band.Percentage / 2)
		if width < 1 {
			width = 1
		}
		if width > 50 {
			width = 50
		}

		marker := "  "
		line := fmt.Sprintf("%-9s %6.2f%% %s", strings.ToUpper(band.Band), band.Percentage, strings.Repeat("▇", width))
		if interpret.NormalizeBand(band.Band) == dominant {
			marker = titleStyle.Render("» ")
			line = titleStyle.Render(line)
		}
		fmt.Fprintf(&b, "%s%s  %s\n", marker, line, subtleStyle.Render(band.Description))
	}
	return b.String()
}

// AnalysisCard renders a combined facial+EEG analysis.
func AnalysisCard(a models.CombinedAnalysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Emotion detected  %s %s (%s)\n",
		MoodGlyph(a.Facial.Emotion), MoodStyle(a.Facial.Emotion).Render(a.Facial.Title), a.Facial.Valence)
	fmt.Fprintf(&b, "Brain state       %s (%s dominant)\n", a.EEG.EmotionalState, a.EEG.DominantBand)
	fmt.Fprintf(&b, "%s\n", subtleStyle.Render(a.EEG.Description))
	fmt.Fprintf(&b, "\nCombined result   %s\n", titleStyle.Render(fmt.Sprintf("%q", a.Title)))
	fmt.Fprintf(&b, "%s", a.Interpretation)

	return cardStyle.Render(b.String())
}
