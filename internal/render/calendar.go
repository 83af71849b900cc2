package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/moodbuddy/moodbuddy/internal/constants"
	"github.com/moodbuddy/moodbuddy/internal/interpret"
	"github.com/moodbuddy/moodbuddy/internal/models"
)

// Calendar renders a month grid with the recorded mood glyph under each day.
func Calendar(year int, month time.Month, entries map[string]models.MoodEntry, today string) string {
	var b strings.Builder

	heading := fmt.Sprintf("%s %d", month.String(), year)
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	weekday := int(first.Weekday())

	// Leading blanks up to the first weekday.
	b.WriteString(strings.Repeat("    ", weekday))

	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)

		cell := fmt.Sprintf("%3d", day)
		if entry, ok := entries[date]; ok {
			cell = fmt.Sprintf("%2d%s", day, MoodGlyph(entry.Mood))
		}
		if date == today {
			cell = todayStyle.Render(cell)
		}
		b.WriteString(cell + " ")

		weekday = (weekday + 1) % 7
		if weekday == 0 {
			b.WriteString("\n")
		}
	}
	if weekday != 0 {
		b.WriteString("\n")
	}

	return b.String()
}

// DayDetail renders one entry's full record, including any fetched
// interpretation text.
func DayDetail(entry models.MoodEntry, title, interpretation string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s  %s\n", MoodGlyph(entry.Mood),
		MoodStyle(entry.Mood).Render(interpret.MoodTitle(entry.Mood)), entry.Date)

	if entry.EEGEmotionalState != "" {
		fmt.Fprintf(&b, "Brain state: %s\n", entry.EEGEmotionalState)
	}
	if title != "" {
		fmt.Fprintf(&b, "Combined: %s\n", titleStyle.Render(title))
	}
	if interpretation != "" {
		fmt.Fprintf(&b, "%s\n", subtleStyle.Render(interpretation))
	}
	if entry.Note != "" {
		fmt.Fprintf(&b, "Note: %s\n", entry.Note)
	}
	if !entry.Synced() {
		b.WriteString(warnStyle.Render("not yet synced") + "\n")
	}

	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// Legend lists the moods in presentation order with their glyphs.
func Legend() string {
	parts := make([]string, 0, len(constants.MoodOrder))
	for _, mood := range constants.MoodOrder {
		parts = append(parts, fmt.Sprintf("%s %s", MoodGlyph(mood), mood))
	}
	return subtleStyle.Render(strings.Join(parts, "  "))
}
