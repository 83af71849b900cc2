// Package stats derives monthly insight data from mood entries: per-mood
// tallies, the chronological daily series behind the line chart, and the
// half-circle donut arcs.
package stats

import (
	"sort"

	"github.com/moodbuddy/moodbuddy/internal/constants"
	"github.com/moodbuddy/moodbuddy/internal/models"
)

// DonutSpreadDegrees is the angular span of the donut layout. Arcs accumulate
// from DonutStartDegrees in the fixed mood order so the legend and stacking
// agree.
const (
	DonutSpreadDegrees = 180.0
	DonutStartDegrees  = -180.0
)

// DailyPoint is one (date, mood) pair in the line-chart series.
type DailyPoint struct {
	Date string
	Mood constants.Mood
}

// Arc is one donut segment. Start/End are absolute angles in degrees.
type Arc struct {
	Mood  constants.Mood
	Count int
	Start float64
	End   float64
}

// CountByMood tallies entries per mood. Moods absent from the input produce
// no key; callers treat a missing key as zero.
func CountByMood(entries []models.MoodEntry) map[constants.Mood]int {
	counts := make(map[constants.Mood]int)
	for _, entry := range entries {
		counts[entry.Mood]++
	}
	return counts
}

// DailySeries returns the (date, mood) pairs within [monthStart, monthEnd]
// sorted ascending by date. The store guarantees at most one entry per date,
// so no de-duplication is needed.
func DailySeries(entries []models.MoodEntry, monthStart, monthEnd string) []DailyPoint {
	series := make([]DailyPoint, 0, len(entries))
	for _, entry := range entries {
		if entry.Date < monthStart || entry.Date > monthEnd {
			continue
		}
		series = append(series, DailyPoint{Date: entry.Date, Mood: entry.Mood})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series
}

// DonutArcs lays the mood counts out across the half circle. Each arc's span
// is (count/total)*180 degrees; arcs with zero count are omitted. For any
// non-empty input the spans sum to 180 degrees up to float rounding.
func DonutArcs(counts map[constants.Mood]int) []Arc {
	total := 0
	for _, mood := range constants.MoodOrder {
		total += counts[mood]
	}
	if total == 0 {
		return nil
	}

	arcs := make([]Arc, 0, len(constants.MoodOrder))
	start := DonutStartDegrees
	for _, mood := range constants.MoodOrder {
		count := counts[mood]
		if count == 0 {
			continue
		}
		span := float64(count) / float64(total) * DonutSpreadDegrees
		arcs = append(arcs, Arc{
			Mood:  mood,
			Count: count,
			Start: start,
			End:   start + span,
		})
		start += span
	}
	return arcs
}
