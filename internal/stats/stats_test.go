package stats

import (
	"math"
	"testing"

	"github.com/moodbuddy/moodbuddy/internal/constants"
	"github.com/moodbuddy/moodbuddy/internal/models"
)

func entries(moods ...constants.Mood) []models.MoodEntry {
	out := make([]models.MoodEntry, len(moods))
	for i, m := range moods {
		out[i] = models.MoodEntry{
			Date: "2025-06-0" + string(rune('1'+i)),
			Mood: m,
		}
	}
	return out
}

func TestCountByMood_OmitsAbsentMoods(t *testing.T) {
	counts := CountByMood(entries(
		constants.MoodHappy, constants.MoodHappy, constants.MoodSad,
	))

	if counts[constants.MoodHappy] != 2 {
		t.Errorf("happy = %d, want 2", counts[constants.MoodHappy])
	}
	if counts[constants.MoodSad] != 1 {
		t.Errorf("sad = %d, want 1", counts[constants.MoodSad])
	}
	if _, present := counts[constants.MoodAngry]; present {
		t.Error("absent mood must not appear as a zero key")
	}
	if len(counts) != 2 {
		t.Errorf("got %d keys, want 2", len(counts))
	}
}

func TestCountByMood_Empty(t *testing.T) {
	counts := CountByMood(nil)
	if len(counts) != 0 {
		t.Errorf("got %d keys, want 0", len(counts))
	}
}

func TestDonutArcs_SpanSumsToSpread(t *testing.T) {
	counts := CountByMood(entries(
		constants.MoodHappy, constants.MoodHappy,
		constants.MoodSad,
		constants.MoodAngry,
	))
	arcs := DonutArcs(counts)

	var total float64
	for _, arc := range arcs {
		total += arc.End - arc.Start
	}
	if math.Abs(total-DonutSpreadDegrees) > 1e-9 {
		t.Errorf("arc spans sum to %f, want %f", total, DonutSpreadDegrees)
	}
}

func TestDonutArcs_StartAndOrder(t *testing.T) {
	counts := CountByMood(entries(
		constants.MoodAngry, constants.MoodHappy, constants.MoodNeutral,
	))
	arcs := DonutArcs(counts)

	if len(arcs) != 3 {
		t.Fatalf("got %d arcs, want 3", len(arcs))
	}
	if arcs[0].Start != DonutStartDegrees {
		t.Errorf("first arc starts at %f, want %f", arcs[0].Start, DonutStartDegrees)
	}

	// Arcs follow the fixed mood order, not insertion or count order.
	want := []constants.Mood{constants.MoodHappy, constants.MoodNeutral, constants.MoodAngry}
	for i, arc := range arcs {
		if arc.Mood != want[i] {
			t.Errorf("arc[%d] = %s, want %s", i, arc.Mood, want[i])
		}
	}

	// Adjacent arcs are contiguous.
	for i := 1; i < len(arcs); i++ {
		if arcs[i].Start != arcs[i-1].End {
			t.Errorf("arc[%d] starts at %f, previous ends at %f", i, arcs[i].Start, arcs[i-1].End)
		}
	}
}

func TestDonutArcs_SkipsZeroCounts(t *testing.T) {
	arcs := DonutArcs(map[constants.Mood]int{constants.MoodHappy: 3})
	if len(arcs) != 1 {
		t.Fatalf("got %d arcs, want 1", len(arcs))
	}
	if arcs[0].End-arcs[0].Start != DonutSpreadDegrees {
		t.Errorf("a single mood should span the full spread, got %f", arcs[0].End-arcs[0].Start)
	}
}

func TestDonutArcs_Empty(t *testing.T) {
	if arcs := DonutArcs(nil); len(arcs) != 0 {
		t.Errorf("got %d arcs, want 0", len(arcs))
	}
}

func TestDailySeries_FiltersAndSorts(t *testing.T) {
	all := []models.MoodEntry{
		{Date: "2025-06-20", Mood: constants.MoodSad},
		{Date: "2025-05-31", Mood: constants.MoodAngry},
		{Date: "2025-06-03", Mood: constants.MoodHappy},
		{Date: "2025-07-01", Mood: constants.MoodFear},
	}

	series := DailySeries(all, "2025-06-01", "2025-06-30")
	if len(series) != 2 {
		t.Fatalf("got %d points, want 2", len(series))
	}
	if series[0].Date != "2025-06-03" || series[1].Date != "2025-06-20" {
		t.Errorf("series = %+v, want ascending June dates", series)
	}
}
