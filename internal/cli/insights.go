package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/moodbuddy/moodbuddy/internal/models"
	"github.com/moodbuddy/moodbuddy/internal/render"
	"github.com/moodbuddy/moodbuddy/internal/stats"
)

type InsightsCmd struct {
	Month string `arg:"" optional:"" help:"Month to analyze (YYYY-MM), defaults to the current month."`
}

func (c *InsightsCmd) Run(ctx *Context) error {
	s, provider, err := ctx.openStore(context.Background())
	if err != nil {
		return err
	}
	defer provider.Close()

	year, month, err := parseMonth(c.Month, time.Now())
	if err != nil {
		return err
	}
	start, end := monthBounds(year, month)

	var monthEntries []models.MoodEntry
	for _, entry := range s.Entries() {
		if entry.Date >= start && entry.Date <= end {
			monthEntries = append(monthEntries, entry)
		}
	}

	counts := stats.CountByMood(monthEntries)
	arcs := stats.DonutArcs(counts)
	series := stats.DailySeries(monthEntries, start, end)

	fmt.Printf("Mood insights for %s %d\n\n", month.String(), year)
	fmt.Println(render.DonutBreakdown(arcs, len(monthEntries)))
	if len(series) > 0 {
		fmt.Println("Daily moods:")
		fmt.Println(render.DailySeries(series))
	}
	return nil
}
