package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/moodbuddy/moodbuddy/internal/render"
)

type MoodListCmd struct {
	Month string `arg:"" optional:"" help:"Month to list (YYYY-MM), defaults to the current month."`
	All   bool   `short:"a" help:"List every loaded entry regardless of month."`
}

func (c *MoodListCmd) Run(ctx *Context) error {
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

	count := 0
	for _, entry := range s.Entries() {
		if !c.All && (entry.Date < start || entry.Date > end) {
			continue
		}
		line := fmt.Sprintf("%s  %s %-8s", entry.Date, render.MoodGlyph(entry.Mood), entry.Mood)
		if entry.EEGEmotionalState != "" {
			line += fmt.Sprintf("  [%s]", entry.EEGEmotionalState)
		}
		if entry.Note != "" {
			line += "  " + entry.Note
		}
		if !entry.Synced() {
			line += "  (not synced)"
		}
		fmt.Println(line)
		count++
	}

	if count == 0 {
		fmt.Println("No mood entries found.")
	}
	return nil
}
