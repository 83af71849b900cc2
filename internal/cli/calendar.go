package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/moodbuddy/moodbuddy/internal/constants"
	"github.com/moodbuddy/moodbuddy/internal/models"
	"github.com/moodbuddy/moodbuddy/internal/render"
)

type CalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM), defaults to the current month."`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	s, provider, err := ctx.openStore(context.Background())
	if err != nil {
		return err
	}
	defer provider.Close()

	now := time.Now()
	year, month, err := parseMonth(c.Month, now)
	if err != nil {
		return err
	}

	entries := make(map[string]models.MoodEntry, s.Len())
	for _, entry := range s.Entries() {
		entries[entry.Date] = entry
	}

	today := now.Format(constants.DateFormat)
	fmt.Println(render.Calendar(year, month, entries, today))
	fmt.Println(render.Legend())
	return nil
}
