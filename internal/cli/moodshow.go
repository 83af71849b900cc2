package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/moodbuddy/moodbuddy/internal/constants"
	"github.com/moodbuddy/moodbuddy/internal/interpret"
	"github.com/moodbuddy/moodbuddy/internal/logger"
	"github.com/moodbuddy/moodbuddy/internal/render"
)

type MoodShowCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD), defaults to today."`
}

func (c *MoodShowCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}

	s, provider, err := ctx.openStore(context.Background())
	if err != nil {
		return err
	}
	defer provider.Close()

	entry, ok := s.Get(date)
	if !ok {
		return fmt.Errorf("no mood entry for %s", date)
	}

	title, interpretation := lookupInterpretation(ctx, entry.CombinedMood)
	fmt.Println(render.DayDetail(entry, title, interpretation))
	return nil
}

// lookupInterpretation resolves a combined-mood label to its reading, asking
// the backend first and falling back to the built-in pairing table. Labels
// take the form "<mood>_<band>".
func lookupInterpretation(ctx *Context, combinedMood string) (string, string) {
	if combinedMood == "" {
		return "", ""
	}

	remote, err := ctx.Gateway.FetchInterpretation(context.Background(), combinedMood)
	if err != nil {
		logger.Warn("Interpretation fetch failed, using built-in table", "error", err)
	} else if remote != nil {
		return remote.Title, remote.Interpretation
	}

	idx := strings.LastIndex(combinedMood, "_")
	if idx <= 0 {
		return "", ""
	}
	mood := constants.Mood(combinedMood[:idx])
	band := interpret.NormalizeBand(combinedMood[idx+1:])
	analysis := interpret.Combine(mood, band)
	return analysis.Title, analysis.Interpretation
}
