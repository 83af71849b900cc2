package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/moodbuddy/moodbuddy/internal/constants"
	apperrors "github.com/moodbuddy/moodbuddy/internal/errors"
	"github.com/moodbuddy/moodbuddy/internal/interpret"
	"github.com/moodbuddy/moodbuddy/internal/models"
	"github.com/moodbuddy/moodbuddy/internal/store"
	"github.com/moodbuddy/moodbuddy/internal/validation"
)

type MoodAddCmd struct {
	Mood string `arg:"" optional:"" help:"Mood (happy|sad|neutral|surprise|fear|disgust|angry)."`
	Date string `short:"d" help:"Entry date (YYYY-MM-DD)." default:"today"`
	Note string `short:"n" help:"Free-text note (max 500 chars)."`
}

func (c *MoodAddCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "today" || date == "" {
		date = time.Now().Format(constants.DateFormat)
	}

	mood := constants.Mood(c.Mood)
	note := c.Note
	if c.Mood == "" {
		if err := promptMood(&mood, &note); err != nil {
			return err
		}
	}

	entry := models.MoodEntry{
		Date: date,
		Mood: mood,
		Note: note,
	}
	if err := validation.ValidateEntry(entry); err != nil {
		return err
	}

	s, provider, err := ctx.openStore(context.Background())
	if err != nil {
		return err
	}
	defer provider.Close()

	if prev, ok := s.Get(date); ok {
		fmt.Printf("Replacing %s entry for %s\n", prev.Mood, date)
	}

	saved, err := s.Save(context.Background(), entry)
	if err != nil {
		if errors.Is(err, store.ErrPartialSync) {
			fmt.Printf("Recorded %s for %s\n", mood, date)
			apperrors.Notice("remote sync failed, entry saved locally only")
			return nil
		}
		return err
	}

	fmt.Printf("Recorded %s for %s (id %s)\n", saved.Mood, saved.Date, saved.ID)
	return nil
}

func promptMood(mood *constants.Mood, note *string) error {
	options := make([]huh.Option[constants.Mood], 0, len(constants.MoodOrder))
	for _, m := range constants.MoodOrder {
		options = append(options, huh.NewOption(interpret.MoodTitle(m), m))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[constants.Mood]().
				Title("How are you feeling?").
				Options(options...).
				Value(mood),
			huh.NewText().
				Title("Note (optional)").
				CharLimit(constants.MaxNoteLength).
				Value(note),
		),
	).WithTheme(huh.ThemeDracula())
	return form.Run()
}
