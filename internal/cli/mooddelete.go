package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
)

type MoodDeleteCmd struct {
	Date  string `arg:"" help:"Date of the entry to delete (YYYY-MM-DD)."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *MoodDeleteCmd) Run(ctx *Context) error {
	s, provider, err := ctx.openStore(context.Background())
	if err != nil {
		return err
	}
	defer provider.Close()

	entry, ok := s.Get(c.Date)
	if !ok {
		return fmt.Errorf("no mood entry for %s", c.Date)
	}

	if !c.Force {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete the %s entry for %s?", entry.Mood, c.Date)).
					Value(&confirmed),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := s.Delete(context.Background(), c.Date); err != nil {
		return err
	}

	fmt.Printf("Deleted mood entry for %s\n", c.Date)
	return nil
}
