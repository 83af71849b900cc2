package cli

import (
	"errors"
	"fmt"

	"github.com/moodbuddy/moodbuddy/internal/keyring"
	"github.com/moodbuddy/moodbuddy/internal/logger"
	"github.com/moodbuddy/moodbuddy/internal/session"
)

type LogoutCmd struct {
	Forget bool `short:"f" help:"Also remove the remembered password from the OS keyring."`
}

func (c *LogoutCmd) Run(ctx *Context) error {
	sess, err := session.Load(ctx.Config.ConfigDir)
	if err != nil {
		if errors.Is(err, session.ErrNotLoggedIn) {
			fmt.Println("Not logged in.")
			return nil
		}
		return err
	}

	if err := session.Clear(ctx.Config.ConfigDir); err != nil {
		return err
	}

	// Drop the local snapshot so the next account on this machine starts clean.
	if provider, err := ctx.openCache(); err == nil {
		if err := provider.DeleteEntries(sess.Username); err != nil {
			logger.Warn("Failed to drop cached moods on logout", "error", err)
		}
		provider.Close()
	}

	if c.Forget && sess.Email != "" {
		if err := keyring.DeletePassword(sess.Email); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return err
		}
	}

	fmt.Printf("Logged out %s\n", sess.Username)
	return nil
}
