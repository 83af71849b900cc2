package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/moodbuddy/moodbuddy/internal/keyring"
	"github.com/moodbuddy/moodbuddy/internal/logger"
	"github.com/moodbuddy/moodbuddy/internal/session"
)

type LoginCmd struct {
	Email    string `arg:"" optional:"" help:"Account email."`
	Password string `short:"p" help:"Account password (prompted when omitted)."`
	Remember bool   `short:"r" help:"Store the password in the OS keyring."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	email := c.Email
	password := c.Password

	// Try remembered credentials before prompting.
	if password == "" && email != "" {
		if stored, err := keyring.GetPassword(email); err == nil {
			password = stored
		}
	}

	if email == "" || password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Value(&email),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&password),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
	}
	if email == "" || password == "" {
		return fmt.Errorf("email and password are required")
	}

	profile, err := ctx.Gateway.Login(context.Background(), email, password)
	if err != nil {
		return err
	}

	if err := session.Save(ctx.Config.ConfigDir, session.Session{
		Username:   profile.Username,
		Email:      profile.Email,
		FullName:   profile.FullName,
		LoggedInAt: time.Now(),
	}); err != nil {
		return err
	}

	if c.Remember {
		if err := keyring.SetPassword(email, password); err != nil {
			if errors.Is(err, keyring.ErrKeyringUnavailable) {
				logger.Warn("Keyring unavailable, password not remembered", "error", err)
			} else {
				return err
			}
		}
	}

	fmt.Printf("Logged in as %s\n", profile.Username)
	return nil
}
