package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
)

type SignupCmd struct {
	Username string `short:"u" help:"Desired username."`
	Email    string `short:"e" help:"Account email."`
	FullName string `short:"n" help:"Full name."`
}

func (c *SignupCmd) Run(ctx *Context) error {
	username := c.Username
	email := c.Email
	fullName := c.FullName
	var password, confirm string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&username).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("username is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Email").
				Value(&email).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("email is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Full name").
				Value(&fullName),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&confirm),
		),
	).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		return err
	}

	if password == "" {
		return fmt.Errorf("password is required")
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := ctx.Gateway.Signup(context.Background(), username, email, fullName, password); err != nil {
		return err
	}

	fmt.Printf("Account created for %s. Run 'moodbuddy login %s' to sign in.\n", username, email)
	return nil
}
