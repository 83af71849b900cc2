package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/moodbuddy/moodbuddy/internal/keyring"
	"github.com/moodbuddy/moodbuddy/internal/session"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: config directory present
	if _, err := os.Stat(ctx.Config.ConfigDir); err != nil {
		fmt.Printf("❌ Config directory: FAIL\n")
		fmt.Printf("   Error: %v (run 'moodbuddy init')\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Config directory: OK (%s)\n", ctx.Config.ConfigDir)
	}

	// Check 2: cache readable
	if provider, err := ctx.openCache(); err != nil {
		fmt.Printf("❌ Mood cache: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Mood cache: OK (%s)\n", provider.Path())
		provider.Close()
	}

	// Check 3: backend reachable
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := ctx.Gateway.Ping(pingCtx); err != nil {
		fmt.Printf("⚠ Backend reachable: WARNING\n")
		fmt.Printf("   %v (offline mode still works from the cache)\n", err)
	} else {
		fmt.Printf("✓ Backend reachable: OK (%s)\n", ctx.Config.APIBaseURL)
	}

	// Check 4: session present
	if sess, err := ctx.requireSession(); err != nil {
		if errors.Is(err, session.ErrNotLoggedIn) {
			fmt.Printf("⚠ Session: WARNING\n")
			fmt.Printf("   Not logged in, run 'moodbuddy login'\n")
		} else {
			fmt.Printf("❌ Session: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		}
	} else {
		fmt.Printf("✓ Session: OK (logged in as %s)\n", sess.Username)
	}

	// Check 5: OS keyring
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   Keyring unavailable, credentials cannot be remembered\n")
	}

	// Check 6: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if _, err := time.LoadLocation("Local"); err != nil {
		return fmt.Errorf("failed to load local timezone: %w", err)
	}
	return nil
}
