// Package session holds explicit sign-in state with a defined lifecycle:
// login writes it, logout clears it, and commands read it. Nothing consults
// an ambient logged-in flag.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNotLoggedIn is returned when no session file exists.
var ErrNotLoggedIn = errors.New("not logged in, run 'moodbuddy login' first")

// Session identifies the signed-in user.
type Session struct {
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

const fileName = "session.json"

// Load reads the current session from the config dir.
func Load(configDir string) (Session, error) {
	data, err := os.ReadFile(filepath.Join(configDir, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, ErrNotLoggedIn
		}
		return Session{}, fmt.Errorf("failed to read session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("failed to parse session: %w", err)
	}
	if s.Username == "" {
		return Session{}, ErrNotLoggedIn
	}
	return s, nil
}

// Save persists the session to the config dir.
func Save(configDir string, s Session) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, fileName), data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear removes the session. Clearing an absent session is not an error.
func Clear(configDir string) error {
	err := os.Remove(filepath.Join(configDir, fileName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
