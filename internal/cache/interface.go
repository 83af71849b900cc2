package cache

import (
	"github.com/moodbuddy/moodbuddy/internal/constants"
	"github.com/moodbuddy/moodbuddy/internal/models"
)

// Provider is a per-user key-value cache of mood entries. Each user's record
// set is written wholesale: a successful remote load overwrites whatever was
// cached, and local mutations rewrite the full snapshot.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// GetEntries returns the cached date->entry mapping for the user. The
	// second return is false when no snapshot exists for that user.
	GetEntries(username string) (map[string]models.MoodEntry, bool, error)

	// PutEntries replaces the user's cached snapshot.
	PutEntries(username string, entries map[string]models.MoodEntry) error

	// DeleteEntries drops the user's cached snapshot entirely.
	DeleteEntries(username string) error

	// Path returns the backing file path, for diagnostics.
	Path() string
}

// Key builds the storage key for a user's mood snapshot.
func Key(username string) string {
	return constants.CacheKeyPrefix + username
}
