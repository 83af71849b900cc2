package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moodbuddy/moodbuddy/internal/models"
)

type fileStore struct {
	Version int                                    `json:"version"`
	Records map[string]map[string]models.MoodEntry `json:"records"` // cache key -> date -> entry
}

// JSONCache persists per-user mood snapshots in a single JSON file.
type JSONCache struct {
	path  string
	store *fileStore
}

func NewJSONCache(path string) *JSONCache {
	return &JSONCache{path: path}
}

func (c *JSONCache) Init() error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	if _, err := os.Stat(c.path); err == nil {
		return c.Load()
	}

	c.store = &fileStore{
		Version: 1,
		Records: make(map[string]map[string]models.MoodEntry),
	}
	return c.save()
}

func (c *JSONCache) Load() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			// An absent cache file is an empty cache, not an error.
			c.store = &fileStore{
				Version: 1,
				Records: make(map[string]map[string]models.MoodEntry),
			}
			return nil
		}
		return fmt.Errorf("failed to read cache: %w", err)
	}

	c.store = &fileStore{}
	if err := json.Unmarshal(data, c.store); err != nil {
		return fmt.Errorf("failed to parse cache: %w", err)
	}
	if c.store.Records == nil {
		c.store.Records = make(map[string]map[string]models.MoodEntry)
	}
	return nil
}

func (c *JSONCache) Close() error {
	return nil
}

func (c *JSONCache) save() error {
	data, err := json.MarshalIndent(c.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize cache: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

func (c *JSONCache) GetEntries(username string) (map[string]models.MoodEntry, bool, error) {
	if c.store == nil {
		return nil, false, fmt.Errorf("cache not loaded")
	}
	snapshot, ok := c.store.Records[Key(username)]
	if !ok {
		return nil, false, nil
	}
	out := make(map[string]models.MoodEntry, len(snapshot))
	for date, entry := range snapshot {
		out[date] = entry
	}
	return out, true, nil
}

func (c *JSONCache) PutEntries(username string, entries map[string]models.MoodEntry) error {
	if c.store == nil {
		return fmt.Errorf("cache not loaded")
	}
	snapshot := make(map[string]models.MoodEntry, len(entries))
	for date, entry := range entries {
		snapshot[date] = entry
	}
	c.store.Records[Key(username)] = snapshot
	return c.save()
}

func (c *JSONCache) DeleteEntries(username string) error {
	if c.store == nil {
		return fmt.Errorf("cache not loaded")
	}
	delete(c.store.Records, Key(username))
	return c.save()
}

func (c *JSONCache) Path() string {
	return c.path
}
