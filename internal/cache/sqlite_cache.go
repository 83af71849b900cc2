package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/moodbuddy/moodbuddy/internal/models"
)

// SQLiteCache persists per-user mood snapshots in a SQLite database. Each
// row holds one user's full snapshot as JSON, keeping the wholesale-overwrite
// contract identical to the JSON backend.
type SQLiteCache struct {
	path string
	db   *sql.DB
}

func NewSQLiteCache(path string) *SQLiteCache {
	return &SQLiteCache{path: path}
}

func (c *SQLiteCache) Init() error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", c.path)
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	c.db = db

	_, err = c.db.Exec(`CREATE TABLE IF NOT EXISTS mood_snapshots (
		cache_key TEXT PRIMARY KEY,
		payload   TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create cache schema: %w", err)
	}
	return nil
}

func (c *SQLiteCache) Load() error {
	if c.db != nil {
		return nil
	}
	return c.Init()
}

func (c *SQLiteCache) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

func (c *SQLiteCache) GetEntries(username string) (map[string]models.MoodEntry, bool, error) {
	if c.db == nil {
		return nil, false, fmt.Errorf("cache not loaded")
	}

	var payload string
	err := c.db.QueryRow(
		"SELECT payload FROM mood_snapshots WHERE cache_key = ?", Key(username),
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}

	entries := make(map[string]models.MoodEntry)
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil, false, fmt.Errorf("failed to parse cached snapshot: %w", err)
	}
	return entries, true, nil
}

func (c *SQLiteCache) PutEntries(username string, entries map[string]models.MoodEntry) error {
	if c.db == nil {
		return fmt.Errorf("cache not loaded")
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	_, err = c.db.Exec(`INSERT INTO mood_snapshots (cache_key, payload) VALUES (?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET payload = excluded.payload`,
		Key(username), string(payload))
	if err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

func (c *SQLiteCache) DeleteEntries(username string) error {
	if c.db == nil {
		return fmt.Errorf("cache not loaded")
	}
	_, err := c.db.Exec("DELETE FROM mood_snapshots WHERE cache_key = ?", Key(username))
	if err != nil {
		return fmt.Errorf("failed to delete cached snapshot: %w", err)
	}
	return nil
}

func (c *SQLiteCache) Path() string {
	return c.path
}
