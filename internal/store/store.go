// Package store owns the authoritative date->MoodEntry mapping for one user.
// The remote API is the source of truth; the local cache is a backstop used
// only when the remote is unreachable. Saves commit locally first and sync
// remotely best-effort.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/moodbuddy/moodbuddy/internal/cache"
	"github.com/moodbuddy/moodbuddy/internal/constants"
	"github.com/moodbuddy/moodbuddy/internal/gateway"
	"github.com/moodbuddy/moodbuddy/internal/logger"
	"github.com/moodbuddy/moodbuddy/internal/models"
)

// ErrPartialSync signals that the local commit succeeded but the remote sync
// did not. The entry is saved; callers surface a soft warning, not a failure.
var ErrPartialSync = errors.New("saved locally, remote sync failed")

// RemoteGateway is the slice of the gateway the store depends on.
type RemoteGateway interface {
	Create(ctx context.Context, payload gateway.MoodPayload) (string, error)
	Update(ctx context.Context, id string, payload gateway.MoodPayload) error
	Delete(ctx context.Context, id, userID string) error
	FilterByRange(ctx context.Context, userID, startDate, endDate string) ([]gateway.RawMoodRecord, error)
}

// Store holds the in-memory mapping for the active user. It is rebuilt
// wholesale on Load and never shared across users.
type Store struct {
	username string
	remote   RemoteGateway
	cache    cache.Provider
	entries  map[string]models.MoodEntry
}

// New creates a store for one signed-in user.
func New(username string, remote RemoteGateway, c cache.Provider) *Store {
	return &Store{
		username: username,
		remote:   remote,
		cache:    c,
		entries:  make(map[string]models.MoodEntry),
	}
}

// Load fetches the user's records for the date range, replacing the in-memory
// mapping and the cached snapshot. On remote failure it falls back to the
// cache; an absent cache yields an empty mapping. This is remote-wins with a
// cache backstop, never a field-by-field merge.
func (s *Store) Load(ctx context.Context, startDate, endDate string) error {
	records, err := s.remote.FilterByRange(ctx, s.username, startDate, endDate)
	if err != nil {
		logger.Warn("Remote load failed, falling back to cache", "user", s.username, "error", err)
		cached, ok, cacheErr := s.cache.GetEntries(s.username)
		if cacheErr != nil {
			return fmt.Errorf("remote load failed and cache unreadable: %w", cacheErr)
		}
		if !ok {
			s.entries = make(map[string]models.MoodEntry)
			return nil
		}
		s.entries = cached
		return nil
	}

	entries := make(map[string]models.MoodEntry, len(records))
	for _, record := range records {
		entries[record.MoodDate] = translateRecord(record)
	}
	s.entries = entries

	if err := s.cache.PutEntries(s.username, entries); err != nil {
		// The in-memory mapping is already correct; a stale cache only
		// matters on the next offline load.
		logger.Warn("Failed to refresh cache after load", "user", s.username, "error", err)
	}
	return nil
}

// translateRecord converts a wire record into the domain entry. Mood names
// outside the closed set collapse to neutral, matching how the original
// client resolved unknown backend labels.
func translateRecord(record gateway.RawMoodRecord) models.MoodEntry {
	mood := constants.Mood(record.Mood)
	if !models.ValidMood(mood) {
		mood = constants.MoodNeutral
	}
	return models.MoodEntry{
		ID:                record.ID.String(),
		Date:              record.MoodDate,
		Mood:              mood,
		CombinedMood:      record.CombinedMood,
		EEGEmotionalState: constants.EEGState(record.EEGEmotionalState),
		Note:              record.Note,
	}
}

// Save writes the entry. The in-memory mapping and cache are committed before
// the remote call; a remote failure downgrades to ErrPartialSync rather than
// undoing the local save. Saving an existing date is an update in place,
// preserving the server id. Future-date validation happens before Save is
// called; the store does not re-validate.
func (s *Store) Save(ctx context.Context, entry models.MoodEntry) (models.MoodEntry, error) {
	existing, exists := s.entries[entry.Date]
	isUpdate := exists && existing.Synced()
	if isUpdate {
		entry.ID = existing.ID
	}

	if err := s.commitLocal(entry); err != nil {
		return models.MoodEntry{}, err
	}

	payload := gateway.MoodPayload{
		UserID:            s.username,
		MoodDate:          entry.Date,
		Mood:              string(entry.Mood),
		CombinedMood:      entry.CombinedMood,
		EEGEmotionalState: string(entry.EEGEmotionalState),
		Note:              entry.Note,
	}

	if isUpdate {
		if err := s.remote.Update(ctx, entry.ID, payload); err != nil {
			if errors.Is(err, gateway.ErrNotFound) {
				// A missing update target is a broken id reference and needs
				// caller attention; the local copy stays as written.
				return entry, err
			}
			return entry, fmt.Errorf("%w: %v", ErrPartialSync, err)
		}
		return entry, nil
	}

	id, err := s.remote.Create(ctx, payload)
	if err != nil {
		return entry, fmt.Errorf("%w: %v", ErrPartialSync, err)
	}

	entry.ID = id
	if err := s.commitLocal(entry); err != nil {
		return entry, err
	}
	return entry, nil
}

func (s *Store) commitLocal(entry models.MoodEntry) error {
	s.entries[entry.Date] = entry
	if err := s.cache.PutEntries(s.username, s.entries); err != nil {
		return fmt.Errorf("failed to write local cache: %w", err)
	}
	return nil
}

// Delete removes the entry for the date locally and, when it was synced,
// attempts the remote delete. Remote failure is logged and swallowed: the
// local deletion already succeeded.
func (s *Store) Delete(ctx context.Context, date string) error {
	entry, ok := s.entries[date]
	if !ok {
		return fmt.Errorf("no mood entry for %s", date)
	}

	delete(s.entries, date)
	if err := s.cache.PutEntries(s.username, s.entries); err != nil {
		return fmt.Errorf("failed to write local cache: %w", err)
	}

	if entry.Synced() {
		if err := s.remote.Delete(ctx, entry.ID, s.username); err != nil {
			logger.Warn("Remote delete failed, removed locally only", "date", date, "error", err)
		}
	}
	return nil
}

// Get returns the entry for a date, if present.
func (s *Store) Get(date string) (models.MoodEntry, bool) {
	entry, ok := s.entries[date]
	return entry, ok
}

// Entries returns all loaded entries sorted ascending by date.
func (s *Store) Entries() []models.MoodEntry {
	out := make([]models.MoodEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Len reports the number of loaded entries.
func (s *Store) Len() int {
	return len(s.entries)
}
