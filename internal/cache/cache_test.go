package cache

import (
	"path/filepath"
	"testing"

	"github.com/moodbuddy/moodbuddy/internal/constants"
	"github.com/moodbuddy/moodbuddy/internal/models"
)

func providers(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	return map[string]Provider{
		"json":   NewJSONCache(filepath.Join(dir, "cache.json")),
		"sqlite": NewSQLiteCache(filepath.Join(dir, "cache.db")),
	}
}

func sampleEntries() map[string]models.MoodEntry {
	return map[string]models.MoodEntry{
		"2025-06-14": {
			ID:   "41",
			Date: "2025-06-14",
			Mood: constants.MoodSad,
			Note: "long day",
		},
		"2025-06-15": {
			ID:                "42",
			Date:              "2025-06-15",
			Mood:              constants.MoodHappy,
			CombinedMood:      "happy_alpha",
			EEGEmotionalState: constants.StatePeacefulContentment,
		},
	}
}

func TestProvider_RoundTrip(t *testing.T) {
	for name, provider := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := provider.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer provider.Close()

			want := sampleEntries()
			if err := provider.PutEntries("alice", want); err != nil {
				t.Fatalf("PutEntries failed: %v", err)
			}

			got, ok, err := provider.GetEntries("alice")
			if err != nil {
				t.Fatalf("GetEntries failed: %v", err)
			}
			if !ok {
				t.Fatal("expected a snapshot for alice")
			}
			if len(got) != len(want) {
				t.Fatalf("got %d entries, want %d", len(got), len(want))
			}
			for date, entry := range want {
				if got[date] != entry {
					t.Errorf("entry for %s = %+v, want %+v", date, got[date], entry)
				}
			}
		})
	}
}

func TestProvider_MissingUser(t *testing.T) {
	for name, provider := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := provider.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer provider.Close()

			_, ok, err := provider.GetEntries("nobody")
			if err != nil {
				t.Fatalf("GetEntries failed: %v", err)
			}
			if ok {
				t.Error("expected no snapshot for an unknown user")
			}
		})
	}
}

func TestProvider_PutReplacesWholesale(t *testing.T) {
	for name, provider := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := provider.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer provider.Close()

			if err := provider.PutEntries("alice", sampleEntries()); err != nil {
				t.Fatalf("PutEntries failed: %v", err)
			}

			// A smaller snapshot must fully replace the previous one.
			smaller := map[string]models.MoodEntry{
				"2025-06-16": {Date: "2025-06-16", Mood: constants.MoodNeutral},
			}
			if err := provider.PutEntries("alice", smaller); err != nil {
				t.Fatalf("PutEntries failed: %v", err)
			}

			got, ok, err := provider.GetEntries("alice")
			if err != nil || !ok {
				t.Fatalf("GetEntries = %v, ok=%v", err, ok)
			}
			if len(got) != 1 {
				t.Errorf("got %d entries after replace, want 1", len(got))
			}
			if _, stale := got["2025-06-14"]; stale {
				t.Error("old entry survived a wholesale replace")
			}
		})
	}
}

func TestProvider_DeleteEntries(t *testing.T) {
	for name, provider := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := provider.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer provider.Close()

			if err := provider.PutEntries("alice", sampleEntries()); err != nil {
				t.Fatalf("PutEntries failed: %v", err)
			}
			if err := provider.DeleteEntries("alice"); err != nil {
				t.Fatalf("DeleteEntries failed: %v", err)
			}

			_, ok, err := provider.GetEntries("alice")
			if err != nil {
				t.Fatalf("GetEntries failed: %v", err)
			}
			if ok {
				t.Error("expected snapshot to be gone after delete")
			}
		})
	}
}

func TestJSONCache_PersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	first := NewJSONCache(path)
	if err := first.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := first.PutEntries("alice", sampleEntries()); err != nil {
		t.Fatalf("PutEntries failed: %v", err)
	}
	first.Close()

	second := NewJSONCache(path)
	if err := second.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, ok, err := second.GetEntries("alice")
	if err != nil || !ok {
		t.Fatalf("GetEntries = %v, ok=%v", err, ok)
	}
	if got["2025-06-15"].CombinedMood != "happy_alpha" {
		t.Errorf("combined mood = %q, want happy_alpha", got["2025-06-15"].CombinedMood)
	}
}

func TestKey(t *testing.T) {
	if got := Key("alice"); got != "moodEntries_alice" {
		t.Errorf("Key(alice) = %q, want moodEntries_alice", got)
	}
}
