package models

import "github.com/moodbuddy/moodbuddy/internal/constants"

// MoodEntry is one mood record for one calendar day for one user. At most one
// entry exists per date; a save on an existing date replaces it.
type MoodEntry struct {
	ID                string             `json:"id,omitempty"` // server-assigned; empty until synced
	Date              string             `json:"date"`         // YYYY-MM-DD
	Mood              constants.Mood     `json:"mood"`
	CombinedMood      string             `json:"combined_mood,omitempty"`
	EEGEmotionalState constants.EEGState `json:"eeg_emotional_state,omitempty"`
	Note              string             `json:"note,omitempty"`
}

// Synced reports whether the entry has been persisted remotely.
func (e MoodEntry) Synced() bool {
	return e.ID != ""
}

// ValidMood reports whether m belongs to the closed seven-mood set.
func ValidMood(m constants.Mood) bool {
	for _, mood := range constants.MoodOrder {
		if m == mood {
			return true
		}
	}
	return false
}
