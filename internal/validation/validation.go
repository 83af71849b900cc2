package validation

import (
	"fmt"
	"time"

	"github.com/moodbuddy/moodbuddy/internal/constants"
	"github.com/moodbuddy/moodbuddy/internal/models"
)

// now is swappable for tests.
var now = time.Now

// ValidateDate checks that dateStr is a well-formed YYYY-MM-DD date and not in
// the future relative to the device clock. Future dates never reach the store.
func ValidateDate(dateStr string) error {
	parsed, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", dateStr, err)
	}

	today := now().Format(constants.DateFormat)
	if parsed.Format(constants.DateFormat) > today {
		return fmt.Errorf("cannot record a mood for future date %s", dateStr)
	}
	return nil
}

// ValidateEntry checks a mood entry before it is handed to the store: date in
// range, mood in the closed set, note within bounds.
func ValidateEntry(entry models.MoodEntry) error {
	if err := ValidateDate(entry.Date); err != nil {
		return err
	}
	if entry.Mood == "" {
		return fmt.Errorf("a mood must be selected before saving")
	}
	if !models.ValidMood(entry.Mood) {
		return fmt.Errorf("unknown mood %q", entry.Mood)
	}
	if len(entry.Note) > constants.MaxNoteLength {
		return fmt.Errorf("note exceeds %d characters", constants.MaxNoteLength)
	}
	return nil
}

// ValidateEEGState checks an optional EEG emotional state label.
func ValidateEEGState(state constants.EEGState) error {
	if state == "" {
		return nil
	}
	for _, s := range constants.EEGStates {
		if state == s {
			return nil
		}
	}
	return fmt.Errorf("unknown EEG emotional state %q", state)
}
