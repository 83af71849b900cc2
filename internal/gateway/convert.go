package gateway

import "github.com/moodbuddy/moodbuddy/internal/constants"

// Wire values arrive as plain strings; these casts keep the typed enums at
// the package boundary.

func constantsMood(s string) constants.Mood {
	return constants.Mood(s)
}

func constantsBand(s string) constants.Band {
	return constants.Band(s)
}

func constantsState(s string) constants.EEGState {
	return constants.EEGState(s)
}

func constantsValence(s string) constants.Valence {
	return constants.Valence(s)
}
