package models

import "github.com/moodbuddy/moodbuddy/internal/constants"

// BandSample is one instantaneous band-power reading. Band names here use the
// raw sampling vocabulary (theta, alpha, lowbeta, highbeta, gamma), which is
// distinct from the derived title-case labels used for dominant-band mapping.
type BandSample struct {
	Band        string  `json:"band"`
	Percentage  float64 `json:"percentage"` // 0-100 share of total band power
	Description string  `json:"description,omitempty"`
}

// AveragedBandPower is the mean power share for one band over a collection
// window, rounded to two decimals.
type AveragedBandPower struct {
	Band        string  `json:"band"`
	Percentage  float64 `json:"percentage"`
	Description string  `json:"description,omitempty"`
}

// FacialAnalysis is the facial half of a combined analysis.
type FacialAnalysis struct {
	Emotion constants.Mood    `json:"emotion"`
	Title   string            `json:"title"`
	Color   string            `json:"color"`
	Valence constants.Valence `json:"valence"`
}

// EEGAnalysis is the brain-state half of a combined analysis.
type EEGAnalysis struct {
	DominantBand   constants.Band     `json:"dominant_band"`
	EmotionalState constants.EEGState `json:"emotional_state"`
	Color          string             `json:"color"`
	Description    string             `json:"description"`
}

// CombinedAnalysis pairs a facial emotion with a dominant EEG band. It is
// ephemeral: only CombinedMood and the EEG emotional state are projected onto
// the persisted MoodEntry.
type CombinedAnalysis struct {
	SessionID      string         `json:"session_id,omitempty"`
	Facial         FacialAnalysis `json:"facial_analysis"`
	EEG            EEGAnalysis    `json:"eeg_analysis"`
	Title          string         `json:"title"`
	Interpretation string         `json:"interpretation"`
	CombinedMood   string         `json:"combined_mood"` // "<mood>_<band lowercase>"
	ChatAsk        string         `json:"chat_ask,omitempty"`
	ChatPrompt     string         `json:"chat_prompt,omitempty"`
}
