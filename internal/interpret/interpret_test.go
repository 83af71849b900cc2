package interpret

import (
	"strings"
	"testing"

	"github.com/moodbuddy/moodbuddy/internal/constants"
	"github.com/moodbuddy/moodbuddy/internal/models"
)

func TestNormalizeBand(t *testing.T) {
	tests := []struct {
		raw  string
		want constants.Band
	}{
		{"alpha", constants.BandAlpha},
		{"theta", constants.BandTheta},
		{"delta", constants.BandDelta},
		{"gamma", constants.BandGamma},
		{"beta", constants.BandBeta},
		{"lowbeta", constants.BandBeta},
		{"highbeta", constants.BandBeta},
		{"Alpha", constants.BandAlpha},
		{" gamma ", constants.BandGamma},
		{"", constants.BandAlpha},
		{"unknown", constants.BandAlpha},
	}
	for _, tt := range tests {
		if got := NormalizeBand(tt.raw); got != tt.want {
			t.Errorf("NormalizeBand(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestDominantBand_MaxPercentage(t *testing.T) {
	averaged := []models.AveragedBandPower{
		{Band: "theta", Percentage: 15.2},
		{Band: "alpha", Percentage: 45.5},
		{Band: "lowbeta", Percentage: 20.1},
		{Band: "highbeta", Percentage: 10.0},
		{Band: "gamma", Percentage: 9.2},
	}
	if got := DominantBand(averaged); got != constants.BandAlpha {
		t.Errorf("DominantBand = %s, want Alpha", got)
	}
}

func TestDominantBand_TieFirstWins(t *testing.T) {
	averaged := []models.AveragedBandPower{
		{Band: "theta", Percentage: 40.0},
		{Band: "gamma", Percentage: 40.0},
	}
	if got := DominantBand(averaged); got != constants.BandTheta {
		t.Errorf("DominantBand tie = %s, want Theta (first in input)", got)
	}
}

func TestDominantBand_EmptyDefaultsToAlpha(t *testing.T) {
	if got := DominantBand(nil); got != constants.BandAlpha {
		t.Errorf("DominantBand(nil) = %s, want Alpha", got)
	}
}

func TestDominantBand_HighBetaNormalizes(t *testing.T) {
	averaged := []models.AveragedBandPower{
		{Band: "alpha", Percentage: 10.0},
		{Band: "highbeta", Percentage: 60.0},
	}
	if got := DominantBand(averaged); got != constants.BandBeta {
		t.Errorf("DominantBand = %s, want Beta", got)
	}
}

func TestBandAnalysis_StateTable(t *testing.T) {
	tests := []struct {
		band  constants.Band
		state constants.EEGState
		color string
	}{
		{constants.BandAlpha, constants.StatePeacefulContentment, "#27AE60"},
		{constants.BandBeta, constants.StateMentalAgitation, "#F39C12"},
		{constants.BandTheta, constants.StateEmotionalVulnerability, "#8E44AD"},
		{constants.BandDelta, constants.StateSubconsciousProcessing, "#2D1B69"},
		{constants.BandGamma, constants.StateIntenseProcessing, "#E74C3C"},
	}
	for _, tt := range tests {
		got := BandAnalysis(tt.band)
		if got.EmotionalState != tt.state {
			t.Errorf("BandAnalysis(%s).EmotionalState = %s, want %s", tt.band, got.EmotionalState, tt.state)
		}
		if got.Color != tt.color {
			t.Errorf("BandAnalysis(%s).Color = %s, want %s", tt.band, got.Color, tt.color)
		}
	}
}

func TestToAnalysisBands_MergesBeta(t *testing.T) {
	averaged := []models.AveragedBandPower{
		{Band: "alpha", Percentage: 40.0},
		{Band: "lowbeta", Percentage: 20.0},
		{Band: "highbeta", Percentage: 10.0},
		{Band: "theta", Percentage: 15.0},
	}

	out := ToAnalysisBands(averaged)
	if out["beta"] != 15.0 {
		t.Errorf("beta = %v, want 15.0 (mean of lowbeta and highbeta)", out["beta"])
	}
	if out["alpha"] != 40.0 {
		t.Errorf("alpha = %v, want 40.0", out["alpha"])
	}
	// delta has no raw counterpart; it is reported as zero, not omitted.
	if v, ok := out["delta"]; !ok || v != 0 {
		t.Errorf("delta = %v (present=%v), want 0", v, ok)
	}
	if len(out) != 5 {
		t.Errorf("got %d keys, want 5", len(out))
	}
}

func TestCombine_KnownPairing(t *testing.T) {
	analysis := Combine(constants.MoodHappy, constants.BandAlpha)

	if analysis.Title != "Peaceful Joy" {
		t.Errorf("title = %q, want Peaceful Joy", analysis.Title)
	}
	if analysis.Interpretation != "You experienced happiness in a relaxed, centered state." {
		t.Errorf("interpretation = %q", analysis.Interpretation)
	}
	if analysis.CombinedMood != "happy_alpha" {
		t.Errorf("combined mood = %q, want happy_alpha", analysis.CombinedMood)
	}
	if analysis.EEG.EmotionalState != constants.StatePeacefulContentment {
		t.Errorf("emotional state = %q", analysis.EEG.EmotionalState)
	}
	if analysis.Facial.Valence != constants.ValencePositive {
		t.Errorf("valence = %q, want positive", analysis.Facial.Valence)
	}
}

func TestCombine_UnlistedPairFallsBack(t *testing.T) {
	analysis := Combine(constants.MoodDisgust, constants.BandGamma)

	if analysis.Title != "Complex Emotional State" {
		t.Errorf("title = %q, want Complex Emotional State", analysis.Title)
	}
	if analysis.Interpretation != "Your disgust emotion aligns with gamma brain wave patterns." {
		t.Errorf("interpretation = %q", analysis.Interpretation)
	}
	if analysis.CombinedMood != "disgust_gamma" {
		t.Errorf("combined mood = %q, want disgust_gamma", analysis.CombinedMood)
	}
}

func TestCombine_SessionIDFormat(t *testing.T) {
	analysis := Combine(constants.MoodNeutral, constants.BandTheta)

	if !strings.HasPrefix(analysis.SessionID, "session_") {
		t.Errorf("session id = %q, want session_ prefix", analysis.SessionID)
	}
	parts := strings.Split(analysis.SessionID, "_")
	if len(parts) != 3 {
		t.Fatalf("session id = %q, want session_<ms>_<suffix>", analysis.SessionID)
	}
	if len(parts[2]) != 8 {
		t.Errorf("session suffix = %q, want 8 characters", parts[2])
	}
}

func TestMoodValence(t *testing.T) {
	tests := []struct {
		mood constants.Mood
		want constants.Valence
	}{
		{constants.MoodHappy, constants.ValencePositive},
		{constants.MoodSurprise, constants.ValencePositive},
		{constants.MoodSad, constants.ValenceNegative},
		{constants.MoodAngry, constants.ValenceNegative},
		{constants.MoodFear, constants.ValenceNegative},
		{constants.MoodDisgust, constants.ValenceNegative},
		{constants.MoodNeutral, constants.ValenceNeutral},
	}
	for _, tt := range tests {
		if got := MoodValence(tt.mood); got != tt.want {
			t.Errorf("MoodValence(%s) = %s, want %s", tt.mood, got, tt.want)
		}
	}
}

func TestMoodColor_UnknownFallsBackToNeutral(t *testing.T) {
	if got := MoodColor("bewildered"); got != "#9E9E9E" {
		t.Errorf("MoodColor(unknown) = %q, want neutral grey", got)
	}
	if got := MoodColor(constants.MoodHappy); got != "#4CAF50" {
		t.Errorf("MoodColor(happy) = %q", got)
	}
}
