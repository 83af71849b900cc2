// Package interpret derives the combined facial+EEG reading: the dominant
// band over a sampling window, the emotional state it maps to, and the
// title/interpretation pairing of face and brain state.
package interpret

import (
	"strings"

	"github.com/moodbuddy/moodbuddy/internal/constants"
	"github.com/moodbuddy/moodbuddy/internal/models"
)

// bandStates maps each derived band label to its emotional state, display
// color, and description.
var bandStates = map[constants.Band]models.EEGAnalysis{
	constants.BandAlpha: {
		DominantBand:   constants.BandAlpha,
		EmotionalState: constants.StatePeacefulContentment,
		Color:          "#27AE60",
		Description:    "Relaxed awareness and contentment",
	},
	constants.BandBeta: {
		DominantBand:   constants.BandBeta,
		EmotionalState: constants.StateMentalAgitation,
		Color:          "#F39C12",
		Description:    "Stress and mental tension",
	},
	constants.BandTheta: {
		DominantBand:   constants.BandTheta,
		EmotionalState: constants.StateEmotionalVulnerability,
		Color:          "#8E44AD",
		Description:    "Emotional processing and vulnerability",
	},
	constants.BandDelta: {
		DominantBand:   constants.BandDelta,
		EmotionalState: constants.StateSubconsciousProcessing,
		Color:          "#2D1B69",
		Description:    "Deep processing/recovery state",
	},
	constants.BandGamma: {
		DominantBand:   constants.BandGamma,
		EmotionalState: constants.StateIntenseProcessing,
		Color:          "#E74C3C",
		Description:    "High-intensity emotional processing",
	},
}

// NormalizeBand maps a raw sample band name onto the derived title-case
// label. The raw vocabulary splits beta into lowbeta/highbeta, which have no
// counterpart in the five-state table; both fold into Beta.
func NormalizeBand(raw string) constants.Band {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "lowbeta", "highbeta", "beta":
		return constants.BandBeta
	case "theta":
		return constants.BandTheta
	case "delta":
		return constants.BandDelta
	case "gamma":
		return constants.BandGamma
	default:
		return constants.BandAlpha
	}
}

// DominantBand selects the band with the maximum averaged percentage. Ties
// resolve to whichever band appears first in the input, which is
// deterministic for a fixed input order. An empty window defaults to Alpha.
func DominantBand(averaged []models.AveragedBandPower) constants.Band {
	if len(averaged) == 0 {
		return constants.BandAlpha
	}

	best := averaged[0]
	for _, candidate := range averaged[1:] {
		if candidate.Percentage > best.Percentage {
			best = candidate
		}
	}
	return NormalizeBand(best.Band)
}

// BandAnalysis returns the emotional state, color, and description for a
// derived band label.
func BandAnalysis(band constants.Band) models.EEGAnalysis {
	if analysis, ok := bandStates[band]; ok {
		return analysis
	}
	return bandStates[constants.BandAlpha]
}

// ToAnalysisBands projects averaged raw-band powers onto the five derived
// bands used by the remote analyzer, all lowercase. Low and high beta merge
// by arithmetic mean; bands with no raw counterpart are reported as zero.
func ToAnalysisBands(averaged []models.AveragedBandPower) map[string]float64 {
	out := map[string]float64{
		"alpha": 0, "beta": 0, "theta": 0, "delta": 0, "gamma": 0,
	}

	betaSum, betaN := 0.0, 0
	for _, band := range averaged {
		switch strings.ToLower(band.Band) {
		case "alpha":
			out["alpha"] = band.Percentage
		case "theta":
			out["theta"] = band.Percentage
		case "delta":
			out["delta"] = band.Percentage
		case "gamma":
			out["gamma"] = band.Percentage
		case "lowbeta", "highbeta", "beta":
			betaSum += band.Percentage
			betaN++
		}
	}
	if betaN > 0 {
		out["beta"] = betaSum / float64(betaN)
	}
	return out
}
