// Package eeg handles raw band-power sampling: the fixed-duration collection
// window against the device session and the per-band averaging of its
// snapshots. Band names here use the raw sampling vocabulary (theta, alpha,
// lowbeta, highbeta, gamma); mapping to the derived five-band labels lives in
// the interpret package.
package eeg

import (
	"math"

	"github.com/moodbuddy/moodbuddy/internal/models"
)

// BandDescriptions are the static human-readable labels for raw sample bands.
var BandDescriptions = map[string]string{
	"theta":    "Drowsiness, meditation",
	"alpha":    "Relaxation, creativity",
	"lowbeta":  "Focus, alertness",
	"highbeta": "Anxiety, engagement",
	"gamma":    "Information processing",
}

// Describe returns the static label for a raw band name.
func Describe(band string) string {
	if desc, ok := BandDescriptions[band]; ok {
		return desc
	}
	return "No description"
}

// Average computes the arithmetic mean power share per band across all
// snapshots, rounded to two decimals. Bands never observed are absent from
// the output, and output order follows first appearance across the input.
// An empty input means "no data collected" and yields an empty result.
func Average(snapshots [][]models.BandSample) []models.AveragedBandPower {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for _, snapshot := range snapshots {
		for _, sample := range snapshot {
			if _, seen := sums[sample.Band]; !seen {
				order = append(order, sample.Band)
			}
			sums[sample.Band] += sample.Percentage
			counts[sample.Band]++
		}
	}

	averaged := make([]models.AveragedBandPower, 0, len(order))
	for _, band := range order {
		mean := sums[band] / float64(counts[band])
		averaged = append(averaged, models.AveragedBandPower{
			Band:        band,
			Percentage:  math.Round(mean*100) / 100,
			Description: Describe(band),
		})
	}
	return averaged
}
