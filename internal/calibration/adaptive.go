package calibration

import (
	"slices"

	"github.com/agbru/wordcalc/internal/config"
)

// GenerateKaratsubaThresholds returns the candidate thresholds measured for
// a probe of the given length: a geometric ladder from 4 digits up to the
// probe length, plus the hardware estimate.
func GenerateKaratsubaThresholds(probeDigits int) []int {
	var thresholds []int
	for t := 4; t <= probeDigits; t += max(t/2, 4) {
		thresholds = append(thresholds, t)
	}
	if est := EstimateOptimalKaratsubaThreshold(); est <= probeDigits && !slices.Contains(thresholds, est) {
		thresholds = append(thresholds, est)
		slices.Sort(thresholds)
	}
	return thresholds
}

// GenerateQuickKaratsubaThresholds returns a short candidate list around
// the usual crossover.
func GenerateQuickKaratsubaThresholds() []int {
	return []int{8, 16, 24, 32, 48}
}

// EstimateOptimalKaratsubaThreshold delegates to config.EstimateOptimalKaratsubaThreshold.
func EstimateOptimalKaratsubaThreshold() int { return config.EstimateOptimalKaratsubaThreshold() }
