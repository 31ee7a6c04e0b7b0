package calibration

import (
	"slices"
	"testing"
)

func TestGenerateKaratsubaThresholds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		digits int
	}{
		{"tiny probe", 6},
		{"default probe", DefaultProbeDigits},
		{"large probe", 2048},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			thresholds := GenerateKaratsubaThresholds(tt.digits)
			if len(thresholds) == 0 || thresholds[0] != 4 {
				t.Fatalf("expected ladder to start at 4, got %v", thresholds)
			}
			if !slices.IsSorted(thresholds) {
				t.Errorf("thresholds not sorted: %v", thresholds)
			}
			if len(slices.Compact(slices.Clone(thresholds))) != len(thresholds) {
				t.Errorf("duplicate thresholds: %v", thresholds)
			}
			for _, th := range thresholds {
				if th < 2 || th > tt.digits {
					t.Errorf("threshold %d outside [2, %d]", th, tt.digits)
				}
			}
		})
	}
}

func TestGenerateKaratsubaThresholdsIncludesEstimate(t *testing.T) {
	t.Parallel()
	est := EstimateOptimalKaratsubaThreshold()
	if !slices.Contains(GenerateKaratsubaThresholds(DefaultProbeDigits), est) {
		t.Errorf("estimate %d missing from candidates", est)
	}
}

func TestGenerateQuickKaratsubaThresholds(t *testing.T) {
	t.Parallel()
	quick := GenerateQuickKaratsubaThresholds()
	if len(quick) >= len(GenerateKaratsubaThresholds(DefaultProbeDigits)) {
		t.Error("quick candidates should be fewer than the full ladder")
	}
	for _, th := range quick {
		if th < 2 {
			t.Errorf("quick threshold %d below 2", th)
		}
	}
}
