package config

import (
	"strconv"

	"golang.org/x/sys/cpu"

	"github.com/agbru/wordcalc/internal/words"
)

// Karatsuba threshold resolution chain (highest priority first):
//   1. CLI flag --karatsuba-threshold
//   2. WORDCALC_KARATSUBA_THRESHOLD
//   3. Cached calibration profile (~/.wordcalc_calibration.json)
//   4. Hardware estimate (this file)
//   5. words.DefaultKaratsubaThreshold

// ApplyAdaptiveThresholds fills a zero Karatsuba threshold with the hardware
// estimate. User supplied values are preserved.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.KaratsubaThreshold == 0 {
		cfg.KaratsubaThreshold = EstimateOptimalKaratsubaThreshold()
	}
	return cfg
}

// EstimateOptimalKaratsubaThreshold estimates the Karatsuba crossover in
// digits without benchmarking. A native 64x64->128 multiply makes long
// multiplication cheaper, pushing the crossover up.
func EstimateOptimalKaratsubaThreshold() int {
	switch {
	case strconv.IntSize == 64 && (cpu.X86.HasBMI2 || cpu.ARM64.HasASIMD):
		return 2 * words.DefaultKaratsubaThreshold
	case strconv.IntSize == 64:
		return words.DefaultKaratsubaThreshold + words.DefaultKaratsubaThreshold/2
	default:
		return words.DefaultKaratsubaThreshold
	}
}

// CPUFeatures names the detected CPU features that affect multiplication
// speed.
func CPUFeatures() []string {
	var features []string
	for _, f := range []struct {
		name string
		has  bool
	}{
		{"bmi2", cpu.X86.HasBMI2},
		{"adx", cpu.X86.HasADX},
		{"avx2", cpu.X86.HasAVX2},
		{"asimd", cpu.ARM64.HasASIMD},
		{"pmull", cpu.ARM64.HasPMULL},
	} {
		if f.has {
			features = append(features, f.name)
		}
	}
	return features
}
