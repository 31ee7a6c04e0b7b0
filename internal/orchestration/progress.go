package orchestration

import (
	"time"

	"github.com/agbru/wordcalc/internal/format"
)

// ProgressAggregator manages multi-suite progress aggregation.
// It wraps format.ProgressWithETA and provides a higher-level API
// for consuming progress updates from a channel.
type ProgressAggregator struct {
	state     *format.ProgressWithETA
	numSuites int
}

// NewProgressAggregator creates a new aggregator for the given number
// of suites. Returns nil if numSuites <= 0.
func NewProgressAggregator(numSuites int) *ProgressAggregator {
	if numSuites <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:     format.NewProgressWithETA(numSuites),
		numSuites: numSuites,
	}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// SuiteIndex is the index of the suite that sent the update.
	SuiteIndex int
	// Value is the raw progress value from the update (0.0 to 1.0).
	Value float64
	// AverageProgress is the aggregated average across all suites.
	AverageProgress float64
	// ETA is the estimated time remaining based on smoothed progress rate.
	ETA time.Duration
}

// Update processes a single progress update and returns the aggregated result.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	avgProgress, eta := a.state.UpdateWithETA(update.SuiteIndex, update.Value)
	return AggregatedProgress{
		SuiteIndex:      update.SuiteIndex,
		Value:           update.Value,
		AverageProgress: avgProgress,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average progress without updating.
// Useful for periodic refresh between updates (e.g., CLI ticker).
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA estimate without updating.
// Useful for periodic refresh between updates (e.g., CLI ticker).
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumSuites returns the number of suites being tracked.
func (a *ProgressAggregator) NumSuites() int {
	return a.numSuites
}

// IsMultiSuite returns true if tracking more than one suite.
func (a *ProgressAggregator) IsMultiSuite() bool {
	return a.numSuites > 1
}

// DrainChannel reads all updates from the channel without processing.
// Use this when numSuites <= 0 and updates should be discarded.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
