package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/wordcalc/internal/format"
	"github.com/agbru/wordcalc/internal/orchestration"
)

const (
	// TruncationLimit is the digit count from which a value is truncated in
	// standard output.
	TruncationLimit = 100
	// DisplayEdges is the number of digits kept at each end of a truncated
	// decimal value.
	DisplayEdges = 25
	// HexDisplayEdges is the number of digits kept at each end of a truncated
	// value in base 2, 8 or 16.
	HexDisplayEdges = 40
	// ProgressRefreshRate is the refresh period of the progress line.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts the terminal spinner so DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// progressLine renders the suffix shown after the spinner.
func progressLine(label string, progress float64, eta time.Duration) string {
	return fmt.Sprintf(" %s %s", label, format.FormatProgressBarWithETA(progress, eta, ProgressBarWidth))
}

// DisplayProgress consumes progress updates from progressChan and renders an
// aggregated progress bar with an ETA until the channel is closed. It calls
// wg.Done on return.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numSuites int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numSuites)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	label := "Verifying"
	if agg.IsMultiSuite() {
		label = fmt.Sprintf("Verifying %d suites", agg.NumSuites())
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(progressLine(label, 0, 0))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	var last orchestration.AggregatedProgress
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.UpdateSuffix(progressLine(label, 1, 0))
				return
			}
			last = agg.Update(update)
		case <-ticker.C:
			s.UpdateSuffix(progressLine(label, last.AverageProgress, agg.GetETA()))
		}
	}
}

// SpinnerProgress starts a spinner labelled label and returns a progress
// callback for single-task work such as calibration, plus a stop function
// that must be called once the work ends.
func SpinnerProgress(label string, out io.Writer) (progress func(float64), stop func()) {
	state := format.NewProgressWithETA(1)
	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(progressLine(label, 0, 0))
	s.Start()

	var mu sync.Mutex
	progress = func(v float64) {
		mu.Lock()
		defer mu.Unlock()
		avg, eta := state.UpdateWithETA(0, v)
		s.UpdateSuffix(progressLine(label, avg, eta))
	}
	var once sync.Once
	stop = func() { once.Do(s.Stop) }
	return progress, stop
}
