//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/wordcalc/internal/verify"
)

// ProgressUpdate reports the completed fraction of one suite.
type ProgressUpdate struct {
	// SuiteIndex is the position of the suite in the executed slice.
	SuiteIndex int
	// Value is the completed fraction, from 0.0 to 1.0.
	Value float64
}

// SuiteResult encapsulates the outcome of a single verification suite.
// It is the shared domain type between orchestration and presentation layers.
type SuiteResult struct {
	Name        string
	Description string
	Report      verify.Report
	// Duration is the time taken to run the suite.
	Duration time.Duration
	// Err is nil when every check agreed with the reference.
	Err error
}

// Summary aggregates a set of suite results.
type Summary struct {
	Suites  int
	Passed  int
	Failed  int
	Skipped int
	Checks  int
	// Duration is the sum of the suite durations.
	Duration time.Duration
}

// ProgressReporter defines the interface for displaying verification progress.
// This interface decouples the orchestration layer from the presentation layer,
// following Clean Architecture principles where business logic should not
// depend on UI concerns.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from suites.
	//   - numSuites: The number of concurrent suites being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numSuites int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numSuites int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numSuites int, out io.Writer) {
	f(wg, progressChan, numSuites, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting verification results.
type ResultPresenter interface {
	// PresentSuiteTable displays one row per suite.
	PresentSuiteTable(results []SuiteResult, out io.Writer)

	// PresentSummary displays the totals of a run.
	PresentSummary(summary Summary, out io.Writer)
}

// ErrorHandler handles run errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
