// Package orchestration runs verification suites concurrently and aggregates
// their results. It decouples the run from presentation via the
// ProgressReporter and ResultPresenter interfaces.
package orchestration
