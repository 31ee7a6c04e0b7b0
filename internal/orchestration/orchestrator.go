package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/wordcalc/internal/errors"
	"github.com/agbru/wordcalc/internal/metrics"
	"github.com/agbru/wordcalc/internal/verify"
)

const tracerName = "github.com/agbru/wordcalc/internal/orchestration"

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking suite
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// Orchestrator runs verification suites concurrently.
type Orchestrator struct {
	logger      zerolog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
	concurrency int
}

// NewOrchestrator returns an orchestrator with logging disabled, no metrics
// and the global tracer provider.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		logger: zerolog.Nop(),
		tracer: otel.Tracer(tracerName),
	}
}

// SetLogger configures the logger for suite lifecycle events.
func (o *Orchestrator) SetLogger(l zerolog.Logger) {
	o.logger = l
}

// SetMetrics records every suite outcome in m.
func (o *Orchestrator) SetMetrics(m *metrics.Metrics) {
	o.metrics = m
}

// SetConcurrency bounds the number of suites running at once. Zero or less
// removes the bound.
func (o *Orchestrator) SetConcurrency(n int) {
	o.concurrency = n
}

// ExecuteSuites runs suites with a default orchestrator.
func ExecuteSuites(ctx context.Context, suites []verify.Suite, opts verify.Options, progressReporter ProgressReporter, out io.Writer) []SuiteResult {
	return NewOrchestrator().ExecuteSuites(ctx, suites, opts, progressReporter, out)
}

// ExecuteSuites orchestrates the concurrent execution of suites.
//
// It manages the lifecycle of the suite goroutines, collects their results,
// and coordinates the display of progress updates. A failing suite does not
// stop the others; cancellation of ctx does.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - suites: The suites to run.
//   - opts: The options passed to every suite.
//   - progressReporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []SuiteResult: One result per suite, in the order of suites.
func (o *Orchestrator) ExecuteSuites(ctx context.Context, suites []verify.Suite, opts verify.Options, progressReporter ProgressReporter, out io.Writer) []SuiteResult {
	g, ctx := errgroup.WithContext(ctx)
	if o.concurrency > 0 {
		g.SetLimit(o.concurrency)
	}
	results := make([]SuiteResult, len(suites))
	progressChan := make(chan ProgressUpdate, len(suites)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(suites), out)

	for i, s := range suites {
		idx, suite := i, s
		g.Go(func() error {
			results[idx] = o.runSuite(ctx, idx, suite, opts, progressChan)
			// Only an interruption stops the group; failed suites leave the
			// others running.
			if err := results[idx].Err; apperrors.IsContextError(err) {
				return apperrors.WrapError(err, "suite %s interrupted", suite.Name())
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		o.logger.Warn().Err(err).Int("suites", len(suites)).Msg("verification interrupted")
	}
	close(progressChan)
	displayWg.Wait()

	return results
}

func (o *Orchestrator) runSuite(ctx context.Context, idx int, suite verify.Suite, opts verify.Options, progressChan chan<- ProgressUpdate) SuiteResult {
	ctx, span := o.tracer.Start(ctx, "verify."+suite.Name(),
		trace.WithAttributes(
			attribute.String("wordcalc.suite", suite.Name()),
			attribute.Int("wordcalc.iterations", opts.Iterations),
		))
	defer span.End()

	progress := func(v float64) {
		select {
		case progressChan <- ProgressUpdate{SuiteIndex: idx, Value: v}:
		case <-ctx.Done():
		}
	}

	o.logger.Debug().Str("suite", suite.Name()).Uint64("seed", opts.Seed).Msg("suite started")
	start := time.Now()
	report, err := runGuarded(ctx, suite, progress, opts)
	if errors.Is(err, context.DeadlineExceeded) {
		err = apperrors.TimeoutError{Operation: "verify " + suite.Name(), Limit: time.Since(start)}
	}
	res := SuiteResult{
		Name:        suite.Name(),
		Description: suite.Description(),
		Report:      report,
		Duration:    time.Since(start),
		Err:         err,
	}

	span.SetAttributes(attribute.Int("wordcalc.checks", report.Checks), attribute.Bool("wordcalc.skipped", report.Skipped))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "suite failed")
		o.logger.Error().Err(err).Str("suite", suite.Name()).Msg("suite failed")
	} else {
		o.logger.Debug().Str("suite", suite.Name()).Int("checks", report.Checks).Dur("duration", res.Duration).Msg("suite passed")
	}
	if o.metrics != nil && !apperrors.IsContextError(err) {
		o.metrics.RecordSuite(suite.Name(), report.Checks, res.Duration, err)
	}
	return res
}

// runGuarded runs suite and turns a panic, such as a kernel precondition
// failure, into a CalculationError for that suite alone.
func runGuarded(ctx context.Context, suite verify.Suite, progress verify.ProgressFunc, opts verify.Options) (report verify.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.CalculationError{Cause: fmt.Errorf("suite %s panicked: %v", suite.Name(), r)}
		}
	}()
	return suite.Run(ctx, progress, opts)
}

// Summarize totals results.
func Summarize(results []SuiteResult) Summary {
	s := Summary{Suites: len(results)}
	for _, r := range results {
		s.Checks += r.Report.Checks
		s.Duration += r.Duration
		switch {
		case r.Err != nil:
			s.Failed++
		case r.Report.Skipped:
			s.Skipped++
		default:
			s.Passed++
		}
	}
	return s
}

// AnalyzeSuiteResults presents results and generates the exit code of the
// run.
//
// Failed suites are listed first, then the rest by duration. A mismatch
// against the reference takes precedence over other failures; a run with no
// failure succeeds.
//
// Parameters:
//   - results: The slice of suite results to analyze.
//   - presenter: The result presenter for display formatting.
//   - handler: The handler mapping the first failure to an exit code.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeSuiteResults(results []SuiteResult, presenter ResultPresenter, handler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err != nil
		}
		return results[i].Duration < results[j].Duration
	})

	presenter.PresentSuiteTable(results, out)
	summary := Summarize(results)
	presenter.PresentSummary(summary, out)

	if summary.Failed == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Success. All %d checks agreed with the reference.\n", summary.Checks)
		return apperrors.ExitSuccess
	}

	failure := results[0].Err
	for _, r := range results {
		var v apperrors.VerificationError
		if errors.As(r.Err, &v) {
			failure = r.Err
			break
		}
	}
	fmt.Fprintf(out, "\nGlobal Status: Failure. %d of %d suites failed.\n", summary.Failed, summary.Suites)
	return handler.HandleError(failure, summary.Duration, out)
}
