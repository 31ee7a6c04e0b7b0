package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/agbru/wordcalc/internal/cli"
	apperrors "github.com/agbru/wordcalc/internal/errors"
	"github.com/agbru/wordcalc/internal/eval"
	"github.com/agbru/wordcalc/internal/logging"
	"github.com/agbru/wordcalc/internal/metrics"
	"github.com/agbru/wordcalc/internal/oracle"
	"github.com/agbru/wordcalc/internal/orchestration"
	"github.com/agbru/wordcalc/internal/sysmon"
	"github.com/agbru/wordcalc/internal/verify"
)

// runEval evaluates one operation and prints its result.
func (a *Application) runEval(out io.Writer) int {
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	res, err := a.Evaluators.Evaluate(eval.Request{
		Type:     a.Config.Type,
		Op:       a.Config.Op,
		Operands: a.Config.Operands,
		Policy:   a.Config.Overflow,
		Words:    a.Config.ToWordsOptions(),
	})
	var arith apperrors.ArithmeticError
	if err == nil || errors.As(err, &arith) {
		a.Metrics.RecordOperation(a.Config.Type, a.Config.Op, res.Overflow)
	}
	if err != nil {
		a.log.Debug("evaluation failed", logging.String("type", a.Config.Type), logging.String("op", a.Config.Op), logging.Err(err))
		return apperrors.HandleCalculationError(err, 0, out, cli.CLIColorProvider{})
	}

	outputCfg := cli.OutputConfig{
		Base:       a.Config.Base,
		OutputFile: a.Config.Output,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
	if err := cli.DisplayResultWithConfig(out, res, outputCfg); err != nil {
		a.log.Error("saving result failed", err, logging.String("path", a.Config.Output))
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runVerify runs the selected suites concurrently against the configured
// reference and reports a table and a summary.
func (a *Application) runVerify(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.withLifecycle(ctx)
	defer cancel()

	ref, ok := oracle.Lookup(a.Config.Reference)
	if !ok {
		return apperrors.HandleCalculationError(apperrors.NewConfigError("unknown reference %q", a.Config.Reference), 0, out, cli.CLIColorProvider{})
	}
	suites, err := a.Suites.Select(a.Config.SelectedSuites())
	if err != nil {
		return apperrors.HandleCalculationError(apperrors.NewConfigError("%v", err), 0, out, cli.CLIColorProvider{})
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(suites, out)
	}

	var progressReporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	orch := orchestration.NewOrchestrator()
	orch.SetLogger(a.logger)
	orch.SetMetrics(a.Metrics)

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	if a.Config.Verbose {
		sysmon.Sample(ctx) // primes the CPU delta
	}
	opts := verify.Options{
		Seed:       a.Config.Seed,
		Iterations: a.Config.Iterations,
		Words:      a.Config.ToWordsOptions(),
		Reference:  ref,
	}
	results := orch.ExecuteSuites(ctx, suites, opts, progressReporter, progressOut)
	after := collector.Snapshot()

	presenter := cli.CLIResultPresenter{Verbose: a.Config.Verbose}
	if a.Config.Quiet {
		code := orchestration.AnalyzeSuiteResults(results, presenter, presenter, io.Discard)
		summary := orchestration.Summarize(results)
		status := "ok"
		if code != apperrors.ExitSuccess {
			status = "FAIL"
		}
		fmt.Fprintf(out, "%s %d/%d\n", status, summary.Passed, summary.Suites)
		return code
	}

	code := orchestration.AnalyzeSuiteResults(results, presenter, presenter, out)
	if a.Config.Verbose {
		cli.DisplayMemoryStats(before, after, out)
		cli.DisplaySystemStats(sysmon.Sample(ctx), out)
	}
	return code
}
