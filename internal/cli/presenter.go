package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/wordcalc/internal/errors"
	"github.com/agbru/wordcalc/internal/format"
	"github.com/agbru/wordcalc/internal/metrics"
	"github.com/agbru/wordcalc/internal/orchestration"
	"github.com/agbru/wordcalc/internal/sysmon"
	"github.com/agbru/wordcalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner and progress bar.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numSuites int, out io.Writer) {
	DisplayProgress(wg, progressChan, numSuites, out)
}

// CLIResultPresenter renders verification results for a terminal.
type CLIResultPresenter struct {
	// Verbose adds the suite description column.
	Verbose bool
}

var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

func suiteDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

func suiteStatus(res orchestration.SuiteResult) (string, bool) {
	switch {
	case res.Err != nil:
		return fmt.Sprintf("FAIL (%v)", res.Err), false
	case res.Report.Skipped:
		return "skipped", true
	default:
		return "ok", true
	}
}

// PresentSuiteTable prints one row per suite. Padding is computed on the
// plain text so escape codes do not break the alignment.
func (p CLIResultPresenter) PresentSuiteTable(results []orchestration.SuiteResult, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", ui.Heading("Verification"))

	nameW, checksW, durW := len("Suite"), len("Checks"), len("Duration")
	for _, res := range results {
		nameW = max(nameW, len(res.Name))
		checksW = max(checksW, len(fmt.Sprint(res.Report.Checks)))
		durW = max(durW, len(suiteDuration(res.Duration)))
	}

	fmt.Fprintf(out, "%sSuite%s%s   %sChecks%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", nameW-len("Suite")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", checksW-len("Checks")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", durW-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		checks := fmt.Sprint(res.Report.Checks)
		dur := suiteDuration(res.Duration)
		status, ok := suiteStatus(res)
		line := fmt.Sprintf("%s%s%s%s   %s%s   %s%s%s%s   %s",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", nameW-len(res.Name)),
			padRight("", checksW-len(checks)), checks,
			ui.ColorYellow(), dur, ui.ColorReset(), padRight("", durW-len(dur)),
			ui.StatusStyle(ok).Render(status))
		if p.Verbose && res.Description != "" {
			line += "   " + res.Description
		}
		fmt.Fprintln(out, line)
	}
}

// PresentSummary prints the totals of a run.
func (CLIResultPresenter) PresentSummary(summary orchestration.Summary, out io.Writer) {
	ok := summary.Failed == 0
	verdict := fmt.Sprintf("%d/%d suites passed", summary.Passed, summary.Suites)
	fmt.Fprintf(out, "\n%s", ui.StatusStyle(ok).Render(verdict))
	if summary.Skipped > 0 {
		fmt.Fprintf(out, ", %d skipped", summary.Skipped)
	}
	fmt.Fprintf(out, " (%d checks in %s, %s)\n",
		summary.Checks, format.FormatExecutionDuration(summary.Duration), format.FormatRate(summary.Checks, summary.Duration))
}

// HandleError maps err to an exit code with colored output.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

// CLIColorProvider implements apperrors.ColorProvider with the current theme.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Red() string { return ui.ColorRed() }

func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

func (CLIColorProvider) Reset() string { return ui.ColorReset() }

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// DisplayMemoryStats prints the memory used between two snapshots.
func DisplayMemoryStats(before, after metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(after.HeapAlloc))
	fmt.Fprintf(out, "  Allocated:       %s\n", format.FormatBytes(after.Allocated(before)))
	fmt.Fprintf(out, "  GC cycles:       %d\n", after.NumGC-before.NumGC)
	if pause := after.PauseTotalNs - before.PauseTotalNs; pause > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(pause)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms\n")
	}
}

// DisplaySystemStats prints a host resource snapshot.
func DisplaySystemStats(s sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "System: %s%s%s\n", ui.ColorCyan(), s, ui.ColorReset())
}
