package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/wordcalc/internal/config"
	"github.com/agbru/wordcalc/internal/ui"
	"github.com/agbru/wordcalc/internal/verify"
)

// PrintExecutionConfig displays the mode, environment and multiplication
// settings of a run.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	switch cfg.Mode {
	case config.ModeEval:
		fmt.Fprintf(out, "Evaluating %s%s%s on %s%s%s with overflow policy %s%s%s and a timeout of %s%s%s.\n",
			ui.ColorMagenta(), cfg.Op, ui.ColorReset(), ui.ColorCyan(), cfg.Type, ui.ColorReset(),
			ui.ColorCyan(), cfg.Overflow, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	case config.ModeVerify:
		fmt.Fprintf(out, "Verifying against %s%s%s: %s%d%s cases per suite, seed %s%d%s, timeout %s%s%s.\n",
			ui.ColorMagenta(), cfg.Reference, ui.ColorReset(), ui.ColorCyan(), cfg.Iterations, ui.ColorReset(),
			ui.ColorCyan(), cfg.Seed, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	default:
		fmt.Fprintf(out, "Mode %s%s%s with a timeout of %s%s%s.\n",
			ui.ColorMagenta(), cfg.Mode, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s, %s%s/%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset(),
		ui.ColorCyan(), runtime.GOOS, runtime.GOARCH, ui.ColorReset())
	if features := config.CPUFeatures(); len(features) > 0 {
		fmt.Fprintf(out, "CPU features: %s%s%s.\n", ui.ColorCyan(), strings.Join(features, ", "), ui.ColorReset())
	}
	fmt.Fprintf(out, "Multiplication: Karatsuba from %s%d%s digits, depth at most %s%d%s.\n",
		ui.ColorCyan(), cfg.KaratsubaThreshold, ui.ColorReset(), ui.ColorCyan(), cfg.MaxDepth, ui.ColorReset())
}

// PrintExecutionMode lists the suites about to run.
func PrintExecutionMode(suites []verify.Suite, out io.Writer) {
	var modeDesc string
	if len(suites) > 1 {
		modeDesc = fmt.Sprintf("Parallel verification of %s%d%s suites", ui.ColorGreen(), len(suites), ui.ColorReset())
	} else if len(suites) == 1 {
		modeDesc = fmt.Sprintf("Single suite %s%s%s", ui.ColorGreen(), suites[0].Name(), ui.ColorReset())
	} else {
		modeDesc = "No suites selected"
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
