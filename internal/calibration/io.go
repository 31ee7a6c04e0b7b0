package calibration

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agbru/wordcalc/internal/format"
	"github.com/agbru/wordcalc/internal/ui"
)

// printCalibrationResults formats and prints the calibration results table.
func printCalibrationResults(out io.Writer, outcome Outcome) {
	fmt.Fprintf(out, "\n%s\n", ui.Heading("Calibration Summary"))
	fmt.Fprintf(out, "Probe: %d x %d digits, long multiplication %s\n\n",
		outcome.ProbeDigits, outcome.ProbeDigits, format.FormatExecutionDuration(outcome.Baseline))
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sThreshold%s    │ %sExecution Time%s │ %sSpeedup%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s┼%s┼%s\n", strings.Repeat("─", 14), strings.Repeat("─", 16), strings.Repeat("─", 12))
	for _, res := range outcome.Results {
		label := fmt.Sprintf("%d digits", res.Threshold)
		durationStr := fmt.Sprintf("%sN/A%s", ui.ColorRed(), ui.ColorReset())
		speedup := "-"
		if res.Err == nil {
			durationStr = format.FormatExecutionDuration(res.Duration)
			if res.Duration == 0 {
				durationStr = "< 1µs"
			} else {
				speedup = fmt.Sprintf("%.2fx", float64(outcome.Baseline)/float64(res.Duration))
			}
		}
		highlight := ""
		if res.Threshold == outcome.Best && res.Err == nil {
			highlight = fmt.Sprintf(" %s(Optimal)%s", ui.ColorGreen(), ui.ColorReset())
		}
		fmt.Fprintf(tw, "  %s%-12s%s │ %s%-14s%s │ %s%s\n",
			ui.ColorCyan(), label, ui.ColorReset(), ui.ColorYellow(), durationStr, ui.ColorReset(), speedup, highlight)
	}
	tw.Flush()
}

// printCalibrationOutput prints the cached profile.
func printCalibrationOutput(out io.Writer, profile *CalibrationProfile, path string) {
	fmt.Fprintf(out, "\n%sCalibration%s: Karatsuba threshold=%s%d%s digits\n",
		ui.ColorGreen(), ui.ColorReset(), ui.ColorYellow(), profile.OptimalKaratsubaThreshold, ui.ColorReset())
	if path != "-" {
		fmt.Fprintf(out, "Profile: %s\n", path)
	}
}
