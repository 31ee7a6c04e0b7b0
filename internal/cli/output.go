// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayEvalResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatValue], [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/wordcalc/internal/eval"
	"github.com/agbru/wordcalc/internal/format"
	"github.com/agbru/wordcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// Base is the output base: 2, 8, 10 or 16.
	Base int
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet prints only the values.
	Quiet bool
	// Verbose disables truncation of long values.
	Verbose bool
}

var basePrefixes = map[int]string{2: "0b", 8: "0o", 16: "0x"}

// FormatValue renders v in base with the literal prefix ParseOperand
// accepts, so printed values can be fed back as operands.
func FormatValue(v *big.Int, base int) string {
	prefix, ok := basePrefixes[base]
	if !ok {
		return v.String()
	}
	if v.Sign() < 0 {
		return "-" + prefix + new(big.Int).Neg(v).Text(base)
	}
	return prefix + v.Text(base)
}

// FormatQuietResult renders the values of res separated by spaces.
func FormatQuietResult(res eval.Result, base int) string {
	parts := make([]string, len(res.Values))
	for i, v := range res.Values {
		parts[i] = FormatValue(v.Int, base)
	}
	return strings.Join(parts, " ")
}

// DisplayQuietResult prints res on a single line for scripts.
func DisplayQuietResult(out io.Writer, res eval.Result, base int) {
	fmt.Fprintln(out, FormatQuietResult(res, base))
}

// displayValue groups decimal digits and truncates long values unless
// verbose is set. It reports whether the value was truncated.
func displayValue(v *big.Int, base int, verbose bool) (string, bool) {
	s := FormatValue(v, base)
	if base == 10 {
		if !verbose && len(s) > TruncationLimit {
			return s[:DisplayEdges] + "..." + s[len(s)-DisplayEdges:], true
		}
		return format.FormatNumberString(s), false
	}
	if !verbose && len(s) > 2*HexDisplayEdges+3 {
		return s[:HexDisplayEdges] + "..." + s[len(s)-HexDisplayEdges:], true
	}
	return s, false
}

// DisplayEvalResult prints an evaluation with its operands, labelled values
// and overflow status.
func DisplayEvalResult(res eval.Result, base int, verbose bool, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", ui.Heading("Result"))

	operands := make([]string, len(res.Operands))
	for i, o := range res.Operands {
		operands[i] = FormatValue(o, base)
		if !verbose && len(operands[i]) > TruncationLimit {
			operands[i] = operands[i][:DisplayEdges] + "..." + operands[i][len(operands[i])-DisplayEdges:]
		}
	}
	fmt.Fprintf(out, "%s%s%s %s%s%s(%s)\n",
		ui.ColorCyan(), res.Type, ui.ColorReset(),
		ui.ColorMagenta(), res.Op, ui.ColorReset(), strings.Join(operands, ", "))

	truncated := false
	for _, v := range res.Values {
		s, cut := displayValue(v.Int, base, verbose)
		truncated = truncated || cut
		fmt.Fprintf(out, "  %-10s = %s%s%s", v.Label, ui.ColorGreen(), s, ui.ColorReset())
		if v.Infinite {
			fmt.Fprintf(out, " %s(infinite: extension bit set, two's complement reading)%s", ui.ColorYellow(), ui.ColorReset())
		}
		fmt.Fprintln(out)
	}
	if truncated {
		fmt.Fprintf(out, "  (truncated) Tip: use %s--verbose%s to display the full value.\n", ui.ColorYellow(), ui.ColorReset())
	}

	status := "exact"
	if res.Overflow {
		status = "overflow (wrapped)"
	}
	fmt.Fprintf(out, "Status: %s\n", ui.StatusStyle(!res.Overflow).Render(status))
	fmt.Fprintf(out, "Time: %s%s%s\n", ui.ColorYellow(), format.FormatExecutionDuration(res.Duration), ui.ColorReset())
}

// WriteResultToFile writes res with a commented header to cfg.OutputFile.
// Values are written in full.
func WriteResultToFile(res eval.Result, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# wordcalc eval result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Type: %s\n", res.Type)
	fmt.Fprintf(file, "# Operation: %s\n", res.Op)
	fmt.Fprintf(file, "# Overflow: %t\n", res.Overflow)
	fmt.Fprintf(file, "# Duration: %s\n", res.Duration)
	fmt.Fprintf(file, "\n")
	for i, o := range res.Operands {
		fmt.Fprintf(file, "operand%d = %s\n", i+1, FormatValue(o, cfg.Base))
	}
	for _, v := range res.Values {
		fmt.Fprintf(file, "%s = %s\n", v.Label, FormatValue(v.Int, cfg.Base))
	}
	return file.Close()
}

// DisplayResultWithConfig prints res according to cfg and writes it to
// cfg.OutputFile when set.
func DisplayResultWithConfig(out io.Writer, res eval.Result, cfg OutputConfig) error {
	if cfg.Quiet {
		DisplayQuietResult(out, res, cfg.Base)
	} else {
		DisplayEvalResult(res, cfg.Base, cfg.Verbose, out)
	}

	if cfg.OutputFile != "" {
		if err := WriteResultToFile(res, cfg); err != nil {
			return err
		}
		if !cfg.Quiet {
			fmt.Fprintf(out, "\n%sResult saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), cfg.OutputFile, ui.ColorReset())
		}
	}
	return nil
}
