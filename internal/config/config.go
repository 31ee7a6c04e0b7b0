package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/wordcalc/internal/errors"
	"github.com/agbru/wordcalc/internal/eval"
	"github.com/agbru/wordcalc/internal/ui"
	"github.com/agbru/wordcalc/internal/words"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "WORDCALC_"

// Modes of operation.
const (
	ModeEval      = "eval"
	ModeVerify    = "verify"
	ModeCalibrate = "calibrate"
	ModeREPL      = "repl"
)

// Overflow policies for eval mode.
const (
	PolicyWrap = eval.PolicyWrap
	PolicyTrap = eval.PolicyTrap
)

// Log output formats: console is zerolog's human readable writer, json
// writes one JSON object per line, text goes through the standard log
// package.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
	LogFormatText    = "text"
)

// LogFormats lists the accepted --log-format values.
var LogFormats = []string{LogFormatConsole, LogFormatJSON, LogFormatText}

// AllSuites selects every registered verification suite.
const AllSuites = "all"

// Catalog lists the names the configuration is validated against. The app
// fills it from the evaluator and suite registries.
type Catalog struct {
	Types      []string
	Ops        []string
	Suites     []string
	References []string
}

// AppConfig holds the resolved configuration of one run.
type AppConfig struct {
	// Mode is one of ModeEval, ModeVerify, ModeCalibrate, ModeREPL.
	Mode string
	// Type names the integer type of eval operands, e.g. "u128" or "ixl".
	Type string
	// Op names the eval operation.
	Op string
	// Operands are the positional eval arguments, in any base big.Int accepts
	// with a prefix (0x, 0b, 0o).
	Operands []string
	// Base is the output base: 2, 8, 10 or 16.
	Base int
	// Output is a file the eval result is also written to.
	Output string
	// Overflow is PolicyWrap or PolicyTrap.
	Overflow string
	// KaratsubaThreshold is the digit count from which Karatsuba
	// multiplication is used. Zero selects the calibrated or estimated value.
	KaratsubaThreshold int
	// MaxDepth bounds the Karatsuba recursion.
	MaxDepth int
	Seed     uint64
	// Iterations is the number of random cases per verification suite.
	Iterations int
	// Suites is a comma separated list of suite names, or AllSuites.
	Suites string
	// Reference names the oracle used by verification.
	Reference string
	Timeout   time.Duration
	Quiet     bool
	Verbose   bool
	NoColor   bool
	// Theme names the ui color theme.
	Theme     string
	LogFormat string
	// Metrics dumps the Prometheus registry in text format after the run.
	Metrics bool
	// CalibrationProfile is the path of the cached calibration profile.
	CalibrationProfile string
	// Completion names a shell to print a completion script for instead of
	// running a mode.
	Completion string
	Version    bool
}

// ToWordsOptions returns the multiplication options selected by cfg.
func (c AppConfig) ToWordsOptions() words.Options {
	return words.Options{KaratsubaThreshold: c.KaratsubaThreshold, MaxDepth: c.MaxDepth}
}

// SelectedSuites returns the suite names to run; nil means all.
func (c AppConfig) SelectedSuites() []string {
	if c.Suites == "" || c.Suites == AllSuites {
		return nil
	}
	var out []string
	for _, s := range strings.Split(c.Suites, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ParseConfig parses the command line. The first argument may name the mode
// (eval, verify, calibrate, repl); otherwise --mode or WORDCALC_MODE decide. Values
// are resolved as flags, then environment variables, then defaults. Negative
// operands follow a "--" terminator.
func ParseConfig(programName string, args []string, errWriter io.Writer, catalog Catalog) (AppConfig, error) {
	var positionalMode string
	if len(args) > 0 && slices.Contains([]string{ModeEval, ModeVerify, ModeCalibrate, ModeREPL}, args[0]) {
		positionalMode, args = args[0], args[1:]
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	cfg := AppConfig{}

	fs.StringVar(&cfg.Mode, "mode", ModeVerify, "Mode: eval, verify, calibrate or repl.")
	fs.StringVar(&cfg.Type, "type", "u64", fmt.Sprintf("Operand type for eval (%s).", strings.Join(catalog.Types, ", ")))
	fs.StringVar(&cfg.Op, "op", "add", fmt.Sprintf("Operation for eval (%s).", strings.Join(catalog.Ops, ", ")))
	fs.IntVar(&cfg.Base, "base", 10, "Output base: 2, 8, 10 or 16.")
	fs.StringVar(&cfg.Output, "output", "", "Also write the eval result to this file.")
	fs.StringVar(&cfg.Output, "o", "", "Shorthand for --output.")
	fs.StringVar(&cfg.Overflow, "overflow", PolicyWrap, "Overflow policy for eval: wrap prints the wrapped value, trap fails.")
	fs.IntVar(&cfg.KaratsubaThreshold, "karatsuba-threshold", 0, "Digit count from which Karatsuba multiplication is used (0 = auto).")
	fs.IntVar(&cfg.MaxDepth, "max-depth", words.DefaultMaxDepth, "Maximum Karatsuba recursion depth.")
	fs.Uint64Var(&cfg.Seed, "seed", 1, "Seed of the verification case generator.")
	fs.IntVar(&cfg.Iterations, "iterations", 2000, "Random cases per verification suite.")
	fs.StringVar(&cfg.Suites, "suites", AllSuites, fmt.Sprintf("Comma separated suites to verify (%s).", strings.Join(catalog.Suites, ", ")))
	fs.StringVar(&cfg.Reference, "reference", "math/big", fmt.Sprintf("Reference arithmetic for verify (%s).", strings.Join(catalog.References, ", ")))
	fs.DurationVar(&cfg.Timeout, "timeout", 5*time.Minute, "Maximum run time.")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only results.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Print per-suite details and debug logs.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&cfg.Theme, "theme", ui.DefaultTheme, fmt.Sprintf("Color theme (%s).", strings.Join(ui.ThemeNames(), ", ")))
	fs.StringVar(&cfg.LogFormat, "log-format", LogFormatConsole, fmt.Sprintf("Log output format (%s).", strings.Join(LogFormats, ", ")))
	fs.BoolVar(&cfg.Metrics, "metrics", false, "Print Prometheus metrics after the run.")
	fs.StringVar(&cfg.CalibrationProfile, "calibration-profile", "", "Path of the calibration profile.")
	fs.StringVar(&cfg.Completion, "completion", "", "Print a completion script for bash, zsh, fish or powershell.")
	fs.BoolVar(&cfg.Version, "version", false, "Print version information.")
	fs.BoolVar(&cfg.Version, "V", false, "Shorthand for --version.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	cfg.Operands = fs.Args()

	applyEnvOverrides(&cfg, fs)
	if positionalMode != "" {
		cfg.Mode = positionalMode
	}

	if cfg.Version || cfg.Completion != "" {
		return cfg, nil
	}
	if err := cfg.Validate(catalog); err != nil {
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks cfg against catalog and returns an apperrors.ConfigError
// describing the first problem found.
func (c AppConfig) Validate(catalog Catalog) error {
	switch c.Mode {
	case ModeEval, ModeVerify, ModeCalibrate, ModeREPL:
	default:
		return apperrors.NewConfigError("unknown mode %q", c.Mode)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive")
	}
	if c.KaratsubaThreshold != 0 && c.KaratsubaThreshold < 2 {
		return apperrors.NewConfigError("--karatsuba-threshold must be 0 or at least 2")
	}
	if c.MaxDepth < 1 {
		return apperrors.NewConfigError("--max-depth must be at least 1")
	}
	if _, ok := ui.LookupTheme(c.Theme); !ok {
		return apperrors.NewConfigError("unknown theme %q (accepted: %s)", c.Theme, strings.Join(ui.ThemeNames(), ", "))
	}
	if !slices.Contains(LogFormats, c.LogFormat) {
		return apperrors.NewConfigError("unknown log format %q (accepted: %s)", c.LogFormat, strings.Join(LogFormats, ", "))
	}

	switch c.Mode {
	case ModeEval:
		if !slices.Contains(catalog.Types, c.Type) {
			return apperrors.NewConfigError("unknown type %q", c.Type)
		}
		if !slices.Contains(catalog.Ops, c.Op) {
			return apperrors.NewConfigError("unknown operation %q", c.Op)
		}
		if want := eval.Arity(c.Op); len(c.Operands) != want {
			return apperrors.NewConfigError("operation %q takes %d operands, got %d", c.Op, want, len(c.Operands))
		}
		switch c.Base {
		case 2, 8, 10, 16:
		default:
			return apperrors.NewConfigError("--base must be 2, 8, 10 or 16")
		}
		if c.Overflow != PolicyWrap && c.Overflow != PolicyTrap {
			return apperrors.NewConfigError("--overflow must be %q or %q", PolicyWrap, PolicyTrap)
		}
	case ModeREPL:
		if !slices.Contains(catalog.Types, c.Type) {
			return apperrors.NewConfigError("unknown type %q", c.Type)
		}
		if c.Overflow != PolicyWrap && c.Overflow != PolicyTrap {
			return apperrors.NewConfigError("--overflow must be %q or %q", PolicyWrap, PolicyTrap)
		}
	case ModeVerify:
		if c.Iterations < 1 {
			return apperrors.NewConfigError("--iterations must be at least 1")
		}
		for _, s := range c.SelectedSuites() {
			if !slices.Contains(catalog.Suites, s) {
				return apperrors.NewConfigError("unknown suite %q", s)
			}
		}
		if !slices.Contains(catalog.References, c.Reference) {
			return apperrors.NewConfigError("unknown reference %q", c.Reference)
		}
	}
	return nil
}
