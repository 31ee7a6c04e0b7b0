package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/wordcalc/internal/calibration"
	"github.com/agbru/wordcalc/internal/cli"
	"github.com/agbru/wordcalc/internal/config"
	apperrors "github.com/agbru/wordcalc/internal/errors"
	"github.com/agbru/wordcalc/internal/eval"
	"github.com/agbru/wordcalc/internal/logging"
	"github.com/agbru/wordcalc/internal/metrics"
	"github.com/agbru/wordcalc/internal/oracle"
	"github.com/agbru/wordcalc/internal/ui"
	"github.com/agbru/wordcalc/internal/verify"
)

// Application represents the wordcalc application instance.
type Application struct {
	Config     config.AppConfig
	Evaluators *eval.Registry
	Suites     *verify.Registry
	Metrics    *metrics.Metrics
	In         io.Reader
	ErrWriter  io.Writer

	// calibrated reports that the Karatsuba threshold came from a cached
	// calibration profile.
	calibrated bool
	logger     zerolog.Logger
	log        logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithEvaluators sets the evaluator registry.
func WithEvaluators(r *eval.Registry) AppOption {
	return func(a *Application) { a.Evaluators = r }
}

// WithSuites sets the verification suite registry.
func WithSuites(r *verify.Registry) AppOption {
	return func(a *Application) { a.Suites = r }
}

// WithMetrics sets the metrics the run records into.
func WithMetrics(m *metrics.Metrics) AppOption {
	return func(a *Application) { a.Metrics = m }
}

// WithInput sets the reader of the interactive mode.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

func referenceNames() []string {
	refs := oracle.References()
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.Name()
	}
	return names
}

// New creates an Application by parsing command-line arguments. args[0] is
// the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}
	if app.Evaluators == nil {
		app.Evaluators = eval.NewDefaultRegistry()
	}
	if app.Suites == nil {
		app.Suites = verify.NewDefaultRegistry()
	}
	if app.Metrics == nil {
		app.Metrics = metrics.NewMetrics()
	}

	programName := "wordcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	catalog := config.Catalog{
		Types:      app.Evaluators.List(),
		Ops:        eval.Ops,
		Suites:     app.Suites.List(),
		References: referenceNames(),
	}
	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, catalog)
	if err != nil {
		return nil, err
	}

	if cfgWithProfile, loaded := calibration.LoadCachedCalibration(cfg, cfg.CalibrationProfile); loaded {
		cfg = cfgWithProfile
		app.calibrated = true
	} else {
		cfg = config.ApplyAdaptiveThresholds(cfg)
	}

	app.Config = cfg
	app.logger, app.log = newLoggers(cfg, errWriter, zerolog.WarnLevel)
	return app, nil
}

// newLoggers builds the zerolog logger handed to calibration and the
// orchestrator, and the Logger the app itself writes through, both in the
// configured --log-format.
func newLoggers(cfg config.AppConfig, w io.Writer, level zerolog.Level) (zerolog.Logger, logging.Logger) {
	// suites log from their own goroutines
	w = zerolog.SyncWriter(w)
	switch cfg.LogFormat {
	case config.LogFormatJSON:
		adapter := logging.NewLogger(w, "wordcalc", level)
		return adapter.Zerolog(), adapter
	case config.LogFormatText:
		std := log.New(w, "wordcalc: ", 0)
		zl := zerolog.New(zerolog.ConsoleWriter{
			Out:          stdLogWriter{std},
			NoColor:      true,
			PartsExclude: []string{zerolog.TimestampFieldName},
		}).Level(level)
		return zl, logging.NewStdLoggerAdapter(std, level)
	default:
		zl := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor, TimeFormat: time.Kitchen}).
			Level(level).With().Timestamp().Str("component", "wordcalc").Logger()
		return zl, logging.NewZerologAdapter(zl)
	}
}

// stdLogWriter routes zerolog console lines through a standard logger so
// they carry its prefix.
type stdLogWriter struct{ l *log.Logger }

func (w stdLogWriter) Write(p []byte) (int, error) {
	w.l.Print(string(p))
	return len(p), nil
}

// logLevel maps the verbosity flags to a zerolog level.
func logLevel(cfg config.AppConfig) zerolog.Level {
	switch {
	case cfg.Verbose:
		return zerolog.DebugLevel
	case cfg.Quiet:
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	a.logger, a.log = newLoggers(a.Config, a.ErrWriter, logLevel(a.Config))
	if err := ui.InitTheme(a.Config.Theme, a.Config.NoColor); err != nil {
		return apperrors.HandleCalculationError(apperrors.NewConfigError("%v", err), 0, out, cli.CLIColorProvider{})
	}

	a.Metrics.SetKaratsubaThreshold(a.Config.KaratsubaThreshold)
	a.log.Debug("configuration resolved",
		logging.String("mode", a.Config.Mode),
		logging.Int("karatsuba_threshold", a.Config.KaratsubaThreshold),
		logging.Bool("calibrated", a.calibrated))

	var code int
	switch a.Config.Mode {
	case config.ModeEval:
		code = a.runEval(out)
	case config.ModeVerify:
		code = a.runVerify(ctx, out)
	case config.ModeCalibrate:
		code = a.runCalibration(ctx, out)
	case config.ModeREPL:
		code = a.runREPL(out)
	default:
		code = apperrors.HandleCalculationError(apperrors.NewConfigError("unknown mode %q", a.Config.Mode), 0, out, cli.CLIColorProvider{})
	}

	if a.Config.Metrics {
		fmt.Fprintf(out, "\n%s\n", ui.Heading("Metrics"))
		if err := a.Metrics.Dump(out); err != nil {
			a.log.Error("metrics dump failed", err)
		}
	}
	return code
}

// withLifecycle bounds ctx by the configured timeout and by SIGINT/SIGTERM.
func (a *Application) withLifecycle(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	names := cli.CompletionNames{
		Types:  a.Evaluators.List(),
		Ops:    eval.Ops,
		Suites: a.Suites.List(),
	}
	if err := cli.GenerateCompletion(out, a.Config.Completion, names); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runCalibration measures the Karatsuba crossover and caches the profile.
func (a *Application) runCalibration(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.withLifecycle(ctx)
	defer cancel()

	opts := calibration.Options{
		ProfilePath: a.Config.CalibrationProfile,
		GCMode:      calibration.GCModeAuto,
		Seed:        a.Config.Seed,
	}
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	var progress func(float64)
	if !a.Config.Quiet {
		update, stop := cli.SpinnerProgress("Calibrating", out)
		defer stop()
		progress = func(v float64) {
			update(v)
			if v >= 1 {
				stop()
			}
		}
	}
	return calibration.RunCalibration(ctx, out, opts, progress, a.logger, cli.CLIColorProvider{})
}

// runREPL starts an interactive evaluation session.
func (a *Application) runREPL(out io.Writer) int {
	r := cli.NewREPL(a.Evaluators, cli.REPLConfig{
		Type:   a.Config.Type,
		Base:   a.Config.Base,
		Policy: a.Config.Overflow,
		Words:  a.Config.ToWordsOptions(),
		OnResult: func(res eval.Result) {
			a.Metrics.RecordOperation(res.Type, res.Op, res.Overflow)
		},
	})
	r.SetInput(a.In)
	r.SetOutput(out)
	r.Start()
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
