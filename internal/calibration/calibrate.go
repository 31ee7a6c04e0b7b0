package calibration

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/wordcalc/internal/errors"
	"github.com/agbru/wordcalc/internal/words"
)

const tracerName = "github.com/agbru/wordcalc/internal/calibration"

// Probe defaults.
const (
	DefaultProbeDigits = 256
	DefaultRepeats     = 5
)

// Options configures a calibration run.
type Options struct {
	// ProbeDigits is the length of both probe operands. Zero selects
	// DefaultProbeDigits.
	ProbeDigits int
	// Repeats is the number of timed multiplications per candidate; the
	// fastest is kept. Zero selects DefaultRepeats.
	Repeats int
	// Thresholds are the candidates. Nil selects GenerateKaratsubaThresholds.
	Thresholds []int
	// ProfilePath is where the result is cached. Empty selects
	// GetDefaultProfilePath; "-" disables saving.
	ProfilePath string
	GCMode      GCMode
	Seed        uint64
}

func (o Options) normalize() Options {
	if o.ProbeDigits <= 0 {
		o.ProbeDigits = DefaultProbeDigits
	}
	if o.Repeats <= 0 {
		o.Repeats = DefaultRepeats
	}
	if o.Thresholds == nil {
		o.Thresholds = GenerateKaratsubaThresholds(o.ProbeDigits)
	}
	if o.GCMode == "" {
		o.GCMode = GCModeAuto
	}
	return o
}

// ProbeResult is the timing of one candidate threshold.
type ProbeResult struct {
	Threshold int
	Duration  time.Duration
	Err       error
}

// Outcome is the result of Calibrate.
type Outcome struct {
	Results []ProbeResult
	// Best is the fastest threshold, or 0 when no probe succeeded.
	Best int
	// Baseline is the time of the long algorithm alone.
	Baseline    time.Duration
	ProbeDigits int
	Elapsed     time.Duration
}

// Calibrator times multiplication for a set of Karatsuba thresholds.
type Calibrator struct {
	opts   Options
	logger zerolog.Logger
	tracer trace.Tracer
}

// NewCalibrator returns a calibrator with logging disabled.
func NewCalibrator(opts Options) *Calibrator {
	return &Calibrator{
		opts:   opts.normalize(),
		logger: zerolog.Nop(),
		tracer: otel.Tracer(tracerName),
	}
}

// SetLogger configures the logger for probe events.
func (c *Calibrator) SetLogger(l zerolog.Logger) {
	c.logger = l
}

// Calibrate measures every candidate threshold on random operands of
// ProbeDigits digits. progress, if not nil, receives the completed fraction.
func (c *Calibrator) Calibrate(ctx context.Context, progress func(float64)) (Outcome, error) {
	start := time.Now()
	n := c.opts.ProbeDigits
	r := rand.New(rand.NewPCG(c.opts.Seed, uint64(n)))
	x, y := make([]uint64, n), make([]uint64, n)
	for i := range n {
		x[i], y[i] = r.Uint64(), r.Uint64()
	}
	out := make([]uint64, 2*n)

	gc := NewGCController(c.opts.GCMode, n)
	gc.SetLogger(c.logger)
	gc.Begin()
	defer gc.End()

	report := func(v float64) {
		if progress != nil {
			progress(v)
		}
	}
	total := float64(len(c.opts.Thresholds) + 1)

	outcome := Outcome{ProbeDigits: n}
	outcome.Baseline = c.time(func() {
		words.InitProductLong(words.MutOf(out), words.Of(x...), words.Of(y...))
	})
	report(1 / total)

	for i, t := range c.opts.Thresholds {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}
		res := c.probe(ctx, t, x, y, out)
		outcome.Results = append(outcome.Results, res)
		report(float64(i+2) / total)
	}

	var best time.Duration
	for _, res := range outcome.Results {
		if res.Err == nil && (best == 0 || res.Duration < best) {
			best, outcome.Best = res.Duration, res.Threshold
		}
	}
	outcome.Elapsed = time.Since(start)
	if outcome.Best == 0 {
		return outcome, fmt.Errorf("no calibration probe succeeded")
	}
	c.logger.Info().
		Int("threshold", outcome.Best).
		Dur("best", best).
		Dur("long", outcome.Baseline).
		Msg("calibration complete")
	return outcome, nil
}

func (c *Calibrator) probe(ctx context.Context, threshold int, x, y, out []uint64) (res ProbeResult) {
	_, span := c.tracer.Start(ctx, "calibrate.probe",
		trace.WithAttributes(
			attribute.Int("wordcalc.threshold", threshold),
			attribute.Int("wordcalc.digits", len(x)),
		))
	defer span.End()

	res.Threshold = threshold
	if threshold < 2 {
		res.Err = fmt.Errorf("threshold %d is below 2", threshold)
		span.RecordError(res.Err)
		return res
	}
	opts := words.Options{KaratsubaThreshold: threshold, MaxDepth: words.DefaultMaxDepth}
	res.Duration = c.time(func() {
		words.InitProductWith(words.MutOf(out), words.Of(x...), words.Of(y...), opts)
	})
	span.SetAttributes(attribute.Int64("wordcalc.duration_ns", res.Duration.Nanoseconds()))
	c.logger.Debug().Int("threshold", threshold).Dur("duration", res.Duration).Msg("probe")
	return res
}

// time returns the fastest of Repeats runs of fn.
func (c *Calibrator) time(fn func()) time.Duration {
	var best time.Duration
	for range c.opts.Repeats {
		start := time.Now()
		fn()
		if d := time.Since(start); best == 0 || d < best {
			best = d
		}
	}
	return best
}

// RunCalibration runs a full calibration, prints the results table and
// caches the best threshold in the profile.
//
// Parameters:
//   - ctx: The context for cancellation.
//   - out: The writer for the results.
//   - opts: The calibration options.
//   - progress: Receives the completed fraction; may be nil.
//   - logger: The logger for probe events.
//   - colors: The color provider for error messages.
//
// Returns:
//   - int: The process exit code.
func RunCalibration(ctx context.Context, out io.Writer, opts Options, progress func(float64), logger zerolog.Logger, colors apperrors.ColorProvider) int {
	c := NewCalibrator(opts)
	c.SetLogger(logger)
	outcome, err := c.Calibrate(ctx, progress)
	if err != nil {
		return apperrors.HandleCalculationError(err, outcome.Elapsed, out, colors)
	}
	printCalibrationResults(out, outcome)

	profile := NewProfile()
	profile.OptimalKaratsubaThreshold = outcome.Best
	profile.ProbeDigits = outcome.ProbeDigits
	profile.CalibrationTime = outcome.Elapsed.Round(time.Millisecond).String()

	path := c.opts.ProfilePath
	if path == "" {
		path = GetDefaultProfilePath()
	}
	if path != "-" {
		if err := profile.SaveProfile(path); err != nil {
			logger.Error().Err(err).Str("path", path).Msg("calibration profile not saved")
			fmt.Fprintf(out, "%sWarning: %v%s\n", colors.Yellow(), err, colors.Reset())
		} else {
			logger.Debug().Str("path", path).Msg("calibration profile saved")
		}
	}
	printCalibrationOutput(out, profile, path)
	return apperrors.ExitSuccess
}
