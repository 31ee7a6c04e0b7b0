package calibration

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/wordcalc/internal/errors"
)

type plainColors struct{}

func (plainColors) Red() string    { return "" }
func (plainColors) Yellow() string { return "" }
func (plainColors) Reset() string  { return "" }

func quickOptions() Options {
	return Options{ProbeDigits: 32, Repeats: 1, Thresholds: []int{4, 8, 16, 1}, GCMode: GCModeDisabled, ProfilePath: "-"}
}

func TestCalibrate(t *testing.T) {
	t.Parallel()
	var last float64
	calls := 0
	outcome, err := NewCalibrator(quickOptions()).Calibrate(context.Background(), func(v float64) {
		calls++
		if v < last {
			t.Errorf("progress went back from %v to %v", last, v)
		}
		last = v
	})
	if err != nil {
		t.Fatalf("Calibrate() error = %v", err)
	}
	if len(outcome.Results) != 4 {
		t.Fatalf("got %d results, want 4", len(outcome.Results))
	}
	if outcome.Results[3].Err == nil {
		t.Error("threshold 1 was accepted")
	}
	if outcome.Best < 4 || outcome.Best > 16 {
		t.Errorf("Best = %d, want one of the valid candidates", outcome.Best)
	}
	if calls != 5 || last != 1 {
		t.Errorf("progress called %d times, last %v", calls, last)
	}
}

func TestCalibrateCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCalibrator(quickOptions()).Calibrate(ctx, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestCalibrateNoValidCandidate(t *testing.T) {
	t.Parallel()
	opts := quickOptions()
	opts.Thresholds = []int{0, 1}
	if _, err := NewCalibrator(opts).Calibrate(context.Background(), nil); err == nil {
		t.Error("expected an error when every probe fails")
	}
}

func TestRunCalibrationSavesProfile(t *testing.T) {
	t.Parallel()
	opts := quickOptions()
	opts.ProfilePath = filepath.Join(t.TempDir(), "profile.json")
	var out bytes.Buffer

	code := RunCalibration(context.Background(), &out, opts, nil, zerolog.Nop(), plainColors{})
	if code != apperrors.ExitSuccess {
		t.Fatalf("RunCalibration() = %d\n%s", code, out.String())
	}
	for _, want := range []string{"Calibration Summary", "(Optimal)", "Karatsuba threshold=", opts.ProfilePath} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, out.String())
		}
	}

	profile, loaded := LoadOrCreateProfile(opts.ProfilePath)
	if !loaded || profile.OptimalKaratsubaThreshold < 4 || profile.ProbeDigits != 32 {
		t.Errorf("saved profile = %+v, loaded=%v", profile, loaded)
	}
}

func TestGCControllerModes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		mode   GCMode
		digits int
		active bool
	}{
		{GCModeAuto, GCAutoDigits - 1, false},
		{GCModeAuto, GCAutoDigits, true},
		{GCModeAggressive, 1, true},
		{GCModeDisabled, 1 << 20, false},
	}
	for _, tt := range tests {
		if got := NewGCController(tt.mode, tt.digits).Active(); got != tt.active {
			t.Errorf("NewGCController(%s, %d).Active() = %v, want %v", tt.mode, tt.digits, got, tt.active)
		}
	}
}
