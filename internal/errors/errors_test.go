package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// errFlagged stands in for core.ErrOverflow, which this package cannot import.
var errFlagged = errors.New("arithmetic overflow")

func TestErrorMessages(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"trapped u128 multiplication",
			ArithmeticError{Op: "mul", Type: "u128", Cause: errFlagged},
			"mul on u128: arithmetic overflow",
		},
		{
			"suite mismatch",
			VerificationError{Suite: "divide-u32", Case: "n=[0 1] d=[3]", Want: "1431655765", Got: "1431655764"},
			"suite divide-u32: n=[0 1] d=[3]: got 1431655764, want 1431655765",
		},
		{
			"operand out of range",
			ValidationError{Field: "operand 2", Message: "300 does not fit u8"},
			`validation error for "operand 2": 300 does not fit u8`,
		},
		{
			"negative uxl operand",
			ValidationError{Field: "operand 1", Message: "uxl operands must be non-negative"},
			`validation error for "operand 1": uxl operands must be non-negative`,
		},
		{
			"suite timeout",
			TimeoutError{Operation: "verify wide-u128", Limit: 1500 * time.Millisecond},
			`operation "verify wide-u128" timed out after 1.5s`,
		},
		{
			"bad threshold flag",
			NewConfigError("--karatsuba-threshold must be 0 or at least %d", 2),
			"--karatsuba-threshold must be 0 or at least 2",
		},
		{
			"suite panic",
			CalculationError{Cause: errors.New("suite rebind-u8 panicked: size mismatch")},
			"suite rebind-u8 panicked: size mismatch",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorChains(t *testing.T) {
	t.Parallel()
	trap := ArithmeticError{Op: "sqr", Type: "i512", Cause: errFlagged}
	mismatch := VerificationError{Suite: "infinite-u8"}

	t.Run("trap survives wrapping", func(t *testing.T) {
		t.Parallel()
		err := WrapError(trap, "eval %s", "i512")
		var got ArithmeticError
		if !errors.As(err, &got) || got.Type != "i512" || got.Op != "sqr" {
			t.Errorf("errors.As lost the ArithmeticError: %v", err)
		}
		if !errors.Is(err, errFlagged) {
			t.Error("errors.Is should reach the overflow cause")
		}
	})

	t.Run("mismatch inside a calculation error", func(t *testing.T) {
		t.Parallel()
		var got VerificationError
		if !errors.As(CalculationError{Cause: mismatch}, &got) || got.Suite != "infinite-u8" {
			t.Error("errors.As should find the VerificationError")
		}
	})

	t.Run("timeout is a deadline", func(t *testing.T) {
		t.Parallel()
		err := WrapError(TimeoutError{Operation: "verify mul-u16", Limit: time.Second}, "suite mul-u16 interrupted")
		if !errors.Is(err, context.DeadlineExceeded) || !IsContextError(err) {
			t.Errorf("%v should count as an expired deadline", err)
		}
		var got TimeoutError
		if !errors.As(err, &got) || got.Limit != time.Second {
			t.Errorf("errors.As lost the TimeoutError: %v", err)
		}
	})
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "saving %s", "result.txt") != nil {
		t.Error("WrapError(nil) should be nil")
	}

	base := fmt.Errorf("open result.txt: %w", errors.New("permission denied"))
	err := WrapError(base, "saving result for %s %s", "u64", "add")
	if got, want := err.Error(), "saving result for u64 add: open result.txt: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if errors.Unwrap(err) != base {
		t.Error("Unwrap should return the wrapped error")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled by SIGINT", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped cancel", WrapError(context.Canceled, "suite %s interrupted", "mul-u16"), true},
		{"timeout", TimeoutError{Operation: "calibrate"}, true},
		{"trap", ArithmeticError{Op: "add", Type: "u8", Cause: errFlagged}, false},
		{"mismatch", VerificationError{Suite: "vector-u64"}, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := []int{ExitSuccess, ExitErrorGeneric, ExitErrorTimeout, ExitErrorMismatch, ExitErrorConfig, ExitErrorOverflow, ExitErrorCanceled}
	want := []int{0, 1, 2, 3, 4, 5, 130}
	for i := range codes {
		if codes[i] != want[i] {
			t.Errorf("exit code %d = %d, want %d", i, codes[i], want[i])
		}
	}
}
