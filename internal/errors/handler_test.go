package apperrors

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type plainColors struct{}

func (plainColors) Red() string    { return "" }
func (plainColors) Yellow() string { return "" }
func (plainColors) Reset() string  { return "" }

func TestHandleCalculationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		duration time.Duration
		wantCode int
		contains string
	}{
		{"nil", nil, 0, ExitSuccess, ""},
		{"config", NewConfigError("bad --type"), 0, ExitErrorConfig, "Configuration error"},
		{"invalid operand", ValidationError{Field: "operand 1", Message: "does not fit u8"}, 0, ExitErrorConfig, "Invalid input"},
		{"overflow", WrapError(ArithmeticError{Op: "add", Type: "u8", Cause: errors.New("overflow")}, "eval"), 0, ExitErrorOverflow, "Arithmetic overflow"},
		{"mismatch", CalculationError{Cause: VerificationError{Suite: "s"}}, 0, ExitErrorMismatch, "Verification mismatch"},
		{"timeout", TimeoutError{Operation: "verify", Limit: time.Second}, time.Second, ExitErrorTimeout, "after 1s"},
		{"deadline", context.DeadlineExceeded, 0, ExitErrorTimeout, "Timeout"},
		{"canceled", WrapError(context.Canceled, "verify"), 0, ExitErrorCanceled, "Canceled"},
		{"generic", errors.New("boom"), 0, ExitErrorGeneric, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := HandleCalculationError(tt.err, tt.duration, &buf, plainColors{})
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.contains)
			}
			if tt.err == nil && buf.Len() != 0 {
				t.Errorf("nil error printed %q", buf.String())
			}
		})
	}
}
