package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the escape codes used by HandleCalculationError so
// this package stays independent of the ui package.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleCalculationError prints err to out and maps it to an exit code.
// A nil error returns ExitSuccess without printing.
//
// Parameters:
//   - err: The error to report.
//   - duration: The elapsed time, printed for timeouts when non-zero.
//   - out: The writer for the report.
//   - colors: The color provider.
//
// Returns:
//   - int: The process exit code.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	msgSuffix := ""
	if duration > 0 {
		msgSuffix = fmt.Sprintf(" after %s", duration)
	}

	var (
		configErr       ConfigError
		validationErr   ValidationError
		arithmeticErr   ArithmeticError
		verificationErr VerificationError
		timeoutErr      TimeoutError
	)
	switch {
	case errors.As(err, &configErr):
		fmt.Fprintf(out, "%sConfiguration error: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorConfig
	case errors.As(err, &validationErr):
		fmt.Fprintf(out, "%sInvalid input: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorConfig
	case errors.As(err, &arithmeticErr):
		fmt.Fprintf(out, "%sArithmetic overflow: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorOverflow
	case errors.As(err, &verificationErr):
		fmt.Fprintf(out, "%sVerification mismatch: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorMismatch
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sStatus: Failure (Timeout). The time limit was exceeded%s.%s\n", colors.Yellow(), msgSuffix, colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sStatus: Canceled by user%s.%s\n", colors.Yellow(), msgSuffix, colors.Reset())
		return ExitErrorCanceled
	default:
		fmt.Fprintf(out, "%sStatus: Failure. Unexpected error: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorGeneric
	}
}
