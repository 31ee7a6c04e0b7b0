// Package apperrors defines the structured error types of the command-line
// tooling and maps them to process exit codes.
//
// Errors are wrapped with fmt.Errorf and %w; every type carrying a cause
// implements Unwrap so errors.Is and errors.As see through it.
package apperrors
