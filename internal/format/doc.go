// Package format renders durations, rates, numbers and progress bars for
// terminal output.
package format
