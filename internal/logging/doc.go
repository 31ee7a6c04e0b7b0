// Package logging provides the logging interface used by the arithmetic
// tooling. It hides the backend behind Logger so components log the same
// way whether they run under zerolog or the standard log package.
package logging
