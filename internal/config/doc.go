// Package config resolves the application configuration from command-line
// flags, WORDCALC_* environment variables and hardware estimates.
package config
