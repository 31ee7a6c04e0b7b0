package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override: the key
// without EnvPrefix, the flags that take precedence over it and the setter.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

func intSetter(field func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			*field(c) = parsed
		}
	}
}

func boolSetter(field func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := field(c)
		*p = parseBoolEnv(v, *p)
	}
}

// envOverrides is the declarative table of environment overrides.
var envOverrides = []envOverride{
	{"MODE", []string{"mode"}, func(c *AppConfig, v string) { c.Mode = v }},
	{"TYPE", []string{"type"}, func(c *AppConfig, v string) { c.Type = v }},
	{"OP", []string{"op"}, func(c *AppConfig, v string) { c.Op = v }},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) { c.Output = v }},
	{"OVERFLOW", []string{"overflow"}, func(c *AppConfig, v string) { c.Overflow = v }},
	{"SUITES", []string{"suites"}, func(c *AppConfig, v string) { c.Suites = v }},
	{"REFERENCE", []string{"reference"}, func(c *AppConfig, v string) { c.Reference = v }},
	{"THEME", []string{"theme"}, func(c *AppConfig, v string) { c.Theme = v }},
	{"LOG_FORMAT", []string{"log-format"}, func(c *AppConfig, v string) { c.LogFormat = v }},
	{"CALIBRATION_PROFILE", []string{"calibration-profile"}, func(c *AppConfig, v string) { c.CalibrationProfile = v }},

	{"BASE", []string{"base"}, intSetter(func(c *AppConfig) *int { return &c.Base })},
	{"KARATSUBA_THRESHOLD", []string{"karatsuba-threshold"}, intSetter(func(c *AppConfig) *int { return &c.KaratsubaThreshold })},
	{"MAX_DEPTH", []string{"max-depth"}, intSetter(func(c *AppConfig) *int { return &c.MaxDepth })},
	{"ITERATIONS", []string{"iterations"}, intSetter(func(c *AppConfig) *int { return &c.Iterations })},
	{"SEED", []string{"seed"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}},

	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	{"QUIET", []string{"quiet", "q"}, boolSetter(func(c *AppConfig) *bool { return &c.Quiet })},
	{"VERBOSE", []string{"verbose", "v"}, boolSetter(func(c *AppConfig) *bool { return &c.Verbose })},
	{"NO_COLOR", []string{"no-color"}, boolSetter(func(c *AppConfig) *bool { return &c.NoColor })},
	{"METRICS", []string{"metrics"}, boolSetter(func(c *AppConfig) *bool { return &c.Metrics })},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Every entry of envOverrides is read with the WORDCALC_ prefix, e.g.
// WORDCALC_KARATSUBA_THRESHOLD.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
