// Package config loads and validates the `econ.toml` file that configures
// the econ tool.
package config

import "github.com/SavvyHex/econocode/report"

// Config is the validated configuration of the econ tool.
type Config struct {
	// Path is the file the configuration was loaded from.  It is empty when
	// the default configuration is used.
	Path string

	// VersionConstraint is the semver constraint on the tool version.  It is
	// empty when no constraint is given.
	VersionConstraint string

	LogLevel int

	// MaxSteps bounds the number of instructions the interpreter executes.
	// Zero means no limit.
	MaxSteps int

	// Trace enables printing of each executed instruction.
	Trace bool

	// Prompt enables input prompts when the interpreter reads values.
	Prompt bool

	// OutputPath is the default output path for emitted files.
	OutputPath string

	// Breakdown enables the per-class energy table in build output.
	Breakdown bool

	// Warnings are the non-fatal problems found while loading.
	Warnings []string
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		LogLevel: report.LogLevelVerbose,
		Prompt:   true,
	}
}
