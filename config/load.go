package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/SavvyHex/econocode/common"
	"github.com/SavvyHex/econocode/report"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// tomlConfigFile represents the config file as it is encoded in TOML.
type tomlConfigFile struct {
	Econ   *tomlEcon   `toml:"econ"`
	Run    *tomlRun    `toml:"run"`
	Output *tomlOutput `toml:"output"`
}

type tomlEcon struct {
	Version  string `toml:"version"`
	LogLevel string `toml:"log-level"`
}

type tomlRun struct {
	MaxSteps int   `toml:"max-steps"`
	Trace    bool  `toml:"trace"`
	Prompt   *bool `toml:"prompt"`
}

type tomlOutput struct {
	Path      string `toml:"path"`
	Breakdown bool   `toml:"breakdown"`
}

// Find returns the path of the config file in dir.  It returns an empty string
// if no such file exists.
func Find(dir string) string {
	path := filepath.Join(dir, common.ConfigFileName)
	if finfo, err := os.Stat(path); err == nil && !finfo.IsDir() {
		return path
	}

	return ""
}

// Load loads and validates the config file at path.  An empty path selects
// the default configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}

	conf, err := Parse(buff)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}

	conf.Path = path
	return conf, nil
}

// Parse decodes and validates the contents of a config file.
func Parse(buff []byte) (*Config, error) {
	tcf := &tomlConfigFile{}
	if err := toml.Unmarshal(buff, tcf); err != nil {
		return nil, errors.Wrap(err, "decoding TOML")
	}

	conf := Default()

	if tcf.Econ != nil {
		if err := validateEcon(conf, tcf.Econ); err != nil {
			return nil, err
		}
	}

	if tcf.Run != nil {
		if tcf.Run.MaxSteps < 0 {
			return nil, errors.Errorf("max-steps must be non-negative, not %d", tcf.Run.MaxSteps)
		}

		conf.MaxSteps = tcf.Run.MaxSteps
		conf.Trace = tcf.Run.Trace

		if tcf.Run.Prompt != nil {
			conf.Prompt = *tcf.Run.Prompt
		}
	}

	if tcf.Output != nil {
		conf.OutputPath = tcf.Output.Path
		conf.Breakdown = tcf.Output.Breakdown
	}

	return conf, nil
}

// validateEcon checks the `[econ]` table.  A version constraint the current
// tool does not satisfy only produces a warning.
func validateEcon(conf *Config, econ *tomlEcon) error {
	if econ.LogLevel != "" {
		if !isLogLevelName(econ.LogLevel) {
			return errors.Errorf("unknown log level `%s`", econ.LogLevel)
		}

		conf.LogLevel = report.LogLevelFromName(econ.LogLevel)
	}

	if econ.Version == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(econ.Version)
	if err != nil {
		return errors.Wrapf(err, "invalid version constraint `%s`", econ.Version)
	}
	conf.VersionConstraint = econ.Version

	current := semver.MustParse(common.EconVersion)
	if !constraint.Check(current) {
		conf.Warnings = append(conf.Warnings,
			fmt.Sprintf("config requires econ %s but this is v%s", econ.Version, common.EconVersion),
		)
	}

	return nil
}

// isLogLevelName accepts the same names as report.LogLevelFromName except that
// unknown names are rejected.
func isLogLevelName(name string) bool {
	if name == "warning" {
		return true
	}

	for _, n := range report.LogLevelNames {
		if n == name {
			return true
		}
	}

	return false
}
