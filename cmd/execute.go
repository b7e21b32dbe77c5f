// Package cmd implements the `econ` command line tool.
package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/SavvyHex/econocode/common"
	"github.com/SavvyHex/econocode/config"
	"github.com/SavvyHex/econocode/report"

	"github.com/ComedicChimera/olive"
)

// Execute runs the main `econ` application.  It returns the process exit code.
func Execute() int {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("econ", "econ estimates and runs energy-annotated IR programs", true)
	cli.AddSelectorArg("loglevel", "ll", "the log level", false, report.LogLevelNames)
	cli.AddStringArg("config", "c", "the path to the config file", false)

	buildCmd := cli.AddSubcommand("build", "print an IR listing and its energy estimate", true)
	buildCmd.AddPrimaryArg("file", "the IR file to estimate", true)
	buildCmd.AddStringArg("output", "o", "the file to write the listing to", false)
	buildCmd.AddFlag("breakdown", "b", "display the per-class energy breakdown")

	runCmd := cli.AddSubcommand("run", "interpret an IR file", true)
	runCmd.AddPrimaryArg("file", "the IR file to run", true)
	runCmd.AddFlag("trace", "t", "print each instruction as it executes")

	llvmCmd := cli.AddSubcommand("llvm", "convert an IR file to LLVM IR", true)
	llvmCmd.AddPrimaryArg("file", "the IR file to convert", true)
	llvmCmd.AddStringArg("output", "o", "the file to write the LLVM module to", false)

	watchCmd := cli.AddSubcommand("watch", "rebuild an IR file whenever it changes", true)
	watchCmd.AddPrimaryArg("file", "the IR file to watch", true)

	cli.AddSubcommand("version", "print the econ version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.PrintErrorMessage("CLI Usage Error", err)
		return 1
	}

	subcmdName, subResult, ok := result.Subcommand()
	if !ok {
		report.PrintErrorMessage("CLI Usage Error", errors.New("expected a subcommand"))
		return 1
	}

	if subcmdName == "version" {
		report.PrintInfoMessage("econ Version", common.EconVersion)
		return 0
	}

	file, _ := subResult.PrimaryArg()

	conf, err := loadConfig(result, file)
	if err != nil {
		report.PrintErrorMessage("Config Error", err)
		return 1
	}

	report.InitReporter(os.Stdout, conf.LogLevel)
	for _, w := range conf.Warnings {
		report.ReportWarning("Config", w)
	}

	switch subcmdName {
	case "build":
		execBuildCommand(subResult, file, conf)
	case "run":
		execRunCommand(subResult, file, conf)
	case "llvm":
		execLLVMCommand(subResult, file, conf)
	case "watch":
		execWatchCommand(file, conf)
	}

	report.Global().Finish()

	if !report.ShouldProceed() {
		return 1
	}

	return 0
}

// loadConfig loads the config selected on the command line or the one next to
// the input file.  The log level given on the command line takes precedence.
func loadConfig(result *olive.ArgParseResult, file string) (*config.Config, error) {
	path := ""
	if arg, ok := result.Arguments["config"]; ok {
		path = arg.(string)
	} else if file != "" {
		path = config.Find(filepath.Dir(file))
	}

	conf, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if arg, ok := result.Arguments["loglevel"]; ok {
		conf.LogLevel = report.LogLevelFromName(arg.(string))
	}

	return conf, nil
}

// stringArg returns the value of an optional string argument or def if the
// argument was not given.
func stringArg(result *olive.ArgParseResult, name, def string) string {
	if arg, ok := result.Arguments[name]; ok {
		return arg.(string)
	}

	return def
}
