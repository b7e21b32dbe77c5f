package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SavvyHex/econocode/config"
	"github.com/SavvyHex/econocode/energy"
	"github.com/SavvyHex/econocode/generate"
	"github.com/SavvyHex/econocode/interp"
	"github.com/SavvyHex/econocode/ir"
	"github.com/SavvyHex/econocode/report"

	"github.com/ComedicChimera/olive"
)

// execBuildCommand executes the build subcommand and reports all errors.
func execBuildCommand(result *olive.ArgParseResult, file string, conf *config.Config) {
	breakdown := conf.Breakdown || result.HasFlag("breakdown")
	output := stringArg(result, "output", conf.OutputPath)

	buildFile(report.Global(), file, output, breakdown)
}

// buildFile loads the program in file and prints its listing and energy
// estimate.  The listing is written to output instead if output is not empty.
func buildFile(rep *report.Reporter, file, output string, breakdown bool) {
	rep.ReportHeader(file)

	prog, ok := loadProgram(rep, file)
	if !ok {
		return
	}

	listing := buildListing(prog)

	if output != "" {
		if err := os.WriteFile(output, []byte(listing), 0644); err != nil {
			rep.ReportError("Output Error", err)
			return
		}

		rep.ReportInfo("Output", "listing written to %s", output)
	} else {
		fmt.Fprint(rep.Out(), listing)
	}

	if breakdown {
		rep.ReportEnergy(energy.Breakdown(prog), energy.Estimate(prog))
	}
}

// buildListing renders prog followed by its total energy.
func buildListing(prog ir.Program) string {
	sb := strings.Builder{}
	sb.WriteString(prog.Repr())
	sb.WriteString(fmt.Sprintf("Total energy: %d\n", energy.Estimate(prog)))
	return sb.String()
}

// execRunCommand executes the run subcommand and reports all errors.
func execRunCommand(result *olive.ArgParseResult, file string, conf *config.Config) {
	rep := report.Global()

	prog, ok := loadProgram(rep, file)
	if !ok {
		return
	}

	opts := interp.Options{MaxSteps: conf.MaxSteps}
	if conf.Trace || result.HasFlag("trace") {
		opts.Trace = os.Stderr
	}

	var input interp.InputSource
	if conf.Prompt && interp.TerminalSupported() {
		ti := interp.NewTerminalInput(true)
		defer ti.Close()
		input = ti
	} else if conf.Prompt {
		input = interp.NewStreamInput(os.Stdout, os.Stdin)
	} else {
		input = interp.NewStreamInput(nil, os.Stdin)
	}

	runProgram(rep, prog, input, opts, os.Stdout)
}

// runProgram interprets prog and prints its result to out.
func runProgram(rep *report.Reporter, prog ir.Program, input interp.InputSource, opts interp.Options, out io.Writer) (int64, bool) {
	in := interp.NewInterpreter(input, opts)

	// the spinner redraws its line and would overwrite input prompts
	if !readsInput(prog) {
		rep.BeginPhase("Running")
	}

	value, err := in.Execute(prog)
	if err != nil {
		rep.ReportError("Runtime Error", err)
		return 0, false
	}
	rep.EndPhase(true)

	rep.ReportInfo("Run", "executed %d instructions", in.Steps())
	fmt.Fprintf(out, "Result: %d\n", value)
	return value, true
}

// readsInput reports whether prog contains a read instruction.
func readsInput(prog ir.Program) bool {
	for _, instr := range prog {
		if _, ok := instr.(ir.Read); ok {
			return true
		}
	}

	return false
}

// execLLVMCommand executes the llvm subcommand and reports all errors.
func execLLVMCommand(result *olive.ArgParseResult, file string, conf *config.Config) {
	rep := report.Global()

	prog, ok := loadProgram(rep, file)
	if !ok {
		return
	}

	text, ok := generateLLVM(rep, file, prog)
	if !ok {
		return
	}

	output := stringArg(result, "output", conf.OutputPath)
	if output == "" {
		fmt.Print(text)
		return
	}

	if err := os.WriteFile(output, []byte(text), 0644); err != nil {
		rep.ReportError("Output Error", err)
		return
	}

	rep.ReportInfo("Output", "LLVM module written to %s", output)
}

// generateLLVM converts prog into the text of an LLVM module.
func generateLLVM(rep *report.Reporter, file string, prog ir.Program) (string, bool) {
	rep.BeginPhase("Generating")
	mod, err := generate.Generate(file, prog)
	if err != nil {
		rep.ReportError("Generation Error", err)
		return "", false
	}
	rep.EndPhase(true)

	return mod.String(), true
}

// loadProgram reads, parses, and validates the IR program in file.
func loadProgram(rep *report.Reporter, file string) (ir.Program, bool) {
	rep.BeginPhase("Parsing")

	f, err := os.Open(file)
	if err != nil {
		rep.ReportError("File Error", err)
		return nil, false
	}
	defer f.Close()

	prog, err := ir.Parse(f)
	if err != nil {
		rep.ReportError("Parse Error", err)
		return nil, false
	}
	rep.EndPhase(true)

	rep.BeginPhase("Validating")
	if err := ir.Validate(prog); err != nil {
		rep.ReportError("Validation Error", err)
		return nil, false
	}
	rep.EndPhase(true)

	return prog, true
}
