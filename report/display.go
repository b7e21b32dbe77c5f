package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/SavvyHex/econocode/common"
	"github.com/SavvyHex/econocode/energy"
	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// displayError prints a standard Go error under a tag.
func displayError(w io.Writer, tag string, err error) {
	fmt.Fprintln(w, ErrorStyleBG.Sprint(tag)+" "+ErrorColorFG.Sprint(err.Error()))
}

// displayWarning prints a warning message under a tag.
func displayWarning(w io.Writer, tag, msg string) {
	fmt.Fprintln(w, WarnStyleBG.Sprint(tag)+" "+WarnColorFG.Sprint(msg))
}

// displayInfo prints an informational message under a tag.
func displayInfo(w io.Writer, tag, msg string) {
	fmt.Fprintln(w, InfoStyleBG.Sprint(tag)+" "+InfoColorFG.Sprint(msg))
}

// displayHeader displays the tool version and the file being processed.
func displayHeader(w io.Writer, file string) {
	fmt.Fprintln(w, "econ "+InfoColorFG.Sprint("v"+common.EconVersion)+" -- file: "+InfoColorFG.Sprint(file))
}

// displayFinished displays the closing summary along with the time elapsed since
// the reporter was created.
func displayFinished(w io.Writer, errorCount, warningCount int, elapsed time.Duration) {
	sb := strings.Builder{}
	sb.WriteRune('\n')

	if errorCount == 0 {
		sb.WriteString(SuccessColorFG.Sprint("All done! "))
	} else {
		sb.WriteString(ErrorColorFG.Sprint("Oh no! "))
	}

	sb.WriteRune('(')
	sb.WriteString(countString(errorCount, "error", ErrorColorFG))
	sb.WriteString(", ")
	sb.WriteString(countString(warningCount, "warning", WarnColorFG))
	sb.WriteRune(')')
	sb.WriteString(fmt.Sprintf(" in %.3fs", elapsed.Seconds()))

	fmt.Fprintln(w, sb.String())
}

// countString formats a count with a pluralized noun.  Nonzero counts are
// highlighted in the given color.
func countString(n int, noun string, color pterm.Color) string {
	if n != 1 {
		noun += "s"
	}

	if n == 0 {
		return SuccessColorFG.Sprint(0) + " " + noun
	}

	return color.Sprint(n) + " " + noun
}

// EnergyTable renders a per-class energy breakdown as a table followed by the
// total.
func EnergyTable(breakdown []energy.ClassCost, total int) string {
	data := pterm.TableData{{"Class", "Count", "Energy"}}
	for _, cc := range breakdown {
		data = append(data, []string{cc.Class, strconv.Itoa(cc.Count), strconv.Itoa(cc.Cost)})
	}
	data = append(data, []string{"total", "", strconv.Itoa(total)})

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		// tables only fail to render on malformed data
		return fmt.Sprintf("total energy: %d", total)
	}

	return table
}

// -----------------------------------------------------------------------------

const maxPhaseLength = len("Validating")

// phaseDisplay is the spinner shown while a phase runs.
type phaseDisplay struct {
	name    string
	spinner *pterm.SpinnerPrinter
	start   time.Time
}

// beginPhase displays the beginning of a phase.
func beginPhase(w io.Writer, phase string) *phaseDisplay {
	pad := maxPhaseLength - len(phase) + 2
	if pad < 1 {
		pad = 1
	}

	spinner := pterm.DefaultSpinner.WithWriter(w).WithStyle(pterm.NewStyle(InfoColorFG))

	spinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	spinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	started, err := spinner.Start(phase + "..." + strings.Repeat(" ", pad))
	if err != nil {
		started = nil
	}

	return &phaseDisplay{name: phase, spinner: started, start: time.Now()}
}

// end displays the end of a phase.
func (pd *phaseDisplay) end(success bool) {
	if pd.spinner == nil {
		return
	}

	pad := maxPhaseLength - len(pd.name) + 2
	if pad < 1 {
		pad = 1
	}

	if success {
		pd.spinner.Success(pd.name+strings.Repeat(" ", pad), fmt.Sprintf("(%.3fs)", time.Since(pd.start).Seconds()))
	} else {
		pd.spinner.Fail(pd.name + strings.Repeat(" ", pad))
	}
}

// -----------------------------------------------------------------------------

// PrintErrorMessage displays an error message outside of any reporter.  It is
// used for errors that occur before the reporter is initialized.
func PrintErrorMessage(tag string, err error) {
	displayError(os.Stdout, tag, err)
}

// PrintInfoMessage displays an informational message outside of any reporter.
func PrintInfoMessage(tag, msg string) {
	displayInfo(os.Stdout, tag, msg)
}
