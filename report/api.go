package report

import (
	"fmt"
	"time"

	"github.com/SavvyHex/econocode/energy"
)

// -----------------------------------------------------------------------------
// NOTE: All report functions will only display if the appropriate log level is
// set.  Most report functions will simply fail silently if below their
// appropriate log level.

// ReportError reports a standard Go error under the given tag.
func (r *Reporter) ReportError(tag string, err error) {
	r.m.Lock()
	defer r.m.Unlock()

	r.errorCount++

	if r.logLevel > LogLevelSilent {
		r.endPhase(false)
		displayError(r.out, tag, err)
	}
}

// ReportWarning records a warning.  Warnings are displayed by Finish.
func (r *Reporter) ReportWarning(tag, msg string, args ...interface{}) {
	r.m.Lock()
	defer r.m.Unlock()

	r.warnings = append(r.warnings, warning{tag: tag, msg: fmt.Sprintf(msg, args...)})
}

// ReportInfo reports an informational message.
func (r *Reporter) ReportInfo(tag, msg string, args ...interface{}) {
	if r.logLevel == LogLevelVerbose {
		r.m.Lock()
		defer r.m.Unlock()

		displayInfo(r.out, tag, fmt.Sprintf(msg, args...))
	}
}

// ReportHeader reports the header displayed before processing a file.
func (r *Reporter) ReportHeader(file string) {
	if r.logLevel == LogLevelVerbose {
		r.m.Lock()
		defer r.m.Unlock()

		displayHeader(r.out, file)
	}
}

// ReportEnergy displays the per-class energy breakdown of a program.
func (r *Reporter) ReportEnergy(breakdown []energy.ClassCost, total int) {
	if r.logLevel == LogLevelVerbose {
		r.m.Lock()
		defer r.m.Unlock()

		fmt.Fprintln(r.out, EnergyTable(breakdown, total))
	}
}

// BeginPhase displays the start of a processing phase such as parsing.
func (r *Reporter) BeginPhase(name string) {
	if r.logLevel == LogLevelVerbose {
		r.m.Lock()
		defer r.m.Unlock()

		r.endPhase(true)
		r.phase = beginPhase(r.out, name)
	}
}

// EndPhase displays the end of the current phase.
func (r *Reporter) EndPhase(success bool) {
	r.m.Lock()
	defer r.m.Unlock()

	r.endPhase(success)
}

func (r *Reporter) endPhase(success bool) {
	if r.phase != nil {
		r.phase.end(success)
		r.phase = nil
	}
}

// Finish displays all accumulated warnings and the closing summary.
func (r *Reporter) Finish() {
	r.m.Lock()
	defer r.m.Unlock()

	r.endPhase(r.errorCount == 0)

	if r.logLevel >= LogLevelWarn {
		for _, w := range r.warnings {
			displayWarning(r.out, w.tag, w.msg)
		}
	}

	if r.logLevel == LogLevelVerbose {
		displayFinished(r.out, r.errorCount, len(r.warnings), time.Since(r.startTime))
	}
}

// -----------------------------------------------------------------------------
// Package-level forms operating on the global reporter.

func ReportError(tag string, err error) { rep.ReportError(tag, err) }

func ReportWarning(tag, msg string, args ...interface{}) { rep.ReportWarning(tag, msg, args...) }

func ReportInfo(tag, msg string, args ...interface{}) { rep.ReportInfo(tag, msg, args...) }

func ShouldProceed() bool { return rep.ShouldProceed() }
