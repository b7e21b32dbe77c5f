// Package report is responsible for displaying errors, warnings, and progress
// information to the user.  All output respects the selected log level.
package report

import (
	"io"
	"os"
	"sync"
	"time"
)

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during program execution.  The reporter respects the set
// log level and is synchronized: its methods can be safely called from multiple
// goroutines.
type Reporter struct {
	// The mutex used to synchonize different report method calls.
	m *sync.Mutex

	// out is where all messages are written.
	out io.Writer

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// errorCount is the number of errors reported so far.
	errorCount int

	// warnings are displayed together when reporting is finished.
	warnings []warning

	// phase is the phase currently being displayed, if any.
	phase *phaseDisplay

	// startTime is when the reporter was created.
	startTime time.Time
}

type warning struct {
	tag, msg string
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all messages to the user (default).
)

// LogLevelNames are the accepted names of the log levels.
var LogLevelNames = []string{"silent", "error", "warn", "verbose"}

// LogLevelFromName converts the name of a log level into a log level.  Unknown
// names select the verbose level.
func LogLevelFromName(name string) int {
	switch name {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warn", "warning":
		return LogLevelWarn
	default:
		return LogLevelVerbose
	}
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer, logLevel int) *Reporter {
	return &Reporter{
		m:         &sync.Mutex{},
		out:       out,
		logLevel:  logLevel,
		startTime: time.Now(),
	}
}

// rep is the global reporter instance.
var rep = NewReporter(os.Stdout, LogLevelVerbose)

// InitReporter replaces the global reporter with one writing to out at the
// given log level.
func InitReporter(out io.Writer, logLevel int) {
	rep = NewReporter(out, logLevel)
}

// Global returns the global reporter.
func Global() *Reporter {
	return rep
}

// LogLevel returns the reporter's log level.
func (r *Reporter) LogLevel() int {
	return r.logLevel
}

// Out returns the writer the reporter displays to.
func (r *Reporter) Out() io.Writer {
	return r.out
}

// ErrorCount returns the number of errors reported so far.
func (r *Reporter) ErrorCount() int {
	r.m.Lock()
	defer r.m.Unlock()

	return r.errorCount
}

// ShouldProceed indicates whether or not there have been any errors that
// should cause processing to stop.
func (r *Reporter) ShouldProceed() bool {
	return r.ErrorCount() == 0
}
