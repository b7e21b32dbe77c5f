package interp

import "fmt"

// ErrorKind classifies a runtime error.
type ErrorKind int

// Enumeration of runtime error kinds
const (
	UndefinedVariable ErrorKind = iota
	DivisionByZero
	UnknownLabel
	DuplicateLabel
	InputParseError
	NoInstructions
	NoResult
	StepLimitExceeded
)

var errorKindNames = []string{
	"undefined variable",
	"division by zero",
	"unknown label",
	"duplicate label",
	"invalid input",
	"no instructions",
	"no result",
	"step limit exceeded",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return "runtime error"
	}

	return errorKindNames[k]
}

// Error is a runtime error raised while executing a program.  Execution stops
// at the first error.
type Error struct {
	Kind ErrorKind

	// Name is the variable or label the error concerns, if any.
	Name string

	// PC is the index of the failing instruction or -1 if the error is not
	// tied to an instruction.
	PC int

	// Cause is the underlying error, if any (eg. an integer parse error).
	Cause error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case UndefinedVariable, UnknownLabel, DuplicateLabel:
		msg = fmt.Sprintf("%s: %s", e.Kind, e.Name)
	case InputParseError:
		msg = fmt.Sprintf("%s for %s", e.Kind, e.Name)
	default:
		msg = e.Kind.String()
	}

	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	if e.PC >= 0 {
		return fmt.Sprintf("instruction %d: %s", e.PC, msg)
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any runtime error of the same kind so callers can test against the
// sentinel values below with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinel errors for each kind.
var (
	ErrUndefinedVariable = &Error{Kind: UndefinedVariable, PC: -1}
	ErrDivisionByZero    = &Error{Kind: DivisionByZero, PC: -1}
	ErrUnknownLabel      = &Error{Kind: UnknownLabel, PC: -1}
	ErrDuplicateLabel    = &Error{Kind: DuplicateLabel, PC: -1}
	ErrInputParse        = &Error{Kind: InputParseError, PC: -1}
	ErrNoInstructions    = &Error{Kind: NoInstructions, PC: -1}
	ErrNoResult          = &Error{Kind: NoResult, PC: -1}
	ErrStepLimit         = &Error{Kind: StepLimitExceeded, PC: -1}
)
