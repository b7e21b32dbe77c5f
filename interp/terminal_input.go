package interp

import (
	"io"

	"github.com/peterh/liner"
)

// TerminalInput reads input interactively with line editing and history.
type TerminalInput struct {
	state *liner.State

	// prompts indicates whether prompts are shown.
	prompts bool
}

// TerminalSupported reports whether the attached terminal supports interactive
// line editing.  If it does not, a StreamInput should be used instead.
func TerminalSupported() bool {
	return liner.TerminalSupported()
}

// NewTerminalInput takes control of the terminal.  The returned source must be
// closed to restore the terminal mode.
func NewTerminalInput(prompts bool) *TerminalInput {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	return &TerminalInput{state: state, prompts: prompts}
}

func (ti *TerminalInput) ReadLine(prompt string) (string, error) {
	if !ti.prompts {
		prompt = ""
	}

	line, err := ti.state.Prompt(prompt)
	if err == io.EOF {
		return "", nil
	} else if err != nil {
		return "", err
	}

	ti.state.AppendHistory(line)
	return line, nil
}

// Close restores the terminal.
func (ti *TerminalInput) Close() error {
	return ti.state.Close()
}
