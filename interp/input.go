package interp

import (
	"bufio"
	"io"
)

// InputSource supplies lines to `read` instructions.
type InputSource interface {
	// ReadLine displays the prompt (if the source displays prompts) and
	// returns one line of input without its line terminator.  End of input
	// is reported as an empty line.
	ReadLine(prompt string) (string, error)
}

// StreamInput reads lines from a stream and writes prompts to another.
type StreamInput struct {
	out io.Writer
	in  *bufio.Reader
}

// NewStreamInput creates an input source reading from in.  Prompts are written
// to out; a nil out disables prompts.
func NewStreamInput(out io.Writer, in io.Reader) *StreamInput {
	return &StreamInput{out: out, in: bufio.NewReader(in)}
}

func (si *StreamInput) ReadLine(prompt string) (string, error) {
	if si.out != nil {
		if _, err := io.WriteString(si.out, prompt); err != nil {
			return "", err
		}
	}

	line, err := si.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}

	return line, nil
}
