package ir

import (
	"fmt"
	"strings"
)

// ValidationError lists every structural problem found in a program.
type ValidationError struct {
	Problems []string
}

func (ve *ValidationError) Error() string {
	if len(ve.Problems) == 1 {
		return "invalid program: " + ve.Problems[0]
	}

	return fmt.Sprintf("invalid program: %d problems: %s", len(ve.Problems), strings.Join(ve.Problems, "; "))
}

// Validate checks the label invariants of a program: every label is defined
// exactly once and every branch target has a definition.
func Validate(p Program) error {
	var problems []string

	defined := make(map[string]int)
	for i, instr := range p {
		lbl, ok := instr.(Label)
		if !ok {
			continue
		}

		if first, ok := defined[lbl.Name]; ok {
			problems = append(problems, fmt.Sprintf("label %s defined at %d and %d", lbl.Name, first, i))
		} else {
			defined[lbl.Name] = i
		}
	}

	for i, instr := range p {
		for _, target := range Targets(instr) {
			if _, ok := defined[target]; !ok {
				problems = append(problems, fmt.Sprintf("instruction %d (%s) jumps to undefined label %s", i, instr.Repr(), target))
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	return nil
}
