package ir

import "strings"

// Program is an ordered sequence of instructions.  Order is the only control
// flow structure: labels and branches encode it implicitly.
type Program []Instr

// Repr returns the full textual listing of the program: one line per
// instruction, each terminated by a newline.
func (p Program) Repr() string {
	sb := strings.Builder{}

	for _, instr := range p {
		sb.WriteString(instr.Repr())
		sb.WriteRune('\n')
	}

	return sb.String()
}

// Labels returns the names of all labels defined in the program in the order
// they are defined.  Duplicates are included.
func (p Program) Labels() []string {
	var names []string
	for _, instr := range p {
		if lbl, ok := instr.(Label); ok {
			names = append(names, lbl.Name)
		}
	}

	return names
}

// Targets returns the label names referenced by an instruction.
func Targets(instr Instr) []string {
	switch v := instr.(type) {
	case BrIf:
		return []string{v.Then, v.Else}
	case Jmp:
		return []string{v.Target}
	}

	return nil
}

// Operands returns the names an instruction reads.
func Operands(instr Instr) []string {
	switch v := instr.(type) {
	case Move:
		return []string{v.Src}
	case BinOp:
		return []string{v.Lhs, v.Rhs}
	case Cmp:
		return []string{v.Lhs, v.Rhs}
	case BrIf:
		return []string{v.Cond}
	}

	return nil
}
