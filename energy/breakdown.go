package energy

import "github.com/SavvyHex/econocode/ir"

// ClassCost is the accumulated static cost of all instructions of one class.
type ClassCost struct {
	Class string
	Count int
	Cost  int
}

// classOrder is the display order of instruction classes.
var classOrder = []string{
	"const",
	"move",
	"add",
	"sub",
	"mul",
	"div",
	"cmp",
	"read",
	"label",
	"br_if",
	"jmp",
}

// Class returns the name of the cost class an instruction belongs to.
func Class(instr ir.Instr) string {
	switch v := instr.(type) {
	case ir.LoadConst:
		return "const"
	case ir.Move:
		return "move"
	case ir.BinOp:
		return v.Op.String()
	case ir.Cmp:
		return "cmp"
	case ir.Read:
		return "read"
	case ir.Label:
		return "label"
	case ir.BrIf:
		return "br_if"
	case ir.Jmp:
		return "jmp"
	}

	return "unknown"
}

// Breakdown groups the static cost of a program by instruction class.  Only
// classes that occur in the program are returned, in a stable order.
func Breakdown(prog ir.Program) []ClassCost {
	byClass := make(map[string]*ClassCost)
	for _, instr := range prog {
		class := Class(instr)

		cc, ok := byClass[class]
		if !ok {
			cc = &ClassCost{Class: class}
			byClass[class] = cc
		}

		cc.Count++
		cc.Cost += Cost(instr)
	}

	var result []ClassCost
	for _, class := range classOrder {
		if cc, ok := byClass[class]; ok {
			result = append(result, *cc)
		}
	}

	return result
}
