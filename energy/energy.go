// Package energy implements the static energy cost model of the IR.  Costs are
// abstract units modelling relative CPU cost; they depend only on the opcode
// and width of an instruction, never on operand values.
package energy

import (
	"fmt"

	"github.com/SavvyHex/econocode/ir"
	"github.com/SavvyHex/econocode/typing"
)

// costPair holds the cost of an operation at 32 and 64 bits.
type costPair struct {
	w32, w64 int
}

func (cp costPair) at(typ typing.PrimitiveType) int {
	if typ == typing.PrimKindI32 {
		return cp.w32
	}

	return cp.w64
}

var (
	loadConstCost = costPair{1, 1}
	moveCost      = costPair{4, 5} // variable load: cache hit
	readCost      = 50             // I/O dominated
	cmpCost       = 1
	labelCost     = 0
	branchCost    = 1

	binOpCosts = map[ir.BinOpKind]costPair{
		ir.OpAdd: {1, 1},
		ir.OpSub: {1, 1},
		ir.OpMul: {3, 5},
		ir.OpDiv: {20, 40},
	}
)

// Cost returns the number of energy units of a single instruction.
func Cost(instr ir.Instr) int {
	switch v := instr.(type) {
	case ir.LoadConst:
		return loadConstCost.at(v.Type)
	case ir.Move:
		return moveCost.at(v.Type)
	case ir.BinOp:
		return binOpCosts[v.Op].at(v.Type)
	case ir.Cmp:
		return cmpCost
	case ir.Read:
		return readCost
	case ir.Label:
		return labelCost
	case ir.BrIf, ir.Jmp:
		return branchCost
	}

	panic(fmt.Sprintf("energy: no cost for instruction %T", instr))
}

// Estimate returns the total static energy of a program: the sum of the costs of
// every instruction counted once.  Execution is not simulated, so loop bodies
// contribute their cost once regardless of how many times they run.
func Estimate(prog ir.Program) int {
	total := 0
	for _, instr := range prog {
		total += Cost(instr)
	}

	return total
}
