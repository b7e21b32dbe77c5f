package generate

import (
	"fmt"

	eir "github.com/SavvyHex/econocode/ir"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// cmpPredicates maps comparison kinds to signed LLVM predicates.
var cmpPredicates = map[eir.CmpKind]enum.IPred{
	eir.CmpEq: enum.IPredEQ,
	eir.CmpNe: enum.IPredNE,
	eir.CmpLt: enum.IPredSLT,
	eir.CmpLe: enum.IPredSLE,
	eir.CmpGt: enum.IPredSGT,
	eir.CmpGe: enum.IPredSGE,
}

// genInstr generates a single instruction into the current block.
func (g *Generator) genInstr(instr eir.Instr) {
	if label, ok := instr.(eir.Label); ok {
		g.genLabel(label)
		return
	}

	if g.block == nil {
		return
	}

	switch v := instr.(type) {
	case eir.LoadConst:
		g.store(v.Dst, constant.NewInt(types.I64, v.Value))
	case eir.Move:
		g.store(v.Dst, g.load(v.Src))
	case eir.BinOp:
		g.store(v.Dst, g.genBinOp(v))
	case eir.Cmp:
		lhs, rhs := g.load(v.Lhs), g.load(v.Rhs)
		cmp := g.block.NewICmp(cmpPredicates[v.Op], lhs, rhs)
		g.store(v.Dst, g.block.NewZExt(cmp, types.I64))
	case eir.Read:
		ordinal := constant.NewInt(types.I64, g.readCounter)
		g.readCounter++
		g.store(v.Dst, g.block.NewCall(g.readFunc, ordinal))
	case eir.BrIf:
		cond := g.block.NewICmp(enum.IPredNE, g.load(v.Cond), constant.NewInt(types.I64, 0))
		g.block.NewCondBr(cond, g.labelBlocks[v.Then], g.labelBlocks[v.Else])
		g.block = nil
	case eir.Jmp:
		g.block.NewBr(g.labelBlocks[v.Target])
		g.block = nil
	default:
		panic(fmt.Sprintf("generate: unknown instruction %T", instr))
	}
}

// genLabel positions the generator at the label's block.  Falling through into
// a label becomes an explicit branch.
func (g *Generator) genLabel(label eir.Label) {
	next := g.labelBlocks[label.Name]

	if g.block != nil {
		g.block.NewBr(next)
	}

	g.block = next
}

// genBinOp generates an arithmetic operation.
func (g *Generator) genBinOp(op eir.BinOp) value.Value {
	lhs, rhs := g.load(op.Lhs), g.load(op.Rhs)

	switch op.Op {
	case eir.OpAdd:
		return g.block.NewAdd(lhs, rhs)
	case eir.OpSub:
		return g.block.NewSub(lhs, rhs)
	case eir.OpMul:
		return g.block.NewMul(lhs, rhs)
	default:
		return g.block.NewSDiv(lhs, rhs)
	}
}
