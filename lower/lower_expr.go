package lower

import (
	"github.com/SavvyHex/econocode/ast"
	"github.com/SavvyHex/econocode/ir"
)

// lowerExpr lowers an expression and returns the name holding its value.
func (l *Lowerer) lowerExpr(expr ast.Expr) string {
	switch v := expr.(type) {
	case *ast.IntLiteral:
		if v == nil {
			raiseMissing()
		}

		temp := l.getTempName()
		l.emit(ir.LoadConst{Value: v.Value, Dst: temp, Type: v.Type()})
		return temp
	case *ast.VarRef:
		if v == nil {
			raiseMissing()
		}

		// reads always copy into a temporary so later code sees a snapshot
		l.checkName(v.Name)
		temp := l.getTempName()
		l.emit(ir.Move{Src: v.Name, Dst: temp, Type: v.Type()})
		return temp
	case *ast.Read:
		if v == nil {
			raiseMissing()
		}

		l.checkName(v.Name)
		l.emit(ir.Read{Dst: v.Name, Type: v.Type()})
		return v.Name
	case *ast.Assign:
		if v == nil {
			raiseMissing()
		}

		l.checkName(v.Name)
		src := l.lowerExpr(v.Value)
		l.emit(ir.Move{Src: src, Dst: v.Name, Type: v.Type()})
		return v.Name
	case *ast.BinaryOp:
		if v == nil {
			raiseMissing()
		}

		return l.lowerBinaryOp(v)
	case *ast.Compare:
		if v == nil {
			raiseMissing()
		}

		return l.lowerCompare(v)
	case *ast.Sequence:
		return l.lowerSequence(v)
	case *ast.Conditional:
		if v == nil {
			raiseMissing()
		}

		return l.lowerConditional(v)
	case *ast.Loop:
		if v == nil {
			raiseMissing()
		}

		return l.lowerLoop(v)
	case nil:
		raiseMissing()
	}

	raise("lowering for %T not implemented", expr)
	return ""
}

// lowerBinaryOp lowers an arithmetic operation.  The width of the operation is
// the static type of the left operand.
func (l *Lowerer) lowerBinaryOp(bo *ast.BinaryOp) string {
	op, ok := arithOps[bo.Op]
	if !ok {
		raise("unknown arithmetic operator %d", bo.Op)
	}

	if bo.Lhs == nil || bo.Rhs == nil {
		raise("binary %s is missing an operand", op)
	}

	// the left operand is lowered first so malformed subtrees are rejected
	// before its type is inspected
	lhs := l.lowerExpr(bo.Lhs)
	typ := bo.Lhs.Type()
	rhs := l.lowerExpr(bo.Rhs)

	temp := l.getTempName()
	l.emit(ir.BinOp{Op: op, Type: typ, Lhs: lhs, Rhs: rhs, Dst: temp})
	return temp
}

// lowerCompare lowers a comparison.
func (l *Lowerer) lowerCompare(cmp *ast.Compare) string {
	op, ok := cmpOps[cmp.Op]
	if !ok {
		raise("unknown comparison operator %d", cmp.Op)
	}

	if cmp.Lhs == nil || cmp.Rhs == nil {
		raise("%s is missing an operand", op)
	}

	lhs := l.lowerExpr(cmp.Lhs)
	rhs := l.lowerExpr(cmp.Rhs)

	temp := l.getTempName()
	l.emit(ir.Cmp{Op: op, Lhs: lhs, Rhs: rhs, Dst: temp})
	return temp
}

// checkName rejects empty variable names.
func (l *Lowerer) checkName(name string) {
	if name == "" {
		raise("variable name must not be empty")
	}
}

// -----------------------------------------------------------------------------

var arithOps = map[ast.ArithOp]ir.BinOpKind{
	ast.OpAdd: ir.OpAdd,
	ast.OpSub: ir.OpSub,
	ast.OpMul: ir.OpMul,
	ast.OpDiv: ir.OpDiv,
}

var cmpOps = map[ast.CmpOp]ir.CmpKind{
	ast.CmpEq: ir.CmpEq,
	ast.CmpNe: ir.CmpNe,
	ast.CmpLt: ir.CmpLt,
	ast.CmpLe: ir.CmpLe,
	ast.CmpGt: ir.CmpGt,
	ast.CmpGe: ir.CmpGe,
}
