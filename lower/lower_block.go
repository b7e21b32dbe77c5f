package lower

import (
	"github.com/SavvyHex/econocode/ast"
	"github.com/SavvyHex/econocode/ir"
)

// lowerSequence lowers a sequence used as a value: every element is lowered in
// order and the last element's result is returned.
func (l *Lowerer) lowerSequence(seq *ast.Sequence) string {
	if seq == nil || len(seq.Exprs) == 0 {
		raise("a sequence used as a value must contain at least one expression")
	}

	var result string
	for _, expr := range seq.Exprs {
		result = l.lowerExpr(expr)
	}

	return result
}

// lowerBlock lowers the body of a control flow construct in place.  Its value is
// discarded, so an empty or missing block simply emits nothing.
func (l *Lowerer) lowerBlock(block *ast.Sequence) {
	if block == nil {
		return
	}

	for _, expr := range block.Exprs {
		l.lowerExpr(expr)
	}
}

// lowerConditional lowers an if expression.  The else block is emitted before
// the then block:
//
//	br_if cond, then_N, else_N
//	else_N:
//	  <else>
//	  jmp end_N
//	then_N:
//	  <then>
//	  jmp end_N
//	end_N:
//
// The value of the conditional is its condition.
func (l *Lowerer) lowerConditional(cond *ast.Conditional) string {
	condID := l.lowerExpr(cond.Cond)

	labels := l.getLabelNames("then", "else", "end")
	thenLabel, elseLabel, endLabel := labels[0], labels[1], labels[2]

	l.emit(ir.BrIf{Cond: condID, Then: thenLabel, Else: elseLabel})

	l.emit(ir.Label{Name: elseLabel})
	l.lowerBlock(cond.Else)
	l.emit(ir.Jmp{Target: endLabel})

	l.emit(ir.Label{Name: thenLabel})
	l.lowerBlock(cond.Then)
	l.emit(ir.Jmp{Target: endLabel})

	l.emit(ir.Label{Name: endLabel})
	return condID
}

// lowerLoop lowers a while loop:
//
//	while_head_N:
//	  <cond>
//	  br_if cond, while_body_N, while_end_N
//	while_body_N:
//	  <body>
//	  jmp while_head_N
//	while_end_N:
//
// The value of the loop is the name holding its condition.
func (l *Lowerer) lowerLoop(loop *ast.Loop) string {
	labels := l.getLabelNames("while_head", "while_body", "while_end")
	headLabel, bodyLabel, endLabel := labels[0], labels[1], labels[2]

	l.emit(ir.Label{Name: headLabel})
	condID := l.lowerExpr(loop.Cond)
	l.emit(ir.BrIf{Cond: condID, Then: bodyLabel, Else: endLabel})

	l.emit(ir.Label{Name: bodyLabel})
	l.lowerBlock(loop.Body)
	l.emit(ir.Jmp{Target: headLabel})

	l.emit(ir.Label{Name: endLabel})
	return condID
}
