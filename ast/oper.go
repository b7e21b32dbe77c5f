package ast

import "github.com/SavvyHex/econocode/typing"

// ArithOp is the kind of a binary arithmetic operator.
type ArithOp int

// Enumeration of arithmetic operators
const (
	OpAdd ArithOp = iota
	OpSub
	OpMul
	OpDiv
)

// CmpOp is the kind of a comparison operator.
type CmpOp int

// Enumeration of comparison operators
const (
	CmpEq CmpOp = iota
	CmpNe
	CmpLt
	CmpLe
	CmpGt
	CmpGe
)

// BinaryOp represents a binary arithmetic operator application.
type BinaryOp struct {
	Op ArithOp

	Lhs, Rhs Expr
}

func NewBinaryOp(op ArithOp, lhs, rhs Expr) *BinaryOp {
	return &BinaryOp{Op: op, Lhs: lhs, Rhs: rhs}
}

// Type of a binary operation is the type of its left operand: mixed widths are
// not reconciled.
func (bo *BinaryOp) Type() typing.PrimitiveType {
	if bo == nil || bo.Lhs == nil {
		return typing.PrimKindI64
	}

	return bo.Lhs.Type()
}

// Compare represents a comparison yielding 1 or 0.
type Compare struct {
	Op CmpOp

	Lhs, Rhs Expr
}

func NewCompare(op CmpOp, lhs, rhs Expr) *Compare {
	return &Compare{Op: op, Lhs: lhs, Rhs: rhs}
}

// Comparison results are stored as full width integers.
func (c *Compare) Type() typing.PrimitiveType {
	return typing.PrimKindI64
}
