// Package ast defines the typed abstract syntax tree consumed by the lowering
// engine.  Trees are produced by the front end with all type annotations
// already resolved and are treated as immutable once built.
package ast

import "github.com/SavvyHex/econocode/typing"

// Expr represents an expression simple or complex. All expression nodes
// implement the `Expr` interface.
type Expr interface {
	// Type is the statically known type of the expression.
	Type() typing.PrimitiveType
}

// ExprBase is the base struct for all expressions whose type is annotated
// directly on the node.
type ExprBase struct {
	typ typing.PrimitiveType
}

func NewExprBase(typ typing.PrimitiveType) ExprBase {
	return ExprBase{typ: typ}
}

func (eb *ExprBase) Type() typing.PrimitiveType {
	return eb.typ
}

// -----------------------------------------------------------------------------

// IntLiteral is an integer constant.
type IntLiteral struct {
	ExprBase

	Value int64
}

func NewIntLiteral(value int64, typ typing.PrimitiveType) *IntLiteral {
	return &IntLiteral{ExprBase: NewExprBase(typ), Value: value}
}

// VarRef is a read of a named variable.
type VarRef struct {
	ExprBase

	Name string
}

func NewVarRef(name string, typ typing.PrimitiveType) *VarRef {
	return &VarRef{ExprBase: NewExprBase(typ), Name: name}
}

// Assign stores the value of an expression into a named variable.  The type is
// the declared type of the variable.
type Assign struct {
	ExprBase

	Name  string
	Value Expr
}

func NewAssign(name string, value Expr, typ typing.PrimitiveType) *Assign {
	return &Assign{ExprBase: NewExprBase(typ), Name: name, Value: value}
}

// Read reads one integer from the program's input into a named variable.
type Read struct {
	ExprBase

	Name string
}

func NewRead(name string, typ typing.PrimitiveType) *Read {
	return &Read{ExprBase: NewExprBase(typ), Name: name}
}
