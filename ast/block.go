package ast

import "github.com/SavvyHex/econocode/typing"

// Sequence is an ordered list of expressions evaluated one after the other.  The
// value of a sequence is the value of its last expression.
type Sequence struct {
	Exprs []Expr
}

func NewSequence(exprs ...Expr) *Sequence {
	return &Sequence{Exprs: exprs}
}

func (s *Sequence) Type() typing.PrimitiveType {
	if s == nil || len(s.Exprs) == 0 || s.Exprs[len(s.Exprs)-1] == nil {
		return typing.PrimKindI64
	}

	return s.Exprs[len(s.Exprs)-1].Type()
}

// Conditional is an if expression with an optional else branch.  Else may be
// nil.
type Conditional struct {
	Cond Expr

	Then *Sequence
	Else *Sequence
}

func NewConditional(cond Expr, then, els *Sequence) *Conditional {
	return &Conditional{Cond: cond, Then: then, Else: els}
}

// The value of a conditional is its condition.
func (c *Conditional) Type() typing.PrimitiveType {
	if c == nil || c.Cond == nil {
		return typing.PrimKindI64
	}

	return c.Cond.Type()
}

// Loop is a while loop.
type Loop struct {
	Cond Expr

	Body *Sequence
}

func NewLoop(cond Expr, body *Sequence) *Loop {
	return &Loop{Cond: cond, Body: body}
}

// The value of a loop is its condition.
func (l *Loop) Type() typing.PrimitiveType {
	if l == nil || l.Cond == nil {
		return typing.PrimKindI64
	}

	return l.Cond.Type()
}
