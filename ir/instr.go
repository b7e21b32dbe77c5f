// Package ir defines the linear three-address intermediate representation.
// Operands are names in one flat namespace shared by source variables and
// compiler temporaries; control flow is encoded purely by labels and jumps.
package ir

import (
	"fmt"

	"github.com/SavvyHex/econocode/typing"
)

// Instr is implemented by all IR instructions.  The set of instructions is
// closed: only types in this package implement it.
type Instr interface {
	// Repr returns the textual representation of the instruction.
	Repr() string

	// Dest returns the name the instruction writes to or the empty string if
	// the instruction writes nothing.
	Dest() string

	isInstr()
}

// BinOpKind enumerates the arithmetic operations.
type BinOpKind int

const (
	OpAdd BinOpKind = iota
	OpSub
	OpMul
	OpDiv
)

var binOpNames = []string{
	"add", // OpAdd
	"sub", // OpSub
	"mul", // OpMul
	"div", // OpDiv
}

func (k BinOpKind) String() string {
	if k < 0 || int(k) >= len(binOpNames) {
		return "binop?"
	}

	return binOpNames[k]
}

// CmpKind enumerates the comparison predicates.
type CmpKind int

const (
	CmpEq CmpKind = iota
	CmpNe
	CmpLt
	CmpLe
	CmpGt
	CmpGe
)

var cmpNames = []string{
	"cmpeq", // CmpEq
	"cmpne", // CmpNe
	"cmplt", // CmpLt
	"cmple", // CmpLe
	"cmpgt", // CmpGt
	"cmpge", // CmpGe
}

func (k CmpKind) String() string {
	if k < 0 || int(k) >= len(cmpNames) {
		return "cmp?"
	}

	return cmpNames[k]
}

// -----------------------------------------------------------------------------

// LoadConst loads an integer constant into Dst.
type LoadConst struct {
	Value int64
	Dst   string
	Type  typing.PrimitiveType
}

// Move copies the value of Src into Dst.
type Move struct {
	Src  string
	Dst  string
	Type typing.PrimitiveType
}

// BinOp applies an arithmetic operation to Lhs and Rhs and stores the result in
// Dst.  Type is the width of the operation.
type BinOp struct {
	Op   BinOpKind
	Type typing.PrimitiveType
	Lhs  string
	Rhs  string
	Dst  string
}

// Cmp compares Lhs and Rhs and stores 1 or 0 in Dst.
type Cmp struct {
	Op  CmpKind
	Lhs string
	Rhs string
	Dst string
}

// Read reads one integer from the program input into Dst.
type Read struct {
	Dst  string
	Type typing.PrimitiveType
}

// Label marks a position in the instruction stream.
type Label struct {
	Name string
}

// BrIf branches to Then if Cond is nonzero and to Else otherwise.
type BrIf struct {
	Cond string
	Then string
	Else string
}

// Jmp unconditionally branches to Target.
type Jmp struct {
	Target string
}

func (LoadConst) isInstr() {}
func (Move) isInstr()      {}
func (BinOp) isInstr()     {}
func (Cmp) isInstr()       {}
func (Read) isInstr()      {}
func (Label) isInstr()     {}
func (BrIf) isInstr()      {}
func (Jmp) isInstr()       {}

func (i LoadConst) Dest() string { return i.Dst }
func (i Move) Dest() string      { return i.Dst }
func (i BinOp) Dest() string     { return i.Dst }
func (i Cmp) Dest() string       { return i.Dst }
func (i Read) Dest() string      { return i.Dst }
func (Label) Dest() string       { return "" }
func (BrIf) Dest() string        { return "" }
func (Jmp) Dest() string         { return "" }

func (i LoadConst) Repr() string {
	return fmt.Sprintf("%s = const %d", i.Dst, i.Value)
}

func (i Move) Repr() string {
	return fmt.Sprintf("%s = %s", i.Dst, i.Src)
}

func (i BinOp) Repr() string {
	return fmt.Sprintf("%s = %s %s, %s (%s)", i.Dst, i.Op, i.Lhs, i.Rhs, i.Type.Repr())
}

func (i Cmp) Repr() string {
	return fmt.Sprintf("%s = %s %s, %s", i.Dst, i.Op, i.Lhs, i.Rhs)
}

func (i Read) Repr() string {
	return fmt.Sprintf("%s = read (%s)", i.Dst, i.Type.Repr())
}

func (i Label) Repr() string {
	return i.Name + ":"
}

func (i BrIf) Repr() string {
	return fmt.Sprintf("br_if %s, %s, %s", i.Cond, i.Then, i.Else)
}

func (i Jmp) Repr() string {
	return "jmp " + i.Target
}
