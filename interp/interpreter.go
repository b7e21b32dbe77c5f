// Package interp is the reference interpreter for IR programs.  A program is
// executed by a program counter over its instructions against one flat store
// mapping names to 64-bit integers.
package interp

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SavvyHex/econocode/ir"
)

// Options configures an interpreter.  The zero value runs without a step limit
// and without tracing.
type Options struct {
	// MaxSteps is the maximum number of instructions to execute.  Zero means
	// no limit.
	MaxSteps int

	// Trace, if not nil, receives one line per executed instruction.
	Trace io.Writer
}

// Interpreter executes IR programs.
type Interpreter struct {
	input InputSource
	opts  Options

	// vars is the variable store: both source variables and temporaries.
	vars map[string]int64

	// labels maps label names to instruction indices.
	labels map[string]int

	// lastDest is the destination most recently written.
	lastDest string

	// steps is the number of instructions executed by the current run.
	steps int
}

// NewInterpreter creates an interpreter reading input from the given source.
// The input may be nil if programs never read.
func NewInterpreter(input InputSource, opts Options) *Interpreter {
	return &Interpreter{input: input, opts: opts}
}

// Execute runs a program from its first instruction until the program counter
// runs past the last instruction.  The result is the value of the destination
// most recently written during execution.  Each call starts from an empty
// store.
func (in *Interpreter) Execute(prog ir.Program) (int64, error) {
	in.vars = make(map[string]int64)
	in.lastDest = ""
	in.steps = 0

	if len(prog) == 0 {
		return 0, &Error{Kind: NoInstructions, PC: -1}
	}

	if err := in.indexLabels(prog); err != nil {
		return 0, err
	}

	for pc := 0; pc < len(prog); {
		if in.opts.MaxSteps > 0 && in.steps >= in.opts.MaxSteps {
			return 0, &Error{Kind: StepLimitExceeded, PC: pc, Cause: fmt.Errorf("limit is %d", in.opts.MaxSteps)}
		}
		in.steps++

		if in.opts.Trace != nil {
			fmt.Fprintf(in.opts.Trace, "%4d: %s\n", pc, prog[pc].Repr())
		}

		next, err := in.step(pc, prog[pc])
		if err != nil {
			return 0, err
		}

		pc = next
	}

	if in.lastDest == "" {
		return 0, &Error{Kind: NoResult, PC: -1}
	}

	v, ok := in.vars[in.lastDest]
	if !ok {
		return 0, &Error{Kind: NoResult, Name: in.lastDest, PC: -1}
	}

	return v, nil
}

// Lookup returns the value bound to a name after the last execution.
func (in *Interpreter) Lookup(name string) (int64, bool) {
	v, ok := in.vars[name]
	return v, ok
}

// LastDest returns the destination most recently written by the last
// execution.
func (in *Interpreter) LastDest() string {
	return in.lastDest
}

// Steps returns the number of instructions executed by the last execution.
func (in *Interpreter) Steps() int {
	return in.steps
}

// -----------------------------------------------------------------------------

// indexLabels builds the label table.  Labels must be unique.
func (in *Interpreter) indexLabels(prog ir.Program) error {
	in.labels = make(map[string]int)

	for i, instr := range prog {
		if lbl, ok := instr.(ir.Label); ok {
			if _, exists := in.labels[lbl.Name]; exists {
				return &Error{Kind: DuplicateLabel, Name: lbl.Name, PC: i}
			}

			in.labels[lbl.Name] = i
		}
	}

	return nil
}

// step executes one instruction and returns the next program counter.
func (in *Interpreter) step(pc int, instr ir.Instr) (int, error) {
	switch v := instr.(type) {
	case ir.LoadConst:
		in.store(v.Dst, v.Value)
	case ir.Move:
		val, err := in.load(pc, v.Src)
		if err != nil {
			return 0, err
		}

		in.store(v.Dst, val)
	case ir.BinOp:
		lhs, rhs, err := in.loadPair(pc, v.Lhs, v.Rhs)
		if err != nil {
			return 0, err
		}

		result, err := applyBinOp(pc, v.Op, lhs, rhs)
		if err != nil {
			return 0, err
		}

		in.store(v.Dst, result)
	case ir.Cmp:
		lhs, rhs, err := in.loadPair(pc, v.Lhs, v.Rhs)
		if err != nil {
			return 0, err
		}

		if applyCmp(v.Op, lhs, rhs) {
			in.store(v.Dst, 1)
		} else {
			in.store(v.Dst, 0)
		}
	case ir.Read:
		val, err := in.read(pc, v.Dst)
		if err != nil {
			return 0, err
		}

		in.store(v.Dst, val)
	case ir.Label:
		// nop
	case ir.BrIf:
		cond, err := in.load(pc, v.Cond)
		if err != nil {
			return 0, err
		}

		if cond != 0 {
			return in.jump(pc, v.Then)
		}

		return in.jump(pc, v.Else)
	case ir.Jmp:
		return in.jump(pc, v.Target)
	default:
		return 0, fmt.Errorf("instruction %d: cannot execute %T", pc, instr)
	}

	return pc + 1, nil
}

// store writes a destination and records it as the latest write.
func (in *Interpreter) store(name string, val int64) {
	in.vars[name] = val
	in.lastDest = name
}

// load reads a name from the store.
func (in *Interpreter) load(pc int, name string) (int64, error) {
	val, ok := in.vars[name]
	if !ok {
		return 0, &Error{Kind: UndefinedVariable, Name: name, PC: pc}
	}

	return val, nil
}

// loadPair reads the two operands of a binary instruction, left first.
func (in *Interpreter) loadPair(pc int, lhsName, rhsName string) (int64, int64, error) {
	lhs, err := in.load(pc, lhsName)
	if err != nil {
		return 0, 0, err
	}

	rhs, err := in.load(pc, rhsName)
	if err != nil {
		return 0, 0, err
	}

	return lhs, rhs, nil
}

// jump resolves a label to the index of its definition.
func (in *Interpreter) jump(pc int, label string) (int, error) {
	target, ok := in.labels[label]
	if !ok {
		return 0, &Error{Kind: UnknownLabel, Name: label, PC: pc}
	}

	return target, nil
}

// read acquires one integer from the input source.
func (in *Interpreter) read(pc int, name string) (int64, error) {
	if in.input == nil {
		return 0, &Error{Kind: InputParseError, Name: name, PC: pc, Cause: fmt.Errorf("no input source")}
	}

	line, err := in.input.ReadLine("Input " + name + ": ")
	if err != nil {
		return 0, &Error{Kind: InputParseError, Name: name, PC: pc, Cause: err}
	}

	val, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, &Error{Kind: InputParseError, Name: name, PC: pc, Cause: err}
	}

	return val, nil
}

// -----------------------------------------------------------------------------

// applyBinOp applies an arithmetic operation in 64-bit two's complement.
func applyBinOp(pc int, op ir.BinOpKind, lhs, rhs int64) (int64, error) {
	switch op {
	case ir.OpAdd:
		return lhs + rhs, nil
	case ir.OpSub:
		return lhs - rhs, nil
	case ir.OpMul:
		return lhs * rhs, nil
	case ir.OpDiv:
		if rhs == 0 {
			return 0, &Error{Kind: DivisionByZero, PC: pc}
		}

		return lhs / rhs, nil
	}

	return 0, fmt.Errorf("instruction %d: unknown arithmetic operation %d", pc, op)
}

// applyCmp evaluates a comparison predicate.
func applyCmp(op ir.CmpKind, lhs, rhs int64) bool {
	switch op {
	case ir.CmpEq:
		return lhs == rhs
	case ir.CmpNe:
		return lhs != rhs
	case ir.CmpLt:
		return lhs < rhs
	case ir.CmpLe:
		return lhs <= rhs
	case ir.CmpGt:
		return lhs > rhs
	default:
		return lhs >= rhs
	}
}
