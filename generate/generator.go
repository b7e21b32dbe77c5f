// Package generate converts econ IR programs into LLVM IR modules.
package generate

import (
	eir "github.com/SavvyHex/econocode/ir"
	"github.com/pkg/errors"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// ReadFuncName is the name of the external function called to read an input
// value.  It takes the ordinal of the read within the program.
const ReadFuncName = "econ_read_i64"

// Generator is responsible for converting an IR program into a single LLVM
// module containing a `main` function which returns the last value written.
type Generator struct {
	// mod is the LLVM module being generated.
	mod *ir.Module

	// enclosingFunc is the `main` function.
	enclosingFunc *ir.Func

	// readFunc is the declaration of the external read function.
	readFunc *ir.Func

	// block is the block currently being generated.  It is nil when the
	// generator is positioned after a terminator and before the next label:
	// instructions there are unreachable and are dropped.
	block *ir.Block

	// slots holds the stack slot of each variable and temporary.
	slots map[string]*ir.InstAlloca

	// lastSlot holds the most recently written value.
	lastSlot *ir.InstAlloca

	// labelBlocks maps each label to its block.
	labelBlocks map[string]*ir.Block

	// readCounter counts the reads generated so far.
	readCounter int64
}

// NewGenerator creates a new generator for a module named name.
func NewGenerator(name string) *Generator {
	mod := ir.NewModule()
	mod.SourceFilename = name

	return &Generator{
		mod:         mod,
		slots:       make(map[string]*ir.InstAlloca),
		labelBlocks: make(map[string]*ir.Block),
	}
}

// Generate converts prog into an LLVM module.  The program must only branch
// to labels it defines, and each label must be defined once.
func Generate(name string, prog eir.Program) (*ir.Module, error) {
	if err := eir.Validate(prog); err != nil {
		return nil, errors.Wrap(err, "generating LLVM")
	}

	g := NewGenerator(name)
	g.genProgram(prog)
	return g.mod, nil
}

// genProgram generates the `main` function for prog.
func (g *Generator) genProgram(prog eir.Program) {
	g.readFunc = g.mod.NewFunc(ReadFuncName, types.I64, ir.NewParam("ordinal", types.I64))
	g.enclosingFunc = g.mod.NewFunc("main", types.I64)

	g.block = g.enclosingFunc.NewBlock("entry.0")
	g.genSlots(prog)

	// label blocks are created up front so forward branches can refer to them
	for _, instr := range prog {
		if label, ok := instr.(eir.Label); ok {
			g.labelBlocks[label.Name] = g.enclosingFunc.NewBlock(label.Name)
		}
	}

	for _, instr := range prog {
		g.genInstr(instr)
	}

	if g.block != nil {
		g.block.NewRet(g.block.NewLoad(types.I64, g.lastSlot))
	}
}

// genSlots allocates and zeroes a stack slot for every name in prog.
func (g *Generator) genSlots(prog eir.Program) {
	zero := constant.NewInt(types.I64, 0)

	g.lastSlot = g.block.NewAlloca(types.I64)
	g.lastSlot.SetName("result.last")
	g.block.NewStore(zero, g.lastSlot)

	for _, instr := range prog {
		names := eir.Operands(instr)
		if dest := instr.Dest(); dest != "" {
			names = append(names, dest)
		}

		for _, name := range names {
			if _, ok := g.slots[name]; !ok {
				slot := g.block.NewAlloca(types.I64)
				slot.SetName(name + ".addr")
				g.block.NewStore(zero, slot)
				g.slots[name] = slot
			}
		}
	}
}

// load loads the value of the named slot.
func (g *Generator) load(name string) value.Value {
	return g.block.NewLoad(types.I64, g.slots[name])
}

// store writes val to the named slot and records it as the last value.
func (g *Generator) store(name string, val value.Value) {
	g.block.NewStore(val, g.slots[name])
	g.block.NewStore(val, g.lastSlot)
}
