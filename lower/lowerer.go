// Package lower translates typed AST trees into linear IR programs.
package lower

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SavvyHex/econocode/ast"
	"github.com/SavvyHex/econocode/ir"
)

// Lowerer is the construct responsible for converting the AST into IR.  One
// lowerer corresponds to one compilation unit: it owns the growing program and
// the counters used to generate temporary and label names, so names are unique
// within everything it lowers.
type Lowerer struct {
	// code is the program under construction.
	code ir.Program

	// tempCounter is the number of the next temporary.
	tempCounter int

	// labelCounter is the number of the next group of labels.  All labels
	// allocated for one control flow construct share a number.
	labelCounter int
}

// NewLowerer creates a new lowerer with an empty program.
func NewLowerer() *Lowerer {
	return &Lowerer{}
}

// Lower lowers an expression, appending its instructions to the program, and
// returns the name holding the expression's value.  Malformed trees are
// reported as a *LoweringError and leave the lowerer as it was before the call.
func (l *Lowerer) Lower(expr ast.Expr) (result string, err error) {
	codeLen, tempCounter, labelCounter := len(l.code), l.tempCounter, l.labelCounter
	defer func() {
		if err != nil {
			l.code = l.code[:codeLen]
			l.tempCounter, l.labelCounter = tempCounter, labelCounter
		}
	}()

	defer catchErrors(&err)

	return l.lowerExpr(expr), nil
}

// Program returns the instructions emitted so far.
func (l *Lowerer) Program() ir.Program {
	return l.code
}

// Listing returns the textual listing of the program followed by a line naming
// the value holding the result.
func (l *Lowerer) Listing(result string) string {
	sb := strings.Builder{}
	sb.WriteString(l.code.Repr())
	sb.WriteString("Result in ")
	sb.WriteString(result)
	sb.WriteRune('\n')
	return sb.String()
}

// Lower lowers a whole program with a fresh lowerer.
func Lower(expr ast.Expr) (ir.Program, string, error) {
	l := NewLowerer()

	result, err := l.Lower(expr)
	if err != nil {
		return nil, "", err
	}

	return l.code, result, nil
}

// -----------------------------------------------------------------------------

// emit appends an instruction to the program.
func (l *Lowerer) emit(instr ir.Instr) {
	l.code = append(l.code, instr)
}

// getTempName gets a fresh temporary name from the counter.
func (l *Lowerer) getTempName() string {
	name := "t" + strconv.Itoa(l.tempCounter)
	l.tempCounter++
	return name
}

// getLabelNames allocates one label per kind, all under the same number.
func (l *Lowerer) getLabelNames(kinds ...string) []string {
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = fmt.Sprintf("%s_%d", kind, l.labelCounter)
	}

	l.labelCounter++
	return names
}
