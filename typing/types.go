// Package typing defines the static types attached to AST and IR nodes.  The
// language only knows two integer widths, so the type system is a closed tag
// rather than a full data type hierarchy.
package typing

import "fmt"

// PrimitiveType is the width tag of an integer value.  Its value must be one of
// the enumerated primitive kinds below.
type PrimitiveType uint

// Enumeration of primitive types
const (
	PrimKindI32 PrimitiveType = iota
	PrimKindI64
)

// Repr returns the spelling of the type used in the IR text form.
func (pt PrimitiveType) Repr() string {
	switch pt {
	case PrimKindI32:
		return "I32"
	case PrimKindI64:
		return "I64"
	default:
		return fmt.Sprintf("prim(%d)", uint(pt))
	}
}

// Bits returns the width of the type in bits.
func (pt PrimitiveType) Bits() int {
	if pt == PrimKindI32 {
		return 32
	}

	return 64
}

// ParsePrimitive converts the IR spelling of a type back into a primitive type.
// Both `I32` and the source spelling `i32` are accepted.
func ParsePrimitive(s string) (PrimitiveType, bool) {
	switch s {
	case "I32", "i32":
		return PrimKindI32, true
	case "I64", "i64":
		return PrimKindI64, true
	}

	return 0, false
}
