package typing

import "testing"

func TestReprRoundTrip(t *testing.T) {
	for _, pt := range []PrimitiveType{PrimKindI32, PrimKindI64} {
		got, ok := ParsePrimitive(pt.Repr())
		if !ok || got != pt {
			t.Errorf("ParsePrimitive(%q) = %v, %v; want %v", pt.Repr(), got, ok, pt)
		}
	}
}

func TestParsePrimitiveRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "f32", "I16", "int"} {
		if _, ok := ParsePrimitive(s); ok {
			t.Errorf("ParsePrimitive(%q) accepted an unknown type", s)
		}
	}
}

func TestBits(t *testing.T) {
	if PrimKindI32.Bits() != 32 || PrimKindI64.Bits() != 64 {
		t.Fatalf("unexpected widths: %d, %d", PrimKindI32.Bits(), PrimKindI64.Bits())
	}
}
