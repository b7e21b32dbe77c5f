package ir

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/SavvyHex/econocode/typing"
)

func TestInstrRepr(t *testing.T) {
	tests := []struct {
		instr Instr
		want  string
	}{
		{LoadConst{Value: 42, Dst: "t0", Type: typing.PrimKindI32}, "t0 = const 42"},
		{LoadConst{Value: -7, Dst: "t1", Type: typing.PrimKindI64}, "t1 = const -7"},
		{Move{Src: "x", Dst: "t2", Type: typing.PrimKindI64}, "t2 = x"},
		{BinOp{Op: OpAdd, Type: typing.PrimKindI64, Lhs: "t0", Rhs: "t1", Dst: "t3"}, "t3 = add t0, t1 (I64)"},
		{BinOp{Op: OpDiv, Type: typing.PrimKindI32, Lhs: "a", Rhs: "b", Dst: "c"}, "c = div a, b (I32)"},
		{Cmp{Op: CmpGe, Lhs: "a", Rhs: "b", Dst: "t4"}, "t4 = cmpge a, b"},
		{Read{Dst: "n", Type: typing.PrimKindI64}, "n = read (I64)"},
		{Label{Name: "then_0"}, "then_0:"},
		{BrIf{Cond: "t4", Then: "then_0", Else: "else_0"}, "br_if t4, then_0, else_0"},
		{Jmp{Target: "end_0"}, "jmp end_0"},
	}

	for _, tc := range tests {
		if got := tc.instr.Repr(); got != tc.want {
			t.Errorf("Repr() = %q, want %q", got, tc.want)
		}
	}
}

func TestDest(t *testing.T) {
	if (Label{Name: "l"}).Dest() != "" || (Jmp{Target: "l"}).Dest() != "" || (BrIf{}).Dest() != "" {
		t.Fatal("control instructions must not have a destination")
	}

	if (Read{Dst: "n"}).Dest() != "n" || (Cmp{Dst: "t0"}).Dest() != "t0" {
		t.Fatal("writing instructions must report their destination")
	}
}

func sampleProgram() Program {
	return Program{
		LoadConst{Value: 10, Dst: "t0", Type: typing.PrimKindI64},
		Move{Src: "t0", Dst: "x", Type: typing.PrimKindI64},
		Label{Name: "while_head_0"},
		Move{Src: "x", Dst: "t1", Type: typing.PrimKindI64},
		LoadConst{Value: 0, Dst: "t2", Type: typing.PrimKindI64},
		Cmp{Op: CmpGt, Lhs: "t1", Rhs: "t2", Dst: "t3"},
		BrIf{Cond: "t3", Then: "while_body_0", Else: "while_end_0"},
		Label{Name: "while_body_0"},
		Read{Dst: "n", Type: typing.PrimKindI64},
		BinOp{Op: OpSub, Type: typing.PrimKindI32, Lhs: "x", Rhs: "n", Dst: "t4"},
		Move{Src: "t4", Dst: "x", Type: typing.PrimKindI64},
		Jmp{Target: "while_head_0"},
		Label{Name: "while_end_0"},
	}
}

func TestProgramReprLineCount(t *testing.T) {
	prog := sampleProgram()
	text := prog.Repr()

	if !strings.HasSuffix(text, "\n") {
		t.Fatal("listing must end with a newline")
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) != len(prog) {
		t.Fatalf("got %d lines for %d instructions", len(lines), len(prog))
	}
}

func TestParseRoundTrip(t *testing.T) {
	prog := sampleProgram()

	parsed, err := ParseString(prog.Repr())
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if !reflect.DeepEqual(parsed, prog) {
		t.Fatalf("round trip mismatch:\n%s\nvs\n%s", parsed.Repr(), prog.Repr())
	}

	if parsed.Repr() != prog.Repr() {
		t.Fatal("re-rendered listing differs")
	}
}

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	src := "# a comment\n\n  t0 = const 1  \n\nt1 = t0\n"

	prog, err := ParseString(src)
	if err != nil {
		t.Fatal(err)
	}

	if len(prog) != 2 {
		t.Fatalf("expected 2 instructions, got %d", len(prog))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		line int
	}{
		{"t0 = const abc", 1},
		{"t0 = const 1\nbogus", 2},
		{"t0 = add a, b", 1},
		{"t0 = add a (I64)", 1},
		{"t0 = mul a, b (F32)", 1},
		{"\n\nbr_if c, t", 3},
		{"jmp 9lives", 1},
		{"9x = const 1", 1},
		{"t0 = read I64", 1},
		{"bad label:", 1},
	}

	for _, tc := range tests {
		_, err := ParseString(tc.src)

		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%q: expected a ParseError, got %v", tc.src, err)
			continue
		}

		if pe.Line != tc.line {
			t.Errorf("%q: error on line %d, want %d", tc.src, pe.Line, tc.line)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(sampleProgram()); err != nil {
		t.Fatalf("sample program should be valid: %v", err)
	}

	bad := Program{
		Label{Name: "a"},
		Jmp{Target: "b"},
		Label{Name: "a"},
		BrIf{Cond: "c", Then: "a", Else: "z"},
	}

	err := Validate(bad)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	if len(ve.Problems) != 3 {
		t.Fatalf("expected 3 problems, got %d: %v", len(ve.Problems), ve.Problems)
	}
}

func TestOperandsAndTargets(t *testing.T) {
	br := BrIf{Cond: "c", Then: "t", Else: "e"}
	if !reflect.DeepEqual(Targets(br), []string{"t", "e"}) {
		t.Errorf("unexpected targets %v", Targets(br))
	}

	if !reflect.DeepEqual(Operands(br), []string{"c"}) {
		t.Errorf("unexpected operands %v", Operands(br))
	}

	if Operands(LoadConst{Dst: "x"}) != nil || Targets(Move{}) != nil {
		t.Error("expected no operands or targets")
	}

	if got := sampleProgram().Labels(); !reflect.DeepEqual(got, []string{"while_head_0", "while_body_0", "while_end_0"}) {
		t.Errorf("unexpected labels %v", got)
	}
}
