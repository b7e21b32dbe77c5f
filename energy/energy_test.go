package energy

import (
	"reflect"
	"testing"

	"github.com/SavvyHex/econocode/ir"
	"github.com/SavvyHex/econocode/typing"
)

const (
	i32 = typing.PrimKindI32
	i64 = typing.PrimKindI64
)

func TestCostTable(t *testing.T) {
	tests := []struct {
		instr ir.Instr
		want  int
	}{
		{ir.LoadConst{Value: 1, Dst: "t", Type: i32}, 1},
		{ir.LoadConst{Value: 1, Dst: "t", Type: i64}, 1},
		{ir.Move{Src: "x", Dst: "t", Type: i32}, 4},
		{ir.Move{Src: "x", Dst: "t", Type: i64}, 5},
		{ir.BinOp{Op: ir.OpAdd, Type: i32}, 1},
		{ir.BinOp{Op: ir.OpAdd, Type: i64}, 1},
		{ir.BinOp{Op: ir.OpSub, Type: i32}, 1},
		{ir.BinOp{Op: ir.OpSub, Type: i64}, 1},
		{ir.BinOp{Op: ir.OpMul, Type: i32}, 3},
		{ir.BinOp{Op: ir.OpMul, Type: i64}, 5},
		{ir.BinOp{Op: ir.OpDiv, Type: i32}, 20},
		{ir.BinOp{Op: ir.OpDiv, Type: i64}, 40},
		{ir.Cmp{Op: ir.CmpEq}, 1},
		{ir.Cmp{Op: ir.CmpGe}, 1},
		{ir.Read{Dst: "n", Type: i32}, 50},
		{ir.Read{Dst: "n", Type: i64}, 50},
		{ir.Label{Name: "l"}, 0},
		{ir.BrIf{Cond: "c", Then: "a", Else: "b"}, 1},
		{ir.Jmp{Target: "l"}, 1},
	}

	for _, tc := range tests {
		if got := Cost(tc.instr); got != tc.want {
			t.Errorf("Cost(%#v) = %d, want %d", tc.instr, got, tc.want)
		}
	}
}

func TestEstimateSumsCosts(t *testing.T) {
	prog := ir.Program{
		ir.LoadConst{Value: 3, Dst: "t0", Type: i64},
		ir.LoadConst{Value: 4, Dst: "t1", Type: i64},
		ir.BinOp{Op: ir.OpAdd, Type: i64, Lhs: "t0", Rhs: "t1", Dst: "t2"},
		ir.LoadConst{Value: 2, Dst: "t3", Type: i64},
		ir.BinOp{Op: ir.OpMul, Type: i64, Lhs: "t2", Rhs: "t3", Dst: "t4"},
	}

	if got := Estimate(prog); got != 1+1+1+1+5 {
		t.Fatalf("Estimate = %d, want 9", got)
	}

	if Estimate(nil) != 0 {
		t.Fatal("empty program must cost nothing")
	}
}

func TestBreakdown(t *testing.T) {
	prog := ir.Program{
		ir.Label{Name: "a"},
		ir.Read{Dst: "n", Type: i64},
		ir.LoadConst{Value: 1, Dst: "t0", Type: i64},
		ir.LoadConst{Value: 2, Dst: "t1", Type: i32},
		ir.BinOp{Op: ir.OpDiv, Type: i32, Lhs: "t0", Rhs: "t1", Dst: "t2"},
		ir.Jmp{Target: "a"},
	}

	want := []ClassCost{
		{Class: "const", Count: 2, Cost: 2},
		{Class: "div", Count: 1, Cost: 20},
		{Class: "read", Count: 1, Cost: 50},
		{Class: "label", Count: 1, Cost: 0},
		{Class: "jmp", Count: 1, Cost: 1},
	}

	got := Breakdown(prog)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Breakdown = %+v, want %+v", got, want)
	}

	total := 0
	for _, cc := range got {
		total += cc.Cost
	}

	if total != Estimate(prog) {
		t.Fatalf("breakdown total %d differs from estimate %d", total, Estimate(prog))
	}
}
