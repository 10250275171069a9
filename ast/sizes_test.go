//go:build amd64 || arm64

package ast

import (
	"testing"
	"unsafe"
)

// The in-memory layout of every node that crosses the plugin/host
// boundary is part of the protocol. These sizes are allowed to change,
// but only as a deliberate, reviewed change paired with an API version
// bump.
func TestNodeSizes(t *testing.T) {
	sizes := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Span", unsafe.Sizeof(Span{}), 16},
		{"Ident", unsafe.Sizeof(Ident{}), 8},
		{"CommonExprData", unsafe.Sizeof(CommonExprData{}), 8},
		{"ExprKind", unsafe.Sizeof(ExprKind{}), 24},
		{"TyKind", unsafe.Sizeof(TyKind{}), 24},
		{"EmissionNode", unsafe.Sizeof(EmissionNode{}), 8},

		{"IntLitExpr", unsafe.Sizeof(IntLitExpr{}), 16},
		{"FloatLitExpr", unsafe.Sizeof(FloatLitExpr{}), 16},
		{"StrLitExpr", unsafe.Sizeof(StrLitExpr{}), 12},
		{"CharLitExpr", unsafe.Sizeof(CharLitExpr{}), 12},
		{"BoolLitExpr", unsafe.Sizeof(BoolLitExpr{}), 12},
		{"BlockExpr", unsafe.Sizeof(BlockExpr{}), 32},
		{"ClosureExpr", unsafe.Sizeof(ClosureExpr{}), 56},
		{"UnaryOpExpr", unsafe.Sizeof(UnaryOpExpr{}), 40},
		{"RefExpr", unsafe.Sizeof(RefExpr{}), 40},
		{"BinaryOpExpr", unsafe.Sizeof(BinaryOpExpr{}), 64},
		{"AssignExpr", unsafe.Sizeof(AssignExpr{}), 64},
		{"CastExpr", unsafe.Sizeof(CastExpr{}), 56},
		{"PathExpr", unsafe.Sizeof(PathExpr{}), 32},
		{"CallExpr", unsafe.Sizeof(CallExpr{}), 56},
		{"MethodExpr", unsafe.Sizeof(MethodExpr{}), 64},
		{"IndexExpr", unsafe.Sizeof(IndexExpr{}), 56},
		{"FieldExpr", unsafe.Sizeof(FieldExpr{}), 40},
		{"ArrayExpr", unsafe.Sizeof(ArrayExpr{}), 32},
		{"TupleExpr", unsafe.Sizeof(TupleExpr{}), 32},
		{"CtorExpr", unsafe.Sizeof(CtorExpr{}), 56},
		{"RangeExpr", unsafe.Sizeof(RangeExpr{}), 64},
		{"IfExpr", unsafe.Sizeof(IfExpr{}), 80},
		{"MatchExpr", unsafe.Sizeof(MatchExpr{}), 56},
		{"ReturnExpr", unsafe.Sizeof(ReturnExpr{}), 32},
		{"BreakExpr", unsafe.Sizeof(BreakExpr{}), 32},
		{"ContinueExpr", unsafe.Sizeof(ContinueExpr{}), 8},
		{"AwaitExpr", unsafe.Sizeof(AwaitExpr{}), 32},
		{"UnstableExpr", unsafe.Sizeof(UnstableExpr{}), 12},

		{"CommonItemData", unsafe.Sizeof(CommonItemData{}), 16},
		{"ItemKind", unsafe.Sizeof(ItemKind{}), 24},
		{"ModItem", unsafe.Sizeof(ModItem{}), 40},
		{"ExternCrateItem", unsafe.Sizeof(ExternCrateItem{}), 16},
		{"UseDeclItem", unsafe.Sizeof(UseDeclItem{}), 48},
		{"StaticItem", unsafe.Sizeof(StaticItem{}), 24},
		{"ConstItem", unsafe.Sizeof(ConstItem{}), 20},
		{"FnItem", unsafe.Sizeof(FnItem{}), 48},
		{"Body", unsafe.Sizeof(Body{}), 32},
	}

	for _, s := range sizes {
		if s.got != s.want {
			t.Errorf("sizeof(%s) = %d, want %d", s.name, s.got, s.want)
		}
	}
}
