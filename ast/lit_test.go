package ast

import (
	"testing"
)

func intLit(id ExprID, v uint64) *IntLitExpr {
	return NewIntLitExpr(NewCommonExprData(id, SpanID(id)), v)
}

func negate(id ExprID, operand ExprKind) *UnaryOpExpr {
	return NewUnaryOpExpr(NewCommonExprData(id, SpanID(id)), UnaryOpNeg, operand)
}

func TestLitExpr_NegativeLiteralRoundTrip(t *testing.T) {
	neg := negate(2, intLit(1, 42).AsExpr())
	expr := neg.AsExpr()

	narrow, ok := LitExprFromExpr(expr)
	if !ok {
		t.Fatal("negation of a literal should narrow to a literal kind")
	}
	if narrow.Tag() != LitTagUnaryOp {
		t.Fatalf("Tag() = %d, want LitTagUnaryOp", narrow.Tag())
	}

	back := narrow.AsExpr()
	if back.Tag() != ExprTagUnaryOp {
		t.Fatalf("widened Tag() = %d, want ExprTagUnaryOp", back.Tag())
	}
	got, ok := back.AsUnaryOp()
	if !ok {
		t.Fatal("widened kind should expose the unary node")
	}
	if got != neg {
		t.Error("round trip must yield the identical node")
	}
}

func TestLitExpr_NestedNegation(t *testing.T) {
	// --1 narrows too: the operand of the outer negation is itself a
	// negative literal.
	inner := negate(2, intLit(1, 1).AsExpr())
	outer := negate(3, inner.AsExpr())

	if _, ok := LitExprFromExpr(outer.AsExpr()); !ok {
		t.Error("negation chain over a literal should narrow")
	}
}

func TestLitExpr_NonLiteralOperandFails(t *testing.T) {
	path := NewPathExpr(NewCommonExprData(1, 1), []Ident{NewIdent(1, 1)})
	neg := negate(2, path.AsExpr())

	if _, ok := LitExprFromExpr(neg.AsExpr()); ok {
		t.Error("negation of a non-literal must not narrow")
	}
}

func TestLitExpr_NonNegOperatorFails(t *testing.T) {
	not := NewUnaryOpExpr(NewCommonExprData(2, 2), UnaryOpNot, intLit(1, 1).AsExpr())
	if _, ok := LitExprFromExpr(not.AsExpr()); ok {
		t.Error("only negation participates in the literal sub-kind")
	}
}

func TestLitExpr_PlainLiterals(t *testing.T) {
	tests := []struct {
		name string
		expr ExprKind
		tag  LitExprTag
	}{
		{name: "int", expr: intLit(1, 7).AsExpr(), tag: LitTagInt},
		{name: "float", expr: NewFloatLitExpr(NewCommonExprData(2, 2), 1.5).AsExpr(), tag: LitTagFloat},
		{name: "str", expr: NewStrLitExpr(NewCommonExprData(3, 3), 1).AsExpr(), tag: LitTagStr},
		{name: "char", expr: NewCharLitExpr(NewCommonExprData(4, 4), 'x').AsExpr(), tag: LitTagChar},
		{name: "bool", expr: NewBoolLitExpr(NewCommonExprData(5, 5), true).AsExpr(), tag: LitTagBool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			narrow, ok := LitExprFromExpr(tt.expr)
			if !ok {
				t.Fatal("plain literal should narrow")
			}
			if narrow.Tag() != tt.tag {
				t.Errorf("Tag() = %d, want %d", narrow.Tag(), tt.tag)
			}
			if narrow.AsExpr().Tag() != tt.expr.Tag() {
				t.Error("widening should restore the original variant")
			}
			if narrow.ID() != tt.expr.ID() {
				t.Error("narrowing must preserve the node ID")
			}
		})
	}

	if _, ok := LitExprFromExpr(NewContinueExpr(NewCommonExprData(9, 9)).AsExpr()); ok {
		t.Error("non-literal kinds must not narrow")
	}
}

func TestExprKind_TagAgreement(t *testing.T) {
	lit := intLit(1, 3)
	expr := lit.AsExpr()

	if expr.Tag() != ExprTagIntLit {
		t.Fatalf("Tag() = %d, want ExprTagIntLit", expr.Tag())
	}
	if got, ok := expr.AsIntLit(); !ok || got != lit {
		t.Error("AsIntLit should return the wrapped node")
	}
	if _, ok := expr.AsFloatLit(); ok {
		t.Error("accessor for an inactive variant must fail")
	}
	if expr.ID() != 1 {
		t.Errorf("ID() = %d, want 1", expr.ID())
	}
	if expr.Precedence() != PrecLit {
		t.Errorf("Precedence() = %#x, want PrecLit", expr.Precedence())
	}
}

func TestPrecedence_Bands(t *testing.T) {
	// Literals bind tightest, jump expressions loosest.
	ordered := []Precedence{
		PrecLit, PrecPath, PrecCall, PrecField, PrecIndex,
		PrecNeg, PrecCast, PrecMul, PrecAdd, PrecShl, PrecBitAnd,
		PrecBitXor, PrecBitOr, PrecComparison, PrecAnd, PrecOr,
		PrecRange, PrecAssignOp, PrecClosure,
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Band() <= ordered[i].Band() {
			t.Errorf("band %#x should be above %#x", ordered[i-1], ordered[i])
		}
	}

	// Producer-supplied precedence passes through unchanged.
	unstable := NewUnstableExpr(NewCommonExprData(1, 1), Precedence(0x0150_0000))
	if unstable.Precedence() != Precedence(0x0150_0000) {
		t.Error("unstable precedence must come from the producer")
	}
}
