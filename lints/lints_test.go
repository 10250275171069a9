package lints_test

import (
	"testing"

	"lintwire/adapter"
	"lintwire/ast"
	"lintwire/diag"
	"lintwire/internal/memdriver"
	"lintwire/lint"
	"lintwire/lints"
)

func runAll(t *testing.T, st *memdriver.Store) *memdriver.Bag {
	t.Helper()
	cx, err := st.NewContext()
	if err != nil {
		t.Fatalf("NewContext() = %v", err)
	}
	runner := adapter.NewRunner(
		lints.StaticNamePass{},
		lints.EmptyBlockPass{},
		lints.NegLiteralPass{},
	)
	runner.Run(cx, st.Crate())
	st.Diags().Sort()
	return st.Diags()
}

func TestStaticName(t *testing.T) {
	st := memdriver.New()
	st.AddFile("main.sg", "static counter = 1;\nstatic LIMIT = 2;")

	badSpan := st.FileSpan("main.sg", 0, 19)
	one := st.RegisterExpr(ast.NewIntLitExpr(st.NewExprData(badSpan), 1).AsExpr())
	dataBad := st.NewItemData(badSpan, "counter")
	bad := ast.NewStaticItem(dataBad, ast.Immutable, st.NewBody(dataBad.ID(), one))
	st.AddTopLevel(st.RegisterItem(bad.AsItem()))

	goodSpan := st.FileSpan("main.sg", 20, 37)
	two := st.RegisterExpr(ast.NewIntLitExpr(st.NewExprData(goodSpan), 2).AsExpr())
	dataGood := st.NewItemData(goodSpan, "LIMIT")
	good := ast.NewStaticItem(dataGood, ast.Immutable, st.NewBody(dataGood.ID(), two))
	st.AddTopLevel(st.RegisterItem(good.AsItem()))

	bag := runAll(t, st)
	if bag.Len() != 1 {
		t.Fatalf("emitted %d diagnostics, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Lint != lints.StaticName {
		t.Errorf("wrong lint: %s", d.Lint.Name)
	}
	if len(d.Suggestions) != 1 || d.Suggestions[0].Replacement != "COUNTER" {
		t.Errorf("suggestion = %+v", d.Suggestions)
	}
	if d.Suggestions[0].Applicability != diag.MachineApplicable {
		t.Error("rename suggestion should be machine applicable")
	}
}

func TestEmptyBlock(t *testing.T) {
	st := memdriver.New()
	st.AddFile("main.sg", "fn f() {}")
	span := st.FileSpan("main.sg", 7, 9)

	block := st.RegisterExpr(ast.NewBlockExpr(st.NewExprData(span), nil).AsExpr())
	dataFn := st.NewItemData(span, "f")
	st.AddTopLevel(st.RegisterItem(ast.NewFnItem(dataFn, nil, st.NewBody(dataFn.ID(), block)).AsItem()))

	bag := runAll(t, st)
	if bag.Len() != 1 || bag.Items()[0].Lint != lints.EmptyBlock {
		t.Fatalf("want one empty_block diagnostic, got %d", bag.Len())
	}
}

func TestNegLiteral(t *testing.T) {
	st := memdriver.New()
	st.AddFile("main.sg", "const A = -0; const B = -1;")

	spanA := st.FileSpan("main.sg", 10, 12)
	zero := st.RegisterExpr(ast.NewIntLitExpr(st.NewExprData(spanA), 0).AsExpr())
	negZero := st.RegisterExpr(ast.NewUnaryOpExpr(st.NewExprData(spanA), ast.UnaryOpNeg, zero).AsExpr())
	dataA := st.NewItemData(spanA, "A")
	st.AddTopLevel(st.RegisterItem(ast.NewConstItem(dataA, st.NewBody(dataA.ID(), negZero)).AsItem()))

	spanB := st.FileSpan("main.sg", 24, 26)
	one := st.RegisterExpr(ast.NewIntLitExpr(st.NewExprData(spanB), 1).AsExpr())
	negOne := st.RegisterExpr(ast.NewUnaryOpExpr(st.NewExprData(spanB), ast.UnaryOpNeg, one).AsExpr())
	dataB := st.NewItemData(spanB, "B")
	st.AddTopLevel(st.RegisterItem(ast.NewConstItem(dataB, st.NewBody(dataB.ID(), negOne)).AsItem()))

	bag := runAll(t, st)
	if bag.Len() != 1 {
		t.Fatalf("emitted %d diagnostics, want only the -0", bag.Len())
	}
	d := bag.Items()[0]
	if d.Lint != lints.NegLiteral {
		t.Errorf("wrong lint: %s", d.Lint.Name)
	}
	if len(d.Notes) != 1 || d.Notes[0].Kind != diag.NoteKindHelp {
		t.Error("help decoration should be attached")
	}
}

func TestConfiguredAllowSilences(t *testing.T) {
	st := memdriver.New()
	st.AddFile("main.sg", "static counter = 1;")
	span := st.FileSpan("main.sg", 0, 19)
	one := st.RegisterExpr(ast.NewIntLitExpr(st.NewExprData(span), 1).AsExpr())
	data := st.NewItemData(span, "counter")
	st.AddTopLevel(st.RegisterItem(ast.NewStaticItem(data, ast.Immutable, st.NewBody(data.ID(), one)).AsItem()))

	st.SetLintLevel(lints.StaticName.Name, lint.LevelAllow)
	bag := runAll(t, st)
	if bag.Len() != 0 {
		t.Fatalf("allowed lint emitted %d diagnostics", bag.Len())
	}
}
