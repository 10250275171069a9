package adapter_test

import (
	"testing"

	"lintwire/adapter"
	"lintwire/ast"
	"lintwire/internal/memdriver"
	"lintwire/lint"
	"lintwire/pass"
	"lintwire/session"
)

// recordingPass counts hook invocations and remembers expression order.
type recordingPass struct {
	pass.Base
	items       int
	mods        int
	useDecls    int
	statics     []string
	consts      int
	fns         int
	bodies      int
	exprTags    []ast.ExprTag
	externCrate int
}

func (p *recordingPass) RegisteredLints() []*lint.Lint { return nil }

func (p *recordingPass) CheckItem(_ *session.Context, item ast.ItemKind) { p.items++ }
func (p *recordingPass) CheckMod(_ *session.Context, _ *ast.ModItem)     { p.mods++ }
func (p *recordingPass) CheckExternCrate(_ *session.Context, _ *ast.ExternCrateItem) {
	p.externCrate++
}
func (p *recordingPass) CheckUseDecl(_ *session.Context, _ *ast.UseDeclItem) { p.useDecls++ }
func (p *recordingPass) CheckStatic(_ *session.Context, item *ast.StaticItem) {
	p.statics = append(p.statics, item.Ident().Name())
}
func (p *recordingPass) CheckConst(_ *session.Context, _ *ast.ConstItem) { p.consts++ }
func (p *recordingPass) CheckFn(_ *session.Context, _ *ast.FnItem)       { p.fns++ }
func (p *recordingPass) CheckBody(_ *session.Context, _ *ast.Body)       { p.bodies++ }
func (p *recordingPass) CheckExpr(_ *session.Context, expr ast.ExprKind) {
	p.exprTags = append(p.exprTags, expr.Tag())
}

func TestRunner_StaticItemsScenario(t *testing.T) {
	st := memdriver.New()
	st.AddFile("m.sg", "mod m { static A = 1; static B = 2; use core::cmp; }")
	span := st.FileSpan("m.sg", 0, 1)

	litA := st.RegisterExpr(ast.NewIntLitExpr(st.NewExprData(span), 1).AsExpr())
	dataA := st.NewItemData(span, "A")
	staticA := st.RegisterItem(ast.NewStaticItem(dataA, ast.Immutable, st.NewBody(dataA.ID(), litA)).AsItem())

	litB := st.RegisterExpr(ast.NewIntLitExpr(st.NewExprData(span), 2).AsExpr())
	dataB := st.NewItemData(span, "B")
	staticB := st.RegisterItem(ast.NewStaticItem(dataB, ast.Immutable, st.NewBody(dataB.ID(), litB)).AsItem())

	use := st.RegisterItem(ast.NewUseDeclItem(st.NewItemData(span, ""), nil, false).AsItem())

	mod := st.RegisterItem(ast.NewModItem(st.NewItemData(span, "m"),
		[]ast.ItemKind{staticA, staticB, use}).AsItem())
	st.AddTopLevel(mod)

	cx, err := st.NewContext()
	if err != nil {
		t.Fatalf("NewContext() = %v", err)
	}

	rec := &recordingPass{}
	adapter.NewRunner(rec).Run(cx, st.Crate())

	if rec.items != 4 {
		t.Errorf("CheckItem fired %d times, want 4 (mod + 3 children)", rec.items)
	}
	if rec.mods != 1 {
		t.Errorf("CheckMod fired %d times, want 1", rec.mods)
	}
	if len(rec.statics) != 2 {
		t.Fatalf("CheckStatic fired %d times, want exactly 2", len(rec.statics))
	}
	if rec.statics[0] != "A" || rec.statics[1] != "B" {
		t.Errorf("statics visited as %v, want document order [A B]", rec.statics)
	}
	if rec.useDecls != 1 {
		t.Errorf("CheckUseDecl fired %d times, want 1", rec.useDecls)
	}
	if rec.consts != 0 || rec.fns != 0 || rec.externCrate != 0 {
		t.Error("hooks for absent item kinds must not fire")
	}
	if rec.bodies != 2 {
		t.Errorf("CheckBody fired %d times, want 2 initializer bodies", rec.bodies)
	}
	if len(rec.exprTags) != 2 {
		t.Errorf("CheckExpr fired %d times, want 2 literals", len(rec.exprTags))
	}
}

func TestRunner_WalksExprsParentFirst(t *testing.T) {
	st := memdriver.New()
	st.AddFile("f.sg", "fn f() { 1 + 2 }")
	span := st.FileSpan("f.sg", 0, 1)

	left := st.RegisterExpr(ast.NewIntLitExpr(st.NewExprData(span), 1).AsExpr())
	right := st.RegisterExpr(ast.NewIntLitExpr(st.NewExprData(span), 2).AsExpr())
	sum := st.RegisterExpr(ast.NewBinaryOpExpr(st.NewExprData(span), ast.BinOpAdd, left, right).AsExpr())
	block := st.RegisterExpr(ast.NewBlockExpr(st.NewExprData(span), []ast.ExprKind{sum}).AsExpr())

	dataF := st.NewItemData(span, "f")
	fn := st.RegisterItem(ast.NewFnItem(dataF, nil, st.NewBody(dataF.ID(), block)).AsItem())
	st.AddTopLevel(fn)

	cx, err := st.NewContext()
	if err != nil {
		t.Fatalf("NewContext() = %v", err)
	}

	rec := &recordingPass{}
	adapter.NewRunner(rec).Run(cx, st.Crate())

	want := []ast.ExprTag{ast.ExprTagBlock, ast.ExprTagBinaryOp, ast.ExprTagIntLit, ast.ExprTagIntLit}
	if len(rec.exprTags) != len(want) {
		t.Fatalf("visited %d exprs, want %d", len(rec.exprTags), len(want))
	}
	for i := range want {
		if rec.exprTags[i] != want[i] {
			t.Errorf("visit[%d] = %v, want %v", i, rec.exprTags[i], want[i])
		}
	}
}
