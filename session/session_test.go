package session_test

import (
	"testing"

	"lintwire/ast"
	"lintwire/diag"
	"lintwire/internal/memdriver"
	"lintwire/lint"
	"lintwire/session"
)

func newSession(t *testing.T) (*memdriver.Store, *session.Context) {
	t.Helper()
	st := memdriver.New()
	cx, err := st.NewContext()
	if err != nil {
		t.Fatalf("NewContext() = %v", err)
	}
	return st, cx
}

func TestEmitLint_Emits(t *testing.T) {
	st, cx := newSession(t)
	l := &lint.Lint{Name: "demo", DefaultLevel: lint.LevelWarn}
	span := ast.NewSpan(ast.FileSource("a.sg"), 0, 3)

	decorated := false
	cx.EmitLint(l, ast.ItemNode(1), "found it", span, func(b *diag.Builder) {
		decorated = true
		b.Help("remove it")
	})

	if !decorated {
		t.Error("decorate should run for an emitted diagnostic")
	}
	items := st.Diags().Items()
	if len(items) != 1 {
		t.Fatalf("emitted %d diagnostics, want 1", len(items))
	}
	d := items[0]
	if d.Level != lint.LevelWarn {
		t.Errorf("Level = %v, want the resolved level", d.Level)
	}
	if len(d.Notes) != 1 || d.Notes[0].Kind != diag.NoteKindHelp {
		t.Error("decoration should be preserved")
	}
}

func TestEmitLint_NilDecorate(t *testing.T) {
	st, cx := newSession(t)
	l := &lint.Lint{Name: "demo", DefaultLevel: lint.LevelDeny}
	span := ast.NewSpan(ast.FileSource("a.sg"), 0, 3)

	cx.EmitLint(l, ast.ItemNode(1), "found it", span, nil)
	if st.Diags().Len() != 1 {
		t.Error("nil decorate should still emit")
	}
}

func TestEmitLint_MacroSuppression(t *testing.T) {
	st, cx := newSession(t)
	macroSpan := ast.NewSpan(ast.MacroSource(7), 0, 3)

	quiet := &lint.Lint{Name: "quiet", DefaultLevel: lint.LevelDeny}
	cx.EmitLint(quiet, ast.ItemNode(1), "inside macro", macroSpan, func(*diag.Builder) {
		t.Error("decorate must not run for a macro-suppressed lint")
	})
	if st.Diags().Len() != 0 {
		t.Error("MacroReportNo lint must not fire on macro spans")
	}

	loud := &lint.Lint{Name: "loud", DefaultLevel: lint.LevelWarn, ReportInMacro: lint.MacroReportAll}
	cx.EmitLint(loud, ast.ItemNode(1), "inside macro", macroSpan, nil)
	if st.Diags().Len() != 1 {
		t.Error("MacroReportAll lint should fire on macro spans")
	}
}

func TestEmitLint_AllowSkipsDecorate(t *testing.T) {
	st, cx := newSession(t)
	l := &lint.Lint{Name: "demo", DefaultLevel: lint.LevelWarn}
	st.SetLintLevel("demo", lint.LevelAllow)
	span := ast.NewSpan(ast.FileSource("a.sg"), 0, 3)

	cx.EmitLint(l, ast.ItemNode(1), "found it", span, func(*diag.Builder) {
		t.Error("decorate must not run when the lint is allowed")
	})
	if st.Diags().Len() != 0 {
		t.Error("allowed lint must not emit")
	}
}

func TestResolveTyIDs_Dedup(t *testing.T) {
	st, cx := newSession(t)
	st.AddTyPath("core::option::Option", 3, 9, 3)

	got := cx.ResolveTyIDs("core::option::Option")
	if len(got) != 2 {
		t.Fatalf("len = %d, want duplicates collapsed to 2", len(got))
	}
	seen := map[ast.TyDefID]bool{}
	for _, id := range got {
		if seen[id] {
			t.Fatalf("duplicate id %d survived", id)
		}
		seen[id] = true
	}
	if !seen[3] || !seen[9] {
		t.Error("both distinct ids should survive")
	}

	if got := cx.ResolveTyIDs("no::such::path"); len(got) != 0 {
		t.Error("unknown path should resolve to zero ids")
	}
}

func TestActivate_InstallsResolver(t *testing.T) {
	st, cx := newSession(t)
	st.AddFile("a.sg", "static LIMIT = 9;")
	spanID := st.FileSpan("a.sg", 7, 12)

	deactivate := session.Activate(cx)
	defer deactivate()

	span := cx.SpanOf(spanID)
	if snip, ok := span.Snippet(); !ok || snip != "LIMIT" {
		t.Errorf("Snippet() = %q, %v", snip, ok)
	}
}
