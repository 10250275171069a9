package diag

import (
	"testing"

	"lintwire/ast"
	"lintwire/lint"
)

var testLint = &lint.Lint{
	Name:         "test_lint",
	DefaultLevel: lint.LevelWarn,
}

func TestBuilder_Accumulates(t *testing.T) {
	span := ast.NewSpan(ast.FileSource("a.sg"), 0, 4)
	b := NewBuilder(testLint, ast.ItemNode(1), "something is off", span)
	b.Note("first seen here").
		Help("consider removing it").
		Suggest("replace with", span, "other()", MaybeIncorrect)

	d := b.Diagnostic()
	if d.Lint != testLint {
		t.Error("diagnostic should reference the originating lint")
	}
	if d.Msg != "something is off" {
		t.Errorf("Msg = %q", d.Msg)
	}
	if len(d.Notes) != 2 {
		t.Fatalf("len(Notes) = %d, want 2", len(d.Notes))
	}
	if d.Notes[0].Kind != NoteKindNote || d.Notes[1].Kind != NoteKindHelp {
		t.Error("note kinds should be preserved in order")
	}
	if d.Notes[0].HasSpan {
		t.Error("plain note should not carry a span")
	}
	if len(d.Suggestions) != 1 || d.Suggestions[0].Replacement != "other()" {
		t.Error("suggestion should be preserved")
	}
}

type snippetResolver struct {
	text map[*ast.Span]string
}

func (r *snippetResolver) SpanOf(ast.SpanID) *ast.Span { return nil }

func (r *snippetResolver) SnippetOf(span *ast.Span) (string, bool) {
	s, ok := r.text[span]
	return s, ok
}

func (r *snippetResolver) SymbolName(ast.SymbolID) string     { return "" }
func (r *snippetResolver) ExprType(ast.ExprID) ast.TyKind     { return ast.TyKind{} }
func (r *snippetResolver) MethodTarget(ast.ExprID) ast.ItemID { return ast.NoItemID }
func (r *snippetResolver) BodyOf(ast.BodyID) *ast.Body        { return nil }

func TestSnippetWithApplicability(t *testing.T) {
	fileSpan := ast.NewSpan(ast.FileSource("a.sg"), 0, 5)
	macroSpan := ast.NewSpan(ast.MacroSource(1), 0, 5)
	missing := ast.NewSpan(ast.FileSource("a.sg"), 9, 12)

	r := &snippetResolver{text: map[*ast.Span]string{
		&fileSpan:  "value",
		&macroSpan: "hidden",
	}}
	ast.InstallResolver(r)
	defer ast.UninstallResolver()

	app := MachineApplicable
	if got := SnippetWithApplicability(&fileSpan, "..", &app); got != "value" {
		t.Errorf("snippet = %q, want %q", got, "value")
	}
	if app != MachineApplicable {
		t.Error("file-sourced snippet must not downgrade applicability")
	}

	app = MachineApplicable
	SnippetWithApplicability(&macroSpan, "..", &app)
	if app != MaybeIncorrect {
		t.Errorf("macro span should downgrade to MaybeIncorrect, got %d", app)
	}

	app = MachineApplicable
	if got := SnippetWithApplicability(&missing, "..", &app); got != ".." {
		t.Errorf("missing snippet should fall back, got %q", got)
	}
	if app != HasPlaceholders {
		t.Errorf("default use should downgrade to HasPlaceholders, got %d", app)
	}

	app = Unspecified
	SnippetWithApplicability(&macroSpan, "..", &app)
	if app != Unspecified {
		t.Error("Unspecified must never change")
	}
}
