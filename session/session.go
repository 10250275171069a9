// Package session is the plugin-side façade over a driver's callback
// table. A Context is created once per analysis session, activated for
// the duration of the traversal, and every query a lint pass makes goes
// through it.
package session

import (
	"lintwire/ast"
	"lintwire/diag"
	"lintwire/driver"
	"lintwire/lint"
)

// Context exposes the host's capabilities to lint passes. All methods
// borrow from the host; returned nodes, spans and slices must not be
// retained past the current check.
type Context struct {
	cb *driver.Callbacks
}

// NewContext wraps a validated callback table. The table is checked
// here so a partially wired driver fails at session setup.
func NewContext(cb *driver.Callbacks) (*Context, error) {
	if err := cb.Validate(); err != nil {
		return nil, err
	}
	return &Context{cb: cb}, nil
}

// LintLevelAt returns the level the given lint resolves to at the given
// node, after attribute and configuration processing on the host side.
func (cx *Context) LintLevelAt(l *lint.Lint, node ast.EmissionNode) lint.Level {
	return cx.cb.CallLintLevelAt(l, node)
}

// EmitLint reports a lint finding at a node. decorate may be nil; when
// present it receives the builder to attach notes, help and suggestions.
//
// Two suppressions happen before any work:
//   - the lint keeps MacroReportNo and the span is macro-sourced;
//   - the resolved level at the node is Allow. decorate is not invoked
//     in either case.
func (cx *Context) EmitLint(l *lint.Lint, node ast.EmissionNode, msg string, span ast.Span, decorate func(*diag.Builder)) {
	if l.ReportInMacro == lint.MacroReportNo && span.IsFromMacro() {
		return
	}
	level := cx.cb.CallLintLevelAt(l, node)
	if level == lint.LevelAllow {
		return
	}
	b := diag.NewBuilder(l, node, msg, span)
	if decorate != nil {
		decorate(b)
	}
	b.SetLevel(level)
	d := b.Diagnostic()
	cx.cb.CallEmitDiag(&d)
}

// Item fetches an item by ID. Absence means the host does not know the
// item; the caller should skip, not fail.
func (cx *Context) Item(id ast.ItemID) (ast.ItemKind, bool) {
	return cx.cb.CallItem(id)
}

// Body fetches a body by ID.
func (cx *Context) Body(id ast.BodyID) *ast.Body {
	return cx.cb.CallBody(id)
}

// ResolveTyIDs resolves a fully qualified type path to the matching
// type definition IDs: zero, one or several, in no particular order.
// Duplicates from the host are collapsed. The result is only valid for
// the current check.
func (cx *Context) ResolveTyIDs(path string) []ast.TyDefID {
	raw := cx.cb.CallResolveTyIDs(path)
	if len(raw) <= 1 {
		return raw
	}
	seen := make(map[ast.TyDefID]struct{}, len(raw))
	out := raw[:0:0]
	for _, id := range raw {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Resolver surface for node accessors. These make *Context an
// ast.Resolver so Activate can install it.

func (cx *Context) SpanOf(id ast.SpanID) *ast.Span {
	return cx.cb.CallSpanOf(id)
}

func (cx *Context) SnippetOf(span *ast.Span) (string, bool) {
	return cx.cb.CallSpanSnippet(span)
}

func (cx *Context) SymbolName(sym ast.SymbolID) string {
	return cx.cb.CallSymbolStr(sym)
}

func (cx *Context) ExprType(id ast.ExprID) ast.TyKind {
	return cx.cb.CallExprTy(id)
}

func (cx *Context) MethodTarget(id ast.ExprID) ast.ItemID {
	return cx.cb.CallMethodTarget(id)
}

func (cx *Context) BodyOf(id ast.BodyID) *ast.Body {
	return cx.cb.CallBody(id)
}

var _ ast.Resolver = (*Context)(nil)

// Activate installs cx as the resolver behind node accessors and
// returns the matching deactivate func. Exactly one context may be
// active; activating over an active session panics. The caller must
// deactivate before starting the next session.
func Activate(cx *Context) (deactivate func()) {
	ast.InstallResolver(cx)
	return ast.UninstallResolver
}
