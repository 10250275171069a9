// Package driver specifies the contract between the plugin-facing API
// and a host compiler: a fixed table of plain function values plus the
// version handshake performed before any of them is called.
package driver

import (
	"fmt"
	"unsafe"

	"lintwire/abi"
	"lintwire/ast"
	"lintwire/diag"
	"lintwire/lint"
)

// Handle is the opaque per-session host context. The plugin side never
// interprets it; it is passed back verbatim as the first argument of
// every callback, and each driver is guaranteed to receive the handle
// it registered.
type Handle unsafe.Pointer

// Callbacks is the fixed set of capabilities a host must provide. The
// shape of this table is the compatibility boundary between plugin and
// host: any change to an argument or result type is a breaking protocol
// change and must be paired with an APIVersion bump.
//
// All entries are plain, non-reentrant function values taking the
// host's Handle first. Results are either opaque IDs, interchange
// values, or borrows that stay valid for the current session only.
type Callbacks struct {
	// HostContext is handed to every entry as its first argument.
	HostContext Handle

	// Lint emission and information.
	LintLevelAt func(Handle, *lint.Lint, ast.EmissionNode) lint.Level
	EmitDiag    func(Handle, *diag.Diagnostic)

	// Public utility.
	Item         func(Handle, ast.ItemID) abi.Option[ast.ItemKind]
	Body         func(Handle, ast.BodyID) *ast.Body
	ResolveTyIDs func(Handle, abi.Str) abi.Slice[ast.TyDefID]

	// Internal utility, reached through node accessors.
	ExprTy       func(Handle, ast.ExprID) ast.TyKind
	SpanOf       func(Handle, ast.SpanID) *ast.Span
	SpanSnippet  func(Handle, *ast.Span) abi.Option[abi.Str]
	SymbolStr    func(Handle, ast.SymbolID) abi.Str
	MethodTarget func(Handle, ast.ExprID) ast.ItemID
}

// Validate checks that every entry is populated. Loading a plugin
// against a partially filled table is a driver bug, caught at session
// setup rather than mid-traversal.
func (c *Callbacks) Validate() error {
	missing := ""
	switch {
	case c.LintLevelAt == nil:
		missing = "LintLevelAt"
	case c.EmitDiag == nil:
		missing = "EmitDiag"
	case c.Item == nil:
		missing = "Item"
	case c.Body == nil:
		missing = "Body"
	case c.ResolveTyIDs == nil:
		missing = "ResolveTyIDs"
	case c.ExprTy == nil:
		missing = "ExprTy"
	case c.SpanOf == nil:
		missing = "SpanOf"
	case c.SpanSnippet == nil:
		missing = "SpanSnippet"
	case c.SymbolStr == nil:
		missing = "SymbolStr"
	case c.MethodTarget == nil:
		missing = "MethodTarget"
	}
	if missing != "" {
		return fmt.Errorf("driver: callback table is missing %s", missing)
	}
	return nil
}

// Call wrappers. These keep the interchange conversions in one place so
// the session layer works with ordinary Go values.

func (c *Callbacks) CallLintLevelAt(l *lint.Lint, node ast.EmissionNode) lint.Level {
	return c.LintLevelAt(c.HostContext, l, node)
}

func (c *Callbacks) CallEmitDiag(d *diag.Diagnostic) {
	c.EmitDiag(c.HostContext, d)
}

func (c *Callbacks) CallItem(id ast.ItemID) (ast.ItemKind, bool) {
	return c.Item(c.HostContext, id).Get()
}

func (c *Callbacks) CallBody(id ast.BodyID) *ast.Body {
	return c.Body(c.HostContext, id)
}

func (c *Callbacks) CallResolveTyIDs(path string) []ast.TyDefID {
	return c.ResolveTyIDs(c.HostContext, abi.MakeStr(path)).Get()
}

func (c *Callbacks) CallExprTy(id ast.ExprID) ast.TyKind {
	return c.ExprTy(c.HostContext, id)
}

func (c *Callbacks) CallSpanOf(id ast.SpanID) *ast.Span {
	return c.SpanOf(c.HostContext, id)
}

func (c *Callbacks) CallSpanSnippet(span *ast.Span) (string, bool) {
	s, ok := c.SpanSnippet(c.HostContext, span).Get()
	if !ok {
		return "", false
	}
	return s.String(), true
}

func (c *Callbacks) CallSymbolStr(sym ast.SymbolID) string {
	return c.SymbolStr(c.HostContext, sym).String()
}

func (c *Callbacks) CallMethodTarget(id ast.ExprID) ast.ItemID {
	return c.MethodTarget(c.HostContext, id)
}
