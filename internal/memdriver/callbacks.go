package memdriver

import (
	"unsafe"

	"lintwire/abi"
	"lintwire/ast"
	"lintwire/diag"
	"lintwire/driver"
	"lintwire/lint"
	"lintwire/session"
)

// Handle returns the store as an opaque driver handle.
func (st *Store) Handle() driver.Handle {
	return driver.Handle(unsafe.Pointer(st))
}

func fromHandle(h driver.Handle) *Store {
	return (*Store)(unsafe.Pointer(h))
}

// Callbacks builds the full callback table over this store.
func (st *Store) Callbacks() *driver.Callbacks {
	return &driver.Callbacks{
		HostContext:  st.Handle(),
		LintLevelAt:  lintLevelAt,
		EmitDiag:     emitDiag,
		Item:         item,
		Body:         body,
		ResolveTyIDs: resolveTyIDs,
		ExprTy:       exprTy,
		SpanOf:       spanOf,
		SpanSnippet:  spanSnippet,
		SymbolStr:    symbolStr,
		MethodTarget: methodTarget,
	}
}

// NewContext wraps the store's callbacks in a session context.
func (st *Store) NewContext() (*session.Context, error) {
	return session.NewContext(st.Callbacks())
}

func lintLevelAt(h driver.Handle, l *lint.Lint, node ast.EmissionNode) lint.Level {
	return fromHandle(h).levelAt(l, node)
}

func emitDiag(h driver.Handle, d *diag.Diagnostic) {
	fromHandle(h).diags.Add(*d)
}

func item(h driver.Handle, id ast.ItemID) abi.Option[ast.ItemKind] {
	it, ok := fromHandle(h).items[id]
	if !ok {
		return abi.None[ast.ItemKind]()
	}
	return abi.Some(it)
}

func body(h driver.Handle, id ast.BodyID) *ast.Body {
	return fromHandle(h).bodies[id]
}

func resolveTyIDs(h driver.Handle, path abi.Str) abi.Slice[ast.TyDefID] {
	return abi.MakeSlice(fromHandle(h).tyPaths[path.String()])
}

func exprTy(h driver.Handle, id ast.ExprID) ast.TyKind {
	return fromHandle(h).exprTys[id]
}

func spanOf(h driver.Handle, id ast.SpanID) *ast.Span {
	return fromHandle(h).spans.Get(uint32(id))
}

func spanSnippet(h driver.Handle, span *ast.Span) abi.Option[abi.Str] {
	s, ok := fromHandle(h).snippet(span)
	if !ok {
		return abi.None[abi.Str]()
	}
	return abi.Some(abi.MakeStr(s))
}

func symbolStr(h driver.Handle, sym ast.SymbolID) abi.Str {
	s, _ := fromHandle(h).symbols.Lookup(sym)
	return abi.MakeStr(s)
}

func methodTarget(h driver.Handle, id ast.ExprID) ast.ItemID {
	return fromHandle(h).methodTargets[id]
}
