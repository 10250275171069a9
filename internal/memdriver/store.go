// Package memdriver is an in-memory host. It stores a full program
// behind the callback table, which makes it the reference driver for
// tests, the snapshot codec and the CLI.
package memdriver

import (
	"lintwire/ast"
	"lintwire/internal/source"
	"lintwire/lint"
)

// defaultMaxDiags caps collected diagnostics per session unless the
// host is reconfigured.
const defaultMaxDiags = 256

type nodeKey struct {
	lint string
	node ast.EmissionNode
}

type sugarKey struct {
	file  string
	macro ast.SpanSrcID
}

// Store holds one program: files, symbols, spans, nodes and the lint
// level tables. It implements every driver callback.
type Store struct {
	files   *source.FileSet
	symbols *source.Interner

	spans      *Arena[ast.Span]
	fileSrcs   map[string]*ast.SpanSource
	macroSrcs  map[ast.SpanSrcID]*ast.SpanSource
	sugarSrcs  map[sugarKey]*ast.SpanSource
	macroTexts map[ast.SpanSrcID]string

	exprs         map[ast.ExprID]ast.ExprKind
	items         map[ast.ItemID]ast.ItemKind
	bodies        map[ast.BodyID]*ast.Body
	exprTys       map[ast.ExprID]ast.TyKind
	methodTargets map[ast.ExprID]ast.ItemID
	tyPaths       map[string][]ast.TyDefID

	lintLevels map[string]lint.Level
	nodeLevels map[nodeKey]lint.Level

	topItems []ast.ItemKind

	diags *Bag

	nextExpr uint32
	nextItem uint32
	nextBody uint32
}

// New creates an empty store.
func New() *Store {
	return &Store{
		files:         source.NewFileSet(),
		symbols:       source.NewInterner(),
		spans:         NewArena[ast.Span](64),
		fileSrcs:      make(map[string]*ast.SpanSource),
		macroSrcs:     make(map[ast.SpanSrcID]*ast.SpanSource),
		sugarSrcs:     make(map[sugarKey]*ast.SpanSource),
		macroTexts:    make(map[ast.SpanSrcID]string),
		exprs:         make(map[ast.ExprID]ast.ExprKind),
		items:         make(map[ast.ItemID]ast.ItemKind),
		bodies:        make(map[ast.BodyID]*ast.Body),
		exprTys:       make(map[ast.ExprID]ast.TyKind),
		methodTargets: make(map[ast.ExprID]ast.ItemID),
		tyPaths:       make(map[string][]ast.TyDefID),
		lintLevels:    make(map[string]lint.Level),
		nodeLevels:    make(map[nodeKey]lint.Level),
		diags:         NewBag(defaultMaxDiags),
	}
}

// Files exposes the file storage, mostly for rendering.
func (st *Store) Files() *source.FileSet {
	return st.files
}

// AddFile stores file content so file-backed spans can be resolved to
// text.
func (st *Store) AddFile(path, content string) {
	st.files.AddVirtual(path, []byte(content))
}

// LoadFile reads a file from disk into the store.
func (st *Store) LoadFile(path string) error {
	_, err := st.files.Load(path)
	return err
}

// Intern stores a name in the symbol table.
func (st *Store) Intern(s string) ast.SymbolID {
	return st.symbols.Intern(s)
}

// FileSpan allocates a span over [start, end) of the given file. Spans
// of the same file share one provenance value.
func (st *Store) FileSpan(path string, start, end uint32) ast.SpanID {
	src, ok := st.fileSrcs[path]
	if !ok {
		src = ast.FileSource(path)
		st.fileSrcs[path] = src
	}
	return ast.SpanID(st.spans.Allocate(ast.NewSpan(src, start, end)))
}

// MacroSpan allocates a span inside a macro expansion.
func (st *Store) MacroSpan(id ast.SpanSrcID, start, end uint32) ast.SpanID {
	src, ok := st.macroSrcs[id]
	if !ok {
		src = ast.MacroSource(id)
		st.macroSrcs[id] = src
	}
	return ast.SpanID(st.spans.Allocate(ast.NewSpan(src, start, end)))
}

// SugarSpan allocates a span over desugared, file-backed text.
func (st *Store) SugarSpan(path string, id ast.SpanSrcID, start, end uint32) ast.SpanID {
	key := sugarKey{file: path, macro: id}
	src, ok := st.sugarSrcs[key]
	if !ok {
		src = ast.SugarSource(path, id)
		st.sugarSrcs[key] = src
	}
	return ast.SpanID(st.spans.Allocate(ast.NewSpan(src, start, end)))
}

// SetMacroText registers the expanded text of a macro so snippets of
// its spans resolve.
func (st *Store) SetMacroText(id ast.SpanSrcID, text string) {
	st.macroTexts[id] = text
}

// NewExprData allocates a fresh expression ID bound to a span.
func (st *Store) NewExprData(span ast.SpanID) ast.CommonExprData {
	st.nextExpr++
	return ast.NewCommonExprData(ast.ExprID(st.nextExpr), span)
}

// RegisterExpr records an expression under its ID and returns it, so
// fixture construction chains. Accepts host-assigned IDs from
// snapshots; the internal counter keeps clear of them.
func (st *Store) RegisterExpr(e ast.ExprKind) ast.ExprKind {
	st.exprs[e.ID()] = e
	if uint32(e.ID()) > st.nextExpr {
		st.nextExpr = uint32(e.ID())
	}
	return e
}

// NewItemData allocates a fresh item ID with the given name. The name
// identifier reuses the item span.
func (st *Store) NewItemData(span ast.SpanID, name string) ast.CommonItemData {
	st.nextItem++
	ident := ast.NewIdent(st.symbols.Intern(name), span)
	return ast.NewCommonItemData(ast.ItemID(st.nextItem), span, ident)
}

// RegisterItem records an item under its ID and returns it.
func (st *Store) RegisterItem(item ast.ItemKind) ast.ItemKind {
	st.items[item.ID()] = item
	if uint32(item.ID()) > st.nextItem {
		st.nextItem = uint32(item.ID())
	}
	return item
}

// RegisterBody records a body under its own ID.
func (st *Store) RegisterBody(b *ast.Body) {
	st.bodies[b.ID()] = b
	if uint32(b.ID()) > st.nextBody {
		st.nextBody = uint32(b.ID())
	}
}

// AddTopLevel appends an item to the crate root, in document order.
func (st *Store) AddTopLevel(item ast.ItemKind) {
	st.topItems = append(st.topItems, item)
}

// Crate returns the crate root over the registered top-level items.
func (st *Store) Crate() *ast.Crate {
	return ast.NewCrate(st.topItems)
}

// Expr returns a registered expression by ID.
func (st *Store) Expr(id ast.ExprID) (ast.ExprKind, bool) {
	e, ok := st.exprs[id]
	return e, ok
}

// NewBody allocates a body owned by an item, rooted at expr.
func (st *Store) NewBody(owner ast.ItemID, expr ast.ExprKind) ast.BodyID {
	st.nextBody++
	id := ast.BodyID(st.nextBody)
	st.bodies[id] = ast.NewBody(id, owner, expr)
	return id
}

// SetExprTy records the semantic type of an expression.
func (st *Store) SetExprTy(id ast.ExprID, ty ast.TyKind) {
	st.exprTys[id] = ty
}

// SetMethodTarget records the resolved callee of a method call.
func (st *Store) SetMethodTarget(id ast.ExprID, target ast.ItemID) {
	st.methodTargets[id] = target
}

// AddTyPath registers type definition IDs under a fully qualified
// path. Called once per definition; several calls accumulate.
func (st *Store) AddTyPath(path string, ids ...ast.TyDefID) {
	st.tyPaths[path] = append(st.tyPaths[path], ids...)
}

// SetLintLevel configures the level of a lint by name, overriding its
// declared default everywhere.
func (st *Store) SetLintLevel(name string, level lint.Level) {
	st.lintLevels[name] = level
}

// SetNodeLevel overrides a lint's level at one node, the way a scoped
// attribute would.
func (st *Store) SetNodeLevel(l *lint.Lint, node ast.EmissionNode, level lint.Level) {
	st.nodeLevels[nodeKey{lint: l.Name, node: node}] = level
}

// SetMaxDiagnostics resets the diagnostics cap. Drops anything already
// collected.
func (st *Store) SetMaxDiagnostics(max int) {
	st.diags = NewBag(max)
}

// Diags returns the diagnostics collected so far.
func (st *Store) Diags() *Bag {
	return st.diags
}

// Export surface for the snapshot codec.

// Symbols returns every interned string in ID order.
func (st *Store) Symbols() []string {
	return st.symbols.Snapshot()
}

// ImportSymbols replays an interner snapshot in order, restoring the
// original IDs. Only valid on a fresh store.
func (st *Store) ImportSymbols(syms []string) {
	for _, s := range syms {
		st.symbols.Intern(s)
	}
}

// Spans returns all allocated spans; index i holds SpanID i+1.
func (st *Store) Spans() []ast.Span {
	return st.spans.Slice()
}

// Exprs returns the expression registry. Read-only.
func (st *Store) Exprs() map[ast.ExprID]ast.ExprKind {
	return st.exprs
}

// Items returns the item registry. Read-only.
func (st *Store) Items() map[ast.ItemID]ast.ItemKind {
	return st.items
}

// Bodies returns the body registry. Read-only.
func (st *Store) Bodies() map[ast.BodyID]*ast.Body {
	return st.bodies
}

// TopItems returns the crate root items in document order.
func (st *Store) TopItems() []ast.ItemKind {
	return st.topItems
}

// TyPaths returns the type path table. Read-only.
func (st *Store) TyPaths() map[string][]ast.TyDefID {
	return st.tyPaths
}

// ExprTys returns the expression type table. Read-only.
func (st *Store) ExprTys() map[ast.ExprID]ast.TyKind {
	return st.exprTys
}

// MethodTargets returns the method resolution table. Read-only.
func (st *Store) MethodTargets() map[ast.ExprID]ast.ItemID {
	return st.methodTargets
}

// MacroTexts returns the registered macro expansion texts. Read-only.
func (st *Store) MacroTexts() map[ast.SpanSrcID]string {
	return st.macroTexts
}

// levelAt resolves the effective level: per-node override first, then
// the by-name configuration, then the lint's declared default.
func (st *Store) levelAt(l *lint.Lint, node ast.EmissionNode) lint.Level {
	if lv, ok := st.nodeLevels[nodeKey{lint: l.Name, node: node}]; ok {
		return lv
	}
	if lv, ok := st.lintLevels[l.Name]; ok {
		return lv
	}
	return l.DefaultLevel
}

// snippet resolves a span to text. File and sugar spans read from the
// file storage; macro spans read from registered expansion text.
func (st *Store) snippet(span *ast.Span) (string, bool) {
	if span.IsFromFile() {
		return st.files.Snippet(span.Source().File(), span.Start(), span.End())
	}
	text, ok := st.macroTexts[span.Source().MacroID()]
	if !ok || uint32(len(text)) < span.End() {
		return "", false
	}
	return text[span.Start():span.End()], true
}
