// Package pass defines the visitor protocol lint implementations plug
// into. A pass declares its lints once and receives hook calls while
// the adapter traverses a crate.
package pass

import (
	"lintwire/ast"
	"lintwire/lint"
	"lintwire/session"
)

// LintPass is the hook surface of one lint pass. RegisteredLints is the
// only mandatory method; embed Base to pick up no-op defaults for the
// rest. The hook set is closed: drivers dispatch against exactly this
// list, so adding a hook is a protocol change.
type LintPass interface {
	// RegisteredLints names every lint this pass can emit. The host
	// uses it for level resolution and configuration before any hook
	// runs.
	RegisteredLints() []*lint.Lint

	// CheckItem fires for every item, before the item-specific hook.
	CheckItem(cx *session.Context, item ast.ItemKind)
	CheckMod(cx *session.Context, item *ast.ModItem)
	CheckExternCrate(cx *session.Context, item *ast.ExternCrateItem)
	CheckUseDecl(cx *session.Context, item *ast.UseDeclItem)
	CheckStatic(cx *session.Context, item *ast.StaticItem)
	CheckConst(cx *session.Context, item *ast.ConstItem)
	CheckFn(cx *session.Context, item *ast.FnItem)

	// CheckBody fires once per body, before the body's expressions.
	CheckBody(cx *session.Context, body *ast.Body)
	// CheckExpr fires for every expression, parents before children.
	CheckExpr(cx *session.Context, expr ast.ExprKind)
}

// Base provides a no-op implementation of every optional hook. Passes
// embed it and override only what they need.
type Base struct{}

func (Base) CheckItem(*session.Context, ast.ItemKind)                {}
func (Base) CheckMod(*session.Context, *ast.ModItem)                 {}
func (Base) CheckExternCrate(*session.Context, *ast.ExternCrateItem) {}
func (Base) CheckUseDecl(*session.Context, *ast.UseDeclItem)         {}
func (Base) CheckStatic(*session.Context, *ast.StaticItem)           {}
func (Base) CheckConst(*session.Context, *ast.ConstItem)             {}
func (Base) CheckFn(*session.Context, *ast.FnItem)                   {}
func (Base) CheckBody(*session.Context, *ast.Body)                   {}
func (Base) CheckExpr(*session.Context, ast.ExprKind)                {}
