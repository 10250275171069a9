package pass

import (
	"testing"

	"lintwire/ast"
	"lintwire/lint"
	"lintwire/session"
)

type minimalPass struct {
	Base
}

func (minimalPass) RegisteredLints() []*lint.Lint { return nil }

// A pass that only embeds Base must satisfy the full hook surface, and
// every default hook must do nothing, with any context, even nil.
func TestBase_DefaultsAreNoOps(t *testing.T) {
	var p LintPass = minimalPass{}
	var cx *session.Context

	p.CheckItem(cx, ast.ItemKind{})
	p.CheckMod(cx, nil)
	p.CheckExternCrate(cx, nil)
	p.CheckUseDecl(cx, nil)
	p.CheckStatic(cx, nil)
	p.CheckConst(cx, nil)
	p.CheckFn(cx, nil)
	p.CheckBody(cx, nil)
	p.CheckExpr(cx, ast.ExprKind{})
}
