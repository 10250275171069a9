package lints

import (
	"lintwire/ast"
	"lintwire/lint"
	"lintwire/pass"
	"lintwire/session"
)

// EmptyBlock flags block expressions with no statements.
var EmptyBlock = &lint.Lint{
	Name:         "empty_block",
	Description:  "empty block expressions usually hide missing code",
	DefaultLevel: lint.LevelWarn,
}

type EmptyBlockPass struct {
	pass.Base
}

func (EmptyBlockPass) RegisteredLints() []*lint.Lint {
	return []*lint.Lint{EmptyBlock}
}

func (EmptyBlockPass) CheckExpr(cx *session.Context, expr ast.ExprKind) {
	block, ok := expr.AsBlock()
	if !ok || !block.IsEmpty() {
		return
	}
	cx.EmitLint(EmptyBlock, ast.ExprNode(expr.ID()),
		"this block is empty", *expr.Span(), nil)
}
