package lints

import (
	"lintwire/ast"
	"lintwire/diag"
	"lintwire/lint"
	"lintwire/pass"
	"lintwire/session"
)

// NegLiteral flags negated zero literals like -0 and -0.0, which parse
// fine but almost never mean what they say.
var NegLiteral = &lint.Lint{
	Name:         "neg_literal",
	Description:  "negated zero literals are misleading",
	DefaultLevel: lint.LevelWarn,
}

type NegLiteralPass struct {
	pass.Base
}

func (NegLiteralPass) RegisteredLints() []*lint.Lint {
	return []*lint.Lint{NegLiteral}
}

func (NegLiteralPass) CheckExpr(cx *session.Context, expr ast.ExprKind) {
	lit, ok := ast.LitExprFromExpr(expr)
	if !ok {
		return
	}
	neg, ok := lit.AsNegated()
	if !ok {
		return
	}
	zero := false
	if n, ok := neg.Operand().AsIntLit(); ok {
		zero = n.Value() == 0
	} else if f, ok := neg.Operand().AsFloatLit(); ok {
		zero = f.Value() == 0
	}
	if !zero {
		return
	}
	cx.EmitLint(NegLiteral, ast.ExprNode(expr.ID()),
		"negation of a zero literal", *expr.Span(),
		func(b *diag.Builder) {
			b.Help("drop the minus sign")
		})
}
