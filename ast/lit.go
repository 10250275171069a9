package ast

// LitExprTag discriminates the literal sub-kinds.
type LitExprTag uint8

const (
	LitTagInvalid LitExprTag = iota
	LitTagInt
	LitTagFloat
	LitTagStr
	LitTagChar
	LitTagBool
	// LitTagUnaryOp is a unary negation wrapping a literal. Hosts
	// represent negative numbers as positive literals behind a unary
	// minus, so the wrapping expression counts as part of the literal.
	LitTagUnaryOp
)

// LitExprKind is the narrow sum over literal expressions. It is never
// stored; it is computed on demand from an ExprKind and re-validated on
// every conversion.
type LitExprKind struct {
	tag  LitExprTag
	node exprNode
}

// Tag returns the active variant tag.
func (k LitExprKind) Tag() LitExprTag {
	return k.tag
}

func (k LitExprKind) ID() ExprID {
	return k.node.commonData().ID()
}

func (k LitExprKind) Span() *Span {
	return k.node.commonData().Span()
}

func (k LitExprKind) Ty() TyKind {
	return k.node.commonData().Ty()
}

func (k LitExprKind) Precedence() Precedence {
	return k.node.Precedence()
}

func (k LitExprKind) AsInt() (*IntLitExpr, bool) {
	if k.tag != LitTagInt {
		return nil, false
	}
	return k.node.(*IntLitExpr), true
}

func (k LitExprKind) AsFloat() (*FloatLitExpr, bool) {
	if k.tag != LitTagFloat {
		return nil, false
	}
	return k.node.(*FloatLitExpr), true
}

func (k LitExprKind) AsStr() (*StrLitExpr, bool) {
	if k.tag != LitTagStr {
		return nil, false
	}
	return k.node.(*StrLitExpr), true
}

func (k LitExprKind) AsChar() (*CharLitExpr, bool) {
	if k.tag != LitTagChar {
		return nil, false
	}
	return k.node.(*CharLitExpr), true
}

func (k LitExprKind) AsBool() (*BoolLitExpr, bool) {
	if k.tag != LitTagBool {
		return nil, false
	}
	return k.node.(*BoolLitExpr), true
}

// AsNegated returns the wrapping negation if this is a negative literal.
func (k LitExprKind) AsNegated() (*UnaryOpExpr, bool) {
	if k.tag != LitTagUnaryOp {
		return nil, false
	}
	return k.node.(*UnaryOpExpr), true
}

// AsExpr widens the literal back to the general expression kind. This
// direction is total: every literal is an expression, and the returned
// kind wraps the identical node.
func (k LitExprKind) AsExpr() ExprKind {
	switch k.tag {
	case LitTagInt:
		return ExprKind{tag: ExprTagIntLit, node: k.node}
	case LitTagFloat:
		return ExprKind{tag: ExprTagFloatLit, node: k.node}
	case LitTagStr:
		return ExprKind{tag: ExprTagStrLit, node: k.node}
	case LitTagChar:
		return ExprKind{tag: ExprTagCharLit, node: k.node}
	case LitTagBool:
		return ExprKind{tag: ExprTagBoolLit, node: k.node}
	case LitTagUnaryOp:
		return ExprKind{tag: ExprTagUnaryOp, node: k.node}
	default:
		return ExprKind{}
	}
}

// LitExprFromExpr narrows a general expression to a literal. The
// direction is partial: plain literals always convert, and a unary
// negation converts only while its operand is itself classifiable as a
// literal. The operand condition is re-checked structurally on every
// call, since nothing stores the narrow classification.
func LitExprFromExpr(k ExprKind) (LitExprKind, bool) {
	switch k.tag {
	case ExprTagIntLit:
		return LitExprKind{tag: LitTagInt, node: k.node}, true
	case ExprTagFloatLit:
		return LitExprKind{tag: LitTagFloat, node: k.node}, true
	case ExprTagStrLit:
		return LitExprKind{tag: LitTagStr, node: k.node}, true
	case ExprTagCharLit:
		return LitExprKind{tag: LitTagChar, node: k.node}, true
	case ExprTagBoolLit:
		return LitExprKind{tag: LitTagBool, node: k.node}, true
	case ExprTagUnaryOp:
		unary := k.node.(*UnaryOpExpr)
		if unary.Op() != UnaryOpNeg {
			return LitExprKind{}, false
		}
		if _, ok := LitExprFromExpr(unary.Operand()); !ok {
			return LitExprKind{}, false
		}
		return LitExprKind{tag: LitTagUnaryOp, node: k.node}, true
	default:
		return LitExprKind{}, false
	}
}
