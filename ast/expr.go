package ast

// ExprTag discriminates the expression kinds. The set is closed: every
// variant listed here has exactly one concrete node type, and the tag
// always agrees with the node because ExprKind values are only created
// by the node's own AsExpr method.
type ExprTag uint8

const (
	ExprTagInvalid ExprTag = iota
	ExprTagIntLit
	ExprTagFloatLit
	ExprTagStrLit
	ExprTagCharLit
	ExprTagBoolLit
	ExprTagBlock
	ExprTagClosure
	ExprTagUnaryOp
	ExprTagRef
	ExprTagBinaryOp
	ExprTagAssign
	ExprTagCast
	ExprTagPath
	ExprTagCall
	ExprTagMethod
	ExprTagIndex
	ExprTagField
	ExprTagArray
	ExprTagTuple
	ExprTagCtor
	ExprTagRange
	ExprTagIf
	ExprTagMatch
	ExprTagReturn
	ExprTagBreak
	ExprTagContinue
	ExprTagAwait
	ExprTagUnstable
)

// CommonExprData is the header shared by every concrete expression
// node: the node's own ID and the handle of its span. Nodes embed it,
// which gives them the ID, Span and Ty accessors for free.
type CommonExprData struct {
	id   ExprID
	span SpanID
}

// NewCommonExprData creates an expression header. Host-side constructor.
func NewCommonExprData(id ExprID, span SpanID) CommonExprData {
	return CommonExprData{id: id, span: span}
}

// ID returns the expression's opaque ID.
func (d *CommonExprData) ID() ExprID {
	return d.id
}

// SpanID returns the raw span handle. Mostly useful to hosts.
func (d *CommonExprData) SpanID() SpanID {
	return d.span
}

// Span resolves the expression's span through the current context.
func (d *CommonExprData) Span() *Span {
	return currentResolver().SpanOf(d.span)
}

// Ty returns the semantic type of the expression, resolved through the
// current context. The zero TyKind means the host has no answer.
func (d *CommonExprData) Ty() TyKind {
	return currentResolver().ExprType(d.id)
}

func (d *CommonExprData) commonData() *CommonExprData {
	return d
}

// exprNode is implemented by every concrete expression node via the
// embedded CommonExprData plus its own Precedence method. It is
// unexported so the variant set stays closed.
type exprNode interface {
	commonData() *CommonExprData
	Precedence() Precedence
}

// ExprKind is the closed sum over concrete expression nodes. Exactly
// one variant is active; the tag and the node always agree.
type ExprKind struct {
	tag  ExprTag
	node exprNode
}

// Tag returns the active variant tag.
func (k ExprKind) Tag() ExprTag {
	return k.tag
}

// IsValid reports whether the kind holds a node. The zero ExprKind is
// used for "no expression" slots such as an absent else branch.
func (k ExprKind) IsValid() bool {
	return k.tag != ExprTagInvalid
}

// ID returns the ID of the wrapped expression.
func (k ExprKind) ID() ExprID {
	return k.node.commonData().ID()
}

// Span returns the span of the wrapped expression.
func (k ExprKind) Span() *Span {
	return k.node.commonData().Span()
}

// SpanID returns the raw span handle of the wrapped expression.
func (k ExprKind) SpanID() SpanID {
	return k.node.commonData().SpanID()
}

// Ty returns the semantic type of the wrapped expression.
func (k ExprKind) Ty() TyKind {
	return k.node.commonData().Ty()
}

// Precedence returns the precedence of the wrapped expression.
func (k ExprKind) Precedence() Precedence {
	return k.node.Precedence()
}

// Validating accessors, one per variant. Each re-checks the tag so a
// stale or mismatched kind can never leak the wrong node type.

func (k ExprKind) AsIntLit() (*IntLitExpr, bool) {
	if k.tag != ExprTagIntLit {
		return nil, false
	}
	return k.node.(*IntLitExpr), true
}

func (k ExprKind) AsFloatLit() (*FloatLitExpr, bool) {
	if k.tag != ExprTagFloatLit {
		return nil, false
	}
	return k.node.(*FloatLitExpr), true
}

func (k ExprKind) AsStrLit() (*StrLitExpr, bool) {
	if k.tag != ExprTagStrLit {
		return nil, false
	}
	return k.node.(*StrLitExpr), true
}

func (k ExprKind) AsCharLit() (*CharLitExpr, bool) {
	if k.tag != ExprTagCharLit {
		return nil, false
	}
	return k.node.(*CharLitExpr), true
}

func (k ExprKind) AsBoolLit() (*BoolLitExpr, bool) {
	if k.tag != ExprTagBoolLit {
		return nil, false
	}
	return k.node.(*BoolLitExpr), true
}

func (k ExprKind) AsBlock() (*BlockExpr, bool) {
	if k.tag != ExprTagBlock {
		return nil, false
	}
	return k.node.(*BlockExpr), true
}

func (k ExprKind) AsClosure() (*ClosureExpr, bool) {
	if k.tag != ExprTagClosure {
		return nil, false
	}
	return k.node.(*ClosureExpr), true
}

func (k ExprKind) AsUnaryOp() (*UnaryOpExpr, bool) {
	if k.tag != ExprTagUnaryOp {
		return nil, false
	}
	return k.node.(*UnaryOpExpr), true
}

func (k ExprKind) AsRef() (*RefExpr, bool) {
	if k.tag != ExprTagRef {
		return nil, false
	}
	return k.node.(*RefExpr), true
}

func (k ExprKind) AsBinaryOp() (*BinaryOpExpr, bool) {
	if k.tag != ExprTagBinaryOp {
		return nil, false
	}
	return k.node.(*BinaryOpExpr), true
}

func (k ExprKind) AsAssign() (*AssignExpr, bool) {
	if k.tag != ExprTagAssign {
		return nil, false
	}
	return k.node.(*AssignExpr), true
}

func (k ExprKind) AsCast() (*CastExpr, bool) {
	if k.tag != ExprTagCast {
		return nil, false
	}
	return k.node.(*CastExpr), true
}

func (k ExprKind) AsPath() (*PathExpr, bool) {
	if k.tag != ExprTagPath {
		return nil, false
	}
	return k.node.(*PathExpr), true
}

func (k ExprKind) AsCall() (*CallExpr, bool) {
	if k.tag != ExprTagCall {
		return nil, false
	}
	return k.node.(*CallExpr), true
}

func (k ExprKind) AsMethod() (*MethodExpr, bool) {
	if k.tag != ExprTagMethod {
		return nil, false
	}
	return k.node.(*MethodExpr), true
}

func (k ExprKind) AsIndex() (*IndexExpr, bool) {
	if k.tag != ExprTagIndex {
		return nil, false
	}
	return k.node.(*IndexExpr), true
}

func (k ExprKind) AsField() (*FieldExpr, bool) {
	if k.tag != ExprTagField {
		return nil, false
	}
	return k.node.(*FieldExpr), true
}

func (k ExprKind) AsArray() (*ArrayExpr, bool) {
	if k.tag != ExprTagArray {
		return nil, false
	}
	return k.node.(*ArrayExpr), true
}

func (k ExprKind) AsTuple() (*TupleExpr, bool) {
	if k.tag != ExprTagTuple {
		return nil, false
	}
	return k.node.(*TupleExpr), true
}

func (k ExprKind) AsCtor() (*CtorExpr, bool) {
	if k.tag != ExprTagCtor {
		return nil, false
	}
	return k.node.(*CtorExpr), true
}

func (k ExprKind) AsRange() (*RangeExpr, bool) {
	if k.tag != ExprTagRange {
		return nil, false
	}
	return k.node.(*RangeExpr), true
}

func (k ExprKind) AsIf() (*IfExpr, bool) {
	if k.tag != ExprTagIf {
		return nil, false
	}
	return k.node.(*IfExpr), true
}

func (k ExprKind) AsMatch() (*MatchExpr, bool) {
	if k.tag != ExprTagMatch {
		return nil, false
	}
	return k.node.(*MatchExpr), true
}

func (k ExprKind) AsReturn() (*ReturnExpr, bool) {
	if k.tag != ExprTagReturn {
		return nil, false
	}
	return k.node.(*ReturnExpr), true
}

func (k ExprKind) AsBreak() (*BreakExpr, bool) {
	if k.tag != ExprTagBreak {
		return nil, false
	}
	return k.node.(*BreakExpr), true
}

func (k ExprKind) AsContinue() (*ContinueExpr, bool) {
	if k.tag != ExprTagContinue {
		return nil, false
	}
	return k.node.(*ContinueExpr), true
}

func (k ExprKind) AsAwait() (*AwaitExpr, bool) {
	if k.tag != ExprTagAwait {
		return nil, false
	}
	return k.node.(*AwaitExpr), true
}

func (k ExprKind) AsUnstable() (*UnstableExpr, bool) {
	if k.tag != ExprTagUnstable {
		return nil, false
	}
	return k.node.(*UnstableExpr), true
}
