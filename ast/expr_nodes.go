package ast

// Concrete expression nodes. Each embeds CommonExprData, keeps its
// kind-specific fields unexported behind accessors, and knows how to
// wrap itself in the matching ExprKind variant. Constructors are meant
// for hosts; plugins only ever receive the nodes.

// UnaryOpKind is the operator of a UnaryOpExpr.
type UnaryOpKind uint8

const (
	UnaryOpNeg UnaryOpKind = iota
	UnaryOpNot
	UnaryOpDeref
)

// BinaryOpKind is the operator of a BinaryOpExpr.
type BinaryOpKind uint8

const (
	BinOpAdd BinaryOpKind = iota
	BinOpSub
	BinOpMul
	BinOpDiv
	BinOpRem
	BinOpAnd
	BinOpOr
	BinOpBitAnd
	BinOpBitOr
	BinOpBitXor
	BinOpShl
	BinOpShr
	BinOpEq
	BinOpNe
	BinOpLt
	BinOpLe
	BinOpGt
	BinOpGe
)

// IntLitExpr is an integer literal. The value is stored unsigned;
// negative numbers appear as a unary negation wrapping the literal.
type IntLitExpr struct {
	CommonExprData
	value uint64
}

func NewIntLitExpr(data CommonExprData, value uint64) *IntLitExpr {
	return &IntLitExpr{CommonExprData: data, value: value}
}

func (e *IntLitExpr) Value() uint64          { return e.value }
func (e *IntLitExpr) Precedence() Precedence { return PrecLit }
func (e *IntLitExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagIntLit, node: e} }

// FloatLitExpr is a floating point literal.
type FloatLitExpr struct {
	CommonExprData
	value float64
}

func NewFloatLitExpr(data CommonExprData, value float64) *FloatLitExpr {
	return &FloatLitExpr{CommonExprData: data, value: value}
}

func (e *FloatLitExpr) Value() float64         { return e.value }
func (e *FloatLitExpr) Precedence() Precedence { return PrecLit }
func (e *FloatLitExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagFloatLit, node: e} }

// StrLitExpr is a string literal. The text lives in the host symbol
// table and is resolved lazily, like identifier names.
type StrLitExpr struct {
	CommonExprData
	value SymbolID
}

func NewStrLitExpr(data CommonExprData, value SymbolID) *StrLitExpr {
	return &StrLitExpr{CommonExprData: data, value: value}
}

func (e *StrLitExpr) Value() string          { return currentResolver().SymbolName(e.value) }
func (e *StrLitExpr) Sym() SymbolID          { return e.value }
func (e *StrLitExpr) Precedence() Precedence { return PrecLit }
func (e *StrLitExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagStrLit, node: e} }

// CharLitExpr is a character literal.
type CharLitExpr struct {
	CommonExprData
	value rune
}

func NewCharLitExpr(data CommonExprData, value rune) *CharLitExpr {
	return &CharLitExpr{CommonExprData: data, value: value}
}

func (e *CharLitExpr) Value() rune            { return e.value }
func (e *CharLitExpr) Precedence() Precedence { return PrecLit }
func (e *CharLitExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagCharLit, node: e} }

// BoolLitExpr is a boolean literal.
type BoolLitExpr struct {
	CommonExprData
	value bool
}

func NewBoolLitExpr(data CommonExprData, value bool) *BoolLitExpr {
	return &BoolLitExpr{CommonExprData: data, value: value}
}

func (e *BoolLitExpr) Value() bool            { return e.value }
func (e *BoolLitExpr) Precedence() Precedence { return PrecLit }
func (e *BoolLitExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagBoolLit, node: e} }

// BlockExpr is a brace-delimited sequence of expression statements.
type BlockExpr struct {
	CommonExprData
	stmts []ExprKind
}

func NewBlockExpr(data CommonExprData, stmts []ExprKind) *BlockExpr {
	return &BlockExpr{CommonExprData: data, stmts: append([]ExprKind(nil), stmts...)}
}

func (e *BlockExpr) Stmts() []ExprKind      { return e.stmts }
func (e *BlockExpr) IsEmpty() bool          { return len(e.stmts) == 0 }
func (e *BlockExpr) Precedence() Precedence { return PrecBlock }
func (e *BlockExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagBlock, node: e} }

// ClosureExpr is an anonymous function literal.
type ClosureExpr struct {
	CommonExprData
	params []Ident
	body   ExprKind
}

func NewClosureExpr(data CommonExprData, params []Ident, body ExprKind) *ClosureExpr {
	return &ClosureExpr{CommonExprData: data, params: append([]Ident(nil), params...), body: body}
}

func (e *ClosureExpr) Params() []Ident        { return e.params }
func (e *ClosureExpr) Body() ExprKind         { return e.body }
func (e *ClosureExpr) Precedence() Precedence { return PrecClosure }
func (e *ClosureExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagClosure, node: e} }

// UnaryOpExpr is a prefix operator applied to one operand.
type UnaryOpExpr struct {
	CommonExprData
	op      UnaryOpKind
	operand ExprKind
}

func NewUnaryOpExpr(data CommonExprData, op UnaryOpKind, operand ExprKind) *UnaryOpExpr {
	return &UnaryOpExpr{CommonExprData: data, op: op, operand: operand}
}

func (e *UnaryOpExpr) Op() UnaryOpKind   { return e.op }
func (e *UnaryOpExpr) Operand() ExprKind { return e.operand }

func (e *UnaryOpExpr) Precedence() Precedence {
	switch e.op {
	case UnaryOpNot:
		return PrecNot
	case UnaryOpDeref:
		return PrecDeref
	default:
		return PrecNeg
	}
}

func (e *UnaryOpExpr) AsExpr() ExprKind { return ExprKind{tag: ExprTagUnaryOp, node: e} }

// RefExpr takes a reference to a place.
type RefExpr struct {
	CommonExprData
	mut  Mutability
	expr ExprKind
}

func NewRefExpr(data CommonExprData, mut Mutability, expr ExprKind) *RefExpr {
	return &RefExpr{CommonExprData: data, mut: mut, expr: expr}
}

func (e *RefExpr) Mutability() Mutability { return e.mut }
func (e *RefExpr) Expr() ExprKind         { return e.expr }
func (e *RefExpr) Precedence() Precedence { return PrecRef }
func (e *RefExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagRef, node: e} }

// BinaryOpExpr is an infix operator with two operands.
type BinaryOpExpr struct {
	CommonExprData
	op    BinaryOpKind
	left  ExprKind
	right ExprKind
}

func NewBinaryOpExpr(data CommonExprData, op BinaryOpKind, left, right ExprKind) *BinaryOpExpr {
	return &BinaryOpExpr{CommonExprData: data, op: op, left: left, right: right}
}

func (e *BinaryOpExpr) Op() BinaryOpKind { return e.op }
func (e *BinaryOpExpr) Left() ExprKind   { return e.left }
func (e *BinaryOpExpr) Right() ExprKind  { return e.right }

func (e *BinaryOpExpr) Precedence() Precedence {
	switch e.op {
	case BinOpMul:
		return PrecMul
	case BinOpDiv:
		return PrecDiv
	case BinOpRem:
		return PrecRem
	case BinOpAdd:
		return PrecAdd
	case BinOpSub:
		return PrecSub
	case BinOpShl:
		return PrecShl
	case BinOpShr:
		return PrecShr
	case BinOpBitAnd:
		return PrecBitAnd
	case BinOpBitXor:
		return PrecBitXor
	case BinOpBitOr:
		return PrecBitOr
	case BinOpAnd:
		return PrecAnd
	case BinOpOr:
		return PrecOr
	default:
		return PrecComparison
	}
}

func (e *BinaryOpExpr) AsExpr() ExprKind { return ExprKind{tag: ExprTagBinaryOp, node: e} }

// AssignExpr writes a value into a place, optionally through a compound
// operator like +=.
type AssignExpr struct {
	CommonExprData
	op       BinaryOpKind
	compound bool
	place    ExprKind
	value    ExprKind
}

func NewAssignExpr(data CommonExprData, place, value ExprKind) *AssignExpr {
	return &AssignExpr{CommonExprData: data, place: place, value: value}
}

func NewCompoundAssignExpr(data CommonExprData, op BinaryOpKind, place, value ExprKind) *AssignExpr {
	return &AssignExpr{CommonExprData: data, op: op, compound: true, place: place, value: value}
}

func (e *AssignExpr) Place() ExprKind { return e.place }
func (e *AssignExpr) Value() ExprKind { return e.value }

// Op returns the compound operator, if any.
func (e *AssignExpr) Op() (BinaryOpKind, bool) { return e.op, e.compound }

func (e *AssignExpr) Precedence() Precedence {
	if e.compound {
		return PrecAssignOp
	}
	return PrecAssign
}

func (e *AssignExpr) AsExpr() ExprKind { return ExprKind{tag: ExprTagAssign, node: e} }

// CastExpr converts a value to a target type.
type CastExpr struct {
	CommonExprData
	expr   ExprKind
	target TyKind
}

func NewCastExpr(data CommonExprData, expr ExprKind, target TyKind) *CastExpr {
	return &CastExpr{CommonExprData: data, expr: expr, target: target}
}

func (e *CastExpr) Expr() ExprKind         { return e.expr }
func (e *CastExpr) TargetTy() TyKind       { return e.target }
func (e *CastExpr) Precedence() Precedence { return PrecCast }
func (e *CastExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagCast, node: e} }

// PathExpr names an item or local through a possibly qualified path.
type PathExpr struct {
	CommonExprData
	segments []Ident
}

func NewPathExpr(data CommonExprData, segments []Ident) *PathExpr {
	return &PathExpr{CommonExprData: data, segments: append([]Ident(nil), segments...)}
}

func (e *PathExpr) Segments() []Ident { return e.segments }

// Last returns the final path segment, the name being referenced.
func (e *PathExpr) Last() Ident {
	return e.segments[len(e.segments)-1]
}

func (e *PathExpr) Precedence() Precedence { return PrecPath }
func (e *PathExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagPath, node: e} }

// CallExpr calls a callee expression with positional arguments.
type CallExpr struct {
	CommonExprData
	callee ExprKind
	args   []ExprKind
}

func NewCallExpr(data CommonExprData, callee ExprKind, args []ExprKind) *CallExpr {
	return &CallExpr{CommonExprData: data, callee: callee, args: append([]ExprKind(nil), args...)}
}

func (e *CallExpr) Callee() ExprKind       { return e.callee }
func (e *CallExpr) Args() []ExprKind       { return e.args }
func (e *CallExpr) Precedence() Precedence { return PrecCall }
func (e *CallExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagCall, node: e} }

// MethodExpr calls a method on a receiver. The call target is resolved
// by the host on demand.
type MethodExpr struct {
	CommonExprData
	receiver ExprKind
	method   Ident
	args     []ExprKind
}

func NewMethodExpr(data CommonExprData, receiver ExprKind, method Ident, args []ExprKind) *MethodExpr {
	return &MethodExpr{
		CommonExprData: data,
		receiver:       receiver,
		method:         method,
		args:           append([]ExprKind(nil), args...),
	}
}

func (e *MethodExpr) Receiver() ExprKind { return e.receiver }
func (e *MethodExpr) Method() Ident      { return e.method }
func (e *MethodExpr) Args() []ExprKind   { return e.args }

// Target resolves the called item through the current context.
func (e *MethodExpr) Target() ItemID {
	return currentResolver().MethodTarget(e.ID())
}

func (e *MethodExpr) Precedence() Precedence { return PrecMethod }
func (e *MethodExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagMethod, node: e} }

// IndexExpr subscripts a target with an index expression.
type IndexExpr struct {
	CommonExprData
	target ExprKind
	index  ExprKind
}

func NewIndexExpr(data CommonExprData, target, index ExprKind) *IndexExpr {
	return &IndexExpr{CommonExprData: data, target: target, index: index}
}

func (e *IndexExpr) Target() ExprKind       { return e.target }
func (e *IndexExpr) Index() ExprKind        { return e.index }
func (e *IndexExpr) Precedence() Precedence { return PrecIndex }
func (e *IndexExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagIndex, node: e} }

// FieldExpr accesses a named field of a target.
type FieldExpr struct {
	CommonExprData
	target ExprKind
	field  Ident
}

func NewFieldExpr(data CommonExprData, target ExprKind, field Ident) *FieldExpr {
	return &FieldExpr{CommonExprData: data, target: target, field: field}
}

func (e *FieldExpr) Target() ExprKind       { return e.target }
func (e *FieldExpr) Field() Ident           { return e.field }
func (e *FieldExpr) Precedence() Precedence { return PrecField }
func (e *FieldExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagField, node: e} }

// ArrayExpr is an array literal.
type ArrayExpr struct {
	CommonExprData
	elems []ExprKind
}

func NewArrayExpr(data CommonExprData, elems []ExprKind) *ArrayExpr {
	return &ArrayExpr{CommonExprData: data, elems: append([]ExprKind(nil), elems...)}
}

func (e *ArrayExpr) Elems() []ExprKind      { return e.elems }
func (e *ArrayExpr) Precedence() Precedence { return PrecLit }
func (e *ArrayExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagArray, node: e} }

// TupleExpr is a tuple literal.
type TupleExpr struct {
	CommonExprData
	elems []ExprKind
}

func NewTupleExpr(data CommonExprData, elems []ExprKind) *TupleExpr {
	return &TupleExpr{CommonExprData: data, elems: append([]ExprKind(nil), elems...)}
}

func (e *TupleExpr) Elems() []ExprKind      { return e.elems }
func (e *TupleExpr) Precedence() Precedence { return PrecLit }
func (e *TupleExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagTuple, node: e} }

// CtorField is one named field initializer inside a CtorExpr.
type CtorField struct {
	Name  Ident
	Value ExprKind
}

// CtorExpr constructs a user-defined type from named fields.
type CtorExpr struct {
	CommonExprData
	path   []Ident
	fields []CtorField
}

func NewCtorExpr(data CommonExprData, path []Ident, fields []CtorField) *CtorExpr {
	return &CtorExpr{
		CommonExprData: data,
		path:           append([]Ident(nil), path...),
		fields:         append([]CtorField(nil), fields...),
	}
}

func (e *CtorExpr) Path() []Ident          { return e.path }
func (e *CtorExpr) Fields() []CtorField    { return e.fields }
func (e *CtorExpr) Precedence() Precedence { return PrecCtor }
func (e *CtorExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagCtor, node: e} }

// RangeExpr is a range literal. Either bound may be absent.
type RangeExpr struct {
	CommonExprData
	start     ExprKind
	end       ExprKind
	inclusive bool
}

func NewRangeExpr(data CommonExprData, start, end ExprKind, inclusive bool) *RangeExpr {
	return &RangeExpr{CommonExprData: data, start: start, end: end, inclusive: inclusive}
}

// Start returns the lower bound; the bool is false when absent.
func (e *RangeExpr) Start() (ExprKind, bool) { return e.start, e.start.IsValid() }

// End returns the upper bound; the bool is false when absent.
func (e *RangeExpr) End() (ExprKind, bool) { return e.end, e.end.IsValid() }

func (e *RangeExpr) IsInclusive() bool      { return e.inclusive }
func (e *RangeExpr) Precedence() Precedence { return PrecRange }
func (e *RangeExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagRange, node: e} }

// IfExpr is a conditional with an optional else branch.
type IfExpr struct {
	CommonExprData
	cond ExprKind
	then ExprKind
	els  ExprKind
}

func NewIfExpr(data CommonExprData, cond, then, els ExprKind) *IfExpr {
	return &IfExpr{CommonExprData: data, cond: cond, then: then, els: els}
}

func (e *IfExpr) Cond() ExprKind { return e.cond }
func (e *IfExpr) Then() ExprKind { return e.then }

// Else returns the else branch; the bool is false when absent.
func (e *IfExpr) Else() (ExprKind, bool) { return e.els, e.els.IsValid() }

func (e *IfExpr) Precedence() Precedence { return PrecIf }
func (e *IfExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagIf, node: e} }

// MatchArm is one arm of a MatchExpr. Patterns are not modeled; the
// guard and body expressions are.
type MatchArm struct {
	Guard ExprKind
	Body  ExprKind
}

// MatchExpr matches a scrutinee against a list of arms.
type MatchExpr struct {
	CommonExprData
	scrutinee ExprKind
	arms      []MatchArm
}

func NewMatchExpr(data CommonExprData, scrutinee ExprKind, arms []MatchArm) *MatchExpr {
	return &MatchExpr{
		CommonExprData: data,
		scrutinee:      scrutinee,
		arms:           append([]MatchArm(nil), arms...),
	}
}

func (e *MatchExpr) Scrutinee() ExprKind    { return e.scrutinee }
func (e *MatchExpr) Arms() []MatchArm       { return e.arms }
func (e *MatchExpr) Precedence() Precedence { return PrecMatch }
func (e *MatchExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagMatch, node: e} }

// ReturnExpr exits the enclosing body with an optional value.
type ReturnExpr struct {
	CommonExprData
	value ExprKind
}

func NewReturnExpr(data CommonExprData, value ExprKind) *ReturnExpr {
	return &ReturnExpr{CommonExprData: data, value: value}
}

func (e *ReturnExpr) Value() (ExprKind, bool) { return e.value, e.value.IsValid() }
func (e *ReturnExpr) Precedence() Precedence  { return PrecReturn }
func (e *ReturnExpr) AsExpr() ExprKind        { return ExprKind{tag: ExprTagReturn, node: e} }

// BreakExpr exits the enclosing loop with an optional value.
type BreakExpr struct {
	CommonExprData
	value ExprKind
}

func NewBreakExpr(data CommonExprData, value ExprKind) *BreakExpr {
	return &BreakExpr{CommonExprData: data, value: value}
}

func (e *BreakExpr) Value() (ExprKind, bool) { return e.value, e.value.IsValid() }
func (e *BreakExpr) Precedence() Precedence  { return PrecBreak }
func (e *BreakExpr) AsExpr() ExprKind        { return ExprKind{tag: ExprTagBreak, node: e} }

// ContinueExpr jumps to the next iteration of the enclosing loop.
type ContinueExpr struct {
	CommonExprData
}

func NewContinueExpr(data CommonExprData) *ContinueExpr {
	return &ContinueExpr{CommonExprData: data}
}

func (e *ContinueExpr) Precedence() Precedence { return PrecContinue }
func (e *ContinueExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagContinue, node: e} }

// AwaitExpr suspends on a future-like value.
type AwaitExpr struct {
	CommonExprData
	expr ExprKind
}

func NewAwaitExpr(data CommonExprData, expr ExprKind) *AwaitExpr {
	return &AwaitExpr{CommonExprData: data, expr: expr}
}

func (e *AwaitExpr) Expr() ExprKind         { return e.expr }
func (e *AwaitExpr) Precedence() Precedence { return PrecAwait }
func (e *AwaitExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagAwait, node: e} }

// UnstableExpr stands in for expression kinds the protocol has not
// stabilized yet. Its precedence is supplied by the producer instead of
// being looked up in the table.
type UnstableExpr struct {
	CommonExprData
	prec Precedence
}

func NewUnstableExpr(data CommonExprData, prec Precedence) *UnstableExpr {
	return &UnstableExpr{CommonExprData: data, prec: prec}
}

func (e *UnstableExpr) Precedence() Precedence { return e.prec }
func (e *UnstableExpr) AsExpr() ExprKind       { return ExprKind{tag: ExprTagUnstable, node: e} }
