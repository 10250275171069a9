package ast

// TyTag discriminates the semantic type kinds.
type TyTag uint8

const (
	TyTagInvalid TyTag = iota
	TyTagBool
	TyTagChar
	TyTagInt
	TyTagFloat
	TyTagStr
	TyTagRef
	TyTagRawPtr
	TyTagAdt
	TyTagTuple
	TyTagUnstable
)

// Mutability of a reference or pointer target.
type Mutability uint8

const (
	Immutable Mutability = iota
	Mutable
)

type tyNode interface {
	tyNode()
}

// TyKind is the closed sum over semantic type nodes. The zero value is
// invalid and means "type unknown under this host".
type TyKind struct {
	tag  TyTag
	node tyNode
}

// Tag returns the active variant tag.
func (k TyKind) Tag() TyTag {
	return k.tag
}

// IsValid reports whether the kind holds a node.
func (k TyKind) IsValid() bool {
	return k.tag != TyTagInvalid
}

type BoolTy struct{}
type CharTy struct{}
type StrTy struct{}
type UnstableTy struct{}

// IntTy is a builtin integer type of the given bit width; width 0 means
// the host's pointer-sized integer.
type IntTy struct {
	bits   uint8
	signed bool
}

func NewIntTy(bits uint8, signed bool) *IntTy { return &IntTy{bits: bits, signed: signed} }

func (t *IntTy) Bits() uint8  { return t.bits }
func (t *IntTy) Signed() bool { return t.signed }

// FloatTy is a builtin float type of the given bit width.
type FloatTy struct {
	bits uint8
}

func NewFloatTy(bits uint8) *FloatTy { return &FloatTy{bits: bits} }

func (t *FloatTy) Bits() uint8 { return t.bits }

// RefTy is a reference to another type.
type RefTy struct {
	mut   Mutability
	inner TyKind
}

func NewRefTy(mut Mutability, inner TyKind) *RefTy { return &RefTy{mut: mut, inner: inner} }

func (t *RefTy) Mutability() Mutability { return t.mut }
func (t *RefTy) InnerTy() TyKind        { return t.inner }

// RawPtrTy is a raw pointer to another type.
type RawPtrTy struct {
	mut   Mutability
	inner TyKind
}

func NewRawPtrTy(mut Mutability, inner TyKind) *RawPtrTy { return &RawPtrTy{mut: mut, inner: inner} }

func (t *RawPtrTy) Mutability() Mutability { return t.mut }
func (t *RawPtrTy) InnerTy() TyKind        { return t.inner }

// AdtTy is a user-defined type, identified by its definition ID. Lints
// usually compare the ID against Context.ResolveTyIDs results.
type AdtTy struct {
	def TyDefID
}

func NewAdtTy(def TyDefID) *AdtTy { return &AdtTy{def: def} }

func (t *AdtTy) DefID() TyDefID { return t.def }

// TupleTy is a tuple of element types.
type TupleTy struct {
	elems []TyKind
}

func NewTupleTy(elems []TyKind) *TupleTy {
	return &TupleTy{elems: append([]TyKind(nil), elems...)}
}

func (t *TupleTy) Elems() []TyKind { return t.elems }

func (*BoolTy) tyNode()     {}
func (*CharTy) tyNode()     {}
func (*StrTy) tyNode()      {}
func (*IntTy) tyNode()      {}
func (*FloatTy) tyNode()    {}
func (*RefTy) tyNode()      {}
func (*RawPtrTy) tyNode()   {}
func (*AdtTy) tyNode()      {}
func (*TupleTy) tyNode()    {}
func (*UnstableTy) tyNode() {}

// Singletons for the payload-free builtins.
var (
	boolTy     = &BoolTy{}
	charTy     = &CharTy{}
	strTy      = &StrTy{}
	unstableTy = &UnstableTy{}
)

func BoolTyKind() TyKind              { return TyKind{tag: TyTagBool, node: boolTy} }
func CharTyKind() TyKind              { return TyKind{tag: TyTagChar, node: charTy} }
func StrTyKind() TyKind               { return TyKind{tag: TyTagStr, node: strTy} }
func UnstableTyKind() TyKind          { return TyKind{tag: TyTagUnstable, node: unstableTy} }
func IntTyKind(t *IntTy) TyKind       { return TyKind{tag: TyTagInt, node: t} }
func FloatTyKind(t *FloatTy) TyKind   { return TyKind{tag: TyTagFloat, node: t} }
func RefTyKind(t *RefTy) TyKind       { return TyKind{tag: TyTagRef, node: t} }
func RawPtrTyKind(t *RawPtrTy) TyKind { return TyKind{tag: TyTagRawPtr, node: t} }
func AdtTyKind(t *AdtTy) TyKind       { return TyKind{tag: TyTagAdt, node: t} }
func TupleTyKind(t *TupleTy) TyKind   { return TyKind{tag: TyTagTuple, node: t} }

// AsInt returns the integer type node if that variant is active.
func (k TyKind) AsInt() (*IntTy, bool) {
	if k.tag != TyTagInt {
		return nil, false
	}
	return k.node.(*IntTy), true
}

// AsFloat returns the float type node if that variant is active.
func (k TyKind) AsFloat() (*FloatTy, bool) {
	if k.tag != TyTagFloat {
		return nil, false
	}
	return k.node.(*FloatTy), true
}

// AsRef returns the reference type node if that variant is active.
func (k TyKind) AsRef() (*RefTy, bool) {
	if k.tag != TyTagRef {
		return nil, false
	}
	return k.node.(*RefTy), true
}

// AsRawPtr returns the raw pointer type node if that variant is active.
func (k TyKind) AsRawPtr() (*RawPtrTy, bool) {
	if k.tag != TyTagRawPtr {
		return nil, false
	}
	return k.node.(*RawPtrTy), true
}

// AsAdt returns the user-defined type node if that variant is active.
func (k TyKind) AsAdt() (*AdtTy, bool) {
	if k.tag != TyTagAdt {
		return nil, false
	}
	return k.node.(*AdtTy), true
}

// AsTuple returns the tuple type node if that variant is active.
func (k TyKind) AsTuple() (*TupleTy, bool) {
	if k.tag != TyTagTuple {
		return nil, false
	}
	return k.node.(*TupleTy), true
}
