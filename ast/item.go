package ast

// ItemTag discriminates the item kinds.
type ItemTag uint8

const (
	ItemTagInvalid ItemTag = iota
	ItemTagMod
	ItemTagExternCrate
	ItemTagUseDecl
	ItemTagStatic
	ItemTagConst
	ItemTagFn
)

// CommonItemData is the header shared by every concrete item node.
type CommonItemData struct {
	id    ItemID
	span  SpanID
	ident Ident
}

// NewCommonItemData creates an item header. Host-side constructor.
func NewCommonItemData(id ItemID, span SpanID, ident Ident) CommonItemData {
	return CommonItemData{id: id, span: span, ident: ident}
}

func (d *CommonItemData) ID() ItemID {
	return d.id
}

func (d *CommonItemData) SpanID() SpanID {
	return d.span
}

func (d *CommonItemData) Span() *Span {
	return currentResolver().SpanOf(d.span)
}

// Ident returns the item's name identifier. Items without a meaningful
// name (use declarations) carry an identifier with NoSymbolID.
func (d *CommonItemData) Ident() Ident {
	return d.ident
}

func (d *CommonItemData) itemData() *CommonItemData {
	return d
}

type itemNode interface {
	itemData() *CommonItemData
}

// ItemKind is the closed sum over concrete item nodes.
type ItemKind struct {
	tag  ItemTag
	node itemNode
}

func (k ItemKind) Tag() ItemTag {
	return k.tag
}

func (k ItemKind) IsValid() bool {
	return k.tag != ItemTagInvalid
}

func (k ItemKind) ID() ItemID {
	return k.node.itemData().ID()
}

func (k ItemKind) Span() *Span {
	return k.node.itemData().Span()
}

// SpanID returns the raw span handle of the wrapped item.
func (k ItemKind) SpanID() SpanID {
	return k.node.itemData().SpanID()
}

func (k ItemKind) Ident() Ident {
	return k.node.itemData().Ident()
}

// EmissionNode returns the item as a diagnostic emission point.
func (k ItemKind) EmissionNode() EmissionNode {
	return ItemNode(k.ID())
}

func (k ItemKind) AsMod() (*ModItem, bool) {
	if k.tag != ItemTagMod {
		return nil, false
	}
	return k.node.(*ModItem), true
}

func (k ItemKind) AsExternCrate() (*ExternCrateItem, bool) {
	if k.tag != ItemTagExternCrate {
		return nil, false
	}
	return k.node.(*ExternCrateItem), true
}

func (k ItemKind) AsUseDecl() (*UseDeclItem, bool) {
	if k.tag != ItemTagUseDecl {
		return nil, false
	}
	return k.node.(*UseDeclItem), true
}

func (k ItemKind) AsStatic() (*StaticItem, bool) {
	if k.tag != ItemTagStatic {
		return nil, false
	}
	return k.node.(*StaticItem), true
}

func (k ItemKind) AsConst() (*ConstItem, bool) {
	if k.tag != ItemTagConst {
		return nil, false
	}
	return k.node.(*ConstItem), true
}

func (k ItemKind) AsFn() (*FnItem, bool) {
	if k.tag != ItemTagFn {
		return nil, false
	}
	return k.node.(*FnItem), true
}

// ModItem is a module containing nested items in document order.
type ModItem struct {
	CommonItemData
	items []ItemKind
}

func NewModItem(data CommonItemData, items []ItemKind) *ModItem {
	return &ModItem{CommonItemData: data, items: append([]ItemKind(nil), items...)}
}

func (i *ModItem) Items() []ItemKind { return i.items }
func (i *ModItem) AsItem() ItemKind  { return ItemKind{tag: ItemTagMod, node: i} }

// ExternCrateItem declares a dependency on another crate.
type ExternCrateItem struct {
	CommonItemData
}

func NewExternCrateItem(data CommonItemData) *ExternCrateItem {
	return &ExternCrateItem{CommonItemData: data}
}

func (i *ExternCrateItem) AsItem() ItemKind { return ItemKind{tag: ItemTagExternCrate, node: i} }

// UseDeclItem imports a path into the current scope.
type UseDeclItem struct {
	CommonItemData
	path []Ident
	glob bool
}

func NewUseDeclItem(data CommonItemData, path []Ident, glob bool) *UseDeclItem {
	return &UseDeclItem{CommonItemData: data, path: append([]Ident(nil), path...), glob: glob}
}

func (i *UseDeclItem) Path() []Ident    { return i.path }
func (i *UseDeclItem) IsGlob() bool     { return i.glob }
func (i *UseDeclItem) AsItem() ItemKind { return ItemKind{tag: ItemTagUseDecl, node: i} }

// StaticItem is a static variable with an initializer body.
type StaticItem struct {
	CommonItemData
	mut  Mutability
	body BodyID
}

func NewStaticItem(data CommonItemData, mut Mutability, body BodyID) *StaticItem {
	return &StaticItem{CommonItemData: data, mut: mut, body: body}
}

func (i *StaticItem) Mutability() Mutability { return i.mut }
func (i *StaticItem) BodyID() BodyID         { return i.body }

// Body resolves the initializer body through the current context.
func (i *StaticItem) Body() *Body {
	return currentResolver().BodyOf(i.body)
}

func (i *StaticItem) AsItem() ItemKind { return ItemKind{tag: ItemTagStatic, node: i} }

// ConstItem is a named constant with an initializer body. The protocol
// does not compute constant values; lints only see the expression.
type ConstItem struct {
	CommonItemData
	body BodyID
}

func NewConstItem(data CommonItemData, body BodyID) *ConstItem {
	return &ConstItem{CommonItemData: data, body: body}
}

func (i *ConstItem) BodyID() BodyID { return i.body }

func (i *ConstItem) Body() *Body {
	return currentResolver().BodyOf(i.body)
}

func (i *ConstItem) AsItem() ItemKind { return ItemKind{tag: ItemTagConst, node: i} }

// FnItem is a function definition.
type FnItem struct {
	CommonItemData
	params []Ident
	body   BodyID
}

func NewFnItem(data CommonItemData, params []Ident, body BodyID) *FnItem {
	return &FnItem{CommonItemData: data, params: append([]Ident(nil), params...), body: body}
}

func (i *FnItem) Params() []Ident { return i.params }
func (i *FnItem) BodyID() BodyID  { return i.body }

func (i *FnItem) Body() *Body {
	return currentResolver().BodyOf(i.body)
}

func (i *FnItem) AsItem() ItemKind { return ItemKind{tag: ItemTagFn, node: i} }

// Body is the executable part of a function, static or const item.
type Body struct {
	id    BodyID
	owner ItemID
	expr  ExprKind
}

// NewBody creates a body node. Host-side constructor.
func NewBody(id BodyID, owner ItemID, expr ExprKind) *Body {
	return &Body{id: id, owner: owner, expr: expr}
}

func (b *Body) ID() BodyID {
	return b.id
}

// Owner returns the item this body belongs to.
func (b *Body) Owner() ItemID {
	return b.owner
}

// Expr returns the body's root expression.
func (b *Body) Expr() ExprKind {
	return b.expr
}

// Crate is the root of one compilation unit's AST.
type Crate struct {
	items []ItemKind
}

// NewCrate creates a crate root from top-level items in document order.
func NewCrate(items []ItemKind) *Crate {
	return &Crate{items: append([]ItemKind(nil), items...)}
}

func (c *Crate) Items() []ItemKind {
	return c.items
}
