package ast

// Opaque handles identifying nodes within one analysis session. They
// carry no payload and are only meaningful to the host that issued
// them; resolving an ID from one session against another is undefined.
type (
	ExprID    uint32
	ItemID    uint32
	BodyID    uint32
	SpanID    uint32
	SymbolID  uint32
	TyDefID   uint32
	SpanSrcID uint32
)

const (
	NoExprID    ExprID    = 0
	NoItemID    ItemID    = 0
	NoBodyID    BodyID    = 0
	NoSpanID    SpanID    = 0
	NoSymbolID  SymbolID  = 0
	NoTyDefID   TyDefID   = 0
	NoSpanSrcID SpanSrcID = 0
)

func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id ItemID) IsValid() bool    { return id != NoItemID }
func (id BodyID) IsValid() bool    { return id != NoBodyID }
func (id SpanID) IsValid() bool    { return id != NoSpanID }
func (id SymbolID) IsValid() bool  { return id != NoSymbolID }
func (id TyDefID) IsValid() bool   { return id != NoTyDefID }
func (id SpanSrcID) IsValid() bool { return id != NoSpanSrcID }
