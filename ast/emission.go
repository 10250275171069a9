package ast

// EmissionNodeKind tags the node class behind an EmissionNode.
type EmissionNodeKind uint8

const (
	EmissionInvalid EmissionNodeKind = iota
	EmissionExpr
	EmissionItem
	EmissionBody
)

// EmissionNode identifies the point a diagnostic is attached to. Lint
// level lookups resolve attributes relative to this node. The type is
// comparable so hosts can key override tables by it.
type EmissionNode struct {
	kind EmissionNodeKind
	id   uint32
}

// ExprNode wraps an expression ID as an emission point.
func ExprNode(id ExprID) EmissionNode {
	return EmissionNode{kind: EmissionExpr, id: uint32(id)}
}

// ItemNode wraps an item ID as an emission point.
func ItemNode(id ItemID) EmissionNode {
	return EmissionNode{kind: EmissionItem, id: uint32(id)}
}

// BodyNode wraps a body ID as an emission point.
func BodyNode(id BodyID) EmissionNode {
	return EmissionNode{kind: EmissionBody, id: uint32(id)}
}

func (n EmissionNode) Kind() EmissionNodeKind {
	return n.kind
}

func (n EmissionNode) IsValid() bool {
	return n.kind != EmissionInvalid
}

// ExprID returns the wrapped expression ID, if the node is one.
func (n EmissionNode) ExprID() (ExprID, bool) {
	if n.kind != EmissionExpr {
		return NoExprID, false
	}
	return ExprID(n.id), true
}

// ItemID returns the wrapped item ID, if the node is one.
func (n EmissionNode) ItemID() (ItemID, bool) {
	if n.kind != EmissionItem {
		return NoItemID, false
	}
	return ItemID(n.id), true
}

// BodyID returns the wrapped body ID, if the node is one.
func (n EmissionNode) BodyID() (BodyID, bool) {
	if n.kind != EmissionBody {
		return NoBodyID, false
	}
	return BodyID(n.id), true
}
