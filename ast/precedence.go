package ast

// Precedence decides parenthesization when lints generate code
// suggestions. Higher binds tighter. The table is banded with numeric
// gaps so new kinds can slot in without renumbering existing ones.
type Precedence int32

const (
	PrecLit    Precedence = 0x1400_0000
	PrecBlock  Precedence = 0x1400_0001
	PrecCtor   Precedence = 0x1400_0002
	PrecAssign Precedence = 0x1400_0003
	PrecAwait  Precedence = 0x1400_0004

	PrecPath Precedence = 0x1300_0000

	PrecMethod Precedence = 0x1200_0000
	PrecCall   Precedence = 0x1200_0001
	PrecIf     Precedence = 0x1200_0002
	PrecMatch  Precedence = 0x1200_0003

	PrecField Precedence = 0x1100_0000

	PrecIndex Precedence = 0x1000_0000

	// Unary operators.
	PrecNeg   Precedence = 0x0E00_0000
	PrecNot   Precedence = 0x0E00_0001
	PrecDeref Precedence = 0x0E00_0002
	PrecRef   Precedence = 0x0E00_0003

	PrecCast Precedence = 0x0D00_0000

	PrecMul Precedence = 0x0C00_0000
	PrecDiv Precedence = 0x0C00_0001
	PrecRem Precedence = 0x0C00_0002

	PrecAdd Precedence = 0x0B00_0000
	PrecSub Precedence = 0x0B00_0001

	PrecShr Precedence = 0x0A00_0000
	PrecShl Precedence = 0x0A00_0001

	PrecBitAnd Precedence = 0x0900_0000
	PrecBitXor Precedence = 0x0800_0000
	PrecBitOr  Precedence = 0x0700_0000

	// ==, !=, <, <=, >, >=
	PrecComparison Precedence = 0x0600_0000

	PrecAnd Precedence = 0x0500_0000
	PrecOr  Precedence = 0x0400_0000

	PrecRange Precedence = 0x0300_0000

	// Compound assignment: +=, -=, *=, ...
	PrecAssignOp Precedence = 0x0200_0000

	PrecClosure  Precedence = 0x0100_0000
	PrecBreak    Precedence = 0x0100_0001
	PrecReturn   Precedence = 0x0100_0002
	PrecContinue Precedence = 0x0100_0003
)

// Band returns the precedence band, the part that matters for
// parenthesization decisions. Entries inside one band never need
// parentheses relative to each other.
func (p Precedence) Band() int32 {
	return int32(p) >> 24
}
