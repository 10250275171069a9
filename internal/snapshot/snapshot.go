// Package snapshot serializes a whole program store to a flat msgpack
// payload, so a host can export its AST once and the CLI can lint it
// without linking the host.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"lintwire/ast"
	"lintwire/internal/memdriver"
)

// SchemaVersion is bumped whenever the payload layout changes. A
// payload with a different schema is refused, never reinterpreted.
const SchemaVersion uint16 = 1

var ErrSchema = errors.New("snapshot: unsupported schema version")

// FileRec is one stored source file.
type FileRec struct {
	Path    string
	Content []byte
}

// SrcRec is one span provenance value.
type SrcRec struct {
	Kind  uint8
	File  string
	Macro uint32
	Text  string // macro expansion text, when registered
}

// SpanRec is one span; Src indexes Payload.Srcs.
type SpanRec struct {
	Src   uint32
	Start uint32
	End   uint32
}

// IdentRec is a name bound to a span.
type IdentRec struct {
	Sym  uint32
	Span uint32
}

// TyRec is a semantic type tree.
type TyRec struct {
	Tag    uint8
	Bits   uint8
	Signed bool
	Mut    uint8
	Def    uint32
	Inner  *TyRec
	Elems  []TyRec
}

// ExprRec is one expression node. Kids holds child expression IDs in a
// fixed per-tag order; zero marks an absent optional child.
type ExprRec struct {
	ID   uint32
	Span uint32
	Tag  uint8

	IntVal    uint64
	FloatVal  float64
	Sym       uint32
	CharVal   int32
	BoolVal   bool
	Op        uint8
	Compound  bool
	Inclusive bool
	Mut       uint8
	Prec      int32

	Kids   []uint32
	Idents []IdentRec
	Ident  IdentRec
	Ty     *TyRec
}

// ItemRec is one item node. Children holds nested item IDs for modules.
type ItemRec struct {
	ID    uint32
	Span  uint32
	Ident IdentRec
	Tag   uint8

	Mut      uint8
	Glob     bool
	Body     uint32
	Path     []IdentRec
	Children []uint32
}

// BodyRec links a body to its owner and root expression.
type BodyRec struct {
	ID    uint32
	Owner uint32
	Expr  uint32
}

// Payload is the complete on-disk form of one program.
type Payload struct {
	Schema    uint16
	Toolchain string

	Files   []FileRec
	Symbols []string
	Srcs    []SrcRec
	Spans   []SpanRec
	Exprs   []ExprRec
	Items   []ItemRec
	Bodies  []BodyRec

	TopItems      []uint32
	TyPaths       map[string][]uint32
	ExprTys       map[uint32]TyRec
	MethodTargets map[uint32]uint32
}

// Write serializes a payload.
func Write(w io.Writer, p *Payload) error {
	return msgpack.NewEncoder(w).Encode(p)
}

// Read deserializes a payload and checks its schema version.
func Read(r io.Reader) (*Payload, error) {
	var p Payload
	if err := msgpack.NewDecoder(r).Decode(&p); err != nil {
		return nil, err
	}
	if p.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchema, p.Schema, SchemaVersion)
	}
	return &p, nil
}

// Load reads a payload from disk and rebuilds the store.
func Load(path string) (*memdriver.Store, *Payload, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	p, err := Read(f)
	if err != nil {
		return nil, nil, err
	}
	st, err := Decode(p)
	if err != nil {
		return nil, nil, err
	}
	return st, p, nil
}

// Save encodes a store and writes it to disk.
func Save(path string, st *memdriver.Store, toolchain string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, Encode(st, toolchain)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func encodeTy(ty ast.TyKind) *TyRec {
	if !ty.IsValid() {
		return nil
	}
	rec := &TyRec{Tag: uint8(ty.Tag())}
	switch ty.Tag() {
	case ast.TyTagInt:
		t, _ := ty.AsInt()
		rec.Bits = t.Bits()
		rec.Signed = t.Signed()
	case ast.TyTagFloat:
		t, _ := ty.AsFloat()
		rec.Bits = t.Bits()
	case ast.TyTagRef:
		t, _ := ty.AsRef()
		rec.Mut = uint8(t.Mutability())
		rec.Inner = encodeTy(t.InnerTy())
	case ast.TyTagRawPtr:
		t, _ := ty.AsRawPtr()
		rec.Mut = uint8(t.Mutability())
		rec.Inner = encodeTy(t.InnerTy())
	case ast.TyTagAdt:
		t, _ := ty.AsAdt()
		rec.Def = uint32(t.DefID())
	case ast.TyTagTuple:
		t, _ := ty.AsTuple()
		for _, el := range t.Elems() {
			if sub := encodeTy(el); sub != nil {
				rec.Elems = append(rec.Elems, *sub)
			}
		}
	}
	return rec
}

func decodeTy(rec *TyRec) ast.TyKind {
	if rec == nil {
		return ast.TyKind{}
	}
	switch ast.TyTag(rec.Tag) {
	case ast.TyTagBool:
		return ast.BoolTyKind()
	case ast.TyTagChar:
		return ast.CharTyKind()
	case ast.TyTagStr:
		return ast.StrTyKind()
	case ast.TyTagUnstable:
		return ast.UnstableTyKind()
	case ast.TyTagInt:
		return ast.IntTyKind(ast.NewIntTy(rec.Bits, rec.Signed))
	case ast.TyTagFloat:
		return ast.FloatTyKind(ast.NewFloatTy(rec.Bits))
	case ast.TyTagRef:
		return ast.RefTyKind(ast.NewRefTy(ast.Mutability(rec.Mut), decodeTy(rec.Inner)))
	case ast.TyTagRawPtr:
		return ast.RawPtrTyKind(ast.NewRawPtrTy(ast.Mutability(rec.Mut), decodeTy(rec.Inner)))
	case ast.TyTagAdt:
		return ast.AdtTyKind(ast.NewAdtTy(ast.TyDefID(rec.Def)))
	case ast.TyTagTuple:
		elems := make([]ast.TyKind, 0, len(rec.Elems))
		for i := range rec.Elems {
			elems = append(elems, decodeTy(&rec.Elems[i]))
		}
		return ast.TupleTyKind(ast.NewTupleTy(elems))
	default:
		return ast.TyKind{}
	}
}
