package snapshot

import (
	"sort"

	"lintwire/ast"
	"lintwire/internal/memdriver"
)

// Encode flattens a store into a payload. Spans are emitted in
// allocation order so their IDs survive the round trip; expressions and
// items are sorted by ID for deterministic output.
func Encode(st *memdriver.Store, toolchain string) *Payload {
	p := &Payload{
		Schema:        SchemaVersion,
		Toolchain:     toolchain,
		Symbols:       st.Symbols(),
		TyPaths:       make(map[string][]uint32),
		ExprTys:       make(map[uint32]TyRec),
		MethodTargets: make(map[uint32]uint32),
	}

	for _, f := range st.Files().Files() {
		p.Files = append(p.Files, FileRec{Path: f.Path, Content: f.Content})
	}

	srcIdx := make(map[*ast.SpanSource]uint32)
	for _, span := range st.Spans() {
		src := span.Source()
		idx, ok := srcIdx[src]
		if !ok {
			idx = uint32(len(p.Srcs))
			srcIdx[src] = idx
			rec := SrcRec{
				Kind:  uint8(src.Kind()),
				File:  src.File(),
				Macro: uint32(src.MacroID()),
			}
			if src.Kind() == ast.SpanSrcMacro {
				rec.Text = st.MacroTexts()[src.MacroID()]
			}
			p.Srcs = append(p.Srcs, rec)
		}
		p.Spans = append(p.Spans, SpanRec{Src: idx, Start: span.Start(), End: span.End()})
	}

	exprIDs := make([]ast.ExprID, 0, len(st.Exprs()))
	for id := range st.Exprs() {
		exprIDs = append(exprIDs, id)
	}
	sort.Slice(exprIDs, func(i, j int) bool { return exprIDs[i] < exprIDs[j] })
	for _, id := range exprIDs {
		p.Exprs = append(p.Exprs, encodeExpr(st.Exprs()[id]))
	}

	itemIDs := make([]ast.ItemID, 0, len(st.Items()))
	for id := range st.Items() {
		itemIDs = append(itemIDs, id)
	}
	sort.Slice(itemIDs, func(i, j int) bool { return itemIDs[i] < itemIDs[j] })
	for _, id := range itemIDs {
		p.Items = append(p.Items, encodeItem(st.Items()[id]))
	}

	bodyIDs := make([]ast.BodyID, 0, len(st.Bodies()))
	for id := range st.Bodies() {
		bodyIDs = append(bodyIDs, id)
	}
	sort.Slice(bodyIDs, func(i, j int) bool { return bodyIDs[i] < bodyIDs[j] })
	for _, id := range bodyIDs {
		b := st.Bodies()[id]
		p.Bodies = append(p.Bodies, BodyRec{
			ID:    uint32(b.ID()),
			Owner: uint32(b.Owner()),
			Expr:  uint32(b.Expr().ID()),
		})
	}

	for _, item := range st.TopItems() {
		p.TopItems = append(p.TopItems, uint32(item.ID()))
	}
	for path, ids := range st.TyPaths() {
		out := make([]uint32, len(ids))
		for i, id := range ids {
			out[i] = uint32(id)
		}
		p.TyPaths[path] = out
	}
	for id, ty := range st.ExprTys() {
		if rec := encodeTy(ty); rec != nil {
			p.ExprTys[uint32(id)] = *rec
		}
	}
	for id, target := range st.MethodTargets() {
		p.MethodTargets[uint32(id)] = uint32(target)
	}
	return p
}

func encodeIdent(id ast.Ident) IdentRec {
	return IdentRec{Sym: uint32(id.Sym()), Span: uint32(id.SpanID())}
}

func encodeIdents(ids []ast.Ident) []IdentRec {
	out := make([]IdentRec, 0, len(ids))
	for _, id := range ids {
		out = append(out, encodeIdent(id))
	}
	return out
}

func kidID(e ast.ExprKind) uint32 {
	if !e.IsValid() {
		return 0
	}
	return uint32(e.ID())
}

func kidIDs(exprs []ast.ExprKind) []uint32 {
	out := make([]uint32, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, kidID(e))
	}
	return out
}

func encodeExpr(e ast.ExprKind) ExprRec {
	rec := ExprRec{
		ID:   uint32(e.ID()),
		Span: uint32(e.SpanID()),
		Tag:  uint8(e.Tag()),
	}
	switch e.Tag() {
	case ast.ExprTagIntLit:
		n, _ := e.AsIntLit()
		rec.IntVal = n.Value()
	case ast.ExprTagFloatLit:
		n, _ := e.AsFloatLit()
		rec.FloatVal = n.Value()
	case ast.ExprTagStrLit:
		n, _ := e.AsStrLit()
		rec.Sym = uint32(n.Sym())
	case ast.ExprTagCharLit:
		n, _ := e.AsCharLit()
		rec.CharVal = int32(n.Value())
	case ast.ExprTagBoolLit:
		n, _ := e.AsBoolLit()
		rec.BoolVal = n.Value()
	case ast.ExprTagBlock:
		n, _ := e.AsBlock()
		rec.Kids = kidIDs(n.Stmts())
	case ast.ExprTagClosure:
		n, _ := e.AsClosure()
		rec.Idents = encodeIdents(n.Params())
		rec.Kids = []uint32{kidID(n.Body())}
	case ast.ExprTagUnaryOp:
		n, _ := e.AsUnaryOp()
		rec.Op = uint8(n.Op())
		rec.Kids = []uint32{kidID(n.Operand())}
	case ast.ExprTagRef:
		n, _ := e.AsRef()
		rec.Mut = uint8(n.Mutability())
		rec.Kids = []uint32{kidID(n.Expr())}
	case ast.ExprTagBinaryOp:
		n, _ := e.AsBinaryOp()
		rec.Op = uint8(n.Op())
		rec.Kids = []uint32{kidID(n.Left()), kidID(n.Right())}
	case ast.ExprTagAssign:
		n, _ := e.AsAssign()
		if op, compound := n.Op(); compound {
			rec.Op = uint8(op)
			rec.Compound = true
		}
		rec.Kids = []uint32{kidID(n.Place()), kidID(n.Value())}
	case ast.ExprTagCast:
		n, _ := e.AsCast()
		rec.Ty = encodeTy(n.TargetTy())
		rec.Kids = []uint32{kidID(n.Expr())}
	case ast.ExprTagPath:
		n, _ := e.AsPath()
		rec.Idents = encodeIdents(n.Segments())
	case ast.ExprTagCall:
		n, _ := e.AsCall()
		rec.Kids = append([]uint32{kidID(n.Callee())}, kidIDs(n.Args())...)
	case ast.ExprTagMethod:
		n, _ := e.AsMethod()
		rec.Ident = encodeIdent(n.Method())
		rec.Kids = append([]uint32{kidID(n.Receiver())}, kidIDs(n.Args())...)
	case ast.ExprTagIndex:
		n, _ := e.AsIndex()
		rec.Kids = []uint32{kidID(n.Target()), kidID(n.Index())}
	case ast.ExprTagField:
		n, _ := e.AsField()
		rec.Ident = encodeIdent(n.Field())
		rec.Kids = []uint32{kidID(n.Target())}
	case ast.ExprTagArray:
		n, _ := e.AsArray()
		rec.Kids = kidIDs(n.Elems())
	case ast.ExprTagTuple:
		n, _ := e.AsTuple()
		rec.Kids = kidIDs(n.Elems())
	case ast.ExprTagCtor:
		n, _ := e.AsCtor()
		rec.Idents = encodeIdents(n.Path())
		for _, field := range n.Fields() {
			rec.Kids = append(rec.Kids, kidID(field.Value))
			rec.Idents = append(rec.Idents, encodeIdent(field.Name))
		}
		// Idents holds path segments first, then one name per field.
		rec.IntVal = uint64(len(n.Path()))
	case ast.ExprTagRange:
		n, _ := e.AsRange()
		start, _ := n.Start()
		end, _ := n.End()
		rec.Inclusive = n.IsInclusive()
		rec.Kids = []uint32{kidID(start), kidID(end)}
	case ast.ExprTagIf:
		n, _ := e.AsIf()
		els, _ := n.Else()
		rec.Kids = []uint32{kidID(n.Cond()), kidID(n.Then()), kidID(els)}
	case ast.ExprTagMatch:
		n, _ := e.AsMatch()
		rec.Kids = []uint32{kidID(n.Scrutinee())}
		for _, arm := range n.Arms() {
			rec.Kids = append(rec.Kids, kidID(arm.Guard), kidID(arm.Body))
		}
	case ast.ExprTagReturn:
		n, _ := e.AsReturn()
		v, _ := n.Value()
		rec.Kids = []uint32{kidID(v)}
	case ast.ExprTagBreak:
		n, _ := e.AsBreak()
		v, _ := n.Value()
		rec.Kids = []uint32{kidID(v)}
	case ast.ExprTagAwait:
		n, _ := e.AsAwait()
		rec.Kids = []uint32{kidID(n.Expr())}
	case ast.ExprTagUnstable:
		rec.Prec = int32(e.Precedence())
	}
	return rec
}

func encodeItem(item ast.ItemKind) ItemRec {
	data := ItemRec{
		ID:    uint32(item.ID()),
		Span:  uint32(item.SpanID()),
		Ident: encodeIdent(item.Ident()),
		Tag:   uint8(item.Tag()),
	}
	switch item.Tag() {
	case ast.ItemTagMod:
		n, _ := item.AsMod()
		for _, child := range n.Items() {
			data.Children = append(data.Children, uint32(child.ID()))
		}
	case ast.ItemTagUseDecl:
		n, _ := item.AsUseDecl()
		data.Path = encodeIdents(n.Path())
		data.Glob = n.IsGlob()
	case ast.ItemTagStatic:
		n, _ := item.AsStatic()
		data.Mut = uint8(n.Mutability())
		data.Body = uint32(n.BodyID())
	case ast.ItemTagConst:
		n, _ := item.AsConst()
		data.Body = uint32(n.BodyID())
	case ast.ItemTagFn:
		n, _ := item.AsFn()
		data.Path = encodeIdents(n.Params())
		data.Body = uint32(n.BodyID())
	}
	return data
}
