package snapshot

import (
	"fmt"

	"lintwire/ast"
	"lintwire/internal/memdriver"
)

// Decode rebuilds a store from a payload. Span allocation order is
// replayed, so every ID in the payload stays valid against the new
// store.
func Decode(p *Payload) (*memdriver.Store, error) {
	st := memdriver.New()

	for _, f := range p.Files {
		st.AddFile(f.Path, string(f.Content))
	}
	st.ImportSymbols(p.Symbols)

	for _, span := range p.Spans {
		if int(span.Src) >= len(p.Srcs) {
			return nil, fmt.Errorf("snapshot: span source index %d out of range", span.Src)
		}
		src := p.Srcs[span.Src]
		switch ast.SpanSrcKind(src.Kind) {
		case ast.SpanSrcFile:
			st.FileSpan(src.File, span.Start, span.End)
		case ast.SpanSrcMacro:
			st.MacroSpan(ast.SpanSrcID(src.Macro), span.Start, span.End)
			if src.Text != "" {
				st.SetMacroText(ast.SpanSrcID(src.Macro), src.Text)
			}
		case ast.SpanSrcSugar:
			st.SugarSpan(src.File, ast.SpanSrcID(src.Macro), span.Start, span.End)
		default:
			return nil, fmt.Errorf("snapshot: unknown span source kind %d", src.Kind)
		}
	}

	d := &decoder{
		st:            st,
		exprRecs:      make(map[uint32]*ExprRec, len(p.Exprs)),
		itemRecs:      make(map[uint32]*ItemRec, len(p.Items)),
		exprs:         make(map[uint32]ast.ExprKind),
		items:         make(map[uint32]ast.ItemKind),
		buildingExprs: make(map[uint32]bool),
		buildingItems: make(map[uint32]bool),
	}
	for i := range p.Exprs {
		d.exprRecs[p.Exprs[i].ID] = &p.Exprs[i]
	}
	for i := range p.Items {
		d.itemRecs[p.Items[i].ID] = &p.Items[i]
	}

	for id := range d.exprRecs {
		if _, err := d.expr(id); err != nil {
			return nil, err
		}
	}
	for id := range d.itemRecs {
		if _, err := d.item(id); err != nil {
			return nil, err
		}
	}

	for _, b := range p.Bodies {
		root, err := d.expr(b.Expr)
		if err != nil {
			return nil, err
		}
		st.RegisterBody(ast.NewBody(ast.BodyID(b.ID), ast.ItemID(b.Owner), root))
	}

	for _, id := range p.TopItems {
		item, err := d.item(id)
		if err != nil {
			return nil, err
		}
		st.AddTopLevel(item)
	}

	for path, ids := range p.TyPaths {
		defs := make([]ast.TyDefID, len(ids))
		for i, id := range ids {
			defs[i] = ast.TyDefID(id)
		}
		st.AddTyPath(path, defs...)
	}
	for id, rec := range p.ExprTys {
		ty := rec
		st.SetExprTy(ast.ExprID(id), decodeTy(&ty))
	}
	for id, target := range p.MethodTargets {
		st.SetMethodTarget(ast.ExprID(id), ast.ItemID(target))
	}
	return st, nil
}

type decoder struct {
	st       *memdriver.Store
	exprRecs map[uint32]*ExprRec
	itemRecs map[uint32]*ItemRec
	exprs    map[uint32]ast.ExprKind
	items    map[uint32]ast.ItemKind

	// IDs currently being built, to refuse self-referential records.
	buildingExprs map[uint32]bool
	buildingItems map[uint32]bool
}

func decodeIdent(rec IdentRec) ast.Ident {
	return ast.NewIdent(ast.SymbolID(rec.Sym), ast.SpanID(rec.Span))
}

func decodeIdents(recs []IdentRec) []ast.Ident {
	out := make([]ast.Ident, 0, len(recs))
	for _, rec := range recs {
		out = append(out, decodeIdent(rec))
	}
	return out
}

// kid resolves an optional child; zero means absent.
func (d *decoder) kid(id uint32) (ast.ExprKind, error) {
	if id == 0 {
		return ast.ExprKind{}, nil
	}
	return d.expr(id)
}

func (d *decoder) kids(ids []uint32) ([]ast.ExprKind, error) {
	out := make([]ast.ExprKind, 0, len(ids))
	for _, id := range ids {
		e, err := d.expr(id)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (d *decoder) expr(id uint32) (ast.ExprKind, error) {
	if e, ok := d.exprs[id]; ok {
		return e, nil
	}
	rec, ok := d.exprRecs[id]
	if !ok {
		return ast.ExprKind{}, fmt.Errorf("snapshot: dangling expression id %d", id)
	}
	if d.buildingExprs[id] {
		return ast.ExprKind{}, fmt.Errorf("snapshot: expression %d is its own descendant", id)
	}
	d.buildingExprs[id] = true
	e, err := d.buildExpr(rec)
	delete(d.buildingExprs, id)
	if err != nil {
		return ast.ExprKind{}, err
	}
	d.exprs[id] = e
	d.st.RegisterExpr(e)
	return e, nil
}

// minKids is how many child slots a record must carry for its tag.
// Optional children still occupy a slot (zero when absent), so variadic
// tags count only their fixed prefix.
func minKids(tag ast.ExprTag) int {
	switch tag {
	case ast.ExprTagIf:
		return 3
	case ast.ExprTagBinaryOp, ast.ExprTagAssign, ast.ExprTagIndex, ast.ExprTagRange:
		return 2
	case ast.ExprTagClosure, ast.ExprTagUnaryOp, ast.ExprTagRef, ast.ExprTagCast,
		ast.ExprTagCall, ast.ExprTagMethod, ast.ExprTagField, ast.ExprTagMatch,
		ast.ExprTagReturn, ast.ExprTagBreak, ast.ExprTagAwait:
		return 1
	default:
		return 0
	}
}

func (d *decoder) buildExpr(rec *ExprRec) (ast.ExprKind, error) {
	if need := minKids(ast.ExprTag(rec.Tag)); len(rec.Kids) < need {
		return ast.ExprKind{}, fmt.Errorf("snapshot: expression %d carries %d child slot(s), tag %d needs %d",
			rec.ID, len(rec.Kids), rec.Tag, need)
	}
	data := ast.NewCommonExprData(ast.ExprID(rec.ID), ast.SpanID(rec.Span))
	switch ast.ExprTag(rec.Tag) {
	case ast.ExprTagIntLit:
		return ast.NewIntLitExpr(data, rec.IntVal).AsExpr(), nil
	case ast.ExprTagFloatLit:
		return ast.NewFloatLitExpr(data, rec.FloatVal).AsExpr(), nil
	case ast.ExprTagStrLit:
		return ast.NewStrLitExpr(data, ast.SymbolID(rec.Sym)).AsExpr(), nil
	case ast.ExprTagCharLit:
		return ast.NewCharLitExpr(data, rune(rec.CharVal)).AsExpr(), nil
	case ast.ExprTagBoolLit:
		return ast.NewBoolLitExpr(data, rec.BoolVal).AsExpr(), nil
	case ast.ExprTagBlock:
		stmts, err := d.kids(rec.Kids)
		if err != nil {
			return ast.ExprKind{}, err
		}
		return ast.NewBlockExpr(data, stmts).AsExpr(), nil
	case ast.ExprTagClosure:
		body, err := d.kid(rec.Kids[0])
		if err != nil {
			return ast.ExprKind{}, err
		}
		return ast.NewClosureExpr(data, decodeIdents(rec.Idents), body).AsExpr(), nil
	case ast.ExprTagUnaryOp:
		operand, err := d.kid(rec.Kids[0])
		if err != nil {
			return ast.ExprKind{}, err
		}
		return ast.NewUnaryOpExpr(data, ast.UnaryOpKind(rec.Op), operand).AsExpr(), nil
	case ast.ExprTagRef:
		inner, err := d.kid(rec.Kids[0])
		if err != nil {
			return ast.ExprKind{}, err
		}
		return ast.NewRefExpr(data, ast.Mutability(rec.Mut), inner).AsExpr(), nil
	case ast.ExprTagBinaryOp:
		left, err := d.kid(rec.Kids[0])
		if err != nil {
			return ast.ExprKind{}, err
		}
		right, err := d.kid(rec.Kids[1])
		if err != nil {
			return ast.ExprKind{}, err
		}
		return ast.NewBinaryOpExpr(data, ast.BinaryOpKind(rec.Op), left, right).AsExpr(), nil
	case ast.ExprTagAssign:
		place, err := d.kid(rec.Kids[0])
		if err != nil {
			return ast.ExprKind{}, err
		}
		value, err := d.kid(rec.Kids[1])
		if err != nil {
			return ast.ExprKind{}, err
		}
		if rec.Compound {
			return ast.NewCompoundAssignExpr(data, ast.BinaryOpKind(rec.Op), place, value).AsExpr(), nil
		}
		return ast.NewAssignExpr(data, place, value).AsExpr(), nil
	case ast.ExprTagCast:
		inner, err := d.kid(rec.Kids[0])
		if err != nil {
			return ast.ExprKind{}, err
		}
		return ast.NewCastExpr(data, inner, decodeTy(rec.Ty)).AsExpr(), nil
	case ast.ExprTagPath:
		return ast.NewPathExpr(data, decodeIdents(rec.Idents)).AsExpr(), nil
	case ast.ExprTagCall:
		callee, err := d.kid(rec.Kids[0])
		if err != nil {
			return ast.ExprKind{}, err
		}
		args, err := d.kids(rec.Kids[1:])
		if err != nil {
			return ast.ExprKind{}, err
		}
		return ast.NewCallExpr(data, callee, args).AsExpr(), nil
	case ast.ExprTagMethod:
		receiver, err := d.kid(rec.Kids[0])
		if err != nil {
			return ast.ExprKind{}, err
		}
		args, err := d.kids(rec.Kids[1:])
		if err != nil {
			return ast.ExprKind{}, err
		}
		return ast.NewMethodExpr(data, receiver, decodeIdent(rec.Ident), args).AsExpr(), nil
	case ast.ExprTagIndex:
		target, err := d.kid(rec.Kids[0])
		if err != nil {
			return ast.ExprKind{}, err
		}
		index, err := d.kid(rec.Kids[1])
		if err != nil {
			return ast.ExprKind{}, err
		}
		return ast.NewIndexExpr(data, target, index).AsExpr(), nil
	case ast.ExprTagField:
		target, err := d.kid(rec.Kids[0])
		if err != nil {
			return ast.ExprKind{}, err
		}
		return ast.NewFieldExpr(data, target, decodeIdent(rec.Ident)).AsExpr(), nil
	case ast.ExprTagArray:
		elems, err := d.kids(rec.Kids)
		if err != nil {
			return ast.ExprKind{}, err
		}
		return ast.NewArrayExpr(data, elems).AsExpr(), nil
	case ast.ExprTagTuple:
		elems, err := d.kids(rec.Kids)
		if err != nil {
			return ast.ExprKind{}, err
		}
		return ast.NewTupleExpr(data, elems).AsExpr(), nil
	case ast.ExprTagCtor:
		pathLen := int(rec.IntVal)
		if pathLen > len(rec.Idents) {
			return ast.ExprKind{}, fmt.Errorf("snapshot: ctor %d path length %d out of range", rec.ID, pathLen)
		}
		path := decodeIdents(rec.Idents[:pathLen])
		names := rec.Idents[pathLen:]
		if len(names) != len(rec.Kids) {
			return ast.ExprKind{}, fmt.Errorf("snapshot: ctor %d field name/value mismatch", rec.ID)
		}
		fields := make([]ast.CtorField, 0, len(rec.Kids))
		for i, valueID := range rec.Kids {
			value, err := d.expr(valueID)
			if err != nil {
				return ast.ExprKind{}, err
			}
			fields = append(fields, ast.CtorField{Name: decodeIdent(names[i]), Value: value})
		}
		return ast.NewCtorExpr(data, path, fields).AsExpr(), nil
	case ast.ExprTagRange:
		start, err := d.kid(rec.Kids[0])
		if err != nil {
			return ast.ExprKind{}, err
		}
		end, err := d.kid(rec.Kids[1])
		if err != nil {
			return ast.ExprKind{}, err
		}
		return ast.NewRangeExpr(data, start, end, rec.Inclusive).AsExpr(), nil
	case ast.ExprTagIf:
		cond, err := d.kid(rec.Kids[0])
		if err != nil {
			return ast.ExprKind{}, err
		}
		then, err := d.kid(rec.Kids[1])
		if err != nil {
			return ast.ExprKind{}, err
		}
		els, err := d.kid(rec.Kids[2])
		if err != nil {
			return ast.ExprKind{}, err
		}
		return ast.NewIfExpr(data, cond, then, els).AsExpr(), nil
	case ast.ExprTagMatch:
		scrutinee, err := d.kid(rec.Kids[0])
		if err != nil {
			return ast.ExprKind{}, err
		}
		rest := rec.Kids[1:]
		if len(rest)%2 != 0 {
			return ast.ExprKind{}, fmt.Errorf("snapshot: match %d has a half arm", rec.ID)
		}
		arms := make([]ast.MatchArm, 0, len(rest)/2)
		for i := 0; i < len(rest); i += 2 {
			guard, err := d.kid(rest[i])
			if err != nil {
				return ast.ExprKind{}, err
			}
			body, err := d.kid(rest[i+1])
			if err != nil {
				return ast.ExprKind{}, err
			}
			arms = append(arms, ast.MatchArm{Guard: guard, Body: body})
		}
		return ast.NewMatchExpr(data, scrutinee, arms).AsExpr(), nil
	case ast.ExprTagReturn:
		value, err := d.kid(rec.Kids[0])
		if err != nil {
			return ast.ExprKind{}, err
		}
		return ast.NewReturnExpr(data, value).AsExpr(), nil
	case ast.ExprTagBreak:
		value, err := d.kid(rec.Kids[0])
		if err != nil {
			return ast.ExprKind{}, err
		}
		return ast.NewBreakExpr(data, value).AsExpr(), nil
	case ast.ExprTagContinue:
		return ast.NewContinueExpr(data).AsExpr(), nil
	case ast.ExprTagAwait:
		inner, err := d.kid(rec.Kids[0])
		if err != nil {
			return ast.ExprKind{}, err
		}
		return ast.NewAwaitExpr(data, inner).AsExpr(), nil
	case ast.ExprTagUnstable:
		return ast.NewUnstableExpr(data, ast.Precedence(rec.Prec)).AsExpr(), nil
	default:
		return ast.ExprKind{}, fmt.Errorf("snapshot: unknown expression tag %d", rec.Tag)
	}
}

func (d *decoder) item(id uint32) (ast.ItemKind, error) {
	if item, ok := d.items[id]; ok {
		return item, nil
	}
	rec, ok := d.itemRecs[id]
	if !ok {
		return ast.ItemKind{}, fmt.Errorf("snapshot: dangling item id %d", id)
	}
	if d.buildingItems[id] {
		return ast.ItemKind{}, fmt.Errorf("snapshot: item %d is its own descendant", id)
	}
	d.buildingItems[id] = true
	item, err := d.buildItem(rec)
	delete(d.buildingItems, id)
	if err != nil {
		return ast.ItemKind{}, err
	}
	d.items[id] = item
	d.st.RegisterItem(item)
	return item, nil
}

func (d *decoder) buildItem(rec *ItemRec) (ast.ItemKind, error) {
	data := ast.NewCommonItemData(ast.ItemID(rec.ID), ast.SpanID(rec.Span), decodeIdent(rec.Ident))
	switch ast.ItemTag(rec.Tag) {
	case ast.ItemTagMod:
		children := make([]ast.ItemKind, 0, len(rec.Children))
		for _, childID := range rec.Children {
			child, err := d.item(childID)
			if err != nil {
				return ast.ItemKind{}, err
			}
			children = append(children, child)
		}
		return ast.NewModItem(data, children).AsItem(), nil
	case ast.ItemTagExternCrate:
		return ast.NewExternCrateItem(data).AsItem(), nil
	case ast.ItemTagUseDecl:
		return ast.NewUseDeclItem(data, decodeIdents(rec.Path), rec.Glob).AsItem(), nil
	case ast.ItemTagStatic:
		return ast.NewStaticItem(data, ast.Mutability(rec.Mut), ast.BodyID(rec.Body)).AsItem(), nil
	case ast.ItemTagConst:
		return ast.NewConstItem(data, ast.BodyID(rec.Body)).AsItem(), nil
	case ast.ItemTagFn:
		return ast.NewFnItem(data, decodeIdents(rec.Path), ast.BodyID(rec.Body)).AsItem(), nil
	default:
		return ast.ItemKind{}, fmt.Errorf("snapshot: unknown item tag %d", rec.Tag)
	}
}
