// Package adapter drives lint passes over a crate. It owns the single
// traversal a session performs: every node is visited once, in document
// order, and each pass's matching hooks fire from that one walk.
package adapter

import (
	"lintwire/ast"
	"lintwire/lint"
	"lintwire/pass"
	"lintwire/session"
)

// Runner holds the installed passes for one analysis run. Passes are
// invoked in installation order at every node.
type Runner struct {
	passes []pass.LintPass
}

// NewRunner creates a runner over the given passes.
func NewRunner(passes ...pass.LintPass) *Runner {
	return &Runner{passes: passes}
}

// Lints collects the registered lints of every installed pass, in
// installation order. Hosts use this before the first session to set up
// level tables.
func (r *Runner) Lints() []*lint.Lint {
	var all []*lint.Lint
	for _, p := range r.passes {
		all = append(all, p.RegisteredLints()...)
	}
	return all
}

// Run performs one session: it activates cx for the node accessors,
// walks the crate once, and deactivates afterward even if a pass
// panics.
func (r *Runner) Run(cx *session.Context, crate *ast.Crate) {
	deactivate := session.Activate(cx)
	defer deactivate()
	for _, item := range crate.Items() {
		r.walkItem(cx, item)
	}
}

// walkItem fires the generic item hook, then the kind-specific hook,
// then descends into whatever the item contains.
func (r *Runner) walkItem(cx *session.Context, item ast.ItemKind) {
	if !item.IsValid() {
		return
	}
	for _, p := range r.passes {
		p.CheckItem(cx, item)
	}
	switch item.Tag() {
	case ast.ItemTagMod:
		mod, _ := item.AsMod()
		for _, p := range r.passes {
			p.CheckMod(cx, mod)
		}
		for _, child := range mod.Items() {
			r.walkItem(cx, child)
		}
	case ast.ItemTagExternCrate:
		ext, _ := item.AsExternCrate()
		for _, p := range r.passes {
			p.CheckExternCrate(cx, ext)
		}
	case ast.ItemTagUseDecl:
		use, _ := item.AsUseDecl()
		for _, p := range r.passes {
			p.CheckUseDecl(cx, use)
		}
	case ast.ItemTagStatic:
		st, _ := item.AsStatic()
		for _, p := range r.passes {
			p.CheckStatic(cx, st)
		}
		r.walkBody(cx, st.BodyID())
	case ast.ItemTagConst:
		c, _ := item.AsConst()
		for _, p := range r.passes {
			p.CheckConst(cx, c)
		}
		r.walkBody(cx, c.BodyID())
	case ast.ItemTagFn:
		fn, _ := item.AsFn()
		for _, p := range r.passes {
			p.CheckFn(cx, fn)
		}
		r.walkBody(cx, fn.BodyID())
	}
}

func (r *Runner) walkBody(cx *session.Context, id ast.BodyID) {
	if !id.IsValid() {
		return
	}
	body := cx.Body(id)
	if body == nil {
		return
	}
	for _, p := range r.passes {
		p.CheckBody(cx, body)
	}
	r.walkExpr(cx, body.Expr())
}

// walkExpr visits an expression and then its children, parents first.
func (r *Runner) walkExpr(cx *session.Context, expr ast.ExprKind) {
	if !expr.IsValid() {
		return
	}
	for _, p := range r.passes {
		p.CheckExpr(cx, expr)
	}
	for _, child := range childExprs(expr) {
		r.walkExpr(cx, child)
	}
}

// childExprs lists the direct subexpressions of expr in source order.
// Absent optional operands come back invalid and are skipped by the
// caller.
func childExprs(expr ast.ExprKind) []ast.ExprKind {
	switch expr.Tag() {
	case ast.ExprTagBlock:
		block, _ := expr.AsBlock()
		return block.Stmts()
	case ast.ExprTagClosure:
		cl, _ := expr.AsClosure()
		return []ast.ExprKind{cl.Body()}
	case ast.ExprTagUnaryOp:
		un, _ := expr.AsUnaryOp()
		return []ast.ExprKind{un.Operand()}
	case ast.ExprTagRef:
		ref, _ := expr.AsRef()
		return []ast.ExprKind{ref.Expr()}
	case ast.ExprTagBinaryOp:
		bin, _ := expr.AsBinaryOp()
		return []ast.ExprKind{bin.Left(), bin.Right()}
	case ast.ExprTagAssign:
		as, _ := expr.AsAssign()
		return []ast.ExprKind{as.Place(), as.Value()}
	case ast.ExprTagCast:
		cast, _ := expr.AsCast()
		return []ast.ExprKind{cast.Expr()}
	case ast.ExprTagCall:
		call, _ := expr.AsCall()
		return append([]ast.ExprKind{call.Callee()}, call.Args()...)
	case ast.ExprTagMethod:
		m, _ := expr.AsMethod()
		return append([]ast.ExprKind{m.Receiver()}, m.Args()...)
	case ast.ExprTagIndex:
		ix, _ := expr.AsIndex()
		return []ast.ExprKind{ix.Target(), ix.Index()}
	case ast.ExprTagField:
		f, _ := expr.AsField()
		return []ast.ExprKind{f.Target()}
	case ast.ExprTagArray:
		arr, _ := expr.AsArray()
		return arr.Elems()
	case ast.ExprTagTuple:
		tup, _ := expr.AsTuple()
		return tup.Elems()
	case ast.ExprTagCtor:
		ctor, _ := expr.AsCtor()
		children := make([]ast.ExprKind, 0, len(ctor.Fields()))
		for _, field := range ctor.Fields() {
			children = append(children, field.Value)
		}
		return children
	case ast.ExprTagRange:
		rng, _ := expr.AsRange()
		var children []ast.ExprKind
		if start, ok := rng.Start(); ok {
			children = append(children, start)
		}
		if end, ok := rng.End(); ok {
			children = append(children, end)
		}
		return children
	case ast.ExprTagIf:
		ifx, _ := expr.AsIf()
		children := []ast.ExprKind{ifx.Cond(), ifx.Then()}
		if els, ok := ifx.Else(); ok {
			children = append(children, els)
		}
		return children
	case ast.ExprTagMatch:
		m, _ := expr.AsMatch()
		children := []ast.ExprKind{m.Scrutinee()}
		for _, arm := range m.Arms() {
			if arm.Guard.IsValid() {
				children = append(children, arm.Guard)
			}
			children = append(children, arm.Body)
		}
		return children
	case ast.ExprTagReturn:
		ret, _ := expr.AsReturn()
		if v, ok := ret.Value(); ok {
			return []ast.ExprKind{v}
		}
		return nil
	case ast.ExprTagBreak:
		br, _ := expr.AsBreak()
		if v, ok := br.Value(); ok {
			return []ast.ExprKind{v}
		}
		return nil
	case ast.ExprTagAwait:
		aw, _ := expr.AsAwait()
		return []ast.ExprKind{aw.Expr()}
	default:
		// Literals, paths, continue and unstable nodes are leaves.
		return nil
	}
}
