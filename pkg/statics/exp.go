package statics

import (
	"fmt"

	"github.com/lacuna-lang/lacuna/pkg/syntax"
	"github.com/lacuna-lang/lacuna/pkg/typ"
)

// exp traverses one expression under mode, recording statics for it and
// everything beneath it, and returns its fixed type and free-variable
// uses.
func (c *checker) exp(ctx typ.Ctx, mode typ.Mode, e syntax.Exp) (typ.Typ, typ.CoCtx) {
	switch e := e.(type) {
	case syntax.EmptyHole:
		return c.recordExp(e, ctx, mode, typ.Just(unknown()), nil), nil

	case syntax.Invalid:
		c.add(InvalidInfo{Node: e, Text: e.Text, Ctx: ctx})
		return unknown(), nil

	case syntax.MultiHole:
		cos := make([]typ.CoCtx, 0, len(e.Parts))
		for _, part := range e.Parts {
			cos = append(cos, c.anyPart(ctx, part))
		}
		free := typ.Union(cos...)
		return c.recordExp(e, ctx, mode, typ.Multi, free), free

	case syntax.Bool:
		return c.recordExp(e, ctx, mode, typ.Just(typ.Bool), nil), nil

	case syntax.Int:
		return c.recordExp(e, ctx, mode, typ.Just(typ.Int), nil), nil

	case syntax.Float:
		return c.recordExp(e, ctx, mode, typ.Just(typ.Float), nil), nil

	case syntax.String:
		return c.recordExp(e, ctx, mode, typ.Just(typ.String), nil), nil

	case syntax.Var:
		entry, ok := ctx.LookupVar(e.Name)
		if !ok {
			return c.recordExp(e, ctx, mode, typ.Free(typ.FreeVariable), nil), nil
		}
		free := typ.UseOf(e.Name, typ.Use{ID: syntax.PrimaryID(e), Mode: mode})
		return c.recordExp(e, ctx, mode, typ.Just(entry.Typ), free), free

	case syntax.Tag:
		entry, ok := ctx.LookupTag(e.Name)
		if !ok {
			return c.recordExp(e, ctx, mode, typ.Free(typ.FreeTag), nil), nil
		}
		return c.recordExp(e, ctx, mode, typ.Just(entry.Typ), nil), nil

	case syntax.ListLit:
		elemMode := typ.MatchedListMode(ctx, mode)
		sources := make([]typ.Source, len(e.Items))
		cos := make([]typ.CoCtx, len(e.Items))
		for i, item := range e.Items {
			ty, co := c.exp(ctx, elemMode, item)
			sources[i] = typ.Source{ID: syntax.PrimaryID(item), Typ: ty}
			cos[i] = co
		}
		free := typ.Union(cos...)
		return c.recordExp(e, ctx, mode, typ.Joined(typ.WrapList, sources), free), free

	case syntax.Tuple:
		modes := typ.MatchedProdMode(ctx, mode, len(e.Items))
		elems := make([]typ.Typ, len(e.Items))
		cos := make([]typ.CoCtx, len(e.Items))
		for i, item := range e.Items {
			elems[i], cos[i] = c.exp(ctx, modes[i], item)
		}
		free := typ.Union(cos...)
		return c.recordExp(e, ctx, mode, typ.Just(typ.Prod{Elems: elems}), free), free

	case syntax.Cons:
		headTy, headCo := c.exp(ctx, typ.MatchedListMode(ctx, mode), e.Head)
		_, tailCo := c.exp(ctx, typ.Ana(typ.List{Elem: headTy}), e.Tail)
		free := typ.Union(headCo, tailCo)
		return c.recordExp(e, ctx, mode, typ.Just(typ.List{Elem: headTy}), free), free

	case syntax.Fun:
		paramMode, bodyMode := typ.MatchedArrowMode(ctx, mode)
		paramTy, bodyCtx := c.pat(ctx, paramMode, e.Param)
		bodyTy, bodyCo := c.exp(bodyCtx, bodyMode, e.Body)
		free := bodyCo.Without(boundVarNames(bodyCtx.BindingsSince(ctx))...)
		self := typ.Just(typ.Arrow{From: paramTy, To: bodyTy})
		return c.recordExp(e, ctx, mode, self, free), free

	case syntax.Ap:
		fnTy, fnCo := c.exp(ctx, typ.SynFun, e.Fn)
		in, out := typ.MatchedArrow(ctx, fnTy)
		_, argCo := c.exp(ctx, typ.Ana(in), e.Arg)
		free := typ.Union(fnCo, argCo)
		return c.recordExp(e, ctx, mode, typ.Just(out), free), free

	case syntax.Let:
		return c.let(ctx, mode, e)

	case syntax.TypeAlias:
		return c.typeAlias(ctx, mode, e)

	case syntax.If:
		_, condCo := c.exp(ctx, typ.Ana(typ.Bool), e.Cond)
		thenTy, thenCo := c.exp(ctx, mode, e.Then)
		elseTy, elseCo := c.exp(ctx, mode, e.Else)
		self := typ.Joined(typ.NoWrap, []typ.Source{
			{ID: syntax.PrimaryID(e.Then), Typ: thenTy},
			{ID: syntax.PrimaryID(e.Else), Typ: elseTy},
		})
		free := typ.Union(condCo, thenCo, elseCo)
		return c.recordExp(e, ctx, mode, self, free), free

	case syntax.Seq:
		_, firstCo := c.exp(ctx, typ.Syn, e.First)
		secondTy, secondCo := c.exp(ctx, mode, e.Second)
		free := typ.Union(firstCo, secondCo)
		return c.recordExp(e, ctx, mode, typ.Just(secondTy), free), free

	case syntax.Test:
		_, bodyCo := c.exp(ctx, typ.Ana(typ.Bool), e.Body)
		return c.recordExp(e, ctx, mode, typ.Just(typ.Unit()), bodyCo), bodyCo

	case syntax.BinOp:
		operand, result := binOpTypes(e.Op)
		_, leftCo := c.exp(ctx, typ.Ana(operand), e.Left)
		_, rightCo := c.exp(ctx, typ.Ana(operand), e.Right)
		free := typ.Union(leftCo, rightCo)
		return c.recordExp(e, ctx, mode, typ.Just(result), free), free

	case syntax.UnOp:
		operand, result := unOpTypes(e.Op)
		_, co := c.exp(ctx, typ.Ana(operand), e.Operand)
		return c.recordExp(e, ctx, mode, typ.Just(result), co), co

	case syntax.Match:
		scrutTy, scrutCo := c.exp(ctx, typ.Syn, e.Scrutinee)
		sources := make([]typ.Source, len(e.Rules))
		cos := []typ.CoCtx{scrutCo}
		for i, r := range e.Rules {
			// each rule forks the outer context; rules do not see each
			// other's bindings
			_, ruleCtx := c.pat(ctx, typ.Ana(scrutTy), r.Pat)
			bodyTy, bodyCo := c.exp(ruleCtx, mode, r.Body)
			c.add(RulInfo{Rule: r, Ctx: ruleCtx, Scrutinee: scrutTy})
			sources[i] = typ.Source{ID: syntax.PrimaryID(r), Typ: bodyTy}
			cos = append(cos, bodyCo.Without(boundVarNames(ruleCtx.BindingsSince(ctx))...))
		}
		free := typ.Union(cos...)
		return c.recordExp(e, ctx, mode, typ.Joined(typ.NoWrap, sources), free), free
	}
	panic(fmt.Sprintf("unhandled expression form %T", e))
}

// let runs the two-pass pattern and definition dance: the pattern is
// traversed under synthesis for a provisional type, the definition is
// checked against that, and the pattern is re-traversed against the
// definition's actual type so the body sees refined bindings.
func (c *checker) let(ctx typ.Ctx, mode typ.Mode, e syntax.Let) (typ.Typ, typ.CoCtx) {
	patSynTy, patCtx := c.pat(ctx, typ.Syn, e.Pat)
	defCtx := ctx
	recursive := isRecursive(e.Pat, e.Def)
	if recursive {
		// the definition sees the pattern's own bindings, so a function
		// can call itself without a separate fixpoint form
		defCtx = patCtx
	}
	defTy, defCo := c.exp(defCtx, typ.Ana(patSynTy), e.Def)
	_, bodyCtx := c.pat(ctx, typ.Ana(defTy), e.Pat)
	bodyTy, bodyCo := c.exp(bodyCtx, mode, e.Body)

	bound := boundVarNames(bodyCtx.BindingsSince(ctx))
	if recursive {
		defCo = defCo.Without(bound...)
	}
	free := typ.Union(defCo, bodyCo.Without(bound...))
	return c.recordExp(e, ctx, mode, typ.Just(bodyTy), free), free
}

// isRecursive reports whether a let definition may refer to its own
// binding: a variable (possibly arrow-annotated) bound directly to a
// function literal, or a tuple of such bindings matched pairwise against a
// tuple of function literals.
func isRecursive(p syntax.Pat, def syntax.Exp) bool {
	switch p := p.(type) {
	case syntax.VarPat:
		_, ok := def.(syntax.Fun)
		return ok
	case syntax.AnnPat:
		if _, ok := p.Pat.(syntax.VarPat); !ok {
			return false
		}
		_, ok := def.(syntax.Fun)
		return ok
	case syntax.TuplePat:
		tuple, ok := def.(syntax.Tuple)
		if !ok || len(tuple.Items) != len(p.Items) || len(p.Items) == 0 {
			return false
		}
		for i, sub := range p.Items {
			if !isRecursive(sub, tuple.Items[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// typeAlias introduces a named type for its body. An alias name occurring
// in its own definition makes the definition a recursive type.
func (c *checker) typeAlias(ctx typ.Ctx, mode typ.Mode, e syntax.TypeAlias) (typ.Typ, typ.CoCtx) {
	c.tPat(ctx, e.Pat)

	name, named := aliasName(e.Pat)
	if !named {
		// no usable binder: the definition is still elaborated for its
		// records, but nothing enters scope
		c.typAnn(ctx, e.Def)
		bodyTy, bodyCo := c.exp(ctx, mode, e.Body)
		return c.recordExp(e, ctx, mode, typ.Just(bodyTy), bodyCo), bodyCo
	}

	// elaborate the definition with the name bound abstract; if the name
	// occurs in the result, the alias is recursive
	tpatID := syntax.PrimaryID(e.Pat)
	openCtx := ctx.Extend(typ.TVarEntry{Name: name, ID: tpatID})
	openTy := c.typAnn(openCtx, e.Def)

	defTy := openTy
	recursive := typ.VarOccurs(openTy, name)
	if recursive {
		defTy = typ.Rec{Name: name, Body: openTy}
	}

	aliasCtx := ctx.Extend(typ.TVarEntry{Name: name, ID: tpatID, Alias: defTy})

	// the definition's final records carry the context its types resolve
	// under: the aliased context when recursive, the outer one otherwise
	if recursive {
		c.typAnn(aliasCtx, e.Def)
	} else {
		c.typAnn(ctx, e.Def)
	}

	bodyCtx := registerTags(aliasCtx, name, syntax.PrimaryID(e.Def), defTy)
	bodyTy, bodyCo := c.exp(bodyCtx, mode, e.Body)

	// the alias must not escape its scope: occurrences in the body's type
	// are replaced by the definition
	selfTy := typ.Subst(bodyTy, name, defTy)
	return c.recordExp(e, ctx, mode, typ.Just(selfTy), bodyCo), bodyCo
}

// registerTags binds the constructors of a sum alias into ctx. Registered
// constructor types name the alias: a payload constructor for alias T is
// Arrow(arg, Var(T)). Non-sum aliases register nothing.
func registerTags(ctx typ.Ctx, name string, defID syntax.ID, defTy typ.Typ) typ.Ctx {
	head := typ.HeadNormal(ctx, defTy)
	if r, ok := head.(typ.Rec); ok {
		head = r.Unroll()
	}
	sum, ok := head.(typ.Sum)
	if !ok {
		return ctx
	}
	for _, v := range sum.Variants {
		entry := typ.TagEntry{Name: v.Tag, ID: defID, Typ: typ.Var{Name: name}}
		if v.Arg != nil {
			entry.Typ = typ.Arrow{From: v.Arg, To: typ.Var{Name: name}}
		}
		ctx = ctx.Extend(entry)
	}
	return ctx
}

// binOpTypes fixes the operand and result types of a binary operator
// family. Comparison operators yield Bool; arithmetic keeps its numeric
// type. An operator outside every family leaves both unconstrained.
func binOpTypes(op syntax.Op) (operand, result typ.Typ) {
	switch op {
	case syntax.OpAnd, syntax.OpOr:
		return typ.Bool, typ.Bool
	case syntax.OpIntPlus, syntax.OpIntMinus, syntax.OpIntTimes, syntax.OpIntDivide:
		return typ.Int, typ.Int
	case syntax.OpIntLess, syntax.OpIntLessEq, syntax.OpIntGreater, syntax.OpIntGreaterEq,
		syntax.OpIntEq, syntax.OpIntNotEq:
		return typ.Int, typ.Bool
	case syntax.OpFloatPlus, syntax.OpFloatMinus, syntax.OpFloatTimes, syntax.OpFloatDivide:
		return typ.Float, typ.Float
	case syntax.OpFloatLess, syntax.OpFloatLessEq, syntax.OpFloatGreater, syntax.OpFloatGreaterEq,
		syntax.OpFloatEq, syntax.OpFloatNotEq:
		return typ.Float, typ.Bool
	case syntax.OpStringConcat:
		return typ.String, typ.String
	case syntax.OpStringEq:
		return typ.String, typ.Bool
	}
	return unknown(), unknown()
}

func unOpTypes(op syntax.Op) (operand, result typ.Typ) {
	switch op {
	case syntax.OpNot:
		return typ.Bool, typ.Bool
	case syntax.OpIntNeg:
		return typ.Int, typ.Int
	}
	return unknown(), unknown()
}
