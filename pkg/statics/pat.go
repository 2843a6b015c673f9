package statics

import (
	"fmt"

	"github.com/lacuna-lang/lacuna/pkg/syntax"
	"github.com/lacuna-lang/lacuna/pkg/typ"
)

// pat traverses one pattern under mode, recording statics for it and
// everything beneath it, and returns its fixed type together with the
// context extended by its bindings. The context threads left to right: a
// name bound twice in one pattern resolves to its rightmost binding.
func (c *checker) pat(ctx typ.Ctx, mode typ.Mode, p syntax.Pat) (typ.Typ, typ.Ctx) {
	switch p := p.(type) {
	case syntax.HolePat:
		return c.recordPat(p, ctx, mode, typ.Just(unknown())), ctx

	case syntax.MultiHolePat:
		for _, part := range p.Parts {
			c.anyPart(ctx, part)
		}
		return c.recordPat(p, ctx, mode, typ.Multi), ctx

	case syntax.InvalidPat:
		c.add(InvalidInfo{Node: p, Text: p.Text, Ctx: ctx})
		return unknown(), ctx

	case syntax.WildPat:
		// anonymous binding: typed by its surroundings, like a variable
		return c.recordPat(p, ctx, mode, typ.Just(typ.Unknown{Prov: typ.SynSwitch})), ctx

	case syntax.VarPat:
		// a fresh binding's type is determined externally, so the self is
		// the mode-switch unknown; the binding enters at the fixed type
		fixed := c.recordPat(p, ctx, mode, typ.Just(typ.Unknown{Prov: typ.SynSwitch}))
		entry := typ.VarEntry{Name: p.Name, ID: syntax.PrimaryID(p), Typ: fixed}
		return fixed, ctx.Extend(entry)

	case syntax.IntPat:
		return c.recordPat(p, ctx, mode, typ.Just(typ.Int)), ctx

	case syntax.FloatPat:
		return c.recordPat(p, ctx, mode, typ.Just(typ.Float)), ctx

	case syntax.BoolPat:
		return c.recordPat(p, ctx, mode, typ.Just(typ.Bool)), ctx

	case syntax.StringPat:
		return c.recordPat(p, ctx, mode, typ.Just(typ.String)), ctx

	case syntax.TuplePat:
		modes := typ.MatchedProdMode(ctx, mode, len(p.Items))
		elems := make([]typ.Typ, len(p.Items))
		cur := ctx
		for i, item := range p.Items {
			elems[i], cur = c.pat(cur, modes[i], item)
		}
		return c.recordPat(p, ctx, mode, typ.Just(typ.Prod{Elems: elems})), cur

	case syntax.ListPat:
		elemMode := typ.MatchedListMode(ctx, mode)
		sources := make([]typ.Source, len(p.Items))
		cur := ctx
		for i, item := range p.Items {
			ty, next := c.pat(cur, elemMode, item)
			sources[i] = typ.Source{ID: syntax.PrimaryID(item), Typ: ty}
			cur = next
		}
		return c.recordPat(p, ctx, mode, typ.Joined(typ.WrapList, sources)), cur

	case syntax.ConsPat:
		headTy, headCtx := c.pat(ctx, typ.MatchedListMode(ctx, mode), p.Head)
		_, tailCtx := c.pat(headCtx, typ.Ana(typ.List{Elem: headTy}), p.Tail)
		return c.recordPat(p, ctx, mode, typ.Just(typ.List{Elem: headTy})), tailCtx

	case syntax.AnnPat:
		annTy := c.typAnn(ctx, p.Ann)
		_, innerCtx := c.pat(ctx, typ.Ana(annTy), p.Pat)
		return c.recordPat(p, ctx, mode, typ.Just(annTy)), innerCtx

	case syntax.TagPat:
		entry, ok := ctx.LookupTag(p.Name)
		if !ok {
			return c.recordPat(p, ctx, mode, typ.Free(typ.FreeTag)), ctx
		}
		return c.recordPat(p, ctx, mode, typ.Just(entry.Typ)), ctx

	case syntax.ApPat:
		fnTy, fnCtx := c.pat(ctx, typ.SynFun, p.Fn)
		in, out := typ.MatchedArrow(ctx, fnTy)
		_, argCtx := c.pat(fnCtx, typ.Ana(in), p.Arg)
		return c.recordPat(p, ctx, mode, typ.Just(out)), argCtx
	}
	panic(fmt.Sprintf("unhandled pattern form %T", p))
}
