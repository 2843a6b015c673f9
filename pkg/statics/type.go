package statics

import (
	"fmt"

	"github.com/lacuna-lang/lacuna/pkg/syntax"
	"github.com/lacuna-lang/lacuna/pkg/typ"
)

// typAnn elaborates a surface type, recording an entry per node. No mode
// applies to types; they are always synthesized.
func (c *checker) typAnn(ctx typ.Ctx, ann syntax.TypAnn) typ.Typ {
	switch ann := ann.(type) {
	case syntax.HoleType:
		return c.recordTyp(ann, ctx, unknown(), nil)

	case syntax.MultiHoleType:
		for _, part := range ann.Parts {
			c.anyPart(ctx, part)
		}
		return c.recordTyp(ann, ctx, unknown(), nil)

	case syntax.InvalidType:
		c.add(InvalidInfo{Node: ann, Text: ann.Text, Ctx: ctx})
		return unknown()

	case syntax.NamedType:
		ty, err := resolveTypeName(ctx, ann.Name)
		return c.recordTyp(ann, ctx, ty, err)

	case syntax.ArrowType:
		from := c.typAnn(ctx, ann.From)
		to := c.typAnn(ctx, ann.To)
		return c.recordTyp(ann, ctx, typ.Arrow{From: from, To: to}, nil)

	case syntax.TupleType:
		elems := make([]typ.Typ, len(ann.Items))
		for i, item := range ann.Items {
			elems[i] = c.typAnn(ctx, item)
		}
		return c.recordTyp(ann, ctx, typ.Prod{Elems: elems}, nil)

	case syntax.ListType:
		return c.recordTyp(ann, ctx, typ.List{Elem: c.typAnn(ctx, ann.Elem)}, nil)

	case syntax.SumType:
		variants := make([]typ.Variant, len(ann.Variants))
		for i, v := range ann.Variants {
			variants[i] = typ.Variant{Tag: v.Tag}
			if v.Arg != nil {
				variants[i].Arg = c.typAnn(ctx, v.Arg)
			}
		}
		sum := typ.Sum{Variants: variants}
		for i, v := range ann.Variants {
			ty := typ.Typ(sum)
			if variants[i].Arg != nil {
				ty = typ.Arrow{From: variants[i].Arg, To: sum}
			}
			c.add(VariantInfo{Variant: v, Ctx: ctx, Ty: ty})
		}
		return c.recordTyp(ann, ctx, sum, nil)
	}
	panic(fmt.Sprintf("unhandled type form %T", ann))
}

func (c *checker) recordTyp(ann syntax.TypAnn, ctx typ.Ctx, ty typ.Typ, err Err) typ.Typ {
	c.add(TypInfo{Ann: ann, Ctx: ctx, Ty: ty, Err: err})
	return ty
}

// tPat records the statics of an alias binder.
func (c *checker) tPat(ctx typ.Ctx, tp syntax.TPat) {
	if inv, ok := tp.(syntax.InvalidTPat); ok {
		c.add(InvalidInfo{Node: inv, Text: inv.Text, Ctx: ctx})
		return
	}
	c.add(TPatInfo{TPat: tp, Ctx: ctx})
}

// aliasName extracts the name an alias binder introduces. Binders that are
// holes, invalid, or would shadow a primitive type name bind nothing.
func aliasName(tp syntax.TPat) (string, bool) {
	v, ok := tp.(syntax.VarTPat)
	if !ok {
		return "", false
	}
	if _, isPrim := primType(v.Name); isPrim {
		return "", false
	}
	return v.Name, true
}

// resolveTypeName maps a surface type name to its semantic type: the
// primitive names first, then type variables in scope (the built-in
// algebraic types enter through the initial context). An unknown name
// elaborates to the gradual unknown and reports a free type variable.
func resolveTypeName(ctx typ.Ctx, name string) (typ.Typ, Err) {
	if prim, ok := primType(name); ok {
		return prim, nil
	}
	if _, ok := ctx.LookupTVar(name); ok {
		return typ.Var{Name: name}, nil
	}
	return unknown(), FreeErr{Kind: typ.FreeTypeVariable}
}

func primType(name string) (typ.Prim, bool) {
	switch name {
	case "Int":
		return typ.Int, true
	case "Float":
		return typ.Float, true
	case "Bool":
		return typ.Bool, true
	case "String":
		return typ.String, true
	}
	return "", false
}
