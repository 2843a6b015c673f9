package statics

import "github.com/lacuna-lang/lacuna/pkg/typ"

// Builtins returns the context every checked program starts from: float
// and integer constants, conversions between the primitive types, and the
// Order comparison sum. Built-in entries carry no origin id; nothing in a
// term introduced them.
func Builtins() typ.Ctx {
	var ctx typ.Ctx

	orderSum := typ.Sum{Variants: []typ.Variant{
		{Tag: "Less"},
		{Tag: "Equal"},
		{Tag: "Greater"},
	}}
	ctx = ctx.Extend(typ.TVarEntry{Name: "Order", Alias: orderSum})
	for _, v := range orderSum.Variants {
		ctx = ctx.Extend(typ.TagEntry{Name: v.Tag, Typ: typ.Var{Name: "Order"}})
	}

	bind := func(name string, ty typ.Typ) {
		ctx = ctx.Extend(typ.VarEntry{Name: name, Typ: ty})
	}
	fn := func(from, to typ.Typ) typ.Typ {
		return typ.Arrow{From: from, To: to}
	}

	bind("infinity", typ.Float)
	bind("neg_infinity", typ.Float)
	bind("nan", typ.Float)
	bind("epsilon_float", typ.Float)
	bind("pi", typ.Float)
	bind("max_int", typ.Int)
	bind("min_int", typ.Int)

	bind("int_of_float", fn(typ.Float, typ.Int))
	bind("float_of_int", fn(typ.Int, typ.Float))
	bind("string_of_int", fn(typ.Int, typ.String))
	bind("string_of_float", fn(typ.Float, typ.String))
	bind("int_of_string", fn(typ.String, typ.Int))
	bind("string_length", fn(typ.String, typ.Int))
	bind("mod", fn(typ.Int, fn(typ.Int, typ.Int)))
	bind("int_compare", fn(typ.Int, fn(typ.Int, typ.Var{Name: "Order"})))

	return ctx
}
