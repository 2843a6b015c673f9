package statics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lacuna-lang/lacuna/pkg/syntax"
	"github.com/lacuna-lang/lacuna/pkg/typ"
)

func TestTypeAlias(t *testing.T) {
	t.Run("alias is transparent to consistency", func(t *testing.T) {
		// type T = Int in let x : T = 3 in x
		b := &tb{}
		use := b.varRef("x")
		root := b.alias(b.tpVar("T"), b.tName("Int"),
			b.let(b.pAnn(b.pVar("x"), b.tName("T")), b.intLit(3), use))
		infos := checkOne(t, root)

		require.Empty(t, infos.ErrorIDs())
		requireType(t, infos, use, typ.Var{Name: "T"})
		// the alias does not escape its scope
		requireType(t, infos, root, typ.Int)
	})

	t.Run("definition clash still resolves through the alias", func(t *testing.T) {
		// type T = Int in let x : T = true in x
		b := &tb{}
		def := b.boolLit(true)
		root := b.alias(b.tpVar("T"), b.tName("Int"),
			b.let(b.pAnn(b.pVar("x"), b.tName("T")), def, b.varRef("x")))
		infos := checkOne(t, root)
		require.Equal(t,
			InconsistentErr{Syn: typ.Bool, Ana: typ.Var{Name: "T"}},
			errOn(t, infos, def))
	})

	t.Run("primitive names cannot be rebound", func(t *testing.T) {
		// type Int = Bool in 1
		b := &tb{}
		def := b.tName("Bool")
		body := b.intLit(1)
		root := b.alias(b.tpVar("Int"), def, body)
		infos := checkOne(t, root)
		require.Empty(t, infos.ErrorIDs())
		requireType(t, infos, body, typ.Int)
		requireType(t, infos, def, typ.Bool)
		requireType(t, infos, root, typ.Int)
	})

	t.Run("hole binder introduces nothing", func(t *testing.T) {
		b := &tb{}
		root := b.alias(b.tpHole(), b.tName("Int"), b.intLit(1))
		infos := checkOne(t, root)
		require.Empty(t, infos.ErrorIDs())
		requireType(t, infos, root, typ.Int)
	})
}

func TestSumAliases(t *testing.T) {
	// type Shape = Circle(Float) + Point in ...
	shape := func(b *tb, body func() syntax.Exp) syntax.TypeAlias {
		return b.alias(b.tpVar("Shape"),
			b.tSum(b.variant("Circle", b.tName("Float")), b.variant("Point", nil)),
			body())
	}

	t.Run("constructors enter scope", func(t *testing.T) {
		b := &tb{}
		var circle, point syntax.Tag
		root := shape(b, func() syntax.Exp {
			circle = b.tag("Circle")
			point = b.tag("Point")
			return b.seq(circle, point)
		})
		infos := checkOne(t, root)
		require.Empty(t, infos.ErrorIDs())
		requireType(t, infos, circle, typ.Arrow{From: typ.Float, To: typ.Var{Name: "Shape"}})
		requireType(t, infos, point, typ.Var{Name: "Shape"})
	})

	t.Run("matching on a sum", func(t *testing.T) {
		b := &tb{}
		var r syntax.Pat
		var rule1 syntax.Rule
		root := shape(b, func() syntax.Exp {
			r = b.pVar("r")
			rule1 = b.rule(b.pAp(b.pTag("Circle"), r), b.varRef("r"))
			return b.match(
				b.ap(b.tag("Circle"), b.floatLit(1.5)),
				rule1,
				b.rule(b.pTag("Point"), b.floatLit(0.0)))
		})
		infos := checkOne(t, root)

		require.Empty(t, infos.ErrorIDs())
		requireType(t, infos, r, typ.Float)
		requireType(t, infos, root, typ.Float)

		info, err := infos.Get(syntax.PrimaryID(rule1))
		require.NoError(t, err)
		require.True(t, info.(RulInfo).Scrutinee.Eq(typ.Var{Name: "Shape"}))
	})

	t.Run("payload is checked against the constructor", func(t *testing.T) {
		b := &tb{}
		var payload syntax.Int
		root := shape(b, func() syntax.Exp {
			payload = b.intLit(3)
			return b.ap(b.tag("Circle"), payload)
		})
		infos := checkOne(t, root)
		require.Equal(t, InconsistentErr{Syn: typ.Int, Ana: typ.Float}, errOn(t, infos, payload))
	})

	t.Run("constructors stay out of scope outside the alias", func(t *testing.T) {
		b := &tb{}
		stray := b.tag("Circle")
		root := b.seq(shape(b, func() syntax.Exp { return b.intLit(1) }), stray)
		infos := checkOne(t, root)
		require.Equal(t, FreeErr{Kind: typ.FreeTag}, errOn(t, infos, stray))
	})

	t.Run("variant records carry constructor types", func(t *testing.T) {
		b := &tb{}
		circle := b.variant("Circle", b.tName("Float"))
		point := b.variant("Point", nil)
		root := b.alias(b.tpVar("Shape"), b.tSum(circle, point), b.intLit(1))
		infos := checkOne(t, root)

		sum := typ.Sum{Variants: []typ.Variant{
			{Tag: "Circle", Arg: typ.Float},
			{Tag: "Point"},
		}}
		requireType(t, infos, circle, typ.Arrow{From: typ.Float, To: sum})
		requireType(t, infos, point, sum)
	})
}

func TestRecursiveAliases(t *testing.T) {
	// type L = Nil + Cons([L]) in Cons [Nil]
	b := &tb{}
	cons := b.tag("Cons")
	nilTag := b.tag("Nil")
	root := b.alias(b.tpVar("L"),
		b.tSum(b.variant("Nil", nil), b.variant("Cons", b.tList(b.tName("L")))),
		b.ap(cons, b.list(nilTag)))
	infos := checkOne(t, root)

	require.Empty(t, infos.ErrorIDs())

	want := typ.Rec{Name: "L", Body: typ.Sum{Variants: []typ.Variant{
		{Tag: "Nil"},
		{Tag: "Cons", Arg: typ.List{Elem: typ.Var{Name: "L"}}},
	}}}
	requireType(t, infos, root, want)

	// Nil's own type names the alias; its use site settles to the
	// unrolled recursive type it was checked against
	self, err := infos.SelfType(syntax.PrimaryID(nilTag))
	require.NoError(t, err)
	require.True(t, self.Eq(typ.Var{Name: "L"}))
	requireType(t, infos, nilTag, want)

	// Cons takes a list of the unrolled type back to the alias
	requireType(t, infos, cons, typ.Arrow{From: typ.List{Elem: want}, To: typ.Var{Name: "L"}})
}
