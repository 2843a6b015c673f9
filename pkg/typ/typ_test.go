package typ

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypString(t *testing.T) {
	for _, tc := range []struct {
		ty   Typ
		want string
	}{
		{Unknown{Internal}, "?"},
		{Unknown{SynSwitch}, "?"},
		{Int, "Int"},
		{Unit(), "()"},
		{Prod{Elems: []Typ{Int, Bool}}, "(Int, Bool)"},
		{List{Elem: String}, "[String]"},
		{Arrow{From: Int, To: Bool}, "Int -> Bool"},
		{Arrow{From: Arrow{From: Int, To: Int}, To: Bool}, "(Int -> Int) -> Bool"},
		{Arrow{From: Int, To: Arrow{From: Int, To: Bool}}, "Int -> Int -> Bool"},
		{Sum{Variants: []Variant{{Tag: "Some", Arg: Int}, {Tag: "None"}}}, "Some(Int) + None"},
		{Rec{Name: "L", Body: Sum{Variants: []Variant{{Tag: "Nil"}, {Tag: "Cons", Arg: Var{Name: "L"}}}}}, "rec L. Nil + Cons(L)"},
	} {
		assert.Equal(t, tc.want, tc.ty.String())
	}
}

func TestNormalizeErasesSynSwitch(t *testing.T) {
	ty := Arrow{
		From: Unknown{SynSwitch},
		To:   Prod{Elems: []Typ{List{Elem: Unknown{SynSwitch}}, Int}},
	}
	want := Arrow{
		From: Unknown{Internal},
		To:   Prod{Elems: []Typ{List{Elem: Unknown{Internal}}, Int}},
	}
	assert.True(t, Normalize(ty).Eq(want))

	// already-normal types come back equal
	assert.True(t, Normalize(want).Eq(want))
}

func TestSubstRespectsBinders(t *testing.T) {
	body := Arrow{From: Var{Name: "a"}, To: Rec{Name: "a", Body: Var{Name: "a"}}}
	got := Subst(body, "a", Int)
	want := Arrow{From: Int, To: Rec{Name: "a", Body: Var{Name: "a"}}}
	assert.True(t, got.Eq(want))
}

func TestVarOccurs(t *testing.T) {
	assert.True(t, VarOccurs(List{Elem: Var{Name: "T"}}, "T"))
	assert.True(t, VarOccurs(Sum{Variants: []Variant{{Tag: "K", Arg: Var{Name: "T"}}}}, "T"))
	assert.False(t, VarOccurs(Rec{Name: "T", Body: Var{Name: "T"}}, "T"))
	assert.False(t, VarOccurs(Int, "T"))
}

func TestRecUnroll(t *testing.T) {
	list := Rec{Name: "L", Body: Sum{Variants: []Variant{
		{Tag: "Nil"},
		{Tag: "Cons", Arg: Prod{Elems: []Typ{Int, Var{Name: "L"}}}},
	}}}
	unrolled := list.Unroll()
	sum, ok := unrolled.(Sum)
	assert.True(t, ok)
	assert.True(t, sum.Variants[1].Arg.Eq(Prod{Elems: []Typ{Int, list}}))
}
