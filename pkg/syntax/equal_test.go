package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualIncludesIdentifiers(t *testing.T) {
	assert.True(t, Equal(Int{NodeIDs: IDsOf(1), Value: 42}, Int{NodeIDs: IDsOf(1), Value: 42}))
	assert.False(t, Equal(Int{NodeIDs: IDsOf(1), Value: 42}, Int{NodeIDs: IDsOf(2), Value: 42}))
	assert.False(t, Equal(Int{NodeIDs: IDsOf(1, 2), Value: 42}, Int{NodeIDs: IDsOf(1), Value: 42}))
}

func TestEqualDistinguishesForms(t *testing.T) {
	assert.False(t, Equal(Var{NodeIDs: IDsOf(1), Name: "x"}, Tag{NodeIDs: IDsOf(1), Name: "x"}))
	assert.False(t, Equal(Int{NodeIDs: IDsOf(1), Value: 1}, Float{NodeIDs: IDsOf(1), Value: 1}))
	assert.False(t, Equal(EmptyHole{NodeIDs: IDsOf(1)}, HolePat{NodeIDs: IDsOf(1)}))
}

func TestEqualDeep(t *testing.T) {
	mk := func(body int64) Exp {
		return Let{
			NodeIDs: IDsOf(1),
			Pat:     VarPat{NodeIDs: IDsOf(2), Name: "x"},
			Def: Fun{
				NodeIDs: IDsOf(3),
				Param:   VarPat{NodeIDs: IDsOf(4), Name: "n"},
				Body:    Var{NodeIDs: IDsOf(5), Name: "n"},
			},
			Body: Ap{
				NodeIDs: IDsOf(6),
				Fn:      Var{NodeIDs: IDsOf(7), Name: "x"},
				Arg:     Int{NodeIDs: IDsOf(8), Value: body},
			},
		}
	}
	assert.True(t, Equal(mk(5), mk(5)))
	assert.False(t, Equal(mk(5), mk(6)))
}

func TestEqualSumVariantArgs(t *testing.T) {
	some := SumVariant{NodeIDs: IDsOf(1), Tag: "Some", Arg: NamedType{NodeIDs: IDsOf(2), Name: "Int"}}
	none := SumVariant{NodeIDs: IDsOf(1), Tag: "Some"}
	assert.True(t, Equal(some, some))
	assert.False(t, Equal(some, none))
	assert.False(t, Equal(none, some))
}

func TestFingerprintAgreesWithEqual(t *testing.T) {
	terms := []Term{
		EmptyHole{NodeIDs: IDsOf(1)},
		Int{NodeIDs: IDsOf(1), Value: 42},
		Int{NodeIDs: IDsOf(2), Value: 42},
		Float{NodeIDs: IDsOf(1), Value: 42},
		Var{NodeIDs: IDsOf(1), Name: "x"},
		Tag{NodeIDs: IDsOf(1), Name: "x"},
		BinOp{
			NodeIDs: IDsOf(1),
			Op:      OpIntPlus,
			Left:    Int{NodeIDs: IDsOf(2), Value: 1},
			Right:   Int{NodeIDs: IDsOf(3), Value: 2},
		},
		BinOp{
			NodeIDs: IDsOf(1),
			Op:      OpIntMinus,
			Left:    Int{NodeIDs: IDsOf(2), Value: 1},
			Right:   Int{NodeIDs: IDsOf(3), Value: 2},
		},
		MultiHole{NodeIDs: IDsOf(1), Parts: []Term{
			Var{NodeIDs: IDsOf(2), Name: "f"},
			NamedType{NodeIDs: IDsOf(3), Name: "Int"},
		}},
	}
	for i, a := range terms {
		for j, b := range terms {
			if Equal(a, b) {
				assert.Equal(t, Fingerprint(a), Fingerprint(b), "terms %d and %d", i, j)
			} else {
				assert.NotEqual(t, Fingerprint(a), Fingerprint(b), "terms %d and %d", i, j)
			}
		}
	}
}

func TestFingerprintIsStable(t *testing.T) {
	term := If{
		NodeIDs: IDsOf(1),
		Cond:    Bool{NodeIDs: IDsOf(2), Value: true},
		Then:    Int{NodeIDs: IDsOf(3), Value: 1},
		Else:    Int{NodeIDs: IDsOf(4), Value: 2},
	}
	require.Equal(t, Fingerprint(term), Fingerprint(term))
}
