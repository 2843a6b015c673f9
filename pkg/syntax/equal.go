package syntax

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Equal reports whether two terms are structurally equal, identifiers
// included. It is the collision check behind the fingerprint: two terms
// with equal fingerprints are only treated as the same term if they also
// compare equal here.
func Equal(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !idsEqual(a.IDs(), b.IDs()) {
		return false
	}
	switch a := a.(type) {
	case EmptyHole:
		_, ok := b.(EmptyHole)
		return ok
	case MultiHole:
		bb, ok := b.(MultiHole)
		return ok && partsEqual(a.Parts, bb.Parts)
	case Invalid:
		bb, ok := b.(Invalid)
		return ok && a.Text == bb.Text
	case Bool:
		bb, ok := b.(Bool)
		return ok && a.Value == bb.Value
	case Int:
		bb, ok := b.(Int)
		return ok && a.Value == bb.Value
	case Float:
		bb, ok := b.(Float)
		return ok && a.Value == bb.Value
	case String:
		bb, ok := b.(String)
		return ok && a.Value == bb.Value
	case Var:
		bb, ok := b.(Var)
		return ok && a.Name == bb.Name
	case Tag:
		bb, ok := b.(Tag)
		return ok && a.Name == bb.Name
	case ListLit:
		bb, ok := b.(ListLit)
		return ok && expsEqual(a.Items, bb.Items)
	case Tuple:
		bb, ok := b.(Tuple)
		return ok && expsEqual(a.Items, bb.Items)
	case Cons:
		bb, ok := b.(Cons)
		return ok && Equal(a.Head, bb.Head) && Equal(a.Tail, bb.Tail)
	case Fun:
		bb, ok := b.(Fun)
		return ok && Equal(a.Param, bb.Param) && Equal(a.Body, bb.Body)
	case Ap:
		bb, ok := b.(Ap)
		return ok && Equal(a.Fn, bb.Fn) && Equal(a.Arg, bb.Arg)
	case Let:
		bb, ok := b.(Let)
		return ok && Equal(a.Pat, bb.Pat) && Equal(a.Def, bb.Def) && Equal(a.Body, bb.Body)
	case TypeAlias:
		bb, ok := b.(TypeAlias)
		return ok && Equal(a.Pat, bb.Pat) && Equal(a.Def, bb.Def) && Equal(a.Body, bb.Body)
	case If:
		bb, ok := b.(If)
		return ok && Equal(a.Cond, bb.Cond) && Equal(a.Then, bb.Then) && Equal(a.Else, bb.Else)
	case Seq:
		bb, ok := b.(Seq)
		return ok && Equal(a.First, bb.First) && Equal(a.Second, bb.Second)
	case Test:
		bb, ok := b.(Test)
		return ok && Equal(a.Body, bb.Body)
	case BinOp:
		bb, ok := b.(BinOp)
		return ok && a.Op == bb.Op && Equal(a.Left, bb.Left) && Equal(a.Right, bb.Right)
	case UnOp:
		bb, ok := b.(UnOp)
		return ok && a.Op == bb.Op && Equal(a.Operand, bb.Operand)
	case Match:
		bb, ok := b.(Match)
		if !ok || !Equal(a.Scrutinee, bb.Scrutinee) || len(a.Rules) != len(bb.Rules) {
			return false
		}
		for i, r := range a.Rules {
			if !Equal(r, bb.Rules[i]) {
				return false
			}
		}
		return true
	case Rule:
		bb, ok := b.(Rule)
		return ok && Equal(a.Pat, bb.Pat) && Equal(a.Body, bb.Body)

	case HolePat:
		_, ok := b.(HolePat)
		return ok
	case MultiHolePat:
		bb, ok := b.(MultiHolePat)
		return ok && partsEqual(a.Parts, bb.Parts)
	case InvalidPat:
		bb, ok := b.(InvalidPat)
		return ok && a.Text == bb.Text
	case WildPat:
		_, ok := b.(WildPat)
		return ok
	case VarPat:
		bb, ok := b.(VarPat)
		return ok && a.Name == bb.Name
	case IntPat:
		bb, ok := b.(IntPat)
		return ok && a.Value == bb.Value
	case FloatPat:
		bb, ok := b.(FloatPat)
		return ok && a.Value == bb.Value
	case BoolPat:
		bb, ok := b.(BoolPat)
		return ok && a.Value == bb.Value
	case StringPat:
		bb, ok := b.(StringPat)
		return ok && a.Value == bb.Value
	case TuplePat:
		bb, ok := b.(TuplePat)
		return ok && patsEqual(a.Items, bb.Items)
	case ListPat:
		bb, ok := b.(ListPat)
		return ok && patsEqual(a.Items, bb.Items)
	case ConsPat:
		bb, ok := b.(ConsPat)
		return ok && Equal(a.Head, bb.Head) && Equal(a.Tail, bb.Tail)
	case AnnPat:
		bb, ok := b.(AnnPat)
		return ok && Equal(a.Pat, bb.Pat) && Equal(a.Ann, bb.Ann)
	case TagPat:
		bb, ok := b.(TagPat)
		return ok && a.Name == bb.Name
	case ApPat:
		bb, ok := b.(ApPat)
		return ok && Equal(a.Fn, bb.Fn) && Equal(a.Arg, bb.Arg)

	case HoleType:
		_, ok := b.(HoleType)
		return ok
	case MultiHoleType:
		bb, ok := b.(MultiHoleType)
		return ok && partsEqual(a.Parts, bb.Parts)
	case InvalidType:
		bb, ok := b.(InvalidType)
		return ok && a.Text == bb.Text
	case NamedType:
		bb, ok := b.(NamedType)
		return ok && a.Name == bb.Name
	case ArrowType:
		bb, ok := b.(ArrowType)
		return ok && Equal(a.From, bb.From) && Equal(a.To, bb.To)
	case TupleType:
		bb, ok := b.(TupleType)
		if !ok || len(a.Items) != len(bb.Items) {
			return false
		}
		for i, item := range a.Items {
			if !Equal(item, bb.Items[i]) {
				return false
			}
		}
		return true
	case ListType:
		bb, ok := b.(ListType)
		return ok && Equal(a.Elem, bb.Elem)
	case SumType:
		bb, ok := b.(SumType)
		if !ok || len(a.Variants) != len(bb.Variants) {
			return false
		}
		for i, v := range a.Variants {
			if !Equal(v, bb.Variants[i]) {
				return false
			}
		}
		return true
	case SumVariant:
		bb, ok := b.(SumVariant)
		if !ok || a.Tag != bb.Tag {
			return false
		}
		if (a.Arg == nil) != (bb.Arg == nil) {
			return false
		}
		return a.Arg == nil || Equal(a.Arg, bb.Arg)

	case HoleTPat:
		_, ok := b.(HoleTPat)
		return ok
	case InvalidTPat:
		bb, ok := b.(InvalidTPat)
		return ok && a.Text == bb.Text
	case VarTPat:
		bb, ok := b.(VarTPat)
		return ok && a.Name == bb.Name
	}
	return false
}

func idsEqual(a, b []ID) bool {
	if len(a) != len(b) {
		return false
	}
	for i, id := range a {
		if id != b[i] {
			return false
		}
	}
	return true
}

func partsEqual(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i, p := range a {
		if !Equal(p, b[i]) {
			return false
		}
	}
	return true
}

func expsEqual(a, b []Exp) bool {
	if len(a) != len(b) {
		return false
	}
	for i, e := range a {
		if !Equal(e, b[i]) {
			return false
		}
	}
	return true
}

func patsEqual(a, b []Pat) bool {
	if len(a) != len(b) {
		return false
	}
	for i, p := range a {
		if !Equal(p, b[i]) {
			return false
		}
	}
	return true
}

// Fingerprint hashes a term, identifiers included, with FNV-1a. Equal
// terms hash equal; the converse is checked with Equal.
func Fingerprint(t Term) uint64 {
	h := fnv.New64a()
	hashTerm(h, t)
	return h.Sum64()
}

type hasher interface {
	Write(p []byte) (int, error)
}

func hashTerm(h hasher, t Term) {
	if t == nil {
		hashString(h, "<nil>")
		return
	}
	hashString(h, formName(t))
	ids := t.IDs()
	hashInt(h, int64(len(ids)))
	for _, id := range ids {
		hashInt(h, int64(id))
	}
	switch t := t.(type) {
	case MultiHole:
		hashParts(h, t.Parts)
	case Invalid:
		hashString(h, t.Text)
	case Bool:
		hashBool(h, t.Value)
	case Int:
		hashInt(h, t.Value)
	case Float:
		hashInt(h, int64(math.Float64bits(t.Value)))
	case String:
		hashString(h, t.Value)
	case Var:
		hashString(h, t.Name)
	case Tag:
		hashString(h, t.Name)
	case ListLit:
		hashInt(h, int64(len(t.Items)))
		for _, item := range t.Items {
			hashTerm(h, item)
		}
	case Tuple:
		hashInt(h, int64(len(t.Items)))
		for _, item := range t.Items {
			hashTerm(h, item)
		}
	case Cons:
		hashTerm(h, t.Head)
		hashTerm(h, t.Tail)
	case Fun:
		hashTerm(h, t.Param)
		hashTerm(h, t.Body)
	case Ap:
		hashTerm(h, t.Fn)
		hashTerm(h, t.Arg)
	case Let:
		hashTerm(h, t.Pat)
		hashTerm(h, t.Def)
		hashTerm(h, t.Body)
	case TypeAlias:
		hashTerm(h, t.Pat)
		hashTerm(h, t.Def)
		hashTerm(h, t.Body)
	case If:
		hashTerm(h, t.Cond)
		hashTerm(h, t.Then)
		hashTerm(h, t.Else)
	case Seq:
		hashTerm(h, t.First)
		hashTerm(h, t.Second)
	case Test:
		hashTerm(h, t.Body)
	case BinOp:
		hashString(h, string(t.Op))
		hashTerm(h, t.Left)
		hashTerm(h, t.Right)
	case UnOp:
		hashString(h, string(t.Op))
		hashTerm(h, t.Operand)
	case Match:
		hashTerm(h, t.Scrutinee)
		hashInt(h, int64(len(t.Rules)))
		for _, r := range t.Rules {
			hashTerm(h, r)
		}
	case Rule:
		hashTerm(h, t.Pat)
		hashTerm(h, t.Body)

	case MultiHolePat:
		hashParts(h, t.Parts)
	case InvalidPat:
		hashString(h, t.Text)
	case VarPat:
		hashString(h, t.Name)
	case IntPat:
		hashInt(h, t.Value)
	case FloatPat:
		hashInt(h, int64(math.Float64bits(t.Value)))
	case BoolPat:
		hashBool(h, t.Value)
	case StringPat:
		hashString(h, t.Value)
	case TuplePat:
		hashInt(h, int64(len(t.Items)))
		for _, item := range t.Items {
			hashTerm(h, item)
		}
	case ListPat:
		hashInt(h, int64(len(t.Items)))
		for _, item := range t.Items {
			hashTerm(h, item)
		}
	case ConsPat:
		hashTerm(h, t.Head)
		hashTerm(h, t.Tail)
	case AnnPat:
		hashTerm(h, t.Pat)
		hashTerm(h, t.Ann)
	case TagPat:
		hashString(h, t.Name)
	case ApPat:
		hashTerm(h, t.Fn)
		hashTerm(h, t.Arg)

	case MultiHoleType:
		hashParts(h, t.Parts)
	case InvalidType:
		hashString(h, t.Text)
	case NamedType:
		hashString(h, t.Name)
	case ArrowType:
		hashTerm(h, t.From)
		hashTerm(h, t.To)
	case TupleType:
		hashInt(h, int64(len(t.Items)))
		for _, item := range t.Items {
			hashTerm(h, item)
		}
	case ListType:
		hashTerm(h, t.Elem)
	case SumType:
		hashInt(h, int64(len(t.Variants)))
		for _, v := range t.Variants {
			hashTerm(h, v)
		}
	case SumVariant:
		hashString(h, t.Tag)
		if t.Arg != nil {
			hashTerm(h, t.Arg)
		}

	case InvalidTPat:
		hashString(h, t.Text)
	case VarTPat:
		hashString(h, t.Name)
	}
}

func hashParts(h hasher, parts []Term) {
	hashInt(h, int64(len(parts)))
	for _, p := range parts {
		hashTerm(h, p)
	}
}

func hashString(h hasher, s string) {
	hashInt(h, int64(len(s)))
	_, _ = h.Write([]byte(s))
}

func hashInt(h hasher, n int64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	_, _ = h.Write(buf[:])
}

func hashBool(h hasher, b bool) {
	if b {
		hashInt(h, 1)
	} else {
		hashInt(h, 0)
	}
}
