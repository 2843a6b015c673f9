// Package typ models the semantic types of Lacuna terms: gradual unknowns,
// primitives, arrows, tuples, lists, sums, and named recursive types,
// together with the consistency and join operations over them and the
// ordered binding context they are judged in.
package typ

import (
	"fmt"
	"strings"
)

// Typ is a semantic type.
type Typ interface {
	// Eq reports structural equality, without consulting any context.
	Eq(Typ) bool
	fmt.Stringer
}

// Provenance distinguishes why a type is unknown.
type Provenance int

const (
	// Internal marks a genuine gap: a hole, an unconstrained binding, or a
	// position whose type could not be recovered.
	Internal Provenance = iota
	// SynSwitch marks a position that falls back to synthesis when no
	// expected type is available. It is resolved inside the engine and
	// never appears in a reported type.
	SynSwitch
)

// Unknown is the gradual "?" type.
type Unknown struct {
	Prov Provenance
}

func (u Unknown) Eq(other Typ) bool {
	ou, ok := other.(Unknown)
	return ok && u.Prov == ou.Prov
}

func (u Unknown) String() string { return "?" }

// Prim is a primitive base type.
type Prim string

const (
	Int    Prim = "Int"
	Float  Prim = "Float"
	Bool   Prim = "Bool"
	String Prim = "String"
)

func (p Prim) Eq(other Typ) bool {
	op, ok := other.(Prim)
	return ok && p == op
}

func (p Prim) String() string { return string(p) }

// Arrow is a function type.
type Arrow struct {
	From Typ
	To   Typ
}

func (a Arrow) Eq(other Typ) bool {
	oa, ok := other.(Arrow)
	return ok && a.From.Eq(oa.From) && a.To.Eq(oa.To)
}

func (a Arrow) String() string {
	from := a.From.String()
	if _, ok := a.From.(Arrow); ok {
		from = "(" + from + ")"
	}
	return fmt.Sprintf("%s -> %s", from, a.To)
}

// Prod is a tuple type. The empty product is the unit type.
type Prod struct {
	Elems []Typ
}

// Unit returns the empty product.
func Unit() Prod { return Prod{} }

func (p Prod) Eq(other Typ) bool {
	op, ok := other.(Prod)
	if !ok || len(p.Elems) != len(op.Elems) {
		return false
	}
	for i, t := range p.Elems {
		if !t.Eq(op.Elems[i]) {
			return false
		}
	}
	return true
}

func (p Prod) String() string {
	elems := make([]string, len(p.Elems))
	for i, t := range p.Elems {
		elems[i] = t.String()
	}
	return "(" + strings.Join(elems, ", ") + ")"
}

// List is a homogeneous list type.
type List struct {
	Elem Typ
}

func (l List) Eq(other Typ) bool {
	ol, ok := other.(List)
	return ok && l.Elem.Eq(ol.Elem)
}

func (l List) String() string { return "[" + l.Elem.String() + "]" }

// Var is a reference to a bound type variable or alias.
type Var struct {
	Name string
}

func (v Var) Eq(other Typ) bool {
	ov, ok := other.(Var)
	return ok && v.Name == ov.Name
}

func (v Var) String() string { return v.Name }

// Rec is a named recursive type. Occurrences of Var(Name) inside Body
// refer back to the whole type.
type Rec struct {
	Name string
	Body Typ
}

func (r Rec) Eq(other Typ) bool {
	or, ok := other.(Rec)
	return ok && r.Name == or.Name && r.Body.Eq(or.Body)
}

func (r Rec) String() string {
	return fmt.Sprintf("rec %s. %s", r.Name, r.Body)
}

// Unroll unfolds one layer of the recursive type, substituting the whole
// type for its bound variable in the body.
func (r Rec) Unroll() Typ { return Subst(r.Body, r.Name, r) }

// Variant is one constructor of a sum type. A nil Arg means the tag
// carries no payload.
type Variant struct {
	Tag string
	Arg Typ
}

// Sum is a tagged sum type.
type Sum struct {
	Variants []Variant
}

func (s Sum) Eq(other Typ) bool {
	os, ok := other.(Sum)
	if !ok || len(s.Variants) != len(os.Variants) {
		return false
	}
	for i, v := range s.Variants {
		ov := os.Variants[i]
		if v.Tag != ov.Tag {
			return false
		}
		if (v.Arg == nil) != (ov.Arg == nil) {
			return false
		}
		if v.Arg != nil && !v.Arg.Eq(ov.Arg) {
			return false
		}
	}
	return true
}

func (s Sum) String() string {
	variants := make([]string, len(s.Variants))
	for i, v := range s.Variants {
		if v.Arg != nil {
			variants[i] = fmt.Sprintf("%s(%s)", v.Tag, v.Arg)
		} else {
			variants[i] = v.Tag
		}
	}
	return strings.Join(variants, " + ")
}

// IsSynSwitch reports whether t is the unknown that redirects checking to
// synthesis.
func IsSynSwitch(t Typ) bool {
	u, ok := t.(Unknown)
	return ok && u.Prov == SynSwitch
}

// Normalize rewrites every mode-switch unknown in t to a plain unknown.
// Every type handed outside the engine passes through here first.
func Normalize(t Typ) Typ {
	switch t := t.(type) {
	case Unknown:
		return Unknown{Internal}
	case Arrow:
		return Arrow{From: Normalize(t.From), To: Normalize(t.To)}
	case Prod:
		if len(t.Elems) == 0 {
			return t
		}
		elems := make([]Typ, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = Normalize(e)
		}
		return Prod{Elems: elems}
	case List:
		return List{Elem: Normalize(t.Elem)}
	case Rec:
		return Rec{Name: t.Name, Body: Normalize(t.Body)}
	case Sum:
		variants := make([]Variant, len(t.Variants))
		for i, v := range t.Variants {
			variants[i] = Variant{Tag: v.Tag}
			if v.Arg != nil {
				variants[i].Arg = Normalize(v.Arg)
			}
		}
		return Sum{Variants: variants}
	default:
		return t
	}
}

// Subst replaces free occurrences of the type variable name in t with rep.
func Subst(t Typ, name string, rep Typ) Typ {
	switch t := t.(type) {
	case Var:
		if t.Name == name {
			return rep
		}
		return t
	case Arrow:
		return Arrow{From: Subst(t.From, name, rep), To: Subst(t.To, name, rep)}
	case Prod:
		if len(t.Elems) == 0 {
			return t
		}
		elems := make([]Typ, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = Subst(e, name, rep)
		}
		return Prod{Elems: elems}
	case List:
		return List{Elem: Subst(t.Elem, name, rep)}
	case Rec:
		if t.Name == name {
			// the inner binder shadows name
			return t
		}
		return Rec{Name: t.Name, Body: Subst(t.Body, name, rep)}
	case Sum:
		variants := make([]Variant, len(t.Variants))
		for i, v := range t.Variants {
			variants[i] = Variant{Tag: v.Tag}
			if v.Arg != nil {
				variants[i].Arg = Subst(v.Arg, name, rep)
			}
		}
		return Sum{Variants: variants}
	default:
		return t
	}
}

// VarOccurs reports whether the type variable name occurs free in t.
func VarOccurs(t Typ, name string) bool {
	switch t := t.(type) {
	case Var:
		return t.Name == name
	case Arrow:
		return VarOccurs(t.From, name) || VarOccurs(t.To, name)
	case Prod:
		for _, e := range t.Elems {
			if VarOccurs(e, name) {
				return true
			}
		}
		return false
	case List:
		return VarOccurs(t.Elem, name)
	case Rec:
		if t.Name == name {
			return false
		}
		return VarOccurs(t.Body, name)
	case Sum:
		for _, v := range t.Variants {
			if v.Arg != nil && VarOccurs(v.Arg, name) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
