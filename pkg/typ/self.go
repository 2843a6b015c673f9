package typ

import "github.com/lacuna-lang/lacuna/pkg/syntax"

// SelfKind discriminates the ways a node's own type can be known.
type SelfKind int

const (
	// JustSelf is a definite type.
	JustSelf SelfKind = iota
	// JoinedSelf is the join of several branch types, pending a context.
	JoinedSelf
	// MultiSelf aggregates several erroneous sub-parses; it is never
	// itself in error, its children carry the detail.
	MultiSelf
	// FreeSelf is a reference to an unbound name.
	FreeSelf
)

// Wrap re-embeds a joined type into the compound form it was split out of.
type Wrap int

const (
	NoWrap Wrap = iota
	// WrapList rebuilds a list type around the join of the element types.
	WrapList
)

// Apply wraps t.
func (w Wrap) Apply(t Typ) Typ {
	if w == WrapList {
		return List{Elem: t}
	}
	return t
}

// FreeKind classifies an unbound name.
type FreeKind int

const (
	FreeVariable FreeKind = iota
	FreeTag
	FreeTypeVariable
)

func (k FreeKind) String() string {
	switch k {
	case FreeTag:
		return "constructor"
	case FreeTypeVariable:
		return "type variable"
	default:
		return "variable"
	}
}

// Source ties a contributing branch type to the node that produced it, so
// a failed join can attribute blame per branch.
type Source struct {
	ID  syntax.ID
	Typ Typ
}

// Self is what a node's type would be judged in isolation, independent of
// the mode it sits in.
type Self struct {
	Kind    SelfKind
	Typ     Typ      // JustSelf
	Wrap    Wrap     // JoinedSelf
	Sources []Source // JoinedSelf
	Free    FreeKind // FreeSelf
}

// Just returns a definite self.
func Just(t Typ) Self { return Self{Kind: JustSelf, Typ: t} }

// Joined returns a self whose type is the join of the source types.
func Joined(wrap Wrap, sources []Source) Self {
	return Self{Kind: JoinedSelf, Wrap: wrap, Sources: sources}
}

// Multi is the self of a node aggregating erroneous sub-parses.
var Multi = Self{Kind: MultiSelf}

// Free returns the self of an unbound name reference.
func Free(kind FreeKind) Self { return Self{Kind: FreeSelf, Free: kind} }

// SourceTypes projects the branch types out of a joined self.
func (s Self) SourceTypes() []Typ {
	tys := make([]Typ, len(s.Sources))
	for i, src := range s.Sources {
		tys[i] = src.Typ
	}
	return tys
}
