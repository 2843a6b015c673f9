package syntax

// HolePat is a deliberate gap in a pattern.
type HolePat struct {
	NodeIDs
}

// MultiHolePat aggregates pattern fragments that did not assemble.
type MultiHolePat struct {
	NodeIDs
	Parts []Term
}

// InvalidPat is an unparseable pattern fragment.
type InvalidPat struct {
	NodeIDs
	Text string
}

// WildPat matches anything and binds nothing.
type WildPat struct {
	NodeIDs
}

// VarPat binds a variable. Its own type is determined by the surrounding
// mode, so in isolation it is the mode-switch unknown.
type VarPat struct {
	NodeIDs
	Name string
}

// IntPat matches an integer literal.
type IntPat struct {
	NodeIDs
	Value int64
}

// FloatPat matches a float literal.
type FloatPat struct {
	NodeIDs
	Value float64
}

// BoolPat matches a boolean literal.
type BoolPat struct {
	NodeIDs
	Value bool
}

// StringPat matches a string literal.
type StringPat struct {
	NodeIDs
	Value string
}

// TuplePat destructures a tuple. Bindings thread left to right, so a later
// element can shadow an earlier one.
type TuplePat struct {
	NodeIDs
	Items []Pat
}

// ListPat destructures a list literal.
type ListPat struct {
	NodeIDs
	Items []Pat
}

// ConsPat destructures a list into head and tail.
type ConsPat struct {
	NodeIDs
	Head Pat
	Tail Pat
}

// AnnPat annotates a pattern with a type.
type AnnPat struct {
	NodeIDs
	Pat Pat
	Ann TypAnn
}

// TagPat matches a nullary sum constructor.
type TagPat struct {
	NodeIDs
	Name string
}

// ApPat matches a constructor applied to an argument pattern.
type ApPat struct {
	NodeIDs
	Fn  Pat
	Arg Pat
}

func (HolePat) patTerm()      {}
func (MultiHolePat) patTerm() {}
func (InvalidPat) patTerm()   {}
func (WildPat) patTerm()      {}
func (VarPat) patTerm()       {}
func (IntPat) patTerm()       {}
func (FloatPat) patTerm()     {}
func (BoolPat) patTerm()      {}
func (StringPat) patTerm()    {}
func (TuplePat) patTerm()     {}
func (ListPat) patTerm()      {}
func (ConsPat) patTerm()      {}
func (AnnPat) patTerm()       {}
func (TagPat) patTerm()       {}
func (ApPat) patTerm()        {}

var (
	_ Pat = HolePat{}
	_ Pat = VarPat{}
	_ Pat = AnnPat{}
)
