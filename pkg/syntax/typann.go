package syntax

// HoleType is a gap in a type annotation.
type HoleType struct {
	NodeIDs
}

// MultiHoleType aggregates type fragments that did not assemble.
type MultiHoleType struct {
	NodeIDs
	Parts []Term
}

// InvalidType is an unparseable type fragment.
type InvalidType struct {
	NodeIDs
	Text string
}

// NamedType references a type by name: a primitive, a built-in, or a type
// variable bound in context.
type NamedType struct {
	NodeIDs
	Name string
}

// ArrowType is a function type annotation.
type ArrowType struct {
	NodeIDs
	From TypAnn
	To   TypAnn
}

// TupleType is a tuple type annotation; empty is unit.
type TupleType struct {
	NodeIDs
	Items []TypAnn
}

// ListType is a list type annotation.
type ListType struct {
	NodeIDs
	Elem TypAnn
}

// SumType defines a tagged sum.
type SumType struct {
	NodeIDs
	Variants []SumVariant
}

// SumVariant is one constructor entry in a sum definition. A nil Arg means
// the constructor carries no payload.
type SumVariant struct {
	NodeIDs
	Tag string
	Arg TypAnn
}

func (HoleType) typTerm()      {}
func (MultiHoleType) typTerm() {}
func (InvalidType) typTerm()   {}
func (NamedType) typTerm()     {}
func (ArrowType) typTerm()     {}
func (TupleType) typTerm()     {}
func (ListType) typTerm()      {}
func (SumType) typTerm()       {}

// HoleTPat is a not-yet-named alias binder.
type HoleTPat struct {
	NodeIDs
}

// InvalidTPat is an unparseable alias binder.
type InvalidTPat struct {
	NodeIDs
	Text string
}

// VarTPat names the type being defined.
type VarTPat struct {
	NodeIDs
	Name string
}

func (HoleTPat) tpatTerm()    {}
func (InvalidTPat) tpatTerm() {}
func (VarTPat) tpatTerm()     {}

var (
	_ TypAnn = NamedType{}
	_ TypAnn = SumType{}
	_ Term   = SumVariant{}
	_ TPat   = VarTPat{}
)
