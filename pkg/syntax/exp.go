package syntax

// EmptyHole is a deliberate gap in the program.
type EmptyHole struct {
	NodeIDs
}

// MultiHole aggregates fragments that did not assemble into one form. Its
// parts may be of any sort and still receive full statics.
type MultiHole struct {
	NodeIDs
	Parts []Term
}

// Invalid is a fragment for which no well-formed parse was possible. The
// raw text is kept for display; whitespace-only text is not an error.
type Invalid struct {
	NodeIDs
	Text string
}

// Bool is a boolean literal.
type Bool struct {
	NodeIDs
	Value bool
}

// Int is an integer literal.
type Int struct {
	NodeIDs
	Value int64
}

// Float is a floating-point literal.
type Float struct {
	NodeIDs
	Value float64
}

// String is a string literal.
type String struct {
	NodeIDs
	Value string
}

// Var is a variable reference.
type Var struct {
	NodeIDs
	Name string
}

// Tag is a sum-type constructor reference.
type Tag struct {
	NodeIDs
	Name string
}

// ListLit is a list literal.
type ListLit struct {
	NodeIDs
	Items []Exp
}

// Tuple is a tuple literal; with no items it is the unit value.
type Tuple struct {
	NodeIDs
	Items []Exp
}

// Cons prepends an element to a list.
type Cons struct {
	NodeIDs
	Head Exp
	Tail Exp
}

// Fun is a function literal.
type Fun struct {
	NodeIDs
	Param Pat
	Body  Exp
}

// Ap applies a function to an argument.
type Ap struct {
	NodeIDs
	Fn  Exp
	Arg Exp
}

// Let binds a pattern to a definition within a body.
type Let struct {
	NodeIDs
	Pat  Pat
	Def  Exp
	Body Exp
}

// TypeAlias introduces a named type for the scope of its body. An alias
// whose name occurs in its own definition is a recursive type.
type TypeAlias struct {
	NodeIDs
	Pat  TPat
	Def  TypAnn
	Body Exp
}

// If is a conditional.
type If struct {
	NodeIDs
	Cond Exp
	Then Exp
	Else Exp
}

// Seq evaluates First for effect and Second for its value.
type Seq struct {
	NodeIDs
	First  Exp
	Second Exp
}

// Test is an assertion; its body is checked against Bool.
type Test struct {
	NodeIDs
	Body Exp
}

// BinOp applies a binary operator.
type BinOp struct {
	NodeIDs
	Op    Op
	Left  Exp
	Right Exp
}

// UnOp applies a unary operator.
type UnOp struct {
	NodeIDs
	Op      Op
	Operand Exp
}

// Match scrutinizes an expression against a sequence of rules.
type Match struct {
	NodeIDs
	Scrutinee Exp
	Rules     []Rule
}

// Rule is one arm of a match. It is a term of its own: the arrow token
// carries ids and gets a statics record.
type Rule struct {
	NodeIDs
	Pat  Pat
	Body Exp
}

func (EmptyHole) expTerm() {}
func (MultiHole) expTerm() {}
func (Invalid) expTerm()   {}
func (Bool) expTerm()      {}
func (Int) expTerm()       {}
func (Float) expTerm()     {}
func (String) expTerm()    {}
func (Var) expTerm()       {}
func (Tag) expTerm()       {}
func (ListLit) expTerm()   {}
func (Tuple) expTerm()     {}
func (Cons) expTerm()      {}
func (Fun) expTerm()       {}
func (Ap) expTerm()        {}
func (Let) expTerm()       {}
func (TypeAlias) expTerm() {}
func (If) expTerm()        {}
func (Seq) expTerm()       {}
func (Test) expTerm()      {}
func (BinOp) expTerm()     {}
func (UnOp) expTerm()      {}
func (Match) expTerm()     {}

var (
	_ Exp  = EmptyHole{}
	_ Exp  = MultiHole{}
	_ Exp  = Invalid{}
	_ Exp  = Match{}
	_ Term = Rule{}
)
