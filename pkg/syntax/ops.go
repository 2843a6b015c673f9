package syntax

// Op is an operator token. Each operator belongs to one category (boolean,
// integer, float, string) that fixes its operand and result types; float
// operators wear a trailing dot.
type Op string

const (
	OpAnd Op = "&&"
	OpOr  Op = "||"
	OpNot Op = "!"

	OpIntPlus      Op = "+"
	OpIntMinus     Op = "-"
	OpIntTimes     Op = "*"
	OpIntDivide    Op = "/"
	OpIntLess      Op = "<"
	OpIntLessEq    Op = "<="
	OpIntGreater   Op = ">"
	OpIntGreaterEq Op = ">="
	OpIntEq        Op = "=="
	OpIntNotEq     Op = "!="
	OpIntNeg       Op = "neg"

	OpFloatPlus      Op = "+."
	OpFloatMinus     Op = "-."
	OpFloatTimes     Op = "*."
	OpFloatDivide    Op = "/."
	OpFloatLess      Op = "<."
	OpFloatLessEq    Op = "<=."
	OpFloatGreater   Op = ">."
	OpFloatGreaterEq Op = ">=."
	OpFloatEq        Op = "==."
	OpFloatNotEq     Op = "!=."

	OpStringConcat Op = "++"
	OpStringEq     Op = "$=="
)

func (op Op) String() string { return string(op) }
