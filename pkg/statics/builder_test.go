package statics

import (
	"github.com/lacuna-lang/lacuna/pkg/syntax"
)

// tb builds test terms with sequential ids so every node is addressable.
type tb struct {
	gen syntax.IDGen
}

func (b *tb) ids() syntax.NodeIDs { return syntax.IDsOf(b.gen.Next()) }

func (b *tb) hole() syntax.EmptyHole { return syntax.EmptyHole{NodeIDs: b.ids()} }
func (b *tb) invalid(text string) syntax.Invalid {
	return syntax.Invalid{NodeIDs: b.ids(), Text: text}
}
func (b *tb) multi(parts ...syntax.Term) syntax.MultiHole {
	return syntax.MultiHole{NodeIDs: b.ids(), Parts: parts}
}
func (b *tb) boolLit(v bool) syntax.Bool      { return syntax.Bool{NodeIDs: b.ids(), Value: v} }
func (b *tb) intLit(v int64) syntax.Int       { return syntax.Int{NodeIDs: b.ids(), Value: v} }
func (b *tb) floatLit(v float64) syntax.Float { return syntax.Float{NodeIDs: b.ids(), Value: v} }
func (b *tb) strLit(v string) syntax.String   { return syntax.String{NodeIDs: b.ids(), Value: v} }
func (b *tb) varRef(name string) syntax.Var   { return syntax.Var{NodeIDs: b.ids(), Name: name} }
func (b *tb) tag(name string) syntax.Tag      { return syntax.Tag{NodeIDs: b.ids(), Name: name} }

func (b *tb) list(items ...syntax.Exp) syntax.ListLit {
	return syntax.ListLit{NodeIDs: b.ids(), Items: items}
}
func (b *tb) tuple(items ...syntax.Exp) syntax.Tuple {
	return syntax.Tuple{NodeIDs: b.ids(), Items: items}
}
func (b *tb) cons(head, tail syntax.Exp) syntax.Cons {
	return syntax.Cons{NodeIDs: b.ids(), Head: head, Tail: tail}
}
func (b *tb) fun(param syntax.Pat, body syntax.Exp) syntax.Fun {
	return syntax.Fun{NodeIDs: b.ids(), Param: param, Body: body}
}
func (b *tb) ap(fn, arg syntax.Exp) syntax.Ap {
	return syntax.Ap{NodeIDs: b.ids(), Fn: fn, Arg: arg}
}
func (b *tb) let(pat syntax.Pat, def, body syntax.Exp) syntax.Let {
	return syntax.Let{NodeIDs: b.ids(), Pat: pat, Def: def, Body: body}
}
func (b *tb) alias(pat syntax.TPat, def syntax.TypAnn, body syntax.Exp) syntax.TypeAlias {
	return syntax.TypeAlias{NodeIDs: b.ids(), Pat: pat, Def: def, Body: body}
}
func (b *tb) ifExp(cond, then, els syntax.Exp) syntax.If {
	return syntax.If{NodeIDs: b.ids(), Cond: cond, Then: then, Else: els}
}
func (b *tb) seq(first, second syntax.Exp) syntax.Seq {
	return syntax.Seq{NodeIDs: b.ids(), First: first, Second: second}
}
func (b *tb) testExp(body syntax.Exp) syntax.Test {
	return syntax.Test{NodeIDs: b.ids(), Body: body}
}
func (b *tb) binOp(op syntax.Op, left, right syntax.Exp) syntax.BinOp {
	return syntax.BinOp{NodeIDs: b.ids(), Op: op, Left: left, Right: right}
}
func (b *tb) unOp(op syntax.Op, operand syntax.Exp) syntax.UnOp {
	return syntax.UnOp{NodeIDs: b.ids(), Op: op, Operand: operand}
}
func (b *tb) match(scrut syntax.Exp, rules ...syntax.Rule) syntax.Match {
	return syntax.Match{NodeIDs: b.ids(), Scrutinee: scrut, Rules: rules}
}
func (b *tb) rule(pat syntax.Pat, body syntax.Exp) syntax.Rule {
	return syntax.Rule{NodeIDs: b.ids(), Pat: pat, Body: body}
}

func (b *tb) pHole() syntax.HolePat { return syntax.HolePat{NodeIDs: b.ids()} }
func (b *tb) pWild() syntax.WildPat { return syntax.WildPat{NodeIDs: b.ids()} }
func (b *tb) pInvalid(text string) syntax.InvalidPat {
	return syntax.InvalidPat{NodeIDs: b.ids(), Text: text}
}
func (b *tb) pVar(name string) syntax.VarPat { return syntax.VarPat{NodeIDs: b.ids(), Name: name} }
func (b *tb) pInt(v int64) syntax.IntPat     { return syntax.IntPat{NodeIDs: b.ids(), Value: v} }
func (b *tb) pBool(v bool) syntax.BoolPat    { return syntax.BoolPat{NodeIDs: b.ids(), Value: v} }
func (b *tb) pTuple(items ...syntax.Pat) syntax.TuplePat {
	return syntax.TuplePat{NodeIDs: b.ids(), Items: items}
}
func (b *tb) pList(items ...syntax.Pat) syntax.ListPat {
	return syntax.ListPat{NodeIDs: b.ids(), Items: items}
}
func (b *tb) pCons(head, tail syntax.Pat) syntax.ConsPat {
	return syntax.ConsPat{NodeIDs: b.ids(), Head: head, Tail: tail}
}
func (b *tb) pAnn(pat syntax.Pat, ann syntax.TypAnn) syntax.AnnPat {
	return syntax.AnnPat{NodeIDs: b.ids(), Pat: pat, Ann: ann}
}
func (b *tb) pTag(name string) syntax.TagPat { return syntax.TagPat{NodeIDs: b.ids(), Name: name} }
func (b *tb) pAp(fn, arg syntax.Pat) syntax.ApPat {
	return syntax.ApPat{NodeIDs: b.ids(), Fn: fn, Arg: arg}
}

func (b *tb) tHole() syntax.HoleType { return syntax.HoleType{NodeIDs: b.ids()} }
func (b *tb) tName(name string) syntax.NamedType {
	return syntax.NamedType{NodeIDs: b.ids(), Name: name}
}
func (b *tb) tInvalid(text string) syntax.InvalidType {
	return syntax.InvalidType{NodeIDs: b.ids(), Text: text}
}
func (b *tb) tArrow(from, to syntax.TypAnn) syntax.ArrowType {
	return syntax.ArrowType{NodeIDs: b.ids(), From: from, To: to}
}
func (b *tb) tTuple(items ...syntax.TypAnn) syntax.TupleType {
	return syntax.TupleType{NodeIDs: b.ids(), Items: items}
}
func (b *tb) tList(elem syntax.TypAnn) syntax.ListType {
	return syntax.ListType{NodeIDs: b.ids(), Elem: elem}
}
func (b *tb) tSum(variants ...syntax.SumVariant) syntax.SumType {
	return syntax.SumType{NodeIDs: b.ids(), Variants: variants}
}
func (b *tb) variant(tag string, arg syntax.TypAnn) syntax.SumVariant {
	return syntax.SumVariant{NodeIDs: b.ids(), Tag: tag, Arg: arg}
}
func (b *tb) tpVar(name string) syntax.VarTPat {
	return syntax.VarTPat{NodeIDs: b.ids(), Name: name}
}
func (b *tb) tpHole() syntax.HoleTPat { return syntax.HoleTPat{NodeIDs: b.ids()} }

// factorial is the canonical recursive binding: a bare let whose definition
// applies the bound name, followed by a call in the body.
//
//	let f = fun n -> if n == 0 then 1 else n * f (n - 1) in f 5
func factorial(b *tb) (syntax.Let, syntax.Var, syntax.Var) {
	recRef := b.varRef("f")
	bodyRef := b.varRef("f")
	term := b.let(
		b.pVar("f"),
		b.fun(b.pVar("n"),
			b.ifExp(
				b.binOp(syntax.OpIntEq, b.varRef("n"), b.intLit(0)),
				b.intLit(1),
				b.binOp(syntax.OpIntTimes, b.varRef("n"),
					b.ap(recRef, b.binOp(syntax.OpIntMinus, b.varRef("n"), b.intLit(1)))))),
		b.ap(bodyRef, b.intLit(5)))
	return term, recRef, bodyRef
}
