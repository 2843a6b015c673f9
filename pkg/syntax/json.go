package syntax

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/iancoleman/strcase"
)

// formName returns the tag a node form travels under on the wire and in
// the fingerprint: the snake_case of its type name.
func formName(t Term) string {
	return strcase.ToSnake(reflect.TypeOf(t).Name())
}

// FormName exposes the wire tag of a node's form, for tooling that labels
// nodes the same way the serialized tree does.
func FormName(t Term) string { return formName(t) }

// jsonNode is the wire shape of every term node. Only the fields relevant
// to a node's form are populated.
type jsonNode struct {
	Form string `json:"form"`
	Sort string `json:"sort,omitempty"`
	Ids  []ID   `json:"ids,omitempty"`

	Value json.RawMessage `json:"value,omitempty"`
	Name  string          `json:"name,omitempty"`
	Text  string          `json:"text,omitempty"`
	Tag   string          `json:"tag,omitempty"`
	Op    string          `json:"op,omitempty"`

	Parts    []*jsonNode `json:"parts,omitempty"`
	Items    []*jsonNode `json:"items,omitempty"`
	Rules    []*jsonNode `json:"rules,omitempty"`
	Variants []*jsonNode `json:"variants,omitempty"`

	Pat       *jsonNode `json:"pat,omitempty"`
	Ann       *jsonNode `json:"ann,omitempty"`
	Def       *jsonNode `json:"def,omitempty"`
	Body      *jsonNode `json:"body,omitempty"`
	Cond      *jsonNode `json:"cond,omitempty"`
	Then      *jsonNode `json:"then,omitempty"`
	Else      *jsonNode `json:"else,omitempty"`
	First     *jsonNode `json:"first,omitempty"`
	Second    *jsonNode `json:"second,omitempty"`
	Fn        *jsonNode `json:"fn,omitempty"`
	Arg       *jsonNode `json:"arg,omitempty"`
	Left      *jsonNode `json:"left,omitempty"`
	Right     *jsonNode `json:"right,omitempty"`
	Head      *jsonNode `json:"head,omitempty"`
	Tail      *jsonNode `json:"tail,omitempty"`
	Operand   *jsonNode `json:"operand,omitempty"`
	Scrutinee *jsonNode `json:"scrutinee,omitempty"`
	From      *jsonNode `json:"from,omitempty"`
	To        *jsonNode `json:"to,omitempty"`
	Elem      *jsonNode `json:"elem,omitempty"`
}

// DecodeExp reads an expression from its JSON form. Nodes carrying no ids
// are assigned fresh ones, chosen above any id the input does supply.
func DecodeExp(data []byte) (Exp, error) {
	var n jsonNode
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decode term: %w", err)
	}
	d := &decoder{}
	d.gen.next = maxAssignedID(&n)
	return d.exp(&n)
}

// EncodeExp writes an expression in its JSON form.
func EncodeExp(e Exp) ([]byte, error) {
	return json.MarshalIndent(encodeTerm(e), "", "  ")
}

type decoder struct {
	gen IDGen
}

func (d *decoder) ids(n *jsonNode) NodeIDs {
	if len(n.Ids) > 0 {
		return NodeIDs{Ids: n.Ids}
	}
	return NodeIDs{Ids: []ID{d.gen.Next()}}
}

func (d *decoder) exp(n *jsonNode) (Exp, error) {
	if n == nil {
		return nil, fmt.Errorf("missing expression")
	}
	ids := d.ids(n)
	switch n.Form {
	case formName(EmptyHole{}):
		return EmptyHole{NodeIDs: ids}, nil
	case formName(MultiHole{}):
		parts, err := d.parts(n.Parts)
		if err != nil {
			return nil, err
		}
		return MultiHole{NodeIDs: ids, Parts: parts}, nil
	case formName(Invalid{}):
		return Invalid{NodeIDs: ids, Text: n.Text}, nil
	case formName(Bool{}):
		var v bool
		if err := json.Unmarshal(n.Value, &v); err != nil {
			return nil, fmt.Errorf("bool literal: %w", err)
		}
		return Bool{NodeIDs: ids, Value: v}, nil
	case formName(Int{}):
		var v int64
		if err := json.Unmarshal(n.Value, &v); err != nil {
			return nil, fmt.Errorf("int literal: %w", err)
		}
		return Int{NodeIDs: ids, Value: v}, nil
	case formName(Float{}):
		var v float64
		if err := json.Unmarshal(n.Value, &v); err != nil {
			return nil, fmt.Errorf("float literal: %w", err)
		}
		return Float{NodeIDs: ids, Value: v}, nil
	case formName(String{}):
		var v string
		if err := json.Unmarshal(n.Value, &v); err != nil {
			return nil, fmt.Errorf("string literal: %w", err)
		}
		return String{NodeIDs: ids, Value: v}, nil
	case formName(Var{}):
		return Var{NodeIDs: ids, Name: n.Name}, nil
	case formName(Tag{}):
		return Tag{NodeIDs: ids, Name: n.Name}, nil
	case formName(ListLit{}):
		items, err := d.exps(n.Items)
		if err != nil {
			return nil, err
		}
		return ListLit{NodeIDs: ids, Items: items}, nil
	case formName(Tuple{}):
		items, err := d.exps(n.Items)
		if err != nil {
			return nil, err
		}
		return Tuple{NodeIDs: ids, Items: items}, nil
	case formName(Cons{}):
		head, err := d.exp(n.Head)
		if err != nil {
			return nil, err
		}
		tail, err := d.exp(n.Tail)
		if err != nil {
			return nil, err
		}
		return Cons{NodeIDs: ids, Head: head, Tail: tail}, nil
	case formName(Fun{}):
		param, err := d.pat(n.Pat)
		if err != nil {
			return nil, err
		}
		body, err := d.exp(n.Body)
		if err != nil {
			return nil, err
		}
		return Fun{NodeIDs: ids, Param: param, Body: body}, nil
	case formName(Ap{}):
		fn, err := d.exp(n.Fn)
		if err != nil {
			return nil, err
		}
		arg, err := d.exp(n.Arg)
		if err != nil {
			return nil, err
		}
		return Ap{NodeIDs: ids, Fn: fn, Arg: arg}, nil
	case formName(Let{}):
		pat, err := d.pat(n.Pat)
		if err != nil {
			return nil, err
		}
		def, err := d.exp(n.Def)
		if err != nil {
			return nil, err
		}
		body, err := d.exp(n.Body)
		if err != nil {
			return nil, err
		}
		return Let{NodeIDs: ids, Pat: pat, Def: def, Body: body}, nil
	case formName(TypeAlias{}):
		pat, err := d.tpat(n.Pat)
		if err != nil {
			return nil, err
		}
		def, err := d.typAnn(n.Def)
		if err != nil {
			return nil, err
		}
		body, err := d.exp(n.Body)
		if err != nil {
			return nil, err
		}
		return TypeAlias{NodeIDs: ids, Pat: pat, Def: def, Body: body}, nil
	case formName(If{}):
		cond, err := d.exp(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := d.exp(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := d.exp(n.Else)
		if err != nil {
			return nil, err
		}
		return If{NodeIDs: ids, Cond: cond, Then: then, Else: els}, nil
	case formName(Seq{}):
		first, err := d.exp(n.First)
		if err != nil {
			return nil, err
		}
		second, err := d.exp(n.Second)
		if err != nil {
			return nil, err
		}
		return Seq{NodeIDs: ids, First: first, Second: second}, nil
	case formName(Test{}):
		body, err := d.exp(n.Body)
		if err != nil {
			return nil, err
		}
		return Test{NodeIDs: ids, Body: body}, nil
	case formName(BinOp{}):
		left, err := d.exp(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := d.exp(n.Right)
		if err != nil {
			return nil, err
		}
		return BinOp{NodeIDs: ids, Op: Op(n.Op), Left: left, Right: right}, nil
	case formName(UnOp{}):
		operand, err := d.exp(n.Operand)
		if err != nil {
			return nil, err
		}
		return UnOp{NodeIDs: ids, Op: Op(n.Op), Operand: operand}, nil
	case formName(Match{}):
		scrut, err := d.exp(n.Scrutinee)
		if err != nil {
			return nil, err
		}
		rules := make([]Rule, len(n.Rules))
		for i, rn := range n.Rules {
			pat, err := d.pat(rn.Pat)
			if err != nil {
				return nil, err
			}
			body, err := d.exp(rn.Body)
			if err != nil {
				return nil, err
			}
			rules[i] = Rule{NodeIDs: d.ids(rn), Pat: pat, Body: body}
		}
		return Match{NodeIDs: ids, Scrutinee: scrut, Rules: rules}, nil
	}
	return nil, fmt.Errorf("unknown expression form %q", n.Form)
}

func (d *decoder) exps(ns []*jsonNode) ([]Exp, error) {
	if len(ns) == 0 {
		return nil, nil
	}
	out := make([]Exp, len(ns))
	for i, n := range ns {
		e, err := d.exp(n)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func (d *decoder) pat(n *jsonNode) (Pat, error) {
	if n == nil {
		return nil, fmt.Errorf("missing pattern")
	}
	ids := d.ids(n)
	switch n.Form {
	case formName(HolePat{}):
		return HolePat{NodeIDs: ids}, nil
	case formName(MultiHolePat{}):
		parts, err := d.parts(n.Parts)
		if err != nil {
			return nil, err
		}
		return MultiHolePat{NodeIDs: ids, Parts: parts}, nil
	case formName(InvalidPat{}):
		return InvalidPat{NodeIDs: ids, Text: n.Text}, nil
	case formName(WildPat{}):
		return WildPat{NodeIDs: ids}, nil
	case formName(VarPat{}):
		return VarPat{NodeIDs: ids, Name: n.Name}, nil
	case formName(IntPat{}):
		var v int64
		if err := json.Unmarshal(n.Value, &v); err != nil {
			return nil, fmt.Errorf("int pattern: %w", err)
		}
		return IntPat{NodeIDs: ids, Value: v}, nil
	case formName(FloatPat{}):
		var v float64
		if err := json.Unmarshal(n.Value, &v); err != nil {
			return nil, fmt.Errorf("float pattern: %w", err)
		}
		return FloatPat{NodeIDs: ids, Value: v}, nil
	case formName(BoolPat{}):
		var v bool
		if err := json.Unmarshal(n.Value, &v); err != nil {
			return nil, fmt.Errorf("bool pattern: %w", err)
		}
		return BoolPat{NodeIDs: ids, Value: v}, nil
	case formName(StringPat{}):
		var v string
		if err := json.Unmarshal(n.Value, &v); err != nil {
			return nil, fmt.Errorf("string pattern: %w", err)
		}
		return StringPat{NodeIDs: ids, Value: v}, nil
	case formName(TuplePat{}):
		items, err := d.pats(n.Items)
		if err != nil {
			return nil, err
		}
		return TuplePat{NodeIDs: ids, Items: items}, nil
	case formName(ListPat{}):
		items, err := d.pats(n.Items)
		if err != nil {
			return nil, err
		}
		return ListPat{NodeIDs: ids, Items: items}, nil
	case formName(ConsPat{}):
		head, err := d.pat(n.Head)
		if err != nil {
			return nil, err
		}
		tail, err := d.pat(n.Tail)
		if err != nil {
			return nil, err
		}
		return ConsPat{NodeIDs: ids, Head: head, Tail: tail}, nil
	case formName(AnnPat{}):
		pat, err := d.pat(n.Pat)
		if err != nil {
			return nil, err
		}
		ann, err := d.typAnn(n.Ann)
		if err != nil {
			return nil, err
		}
		return AnnPat{NodeIDs: ids, Pat: pat, Ann: ann}, nil
	case formName(TagPat{}):
		return TagPat{NodeIDs: ids, Name: n.Name}, nil
	case formName(ApPat{}):
		fn, err := d.pat(n.Fn)
		if err != nil {
			return nil, err
		}
		arg, err := d.pat(n.Arg)
		if err != nil {
			return nil, err
		}
		return ApPat{NodeIDs: ids, Fn: fn, Arg: arg}, nil
	}
	return nil, fmt.Errorf("unknown pattern form %q", n.Form)
}

func (d *decoder) pats(ns []*jsonNode) ([]Pat, error) {
	if len(ns) == 0 {
		return nil, nil
	}
	out := make([]Pat, len(ns))
	for i, n := range ns {
		p, err := d.pat(n)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func (d *decoder) typAnn(n *jsonNode) (TypAnn, error) {
	if n == nil {
		return nil, fmt.Errorf("missing type annotation")
	}
	ids := d.ids(n)
	switch n.Form {
	case formName(HoleType{}):
		return HoleType{NodeIDs: ids}, nil
	case formName(MultiHoleType{}):
		parts, err := d.parts(n.Parts)
		if err != nil {
			return nil, err
		}
		return MultiHoleType{NodeIDs: ids, Parts: parts}, nil
	case formName(InvalidType{}):
		return InvalidType{NodeIDs: ids, Text: n.Text}, nil
	case formName(NamedType{}):
		return NamedType{NodeIDs: ids, Name: n.Name}, nil
	case formName(ArrowType{}):
		from, err := d.typAnn(n.From)
		if err != nil {
			return nil, err
		}
		to, err := d.typAnn(n.To)
		if err != nil {
			return nil, err
		}
		return ArrowType{NodeIDs: ids, From: from, To: to}, nil
	case formName(TupleType{}):
		items := make([]TypAnn, len(n.Items))
		for i, item := range n.Items {
			ann, err := d.typAnn(item)
			if err != nil {
				return nil, err
			}
			items[i] = ann
		}
		return TupleType{NodeIDs: ids, Items: items}, nil
	case formName(ListType{}):
		elem, err := d.typAnn(n.Elem)
		if err != nil {
			return nil, err
		}
		return ListType{NodeIDs: ids, Elem: elem}, nil
	case formName(SumType{}):
		variants := make([]SumVariant, len(n.Variants))
		for i, vn := range n.Variants {
			v := SumVariant{NodeIDs: d.ids(vn), Tag: vn.Tag}
			if vn.Arg != nil {
				arg, err := d.typAnn(vn.Arg)
				if err != nil {
					return nil, err
				}
				v.Arg = arg
			}
			variants[i] = v
		}
		return SumType{NodeIDs: ids, Variants: variants}, nil
	}
	return nil, fmt.Errorf("unknown type form %q", n.Form)
}

func (d *decoder) tpat(n *jsonNode) (TPat, error) {
	if n == nil {
		return nil, fmt.Errorf("missing type pattern")
	}
	ids := d.ids(n)
	switch n.Form {
	case formName(HoleTPat{}):
		return HoleTPat{NodeIDs: ids}, nil
	case formName(InvalidTPat{}):
		return InvalidTPat{NodeIDs: ids, Text: n.Text}, nil
	case formName(VarTPat{}):
		return VarTPat{NodeIDs: ids, Name: n.Name}, nil
	}
	return nil, fmt.Errorf("unknown type pattern form %q", n.Form)
}

func (d *decoder) parts(ns []*jsonNode) ([]Term, error) {
	if len(ns) == 0 {
		return nil, nil
	}
	out := make([]Term, len(ns))
	for i, n := range ns {
		var (
			t   Term
			err error
		)
		switch n.Sort {
		case "pat":
			t, err = d.pat(n)
		case "typ":
			t, err = d.typAnn(n)
		case "tpat":
			t, err = d.tpat(n)
		default:
			t, err = d.exp(n)
		}
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// maxAssignedID finds the largest id anywhere in the raw tree, so fresh
// assignments never collide with supplied ones.
func maxAssignedID(n *jsonNode) ID {
	if n == nil {
		return NoID
	}
	best := NoID
	for _, id := range n.Ids {
		if id > best {
			best = id
		}
	}
	for _, child := range n.children() {
		if m := maxAssignedID(child); m > best {
			best = m
		}
	}
	return best
}

func (n *jsonNode) children() []*jsonNode {
	var out []*jsonNode
	out = append(out, n.Parts...)
	out = append(out, n.Items...)
	out = append(out, n.Rules...)
	out = append(out, n.Variants...)
	for _, child := range []*jsonNode{
		n.Pat, n.Ann, n.Def, n.Body, n.Cond, n.Then, n.Else,
		n.First, n.Second, n.Fn, n.Arg, n.Left, n.Right,
		n.Head, n.Tail, n.Operand, n.Scrutinee, n.From, n.To, n.Elem,
	} {
		if child != nil {
			out = append(out, child)
		}
	}
	return out
}

func encodeTerm(t Term) *jsonNode {
	n := &jsonNode{Form: formName(t), Ids: t.IDs()}
	switch t := t.(type) {
	case MultiHole:
		n.Parts = encodeParts(t.Parts)
	case Invalid:
		n.Text = t.Text
	case Bool:
		n.Value = mustRaw(t.Value)
	case Int:
		n.Value = mustRaw(t.Value)
	case Float:
		n.Value = mustRaw(t.Value)
	case String:
		n.Value = mustRaw(t.Value)
	case Var:
		n.Name = t.Name
	case Tag:
		n.Name = t.Name
	case ListLit:
		for _, item := range t.Items {
			n.Items = append(n.Items, encodeTerm(item))
		}
	case Tuple:
		for _, item := range t.Items {
			n.Items = append(n.Items, encodeTerm(item))
		}
	case Cons:
		n.Head = encodeTerm(t.Head)
		n.Tail = encodeTerm(t.Tail)
	case Fun:
		n.Pat = encodeTerm(t.Param)
		n.Body = encodeTerm(t.Body)
	case Ap:
		n.Fn = encodeTerm(t.Fn)
		n.Arg = encodeTerm(t.Arg)
	case Let:
		n.Pat = encodeTerm(t.Pat)
		n.Def = encodeTerm(t.Def)
		n.Body = encodeTerm(t.Body)
	case TypeAlias:
		n.Pat = encodeTerm(t.Pat)
		n.Def = encodeTerm(t.Def)
		n.Body = encodeTerm(t.Body)
	case If:
		n.Cond = encodeTerm(t.Cond)
		n.Then = encodeTerm(t.Then)
		n.Else = encodeTerm(t.Else)
	case Seq:
		n.First = encodeTerm(t.First)
		n.Second = encodeTerm(t.Second)
	case Test:
		n.Body = encodeTerm(t.Body)
	case BinOp:
		n.Op = string(t.Op)
		n.Left = encodeTerm(t.Left)
		n.Right = encodeTerm(t.Right)
	case UnOp:
		n.Op = string(t.Op)
		n.Operand = encodeTerm(t.Operand)
	case Match:
		n.Scrutinee = encodeTerm(t.Scrutinee)
		for _, r := range t.Rules {
			rn := &jsonNode{Form: formName(r), Ids: r.IDs(), Pat: encodeTerm(r.Pat), Body: encodeTerm(r.Body)}
			n.Rules = append(n.Rules, rn)
		}

	case MultiHolePat:
		n.Parts = encodeParts(t.Parts)
	case InvalidPat:
		n.Text = t.Text
	case VarPat:
		n.Name = t.Name
	case IntPat:
		n.Value = mustRaw(t.Value)
	case FloatPat:
		n.Value = mustRaw(t.Value)
	case BoolPat:
		n.Value = mustRaw(t.Value)
	case StringPat:
		n.Value = mustRaw(t.Value)
	case TuplePat:
		for _, item := range t.Items {
			n.Items = append(n.Items, encodeTerm(item))
		}
	case ListPat:
		for _, item := range t.Items {
			n.Items = append(n.Items, encodeTerm(item))
		}
	case ConsPat:
		n.Head = encodeTerm(t.Head)
		n.Tail = encodeTerm(t.Tail)
	case AnnPat:
		n.Pat = encodeTerm(t.Pat)
		n.Ann = encodeTerm(t.Ann)
	case TagPat:
		n.Name = t.Name
	case ApPat:
		n.Fn = encodeTerm(t.Fn)
		n.Arg = encodeTerm(t.Arg)

	case MultiHoleType:
		n.Parts = encodeParts(t.Parts)
	case InvalidType:
		n.Text = t.Text
	case NamedType:
		n.Name = t.Name
	case ArrowType:
		n.From = encodeTerm(t.From)
		n.To = encodeTerm(t.To)
	case TupleType:
		for _, item := range t.Items {
			n.Items = append(n.Items, encodeTerm(item))
		}
	case ListType:
		n.Elem = encodeTerm(t.Elem)
	case SumType:
		for _, v := range t.Variants {
			vn := &jsonNode{Form: formName(v), Ids: v.IDs(), Tag: v.Tag}
			if v.Arg != nil {
				vn.Arg = encodeTerm(v.Arg)
			}
			n.Variants = append(n.Variants, vn)
		}

	case InvalidTPat:
		n.Text = t.Text
	case VarTPat:
		n.Name = t.Name
	}
	return n
}

func encodeParts(parts []Term) []*jsonNode {
	out := make([]*jsonNode, len(parts))
	for i, p := range parts {
		child := encodeTerm(p)
		switch p.(type) {
		case Pat:
			child.Sort = "pat"
		case TypAnn:
			child.Sort = "typ"
		case TPat:
			child.Sort = "tpat"
		}
		out[i] = child
	}
	return out
}

func mustRaw(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		// literals of primitive Go types always marshal
		panic(err)
	}
	return data
}
