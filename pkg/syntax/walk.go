package syntax

// Children returns a node's immediate children in source order. Rules and
// sum variants count: they are terms with ids of their own.
func Children(t Term) []Term {
	switch t := t.(type) {
	case MultiHole:
		return t.Parts
	case ListLit:
		return expTerms(t.Items)
	case Tuple:
		return expTerms(t.Items)
	case Cons:
		return []Term{t.Head, t.Tail}
	case Fun:
		return []Term{t.Param, t.Body}
	case Ap:
		return []Term{t.Fn, t.Arg}
	case Let:
		return []Term{t.Pat, t.Def, t.Body}
	case TypeAlias:
		return []Term{t.Pat, t.Def, t.Body}
	case If:
		return []Term{t.Cond, t.Then, t.Else}
	case Seq:
		return []Term{t.First, t.Second}
	case Test:
		return []Term{t.Body}
	case BinOp:
		return []Term{t.Left, t.Right}
	case UnOp:
		return []Term{t.Operand}
	case Match:
		children := []Term{t.Scrutinee}
		for _, r := range t.Rules {
			children = append(children, r)
		}
		return children
	case Rule:
		return []Term{t.Pat, t.Body}

	case MultiHolePat:
		return t.Parts
	case TuplePat:
		return patTerms(t.Items)
	case ListPat:
		return patTerms(t.Items)
	case ConsPat:
		return []Term{t.Head, t.Tail}
	case AnnPat:
		return []Term{t.Pat, t.Ann}
	case ApPat:
		return []Term{t.Fn, t.Arg}

	case MultiHoleType:
		return t.Parts
	case ArrowType:
		return []Term{t.From, t.To}
	case TupleType:
		children := make([]Term, len(t.Items))
		for i, item := range t.Items {
			children[i] = item
		}
		return children
	case ListType:
		return []Term{t.Elem}
	case SumType:
		children := make([]Term, len(t.Variants))
		for i, v := range t.Variants {
			children[i] = v
		}
		return children
	case SumVariant:
		if t.Arg != nil {
			return []Term{t.Arg}
		}
	}
	return nil
}

// Walk visits t and every descendant, parents before children.
func Walk(t Term, visit func(Term)) {
	if t == nil {
		return
	}
	visit(t)
	for _, child := range Children(t) {
		Walk(child, visit)
	}
}

// AllIDs returns every id in the tree rooted at t, in visit order.
func AllIDs(t Term) []ID {
	var ids []ID
	Walk(t, func(node Term) {
		ids = append(ids, node.IDs()...)
	})
	return ids
}

func expTerms(es []Exp) []Term {
	out := make([]Term, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

func patTerms(ps []Pat) []Term {
	out := make([]Term, len(ps))
	for i, p := range ps {
		out[i] = p
	}
	return out
}
