package typ

// Join returns the most specific type consistent with both t1 and t2, or
// false when none exists. Unknowns absorb: the join of an unknown with any
// type is that type. Type variables bound as singletons in ctx resolve to
// their definitions, so two syntactically different types can join through
// an alias visible only in context.
func Join(ctx Ctx, t1, t2 Typ) (Typ, bool) {
	if u1, ok := t1.(Unknown); ok {
		if u2, ok := t2.(Unknown); ok {
			return Unknown{Prov: joinProv(u1.Prov, u2.Prov)}, true
		}
		return t2, true
	}
	if _, ok := t2.(Unknown); ok {
		return t1, true
	}

	v1, ok1 := t1.(Var)
	v2, ok2 := t2.(Var)
	switch {
	case ok1 && ok2 && v1.Name == v2.Name:
		return t1, true
	case ok1:
		if alias, ok := ctx.Alias(v1.Name); ok {
			return Join(ctx, alias, t2)
		}
		if ok2 {
			if alias, ok := ctx.Alias(v2.Name); ok {
				return Join(ctx, t1, alias)
			}
		}
		// an abstract type variable joins only with itself or an unknown
		return nil, false
	case ok2:
		if alias, ok := ctx.Alias(v2.Name); ok {
			return Join(ctx, t1, alias)
		}
		return nil, false
	}

	if r1, ok := t1.(Rec); ok {
		r2, ok := t2.(Rec)
		if !ok {
			return nil, false
		}
		body2 := r2.Body
		if r2.Name != r1.Name {
			body2 = Subst(body2, r2.Name, Var{Name: r1.Name})
		}
		inner := ctx.Extend(TVarEntry{Name: r1.Name})
		body, ok := Join(inner, r1.Body, body2)
		if !ok {
			return nil, false
		}
		return Rec{Name: r1.Name, Body: body}, true
	}
	if _, ok := t2.(Rec); ok {
		return nil, false
	}

	switch t1 := t1.(type) {
	case Prim:
		if t2, ok := t2.(Prim); ok && t1 == t2 {
			return t1, true
		}
	case Arrow:
		t2, ok := t2.(Arrow)
		if !ok {
			break
		}
		from, ok := Join(ctx, t1.From, t2.From)
		if !ok {
			break
		}
		to, ok := Join(ctx, t1.To, t2.To)
		if !ok {
			break
		}
		return Arrow{From: from, To: to}, true
	case Prod:
		t2, ok := t2.(Prod)
		if !ok || len(t1.Elems) != len(t2.Elems) {
			break
		}
		if len(t1.Elems) == 0 {
			return t1, true
		}
		elems := make([]Typ, len(t1.Elems))
		for i, e := range t1.Elems {
			joined, ok := Join(ctx, e, t2.Elems[i])
			if !ok {
				return nil, false
			}
			elems[i] = joined
		}
		return Prod{Elems: elems}, true
	case List:
		t2, ok := t2.(List)
		if !ok {
			break
		}
		elem, ok := Join(ctx, t1.Elem, t2.Elem)
		if !ok {
			break
		}
		return List{Elem: elem}, true
	case Sum:
		t2, ok := t2.(Sum)
		if !ok || len(t1.Variants) != len(t2.Variants) {
			break
		}
		variants := make([]Variant, len(t1.Variants))
		for i, v1 := range t1.Variants {
			v2 := t2.Variants[i]
			if v1.Tag != v2.Tag || (v1.Arg == nil) != (v2.Arg == nil) {
				return nil, false
			}
			variants[i] = Variant{Tag: v1.Tag}
			if v1.Arg != nil {
				arg, ok := Join(ctx, v1.Arg, v2.Arg)
				if !ok {
					return nil, false
				}
				variants[i].Arg = arg
			}
		}
		return Sum{Variants: variants}, true
	}
	return nil, false
}

func joinProv(p1, p2 Provenance) Provenance {
	if p1 == Internal || p2 == Internal {
		return Internal
	}
	return SynSwitch
}

// JoinAll folds Join over ts, reporting false on the first failure. An
// empty ts has no join; callers decide what "no branches" means.
func JoinAll(ctx Ctx, ts []Typ) (Typ, bool) {
	if len(ts) == 0 {
		return nil, false
	}
	acc := ts[0]
	for _, t := range ts[1:] {
		joined, ok := Join(ctx, acc, t)
		if !ok {
			return nil, false
		}
		acc = joined
	}
	return acc, true
}

// Consistent reports whether t1 and t2 agree up to unknowns, resolving
// aliases bound in ctx.
func Consistent(ctx Ctx, t1, t2 Typ) bool {
	_, ok := Join(ctx, t1, t2)
	return ok
}

// HeadNormal resolves alias references until the head constructor of t is
// apparent. Abstract and unbound variables are left as they are.
func HeadNormal(ctx Ctx, t Typ) Typ {
	for {
		v, ok := t.(Var)
		if !ok {
			return t
		}
		alias, ok := ctx.Alias(v.Name)
		if !ok {
			return t
		}
		t = alias
	}
}

// MatchedArrow destructures t as a function type. A type that is not (yet)
// an arrow yields a pair of unknowns, so an ill-typed application site
// still produces usable parameter and result types.
func MatchedArrow(ctx Ctx, t Typ) (Typ, Typ) {
	if a, ok := HeadNormal(ctx, t).(Arrow); ok {
		return a.From, a.To
	}
	return Unknown{Internal}, Unknown{Internal}
}

// MatchedList destructures t as a list type, yielding an unknown element
// type when it is not one.
func MatchedList(ctx Ctx, t Typ) Typ {
	if l, ok := HeadNormal(ctx, t).(List); ok {
		return l.Elem
	}
	return Unknown{Internal}
}

// MatchedProd splits t into n component types, yielding all unknowns when
// t is not a product of that width.
func MatchedProd(ctx Ctx, t Typ, n int) []Typ {
	if p, ok := HeadNormal(ctx, t).(Prod); ok && len(p.Elems) == n {
		return p.Elems
	}
	elems := make([]Typ, n)
	for i := range elems {
		elems[i] = Unknown{Internal}
	}
	return elems
}

// MatchedArrowMode splits mode across a function's parameter and body
// positions.
func MatchedArrowMode(ctx Ctx, m Mode) (Mode, Mode) {
	if m.Kind != AnaMode {
		return Syn, Syn
	}
	from, to := MatchedArrow(ctx, m.Expected)
	return Ana(from), Ana(to)
}

// MatchedListMode derives the mode of a list's elements.
func MatchedListMode(ctx Ctx, m Mode) Mode {
	if m.Kind != AnaMode {
		return Syn
	}
	return Ana(MatchedList(ctx, m.Expected))
}

// MatchedProdMode splits mode across a tuple's n component positions.
func MatchedProdMode(ctx Ctx, m Mode, n int) []Mode {
	modes := make([]Mode, n)
	if m.Kind != AnaMode {
		for i := range modes {
			modes[i] = Syn
		}
		return modes
	}
	for i, t := range MatchedProd(ctx, m.Expected, n) {
		modes[i] = Ana(t)
	}
	return modes
}
