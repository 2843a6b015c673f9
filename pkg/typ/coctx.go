package typ

import "github.com/lacuna-lang/lacuna/pkg/syntax"

// Use records one reference to a variable: the node that referenced it and
// the mode the reference was checked in.
type Use struct {
	ID   syntax.ID
	Mode Mode
}

// CoCtx maps a variable name to the sites that referenced it. Where a
// context flows down a term, the co-context flows back up: it is how a
// binder learns which of its bindings were actually used, and in what
// mode, without a second traversal.
type CoCtx map[string][]Use

// UseOf returns a co-context recording a single reference.
func UseOf(name string, use Use) CoCtx {
	return CoCtx{name: {use}}
}

// Union merges co-contexts. Uses for a shared name concatenate in argument
// order; the result is always a fresh map.
func Union(cos ...CoCtx) CoCtx {
	merged := CoCtx{}
	for _, co := range cos {
		for name, uses := range co {
			merged[name] = append(merged[name], uses...)
		}
	}
	return merged
}

// Without returns co minus the given names. Binders call this to subtract
// the references their own bindings satisfied.
func (co CoCtx) Without(names ...string) CoCtx {
	if len(names) == 0 {
		return co
	}
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}
	kept := CoCtx{}
	for name, uses := range co {
		if !drop[name] {
			kept[name] = uses
		}
	}
	return kept
}
