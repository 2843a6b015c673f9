// Package statics assigns a static meaning to every node of a Lacuna term
// tree. One traversal threads a binding context downward and type and
// free-variable information upward, recording a statics entry per node id.
// The traversal is total: holes, unparseable fragments, unbound names, and
// inconsistent types all produce records, never failures, so a program is
// fully analyzed no matter how broken it is.
package statics

import (
	"fmt"

	"github.com/lacuna-lang/lacuna/pkg/syntax"
	"github.com/lacuna-lang/lacuna/pkg/typ"
)

// checker accumulates the info map of one traversal. The traversal itself
// is pure; the map being built is its only state.
type checker struct {
	infos InfoMap
}

// Check computes the statics of root under the built-in context.
func Check(root syntax.Exp) InfoMap {
	return CheckInCtx(Builtins(), root)
}

// CheckInCtx computes the statics of root under an explicit context.
func CheckInCtx(ctx typ.Ctx, root syntax.Exp) InfoMap {
	c := &checker{infos: InfoMap{}}
	c.exp(ctx, typ.Syn, root)
	return c.infos
}

func (c *checker) add(info Info) { c.infos.add(info) }

// recordExp settles and records an expression node, returning its fixed
// type.
func (c *checker) recordExp(e syntax.Exp, ctx typ.Ctx, mode typ.Mode, self typ.Self, free typ.CoCtx) typ.Typ {
	status := derive(ctx, mode, self)
	c.add(ExpInfo{Exp: e, Ctx: ctx, Mode: mode, Self: self, Free: free, Status: status})
	return status.Fixed
}

// recordPat settles and records a pattern node, returning its fixed type.
// Variable patterns bind at this type, so it must be computed before the
// context is extended.
func (c *checker) recordPat(p syntax.Pat, ctx typ.Ctx, mode typ.Mode, self typ.Self) typ.Typ {
	status := derive(ctx, mode, self)
	c.add(PatInfo{Pat: p, Ctx: ctx, Mode: mode, Self: self, Status: status})
	return status.Fixed
}

// anyPart traverses a fragment of arbitrary sort under synthesis; the
// parts of a multi-hole have no governing form to impose more. Only
// expression fragments contribute free uses; pattern fragments bind
// nothing outside themselves.
func (c *checker) anyPart(ctx typ.Ctx, t syntax.Term) typ.CoCtx {
	switch t := t.(type) {
	case syntax.Exp:
		_, co := c.exp(ctx, typ.Syn, t)
		return co
	case syntax.Pat:
		c.pat(ctx, typ.Syn, t)
	case syntax.TypAnn:
		c.typAnn(ctx, t)
	case syntax.TPat:
		c.tPat(ctx, t)
	default:
		panic(fmt.Sprintf("fragment of unhandled sort %T", t))
	}
	return nil
}

func unknown() typ.Typ { return typ.Unknown{Prov: typ.Internal} }

// boundVarNames collects the term-variable names among entries, as
// returned by Ctx.BindingsSince.
func boundVarNames(entries []typ.Entry) []string {
	var names []string
	for _, e := range entries {
		if v, ok := e.(typ.VarEntry); ok {
			names = append(names, v.Name)
		}
	}
	return names
}
