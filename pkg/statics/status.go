package statics

import (
	"fmt"
	"strings"

	"github.com/lacuna-lang/lacuna/pkg/typ"
)

// Err classifies a node-local static error. Every value ends up in the
// info map, never raised: a node in error degrades to an unknown type and
// traversal continues around it.
type Err interface {
	error
	staticsErr()
}

// FreeErr reports a reference to an unbound name.
type FreeErr struct {
	Kind typ.FreeKind
}

func (e FreeErr) staticsErr() {}

func (e FreeErr) Error() string { return fmt.Sprintf("unbound %s", e.Kind) }

// InconsistentBranchesErr reports branches of a joined synthesis that
// share no common type.
type InconsistentBranchesErr struct {
	Types []typ.Typ
}

func (e InconsistentBranchesErr) staticsErr() {}

func (e InconsistentBranchesErr) Error() string {
	strs := make([]string, len(e.Types))
	for i, t := range e.Types {
		strs[i] = t.String()
	}
	return "branches have no common type: " + strings.Join(strs, ", ")
}

// InconsistentErr reports a synthesized type inconsistent with the type
// the node was checked against.
type InconsistentErr struct {
	Syn typ.Typ
	Ana typ.Typ
}

func (e InconsistentErr) staticsErr() {}

func (e InconsistentErr) Error() string {
	return fmt.Sprintf("type %s is inconsistent with expected type %s", e.Syn, e.Ana)
}

// InvalidErr reports a fragment that did not parse.
type InvalidErr struct {
	Text string
}

func (e InvalidErr) staticsErr() {}

func (e InvalidErr) Error() string { return fmt.Sprintf("cannot parse %q", e.Text) }

// ErrOf extracts the error recorded on info, nil when there is none.
func ErrOf(info Info) Err {
	switch info := info.(type) {
	case ExpInfo:
		return info.Status.Err
	case PatInfo:
		return info.Status.Err
	case TypInfo:
		return info.Err
	case InvalidInfo:
		if info.IsError() {
			return InvalidErr{Text: info.Text}
		}
	}
	return nil
}

// Status is the settled meaning of a node: its top-down mode combined
// with its bottom-up self.
type Status struct {
	// Fixed is the type the node contributes to further checking. A node
	// in error degrades to the unknown.
	Fixed typ.Typ
	// Err is set when the node itself is in error.
	Err Err
	// Nojoin records branch types that did not reconcile under an
	// analytic mode, among themselves or with the expectation. The
	// expectation keeps typing the node, so the node itself is not in
	// error: each offending branch reports its own mismatch.
	Nojoin []typ.Typ
}

// synFunTemplate is the arrow a callee is matched against when its type is
// not yet known. Its unknowns redirect the argument position to synthesis.
var synFunTemplate = typ.Arrow{
	From: typ.Unknown{Prov: typ.SynSwitch},
	To:   typ.Unknown{Prov: typ.SynSwitch},
}

// derive is the single case analysis combining mode and self. Everything
// that decides "is this node in error" funnels through here.
func derive(ctx typ.Ctx, mode typ.Mode, self typ.Self) Status {
	switch self.Kind {
	case typ.FreeSelf:
		return Status{Fixed: unknown(), Err: FreeErr{Kind: self.Free}}

	case typ.MultiSelf:
		// never an error: the aggregated children carry the detail
		return Status{Fixed: unknown()}

	case typ.JoinedSelf:
		joined, ok := typ.JoinAll(ctx, self.SourceTypes())
		if !ok && len(self.Sources) == 0 {
			// a join of no branches is unconstrained, not an error
			joined, ok = unknown(), true
		}
		if !ok {
			if mode.Kind == typ.SynMode {
				return Status{
					Fixed: unknown(),
					Err:   InconsistentBranchesErr{Types: normalizeAll(self.SourceTypes())},
				}
			}
			return Status{Fixed: expectedOf(mode), Nojoin: normalizeAll(self.SourceTypes())}
		}
		wrapped := self.Wrap.Apply(joined)
		if mode.Kind == typ.SynMode {
			return Status{Fixed: wrapped}
		}
		// the branches agree among themselves; a clash with the
		// expectation is theirs to report, not the node's
		expected := expectedOf(mode)
		settled, ok := typ.Join(ctx, expected, wrapped)
		if !ok {
			return Status{Fixed: expected, Nojoin: normalizeAll(self.SourceTypes())}
		}
		return Status{Fixed: settled}

	default: // JustSelf
		return settle(ctx, mode, self.Typ)
	}
}

// settle checks a definite self type against the mode.
func settle(ctx typ.Ctx, mode typ.Mode, syn typ.Typ) Status {
	if mode.Kind == typ.SynMode {
		return Status{Fixed: syn}
	}
	expected := expectedOf(mode)
	joined, ok := typ.Join(ctx, expected, syn)
	if !ok {
		return Status{
			Fixed: unknown(),
			Err:   InconsistentErr{Syn: typ.Normalize(syn), Ana: typ.Normalize(expected)},
		}
	}
	return Status{Fixed: joined}
}

// expectedOf is the type an analytic-flavored mode checks against.
func expectedOf(mode typ.Mode) typ.Typ {
	if mode.Kind == typ.SynFunMode {
		return synFunTemplate
	}
	return mode.Expected
}

func normalizeAll(ts []typ.Typ) []typ.Typ {
	out := make([]typ.Typ, len(ts))
	for i, t := range ts {
		out[i] = typ.Normalize(t)
	}
	return out
}
