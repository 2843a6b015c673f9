package statics

import (
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/lacuna-lang/lacuna/pkg/syntax"
	"github.com/lacuna-lang/lacuna/pkg/typ"
)

// Info is one node's statics record. Every id reachable from the checked
// root appears in the map exactly once; a form spanning several tokens
// shares one record across all of its ids.
type Info interface {
	// Term returns the node the record describes.
	Term() syntax.Term
	// IsError reports whether the node itself is in error. Errors are
	// node-local: children and parents report their own.
	IsError() bool
}

// ExpInfo is the record of an expression node.
type ExpInfo struct {
	Exp    syntax.Exp
	Ctx    typ.Ctx
	Mode   typ.Mode
	Self   typ.Self
	Free   typ.CoCtx
	Status Status
}

func (i ExpInfo) Term() syntax.Term { return i.Exp }

func (i ExpInfo) IsError() bool { return i.Status.Err != nil }

// PatInfo is the record of a pattern node. Patterns produce bindings
// rather than consume them, so they carry no free-use set.
type PatInfo struct {
	Pat    syntax.Pat
	Ctx    typ.Ctx
	Mode   typ.Mode
	Self   typ.Self
	Status Status
}

func (i PatInfo) Term() syntax.Term { return i.Pat }

func (i PatInfo) IsError() bool { return i.Status.Err != nil }

// TypInfo is the record of a surface type node; Ty is its elaboration.
type TypInfo struct {
	Ann syntax.TypAnn
	Ctx typ.Ctx
	Ty  typ.Typ
	Err Err
}

func (i TypInfo) Term() syntax.Term { return i.Ann }

func (i TypInfo) IsError() bool { return i.Err != nil }

// TPatInfo is the record of an alias binder.
type TPatInfo struct {
	TPat syntax.TPat
	Ctx  typ.Ctx
}

func (i TPatInfo) Term() syntax.Term { return i.TPat }

func (i TPatInfo) IsError() bool { return false }

// RulInfo is the record of one match arm: the arm's own context, extended
// with its pattern's bindings, and the scrutinee type the pattern was
// checked against.
type RulInfo struct {
	Rule      syntax.Rule
	Ctx       typ.Ctx
	Scrutinee typ.Typ
}

func (i RulInfo) Term() syntax.Term { return i.Rule }

func (i RulInfo) IsError() bool { return false }

// VariantInfo is the record of one constructor in a sum definition; Ty is
// the constructor's type.
type VariantInfo struct {
	Variant syntax.SumVariant
	Ctx     typ.Ctx
	Ty      typ.Typ
}

func (i VariantInfo) Term() syntax.Term { return i.Variant }

func (i VariantInfo) IsError() bool { return false }

// InvalidInfo is the record of a fragment with no well-formed parse, of
// any sort. Whitespace-only fragments are tolerated without error.
type InvalidInfo struct {
	Node syntax.Term
	Text string
	Ctx  typ.Ctx
}

func (i InvalidInfo) Term() syntax.Term { return i.Node }

func (i InvalidInfo) IsError() bool { return strings.TrimSpace(i.Text) != "" }

// InfoMap is the product of one traversal: the statics of every node,
// keyed by each of its ids. It is read-only for consumers and superseded
// wholesale when the term changes.
type InfoMap map[syntax.ID]Info

// add records info under every id of its node. The record is computed
// once and fanned out, so ids of one form always agree.
func (m InfoMap) add(info Info) {
	for _, id := range info.Term().IDs() {
		m[id] = info
	}
}

// Get returns the record for id. A miss for an id reachable from the
// checked root is an engine bug, not a property of the program.
func (m InfoMap) Get(id syntax.ID) (Info, error) {
	info, ok := m[id]
	if !ok {
		return nil, errors.Errorf("no statics recorded for id %d", id)
	}
	return info, nil
}

// IsError reports whether the node owning id is in error.
func (m InfoMap) IsError(id syntax.ID) (bool, error) {
	info, err := m.Get(id)
	if err != nil {
		return false, err
	}
	return info.IsError(), nil
}

// FixedType returns the type a node contributes to its surroundings after
// error fixup: nodes in error degrade to the unknown type.
func (m InfoMap) FixedType(id syntax.ID) (typ.Typ, error) {
	info, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	switch info := info.(type) {
	case ExpInfo:
		return typ.Normalize(info.Status.Fixed), nil
	case PatInfo:
		return typ.Normalize(info.Status.Fixed), nil
	case TypInfo:
		return typ.Normalize(info.Ty), nil
	case VariantInfo:
		return typ.Normalize(info.Ty), nil
	case InvalidInfo:
		return unknown(), nil
	default:
		return nil, errors.Errorf("id %d names a %T, which has no type", id, info)
	}
}

// SelfType projects a node's mode-independent self into a single type.
// Joined selves are collapsed under the node's own context; selves with no
// definite type project to the unknown.
func (m InfoMap) SelfType(id syntax.ID) (typ.Typ, error) {
	info, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	switch info := info.(type) {
	case ExpInfo:
		return selfType(info.Ctx, info.Self), nil
	case PatInfo:
		return selfType(info.Ctx, info.Self), nil
	case TypInfo:
		return typ.Normalize(info.Ty), nil
	default:
		return nil, errors.Errorf("id %d names a %T, which has no self type", id, info)
	}
}

func selfType(ctx typ.Ctx, self typ.Self) typ.Typ {
	switch self.Kind {
	case typ.JustSelf:
		return typ.Normalize(self.Typ)
	case typ.JoinedSelf:
		if joined, ok := typ.JoinAll(ctx, self.SourceTypes()); ok {
			return typ.Normalize(self.Wrap.Apply(joined))
		}
		return unknown()
	default:
		return unknown()
	}
}

// ModeOf returns the mode an expression or pattern node was checked in.
func (m InfoMap) ModeOf(id syntax.ID) (typ.Mode, error) {
	info, err := m.Get(id)
	if err != nil {
		return typ.Mode{}, err
	}
	switch info := info.(type) {
	case ExpInfo:
		return info.Mode, nil
	case PatInfo:
		return info.Mode, nil
	default:
		return typ.Mode{}, errors.Errorf("id %d names a %T, which has no mode", id, info)
	}
}

// CoCtxOf returns the free-variable uses recorded on an expression node.
func (m InfoMap) CoCtxOf(id syntax.ID) (typ.CoCtx, error) {
	info, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	exp, ok := info.(ExpInfo)
	if !ok {
		return nil, errors.Errorf("id %d names a %T, which has no free-use set", id, info)
	}
	return exp.Free, nil
}

// Terms recovers the node behind every id, for tooling that maps statics
// back to syntax.
func (m InfoMap) Terms() map[syntax.ID]syntax.Term {
	terms := make(map[syntax.ID]syntax.Term, len(m))
	for id, info := range m {
		terms[id] = info.Term()
	}
	return terms
}

// ErrorIDs returns the ids of every node in error, ascending.
func (m InfoMap) ErrorIDs() []syntax.ID {
	var ids []syntax.ID
	for id, info := range m {
		if info.IsError() {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}
