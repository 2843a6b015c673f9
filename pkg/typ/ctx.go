package typ

import "github.com/lacuna-lang/lacuna/pkg/syntax"

// Entry is one binding in a context.
type Entry interface {
	// EntryName is the name the entry binds.
	EntryName() string
}

// VarEntry binds a term variable to its type, tagged with the node that
// introduced it.
type VarEntry struct {
	Name string
	ID   syntax.ID
	Typ  Typ
}

func (e VarEntry) EntryName() string { return e.Name }

// TagEntry binds a sum-type constructor.
type TagEntry struct {
	Name string
	ID   syntax.ID
	Typ  Typ
}

func (e TagEntry) EntryName() string { return e.Name }

// TVarEntry binds a type variable. A nil Alias is an abstract type
// variable; otherwise the entry is a singleton naming Alias.
type TVarEntry struct {
	Name  string
	ID    syntax.ID
	Alias Typ
}

func (e TVarEntry) EntryName() string { return e.Name }

// Ctx is an ordered binding environment. Extension prepends, so lookup
// finds the innermost binding first and rebinding a name shadows rather
// than errors. The structure is persistent: extending one context never
// disturbs another that shares a tail.
type Ctx struct {
	head *ctxNode
}

type ctxNode struct {
	entry  Entry
	parent *ctxNode
}

// Extend prepends e.
func (c Ctx) Extend(e Entry) Ctx {
	return Ctx{head: &ctxNode{entry: e, parent: c.head}}
}

// LookupVar finds the innermost term-variable binding for name.
func (c Ctx) LookupVar(name string) (VarEntry, bool) {
	for n := c.head; n != nil; n = n.parent {
		if e, ok := n.entry.(VarEntry); ok && e.Name == name {
			return e, true
		}
	}
	return VarEntry{}, false
}

// LookupTag finds the innermost constructor binding for name.
func (c Ctx) LookupTag(name string) (TagEntry, bool) {
	for n := c.head; n != nil; n = n.parent {
		if e, ok := n.entry.(TagEntry); ok && e.Name == name {
			return e, true
		}
	}
	return TagEntry{}, false
}

// LookupTVar finds the innermost type-variable binding for name.
func (c Ctx) LookupTVar(name string) (TVarEntry, bool) {
	for n := c.head; n != nil; n = n.parent {
		if e, ok := n.entry.(TVarEntry); ok && e.Name == name {
			return e, true
		}
	}
	return TVarEntry{}, false
}

// Alias resolves name to its definition when it is bound as a singleton
// type variable.
func (c Ctx) Alias(name string) (Typ, bool) {
	e, ok := c.LookupTVar(name)
	if !ok || e.Alias == nil {
		return nil, false
	}
	return e.Alias, true
}

// BindingsSince returns the entries added to c on top of base, innermost
// first. base must be a tail of c.
func (c Ctx) BindingsSince(base Ctx) []Entry {
	var entries []Entry
	for n := c.head; n != nil && n != base.head; n = n.parent {
		entries = append(entries, n.entry)
	}
	return entries
}

// Entries returns every entry, innermost first. Shadowed entries are
// included; callers that want effective bindings should keep the first
// entry per name.
func (c Ctx) Entries() []Entry {
	var entries []Entry
	for n := c.head; n != nil; n = n.parent {
		entries = append(entries, n.entry)
	}
	return entries
}
