// Package syntax holds the Lacuna term tree: the four term sorts plus sum
// definitions, the stable identifiers attached to every node, structural
// equality and hashing over whole terms, and the JSON form terms travel in.
//
// Terms are produced by an editing or decoding layer and consumed read-only
// by the statics engine. A node may carry several identifiers (multi-token
// forms fan one statics record out across all of them), so identity is a
// slice, never a single field.
package syntax

// ID is a process-unique identifier for one token of a term node.
type ID uint32

// NoID is the zero sentinel; builtin bindings and synthesized nodes use it.
const NoID ID = 0

// IsValid reports whether the ID is a real, assigned identifier.
func (id ID) IsValid() bool { return id != NoID }

// IDGen hands out fresh IDs, starting at 1. The zero value is ready to use.
// It is not safe for concurrent use; each decode or edit session owns one.
type IDGen struct {
	next ID
}

// Next returns a fresh ID.
func (g *IDGen) Next() ID {
	g.next++
	return g.next
}
