package syntax

// Term is implemented by every node of every sort.
type Term interface {
	// IDs returns the node's stable identifiers, never empty for nodes
	// produced by a well-formed builder or decoder.
	IDs() []ID
}

// Exp is an expression node.
type Exp interface {
	Term
	expTerm()
}

// Pat is a pattern node.
type Pat interface {
	Term
	patTerm()
}

// TypAnn is a surface type annotation node.
type TypAnn interface {
	Term
	typTerm()
}

// TPat is a type-pattern node, the binder position of a type alias.
type TPat interface {
	Term
	tpatTerm()
}

// NodeIDs is embedded by every node to carry its identifiers.
type NodeIDs struct {
	Ids []ID
}

// IDsOf builds a NodeIDs for embedding in a literal.
func IDsOf(ids ...ID) NodeIDs { return NodeIDs{Ids: ids} }

func (n NodeIDs) IDs() []ID { return n.Ids }

// PrimaryID returns the node's first identifier, used when a single id has
// to stand for the node, such as blame attribution in joined types.
func PrimaryID(t Term) ID {
	ids := t.IDs()
	if len(ids) == 0 {
		return NoID
	}
	return ids[0]
}
