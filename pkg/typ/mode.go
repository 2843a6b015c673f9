package typ

import "fmt"

// ModeKind discriminates the bidirectional checking modes.
type ModeKind int

const (
	// SynMode synthesizes a type bottom-up.
	SynMode ModeKind = iota
	// SynFunMode synthesizes a type that will be matched against an arrow;
	// it is the mode of the function position of an application.
	SynFunMode
	// AnaMode checks against an expected type.
	AnaMode
)

// Mode is the top-down static expectation for a node. Modes propagate
// downward; self types propagate upward; the two combine into a status.
type Mode struct {
	Kind ModeKind
	// Expected is the type checked against; set only for AnaMode.
	Expected Typ
}

var (
	Syn    = Mode{Kind: SynMode}
	SynFun = Mode{Kind: SynFunMode}
)

// Ana returns the checking mode against expected. Checking against the
// mode-switch unknown is synthesis, so that collapse happens here, before
// any dispatch on the mode.
func Ana(expected Typ) Mode {
	if IsSynSwitch(expected) {
		return Syn
	}
	return Mode{Kind: AnaMode, Expected: expected}
}

func (m Mode) String() string {
	switch m.Kind {
	case SynFunMode:
		return "syn-fun"
	case AnaMode:
		return fmt.Sprintf("ana %s", m.Expected)
	default:
		return "syn"
	}
}
