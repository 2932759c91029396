package domain

import "github.com/m04kA/SMC-DeliveryDates/pkg/types"

// SelectionState of the buyer's delivery date
type SelectionState int

const (
	SelectionUnset SelectionState = iota
	SelectionSet
)

func (s SelectionState) String() string {
	if s == SelectionSet {
		return "set"
	}
	return "unset"
}

// GateBehavior is the answer returned to the progress-interception hook
type GateBehavior string

const (
	GateAllow GateBehavior = "allow"
	GateBlock GateBehavior = "block"
)

// GateError is a buyer-facing error attached to a block decision
type GateError struct {
	Message string `json:"message"`
}

// GateDecision is either {allow} or {block, reason, errors}
type GateDecision struct {
	Behavior GateBehavior `json:"behavior"`
	Reason   string       `json:"reason,omitempty"`
	Errors   []GateError  `json:"errors,omitempty"`
}

func Allow() GateDecision {
	return GateDecision{Behavior: GateAllow}
}

func Block(reason string) GateDecision {
	return GateDecision{
		Behavior: GateBlock,
		Reason:   reason,
		Errors:   []GateError{{Message: reason}},
	}
}

// IsAllowed returns true for an allow decision
func (d GateDecision) IsAllowed() bool {
	return d.Behavior == GateAllow
}

// SelectionGate holds the buyer's delivery date selection
// Unset blocks checkout progress, Set allows it.
type SelectionGate struct {
	selected *types.Date
}

// NewSelectionGate starts Set when selected is non-nil, Unset otherwise
func NewSelectionGate(selected *types.Date) *SelectionGate {
	return &SelectionGate{selected: selected}
}

// Pick records d and moves the gate to Set
func (g *SelectionGate) Pick(d types.Date) {
	g.selected = &d
}

// Clear removes the selection and moves the gate to Unset
func (g *SelectionGate) Clear() {
	g.selected = nil
}

// Selected returns the recorded date, if any
func (g *SelectionGate) Selected() (types.Date, bool) {
	if g.selected == nil {
		return types.Date{}, false
	}
	return *g.selected, true
}

func (g *SelectionGate) State() SelectionState {
	if g.selected == nil {
		return SelectionUnset
	}
	return SelectionSet
}

// Evaluate answers one attempt to advance the flow
func (g *SelectionGate) Evaluate() GateDecision {
	if g.State() == SelectionUnset {
		return Block(MsgDeliveryDateNotSet)
	}
	return Allow()
}
