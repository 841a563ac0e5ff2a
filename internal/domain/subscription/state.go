package subscription

// State is the subscription lifecycle state.
type State string

const (
	StateDraft         State = "DRAFT"
	StateQuotationSent State = "QUOTATION_SENT"
	StateConfirmed     State = "CONFIRMED"
	StatePaused        State = "PAUSED"
	StateClosed        State = "CLOSED"
	// StateChurned is terminal and only ever set by data migration or an
	// external process; no in-core transition produces it.
	StateChurned State = "CHURNED"
)

func (s State) String() string {
	return string(s)
}

// AllStates lists the lifecycle states in progression order.
func AllStates() []State {
	return []State{StateDraft, StateQuotationSent, StateConfirmed, StatePaused, StateClosed, StateChurned}
}

var ValidStates = map[State]bool{
	StateDraft:         true,
	StateQuotationSent: true,
	StateConfirmed:     true,
	StatePaused:        true,
	StateClosed:        true,
	StateChurned:       true,
}

func (s State) CanTransitionTo(target State) bool {
	transitions := map[State][]State{
		StateDraft:         {StateQuotationSent, StateConfirmed},
		StateQuotationSent: {StateConfirmed},
		StateConfirmed:     {StatePaused, StateClosed},
		StatePaused:        {StateConfirmed, StateClosed},
		StateClosed:        {},
		StateChurned:       {},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}
	for _, st := range allowed {
		if st == target {
			return true
		}
	}
	return false
}

// IsActive reports whether the subscription is in a billable state.
func (s State) IsActive() bool {
	return s == StateConfirmed || s == StatePaused
}

// IsTerminal reports whether no write transition leaves this state.
func (s State) IsTerminal() bool {
	return s == StateClosed || s == StateChurned
}

// IsDeletable reports whether a subscription in this state may be removed.
func (s State) IsDeletable() bool {
	return s == StateDraft || s == StateQuotationSent
}
