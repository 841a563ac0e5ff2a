package invoice

// State is the invoice lifecycle state.
type State string

const (
	StateDraft     State = "DRAFT"
	StateConfirmed State = "CONFIRMED"
	StatePaid      State = "PAID"
	StateCancelled State = "CANCELLED"
)

func (s State) String() string {
	return string(s)
}

// AllStates lists the lifecycle states in progression order.
func AllStates() []State {
	return []State{StateDraft, StateConfirmed, StatePaid, StateCancelled}
}

var ValidStates = map[State]bool{
	StateDraft:     true,
	StateConfirmed: true,
	StatePaid:      true,
	StateCancelled: true,
}

func (s State) CanTransitionTo(target State) bool {
	transitions := map[State][]State{
		StateDraft:     {StateConfirmed, StateCancelled},
		StateConfirmed: {StatePaid, StateCancelled},
		StatePaid:      {},
		StateCancelled: {StateDraft},
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
