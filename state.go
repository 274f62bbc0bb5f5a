package histfsm

// StateDefinition holds the outgoing transitions of a state.
// Events keep the order in which they were declared.
type StateDefinition struct {
	ID StateID

	events      []EventID
	transitions map[EventID]StateID
}

func newStateDefinition(id StateID) *StateDefinition {
	return &StateDefinition{
		ID:          id,
		transitions: make(map[EventID]StateID),
	}
}

// On maps event to a destination state. Redeclaring an event overwrites its
// destination but keeps its original position.
func (s *StateDefinition) On(event EventID, to StateID) *StateDefinition {
	if _, ok := s.transitions[event]; !ok {
		s.events = append(s.events, event)
	}
	s.transitions[event] = to
	return s
}

// Target returns the destination for event, if the state defines one
func (s *StateDefinition) Target(event EventID) (StateID, bool) {
	if s == nil {
		return "", false
	}
	to, ok := s.transitions[event]
	return to, ok
}

// Events returns the events this state reacts to, in declaration order
func (s *StateDefinition) Events() []EventID {
	out := make([]EventID, len(s.events))
	copy(out, s.events)
	return out
}

// Transitions returns a copy of the event to destination table
func (s *StateDefinition) Transitions() map[EventID]StateID {
	out := make(map[EventID]StateID, len(s.transitions))
	for ev, to := range s.transitions {
		out[ev] = to
	}
	return out
}
