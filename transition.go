package histfsm

// step is one applied transition
type step struct {
	From StateID
	To   StateID
}

// findTransition looks up the single transition out of current for event
func (c *Config) findTransition(current StateID, event EventID) (step, bool) {
	s, ok := c.states[current]
	if !ok {
		return step{}, false
	}
	to, ok := s.Target(event)
	if !ok {
		return step{}, false
	}
	return step{From: current, To: to}, true
}

// scanTransitions walks every state in declaration order and fires each
// state that equals the running current state and handles event. Because
// current is updated as the scan goes, a transition into a state declared
// later can fire again within the same pass.
func (c *Config) scanTransitions(current StateID, event EventID) []step {
	var steps []step
	for _, id := range c.order {
		if id != current {
			continue
		}
		to, ok := c.states[id].Target(event)
		if !ok {
			continue
		}
		steps = append(steps, step{From: current, To: to})
		current = to
	}
	return steps
}
