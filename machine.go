package histfsm

import (
	"fmt"
	"log/slog"
)

// Machine is the runtime FSM instance.
//
// A Machine is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type Machine struct {
	config  *Config
	current StateID
	history History

	legacyScan          bool
	logger              *slog.Logger
	stateChangeCallback func(from, to StateID)
}

// Option is a functional option for configuring a Machine
type Option func(*Machine)

// WithLogger sets the logger for the machine
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithStateChangeCallback sets a callback invoked after each state change
func WithStateChangeCallback(fn func(from, to StateID)) Option {
	return func(m *Machine) {
		m.stateChangeCallback = fn
	}
}

// WithLegacyScan makes Trigger scan every state in declaration order instead
// of looking up the current state only. A single event may then chain
// through several transitions when each hop lands on a state declared later.
func WithLegacyScan() Option {
	return func(m *Machine) {
		m.legacyScan = true
	}
}

// New creates a Machine positioned at the configured initial state.
// The configuration is copied; later changes to cfg do not affect the machine.
// No structural validation is done, see Config.Validate.
func New(cfg *Config, opts ...Option) (*Machine, error) {
	if cfg == nil {
		return nil, ErrConfigMissing
	}

	m := &Machine{
		config:  cfg.clone(),
		current: cfg.initial,
		logger:  Logger,
	}
	m.history.Push(cfg.initial)

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// OnStateChange sets a callback invoked after each state change
func (m *Machine) OnStateChange(fn func(from, to StateID)) {
	m.stateChangeCallback = fn
}

// State returns the current state
func (m *Machine) State() StateID {
	return m.current
}

// Initial returns the configured initial state
func (m *Machine) Initial() StateID {
	return m.config.initial
}

// Config returns the machine's own copy of its configuration.
// It must not be modified.
func (m *Machine) Config() *Config {
	return m.config
}

// History returns a copy of the visited states, oldest first
func (m *Machine) History() []StateID {
	return m.history.Entries()
}

// ChangeState moves directly to target, bypassing transition rules.
// The target is always appended to history, even when it equals the current state.
func (m *Machine) ChangeState(target StateID) error {
	if target == "" || !m.config.Has(target) {
		m.logger.Debug("rejected state change", "state", m.current, "target", target)
		return fmt.Errorf("change state to %q: %w", target, ErrInvalidState)
	}

	from := m.current
	m.current = target
	m.history.Push(target)

	m.logger.Debug("state changed", "from", from, "to", target)
	m.notify(from)
	return nil
}

// Trigger fires event from the current state.
// History only grows when the new state differs from the last recorded one.
func (m *Machine) Trigger(event EventID) error {
	var steps []step
	if m.legacyScan {
		steps = m.config.scanTransitions(m.current, event)
	} else if s, ok := m.config.findTransition(m.current, event); ok {
		steps = []step{s}
	}

	if len(steps) == 0 {
		m.logger.Debug("no transition found", "event", event, "state", m.current)
		return fmt.Errorf("event %q in state %q: %w", event, m.current, ErrNoTransition)
	}

	from := m.current
	for _, s := range steps {
		m.logger.Debug("executing transition", "event", event, "from", s.From, "to", s.To)
		m.current = s.To
		m.history.PushDistinct(s.To)
	}

	m.notify(from)
	return nil
}

// Reset returns to the initial state. History is left untouched.
func (m *Machine) Reset() {
	from := m.current
	m.current = m.config.initial

	m.logger.Debug("reset", "from", from, "to", m.current)
	m.notify(from)
}

// States returns all states in declaration order, or, when event is not
// empty, only the states that define a transition for event.
func (m *Machine) States(event EventID) []StateID {
	if event == "" {
		return m.config.StateIDs()
	}

	var out []StateID
	for _, id := range m.config.order {
		if _, ok := m.config.states[id].Target(event); ok {
			out = append(out, id)
		}
	}
	return out
}

// CanUndo reports whether Undo would succeed
func (m *Machine) CanUndo() bool {
	_, ok := m.history.Previous(m.current)
	return ok
}

// CanRedo reports whether Redo would succeed
func (m *Machine) CanRedo() bool {
	_, ok := m.history.Next(m.current)
	return ok
}

// Undo moves to the history entry before the last occurrence of the current state
func (m *Machine) Undo() bool {
	prev, ok := m.history.Previous(m.current)
	if !ok {
		m.logger.Debug("undo unavailable", "state", m.current)
		return false
	}

	from := m.current
	m.current = prev

	m.logger.Debug("undo", "from", from, "to", prev)
	m.notify(from)
	return true
}

// Redo moves to the history entry after the last occurrence of the current state
func (m *Machine) Redo() bool {
	next, ok := m.history.Next(m.current)
	if !ok {
		m.logger.Debug("redo unavailable", "state", m.current)
		return false
	}

	from := m.current
	m.current = next

	m.logger.Debug("redo", "from", from, "to", next)
	m.notify(from)
	return true
}

// ClearHistory empties the history. The current state is kept.
func (m *Machine) ClearHistory() {
	m.history.Clear()
	m.logger.Debug("history cleared", "state", m.current)
}

func (m *Machine) notify(from StateID) {
	if m.stateChangeCallback != nil && from != m.current {
		m.stateChangeCallback(from, m.current)
	}
}
