package histfsm

import (
	"fmt"
)

// Config holds the FSM structure before building a Machine.
// States keep the order in which they were first declared.
type Config struct {
	initial StateID
	order   []StateID
	states  map[StateID]*StateDefinition
}

// NewConfig creates a new, empty configuration builder
func NewConfig() *Config {
	return &Config{
		states: make(map[StateID]*StateDefinition),
	}
}

// State declares a state. Declaring an existing state is a no-op.
func (c *Config) State(id StateID) *Config {
	c.define(id)
	return c
}

// Transition adds a transition rule, declaring the source state if needed.
// The destination is not checked; see Validate.
func (c *Config) Transition(from StateID, event EventID, to StateID) *Config {
	c.define(from).On(event, to)
	return c
}

// Initial sets the initial state
func (c *Config) Initial(id StateID) *Config {
	c.initial = id
	return c
}

func (c *Config) define(id StateID) *StateDefinition {
	if s, ok := c.states[id]; ok {
		return s
	}
	s := newStateDefinition(id)
	c.states[id] = s
	c.order = append(c.order, id)
	return s
}

// InitialState returns the configured initial state
func (c *Config) InitialState() StateID {
	return c.initial
}

// Has reports whether id is a declared state
func (c *Config) Has(id StateID) bool {
	_, ok := c.states[id]
	return ok
}

// Lookup returns the definition of a state
func (c *Config) Lookup(id StateID) (*StateDefinition, bool) {
	s, ok := c.states[id]
	return s, ok
}

// StateIDs returns all declared states in declaration order
func (c *Config) StateIDs() []StateID {
	out := make([]StateID, len(c.order))
	copy(out, c.order)
	return out
}

// Validate checks the configuration for dangling references.
// New does not call it: undefined initial or destination states are accepted
// and only surface when an operation looks them up.
func (c *Config) Validate() error {
	if c.initial == "" {
		return fmt.Errorf("no initial state defined")
	}

	if !c.Has(c.initial) {
		return fmt.Errorf("initial state %q not defined", c.initial)
	}

	for _, id := range c.order {
		s := c.states[id]
		for _, ev := range s.events {
			if to := s.transitions[ev]; !c.Has(to) {
				return fmt.Errorf("state %q event %q: transition to undefined state %q", id, ev, to)
			}
		}
	}

	return nil
}

// clone returns a deep copy so a Machine never shares mutable tables with its builder
func (c *Config) clone() *Config {
	out := &Config{
		initial: c.initial,
		order:   make([]StateID, len(c.order)),
		states:  make(map[StateID]*StateDefinition, len(c.states)),
	}
	copy(out.order, c.order)
	for id, s := range c.states {
		cp := newStateDefinition(id)
		for _, ev := range s.events {
			cp.On(ev, s.transitions[ev])
		}
		out.states[id] = cp
	}
	return out
}
