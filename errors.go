package histfsm

import "errors"

var (
	// ErrConfigMissing is returned by New when no configuration is given
	ErrConfigMissing = errors.New("config is missing")
	// ErrInvalidState is returned when a target state is empty or not defined
	ErrInvalidState = errors.New("invalid state")
	// ErrNoTransition is returned when the current state has no transition for an event
	ErrNoTransition = errors.New("no transition")
)
