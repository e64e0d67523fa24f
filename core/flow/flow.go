package flow

import (
	"github.com/pkg/errors"
)

// Multi-step console flows used to be integer step counters with the order
// inferred from field presence. This is the explicit replacement: named
// states, declared transitions, and guards that must pass before advancing.

type State string

type (
	guard func() error

	transition struct {
		to    State
		guard guard
	}

	Flow struct {
		name        string
		current     State
		transitions map[State][]transition
		terminal    map[State]bool
	}
)

func New(name string, initial State) *Flow {
	return &Flow{
		name:        name,
		current:     initial,
		transitions: make(map[State][]transition),
		terminal:    make(map[State]bool),
	}
}

// Permit declares a transition; the optional guard runs on Advance and
// blocks it with the returned error.
func (f *Flow) Permit(from, to State, guards ...guard) *Flow {
	var g guard
	if len(guards) > 0 {
		g = guards[0]
	}
	f.transitions[from] = append(f.transitions[from], transition{to: to, guard: g})
	return f
}

// Terminal marks states with no outgoing transitions as intentionally final.
func (f *Flow) Terminal(states ...State) *Flow {
	for _, s := range states {
		f.terminal[s] = true
	}
	return f
}

func (f *Flow) Current() State {
	return f.current
}

func (f *Flow) Done() bool {
	return f.terminal[f.current]
}

// Advance moves to the named state. An undeclared transition is an error,
// never a silent no-op; a failing guard leaves the current state unchanged.
func (f *Flow) Advance(to State) error {
	for _, t := range f.transitions[f.current] {
		if t.to != to {
			continue
		}
		if t.guard != nil {
			if err := t.guard(); err != nil {
				return err
			}
		}
		f.current = to
		return nil
	}
	return errors.Errorf("%s: no transition from %q to %q", f.name, f.current, to)
}

// CanAdvance reports whether the transition is declared, without running guards.
func (f *Flow) CanAdvance(to State) bool {
	for _, t := range f.transitions[f.current] {
		if t.to == to {
			return true
		}
	}
	return false
}
