package statemachine

import "fmt"

// Option configures a machine during construction.
type Option[S, E ~string] func(*Machine[S, E]) error

// TransitionDef defines a transition between states.
type TransitionDef[S, E ~string] struct {
	From  S
	To    S
	Event E
}

// WithTransitions adds the transitions in order. A from/event pair may be
// registered once.
func WithTransitions[S, E ~string](defs []TransitionDef[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) error {
		for i, t := range defs {
			if err := m.addTransition(t.From, t.To, t.Event); err != nil {
				return fmt.Errorf("failed to add transition[%d] %q->%q on %q: %w", i, t.From, t.To, t.Event, err)
			}
		}
		return nil
	}
}
