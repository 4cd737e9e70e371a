package statemachine

import (
	"fmt"
	"sync"
)

// Machine is a finite state machine over string-typed states and events.
// Transitions are looked up through a nested map [from][event].
// All methods are safe for concurrent use.
type Machine[S, E ~string] struct {
	initial     S
	current     S
	transitions map[S]map[E]S
	mu          sync.RWMutex
}

// New creates a machine positioned at initial and applies the options.
func New[S, E ~string](initial S, opts ...Option[S, E]) (*Machine[S, E], error) {
	if initial == "" {
		return nil, ErrInvalidState
	}

	m := &Machine[S, E]{
		initial:     initial,
		current:     initial,
		transitions: make(map[S]map[E]S),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustNew is like New but panics on a configuration error.
func MustNew[S, E ~string](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Fire moves the machine along the transition registered for the current state and event.
func (m *Machine[S, E]) Fire(event E) error {
	if event == "" {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	to, ok := m.transitions[m.current][event]
	if !ok {
		return NewErrNoTransitionAvailable(string(m.current), string(event))
	}
	m.current = to
	return nil
}

// Reset returns the machine to its initial state.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// addTransition is only called during construction.
func (m *Machine[S, E]) addTransition(from, to S, event E) error {
	if from == "" || to == "" || event == "" {
		return ErrInvalidTransition
	}
	if _, ok := m.transitions[from][event]; ok {
		return fmt.Errorf("%w: duplicate %q on %q", ErrInvalidTransition, from, event)
	}
	if _, ok := m.transitions[from]; !ok {
		m.transitions[from] = make(map[E]S)
	}
	m.transitions[from][event] = to
	return nil
}
