// Package statemachine implements a small finite state machine over
// string-typed states and events.
//
// States and events are declared as named string types, which keeps
// transition tables readable and lets the compiler catch a state passed
// where an event is expected:
//
//	type Status string
//	type Event string
//
//	m := statemachine.MustNew[Status, Event]("untouched",
//	    statemachine.WithTransitions([]statemachine.TransitionDef[Status, Event]{
//	        {From: "untouched", To: "validating", Event: "validate"},
//	        {From: "validating", To: "valid", Event: "pass"},
//	    }),
//	)
//	if err := m.Fire("validate"); err != nil {
//	    // statemachine.IsNoTransitionAvailableError(err)
//	}
//
// Each from/event pair leads to exactly one state. Reset returns the machine
// to its initial state, so a machine can be reused for the next form cycle.
//
// Machine guards its state with a RWMutex and is safe for concurrent use.
package statemachine
