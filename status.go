package signin

import (
	"github.com/dmitrymomot/signin/pkg/statemachine"
)

// Status is the validation lifecycle of a single field.
type Status string

const (
	StatusUntouched  Status = "untouched"
	StatusValidating Status = "validating"
	StatusValid      Status = "valid"
	StatusInvalid    Status = "invalid"
)

type statusEvent string

const (
	eventValidate statusEvent = "validate"
	eventPass     statusEvent = "pass"
	eventFail     statusEvent = "fail"
)

var statusTransitions = []statemachine.TransitionDef[Status, statusEvent]{
	{From: StatusUntouched, To: StatusValidating, Event: eventValidate},
	{From: StatusValid, To: StatusValidating, Event: eventValidate},
	{From: StatusInvalid, To: StatusValidating, Event: eventValidate},
	{From: StatusValidating, To: StatusValid, Event: eventPass},
	{From: StatusValidating, To: StatusInvalid, Event: eventFail},
}

func newStatusMachine() *statemachine.Machine[Status, statusEvent] {
	return statemachine.MustNew(StatusUntouched, statemachine.WithTransitions(statusTransitions))
}
