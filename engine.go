package signin

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signin/pkg/broadcast"
	"github.com/dmitrymomot/signin/pkg/logger"
	"github.com/dmitrymomot/signin/pkg/statemachine"
	"github.com/dmitrymomot/signin/pkg/validator"
)

// Engine tracks the values of one sign-in form, validates them and gates submission.
// All methods are safe for concurrent use; every mutation is applied completely
// before the next one starts.
type Engine struct {
	id             string
	mode           Mode
	revalidate     bool
	minPasswordLen int
	messages       Messages
	rules          RuleSet
	sink           SubmitSink
	broadcaster    broadcast.Broadcaster[State]
	log            *slog.Logger

	// pubMu is held from the start of a mutation until its snapshot is
	// broadcast, so subscribers see snapshots in mutation order.
	pubMu sync.Mutex

	mu               sync.Mutex
	defaults         Values
	values           Values
	errors           map[Field]FieldError
	status           map[Field]*statemachine.Machine[Status, statusEvent]
	submitCount      int
	submitSuccessful bool
}

// New creates an engine and initializes it with the configured defaults.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		mode:           ModeSubmit,
		revalidate:     true,
		minPasswordLen: DefaultMinPasswordLength,
		log:            logger.Discard(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	if e.id == "" {
		e.id = uuid.NewString()
	}
	if e.rules == nil {
		e.rules = DefaultRules(e.minPasswordLen, e.messages)
	}
	if e.broadcaster == nil {
		e.broadcaster = broadcast.NewMemoryBroadcaster[State](1)
	}
	e.log = e.log.With(logger.Component("signin"), logger.FormID(e.id))
	e.status = make(map[Field]*statemachine.Machine[Status, statusEvent], len(Fields()))
	for _, f := range Fields() {
		e.status[f] = newStatusMachine()
	}

	e.mu.Lock()
	e.initLocked(e.defaults)
	e.mu.Unlock()

	return e, nil
}

func (e *Engine) ID() string { return e.id }

func (e *Engine) Mode() Mode { return e.mode }

// Initialize sets the starting values, clears all errors and submit history
// and marks every field untouched. No validation runs.
// The defaults are kept for Reset.
func (e *Engine) Initialize(defaults Values) State {
	st := e.update(func() {
		e.initLocked(defaults)
	}))
	return st
}

// Reset re-initializes the form with the current defaults.
func (e *Engine) Reset() State {
	st := e.update(func() {
		e.initLocked(e.defaults)
	}))
	return st
}

// State returns the current snapshot.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// SetValue stores value for field. The field is validated right away in
// ModeChange, and in ModeSubmit once a submit was attempted if revalidation is on.
// An unknown field or a value of the wrong kind is a caller defect and
// leaves the state unchanged.
func (e *Engine) SetValue(field Field, value Value) (State, error) {
	if !field.Valid() {
		return e.State(), fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if value == nil || value.Kind() != field.Kind() {
		return e.State(), fmt.Errorf("%w: %s expects a %s value", ErrValueKind, field, field.Kind())
	}

	st := e.update(func() {
		e.values.set(field, value)
		if e.mode == ModeChange || (e.revalidate && e.submitCount > 0) {
			e.validateLocked(field)
		}
	}))
	return st, nil
}

// ValidateField runs the rules of field in order and returns the first failure,
// or nil when every rule passes. The stored error and status are updated.
// Fields without rules, including unknown ones, always pass.
func (e *Engine) ValidateField(field Field) *FieldError {
	var fe *FieldError
	st := e.update(func() {
		fe = e.validateLocked(field)
	}))
	return fe
}

// ValidateAll validates every field that has rules. The result holds an entry
// per such field, nil when the field is valid.
func (e *Engine) ValidateAll() map[Field]*FieldError {
	var res map[Field]*FieldError
	st := e.update(func() {
		res = e.validateAllLocked()
	}))
	return res
}

// TrySubmit validates the whole form. When every field passes it builds the
// payload, hands it to the sink once and returns it. Otherwise it returns a
// *ValidationFailure with the full error mapping and the sink is not called.
func (e *Engine) TrySubmit() (Payload, error) {
	var (
		payload Payload
		failure *ValidationFailure
	)

	st := e.update(func() {
		e.validateAllLocked()
		e.submitCount++
		if len(e.errors) > 0 {
			e.submitSuccessful = false
			failure = &ValidationFailure{Errors: cloneErrors(e.errors)}
			return
		}
		e.submitSuccessful = true
		payload = Payload(e.values)
	}))

	if failure != nil {
		e.log.Debug("submit rejected",
			slog.Int("attempt", st.SubmitCount),
			slog.Any("fields", failure.Fields()),
		)
		return Payload{}, failure
	}

	e.log.Info("form submitted", slog.Int("attempt", st.SubmitCount), slog.Any("payload", payload))
	if e.sink != nil {
		e.sink(payload)
	}
	return payload, nil
}

// Subscribe returns a subscription receiving a snapshot after every mutation.
// Only the latest snapshot is kept for slow subscribers.
func (e *Engine) Subscribe(ctx context.Context) broadcast.Subscriber[State] {
	return e.broadcaster.Subscribe(ctx)
}

// Close ends all subscriptions.
func (e *Engine) Close() error {
	return e.broadcaster.Close()
}

// mutate runs fn under the lock and returns the resulting snapshot.
// The deferred unlock keeps the engine usable if a rule predicate panics.
func (e *Engine) mutate(fn func()) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn()
	return e.snapshotLocked()
}

// update applies fn like mutate and broadcasts the snapshot before the next
// mutation may start.
func (e *Engine) update(fn func()) State {
	e.pubMu.Lock()
	defer e.pubMu.Unlock()

	st := e.mutate(fn)
	e.broadcaster.Broadcast(st)
	return st
}

func (e *Engine) initLocked(defaults Values) {
	e.defaults = defaults
	e.values = defaults
	e.errors = make(map[Field]FieldError)
	e.submitCount = 0
	e.submitSuccessful = false

	for _, sm := range e.status {
		sm.Reset()
	}
}

func (e *Engine) validateAllLocked() map[Field]*FieldError {
	res := make(map[Field]*FieldError)
	for _, f := range e.rules.fields() {
		res[f] = e.validateLocked(f)
	}
	return res
}

func (e *Engine) validateLocked(field Field) *FieldError {
	sm, ok := e.status[field]
	if !ok {
		return nil
	}
	e.fire(sm, field, eventValidate)

	fe := validator.First(e.values.text(field), e.rules[field]...)
	if fe == nil {
		delete(e.errors, field)
		e.fire(sm, field, eventPass)
		e.log.Debug("field valid", logger.Field(field.String()))
		return nil
	}

	stored := *fe
	stored.TranslationValues = maps.Clone(fe.TranslationValues)
	e.errors[field] = stored
	e.fire(sm, field, eventFail)
	e.log.Debug("field invalid",
		logger.Field(field.String()),
		slog.String("code", string(fe.Code)),
	)
	fe.TranslationValues = maps.Clone(fe.TranslationValues)
	return fe
}

func (e *Engine) fire(sm *statemachine.Machine[Status, statusEvent], field Field, ev statusEvent) {
	if err := sm.Fire(ev); err != nil {
		e.log.Error("field status transition failed",
			logger.Field(field.String()),
			slog.String("event", string(ev)),
			logger.Error(err),
		)
	}
}

func (e *Engine) snapshotLocked() State {
	status := make(map[Field]Status, len(e.status))
	for f, sm := range e.status {
		status[f] = sm.Current()
	}

	dirty := make(map[Field]bool)
	for _, f := range Fields() {
		if e.values.Get(f) != e.defaults.Get(f) {
			dirty[f] = true
		}
	}

	return State{
		FormID:           e.id,
		Values:           e.values,
		Errors:           cloneErrors(e.errors),
		Status:           status,
		Dirty:            dirty,
		SubmitCount:      e.submitCount,
		SubmitSuccessful: e.submitSuccessful,
		Submittable:      submittable(e.errors),
	}
}
