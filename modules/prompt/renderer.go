package prompt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/signin"
	"github.com/dmitrymomot/signin/pkg/logger"
)

// Labels are the prompt texts shown for each field.
type Labels struct {
	Email    string
	Password string
	Remember string
}

// DefaultLabels returns the labels of the sign-in page.
func DefaultLabels() Labels {
	return Labels{
		Email:    "Email Address",
		Password: "Password",
		Remember: "Remember me",
	}
}

// Renderer drives a sign-in Engine from the terminal.
type Renderer struct {
	engine      *signin.Engine
	driver      PromptDriver
	labels      Labels
	log         *slog.Logger
	maxAttempts int
}

// Option configures the Renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

func WithLabels(l Labels) Option {
	return func(r *Renderer) {
		r.labels = l
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMaxAttempts bounds the number of submit attempts. Zero means no limit.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n >= 0 {
			r.maxAttempts = n
		}
	}
}

// New creates a renderer for e.
func New(e *signin.Engine, opts ...Option) (*Renderer, error) {
	if e == nil {
		return nil, ErrNilEngine
	}
	r := &Renderer{
		engine: e,
		labels: DefaultLabels(),
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	r.log = r.log.With(logger.Component("signin_prompt"), logger.FormID(e.ID()))
	return r, nil
}

// Run prompts for every field, then submits. Fields that fail validation are
// prompted again until the submit succeeds, ctx ends or the attempt limit is
// reached. The payload is returned after the engine handed it to its sink.
func (r *Renderer) Run(ctx context.Context) (signin.Payload, error) {
	pending := signin.Fields()
	for attempt := 1; ; attempt++ {
		for _, f := range pending {
			if err := r.promptField(ctx, f); err != nil {
				return signin.Payload{}, err
			}
		}

		payload, err := r.engine.TrySubmit()
		if err == nil {
			return payload, nil
		}

		var failure *signin.ValidationFailure
		if !errors.As(err, &failure) {
			return signin.Payload{}, err
		}
		r.log.DebugContext(ctx, "submit rejected", slog.Int("attempt", attempt), logger.Error(err))

		for _, f := range failure.Fields() {
			if err := r.driver.Info(ctx, failure.Errors[f].Message); err != nil {
				return signin.Payload{}, err
			}
		}
		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return signin.Payload{}, errors.Join(ErrTooManyAttempts, err)
		}
		pending = failure.Fields()
	}
}

func (r *Renderer) promptField(ctx context.Context, f signin.Field) error {
	st := r.engine.State()

	switch f {
	case signin.Email:
		answer, err := r.driver.Input(ctx, InputConfig{
			Message:   r.labels.Email,
			Default:   st.Values.Email,
			Validator: r.validator(f),
		})
		if err != nil {
			return err
		}
		return r.set(f, signin.Text(answer))
	case signin.Password:
		answer, err := r.driver.Password(ctx, InputConfig{
			Message:   r.labels.Password,
			Validator: r.validator(f),
		})
		if err != nil {
			return err
		}
		return r.set(f, signin.Text(answer))
	case signin.Remember:
		answer, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: r.labels.Remember,
			Default: st.Values.Remember,
		})
		if err != nil {
			return err
		}
		return r.set(f, signin.Flag(answer))
	default:
		return fmt.Errorf("%w: %q", signin.ErrUnknownField, f)
	}
}

// validator feeds every answer through the engine in change mode, so the
// prompt rejects it with the field's own error text.
func (r *Renderer) validator(f signin.Field) func(string) error {
	if r.engine.Mode() != signin.ModeChange {
		return nil
	}
	return func(answer string) error {
		st, err := r.engine.SetValue(f, signin.Text(answer))
		if err != nil {
			return err
		}
		if fe, ok := st.Error(f); ok {
			return errors.New(fe.Message)
		}
		return nil
	}
}

func (r *Renderer) set(f signin.Field, v signin.Value) error {
	if _, err := r.engine.SetValue(f, v); err != nil {
		return err
	}
	return nil
}
