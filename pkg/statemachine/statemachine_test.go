package statemachine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signin/pkg/statemachine"
)

type state string
type event string

const (
	untouched  state = "untouched"
	validating state = "validating"
	valid      state = "valid"
	invalid    state = "invalid"

	validate event = "validate"
	pass     event = "pass"
	fail     event = "fail"
)

var fieldTransitions = []statemachine.TransitionDef[state, event]{
	{From: untouched, To: validating, Event: validate},
	{From: valid, To: validating, Event: validate},
	{From: invalid, To: validating, Event: validate},
	{From: validating, To: valid, Event: pass},
	{From: validating, To: invalid, Event: fail},
}

func newFieldMachine(t *testing.T) *statemachine.Machine[state, event] {
	t.Helper()
	m, err := statemachine.New(untouched, statemachine.WithTransitions(fieldTransitions))
	require.NoError(t, err)
	return m
}

func TestMachine(t *testing.T) {
	t.Parallel()

	t.Run("basic transitions", func(t *testing.T) {
		t.Parallel()
		m := newFieldMachine(t)
		assert.Equal(t, untouched, m.Current())

		require.NoError(t, m.Fire(validate))
		assert.Equal(t, validating, m.Current())

		require.NoError(t, m.Fire(fail))
		assert.Equal(t, invalid, m.Current())

		require.NoError(t, m.Fire(validate))
		require.NoError(t, m.Fire(pass))
		assert.Equal(t, valid, m.Current())
	})

	t.Run("no transition available", func(t *testing.T) {
		t.Parallel()
		m := newFieldMachine(t)
		err := m.Fire(pass)
		require.Error(t, err)
		assert.True(t, statemachine.IsNoTransitionAvailableError(err))
		assert.Equal(t, untouched, m.Current())
	})

	t.Run("reset", func(t *testing.T) {
		t.Parallel()
		m := newFieldMachine(t)
		require.NoError(t, m.Fire(validate))
		require.NoError(t, m.Fire(pass))
		m.Reset()
		assert.Equal(t, untouched, m.Current())
		require.NoError(t, m.Fire(validate))
	})

	t.Run("invalid configuration", func(t *testing.T) {
		t.Parallel()
		_, err := statemachine.New[state, event]("")
		assert.ErrorIs(t, err, statemachine.ErrInvalidState)

		_, err = statemachine.New(untouched, statemachine.WithTransitions([]statemachine.TransitionDef[state, event]{
			{From: untouched, Event: validate},
		}))
		assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)

		_, err = statemachine.New(untouched, statemachine.WithTransitions([]statemachine.TransitionDef[state, event]{
			{From: untouched, To: validating, Event: validate},
			{From: untouched, To: valid, Event: validate},
		}))
		assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)

		m := newFieldMachine(t)
		assert.ErrorIs(t, m.Fire(""), statemachine.ErrInvalidEvent)
	})

	t.Run("must new panics on bad config", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			statemachine.MustNew(untouched, statemachine.WithTransitions([]statemachine.TransitionDef[state, event]{
				{From: untouched, To: validating},
			}))
		})
	})
}
