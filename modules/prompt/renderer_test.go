package prompt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signin"
	"github.com/dmitrymomot/signin/modules/prompt"
)

type promptCall struct {
	Kind    string
	Message string
	Default string
}

// stubDriver answers prompts from scripted queues. Answers rejected by the
// prompt validator are recorded and the next scripted answer is used, the way
// survey asks again.
type stubDriver struct {
	inputs    []string
	passwords []string
	confirms  []bool

	calls    []promptCall
	rejected []string
	infos    []string
	err      error
}

func (s *stubDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	s.calls = append(s.calls, promptCall{Kind: "input", Message: cfg.Message, Default: cfg.Default})
	return s.answer(&s.inputs, cfg.Validator)
}

func (s *stubDriver) Password(_ context.Context, cfg prompt.InputConfig) (string, error) {
	s.calls = append(s.calls, promptCall{Kind: "password", Message: cfg.Message, Default: cfg.Default})
	return s.answer(&s.passwords, cfg.Validator)
}

func (s *stubDriver) answer(queue *[]string, validate func(string) error) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	for len(*queue) > 0 {
		v := (*queue)[0]
		*queue = (*queue)[1:]
		if validate != nil {
			if err := validate(v); err != nil {
				s.rejected = append(s.rejected, err.Error())
				continue
			}
		}
		return v, nil
	}
	return "", errors.New("no answer scripted")
}

func (s *stubDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	s.calls = append(s.calls, promptCall{Kind: "confirm", Message: cfg.Message})
	if s.err != nil {
		return false, s.err
	}
	if len(s.confirms) == 0 {
		return false, errors.New("no confirm scripted")
	}
	v := s.confirms[0]
	s.confirms = s.confirms[1:]
	return v, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func newEngine(t *testing.T, sink *[]signin.Payload, opts ...signin.Option) *signin.Engine {
	t.Helper()
	opts = append(opts, signin.WithSink(func(p signin.Payload) { *sink = append(*sink, p) }))
	e, err := signin.New(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := prompt.New(nil)
	require.ErrorIs(t, err, prompt.ErrNilEngine)

	var sink []signin.Payload
	r, err := prompt.New(newEngine(t, &sink), prompt.WithPromptDriver(nil))
	require.NoError(t, err)
	assert.NotNil(t, r)
}

func TestRunSubmitMode(t *testing.T) {
	t.Parallel()

	var sink []signin.Payload
	e := newEngine(t, &sink)
	driver := &stubDriver{
		inputs:    []string{"bad", "a@b.com"},
		passwords: []string{"abc", "abcdef"},
		confirms:  []bool{true},
	}
	r, err := prompt.New(e, prompt.WithPromptDriver(driver))
	require.NoError(t, err)

	payload, err := r.Run(context.Background())
	require.NoError(t, err)

	want := signin.Payload{Email: "a@b.com", Password: "abcdef", Remember: true}
	assert.Equal(t, want, payload)
	assert.Equal(t, []signin.Payload{want}, sink)

	wantCalls := []promptCall{
		{Kind: "input", Message: "Email Address"},
		{Kind: "password", Message: "Password"},
		{Kind: "confirm", Message: "Remember me"},
		{Kind: "input", Message: "Email Address", Default: "bad"},
		{Kind: "password", Message: "Password"},
	}
	if diff := cmp.Diff(wantCalls, driver.calls); diff != "" {
		t.Errorf("prompts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Enter a valid email address", "Password must be at least 6 characters"}, driver.infos); diff != "" {
		t.Errorf("infos mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, driver.rejected)

	st := e.State()
	assert.Equal(t, 2, st.SubmitCount)
	assert.True(t, st.SubmitSuccessful)
}

func TestRunChangeModeRejectsWhileTyping(t *testing.T) {
	t.Parallel()

	var sink []signin.Payload
	e := newEngine(t, &sink, signin.WithMode(signin.ModeChange))
	driver := &stubDriver{
		inputs:    []string{"", "bad", "a@b.com"},
		passwords: []string{"12345", "123456"},
		confirms:  []bool{false},
	}
	r, err := prompt.New(e, prompt.WithPromptDriver(driver), prompt.WithLabels(prompt.Labels{
		Email: "E-mail", Password: "Secret", Remember: "Keep me signed in",
	}))
	require.NoError(t, err)

	payload, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, signin.Payload{Email: "a@b.com", Password: "123456"}, payload)
	assert.Len(t, sink, 1)

	wantRejected := []string{
		"Email is required",
		"Enter a valid email address",
		"Password must be at least 6 characters",
	}
	if diff := cmp.Diff(wantRejected, driver.rejected); diff != "" {
		t.Errorf("rejections mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, driver.infos)
	assert.Equal(t, "E-mail", driver.calls[0].Message)
	assert.Equal(t, 1, e.State().SubmitCount)
}

func TestRunMaxAttempts(t *testing.T) {
	t.Parallel()

	var sink []signin.Payload
	e := newEngine(t, &sink)
	driver := &stubDriver{
		inputs:    []string{""},
		passwords: []string{""},
		confirms:  []bool{false},
	}
	r, err := prompt.New(e, prompt.WithPromptDriver(driver), prompt.WithMaxAttempts(1))
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.ErrorIs(t, err, prompt.ErrTooManyAttempts)
	assert.True(t, signin.IsValidationFailure(err))
	assert.Empty(t, sink)
	assert.Equal(t, []string{"Email is required", "Password is required"}, driver.infos)
}

func TestRunDriverError(t *testing.T) {
	t.Parallel()

	var sink []signin.Payload
	e := newEngine(t, &sink)
	driver := &stubDriver{err: prompt.ErrAborted}
	r, err := prompt.New(e, prompt.WithPromptDriver(driver))
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.ErrorIs(t, err, prompt.ErrAborted)
	assert.Empty(t, sink)
	assert.Zero(t, e.State().SubmitCount)
}
