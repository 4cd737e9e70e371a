package prompt

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateSurveyErr(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, translateSurveyErr(terminal.InterruptErr), ErrAborted)

	other := errors.New("boom")
	assert.Equal(t, other, translateSurveyErr(other))
}

func TestStringValidator(t *testing.T) {
	t.Parallel()

	v := stringValidator(func(s string) error {
		if s == "" {
			return errors.New("empty")
		}
		return nil
	})
	assert.NoError(t, v("x"))
	assert.EqualError(t, v(""), "empty")
	assert.Error(t, v(42))
}

func TestSurveyDriverInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := NewSurveyDriver(&buf)
	require.NoError(t, d.Info(context.Background(), "hello"))
	assert.Equal(t, "hello\n", buf.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, d.Info(ctx, "ignored"), context.Canceled)
	_, err := d.Input(ctx, InputConfig{Message: "x"})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = d.Confirm(ctx, ConfirmConfig{Message: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}
