package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signin/pkg/binder"
)

type loginSignals struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

func TestSignals(t *testing.T) {
	t.Parallel()

	t.Run("json body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.com","password":"abcdef","remember":true}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Datastar-Request", "true")

		var got loginSignals
		require.NoError(t, binder.Signals()(req, &got))
		assert.Equal(t, loginSignals{Email: "a@b.com", Password: "abcdef", Remember: true}, got)
	})

	t.Run("query parameter on GET", func(t *testing.T) {
		t.Parallel()
		q := url.Values{"datastar": {`{"email":"a@b.com"}`}}
		req := httptest.NewRequest(http.MethodGet, "/?"+q.Encode(), nil)

		var got loginSignals
		require.NoError(t, binder.Signals()(req, &got))
		assert.Equal(t, "a@b.com", got.Email)
	})

	t.Run("malformed payload", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
		req.Header.Set("Content-Type", "application/json")

		var got loginSignals
		assert.ErrorIs(t, binder.Signals()(req, &got), binder.ErrFailedToParseSignals)
	})

	t.Run("not applicable to plain forms", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("email=x"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got loginSignals
		assert.ErrorIs(t, binder.Signals()(req, &got), binder.ErrBinderNotApplicable)
	})
}
