package signin_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signin"
	"github.com/dmitrymomot/signin/pkg/config"
	"github.com/dmitrymomot/signin/pkg/validator"
)

func TestEmailRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  validator.Code
	}{
		{"", validator.CodeRequired},
		{"plainaddress", validator.CodeInvalidFormat},
		{"user.example.com", validator.CodeInvalidFormat},
		{"user@localhost", validator.CodeInvalidFormat},
		{"user@@example.com", validator.CodeInvalidFormat},
		{"us er@example.com", validator.CodeInvalidFormat},
		{"user@exa mple.com", validator.CodeInvalidFormat},
		{"<user>@example.com", validator.CodeInvalidFormat},
		{"user.@example.com", validator.CodeInvalidFormat},
		{"user@-example.com", validator.CodeInvalidFormat},
		{" user@example.com", validator.CodeInvalidFormat},
		{"us\ver@example.com", validator.CodeInvalidFormat},
		{"us\u00a0er@example.com", validator.CodeInvalidFormat},
		{"us\u2003er@example.com", validator.CodeInvalidFormat},
		{"us\x00er@example.com", validator.CodeInvalidFormat},
		{"us\xffer@example.com", validator.CodeInvalidFormat},
		{"user\u200b@example.com", validator.CodeInvalidFormat},
		{"Bob <user@example.com>", validator.CodeInvalidFormat},
		{"user@example.com", ""},
		{"a@b.com", ""},
		{"first.last@sub.example.co.uk", ""},
		{"user+tag@example.com", ""},
		{"email@123.123.123.123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			e, _ := newEngine(t)
			setText(t, e, signin.Email, tt.value)
			fe := e.ValidateField(signin.Email)
			if tt.want == "" {
				assert.Nil(t, fe)
				return
			}
			require.NotNil(t, fe)
			assert.Equal(t, tt.want, fe.Code)
		})
	}
}

func TestEmailWithoutAtOrDotIsInvalid(t *testing.T) {
	t.Parallel()

	inputs := []string{"a", "ab", "abc.def", "a@b", "user@domain", "x@y-z", "@", "@.", "a.b.c"}
	e, _ := newEngine(t)
	for _, s := range inputs {
		setText(t, e, signin.Email, s)
		fe := e.ValidateField(signin.Email)
		require.NotNil(t, fe, s)
		assert.Equal(t, validator.CodeInvalidFormat, fe.Code, s)
	}
}

func TestPasswordRules(t *testing.T) {
	t.Parallel()

	e, _ := newEngine(t)
	for n := 0; n <= 12; n++ {
		setText(t, e, signin.Password, strings.Repeat("p", n))
		fe := e.ValidateField(signin.Password)
		switch {
		case n == 0:
			require.NotNil(t, fe)
			assert.Equal(t, validator.CodeRequired, fe.Code)
		case n < signin.DefaultMinPasswordLength:
			require.NotNil(t, fe, n)
			assert.Equal(t, validator.CodeTooShort, fe.Code, n)
		default:
			assert.Nil(t, fe, n)
		}
	}

	t.Run("length counts characters", func(t *testing.T) {
		t.Parallel()
		e, _ := newEngine(t)
		setText(t, e, signin.Password, "пароль")
		assert.Nil(t, e.ValidateField(signin.Password))
	})
}

func TestParseField(t *testing.T) {
	t.Parallel()

	for _, f := range signin.Fields() {
		got, err := signin.ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	assert.Equal(t, signin.KindFlag, signin.Remember.Kind())
	assert.Equal(t, signin.KindText, signin.Email.Kind())

	_, err := signin.ParseField("username")
	assert.ErrorIs(t, err, signin.ErrUnknownField)
}

func TestConfigOptions(t *testing.T) {
	t.Run("from environment", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)
		t.Setenv("SIGNIN_MODE", "change")
		t.Setenv("SIGNIN_REMEMBER_DEFAULT", "true")
		t.Setenv("SIGNIN_PASSWORD_MIN_LENGTH", "8")

		var cfg signin.Config
		require.NoError(t, config.Load(&cfg))
		opts, err := cfg.Options()
		require.NoError(t, err)

		e, err := signin.New(opts...)
		require.NoError(t, err)
		assert.Equal(t, signin.ModeChange, e.Mode())
		assert.True(t, e.State().Values.Remember)

		st := setText(t, e, signin.Password, "abcdefg")
		require.Contains(t, st.Errors, signin.Password)
		assert.Equal(t, "Password must be at least 8 characters", st.ErrorMessage(signin.Password))
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := signin.Config{Mode: "blur"}.Options()
		assert.ErrorIs(t, err, signin.ErrInvalidMode)
	})

	t.Run("negative password length", func(t *testing.T) {
		opts, err := signin.Config{Mode: "submit", PasswordMinLength: -3}.Options()
		require.NoError(t, err)
		_, err = signin.New(opts...)
		assert.ErrorIs(t, err, signin.ErrInvalidRule)
	})

	t.Run("zero password length keeps default", func(t *testing.T) {
		opts, err := signin.Config{Mode: "submit"}.Options()
		require.NoError(t, err)
		e, err := signin.New(opts...)
		require.NoError(t, err)
		setText(t, e, signin.Password, "abcde")
		assert.Equal(t, "Password must be at least 6 characters", e.ValidateField(signin.Password).Message)
	})

	t.Run("messages file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "messages.yaml")
		require.NoError(t, os.WriteFile(path, []byte("email_required: Enter your email\npassword_too_short: \"Use {min}+ characters\"\n"), 0o600))

		opts, err := signin.Config{Mode: "submit", PasswordMinLength: 6, MessagesFile: path}.Options()
		require.NoError(t, err)
		e, err := signin.New(opts...)
		require.NoError(t, err)

		assert.Equal(t, "Enter your email", e.ValidateField(signin.Email).Message)
		setText(t, e, signin.Password, "abc")
		assert.Equal(t, "Use 6+ characters", e.ValidateField(signin.Password).Message)
	})

	t.Run("missing messages file", func(t *testing.T) {
		_, err := signin.Config{Mode: "submit", MessagesFile: "does-not-exist.yaml"}.Options()
		assert.ErrorIs(t, err, config.ErrReadingFile)
	})

	t.Run("unknown message key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "messages.yaml")
		require.NoError(t, os.WriteFile(path, []byte("email_missing: oops\n"), 0o600))
		_, err := signin.LoadMessages(path)
		assert.ErrorIs(t, err, config.ErrParsingFile)
	})
}
