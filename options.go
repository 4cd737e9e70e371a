package signin

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/signin/pkg/broadcast"
)

// Mode selects when a value change triggers validation.
type Mode string

const (
	// ModeSubmit validates only on submit (and on change after the first submit when revalidation is on).
	ModeSubmit Mode = "submit"
	// ModeChange validates a field every time its value changes.
	ModeChange Mode = "change"
)

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeSubmit, ModeChange:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Option configures an Engine.
type Option func(*Engine) error

// WithID sets the form instance id. A random uuid is used otherwise.
func WithID(id string) Option {
	return func(e *Engine) error {
		if id != "" {
			e.id = id
		}
		return nil
	}
}

func WithMode(m Mode) Option {
	return func(e *Engine) error {
		if _, err := ParseMode(string(m)); err != nil {
			return err
		}
		e.mode = m
		return nil
	}
}

// WithRevalidate controls whether changes re-validate a field after the
// first submit attempt in ModeSubmit. Enabled by default.
func WithRevalidate(on bool) Option {
	return func(e *Engine) error {
		e.revalidate = on
		return nil
	}
}

func WithRememberDefault(on bool) Option {
	return func(e *Engine) error {
		e.defaults.Remember = on
		return nil
	}
}

// WithDefaults sets the values the form is initialized and reset with.
func WithDefaults(v Values) Option {
	return func(e *Engine) error {
		e.defaults = v
		return nil
	}
}

// WithMinPasswordLength changes the password length rule of the default rule set.
// It has no effect when WithRules is used.
func WithMinPasswordLength(n int) Option {
	return func(e *Engine) error {
		if n < 1 {
			return fmt.Errorf("%w: minimum password length must be positive, got %d", ErrInvalidRule, n)
		}
		e.minPasswordLen = n
		return nil
	}
}

// WithMessages overrides the text of the default rules. Empty entries keep the default.
func WithMessages(m Messages) Option {
	return func(e *Engine) error {
		e.messages = m
		return nil
	}
}

// WithRules replaces the default rule set.
func WithRules(rs RuleSet) Option {
	return func(e *Engine) error {
		if err := rs.validate(); err != nil {
			return err
		}
		e.rules = rs.clone()
		return nil
	}
}

// WithSink sets the function that receives the payload of a successful submit.
func WithSink(sink SubmitSink) Option {
	return func(e *Engine) error {
		e.sink = sink
		return nil
	}
}

// WithBroadcaster replaces the in-memory state broadcaster.
func WithBroadcaster(b broadcast.Broadcaster[State]) Option {
	return func(e *Engine) error {
		if b != nil {
			e.broadcaster = b
		}
		return nil
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) error {
		if l != nil {
			e.log = l
		}
		return nil
	}
}
