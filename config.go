package signin

import (
	"fmt"

	"github.com/dmitrymomot/signin/pkg/config"
)

// Config is the environment configuration of a form engine.
type Config struct {
	Mode              string `env:"SIGNIN_MODE" envDefault:"submit"`
	Revalidate        bool   `env:"SIGNIN_REVALIDATE" envDefault:"true"`
	RememberDefault   bool   `env:"SIGNIN_REMEMBER_DEFAULT" envDefault:"false"`
	PasswordMinLength int    `env:"SIGNIN_PASSWORD_MIN_LENGTH" envDefault:"6"`
	MessagesFile      string `env:"SIGNIN_MESSAGES_FILE"`
}

// Options converts the configuration into engine options.
// Messages are read from MessagesFile when it is set.
func (c Config) Options() ([]Option, error) {
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithMode(mode),
		WithRevalidate(c.Revalidate),
		WithRememberDefault(c.RememberDefault),
	}
	// Zero keeps the default; any other value is checked by WithMinPasswordLength.
	if c.PasswordMinLength != 0 {
		opts = append(opts, WithMinPasswordLength(c.PasswordMinLength))
	}

	if c.MessagesFile != "" {
		msgs, err := LoadMessages(c.MessagesFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithMessages(msgs))
	}

	return opts, nil
}

// LoadMessages reads message overrides from a YAML file.
func LoadMessages(path string) (Messages, error) {
	var m Messages
	if err := config.LoadFile(path, &m); err != nil {
		return Messages{}, fmt.Errorf("signin: load messages: %w", err)
	}
	return m, nil
}
