package signin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/signin/pkg/validator"
)

// DefaultMinPasswordLength is the minimum password length in characters.
const DefaultMinPasswordLength = 6

// FieldError describes the first rule a field value failed.
type FieldError = validator.ValidationError

// RuleSet maps each field to its ordered rules. Fields without an entry are always valid.
type RuleSet map[Field][]validator.Rule[string]

// Messages overrides the user-facing text of the default rules.
// {min} in PasswordTooShort is replaced with the configured minimum length.
type Messages struct {
	EmailRequired    string `yaml:"email_required"`
	EmailInvalid     string `yaml:"email_invalid"`
	PasswordRequired string `yaml:"password_required"`
	PasswordTooShort string `yaml:"password_too_short"`
}

func DefaultMessages() Messages {
	return Messages{
		EmailRequired:    "Email is required",
		EmailInvalid:     "Enter a valid email address",
		PasswordRequired: "Password is required",
		PasswordTooShort: "Password must be at least {min} characters",
	}
}

// merge fills empty messages from the defaults.
func (m Messages) merge(def Messages) Messages {
	if m.EmailRequired == "" {
		m.EmailRequired = def.EmailRequired
	}
	if m.EmailInvalid == "" {
		m.EmailInvalid = def.EmailInvalid
	}
	if m.PasswordRequired == "" {
		m.PasswordRequired = def.PasswordRequired
	}
	if m.PasswordTooShort == "" {
		m.PasswordTooShort = def.PasswordTooShort
	}
	return m
}

// DefaultRules builds the canonical rule set: email is required and must be
// a well-formed address, password is required and must be at least minLen
// characters long, remember has no rules.
func DefaultRules(minLen int, msgs Messages) RuleSet {
	msgs = msgs.merge(DefaultMessages())
	tooShort := strings.ReplaceAll(msgs.PasswordTooShort, "{min}", strconv.Itoa(minLen))

	return RuleSet{
		Email: {
			validator.Required(Email.String()).WithMessage(msgs.EmailRequired),
			validator.ValidEmail(Email.String()).WithMessage(msgs.EmailInvalid),
		},
		Password: {
			validator.Required(Password.String()).WithMessage(msgs.PasswordRequired),
			validator.MinLen(Password.String(), minLen).WithMessage(tooShort),
		},
	}
}

// validate rejects rules on unknown or non-text fields and rules without a predicate.
func (rs RuleSet) validate() error {
	for field, rules := range rs {
		if !field.Valid() {
			return fmt.Errorf("%w: rule for %w %q", ErrInvalidRule, ErrUnknownField, field)
		}
		if field.Kind() != KindText && len(rules) > 0 {
			return fmt.Errorf("%w: field %q holds a %s value", ErrInvalidRule, field, field.Kind())
		}
		for i, r := range rules {
			if r.Check == nil {
				return fmt.Errorf("%w: %s rule %d has no predicate", ErrInvalidRule, field, i)
			}
		}
	}
	return nil
}

// clone copies the rule slices so the engine owns its rule set.
func (rs RuleSet) clone() RuleSet {
	out := make(RuleSet, len(rs))
	for f, rules := range rs {
		out[f] = append([]validator.Rule[string](nil), rules...)
	}
	return out
}

// fields returns the fields that carry at least one rule, in display order.
func (rs RuleSet) fields() []Field {
	var out []Field
	for _, f := range Fields() {
		if len(rs[f]) > 0 {
			out = append(out, f)
		}
	}
	return out
}
