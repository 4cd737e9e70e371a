package signin

import (
	"errors"
	"strings"
)

var (
	ErrUnknownField = errors.New("signin: unknown field")
	ErrValueKind    = errors.New("signin: value kind does not match field")
	ErrInvalidRule  = errors.New("signin: invalid validation rule")
	ErrInvalidMode  = errors.New("signin: invalid validation mode")
)

// ValidationFailure is returned by TrySubmit when at least one field fails
// its rules. Errors holds the first failure of every failing field.
type ValidationFailure struct {
	Errors map[Field]FieldError
}

func (f *ValidationFailure) Error() string {
	var parts []string
	for _, field := range Fields() {
		if fe, ok := f.Errors[field]; ok {
			parts = append(parts, fe.Error())
		}
	}
	return "signin: validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the field errors so errors.Is matches the validator sentinels.
func (f *ValidationFailure) Unwrap() []error {
	errs := make([]error, 0, len(f.Errors))
	for _, field := range Fields() {
		if fe, ok := f.Errors[field]; ok {
			errs = append(errs, fe)
		}
	}
	return errs
}

// Fields returns the failing fields in display order.
func (f *ValidationFailure) Fields() []Field {
	var out []Field
	for _, field := range Fields() {
		if _, ok := f.Errors[field]; ok {
			out = append(out, field)
		}
	}
	return out
}

// IsValidationFailure reports whether err carries a *ValidationFailure.
func IsValidationFailure(err error) bool {
	var vf *ValidationFailure
	return errors.As(err, &vf)
}
