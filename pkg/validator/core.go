package validator

import "fmt"

// Code classifies a validation failure independently of its message text.
type Code string

const (
	CodeRequired      Code = "required"
	CodeInvalidFormat Code = "invalid_format"
	CodeTooShort      Code = "too_short"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Code              Code
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap maps the error code to its package sentinel so callers can use errors.Is.
func (e ValidationError) Unwrap() error {
	switch e.Code {
	case CodeRequired:
		return ErrFieldRequired
	case CodeInvalidFormat:
		return ErrInvalidFormat
	case CodeTooShort:
		return ErrTooShort
	default:
		return ErrValidationFailed
	}
}

// Rule pairs a predicate over a value with the error reported when it fails.
type Rule[T any] struct {
	Check func(T) bool
	Error ValidationError
}

// WithMessage returns a copy of the rule that reports msg instead of the default message.
// An empty msg keeps the default.
func (r Rule[T]) WithMessage(msg string) Rule[T] {
	if msg != "" {
		r.Error.Message = msg
	}
	return r
}

// First evaluates rules in order and returns the error of the first failing rule.
// Rules after the first failure are not evaluated. Returns nil when all rules pass.
func First[T any](value T, rules ...Rule[T]) *ValidationError {
	for _, rule := range rules {
		if !rule.Check(value) {
			e := rule.Error
			return &e
		}
	}
	return nil
}
