package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidFormat is returned when a field does not match the expected pattern.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrTooShort is returned when a field is shorter than the allowed minimum.
	ErrTooShort = errors.New("value too short")
)
