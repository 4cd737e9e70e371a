package validator

import (
	"fmt"
	"unicode/utf8"
)

// Required fails for the empty string. Whitespace counts as content.
func Required(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return value != ""
		},
		Error: ValidationError{
			Field:          field,
			Code:           CodeRequired,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLen fails when value holds fewer than min characters (runes, not bytes).
func MinLen(field string, min int) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Code:           CodeTooShort,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}
