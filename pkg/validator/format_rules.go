package validator

import (
	"net/mail"
	"regexp"
	"unicode/utf8"
)

// emailRegex accepts dot-separated local atoms without whitespace, control
// characters or specials, then a domain with at least one dot between
// letter/digit/hyphen labels.
var emailRegex = regexp.MustCompile(
	`^[^<>()\[\]\\.,;:\s\p{Z}\p{C}@"]+(\.[^<>()\[\]\\.,;:\s\p{Z}\p{C}@"]+)*` +
		`@[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?)+$`,
)

// ValidEmail validates the address shape local@domain.tld.
// The empty string fails too; pair it with Required to report a missing value separately.
func ValidEmail(field string) Rule[string] {
	return Rule[string]{
		Check: func(value string) bool {
			if !utf8.ValidString(value) || !emailRegex.MatchString(value) {
				return false
			}
			// Display names and surrounding text are not part of an address.
			addr, err := mail.ParseAddress(value)
			return err == nil && addr.Address == value
		},
		Error: ValidationError{
			Field:          field,
			Code:           CodeInvalidFormat,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
