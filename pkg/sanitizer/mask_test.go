package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signin/pkg/sanitizer"
)

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "masks normal email", input: "user@example.com", expected: "u***@example.com"},
		{name: "masks single character local part", input: "a@b.com", expected: "*@b.com"},
		{name: "trims whitespace", input: "  user@example.com ", expected: "u***@example.com"},
		{name: "unicode local part", input: "юзер@example.com", expected: "ю***@example.com"},
		{name: "empty local part", input: "@example.com", expected: "@example.com"},
		{name: "no at sign", input: "not-an-email", expected: "n**********l"},
		{name: "two at signs", input: "a@b@c", expected: "a***c"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.MaskEmail(tt.input))
		})
	}
}

func TestMaskString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		visibleChars int
		expected     string
	}{
		{name: "masks middle of string", input: "sensitive", visibleChars: 2, expected: "se*****ve"},
		{name: "short string fully masked", input: "abcd", visibleChars: 2, expected: "****"},
		{name: "negative visible falls back to one", input: "secret", visibleChars: -1, expected: "s****t"},
		{name: "zero visible masks all", input: "abc", visibleChars: 0, expected: "***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.MaskString(tt.input, tt.visibleChars))
		})
	}
}

func TestMaskSecret(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", sanitizer.MaskSecret(""))
	assert.Equal(t, "********", sanitizer.MaskSecret("a"))
	assert.Equal(t, "********", sanitizer.MaskSecret("a very long password indeed"))
}
