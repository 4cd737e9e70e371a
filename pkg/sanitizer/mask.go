package sanitizer

import "strings"

// secretMask replaces secrets of any length so the length itself is not revealed.
const secretMask = "********"

// MaskEmail keeps the first character of the local part and the full domain.
// Input without exactly one "@" is masked as a whole.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return MaskString(email, 1)
	}

	runes := []rune(local)
	switch len(runes) {
	case 0:
		return "@" + domain
	case 1:
		return "*@" + domain
	}

	return string(runes[0]) + strings.Repeat("*", len(runes)-1) + "@" + domain
}

// MaskString keeps visibleChars runes at both ends and masks the middle.
// Strings too short to keep anything hidden are fully masked.
func MaskString(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 1
	}

	runes := []rune(s)
	length := len(runes)

	if length <= visibleChars*2 {
		return strings.Repeat("*", length)
	}

	start := string(runes[:visibleChars])
	end := string(runes[length-visibleChars:])
	return start + strings.Repeat("*", length-visibleChars*2) + end
}

// MaskSecret returns a fixed mask for non-empty secrets and "" otherwise.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	return secretMask
}
