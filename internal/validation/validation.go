// Package validation holds the pure input checks run before any backend
// round trip. Every function is total: it returns a verdict, never an error.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const specialChars = `!@#$%^&*()_+-=[]{}|;:,.<>?`

var (
	// An opening script tag anywhere in the text, case-insensitive.
	scriptOpenPattern = regexp.MustCompile(`(?i)<script\b`)
	// A complete <script>...</script> block, case-insensitive.
	scriptBlockPattern = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	// local@domain.tld shape: no whitespace or @ inside parts, dotted domain.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// PollText reports whether text is usable as a poll question or option:
// 2 to 200 characters and no opening script tag.
func PollText(text string) bool {
	n := utf8.RuneCountInString(text)
	if n < 2 || n > 200 {
		return false
	}
	return !scriptOpenPattern.MatchString(text)
}

// Email reports whether the string looks like local@domain.tld.
func Email(email string) bool {
	return emailPattern.MatchString(email)
}

// PasswordStrength reports whether the password is at least 8 characters and
// contains a lowercase letter, an uppercase letter, a digit, and one of the
// fixed special characters.
func PasswordStrength(password string) bool {
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(specialChars, r):
			special = true
		}
	}
	return lower && upper && digit && special
}

// Name reports whether the string is usable as a display name: at least
// 2 characters and no embedded script block.
func Name(name string) bool {
	if utf8.RuneCountInString(name) < 2 {
		return false
	}
	return !scriptBlockPattern.MatchString(name)
}
