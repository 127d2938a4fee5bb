// Package validation holds the syntactic checks applied to credentials before
// an account is created or a password is changed.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the minimum number of characters in a password.
const MinPasswordLength = 8

// PasswordSymbols is the punctuation set a password must draw from.
const PasswordSymbols = `!@#$%^&*(),.?":{}|<>`

// PasswordRules describes the strength rule to the user.
const PasswordRules = "at least 8 characters long and includes uppercase, lowercase, numbers, and special characters"

var (
	// word characters are Unicode letters, digits and underscore.
	emailPattern = regexp.MustCompile(`^[\p{L}\p{N}_.-]+@[\p{L}\p{N}_.-]+\.[\p{L}\p{N}_]+$`)

	upperPattern = regexp.MustCompile(`[A-Z]`)
	lowerPattern = regexp.MustCompile(`[a-z]`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

// ValidateEmail reports whether s looks like an email address. It does not
// resolve the domain.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePassword reports whether s satisfies the strength rule: at least
// MinPasswordLength characters with an uppercase letter, a lowercase letter,
// a digit and one of PasswordSymbols.
func ValidatePassword(s string) bool {
	return utf8.RuneCountInString(s) >= MinPasswordLength &&
		upperPattern.MatchString(s) &&
		lowerPattern.MatchString(s) &&
		digitPattern.MatchString(s) &&
		strings.ContainsAny(s, PasswordSymbols)
}
