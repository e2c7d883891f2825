package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// Validation rule patterns
var (
	// EmailPattern matches ordinary mailbox addresses
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// MobilePattern matches 10-15 digit phone numbers with an optional country prefix
	MobilePattern = `^\+?[0-9]{10,15}$`

	PasswordMinLength = 8
	NameMinLength     = 2
	NameMaxLength     = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email  *regexp.Regexp
	Mobile *regexp.Regexp
}{
	Email:  regexp.MustCompile(EmailPattern),
	Mobile: regexp.MustCompile(MobilePattern),
}

// ValidEmail reports whether email has a plausible mailbox format.
func ValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(email)))
}

// ValidMobile reports whether mobile looks like a phone number.
func ValidMobile(mobile string) bool {
	return CompiledPatterns.Mobile.MatchString(strings.TrimSpace(mobile))
}

// CheckPassword validates password strength: minimum length, at least one
// letter and one digit.
func CheckPassword(password string) (ok bool, reason string) {
	if len(password) < PasswordMinLength {
		return false, "password must be at least 8 characters long"
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}

	if !hasLetter {
		return false, "password must contain at least one letter"
	}
	if !hasDigit {
		return false, "password must contain at least one digit"
	}

	return true, ""
}

// ValidName reports whether a display name is within accepted bounds.
func ValidName(name string) bool {
	name = strings.TrimSpace(name)
	return len(name) >= NameMinLength && len(name) <= NameMaxLength
}
