// Package validators implements the local, pre-network validation rules for
// user input. Validation failures never reach the network; callers test them
// with errors.Is against [ErrValidation] or the specific reason.
package validators

import (
	"regexp"
	"strings"
)

// MinPasswordLength is the minimum accepted password length for
// registration.
const MinPasswordLength = 8

// emailRe mirrors the address pattern the mobile screens enforce.
var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidateLogin checks the login form inputs. Only emptiness is enforced;
// the backend decides whether the credentials match.
func ValidateLogin(email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return ErrEmptyFields
	}
	return nil
}

// ValidateRegistration checks the registration form inputs against the full
// rule set: both fields non-empty after trimming, a well-formed email
// address, and a password of at least [MinPasswordLength] characters.
func ValidateRegistration(email, password string) error {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		return ErrEmptyFields
	}
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return ErrShortPassword
	}

	return nil
}

// ValidateNoteDraft checks the note editor inputs. A note must carry a
// non-empty title; the body may be empty.
func ValidateNoteDraft(titulo string) error {
	if strings.TrimSpace(titulo) == "" {
		return ErrEmptyTitle
	}
	return nil
}
