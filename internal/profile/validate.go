package profile

import (
	"errors"
	"regexp"
	"strings"
)

// Validation failures surfaced before a save attempt.
var (
	ErrEmptyName      = errors.New("name is empty")
	ErrEmptyEmail     = errors.New("email is empty")
	ErrMalformedEmail = errors.New("email is malformed")
)

// emailPattern matches one-or-more non-whitespace-non-@ characters, an @,
// another such run, a dot, and a non-whitespace tail.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks draft field constraints. It is pure and runs once, right
// before a save attempt; there is no as-you-type validation.
//
// Password strength is deliberately not checked here. The form documents a
// minimum-length expectation, but the server owns that rule.
func Validate(d Draft) error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(d.Email) == "" {
		return ErrEmptyEmail
	}
	if !emailPattern.MatchString(d.Email) {
		return ErrMalformedEmail
	}
	return nil
}
