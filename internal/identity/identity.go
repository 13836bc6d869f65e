// Package identity is the boundary to sign-in. It only ever yields a display
// name: passwords are collected by the forms for parity with a real sign-in
// flow but are never stored or checked.
package identity

import (
	"net/mail"
	"strings"

	perrors "github.com/docdraft/docdraft/internal/errors"
)

// Guest is the name used when no username is given.
const Guest = "Guest"

// Normalize trims name and falls back to Guest when nothing is left.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return Guest
	}
	return name
}

// Credentials are what the login form collects.
type Credentials struct {
	Username string
	Password string
}

// Login returns the display name for c.
func Login(c Credentials) string {
	return Normalize(c.Username)
}

// Registration is what the sign-up form collects.
type Registration struct {
	Username string
	Email    string
	Password string
	Confirm  string
}

// ValidateEmail accepts an empty address or a single RFC 5322 address.
func ValidateEmail(addr string) error {
	if strings.TrimSpace(addr) == "" {
		return nil
	}
	if _, err := mail.ParseAddress(addr); err != nil {
		return perrors.E(perrors.KindInvalid, "invalid email address")
	}
	return nil
}

// ValidateConfirm checks that the confirmation matches the password.
func ValidateConfirm(password, confirm string) error {
	if password != confirm {
		return perrors.E(perrors.KindInvalid, "passwords do not match")
	}
	return nil
}

// Signup validates r and returns the display name for the new account.
func Signup(r Registration) (string, error) {
	if err := ValidateEmail(r.Email); err != nil {
		return "", err
	}
	if err := ValidateConfirm(r.Password, r.Confirm); err != nil {
		return "", err
	}
	return Normalize(r.Username), nil
}
