package services

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrResidentNameRequired  = errors.New("resident name required")
	ErrResidentEmailRequired = errors.New("resident email required")
)

// NormalizeLoginEmail lowercases and trims an email for the case-insensitive
// login match. Anything that does not parse as an address normalizes to the
// empty string, which can never match a stored account.
func NormalizeLoginEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

// ValidateNewResident checks the add-resident form before the store is
// asked to create anything.
func ValidateNewResident(name string, email string) error {
	if strings.TrimSpace(name) == "" {
		return ErrResidentNameRequired
	}
	if NormalizeLoginEmail(email) == "" {
		return ErrResidentEmailRequired
	}
	return nil
}
