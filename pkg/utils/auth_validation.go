package utils

import (
	"regexp"
	"strings"

	"notes-auth/pkg/xerrors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if an email address is valid.
func ValidateEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// NormalizeEmail lower-cases and trims an email address. Lookups and storage
// always go through this so the unique index is case-insensitive in practice.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidatePassword enforces the registration password rules. The upper bound
// is bcrypt's 72-byte input limit: anything longer would pass validation and
// then fail at hashing.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return xerrors.ErrPasswordTooShort
	}
	if len(password) > 72 {
		return xerrors.ErrPasswordTooLong
	}
	return nil
}
