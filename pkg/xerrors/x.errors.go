package xerrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ParsePGErrorCode extracts the SQLSTATE code from a pgx error.
func ParsePGErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code // e.g. 23505 for unique_violation
	}
	return "unknown"
}

// Registration / Login
var (
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong  = errors.New("password must not exceed 72 characters")
)

// Verification / OTP
var (
	ErrEmailNotVerified       = errors.New("email not verified")
	ErrInvalidOrExpiredOTP    = errors.New("invalid or expired otp")
	ErrUserNotFoundOrVerified = errors.New("user not found or already verified")
)

// Social auth
var (
	ErrGoogleExchangeFailed   = errors.New("google code exchange failed")
	ErrGoogleEmailNotVerified = errors.New("google email not verified")
)

// Token / session
var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Notes
var (
	ErrNoteNotFound = errors.New("note not found")
)
