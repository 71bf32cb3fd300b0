package domain

import "time"

// AccountKind classifies which login methods a user record supports. It is
// derived from the stored credentials, never persisted directly, so the
// flat nullable schema cannot drift from it.
type AccountKind int

const (
	PasswordAccount AccountKind = iota
	GoogleAccount
	HybridAccount
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash *string
	IsGoogleUser bool
	GoogleID     *string
	IsVerified   bool
	OTP          *string
	OTPExpires   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Kind reports the account's login capabilities. A record with neither a
// password hash nor a google link should not exist; it is treated as a
// password account whose login always fails.
func (u *User) Kind() AccountKind {
	switch {
	case u.IsGoogleUser && u.PasswordHash != nil:
		return HybridAccount
	case u.IsGoogleUser:
		return GoogleAccount
	default:
		return PasswordAccount
	}
}

// StoredPasswordHash returns the hash for password verification, or "" for
// google-only accounts so the check fails without leaking the login method.
func (u *User) StoredPasswordHash() string {
	if u.PasswordHash == nil {
		return ""
	}
	return *u.PasswordHash
}

// UserProfile is the safe shape returned by API payloads. It never carries
// the password hash or OTP state.
type UserProfile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	IsVerified   bool   `json:"isVerified"`
	IsGoogleUser bool   `json:"isGoogleUser"`
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		IsVerified:   u.IsVerified,
		IsGoogleUser: u.IsGoogleUser,
	}
}
