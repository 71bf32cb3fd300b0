package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserKind(t *testing.T) {
	hash := "$2a$12$hash"
	gid := "google-sub"

	pw := User{PasswordHash: &hash}
	assert.Equal(t, PasswordAccount, pw.Kind())

	google := User{IsGoogleUser: true, GoogleID: &gid}
	assert.Equal(t, GoogleAccount, google.Kind())

	hybrid := User{IsGoogleUser: true, GoogleID: &gid, PasswordHash: &hash}
	assert.Equal(t, HybridAccount, hybrid.Kind())
}

func TestStoredPasswordHash(t *testing.T) {
	hash := "$2a$12$hash"
	assert.Equal(t, hash, (&User{PasswordHash: &hash}).StoredPasswordHash())
	assert.Equal(t, "", (&User{}).StoredPasswordHash())
}

func TestProfileOmitsCredentials(t *testing.T) {
	hash := "$2a$12$hash"
	code := "123456"
	u := User{ID: "user-1", Name: "Jane", Email: "jane@example.com",
		IsVerified: true, PasswordHash: &hash, OTP: &code}

	raw, err := json.Marshal(u.Profile())
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.NotContains(t, out, "passwordHash")
	assert.NotContains(t, out, "otp")
	assert.Equal(t, "jane@example.com", out["email"])
}
