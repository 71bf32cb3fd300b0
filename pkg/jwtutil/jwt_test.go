package jwtutil

import (
	"testing"
	"time"

	"notes-auth/pkg/xerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAccessRoundtrip(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), time.Hour, 24*time.Hour)

	token, err := issuer.IssueAccess("user-1", "jane@example.com", "Jane")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "Jane", claims.Name)
}

func TestIssueRefreshOmitsName(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), time.Hour, 24*time.Hour)

	token, err := issuer.IssueRefresh("user-1", "jane@example.com")
	require.NoError(t, err)

	claims, err := issuer.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Empty(t, claims.Name)
}

func TestParseExpiredToken(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), -time.Minute, 24*time.Hour)

	token, err := issuer.IssueAccess("user-1", "jane@example.com", "Jane")
	require.NoError(t, err)

	_, err = issuer.ParseAndValidate(token)
	assert.ErrorIs(t, err, xerrors.ErrTokenExpired)
}

func TestParseWrongKey(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), time.Hour, 24*time.Hour)
	other := NewIssuer([]byte("another-secret"), time.Hour, 24*time.Hour)

	token, err := issuer.IssueAccess("user-1", "jane@example.com", "Jane")
	require.NoError(t, err)

	_, err = other.ParseAndValidate(token)
	assert.ErrorIs(t, err, xerrors.ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"), time.Hour, 24*time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := issuer.ParseAndValidate(tok)
		assert.ErrorIs(t, err, xerrors.ErrInvalidToken, "token %q", tok)
	}
}
