package usecase

import (
	"context"
	"testing"

	"notes-auth/internal/domain"
	oauth2svc "notes-auth/internal/service/oauth2"
	"notes-auth/pkg/jwtutil"
	"notes-auth/pkg/xerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registerVerified sets up a verified password account and returns it.
func registerVerified(t *testing.T, uc *UserUsecase, email, password string) *domain.User {
	t.Helper()
	user, err := uc.Register(context.Background(), "Jane", email, password)
	require.NoError(t, err)
	result, err := uc.ConfirmOTP(context.Background(), email, *user.OTP)
	require.NoError(t, err)
	return result.User
}

func TestLoginWithPassword(t *testing.T) {
	store := newFakeUserStore()
	uc := newTestUsecase(store, &fakeMailer{}, &fakeVerifier{})
	registerVerified(t, uc, "jane@example.com", "password123")

	result, err := uc.LoginWithPassword(context.Background(), "JANE@example.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", result.User.Email)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	tokens := jwtutil.NewIssuer([]byte("test-secret"), 0, 0)
	claims, err := tokens.ParseAndValidate(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestLoginWithPasswordUnknownEmail(t *testing.T) {
	uc := newTestUsecase(newFakeUserStore(), &fakeMailer{}, &fakeVerifier{})

	_, err := uc.LoginWithPassword(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, xerrors.ErrUserNotFound)
}

func TestLoginWithPasswordUnverified(t *testing.T) {
	store := newFakeUserStore()
	uc := newTestUsecase(store, &fakeMailer{}, &fakeVerifier{})

	_, err := uc.Register(context.Background(), "Jane", "jane@example.com", "password123")
	require.NoError(t, err)

	_, err = uc.LoginWithPassword(context.Background(), "jane@example.com", "password123")
	assert.ErrorIs(t, err, xerrors.ErrEmailNotVerified)
}

func TestLoginWithPasswordWrong(t *testing.T) {
	store := newFakeUserStore()
	uc := newTestUsecase(store, &fakeMailer{}, &fakeVerifier{})
	registerVerified(t, uc, "jane@example.com", "password123")

	_, err := uc.LoginWithPassword(context.Background(), "jane@example.com", "nope-nope")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
}

func TestLoginWithPasswordGoogleOnlyAccount(t *testing.T) {
	store := newFakeUserStore()
	verifier := &fakeVerifier{user: &oauth2svc.GoogleUser{
		Sub: "google-sub-1", Email: "jane@example.com", Name: "Jane", EmailVerified: true,
	}}
	uc := newTestUsecase(store, &fakeMailer{}, verifier)

	_, err := uc.LoginWithGoogle(context.Background(), "auth-code")
	require.NoError(t, err)

	// No stored hash: the failure is indistinguishable from a wrong password.
	_, err = uc.LoginWithPassword(context.Background(), "jane@example.com", "password123")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
}

func TestLoginWithGoogleCreatesVerifiedAccount(t *testing.T) {
	store := newFakeUserStore()
	verifier := &fakeVerifier{user: &oauth2svc.GoogleUser{
		Sub: "google-sub-1", Email: "Jane@Example.com", Name: "Jane Doe", EmailVerified: true,
	}}
	uc := newTestUsecase(store, &fakeMailer{}, verifier)

	result, err := uc.LoginWithGoogle(context.Background(), "auth-code")
	require.NoError(t, err)

	user := result.User
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.True(t, user.IsVerified, "google accounts are born verified")
	assert.True(t, user.IsGoogleUser)
	require.NotNil(t, user.GoogleID)
	assert.Equal(t, "google-sub-1", *user.GoogleID)
	assert.Equal(t, domain.GoogleAccount, user.Kind())
	assert.NotEmpty(t, result.AccessToken)
}

func TestLoginWithGoogleFallbackName(t *testing.T) {
	verifier := &fakeVerifier{user: &oauth2svc.GoogleUser{
		Sub: "google-sub-1", Email: "jane@example.com", EmailVerified: true,
	}}
	uc := newTestUsecase(newFakeUserStore(), &fakeMailer{}, verifier)

	result, err := uc.LoginWithGoogle(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "Google User", result.User.Name)
}

func TestLoginWithGoogleLinksExistingAccount(t *testing.T) {
	store := newFakeUserStore()
	verifier := &fakeVerifier{user: &oauth2svc.GoogleUser{
		Sub: "google-sub-1", Email: "jane@example.com", Name: "Jane", EmailVerified: true,
	}}
	uc := newTestUsecase(store, &fakeMailer{}, verifier)

	// Password account that never finished OTP verification.
	_, err := uc.Register(context.Background(), "Jane", "jane@example.com", "password123")
	require.NoError(t, err)

	result, err := uc.LoginWithGoogle(context.Background(), "auth-code")
	require.NoError(t, err)

	user := result.User
	assert.True(t, user.IsGoogleUser)
	assert.True(t, user.IsVerified, "google's email proof substitutes for the code")
	require.NotNil(t, user.PasswordHash, "linking must not erase the password")
	assert.Equal(t, domain.HybridAccount, user.Kind())

	// The password still works after linking.
	_, err = uc.LoginWithPassword(context.Background(), "jane@example.com", "password123")
	assert.NoError(t, err)
}

func TestLoginWithGoogleExchangeFailure(t *testing.T) {
	uc := newTestUsecase(newFakeUserStore(), &fakeMailer{}, &fakeVerifier{err: errExchange})

	_, err := uc.LoginWithGoogle(context.Background(), "bad-code")
	assert.ErrorIs(t, err, xerrors.ErrGoogleExchangeFailed)
}

func TestLoginWithGoogleUnverifiedUpstreamEmail(t *testing.T) {
	verifier := &fakeVerifier{user: &oauth2svc.GoogleUser{
		Sub: "google-sub-1", Email: "jane@example.com", Name: "Jane", EmailVerified: false,
	}}
	uc := newTestUsecase(newFakeUserStore(), &fakeMailer{}, verifier)

	_, err := uc.LoginWithGoogle(context.Background(), "auth-code")
	assert.ErrorIs(t, err, xerrors.ErrGoogleEmailNotVerified)
}

func TestCurrentUser(t *testing.T) {
	store := newFakeUserStore()
	uc := newTestUsecase(store, &fakeMailer{}, &fakeVerifier{})
	user := registerVerified(t, uc, "jane@example.com", "password123")

	got, err := uc.CurrentUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = uc.CurrentUser(context.Background(), "missing-id")
	assert.ErrorIs(t, err, xerrors.ErrUserNotFound)
}
