package handler

import (
	"errors"
	"net/http"
	"time"

	"notes-auth/internal/middleware"
	"notes-auth/internal/usecase"
	"notes-auth/pkg/response"
	"notes-auth/pkg/xerrors"
)

type AuthHandler struct {
	uc        *usecase.UserUsecase
	cookieTTL time.Duration
}

func NewAuthHandler(uc *usecase.UserUsecase, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{uc: uc, cookieTTL: cookieTTL}
}

// setSessionCookie emits the access token as a credentialed cross-site
// cookie; SameSite=None requires Secure.
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cookieTTL),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// writeAuthError maps a flow error onto a status and a stable error code.
func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, xerrors.ErrEmailAlreadyInUse):
		response.Error(w, http.StatusConflict, "duplicate_email", "User already exists with this email")
	case errors.Is(err, xerrors.ErrInvalidOrExpiredOTP):
		response.Error(w, http.StatusBadRequest, "invalid_or_expired_code", "Invalid or expired OTP")
	case errors.Is(err, xerrors.ErrUserNotFoundOrVerified):
		response.Error(w, http.StatusNotFound, "not_found_or_verified", "User not found or already verified")
	case errors.Is(err, xerrors.ErrUserNotFound):
		response.Error(w, http.StatusNotFound, "not_found", "User not found")
	case errors.Is(err, xerrors.ErrEmailNotVerified):
		response.Error(w, http.StatusUnauthorized, "not_verified", "Please verify your email first")
	case errors.Is(err, xerrors.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
	case errors.Is(err, xerrors.ErrGoogleExchangeFailed):
		response.Error(w, http.StatusUnauthorized, "google_exchange_failed", "Google login failed")
	case errors.Is(err, xerrors.ErrGoogleEmailNotVerified):
		response.Error(w, http.StatusBadRequest, "email_not_verified", "Email not verified")
	default:
		response.Error(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}

func (h *AuthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"service": "notes-auth"})
}
