package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"notes-auth/internal/middleware"
	"notes-auth/internal/usecase"
	"notes-auth/pkg/response"
	"notes-auth/pkg/utils"
)

// Register handles account creation with deferred email verification.
// POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}

	if req.Name == "" {
		response.Error(w, http.StatusBadRequest, "validation_error", "Name is required")
		return
	}
	if !utils.ValidateEmail(req.Email) {
		response.Error(w, http.StatusBadRequest, "validation_error", "Please enter a valid email")
		return
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		response.Error(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	user, err := h.uc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		log.Printf("[Register] failed | email=%s err=%v", req.Email, err)
		writeAuthError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"userId": user.ID,
		"email":  user.Email,
		"name":   user.Name,
	})
}

// VerifyOTP consumes the mailed code and opens the first session.
// POST /api/v1/auth/verify-otp
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}
	if req.Email == "" || req.OTP == "" {
		response.Error(w, http.StatusBadRequest, "validation_error", "Email and OTP are required")
		return
	}

	result, err := h.uc.ConfirmOTP(r.Context(), req.Email, req.OTP)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	h.writeSession(w, result)
}

// ResendOTP replaces the outstanding code and redelivers it.
// POST /api/v1/auth/resend-otp
func (h *AuthHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req ResendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}
	if req.Email == "" {
		response.Error(w, http.StatusBadRequest, "validation_error", "Email is required")
		return
	}

	if err := h.uc.ResendOTP(r.Context(), req.Email); err != nil {
		writeAuthError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "OTP sent successfully"})
}

// Login authenticates an email/password pair.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "validation_error", "Email and password are required")
		return
	}

	result, err := h.uc.LoginWithPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	h.writeSession(w, result)
}

// GoogleAuth signs a user in through the Google authorization-code flow.
// POST /api/v1/auth/google
func (h *AuthHandler) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	var req GoogleAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}
	if req.Code == "" {
		response.Error(w, http.StatusBadRequest, "validation_error", "code is required")
		return
	}

	result, err := h.uc.LoginWithGoogle(r.Context(), req.Code)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	h.writeSession(w, result)
}

// Me returns the identity behind the current session.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "missing_token", "Access token is required")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"user": user.Profile()})
}

// Logout clears the session cookie. Tokens are stateless, so this is all a
// logout can do; the access token stays valid until its own expiry.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	response.JSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

// writeSession sets the access cookie and returns the session payload. The
// access token travels only in the cookie; the body carries the refresh
// token and a safe user summary.
func (h *AuthHandler) writeSession(w http.ResponseWriter, result *usecase.AuthResult) {
	h.setSessionCookie(w, result.AccessToken)

	profile := result.User.Profile()
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"user": map[string]interface{}{
			"id":         profile.ID,
			"name":       profile.Name,
			"email":      profile.Email,
			"isVerified": profile.IsVerified,
		},
		"refreshToken": result.RefreshToken,
	})
}
