package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"notes-auth/internal/domain"
	"notes-auth/pkg/jwtutil"
	"notes-auth/pkg/response"
	"notes-auth/pkg/xerrors"
)

// CookieName is the session cookie carrying the access token.
const CookieName = "token"

// UserResolver looks up the user behind a token's subject claim.
type UserResolver interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// AuthMiddleware is the session guard. It validates the bearer credential on
// each request and attaches the resolved user record to the request context.
type AuthMiddleware struct {
	tokens *jwtutil.Issuer
	users  UserResolver
}

func NewAuthMiddleware(tokens *jwtutil.Issuer, users UserResolver) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// extractToken prefers the session cookie over the Authorization header.
func extractToken(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	authHeader := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return after
	}
	return ""
}

// resolve validates the token and loads its user. The error is one of the
// xerrors token sentinels or a store error.
func (am *AuthMiddleware) resolve(r *http.Request) (*domain.User, error) {
	token := extractToken(r)
	if token == "" {
		return nil, xerrors.ErrMissingToken
	}

	claims, err := am.tokens.ParseAndValidate(token)
	if err != nil {
		return nil, err
	}

	user, err := am.users.GetByID(r.Context(), claims.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsVerified {
		return nil, xerrors.ErrEmailNotVerified
	}
	return user, nil
}

// RequireAuth rejects requests without a valid session.
func (am *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := am.resolve(r)
		if err != nil {
			switch {
			case errors.Is(err, xerrors.ErrMissingToken):
				response.Error(w, http.StatusUnauthorized, "missing_token", "Access token is required")
			case errors.Is(err, xerrors.ErrTokenExpired):
				response.Error(w, http.StatusUnauthorized, "token_expired", "Token expired")
			case errors.Is(err, xerrors.ErrInvalidToken):
				response.Error(w, http.StatusUnauthorized, "invalid_token", "Invalid token")
			case errors.Is(err, xerrors.ErrEmailNotVerified):
				response.Error(w, http.StatusUnauthorized, "not_verified", "Please verify your email first")
			case errors.Is(err, xerrors.ErrUserNotFound):
				response.Error(w, http.StatusUnauthorized, "user_not_found", "User not found")
			default:
				response.Error(w, http.StatusInternalServerError, "internal_error", "Authentication failed")
			}
			return
		}

		next.ServeHTTP(w, withUser(r, user))
	})
}

// OptionalAuth resolves the session when present but lets every request
// through; failures just leave the request anonymous.
func (am *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, err := am.resolve(r); err == nil {
			r = withUser(r, user)
		}
		next.ServeHTTP(w, r)
	})
}
