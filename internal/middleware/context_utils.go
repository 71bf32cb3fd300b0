package middleware

import (
	"context"
	"net/http"

	"notes-auth/internal/domain"
)

type contextKey string

const ContextUser contextKey = "auth_user"

// UserFromContext returns the user resolved by the guard, if any.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(ContextUser).(*domain.User)
	return u, ok
}

func withUser(r *http.Request, u *domain.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ContextUser, u))
}
