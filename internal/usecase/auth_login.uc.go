package usecase

import (
	"context"
	"errors"
	"log"

	"notes-auth/internal/domain"
	"notes-auth/pkg/utils"
	"notes-auth/pkg/xerrors"

	"github.com/google/uuid"
)

// LoginWithPassword authenticates an email/password pair. Google-only
// accounts have no stored hash, so the check fails with the same
// ErrInvalidCredentials as a wrong password; the error never reveals which
// login method an email uses.
func (uc *UserUsecase) LoginWithPassword(ctx context.Context, email, password string) (*AuthResult, error) {
	email = utils.NormalizeEmail(email)

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !user.IsVerified {
		return nil, xerrors.ErrEmailNotVerified
	}

	if !utils.CheckPasswordHash(password, user.StoredPasswordHash()) {
		return nil, xerrors.ErrInvalidCredentials
	}

	return uc.issueTokens(user)
}

// LoginWithGoogle exchanges an authorization code for a verified Google
// identity and signs the user in. An existing unlinked account with the same
// email is linked and force-verified: Google's email proof substitutes for
// our own OTP flow. The stored password hash is never touched.
func (uc *UserUsecase) LoginWithGoogle(ctx context.Context, code string) (*AuthResult, error) {
	gu, err := uc.google.Exchange(ctx, code)
	if err != nil {
		log.Printf("[GoogleAuth] code exchange failed: %v", err)
		return nil, xerrors.ErrGoogleExchangeFailed
	}

	if !gu.EmailVerified {
		return nil, xerrors.ErrGoogleEmailNotVerified
	}

	email := utils.NormalizeEmail(gu.Email)

	user, err := uc.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if !user.IsGoogleUser {
			user, err = uc.userRepo.LinkGoogle(ctx, user.ID, gu.Sub)
			if err != nil {
				return nil, err
			}
			log.Printf("[GoogleAuth] linked google identity | user=%s", user.ID)
		}
	case errors.Is(err, xerrors.ErrUserNotFound):
		name := gu.Name
		if name == "" {
			name = "Google User"
		}
		googleID := gu.Sub
		user, err = uc.userRepo.Create(ctx, &domain.User{
			ID:           uuid.New().String(),
			Name:         name,
			Email:        email,
			IsGoogleUser: true,
			GoogleID:     &googleID,
			IsVerified:   true,
		})
		if err != nil {
			return nil, err
		}
		log.Printf("[GoogleAuth] created google account | user=%s", user.ID)
	default:
		return nil, err
	}

	return uc.issueTokens(user)
}
