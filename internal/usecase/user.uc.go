package usecase

import (
	"context"
	"time"

	"notes-auth/internal/domain"
	oauth2svc "notes-auth/internal/service/oauth2"
	"notes-auth/pkg/jwtutil"
)

// UserStore is the durable record of users. Implementations must apply each
// mutation atomically per user record; ConsumeOTP in particular matches and
// clears the code in one operation.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	ConsumeOTP(ctx context.Context, email, code string, now time.Time) (*domain.User, error)
	ReplaceOTP(ctx context.Context, email, code string, expires time.Time) (*domain.User, error)
	LinkGoogle(ctx context.Context, id, googleID string) (*domain.User, error)
}

// OTPMailer delivers a verification code out of band. Fire-and-forget: the
// caller's state change has already committed when this runs.
type OTPMailer interface {
	SendOTP(userID, to, code string, ttl time.Duration)
}

// AuthResult is the outcome of any flow that establishes a session.
type AuthResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

type UserUsecase struct {
	userRepo UserStore
	mailer   OTPMailer
	google   oauth2svc.Verifier
	tokens   *jwtutil.Issuer
	otpTTL   time.Duration
}

func NewUserUsecase(
	userRepo UserStore,
	mailer OTPMailer,
	google oauth2svc.Verifier,
	tokens *jwtutil.Issuer,
	otpTTL time.Duration,
) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		mailer:   mailer,
		google:   google,
		tokens:   tokens,
		otpTTL:   otpTTL,
	}
}

// CurrentUser resolves the user behind an authenticated session.
func (uc *UserUsecase) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *UserUsecase) issueTokens(u *domain.User) (*AuthResult, error) {
	access, err := uc.tokens.IssueAccess(u.ID, u.Email, u.Name)
	if err != nil {
		return nil, err
	}
	refresh, err := uc.tokens.IssueRefresh(u.ID, u.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, AccessToken: access, RefreshToken: refresh}, nil
}
