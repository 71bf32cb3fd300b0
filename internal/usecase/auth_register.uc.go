package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"notes-auth/internal/domain"
	"notes-auth/internal/service/otp"
	"notes-auth/pkg/utils"
	"notes-auth/pkg/xerrors"

	"github.com/google/uuid"
)

// Register creates an unverified account with a fresh one-time code and
// mails the code out. The mail is dispatched after the record commits; a
// delivery failure leaves the record in place and the user recovers through
// ResendOTP.
func (uc *UserUsecase) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = utils.NormalizeEmail(email)

	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, xerrors.ErrEmailAlreadyInUse
	} else if !errors.Is(err, xerrors.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	code := otp.RandomCode(otp.Digits)
	expires := time.Now().Add(uc.otpTTL)

	user, err := uc.userRepo.Create(ctx, &domain.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: &hashed,
		IsGoogleUser: false,
		IsVerified:   false,
		OTP:          &code,
		OTPExpires:   &expires,
	})
	if err != nil {
		return nil, err
	}

	uc.mailer.SendOTP(user.ID, user.Email, code, uc.otpTTL)

	return user, nil
}

// ConfirmOTP consumes a matching unexpired code, marks the account verified,
// and opens a session. The match-and-clear is a single store operation so a
// code can never be used twice.
func (uc *UserUsecase) ConfirmOTP(ctx context.Context, email, code string) (*AuthResult, error) {
	email = utils.NormalizeEmail(email)

	user, err := uc.userRepo.ConsumeOTP(ctx, email, code, time.Now())
	if err != nil {
		return nil, err
	}

	log.Printf("[Verify] email verified | user=%s", user.ID)
	return uc.issueTokens(user)
}

// ResendOTP replaces any outstanding code for an unverified account and
// redelivers. Replacement is total: the previous code stops working.
func (uc *UserUsecase) ResendOTP(ctx context.Context, email string) error {
	email = utils.NormalizeEmail(email)

	code := otp.RandomCode(otp.Digits)
	expires := time.Now().Add(uc.otpTTL)

	user, err := uc.userRepo.ReplaceOTP(ctx, email, code, expires)
	if err != nil {
		return err
	}

	uc.mailer.SendOTP(user.ID, user.Email, code, uc.otpTTL)
	return nil
}
