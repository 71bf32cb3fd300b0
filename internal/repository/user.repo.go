package repository

import (
	"context"
	"errors"
	"time"

	"notes-auth/internal/domain"
	"notes-auth/pkg/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	id, name, email, password_hash, is_google_user, google_id,
	is_verified, otp, otp_expires, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.IsGoogleUser,
		&u.GoogleID,
		&u.IsVerified,
		&u.OTP,
		&u.OTPExpires,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id))
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (id, name, email, password_hash, is_google_user, google_id, is_verified, otp, otp_expires)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+userColumns+`
	`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.IsGoogleUser, u.GoogleID,
		u.IsVerified, u.OTP, u.OTPExpires,
	)

	created, err := scanUser(row)
	if err != nil {
		if xerrors.ParsePGErrorCode(err) == "23505" {
			return nil, xerrors.ErrEmailAlreadyInUse
		}
		return nil, err
	}
	return created, nil
}

// ConsumeOTP atomically matches email + code + unexpired expiry, clears the
// code, and marks the record verified. A single UPDATE so there is no window
// between the expiry check and the consumption.
func (r *UserRepository) ConsumeOTP(ctx context.Context, email, code string, now time.Time) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `
		UPDATE users
		SET is_verified = TRUE, otp = NULL, otp_expires = NULL, updated_at = now()
		WHERE email = $1 AND otp = $2 AND otp_expires > $3
		RETURNING `+userColumns+`
	`, email, code, now))
	if errors.Is(err, xerrors.ErrUserNotFound) {
		return nil, xerrors.ErrInvalidOrExpiredOTP
	}
	return u, err
}

// ReplaceOTP overwrites any outstanding code and expiry for an unverified
// record. Replacement is total; the prior code stops working immediately.
func (r *UserRepository) ReplaceOTP(ctx context.Context, email, code string, expires time.Time) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `
		UPDATE users
		SET otp = $2, otp_expires = $3, updated_at = now()
		WHERE email = $1 AND is_verified = FALSE
		RETURNING `+userColumns+`
	`, email, code, expires))
	if errors.Is(err, xerrors.ErrUserNotFound) {
		return nil, xerrors.ErrUserNotFoundOrVerified
	}
	return u, err
}

// LinkGoogle attaches a google identity to an existing record and forces the
// verified flag; the stored password hash is left untouched.
func (r *UserRepository) LinkGoogle(ctx context.Context, id, googleID string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		UPDATE users
		SET is_google_user = TRUE, google_id = $2, is_verified = TRUE, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns+`
	`, id, googleID))
}
