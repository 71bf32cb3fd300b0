package repository

import (
	"context"

	"notes-auth/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type EmailLogRepo struct {
	db *pgxpool.Pool
}

func NewEmailLogRepo(db *pgxpool.Pool) *EmailLogRepo {
	return &EmailLogRepo{db: db}
}

func (r *EmailLogRepo) LogEmail(ctx context.Context, rec domain.EmailLog) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO email_logs (id, user_id, subject, recipient_email, email_type, delivery_status, error_message, duration_ms, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, rec.ID, rec.UserID, rec.Subject, rec.RecipientEmail, rec.EmailType,
		rec.DeliveryStatus, rec.ErrorMessage, rec.Duration.Milliseconds(), rec.SentAt)
	return err
}
