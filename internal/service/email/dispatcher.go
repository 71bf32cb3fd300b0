package email

import (
	"context"
	"log"
	"time"

	"notes-auth/internal/domain"

	"github.com/google/uuid"
)

// DeliveryLogger persists the outcome of a delivery attempt. Best-effort:
// a logging failure is itself only logged.
type DeliveryLogger interface {
	LogEmail(ctx context.Context, rec domain.EmailLog) error
}

// Dispatcher sends account mail in the background. The durable state change
// that triggered the send has already committed by the time Send* runs, so
// delivery failures are recorded and never propagated to the caller.
type Dispatcher struct {
	mailer Mailer
	logs   DeliveryLogger
}

func NewDispatcher(mailer Mailer, logs DeliveryLogger) *Dispatcher {
	return &Dispatcher{mailer: mailer, logs: logs}
}

// SendOTP delivers a verification code asynchronously and records the
// outcome.
func (d *Dispatcher) SendOTP(userID, to, code string, ttl time.Duration) {
	go func() {
		start := time.Now()
		err := d.mailer.Send(to, otpSubject, otpBodyHTML(code, int(ttl.Minutes())))

		rec := domain.EmailLog{
			ID:             uuid.New().String(),
			UserID:         userID,
			Subject:        otpSubject,
			RecipientEmail: to,
			EmailType:      "otp",
			DeliveryStatus: "sent",
			Duration:       time.Since(start),
			SentAt:         time.Now(),
		}
		if err != nil {
			log.Printf("[Email] OTP delivery failed | user=%s to=%s err=%v", userID, to, err)
			rec.DeliveryStatus = "failed"
			rec.ErrorMessage = err.Error()
		} else {
			log.Printf("[Email] OTP sent | user=%s to=%s", userID, to)
		}

		if d.logs == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := d.logs.LogEmail(ctx, rec); err != nil {
			log.Printf("[Email] failed to insert email log: %v", err)
		}
	}()
}
