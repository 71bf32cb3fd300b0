package domain

import "time"

// EmailLog records the outcome of one outbound delivery attempt. Delivery is
// best-effort; the row exists so failures can be audited without coupling
// them to the account mutation that triggered the send.
type EmailLog struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id,omitempty"`
	Subject        string        `json:"subject,omitempty"`
	RecipientEmail string        `json:"recipient_email"`
	EmailType      string        `json:"email_type"`      // otp
	DeliveryStatus string        `json:"delivery_status"` // sent, failed
	ErrorMessage   string        `json:"error_message,omitempty"`
	Duration       time.Duration `json:"duration"`
	SentAt         time.Time     `json:"sent_at"`
}
