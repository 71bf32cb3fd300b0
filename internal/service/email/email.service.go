package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
)

// Mailer is the outbound delivery contract. Delivery is best-effort: a
// failed send never aborts the account mutation that triggered it.
type Mailer interface {
	Send(to, subject, body string) error
}

// Sender delivers mail over SMTP with implicit TLS (port 465).
type Sender struct {
	smtpHost string
	smtpPort string
	username string
	password string
	from     string
}

func NewSender(host, port, user, pass, from string) *Sender {
	if from == "" {
		from = user
	}
	return &Sender{
		smtpHost: host,
		smtpPort: port,
		username: user,
		password: pass,
		from:     from,
	}
}

func (e *Sender) Send(to, subject, body string) error {
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", e.from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" + // required for HTML
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	serverAddr := e.smtpHost + ":" + e.smtpPort

	tlsConfig := &tls.Config{
		ServerName: e.smtpHost,
	}

	conn, err := tls.Dial("tcp", serverAddr, tlsConfig)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, e.smtpHost)
	if err != nil {
		return err
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", e.username, e.password, e.smtpHost)
	if err := client.Auth(auth); err != nil {
		return err
	}

	if err := client.Mail(e.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
