package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Mailer delivers outbound notification mail. Delivery failures during
// registration are logged and swallowed by the caller; they never fail the
// flow that triggered them.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SMTPMailer sends through a plain-auth SMTP relay (gmail in the original
// deployment).
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPMailer(host, port, username, password string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     username,
	}
}

func (m *SMTPMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", m.from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		htmlBody,
	}, "\r\n")

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, []byte(msg))
}

// DevConsoleMailer logs outbound mail instead of delivering it. Used when no
// SMTP credentials are configured.
type DevConsoleMailer struct {
	logger *zap.Logger
}

func NewDevConsoleMailer(logger *zap.Logger) *DevConsoleMailer {
	if logger == nil {
		logger = zap.L()
	}
	return &DevConsoleMailer{logger: logger}
}

func (m *DevConsoleMailer) Send(_ context.Context, to, subject, _ string) error {
	m.logger.Info("dev mail (not delivered)",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}
