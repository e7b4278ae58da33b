package notification

import (
	"context"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer sends plain-text emails to a single recipient
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPMailer delivers mail through an SMTP relay using gomail
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// SMTPConfig holds the relay settings for the SMTP mailer
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewSMTPMailer creates a mailer for the given relay
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send delivers the message. The context is honored before dialing; gomail
// itself has no context support, so an in-flight delivery is not cancelled.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}

// LoggingMailer logs messages instead of delivering them. Used when mail is
// disabled in configuration, and in development.
type LoggingMailer struct {
	logger *zap.Logger
}

// NewLoggingMailer creates a mailer that only logs
func NewLoggingMailer(logger *zap.Logger) *LoggingMailer {
	return &LoggingMailer{logger: logger}
}

// Send logs the message at debug level
func (m *LoggingMailer) Send(_ context.Context, to, subject, body string) error {
	m.logger.Debug("mail suppressed",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_bytes", len(body)),
	)
	return nil
}

var (
	_ Mailer = (*SMTPMailer)(nil)
	_ Mailer = (*LoggingMailer)(nil)
)
