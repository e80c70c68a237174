package mailer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"taskmanager/domain/ports"
	"taskmanager/pkg/logger"
)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
}

// SMTPMailer delivers reminder mail over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	config Config
}

func NewSMTPMailer(cfg Config) ports.MailerPort {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		config: cfg,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, mail *ports.Mail) (string, error) {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.config.From, m.config.FromName)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Text)
	if mail.HTML != "" {
		msg.AddAlternative("text/html", mail.HTML)
	}

	// gomail has no context support; honor cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return "", fmt.Errorf("smtp send failed: %w", err)
	}

	deliveryID := uuid.New().String()
	logger.InfoContext(ctx, "Email sent", "to", mail.To, "subject", mail.Subject, "delivery_id", deliveryID)

	return deliveryID, nil
}
