package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/bjtmarts/transfer_tracker_app/internal/apperrors"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/ports/repositories"
	gomail "gopkg.in/gomail.v2"
)

// SMTPConfig holds the outbound mail settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPSender delivers notification emails over SMTP with STARTTLS.
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender creates a sender. Configuration completeness is checked per
// send, not here, so a partially configured deployment still boots and only
// the email side actions report the missing settings.
func NewSMTPSender(cfg SMTPConfig) repositories.Mailer {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) missingSettings() []string {
	var missing []string
	if s.cfg.Host == "" {
		missing = append(missing, "SMTP_SERVER")
	}
	if s.cfg.Username == "" {
		missing = append(missing, "SMTP_USER")
	}
	if s.cfg.Password == "" {
		missing = append(missing, "SMTP_PASSWORD")
	}
	if s.cfg.From == "" {
		missing = append(missing, "FROM_EMAIL")
	}
	return missing
}

// Send implements repositories.Mailer.
func (s *SMTPSender) Send(ctx context.Context, msg repositories.EmailMessage) error {
	if missing := s.missingSettings(); len(missing) > 0 {
		return fmt.Errorf("email not configured, missing %s: %w", strings.Join(missing, ", "), apperrors.ErrDelivery)
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients configured: %w", apperrors.ErrDelivery)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", msg.To...)
	if len(msg.Cc) > 0 {
		m.SetHeader("Cc", msg.Cc...)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	port := s.cfg.Port
	if port == 0 {
		port = 587
	}
	dialer := gomail.NewDialer(s.cfg.Host, port, s.cfg.Username, s.cfg.Password)
	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w: %w", apperrors.ErrDelivery, err)
	}
	return nil
}
