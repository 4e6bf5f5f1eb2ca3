package mailer

import (
	"fmt"

	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends HTML mail through the configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.Logger
}

func NewSMTPMailer(cfg utils.EmailConfig, log *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		log:    log.With(zap.String("component", "mailer")),
	}
}

func (m *SMTPMailer) Send(to, subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	m.log.Debug("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
