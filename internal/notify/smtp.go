package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/errs"
)

// SMTPDispatcher sends plain-text email via unauthenticated SMTP. Works with
// Mailpit in development and most internal relays in production.
type SMTPDispatcher struct {
	addr string
	from string
}

func NewSMTPDispatcher(cfg config.NotifyConfig) *SMTPDispatcher {
	from := strings.TrimSpace(cfg.SMTPFrom)
	if from == "" {
		from = "no-reply@booking.local"
	}
	return &SMTPDispatcher{
		addr: fmt.Sprintf("%s:%s", strings.TrimSpace(cfg.SMTPHost), strings.TrimSpace(cfg.SMTPPort)),
		from: from,
	}
}

func (s *SMTPDispatcher) Send(_ context.Context, n Notification) error {
	msg := buildMessage(s.from, n.Recipient, n.Subject, n.Body)
	if err := smtp.SendMail(s.addr, nil, s.from, []string{n.Recipient}, []byte(msg)); err != nil {
		return errs.Mark(errs.Wrap(err, "smtp send failed"), errs.ErrDeliveryFailure)
	}
	return nil
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from, to, subject, body,
	)
}
