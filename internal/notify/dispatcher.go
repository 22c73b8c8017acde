package notify

import (
	"context"
	"log/slog"
	"time"

	"booking-engine/internal/pkg/errs"
)

// Notification is one outbound message. Recipient is whatever address the
// configured transport understands.
type Notification struct {
	Recipient string
	Subject   string
	Body      string
}

// Dispatcher delivers notifications to customers and the operator. Delivery
// is best effort: callers log failures and move on, bookings never roll back
// because a message did not go out.
type Dispatcher interface {
	Send(ctx context.Context, n Notification) error
}

// WithTimeout bounds every send so a stuck transport cannot stall a sweep or
// hold a request open.
func WithTimeout(d Dispatcher, timeout time.Duration) Dispatcher {
	return &timeoutDispatcher{next: d, timeout: timeout}
}

type timeoutDispatcher struct {
	next    Dispatcher
	timeout time.Duration
}

func (t *timeoutDispatcher) Send(ctx context.Context, n Notification) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- t.next.Send(ctx, n)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return errs.Mark(ctx.Err(), errs.ErrDeliveryFailure)
	}
}

// SendQuietly dispatches and logs a failure instead of returning it.
func SendQuietly(ctx context.Context, d Dispatcher, n Notification) {
	if err := d.Send(ctx, n); err != nil {
		slog.Warn("notification delivery failed",
			"recipient", n.Recipient,
			"subject", n.Subject,
			"error", err.Error())
	}
}

// Fanout sends one notification per recipient.
func Fanout(ctx context.Context, d Dispatcher, recipients []string, subject, body string) {
	for _, r := range recipients {
		SendQuietly(ctx, d, Notification{Recipient: r, Subject: subject, Body: body})
	}
}
