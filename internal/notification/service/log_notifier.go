package service

import (
	"context"
	"fmt"
	"log/slog"

	notificationDomain "github.com/ourshop/shop/internal/notification/domain"
)

type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a Notifier for local development. It records that a message
// was produced without writing its body and reports every message as undelivered, so
// a password reset through it never replaces the stored password.
func NewLogNotifier(logger *slog.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Send(_ context.Context, email notificationDomain.Email) error {
	if email.To == "" {
		return notificationDomain.ErrInvalidRecipient
	}

	n.logger.Warn("email not delivered",
		slog.String("subject", email.Subject),
		slog.Int("text_bytes", len(email.Text)),
		slog.Int("html_bytes", len(email.HTML)),
	)
	return fmt.Errorf("%w: log notifier does not send mail", notificationDomain.ErrDeliveryFailed)
}
