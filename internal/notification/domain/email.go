// Package domain defines outbound notification messages.
package domain

import (
	"github.com/ourshop/shop/internal/errors"
)

// PasswordRecoverySubject is the subject line of password reset emails.
const PasswordRecoverySubject = "Password Recovery"

// Email is a single outbound message. HTML is optional; Text is always sent.
type Email struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

var (
	// ErrInvalidRecipient indicates the recipient address is missing.
	ErrInvalidRecipient = errors.Wrap(errors.ErrInvalidInput, "invalid recipient")

	// ErrDeliveryFailed indicates the message was not handed to a mail server.
	ErrDeliveryFailed = errors.Wrap(errors.ErrUnavailable, "notification delivery failed")
)
