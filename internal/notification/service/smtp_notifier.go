package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	notificationDomain "github.com/ourshop/shop/internal/notification/domain"
)

// SMTPConfig holds the mail server settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	TLSPolicy string
}

type smtpNotifier struct {
	config SMTPConfig
	logger *slog.Logger
}

// NewSMTPNotifier creates a Notifier that delivers through an SMTP server. A client is
// dialed per message.
func NewSMTPNotifier(config SMTPConfig, logger *slog.Logger) (Notifier, error) {
	if config.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if config.From == "" {
		return nil, fmt.Errorf("smtp from address is required")
	}
	if _, err := parseTLSPolicy(config.TLSPolicy); err != nil {
		return nil, err
	}

	return &smtpNotifier{config: config, logger: logger}, nil
}

func (n *smtpNotifier) Send(ctx context.Context, email notificationDomain.Email) error {
	msg, err := n.buildMessage(email)
	if err != nil {
		return err
	}

	client, err := n.newClient()
	if err != nil {
		return fmt.Errorf("%w: %v", notificationDomain.ErrDeliveryFailed, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		n.logger.Error("failed to send email",
			slog.String("subject", email.Subject),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: %v", notificationDomain.ErrDeliveryFailed, err)
	}

	n.logger.Info("email sent", slog.String("subject", email.Subject))
	return nil
}

func (n *smtpNotifier) buildMessage(email notificationDomain.Email) (*mail.Msg, error) {
	if email.To == "" {
		return nil, notificationDomain.ErrInvalidRecipient
	}

	msg := mail.NewMsg()
	if err := msg.From(n.config.From); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(email.To); err != nil {
		return nil, fmt.Errorf("%w: %v", notificationDomain.ErrInvalidRecipient, err)
	}
	msg.Subject(email.Subject)
	msg.SetDate()

	msg.SetBodyString(mail.TypeTextPlain, email.Text)
	if email.HTML != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	}
	return msg, nil
}

func (n *smtpNotifier) newClient() (*mail.Client, error) {
	policy, err := parseTLSPolicy(n.config.TLSPolicy)
	if err != nil {
		return nil, err
	}

	opts := []mail.Option{
		mail.WithPort(n.config.Port),
		mail.WithTLSPolicy(policy),
	}
	if n.config.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.config.Username),
			mail.WithPassword(n.config.Password),
		)
	}

	return mail.NewClient(n.config.Host, opts...)
}

// parseTLSPolicy maps SMTP_TLS_POLICY onto go-mail policies.
func parseTLSPolicy(value string) (mail.TLSPolicy, error) {
	switch value {
	case "", "mandatory":
		return mail.TLSMandatory, nil
	case "opportunistic":
		return mail.TLSOpportunistic, nil
	case "none":
		return mail.NoTLS, nil
	default:
		return mail.NoTLS, fmt.Errorf("unsupported smtp tls policy: %s", value)
	}
}
