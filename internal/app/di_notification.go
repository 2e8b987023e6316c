package app

import (
	"fmt"

	notificationService "github.com/ourshop/shop/internal/notification/service"
)

// Notifier returns the password reset delivery channel selected by NOTIFIER.
func (c *Container) Notifier() (notificationService.Notifier, error) {
	var err error
	c.notifierInit.Do(func() {
		c.notifier, err = c.initNotifier()
		if err != nil {
			c.initErrors["notifier"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["notifier"]; exists {
		return nil, storedErr
	}
	return c.notifier, nil
}

func (c *Container) initNotifier() (notificationService.Notifier, error) {
	logger := c.Logger()

	switch c.config.Notifier {
	case "smtp":
		notifier, err := notificationService.NewSMTPNotifier(notificationService.SMTPConfig{
			Host:      c.config.SMTPHost,
			Port:      c.config.SMTPPort,
			Username:  c.config.SMTPUsername,
			Password:  c.config.SMTPPassword,
			From:      c.config.SMTPFrom,
			TLSPolicy: c.config.SMTPTLSPolicy,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create smtp notifier: %w", err)
		}
		return notifier, nil
	case "log":
		return notificationService.NewLogNotifier(logger), nil
	default:
		return nil, fmt.Errorf("unsupported notifier: %s", c.config.Notifier)
	}
}
