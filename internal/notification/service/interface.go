// Package service delivers notifications to customers.
package service

import (
	"context"

	notificationDomain "github.com/ourshop/shop/internal/notification/domain"
)

// Notifier sends a message to an address.
type Notifier interface {
	Send(ctx context.Context, email notificationDomain.Email) error
}
