// Package mocks provides testify mocks for notifiers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	notificationDomain "github.com/ourshop/shop/internal/notification/domain"
)

// MockNotifier is a mock implementation of service.Notifier.
type MockNotifier struct {
	mock.Mock
}

// Send mocks the Send method.
func (m *MockNotifier) Send(ctx context.Context, email notificationDomain.Email) error {
	return m.Called(ctx, email).Error(0)
}
