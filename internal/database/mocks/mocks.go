// Package mocks provides testify mocks for the database package.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTxManager is a mock implementation of database.TxManager. Unless a test sets a
// return error, WithTx runs fn with the given context.
type MockTxManager struct {
	mock.Mock
}

// WithTx mocks the WithTx method.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}
