// Package mocks provides testify mocks for the purchase use case package.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ourshop/shop/internal/purchase/domain"
)

// MockPurchaseRepository is a mock implementation of usecase.PurchaseRepository.
type MockPurchaseRepository struct {
	mock.Mock
}

// Add mocks the Add method.
func (m *MockPurchaseRepository) Add(ctx context.Context, purchase *domain.Purchase) error {
	return m.Called(ctx, purchase).Error(0)
}

// SetAmount mocks the SetAmount method.
func (m *MockPurchaseRepository) SetAmount(ctx context.Context, customerID, productID uuid.UUID, amount int) error {
	return m.Called(ctx, customerID, productID, amount).Error(0)
}

// Get mocks the Get method.
func (m *MockPurchaseRepository) Get(
	ctx context.Context,
	customerID, productID uuid.UUID,
) (*domain.Purchase, error) {
	args := m.Called(ctx, customerID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

// ListByCustomer mocks the ListByCustomer method.
func (m *MockPurchaseRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*domain.Purchase, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Purchase), args.Error(1)
}

// MockPurchaseUseCase is a mock implementation of usecase.PurchaseUseCase.
type MockPurchaseUseCase struct {
	mock.Mock
}

// Purchase mocks the Purchase method.
func (m *MockPurchaseUseCase) Purchase(
	ctx context.Context,
	customerID, productID uuid.UUID,
	amount int,
) (*domain.Purchase, error) {
	args := m.Called(ctx, customerID, productID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

// UpdateAmount mocks the UpdateAmount method.
func (m *MockPurchaseUseCase) UpdateAmount(
	ctx context.Context,
	customerID, productID uuid.UUID,
	amount int,
) (*domain.Purchase, error) {
	args := m.Called(ctx, customerID, productID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

// ListByCustomer mocks the ListByCustomer method.
func (m *MockPurchaseUseCase) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*domain.Purchase, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Purchase), args.Error(1)
}
