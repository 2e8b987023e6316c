// Package mocks provides testify mocks for the supplier use case package.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ourshop/shop/internal/supplier/domain"
)

// MockSupplierRepository is a mock implementation of usecase.SupplierRepository.
type MockSupplierRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockSupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	return m.Called(ctx, supplier).Error(0)
}

// Update mocks the Update method.
func (m *MockSupplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	return m.Called(ctx, supplier).Error(0)
}

// Delete mocks the Delete method.
func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// GetByID mocks the GetByID method.
func (m *MockSupplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

// List mocks the List method.
func (m *MockSupplierRepository) List(ctx context.Context, offset, limit int) ([]*domain.Supplier, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Supplier), args.Error(1)
}

// MockSupplierUseCase is a mock implementation of usecase.SupplierUseCase.
type MockSupplierUseCase struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockSupplierUseCase) Create(ctx context.Context, input *domain.SupplierInput) (*domain.Supplier, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

// Update mocks the Update method.
func (m *MockSupplierUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.SupplierInput,
) (*domain.Supplier, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockSupplierUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Get mocks the Get method.
func (m *MockSupplierUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

// List mocks the List method.
func (m *MockSupplierUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Supplier, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Supplier), args.Error(1)
}
