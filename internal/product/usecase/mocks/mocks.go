// Package mocks provides testify mocks for the product use case package.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ourshop/shop/internal/product/domain"
)

// MockProductRepository is a mock implementation of usecase.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

// Update mocks the Update method.
func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

// Delete mocks the Delete method.
func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// GetByID mocks the GetByID method.
func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

// List mocks the List method.
func (m *MockProductRepository) List(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

// MockProductUseCase is a mock implementation of usecase.ProductUseCase.
type MockProductUseCase struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockProductUseCase) Create(ctx context.Context, input *domain.ProductInput) (*domain.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

// Update mocks the Update method.
func (m *MockProductUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.ProductInput,
) (*domain.Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockProductUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Get mocks the Get method.
func (m *MockProductUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

// List mocks the List method.
func (m *MockProductUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}
