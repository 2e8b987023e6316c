// Package mocks provides testify mocks for the customer use case package.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ourshop/shop/internal/customer/domain"
)

// MockCustomerRepository is a mock implementation of usecase.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

// Update mocks the Update method.
func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

// UpdateBalance mocks the UpdateBalance method.
func (m *MockCustomerRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance float64) error {
	return m.Called(ctx, id, balance).Error(0)
}

// Debit mocks the Debit method.
func (m *MockCustomerRepository) Debit(ctx context.Context, id uuid.UUID, amount float64) error {
	return m.Called(ctx, id, amount).Error(0)
}

// GetByID mocks the GetByID method.
func (m *MockCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// GetByEmail mocks the GetByEmail method.
func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// MockCustomerUseCase is a mock implementation of usecase.CustomerUseCase.
type MockCustomerUseCase struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockCustomerUseCase) Create(ctx context.Context, input *domain.CreateCustomerInput) (*domain.Customer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// Update mocks the Update method.
func (m *MockCustomerUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateCustomerInput,
) (*domain.Customer, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockCustomerUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Get mocks the Get method.
func (m *MockCustomerUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// GetByEmail mocks the GetByEmail method.
func (m *MockCustomerUseCase) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// UpdateBalance mocks the UpdateBalance method.
func (m *MockCustomerUseCase) UpdateBalance(ctx context.Context, id uuid.UUID, balance float64) error {
	return m.Called(ctx, id, balance).Error(0)
}

// ResetPassword mocks the ResetPassword method.
func (m *MockCustomerUseCase) ResetPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
