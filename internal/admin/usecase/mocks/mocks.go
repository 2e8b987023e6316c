// Package mocks provides testify mocks for the admin use case package.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ourshop/shop/internal/admin/domain"
)

// MockAdminRepository is a mock implementation of usecase.AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockAdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

// UpdateLastAccess mocks the UpdateLastAccess method.
func (m *MockAdminRepository) UpdateLastAccess(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

// GetByID mocks the GetByID method.
func (m *MockAdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

// GetByUsername mocks the GetByUsername method.
func (m *MockAdminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

// MockAdminUseCase is a mock implementation of usecase.AdminUseCase.
type MockAdminUseCase struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockAdminUseCase) Create(ctx context.Context, input *domain.CreateAdminInput) (*domain.Admin, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

// Update mocks the Update method.
func (m *MockAdminUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateAdminInput,
) (*domain.Admin, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockAdminUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Get mocks the Get method.
func (m *MockAdminUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

// SignIn mocks the SignIn method.
func (m *MockAdminUseCase) SignIn(ctx context.Context, input *domain.SignInInput) (*domain.Admin, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}
