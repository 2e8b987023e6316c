// Package mocks provides testify mocks for the user use case package.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	outboxDomain "github.com/ourshop/shop/internal/outbox/domain"
	"github.com/ourshop/shop/internal/user/domain"
)

// MockUserRepository is a mock implementation of usecase.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

// Update mocks the Update method.
func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

// Delete mocks the Delete method.
func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// GetByID mocks the GetByID method.
func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// GetByUsername mocks the GetByUsername method.
func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// List mocks the List method.
func (m *MockUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

// ListByActive mocks the ListByActive method.
func (m *MockUserRepository) ListByActive(
	ctx context.Context,
	active bool,
	offset, limit int,
) ([]*domain.User, error) {
	args := m.Called(ctx, active, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

// MockOutboxEventRepository is a mock implementation of usecase.OutboxEventRepository.
type MockOutboxEventRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockOutboxEventRepository) Create(ctx context.Context, event *outboxDomain.OutboxEvent) error {
	return m.Called(ctx, event).Error(0)
}

// MockUserUseCase is a mock implementation of usecase.UserUseCase.
type MockUserUseCase struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockUserUseCase) Create(ctx context.Context, input *domain.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Update mocks the Update method.
func (m *MockUserUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateUserInput,
) (*domain.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockUserUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Get mocks the Get method.
func (m *MockUserUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// GetByUsername mocks the GetByUsername method.
func (m *MockUserUseCase) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// List mocks the List method.
func (m *MockUserUseCase) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

// ListByActive mocks the ListByActive method.
func (m *MockUserUseCase) ListByActive(
	ctx context.Context,
	active bool,
	offset, limit int,
) ([]*domain.User, error) {
	args := m.Called(ctx, active, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

// SignIn mocks the SignIn method.
func (m *MockUserUseCase) SignIn(ctx context.Context, input *domain.SignInInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
