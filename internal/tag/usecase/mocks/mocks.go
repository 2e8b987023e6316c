// Package mocks provides testify mocks for the tag use case package.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ourshop/shop/internal/tag/domain"
)

// MockTagRepository is a mock implementation of usecase.TagRepository.
type MockTagRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockTagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

// Update mocks the Update method.
func (m *MockTagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

// Delete mocks the Delete method.
func (m *MockTagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// GetByID mocks the GetByID method.
func (m *MockTagRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

// List mocks the List method.
func (m *MockTagRepository) List(ctx context.Context, offset, limit int) ([]*domain.Tag, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Tag), args.Error(1)
}

// MockTagUseCase is a mock implementation of usecase.TagUseCase.
type MockTagUseCase struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockTagUseCase) Create(ctx context.Context, input *domain.TagInput) (*domain.Tag, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

// Update mocks the Update method.
func (m *MockTagUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.TagInput,
) (*domain.Tag, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockTagUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Get mocks the Get method.
func (m *MockTagUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

// List mocks the List method.
func (m *MockTagUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Tag, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Tag), args.Error(1)
}
