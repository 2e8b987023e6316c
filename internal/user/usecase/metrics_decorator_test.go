package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ourshop/shop/internal/metrics"
	"github.com/ourshop/shop/internal/user/domain"
	userMocks "github.com/ourshop/shop/internal/user/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func TestNewUserUseCaseWithMetrics(t *testing.T) {
	decorator := NewUserUseCaseWithMetrics(&userMocks.MockUserUseCase{}, &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.Implements(t, (*UserUseCase)(nil), decorator)
}

func TestMetricsDecorator_Create(t *testing.T) {
	ctx := context.Background()
	input := &domain.CreateUserInput{Username: "alice", Type: domain.UserTypeAdmin}

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockUseCase := &userMocks.MockUserUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		expected := &domain.User{ID: uuid.Must(uuid.NewV7()), Username: "alice"}

		mockUseCase.On("Create", ctx, input).Return(expected, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "users", "user_create", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "users", "user_create", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		user, err := NewUserUseCaseWithMetrics(mockUseCase, mockMetrics).Create(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, expected, user)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		mockUseCase := &userMocks.MockUserUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		expectedErr := errors.New("boom")

		mockUseCase.On("Create", ctx, input).Return(nil, expectedErr).Once()
		mockMetrics.On("RecordOperation", ctx, "users", "user_create", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "users", "user_create", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		_, err := NewUserUseCaseWithMetrics(mockUseCase, mockMetrics).Create(ctx, input)

		assert.ErrorIs(t, err, expectedErr)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}

func TestMetricsDecorator_SignIn(t *testing.T) {
	ctx := context.Background()
	input := &domain.SignInInput{Username: "alice"}
	mockUseCase := &userMocks.MockUserUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	mockUseCase.On("SignIn", ctx, input).Return(nil, errors.New("invalid credentials")).Once()
	mockMetrics.On("RecordOperation", ctx, "users", "user_signin", "error").Return().Once()
	mockMetrics.On("RecordDuration", ctx, "users", "user_signin", mock.AnythingOfType("time.Duration"), "error").
		Return().
		Once()

	_, err := NewUserUseCaseWithMetrics(mockUseCase, mockMetrics).SignIn(ctx, input)

	assert.Error(t, err)
	mockMetrics.AssertExpectations(t)
}

func TestMetricsDecorator_ListByActive(t *testing.T) {
	ctx := context.Background()
	mockUseCase := &userMocks.MockUserUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	mockUseCase.On("ListByActive", ctx, true, 0, 20).Return([]*domain.User{}, nil).Once()
	mockMetrics.On("RecordOperation", ctx, "users", "user_list_by_active", "success").Return().Once()
	mockMetrics.On(
		"RecordDuration", ctx, "users", "user_list_by_active", mock.AnythingOfType("time.Duration"), "success",
	).Return().Once()

	users, err := NewUserUseCaseWithMetrics(mockUseCase, mockMetrics).ListByActive(ctx, true, 0, 20)

	assert.NoError(t, err)
	assert.Empty(t, users)
	mockMetrics.AssertExpectations(t)
}
