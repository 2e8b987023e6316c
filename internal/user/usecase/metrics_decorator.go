package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/metrics"
	"github.com/ourshop/shop/internal/user/domain"
)

// userUseCaseWithMetrics decorates UserUseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UserUseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UserUseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UserUseCase, m metrics.BusinessMetrics) UserUseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, u.metrics, metrics.DomainUsers, operation, start, err)
}

// Create records metrics for user creation.
func (u *userUseCaseWithMetrics) Create(ctx context.Context, input *domain.CreateUserInput) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Create(ctx, input)
	u.record(ctx, "user_create", start, err)
	return user, err
}

// Update records metrics for user updates.
func (u *userUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateUserInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Update(ctx, id, input)
	u.record(ctx, "user_update", start, err)
	return user, err
}

// Delete records metrics for user deletion.
func (u *userUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := u.next.Delete(ctx, id)
	u.record(ctx, "user_delete", start, err)
	return err
}

// Get records metrics for user retrieval by ID.
func (u *userUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Get(ctx, id)
	u.record(ctx, "user_get", start, err)
	return user, err
}

// GetByUsername records metrics for user retrieval by username.
func (u *userUseCaseWithMetrics) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetByUsername(ctx, username)
	u.record(ctx, "user_get_by_username", start, err)
	return user, err
}

// List records metrics for user listing.
func (u *userUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.List(ctx, offset, limit)
	u.record(ctx, "user_list", start, err)
	return users, err
}

// ListByActive records metrics for user listing by active flag.
func (u *userUseCaseWithMetrics) ListByActive(
	ctx context.Context,
	active bool,
	offset, limit int,
) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.ListByActive(ctx, active, offset, limit)
	u.record(ctx, "user_list_by_active", start, err)
	return users, err
}

// SignIn records metrics for sign-in attempts.
func (u *userUseCaseWithMetrics) SignIn(ctx context.Context, input *domain.SignInInput) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.SignIn(ctx, input)
	u.record(ctx, "user_signin", start, err)
	return user, err
}
