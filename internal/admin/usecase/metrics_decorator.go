package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/admin/domain"
	"github.com/ourshop/shop/internal/metrics"
)

type adminUseCaseWithMetrics struct {
	next    AdminUseCase
	metrics metrics.BusinessMetrics
}

// NewAdminUseCaseWithMetrics wraps an AdminUseCase with metrics recording.
func NewAdminUseCaseWithMetrics(useCase AdminUseCase, m metrics.BusinessMetrics) AdminUseCase {
	return &adminUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *adminUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, a.metrics, metrics.DomainAdmins, operation, start, err)
}

func (a *adminUseCaseWithMetrics) Create(ctx context.Context, input *domain.CreateAdminInput) (*domain.Admin, error) {
	start := time.Now()
	admin, err := a.next.Create(ctx, input)
	a.record(ctx, "admin_create", start, err)
	return admin, err
}

func (a *adminUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateAdminInput,
) (*domain.Admin, error) {
	start := time.Now()
	admin, err := a.next.Update(ctx, id, input)
	a.record(ctx, "admin_update", start, err)
	return admin, err
}

func (a *adminUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := a.next.Delete(ctx, id)
	a.record(ctx, "admin_delete", start, err)
	return err
}

func (a *adminUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	start := time.Now()
	admin, err := a.next.Get(ctx, id)
	a.record(ctx, "admin_get", start, err)
	return admin, err
}

func (a *adminUseCaseWithMetrics) SignIn(ctx context.Context, input *domain.SignInInput) (*domain.Admin, error) {
	start := time.Now()
	admin, err := a.next.SignIn(ctx, input)
	a.record(ctx, "admin_signin", start, err)
	return admin, err
}
