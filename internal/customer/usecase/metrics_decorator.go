package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/customer/domain"
	"github.com/ourshop/shop/internal/metrics"
)

// customerUseCaseWithMetrics decorates CustomerUseCase with metrics instrumentation.
type customerUseCaseWithMetrics struct {
	next    CustomerUseCase
	metrics metrics.BusinessMetrics
}

// NewCustomerUseCaseWithMetrics wraps a CustomerUseCase with metrics recording.
func NewCustomerUseCaseWithMetrics(useCase CustomerUseCase, m metrics.BusinessMetrics) CustomerUseCase {
	return &customerUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *customerUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, c.metrics, metrics.DomainCustomers, operation, start, err)
}

func (c *customerUseCaseWithMetrics) Create(
	ctx context.Context,
	input *domain.CreateCustomerInput,
) (*domain.Customer, error) {
	start := time.Now()
	customer, err := c.next.Create(ctx, input)
	c.record(ctx, "customer_create", start, err)
	return customer, err
}

func (c *customerUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateCustomerInput,
) (*domain.Customer, error) {
	start := time.Now()
	customer, err := c.next.Update(ctx, id, input)
	c.record(ctx, "customer_update", start, err)
	return customer, err
}

func (c *customerUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := c.next.Delete(ctx, id)
	c.record(ctx, "customer_delete", start, err)
	return err
}

func (c *customerUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	start := time.Now()
	customer, err := c.next.Get(ctx, id)
	c.record(ctx, "customer_get", start, err)
	return customer, err
}

func (c *customerUseCaseWithMetrics) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	start := time.Now()
	customer, err := c.next.GetByEmail(ctx, email)
	c.record(ctx, "customer_get_by_email", start, err)
	return customer, err
}

func (c *customerUseCaseWithMetrics) UpdateBalance(ctx context.Context, id uuid.UUID, balance float64) error {
	start := time.Now()
	err := c.next.UpdateBalance(ctx, id, balance)
	c.record(ctx, "customer_update_balance", start, err)
	return err
}

func (c *customerUseCaseWithMetrics) ResetPassword(ctx context.Context, email string) error {
	start := time.Now()
	err := c.next.ResetPassword(ctx, email)
	c.record(ctx, "customer_password_reset", start, err)
	return err
}
