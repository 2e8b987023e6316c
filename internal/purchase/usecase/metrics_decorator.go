package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/metrics"
	"github.com/ourshop/shop/internal/purchase/domain"
)

// purchaseUseCaseWithMetrics decorates PurchaseUseCase with metrics instrumentation.
type purchaseUseCaseWithMetrics struct {
	next    PurchaseUseCase
	metrics metrics.BusinessMetrics
}

// NewPurchaseUseCaseWithMetrics wraps a PurchaseUseCase with metrics recording.
func NewPurchaseUseCaseWithMetrics(useCase PurchaseUseCase, m metrics.BusinessMetrics) PurchaseUseCase {
	return &purchaseUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *purchaseUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, p.metrics, metrics.DomainPurchases, operation, start, err)
}

func (p *purchaseUseCaseWithMetrics) Purchase(
	ctx context.Context,
	customerID, productID uuid.UUID,
	amount int,
) (*domain.Purchase, error) {
	start := time.Now()
	purchase, err := p.next.Purchase(ctx, customerID, productID, amount)
	p.record(ctx, "purchase_create", start, err)
	return purchase, err
}

func (p *purchaseUseCaseWithMetrics) UpdateAmount(
	ctx context.Context,
	customerID, productID uuid.UUID,
	amount int,
) (*domain.Purchase, error) {
	start := time.Now()
	purchase, err := p.next.UpdateAmount(ctx, customerID, productID, amount)
	p.record(ctx, "purchase_update_amount", start, err)
	return purchase, err
}

func (p *purchaseUseCaseWithMetrics) ListByCustomer(
	ctx context.Context,
	customerID uuid.UUID,
) ([]*domain.Purchase, error) {
	start := time.Now()
	purchases, err := p.next.ListByCustomer(ctx, customerID)
	p.record(ctx, "purchase_list", start, err)
	return purchases, err
}
