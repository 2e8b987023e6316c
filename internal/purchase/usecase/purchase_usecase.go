package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/database"
	apperrors "github.com/ourshop/shop/internal/errors"
	outboxDomain "github.com/ourshop/shop/internal/outbox/domain"
	"github.com/ourshop/shop/internal/purchase/domain"
	userUseCase "github.com/ourshop/shop/internal/user/usecase"
)

type purchaseUseCase struct {
	txManager    database.TxManager
	purchaseRepo PurchaseRepository
	productRepo  ProductReader
	customerRepo CustomerAccount
	outboxRepo   userUseCase.OutboxEventRepository
	logger       *slog.Logger
}

// NewPurchaseUseCase creates a new PurchaseUseCase
func NewPurchaseUseCase(
	txManager database.TxManager,
	purchaseRepo PurchaseRepository,
	productRepo ProductReader,
	customerRepo CustomerAccount,
	outboxRepo userUseCase.OutboxEventRepository,
	logger *slog.Logger,
) PurchaseUseCase {
	return &purchaseUseCase{
		txManager:    txManager,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		outboxRepo:   outboxRepo,
		logger:       logger,
	}
}

func (uc *purchaseUseCase) Purchase(
	ctx context.Context,
	customerID, productID uuid.UUID,
	amount int,
) (*domain.Purchase, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}

	var (
		purchase *domain.Purchase
		total    float64
	)
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		product, err := uc.productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}

		total = product.Price * float64(amount)
		if err := uc.customerRepo.Debit(ctx, customerID, total); err != nil {
			return err
		}

		err = uc.purchaseRepo.Add(ctx, &domain.Purchase{
			CustomerID: customerID,
			ProductID:  productID,
			Amount:     amount,
			BoughtAt:   time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		event, err := outboxDomain.NewOutboxEvent(outboxDomain.EventTypePurchaseCompleted,
			outboxDomain.PurchaseCompletedPayload{
				CustomerID: customerID,
				ProductID:  productID,
				Amount:     amount,
				Total:      total,
			})
		if err != nil {
			return err
		}
		if err := uc.outboxRepo.Create(ctx, event); err != nil {
			return apperrors.Wrap(err, "failed to create outbox event")
		}

		purchase, err = uc.purchaseRepo.Get(ctx, customerID, productID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("product purchased",
		slog.String("customer_id", customerID.String()),
		slog.String("product_id", productID.String()),
		slog.Int("amount", amount),
		slog.Float64("total", total),
	)
	return purchase, nil
}

func (uc *purchaseUseCase) UpdateAmount(
	ctx context.Context,
	customerID, productID uuid.UUID,
	amount int,
) (*domain.Purchase, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}

	var purchase *domain.Purchase
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		if purchase, err = uc.purchaseRepo.Get(ctx, customerID, productID); err != nil {
			return err
		}
		if err := uc.purchaseRepo.SetAmount(ctx, customerID, productID, amount); err != nil {
			return err
		}
		purchase.Amount = amount
		return nil
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

// ListByCustomer fails with not found for an unknown customer instead of returning an
// empty list.
func (uc *purchaseUseCase) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*domain.Purchase, error) {
	if _, err := uc.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return uc.purchaseRepo.ListByCustomer(ctx, customerID)
}
