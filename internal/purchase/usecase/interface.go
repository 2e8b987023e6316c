// Package usecase implements product purchases against the customer balance.
package usecase

import (
	"context"

	"github.com/google/uuid"

	customerDomain "github.com/ourshop/shop/internal/customer/domain"
	productDomain "github.com/ourshop/shop/internal/product/domain"
	"github.com/ourshop/shop/internal/purchase/domain"
)

// PurchaseRepository defines persistence for the products_bought table.
type PurchaseRepository interface {
	Add(ctx context.Context, purchase *domain.Purchase) error
	SetAmount(ctx context.Context, customerID, productID uuid.UUID, amount int) error
	Get(ctx context.Context, customerID, productID uuid.UUID) (*domain.Purchase, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*domain.Purchase, error)
}

// ProductReader looks up the product being bought.
type ProductReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*productDomain.Product, error)
}

// CustomerAccount reads customers and charges their balance.
type CustomerAccount interface {
	GetByID(ctx context.Context, id uuid.UUID) (*customerDomain.Customer, error)
	Debit(ctx context.Context, id uuid.UUID, amount float64) error
}

// PurchaseUseCase defines purchase business operations.
type PurchaseUseCase interface {
	// Purchase charges price times amount to the customer and records the purchase
	// in one transaction.
	Purchase(ctx context.Context, customerID, productID uuid.UUID, amount int) (*domain.Purchase, error)

	// UpdateAmount corrects the recorded amount without charging the balance.
	UpdateAmount(ctx context.Context, customerID, productID uuid.UUID, amount int) (*domain.Purchase, error)

	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*domain.Purchase, error)
}
