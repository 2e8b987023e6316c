// Package usecase implements catalog product management.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/product/domain"
)

// ProductRepository defines persistence for the products table.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Product, error)
}

// ProductUseCase defines product business operations.
type ProductUseCase interface {
	Create(ctx context.Context, input *domain.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, input *domain.ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Product, error)
}
