package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/database"
	"github.com/ourshop/shop/internal/product/domain"
)

type productUseCase struct {
	txManager   database.TxManager
	productRepo ProductRepository
}

// NewProductUseCase creates a new ProductUseCase
func NewProductUseCase(txManager database.TxManager, productRepo ProductRepository) ProductUseCase {
	return &productUseCase{
		txManager:   txManager,
		productRepo: productRepo,
	}
}

func (uc *productUseCase) Create(ctx context.Context, input *domain.ProductInput) (*domain.Product, error) {
	if err := domain.ValidatePrice(input.Price); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:        uuid.Must(uuid.NewV7()),
		CreatedAt: now,
		UpdatedAt: now,
	}
	apply(product, input)

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.ProductInput,
) (*domain.Product, error) {
	if err := domain.ValidatePrice(input.Price); err != nil {
		return nil, err
	}

	var product *domain.Product
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		product, err = uc.productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		apply(product, input)
		product.UpdatedAt = time.Now().UTC()
		return uc.productRepo.Update(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.productRepo.Delete(ctx, id)
}

func (uc *productUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *productUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
	return uc.productRepo.List(ctx, offset, limit)
}

func apply(product *domain.Product, input *domain.ProductInput) {
	product.ProductNumber = strings.TrimSpace(input.ProductNumber)
	product.Brand = strings.TrimSpace(input.Brand)
	product.Model = strings.TrimSpace(input.Model)
	product.OtherInfo = input.OtherInfo
	product.Weight = input.Weight
	product.Description = input.Description
	product.Price = input.Price
}
