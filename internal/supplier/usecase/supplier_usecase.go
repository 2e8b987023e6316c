// Package usecase implements supplier management.
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/database"
	"github.com/ourshop/shop/internal/supplier/domain"
)

// SupplierRepository defines persistence for the suppliers table.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	Update(ctx context.Context, supplier *domain.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Supplier, error)
}

// SupplierUseCase defines supplier business operations.
type SupplierUseCase interface {
	Create(ctx context.Context, input *domain.SupplierInput) (*domain.Supplier, error)
	Update(ctx context.Context, id uuid.UUID, input *domain.SupplierInput) (*domain.Supplier, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Supplier, error)
}

type supplierUseCase struct {
	txManager    database.TxManager
	supplierRepo SupplierRepository
}

// NewSupplierUseCase creates a new SupplierUseCase
func NewSupplierUseCase(txManager database.TxManager, supplierRepo SupplierRepository) SupplierUseCase {
	return &supplierUseCase{txManager: txManager, supplierRepo: supplierRepo}
}

func (uc *supplierUseCase) Create(ctx context.Context, input *domain.SupplierInput) (*domain.Supplier, error) {
	now := time.Now().UTC()
	supplier := &domain.Supplier{ID: uuid.Must(uuid.NewV7()), CreatedAt: now, UpdatedAt: now}
	apply(supplier, input)

	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (uc *supplierUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.SupplierInput,
) (*domain.Supplier, error) {
	var supplier *domain.Supplier
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		if supplier, err = uc.supplierRepo.GetByID(ctx, id); err != nil {
			return err
		}
		apply(supplier, input)
		supplier.UpdatedAt = time.Now().UTC()
		return uc.supplierRepo.Update(ctx, supplier)
	})
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

func (uc *supplierUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.supplierRepo.Delete(ctx, id)
}

func (uc *supplierUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	return uc.supplierRepo.GetByID(ctx, id)
}

func (uc *supplierUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Supplier, error) {
	return uc.supplierRepo.List(ctx, offset, limit)
}

func apply(supplier *domain.Supplier, input *domain.SupplierInput) {
	supplier.Name = strings.TrimSpace(input.Name)
	supplier.Phone = strings.TrimSpace(input.Phone)
	supplier.Country = strings.TrimSpace(input.Country)
	supplier.Zip = input.Zip
}
