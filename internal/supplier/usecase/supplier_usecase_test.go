package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	databaseMocks "github.com/ourshop/shop/internal/database/mocks"
	"github.com/ourshop/shop/internal/supplier/domain"
	supplierMocks "github.com/ourshop/shop/internal/supplier/usecase/mocks"
)

func TestSupplierUseCase_Create(t *testing.T) {
	ctx := context.Background()
	repo := &supplierMocks.MockSupplierRepository{}
	repo.On("Create", ctx, mock.MatchedBy(func(s *domain.Supplier) bool {
		return s.Name == "Keyco Ltd" && s.Country == "UK" && s.ID.Version() == 7
	})).Return(nil).Once()

	supplier, err := NewSupplierUseCase(&databaseMocks.MockTxManager{}, repo).
		Create(ctx, &domain.SupplierInput{Name: " Keyco Ltd ", Country: "UK", Zip: 10115})
	require.NoError(t, err)
	assert.Equal(t, 10115, supplier.Zip)
	repo.AssertExpectations(t)
}

func TestSupplierUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		txManager := &databaseMocks.MockTxManager{}
		repo := &supplierMocks.MockSupplierRepository{}
		stored := &domain.Supplier{ID: uuid.Must(uuid.NewV7()), Name: "Old"}

		txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		repo.On("GetByID", ctx, stored.ID).Return(stored, nil).Once()
		repo.On("Update", ctx, stored).Return(nil).Once()

		supplier, err := NewSupplierUseCase(txManager, repo).
			Update(ctx, stored.ID, &domain.SupplierInput{Name: "New", Phone: "555"})
		require.NoError(t, err)
		assert.Equal(t, "New", supplier.Name)
		assert.Equal(t, "555", supplier.Phone)
		repo.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		txManager := &databaseMocks.MockTxManager{}
		repo := &supplierMocks.MockSupplierRepository{}
		id := uuid.Must(uuid.NewV7())

		txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		repo.On("GetByID", ctx, id).Return(nil, domain.ErrSupplierNotFound).Once()

		_, err := NewSupplierUseCase(txManager, repo).Update(ctx, id, &domain.SupplierInput{Name: "New"})
		assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
	})
}
