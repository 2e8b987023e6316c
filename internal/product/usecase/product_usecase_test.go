package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	databaseMocks "github.com/ourshop/shop/internal/database/mocks"
	"github.com/ourshop/shop/internal/product/domain"
	productMocks "github.com/ourshop/shop/internal/product/usecase/mocks"
)

func validInput() *domain.ProductInput {
	return &domain.ProductInput{
		ProductNumber: "  KB-1001 ",
		Brand:         "Keyco",
		Model:         "K1",
		Weight:        0.85,
		Description:   "Mechanical keyboard",
		Price:         89.9,
	}
}

func TestProductUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := &productMocks.MockProductRepository{}
		repo.On("Create", ctx, mock.MatchedBy(func(p *domain.Product) bool {
			return p.ProductNumber == "KB-1001" && p.ID.Version() == 7 && !p.CreatedAt.IsZero()
		})).Return(nil).Once()

		product, err := NewProductUseCase(&databaseMocks.MockTxManager{}, repo).Create(ctx, validInput())
		require.NoError(t, err)
		assert.Equal(t, "KB-1001", product.ProductNumber)
		assert.InDelta(t, 89.9, product.Price, 0.0001)
		repo.AssertExpectations(t)
	})

	t.Run("Error_NegativePrice", func(t *testing.T) {
		repo := &productMocks.MockProductRepository{}
		input := validInput()
		input.Price = -1

		_, err := NewProductUseCase(&databaseMocks.MockTxManager{}, repo).Create(ctx, input)
		assert.ErrorIs(t, err, domain.ErrInvalidPrice)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_DuplicateNumber", func(t *testing.T) {
		repo := &productMocks.MockProductRepository{}
		repo.On("Create", ctx, mock.Anything).Return(domain.ErrProductNumberTaken).Once()

		_, err := NewProductUseCase(&databaseMocks.MockTxManager{}, repo).Create(ctx, validInput())
		assert.ErrorIs(t, err, domain.ErrProductNumberTaken)
	})
}

func TestProductUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_KeepsCreatedAt", func(t *testing.T) {
		txManager := &databaseMocks.MockTxManager{}
		repo := &productMocks.MockProductRepository{}

		created := time.Now().UTC().Add(-time.Hour)
		stored := &domain.Product{ID: uuid.Must(uuid.NewV7()), ProductNumber: "OLD", CreatedAt: created, UpdatedAt: created}

		txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		repo.On("GetByID", ctx, stored.ID).Return(stored, nil).Once()
		repo.On("Update", ctx, stored).Return(nil).Once()

		product, err := NewProductUseCase(txManager, repo).Update(ctx, stored.ID, validInput())
		require.NoError(t, err)
		assert.Equal(t, "KB-1001", product.ProductNumber)
		assert.Equal(t, created, product.CreatedAt)
		assert.True(t, product.UpdatedAt.After(created))
		txManager.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		txManager := &databaseMocks.MockTxManager{}
		repo := &productMocks.MockProductRepository{}
		id := uuid.Must(uuid.NewV7())

		txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		repo.On("GetByID", ctx, id).Return(nil, domain.ErrProductNotFound).Once()

		_, err := NewProductUseCase(txManager, repo).Update(ctx, id, validInput())
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestProductUseCase_List(t *testing.T) {
	ctx := context.Background()
	repo := &productMocks.MockProductRepository{}
	products := []*domain.Product{{ID: uuid.Must(uuid.NewV7())}}
	repo.On("List", ctx, 0, 50).Return(products, nil).Once()

	got, err := NewProductUseCase(&databaseMocks.MockTxManager{}, repo).List(ctx, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, products, got)
	repo.AssertExpectations(t)
}
