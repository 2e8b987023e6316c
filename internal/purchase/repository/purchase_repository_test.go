package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourshop/shop/internal/purchase/domain"
)

var purchaseRowColumns = []string{
	"customer_id", "product_id", "amount", "bought_at",
	"product_number", "brand", "model", "other_info", "weight", "description", "price",
	"created_at", "updated_at",
}

func purchaseRow(customerID, productID driver.Value, amount int, at time.Time) []driver.Value {
	return []driver.Value{
		customerID, productID, amount, at,
		"KB-1001", "Keyco", "K1", "", 0.85, "Mechanical keyboard", 89.9, at, at,
	}
}

func TestPostgreSQLPurchaseRepository_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Accumulates", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close() //nolint:errcheck

		purchase := &domain.Purchase{
			CustomerID: uuid.Must(uuid.NewV7()),
			ProductID:  uuid.Must(uuid.NewV7()),
			Amount:     2,
			BoughtAt:   time.Now().UTC(),
		}
		mock.ExpectExec(`INSERT INTO products_bought (.+) ON CONFLICT \(customer_id, product_id\) ` +
			`DO UPDATE SET amount = products_bought.amount \+ EXCLUDED.amount`).
			WithArgs(purchase.CustomerID, purchase.ProductID, 2, purchase.BoughtAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewPostgreSQLPurchaseRepository(db).Add(ctx, purchase))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_Database", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close() //nolint:errcheck

		mock.ExpectExec("INSERT INTO products_bought").WillReturnError(errors.New("foreign key violation"))

		err = NewPostgreSQLPurchaseRepository(db).Add(ctx, &domain.Purchase{Amount: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to record purchase")
	})
}

func TestPostgreSQLPurchaseRepository_SetAmount(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectExec("UPDATE products_bought SET amount").WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewPostgreSQLPurchaseRepository(db).SetAmount(ctx, uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()), 4)
	assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)
}

func TestPostgreSQLPurchaseRepository_ListByCustomer(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	customerID, productID := uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())
	rows := sqlmock.NewRows(purchaseRowColumns).
		AddRow(purchaseRow(customerID.String(), productID.String(), 3, time.Now().UTC())...)
	mock.ExpectQuery("SELECT (.+) FROM products_bought pb JOIN products p (.+) WHERE pb.customer_id").
		WithArgs(customerID).
		WillReturnRows(rows)

	purchases, err := NewPostgreSQLPurchaseRepository(db).ListByCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, 3, purchases[0].Amount)
	require.NotNil(t, purchases[0].Product)
	assert.Equal(t, productID, purchases[0].Product.ID)
	assert.Equal(t, "KB-1001", purchases[0].Product.ProductNumber)
}

func TestMySQLPurchaseRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Add_BinaryIDs", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close() //nolint:errcheck

		purchase := &domain.Purchase{
			CustomerID: uuid.Must(uuid.NewV7()),
			ProductID:  uuid.Must(uuid.NewV7()),
			Amount:     1,
			BoughtAt:   time.Now().UTC(),
		}
		customer, err := purchase.CustomerID.MarshalBinary()
		require.NoError(t, err)
		product, err := purchase.ProductID.MarshalBinary()
		require.NoError(t, err)

		mock.ExpectExec(`ON DUPLICATE KEY UPDATE amount = amount \+ VALUES\(amount\)`).
			WithArgs(customer, product, 1, purchase.BoughtAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewMySQLPurchaseRepository(db).Add(ctx, purchase))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Get_BinaryIDs", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close() //nolint:errcheck

		customerID, productID := uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())
		customer, err := customerID.MarshalBinary()
		require.NoError(t, err)
		product, err := productID.MarshalBinary()
		require.NoError(t, err)

		rows := sqlmock.NewRows(purchaseRowColumns).AddRow(purchaseRow(customer, product, 5, time.Now().UTC())...)
		mock.ExpectQuery("SELECT (.+) FROM products_bought").WithArgs(customer, product).WillReturnRows(rows)

		purchase, err := NewMySQLPurchaseRepository(db).Get(ctx, customerID, productID)
		require.NoError(t, err)
		assert.Equal(t, customerID, purchase.CustomerID)
		assert.Equal(t, productID, purchase.Product.ID)
		assert.Equal(t, 5, purchase.Amount)
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close() //nolint:errcheck

		mock.ExpectQuery("SELECT (.+) FROM products_bought").WillReturnError(sql.ErrNoRows)

		_, err = NewMySQLPurchaseRepository(db).Get(ctx, uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)
	})
}
