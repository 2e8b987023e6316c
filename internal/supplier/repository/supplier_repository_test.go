package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourshop/shop/internal/supplier/domain"
)

func newTestSupplier() *domain.Supplier {
	now := time.Now().UTC()
	return &domain.Supplier{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "Keyco Ltd",
		Phone:     "+44 20 7946 0000",
		Country:   "UK",
		Zip:       10115,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

var supplierRowColumns = []string{"id", "name", "phone", "country", "zip", "created_at", "updated_at"}

func TestPostgreSQLSupplierRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close() //nolint:errcheck

		s := newTestSupplier()
		mock.ExpectExec("INSERT INTO suppliers").
			WithArgs(s.ID, s.Name, s.Phone, s.Country, s.Zip, s.CreatedAt, s.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewPostgreSQLSupplierRepository(db).Create(ctx, s))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close() //nolint:errcheck

		mock.ExpectExec("UPDATE suppliers").WillReturnResult(sqlmock.NewResult(0, 0))

		err = NewPostgreSQLSupplierRepository(db).Update(ctx, newTestSupplier())
		assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
	})

	t.Run("GetByID", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close() //nolint:errcheck

		s := newTestSupplier()
		rows := sqlmock.NewRows(supplierRowColumns).
			AddRow(s.ID.String(), s.Name, s.Phone, s.Country, s.Zip, s.CreatedAt, s.UpdatedAt)
		mock.ExpectQuery("SELECT (.+) FROM suppliers WHERE id").WithArgs(s.ID).WillReturnRows(rows)

		got, err := NewPostgreSQLSupplierRepository(db).GetByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, s.Name, got.Name)
		assert.Equal(t, s.Zip, got.Zip)
	})

	t.Run("List", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close() //nolint:errcheck

		s := newTestSupplier()
		rows := sqlmock.NewRows(supplierRowColumns).
			AddRow(s.ID.String(), s.Name, s.Phone, s.Country, s.Zip, s.CreatedAt, s.UpdatedAt)
		mock.ExpectQuery("SELECT (.+) FROM suppliers ORDER BY name").WithArgs(50, 0).WillReturnRows(rows)

		suppliers, err := NewPostgreSQLSupplierRepository(db).List(ctx, 0, 50)
		require.NoError(t, err)
		assert.Len(t, suppliers, 1)
	})
}

func TestMySQLSupplierRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("GetByID_BinaryID", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close() //nolint:errcheck

		s := newTestSupplier()
		id, err := s.ID.MarshalBinary()
		require.NoError(t, err)

		rows := sqlmock.NewRows(supplierRowColumns).
			AddRow(id, s.Name, s.Phone, s.Country, s.Zip, s.CreatedAt, s.UpdatedAt)
		mock.ExpectQuery("SELECT (.+) FROM suppliers WHERE id").WithArgs(id).WillReturnRows(rows)

		got, err := NewMySQLSupplierRepository(db).GetByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, s.ID, got.ID)
	})

	t.Run("Delete_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close() //nolint:errcheck

		mock.ExpectExec("DELETE FROM suppliers").WillReturnResult(sqlmock.NewResult(0, 0))

		err = NewMySQLSupplierRepository(db).Delete(ctx, uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close() //nolint:errcheck

		mock.ExpectQuery("SELECT (.+) FROM suppliers WHERE id").WillReturnError(sql.ErrNoRows)

		_, err = NewMySQLSupplierRepository(db).GetByID(ctx, uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
	})
}
