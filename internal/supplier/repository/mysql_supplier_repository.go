package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/database"
	apperrors "github.com/ourshop/shop/internal/errors"
	"github.com/ourshop/shop/internal/supplier/domain"
)

// MySQLSupplierRepository handles supplier persistence for MySQL
type MySQLSupplierRepository struct {
	db *sql.DB
}

// NewMySQLSupplierRepository creates a new MySQLSupplierRepository
func NewMySQLSupplierRepository(db *sql.DB) *MySQLSupplierRepository {
	return &MySQLSupplierRepository{db: db}
}

// Create inserts a new supplier
func (r *MySQLSupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	querier := database.GetTx(ctx, r.db)

	id, err := supplier.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `INSERT INTO suppliers (` + supplierColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, id, supplier.Name, supplier.Phone, supplier.Country,
		supplier.Zip, supplier.CreatedAt, supplier.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create supplier")
	}
	return nil
}

// Update writes every mutable supplier field. Existence is checked by the caller.
func (r *MySQLSupplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	querier := database.GetTx(ctx, r.db)

	id, err := supplier.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `UPDATE suppliers SET name = ?, phone = ?, country = ?, zip = ?, updated_at = ? WHERE id = ?`

	_, err = querier.ExecContext(ctx, query, supplier.Name, supplier.Phone, supplier.Country, supplier.Zip,
		supplier.UpdatedAt, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update supplier")
	}
	return nil
}

// Delete removes a supplier
func (r *MySQLSupplierRepository) Delete(ctx context.Context, supplierID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	id, err := supplierID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM suppliers WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete supplier")
	}
	return checkAffected(result, "failed to delete supplier")
}

// GetByID retrieves a supplier by ID
func (r *MySQLSupplierRepository) GetByID(ctx context.Context, supplierID uuid.UUID) (*domain.Supplier, error) {
	querier := database.GetTx(ctx, r.db)

	id, err := supplierID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	row := querier.QueryRowContext(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = ?`, id)
	return scanMySQLSupplier(row.Scan)
}

// List retrieves suppliers ordered by name.
func (r *MySQLSupplierRepository) List(ctx context.Context, offset, limit int) ([]*domain.Supplier, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name, id LIMIT ? OFFSET ?`
	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list suppliers")
	}
	defer rows.Close() //nolint:errcheck

	suppliers := make([]*domain.Supplier, 0)
	for rows.Next() {
		supplier, err := scanMySQLSupplier(rows.Scan)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate suppliers")
	}
	return suppliers, nil
}

func scanMySQLSupplier(scan func(dest ...any) error) (*domain.Supplier, error) {
	var (
		s  domain.Supplier
		id []byte
	)
	if err := scan(&id, &s.Name, &s.Phone, &s.Country, &s.Zip, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan supplier")
	}
	if err := s.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	return &s, nil
}
