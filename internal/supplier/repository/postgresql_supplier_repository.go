// Package repository provides data persistence implementations for suppliers.
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

const supplierColumns = `id, name, phone, country, zip, created_at, updated_at`

// PostgreSQLSupplierRepository handles supplier persistence for PostgreSQL
type PostgreSQLSupplierRepository struct {
	db *sql.DB
}

// NewPostgreSQLSupplierRepository creates a new PostgreSQLSupplierRepository
func NewPostgreSQLSupplierRepository(db *sql.DB) *PostgreSQLSupplierRepository {
	return &PostgreSQLSupplierRepository{db: db}
}

// Create inserts a new supplier
func (r *PostgreSQLSupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO suppliers (` + supplierColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(ctx, query, supplier.ID, supplier.Name, supplier.Phone, supplier.Country,
		supplier.Zip, supplier.CreatedAt, supplier.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create supplier")
	}
	return nil
}

// Update writes every mutable supplier field.
func (r *PostgreSQLSupplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE suppliers SET name = $1, phone = $2, country = $3, zip = $4, updated_at = $5 WHERE id = $6`

	result, err := querier.ExecContext(ctx, query, supplier.Name, supplier.Phone, supplier.Country, supplier.Zip,
		supplier.UpdatedAt, supplier.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update supplier")
	}
	return checkAffected(result, "failed to update supplier")
}

// Delete removes a supplier
func (r *PostgreSQLSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete supplier")
	}
	return checkAffected(result, "failed to delete supplier")
}

// GetByID retrieves a supplier by ID
func (r *PostgreSQLSupplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	querier := database.GetTx(ctx, r.db)

	row := querier.QueryRowContext(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)
	return scanSupplier(row.Scan)
}

// List retrieves suppliers ordered by name.
func (r *PostgreSQLSupplierRepository) List(ctx context.Context, offset, limit int) ([]*domain.Supplier, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name, id LIMIT $1 OFFSET $2`
	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list suppliers")
	}
	defer rows.Close() //nolint:errcheck

	suppliers := make([]*domain.Supplier, 0)
	for rows.Next() {
		supplier, err := scanSupplier(rows.Scan)
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

func scanSupplier(scan func(dest ...any) error) (*domain.Supplier, error) {
	var s domain.Supplier
	if err := scan(&s.ID, &s.Name, &s.Phone, &s.Country, &s.Zip, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan supplier")
	}
	return &s, nil
}

func checkAffected(result sql.Result, message string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, message)
	}
	if affected == 0 {
		return domain.ErrSupplierNotFound
	}
	return nil
}
