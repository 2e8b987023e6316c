// Package repository provides data persistence implementations for products.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/database"
	apperrors "github.com/ourshop/shop/internal/errors"
	"github.com/ourshop/shop/internal/product/domain"
)

const productColumns = `id, product_number, brand, model, other_info, weight, description, price,
			  created_at, updated_at`

// PostgreSQLProductRepository handles product persistence for PostgreSQL
type PostgreSQLProductRepository struct {
	db *sql.DB
}

// NewPostgreSQLProductRepository creates a new PostgreSQLProductRepository
func NewPostgreSQLProductRepository(db *sql.DB) *PostgreSQLProductRepository {
	return &PostgreSQLProductRepository{db: db}
}

// Create inserts a new product
func (r *PostgreSQLProductRepository) Create(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO products (` + productColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := querier.ExecContext(ctx, query, product.ID, product.ProductNumber, product.Brand,
		product.Model, product.OtherInfo, product.Weight, product.Description, product.Price,
		product.CreatedAt, product.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrProductNumberTaken
		}
		return apperrors.Wrap(err, "failed to create product")
	}
	return nil
}

// Update writes every mutable product field.
func (r *PostgreSQLProductRepository) Update(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE products
			  SET product_number = $1, brand = $2, model = $3, other_info = $4, weight = $5,
			  description = $6, price = $7, updated_at = $8
			  WHERE id = $9`

	result, err := querier.ExecContext(ctx, query, product.ProductNumber, product.Brand, product.Model,
		product.OtherInfo, product.Weight, product.Description, product.Price, product.UpdatedAt, product.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrProductNumberTaken
		}
		return apperrors.Wrap(err, "failed to update product")
	}
	return checkAffected(result, "failed to update product")
}

// Delete removes a product. Purchases of it go with it by cascade.
func (r *PostgreSQLProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete product")
	}
	return checkAffected(result, "failed to delete product")
}

// GetByID retrieves a product by ID
func (r *PostgreSQLProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	row := querier.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row.Scan)
}

// List retrieves products ordered by creation time.
func (r *PostgreSQLProductRepository) List(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`
	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products")
	}
	defer rows.Close() //nolint:errcheck

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate products")
	}
	return products, nil
}

func scanProduct(scan func(dest ...any) error) (*domain.Product, error) {
	var p domain.Product
	err := scan(&p.ID, &p.ProductNumber, &p.Brand, &p.Model, &p.OtherInfo, &p.Weight, &p.Description,
		&p.Price, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan product")
	}
	return &p, nil
}

func checkAffected(result sql.Result, message string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, message)
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
