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

// MySQLProductRepository handles product persistence for MySQL
type MySQLProductRepository struct {
	db *sql.DB
}

// NewMySQLProductRepository creates a new MySQLProductRepository
func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}

// Create inserts a new product
func (r *MySQLProductRepository) Create(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	id, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `INSERT INTO products (` + productColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, id, product.ProductNumber, product.Brand,
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

// Update writes every mutable product field. MySQL counts unchanged rows as not
// affected, so existence is checked by the caller inside the same transaction.
func (r *MySQLProductRepository) Update(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	id, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `UPDATE products
			  SET product_number = ?, brand = ?, model = ?, other_info = ?, weight = ?,
			  description = ?, price = ?, updated_at = ?
			  WHERE id = ?`

	_, err = querier.ExecContext(ctx, query, product.ProductNumber, product.Brand, product.Model,
		product.OtherInfo, product.Weight, product.Description, product.Price, product.UpdatedAt, id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrProductNumberTaken
		}
		return apperrors.Wrap(err, "failed to update product")
	}
	return nil
}

// Delete removes a product. Purchases of it go with it by cascade.
func (r *MySQLProductRepository) Delete(ctx context.Context, productID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	id, err := productID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete product")
	}
	return checkAffected(result, "failed to delete product")
}

// GetByID retrieves a product by ID
func (r *MySQLProductRepository) GetByID(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	id, err := productID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	row := querier.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	return scanMySQLProduct(row.Scan)
}

// List retrieves products ordered by creation time.
func (r *MySQLProductRepository) List(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC, id LIMIT ? OFFSET ?`
	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products")
	}
	defer rows.Close() //nolint:errcheck

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanMySQLProduct(rows.Scan)
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

func scanMySQLProduct(scan func(dest ...any) error) (*domain.Product, error) {
	var (
		p  domain.Product
		id []byte
	)
	err := scan(&id, &p.ProductNumber, &p.Brand, &p.Model, &p.OtherInfo, &p.Weight, &p.Description,
		&p.Price, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan product")
	}
	if err := p.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	return &p, nil
}
