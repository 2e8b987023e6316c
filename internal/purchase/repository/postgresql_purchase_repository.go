// Package repository provides data persistence implementations for purchases.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/database"
	apperrors "github.com/ourshop/shop/internal/errors"
	productDomain "github.com/ourshop/shop/internal/product/domain"
	"github.com/ourshop/shop/internal/purchase/domain"
)

const purchaseSelect = `SELECT pb.customer_id, pb.product_id, pb.amount, pb.bought_at,
			  p.product_number, p.brand, p.model, p.other_info, p.weight, p.description, p.price,
			  p.created_at, p.updated_at
			  FROM products_bought pb JOIN products p ON p.id = pb.product_id`

// PostgreSQLPurchaseRepository handles purchase persistence for PostgreSQL
type PostgreSQLPurchaseRepository struct {
	db *sql.DB
}

// NewPostgreSQLPurchaseRepository creates a new PostgreSQLPurchaseRepository
func NewPostgreSQLPurchaseRepository(db *sql.DB) *PostgreSQLPurchaseRepository {
	return &PostgreSQLPurchaseRepository{db: db}
}

// Add records a purchase, adding to the amount when the customer already bought the
// product.
func (r *PostgreSQLPurchaseRepository) Add(ctx context.Context, purchase *domain.Purchase) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO products_bought (customer_id, product_id, amount, bought_at)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (customer_id, product_id)
			  DO UPDATE SET amount = products_bought.amount + EXCLUDED.amount, bought_at = EXCLUDED.bought_at`

	_, err := querier.ExecContext(ctx, query, purchase.CustomerID, purchase.ProductID, purchase.Amount,
		purchase.BoughtAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to record purchase")
	}
	return nil
}

// SetAmount overwrites the amount of an existing purchase.
func (r *PostgreSQLPurchaseRepository) SetAmount(
	ctx context.Context,
	customerID, productID uuid.UUID,
	amount int,
) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx,
		`UPDATE products_bought SET amount = $1 WHERE customer_id = $2 AND product_id = $3`,
		amount, customerID, productID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update purchase amount")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to update purchase amount")
	}
	if affected == 0 {
		return domain.ErrPurchaseNotFound
	}
	return nil
}

// Get retrieves one purchase with its product.
func (r *PostgreSQLPurchaseRepository) Get(
	ctx context.Context,
	customerID, productID uuid.UUID,
) (*domain.Purchase, error) {
	querier := database.GetTx(ctx, r.db)

	row := querier.QueryRowContext(ctx, purchaseSelect+` WHERE pb.customer_id = $1 AND pb.product_id = $2`,
		customerID, productID)
	return scanPurchase(row.Scan)
}

// ListByCustomer retrieves every purchase of a customer, latest first.
func (r *PostgreSQLPurchaseRepository) ListByCustomer(
	ctx context.Context,
	customerID uuid.UUID,
) ([]*domain.Purchase, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx,
		purchaseSelect+` WHERE pb.customer_id = $1 ORDER BY pb.bought_at DESC`, customerID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list purchases")
	}
	defer rows.Close() //nolint:errcheck

	purchases := make([]*domain.Purchase, 0)
	for rows.Next() {
		purchase, err := scanPurchase(rows.Scan)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, purchase)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate purchases")
	}
	return purchases, nil
}

func scanPurchase(scan func(dest ...any) error) (*domain.Purchase, error) {
	var (
		pb domain.Purchase
		p  productDomain.Product
	)
	err := scan(&pb.CustomerID, &pb.ProductID, &pb.Amount, &pb.BoughtAt,
		&p.ProductNumber, &p.Brand, &p.Model, &p.OtherInfo, &p.Weight, &p.Description, &p.Price,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan purchase")
	}
	p.ID = pb.ProductID
	pb.Product = &p
	return &pb, nil
}
