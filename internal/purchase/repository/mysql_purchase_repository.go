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

// MySQLPurchaseRepository handles purchase persistence for MySQL
type MySQLPurchaseRepository struct {
	db *sql.DB
}

// NewMySQLPurchaseRepository creates a new MySQLPurchaseRepository
func NewMySQLPurchaseRepository(db *sql.DB) *MySQLPurchaseRepository {
	return &MySQLPurchaseRepository{db: db}
}

func marshalPair(customerID, productID uuid.UUID) ([]byte, []byte, error) {
	customer, err := customerID.MarshalBinary()
	if err != nil {
		return nil, nil, apperrors.Wrap(err, "failed to marshal UUID")
	}
	product, err := productID.MarshalBinary()
	if err != nil {
		return nil, nil, apperrors.Wrap(err, "failed to marshal UUID")
	}
	return customer, product, nil
}

// Add records a purchase, adding to the amount when the customer already bought the
// product.
func (r *MySQLPurchaseRepository) Add(ctx context.Context, purchase *domain.Purchase) error {
	querier := database.GetTx(ctx, r.db)

	customer, product, err := marshalPair(purchase.CustomerID, purchase.ProductID)
	if err != nil {
		return err
	}

	query := `INSERT INTO products_bought (customer_id, product_id, amount, bought_at)
			  VALUES (?, ?, ?, ?)
			  ON DUPLICATE KEY UPDATE amount = amount + VALUES(amount), bought_at = VALUES(bought_at)`

	if _, err := querier.ExecContext(ctx, query, customer, product, purchase.Amount, purchase.BoughtAt); err != nil {
		return apperrors.Wrap(err, "failed to record purchase")
	}
	return nil
}

// SetAmount overwrites the amount of a purchase. Existence is checked by the caller.
func (r *MySQLPurchaseRepository) SetAmount(
	ctx context.Context,
	customerID, productID uuid.UUID,
	amount int,
) error {
	querier := database.GetTx(ctx, r.db)

	customer, product, err := marshalPair(customerID, productID)
	if err != nil {
		return err
	}

	_, err = querier.ExecContext(ctx,
		`UPDATE products_bought SET amount = ? WHERE customer_id = ? AND product_id = ?`,
		amount, customer, product)
	if err != nil {
		return apperrors.Wrap(err, "failed to update purchase amount")
	}
	return nil
}

// Get retrieves one purchase with its product.
func (r *MySQLPurchaseRepository) Get(
	ctx context.Context,
	customerID, productID uuid.UUID,
) (*domain.Purchase, error) {
	querier := database.GetTx(ctx, r.db)

	customer, product, err := marshalPair(customerID, productID)
	if err != nil {
		return nil, err
	}

	row := querier.QueryRowContext(ctx, purchaseSelect+` WHERE pb.customer_id = ? AND pb.product_id = ?`,
		customer, product)
	return scanMySQLPurchase(row.Scan)
}

// ListByCustomer retrieves every purchase of a customer, latest first.
func (r *MySQLPurchaseRepository) ListByCustomer(
	ctx context.Context,
	customerID uuid.UUID,
) ([]*domain.Purchase, error) {
	querier := database.GetTx(ctx, r.db)

	id, err := customerID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	rows, err := querier.QueryContext(ctx, purchaseSelect+` WHERE pb.customer_id = ? ORDER BY pb.bought_at DESC`, id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list purchases")
	}
	defer rows.Close() //nolint:errcheck

	purchases := make([]*domain.Purchase, 0)
	for rows.Next() {
		purchase, err := scanMySQLPurchase(rows.Scan)
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

func scanMySQLPurchase(scan func(dest ...any) error) (*domain.Purchase, error) {
	var (
		pb                  domain.Purchase
		p                   productDomain.Product
		customerID, product []byte
	)
	err := scan(&customerID, &product, &pb.Amount, &pb.BoughtAt,
		&p.ProductNumber, &p.Brand, &p.Model, &p.OtherInfo, &p.Weight, &p.Description, &p.Price,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan purchase")
	}
	if err := pb.CustomerID.UnmarshalBinary(customerID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := pb.ProductID.UnmarshalBinary(product); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	p.ID = pb.ProductID
	pb.Product = &p
	return &pb, nil
}
