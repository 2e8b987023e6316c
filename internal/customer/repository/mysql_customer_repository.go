package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/customer/domain"
	"github.com/ourshop/shop/internal/database"
	apperrors "github.com/ourshop/shop/internal/errors"
)

const mysqlCustomerSelect = `SELECT u.id, u.username, u.password, u.active, u.user_type,
			  u.created_at, u.updated_at, c.full_name, c.email, c.street, c.postal_code, c.city,
			  c.phone, c.balance
			  FROM customers c JOIN users u ON u.id = c.user_id`

// MySQLCustomerRepository handles customer persistence for MySQL
type MySQLCustomerRepository struct {
	db *sql.DB
}

// NewMySQLCustomerRepository creates a new MySQLCustomerRepository
func NewMySQLCustomerRepository(db *sql.DB) *MySQLCustomerRepository {
	return &MySQLCustomerRepository{
		db: db,
	}
}

// Create inserts the customers row for an existing user.
func (r *MySQLCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	querier := database.GetTx(ctx, r.db)

	id, err := customer.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `INSERT INTO customers (user_id, full_name, email, street, postal_code, city, phone, balance)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, id, customer.FullName, customer.Email,
		customer.Street, customer.PostalCode, customer.City, customer.Phone, customer.Balance)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return apperrors.Wrap(err, "failed to create customer")
	}
	return nil
}

// Update writes the profile fields.
func (r *MySQLCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	querier := database.GetTx(ctx, r.db)

	id, err := customer.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `UPDATE customers
			  SET full_name = ?, email = ?, street = ?, postal_code = ?, city = ?, phone = ?
			  WHERE user_id = ?`

	_, err = querier.ExecContext(ctx, query, customer.FullName, customer.Email, customer.Street,
		customer.PostalCode, customer.City, customer.Phone, id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return apperrors.Wrap(err, "failed to update customer")
	}
	// MySQL reports zero affected rows when values are unchanged, so existence is
	// checked by the users update in the same transaction.
	return nil
}

// UpdateBalance sets the balance of a customer.
func (r *MySQLCustomerRepository) UpdateBalance(ctx context.Context, customerID uuid.UUID, balance float64) error {
	querier := database.GetTx(ctx, r.db)

	id, err := customerID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	var exists int
	err = querier.QueryRowContext(ctx, `SELECT 1 FROM customers WHERE user_id = ?`, id).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCustomerNotFound
		}
		return apperrors.Wrap(err, "failed to update customer balance")
	}

	if _, err := querier.ExecContext(ctx, `UPDATE customers SET balance = ? WHERE user_id = ?`, balance, id); err != nil {
		return apperrors.Wrap(err, "failed to update customer balance")
	}
	return nil
}

// Debit subtracts amount from the customer balance unless that would make it negative.
func (r *MySQLCustomerRepository) Debit(ctx context.Context, customerID uuid.UUID, amount float64) error {
	querier := database.GetTx(ctx, r.db)

	id, err := customerID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx,
		`UPDATE customers SET balance = balance - ? WHERE user_id = ? AND balance >= ?`, amount, id, amount)
	if err != nil {
		return apperrors.Wrap(err, "failed to debit customer balance")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to debit customer balance")
	}
	if affected > 0 {
		return nil
	}

	var balance float64
	err = querier.QueryRowContext(ctx, `SELECT balance FROM customers WHERE user_id = ?`, id).Scan(&balance)
	return debitOutcome(err, balance, amount)
}

// GetByID retrieves a customer by user ID
func (r *MySQLCustomerRepository) GetByID(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error) {
	querier := database.GetTx(ctx, r.db)

	id, err := customerID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	row := querier.QueryRowContext(ctx, mysqlCustomerSelect+` WHERE u.id = ?`, id)
	return scanMySQLCustomer(row.Scan, "failed to get customer by id")
}

// GetByEmail retrieves a customer by email
func (r *MySQLCustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	querier := database.GetTx(ctx, r.db)

	row := querier.QueryRowContext(ctx, mysqlCustomerSelect+` WHERE c.email = ?`, email)
	return scanMySQLCustomer(row.Scan, "failed to get customer by email")
}

func scanMySQLCustomer(scan func(dest ...any) error, message string) (*domain.Customer, error) {
	var (
		c  domain.Customer
		id []byte
	)
	err := scan(&id, &c.Username, &c.Password, &c.Active, &c.Type, &c.CreatedAt, &c.UpdatedAt,
		&c.FullName, &c.Email, &c.Street, &c.PostalCode, &c.City, &c.Phone, &c.Balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(err, message)
	}
	if err := c.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	return &c, nil
}
