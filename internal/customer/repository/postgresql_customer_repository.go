// Package repository provides data persistence implementations for customers. The
// users row is written by the user repository in the same transaction; these
// repositories own the customers table and read both through a join.
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

const postgresCustomerSelect = `SELECT u.id, u.username, u.password, u.active, u.user_type,
			  u.created_at, u.updated_at, c.full_name, c.email, c.street, c.postal_code, c.city,
			  c.phone, c.balance
			  FROM customers c JOIN users u ON u.id = c.user_id`

// PostgreSQLCustomerRepository handles customer persistence for PostgreSQL
type PostgreSQLCustomerRepository struct {
	db *sql.DB
}

// NewPostgreSQLCustomerRepository creates a new PostgreSQLCustomerRepository
func NewPostgreSQLCustomerRepository(db *sql.DB) *PostgreSQLCustomerRepository {
	return &PostgreSQLCustomerRepository{
		db: db,
	}
}

// Create inserts the customers row for an existing user.
func (r *PostgreSQLCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO customers (user_id, full_name, email, street, postal_code, city, phone, balance)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(ctx, query, customer.ID, customer.FullName, customer.Email,
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
func (r *PostgreSQLCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE customers
			  SET full_name = $1, email = $2, street = $3, postal_code = $4, city = $5, phone = $6
			  WHERE user_id = $7`

	result, err := querier.ExecContext(ctx, query, customer.FullName, customer.Email, customer.Street,
		customer.PostalCode, customer.City, customer.Phone, customer.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return apperrors.Wrap(err, "failed to update customer")
	}
	return checkAffected(result, "failed to update customer")
}

// UpdateBalance sets the balance of a customer.
func (r *PostgreSQLCustomerRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance float64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `UPDATE customers SET balance = $1 WHERE user_id = $2`, balance, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update customer balance")
	}
	return checkAffected(result, "failed to update customer balance")
}

// Debit subtracts amount from the customer balance unless that would make it negative.
func (r *PostgreSQLCustomerRepository) Debit(ctx context.Context, id uuid.UUID, amount float64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx,
		`UPDATE customers SET balance = balance - $1 WHERE user_id = $2 AND balance >= $1`, amount, id)
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
	err = querier.QueryRowContext(ctx, `SELECT balance FROM customers WHERE user_id = $1`, id).Scan(&balance)
	return debitOutcome(err, balance, amount)
}

// GetByID retrieves a customer by user ID
func (r *PostgreSQLCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	querier := database.GetTx(ctx, r.db)

	row := querier.QueryRowContext(ctx, postgresCustomerSelect+` WHERE u.id = $1`, id)
	return scanCustomer(row.Scan, "failed to get customer by id")
}

// GetByEmail retrieves a customer by email
func (r *PostgreSQLCustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	querier := database.GetTx(ctx, r.db)

	row := querier.QueryRowContext(ctx, postgresCustomerSelect+` WHERE c.email = $1`, email)
	return scanCustomer(row.Scan, "failed to get customer by email")
}

func scanCustomer(scan func(dest ...any) error, message string) (*domain.Customer, error) {
	var c domain.Customer
	err := scan(&c.ID, &c.Username, &c.Password, &c.Active, &c.Type, &c.CreatedAt, &c.UpdatedAt,
		&c.FullName, &c.Email, &c.Street, &c.PostalCode, &c.City, &c.Phone, &c.Balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(err, message)
	}
	return &c, nil
}

func checkAffected(result sql.Result, message string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, message)
	}
	if affected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// debitOutcome explains a debit that touched no row. A zero amount leaves the row
// unchanged, which MySQL reports as unaffected.
func debitOutcome(err error, balance, amount float64) error {
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCustomerNotFound
		}
		return apperrors.Wrap(err, "failed to debit customer balance")
	}
	if balance < amount {
		return domain.ErrInsufficientBalance
	}
	return nil
}
