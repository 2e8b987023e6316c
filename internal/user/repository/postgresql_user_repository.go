// Package repository provides data persistence implementations for users.
//
// PostgreSQL uses native UUID columns, MySQL uses BINARY(16).
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/database"
	apperrors "github.com/ourshop/shop/internal/errors"
	"github.com/ourshop/shop/internal/user/domain"
)

const postgresUserColumns = `id, username, password, active, user_type, created_at, updated_at`

// PostgreSQLUserRepository handles user persistence for PostgreSQL
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{
		db: db,
	}
}

// Create inserts a new user
func (r *PostgreSQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, username, password, active, user_type, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(ctx, query, user.ID, user.Username, user.Password, user.Active,
		user.Type, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Update writes username, password, active and updated_at.
func (r *PostgreSQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users
			  SET username = $1, password = $2, active = $3, updated_at = $4
			  WHERE id = $5`

	result, err := querier.ExecContext(ctx, query, user.Username, user.Password, user.Active,
		user.UpdatedAt, user.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return apperrors.Wrap(err, "failed to update user")
	}
	return checkAffected(result, "failed to update user")
}

// Delete removes a user. Customer and admin rows cascade.
func (r *PostgreSQLUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}
	return checkAffected(result, "failed to delete user")
}

// GetByID retrieves a user by ID
func (r *PostgreSQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresUserColumns + ` FROM users WHERE id = $1`

	return scanUser(querier.QueryRowContext(ctx, query, id), "failed to get user by id")
}

// GetByUsername retrieves a user by username
func (r *PostgreSQLUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresUserColumns + ` FROM users WHERE username = $1`

	return scanUser(querier.QueryRowContext(ctx, query, username), "failed to get user by username")
}

// List retrieves users ordered by creation time.
func (r *PostgreSQLUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresUserColumns + ` FROM users
			  ORDER BY created_at ASC LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	return scanUsers(rows)
}

// ListByActive retrieves users with the given active flag.
func (r *PostgreSQLUserRepository) ListByActive(
	ctx context.Context,
	active bool,
	offset, limit int,
) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresUserColumns + ` FROM users WHERE active = $1
			  ORDER BY created_at ASC LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, active, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users by active")
	}
	return scanUsers(rows)
}

func scanUser(row *sql.Row, message string) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.Active, &user.Type,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, message)
	}
	return &user, nil
}

func scanUsers(rows *sql.Rows) ([]*domain.User, error) {
	defer rows.Close() //nolint:errcheck

	users := make([]*domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Password, &user.Active, &user.Type,
			&user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate users")
	}
	return users, nil
}

func checkAffected(result sql.Result, message string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, message)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
