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

const mysqlUserColumns = `id, username, password, active, user_type, created_at, updated_at`

// MySQLUserRepository handles user persistence for MySQL
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{
		db: db,
	}
}

// Create inserts a new user
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, username, password, active, user_type, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	// Convert UUID to bytes for MySQL BINARY(16)
	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query, id, user.Username, user.Password, user.Active,
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
func (r *MySQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `UPDATE users
			  SET username = ?, password = ?, active = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, user.Username, user.Password, user.Active,
		user.UpdatedAt, id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return apperrors.Wrap(err, "failed to update user")
	}
	return checkAffected(result, "failed to update user")
}

// Delete removes a user. Customer and admin rows cascade.
func (r *MySQLUserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	id, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}
	return checkAffected(result, "failed to delete user")
}

// GetByID retrieves a user by ID
func (r *MySQLUserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	id, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `SELECT ` + mysqlUserColumns + ` FROM users WHERE id = ?`

	return scanMySQLUser(querier.QueryRowContext(ctx, query, id), "failed to get user by id")
}

// GetByUsername retrieves a user by username
func (r *MySQLUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlUserColumns + ` FROM users WHERE username = ?`

	return scanMySQLUser(querier.QueryRowContext(ctx, query, username), "failed to get user by username")
}

// List retrieves users ordered by creation time.
func (r *MySQLUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlUserColumns + ` FROM users
			  ORDER BY created_at ASC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	return scanMySQLUsers(rows)
}

// ListByActive retrieves users with the given active flag.
func (r *MySQLUserRepository) ListByActive(
	ctx context.Context,
	active bool,
	offset, limit int,
) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlUserColumns + ` FROM users WHERE active = ?
			  ORDER BY created_at ASC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, active, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users by active")
	}
	return scanMySQLUsers(rows)
}

func scanMySQLUser(row *sql.Row, message string) (*domain.User, error) {
	var user domain.User
	var idBytes []byte

	err := row.Scan(&idBytes, &user.Username, &user.Password, &user.Active, &user.Type,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, message)
	}

	// Convert bytes back to UUID
	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	return &user, nil
}

func scanMySQLUsers(rows *sql.Rows) ([]*domain.User, error) {
	defer rows.Close() //nolint:errcheck

	users := make([]*domain.User, 0)
	for rows.Next() {
		var user domain.User
		var idBytes []byte
		if err := rows.Scan(&idBytes, &user.Username, &user.Password, &user.Active, &user.Type,
			&user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		if err := user.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate users")
	}
	return users, nil
}
