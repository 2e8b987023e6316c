// Package repository provides data persistence implementations for admins.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/admin/domain"
	"github.com/ourshop/shop/internal/database"
	apperrors "github.com/ourshop/shop/internal/errors"
)

const postgresAdminSelect = `SELECT u.id, u.username, u.password, u.active, u.user_type,
			  u.created_at, u.updated_at, a.last_access
			  FROM admins a JOIN users u ON u.id = a.user_id`

// PostgreSQLAdminRepository handles admin persistence for PostgreSQL
type PostgreSQLAdminRepository struct {
	db *sql.DB
}

// NewPostgreSQLAdminRepository creates a new PostgreSQLAdminRepository
func NewPostgreSQLAdminRepository(db *sql.DB) *PostgreSQLAdminRepository {
	return &PostgreSQLAdminRepository{
		db: db,
	}
}

// Create inserts the admins row for an existing user.
func (r *PostgreSQLAdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx, `INSERT INTO admins (user_id, last_access) VALUES ($1, $2)`,
		admin.ID, admin.LastAccess)
	if err != nil {
		return apperrors.Wrap(err, "failed to create admin")
	}
	return nil
}

// UpdateLastAccess records a successful sign-in.
func (r *PostgreSQLAdminRepository) UpdateLastAccess(ctx context.Context, id uuid.UUID, at time.Time) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `UPDATE admins SET last_access = $1 WHERE user_id = $2`, at, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update admin last access")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to update admin last access")
	}
	if affected == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

// GetByID retrieves an admin by user ID
func (r *PostgreSQLAdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	querier := database.GetTx(ctx, r.db)

	row := querier.QueryRowContext(ctx, postgresAdminSelect+` WHERE u.id = $1`, id)
	return scanAdmin(row.Scan, "failed to get admin by id")
}

// GetByUsername retrieves an admin by username
func (r *PostgreSQLAdminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	querier := database.GetTx(ctx, r.db)

	row := querier.QueryRowContext(ctx, postgresAdminSelect+` WHERE u.username = $1`, username)
	return scanAdmin(row.Scan, "failed to get admin by username")
}

func scanAdmin(scan func(dest ...any) error, message string) (*domain.Admin, error) {
	var (
		admin      domain.Admin
		lastAccess sql.NullTime
	)
	err := scan(&admin.ID, &admin.Username, &admin.Password, &admin.Active, &admin.Type,
		&admin.CreatedAt, &admin.UpdatedAt, &lastAccess)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, apperrors.Wrap(err, message)
	}
	if lastAccess.Valid {
		admin.LastAccess = &lastAccess.Time
	}
	return &admin, nil
}
