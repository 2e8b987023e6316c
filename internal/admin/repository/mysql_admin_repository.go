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

const mysqlAdminSelect = `SELECT u.id, u.username, u.password, u.active, u.user_type,
			  u.created_at, u.updated_at, a.last_access
			  FROM admins a JOIN users u ON u.id = a.user_id`

// MySQLAdminRepository handles admin persistence for MySQL
type MySQLAdminRepository struct {
	db *sql.DB
}

// NewMySQLAdminRepository creates a new MySQLAdminRepository
func NewMySQLAdminRepository(db *sql.DB) *MySQLAdminRepository {
	return &MySQLAdminRepository{
		db: db,
	}
}

// Create inserts the admins row for an existing user.
func (r *MySQLAdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	querier := database.GetTx(ctx, r.db)

	id, err := admin.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, `INSERT INTO admins (user_id, last_access) VALUES (?, ?)`, id, admin.LastAccess)
	if err != nil {
		return apperrors.Wrap(err, "failed to create admin")
	}
	return nil
}

// UpdateLastAccess records a successful sign-in.
func (r *MySQLAdminRepository) UpdateLastAccess(ctx context.Context, adminID uuid.UUID, at time.Time) error {
	querier := database.GetTx(ctx, r.db)

	id, err := adminID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, `UPDATE admins SET last_access = ? WHERE user_id = ?`, at, id)
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
func (r *MySQLAdminRepository) GetByID(ctx context.Context, adminID uuid.UUID) (*domain.Admin, error) {
	querier := database.GetTx(ctx, r.db)

	id, err := adminID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	row := querier.QueryRowContext(ctx, mysqlAdminSelect+` WHERE u.id = ?`, id)
	return scanMySQLAdmin(row.Scan, "failed to get admin by id")
}

// GetByUsername retrieves an admin by username
func (r *MySQLAdminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	querier := database.GetTx(ctx, r.db)

	row := querier.QueryRowContext(ctx, mysqlAdminSelect+` WHERE u.username = ?`, username)
	return scanMySQLAdmin(row.Scan, "failed to get admin by username")
}

func scanMySQLAdmin(scan func(dest ...any) error, message string) (*domain.Admin, error) {
	var (
		admin      domain.Admin
		id         []byte
		lastAccess sql.NullTime
	)
	err := scan(&id, &admin.Username, &admin.Password, &admin.Active, &admin.Type,
		&admin.CreatedAt, &admin.UpdatedAt, &lastAccess)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, apperrors.Wrap(err, message)
	}
	if err := admin.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if lastAccess.Valid {
		admin.LastAccess = &lastAccess.Time
	}
	return &admin, nil
}
