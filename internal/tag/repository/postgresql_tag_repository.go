// Package repository provides data persistence implementations for tags.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/database"
	apperrors "github.com/ourshop/shop/internal/errors"
	"github.com/ourshop/shop/internal/tag/domain"
)

const tagColumns = `id, type, label, active, created_at, updated_at`

// PostgreSQLTagRepository handles tag persistence for PostgreSQL
type PostgreSQLTagRepository struct {
	db *sql.DB
}

// NewPostgreSQLTagRepository creates a new PostgreSQLTagRepository
func NewPostgreSQLTagRepository(db *sql.DB) *PostgreSQLTagRepository {
	return &PostgreSQLTagRepository{db: db}
}

// Create inserts a new tag
func (r *PostgreSQLTagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO tags (` + tagColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(ctx, query, tag.ID, tag.Type, tag.Label, tag.Active, tag.CreatedAt, tag.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrTagExists
		}
		return apperrors.Wrap(err, "failed to create tag")
	}
	return nil
}

// Update writes every mutable tag field.
func (r *PostgreSQLTagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE tags SET type = $1, label = $2, active = $3, updated_at = $4 WHERE id = $5`

	result, err := querier.ExecContext(ctx, query, tag.Type, tag.Label, tag.Active, tag.UpdatedAt, tag.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrTagExists
		}
		return apperrors.Wrap(err, "failed to update tag")
	}
	return checkAffected(result, "failed to update tag")
}

// Delete removes a tag
func (r *PostgreSQLTagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete tag")
	}
	return checkAffected(result, "failed to delete tag")
}

// GetByID retrieves a tag by ID
func (r *PostgreSQLTagRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	querier := database.GetTx(ctx, r.db)

	row := querier.QueryRowContext(ctx, `SELECT `+tagColumns+` FROM tags WHERE id = $1`, id)
	return scanTag(row.Scan)
}

// List retrieves tags ordered by type and label.
func (r *PostgreSQLTagRepository) List(ctx context.Context, offset, limit int) ([]*domain.Tag, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + tagColumns + ` FROM tags ORDER BY type, label LIMIT $1 OFFSET $2`
	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list tags")
	}
	defer rows.Close() //nolint:errcheck

	tags := make([]*domain.Tag, 0)
	for rows.Next() {
		tag, err := scanTag(rows.Scan)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate tags")
	}
	return tags, nil
}

func scanTag(scan func(dest ...any) error) (*domain.Tag, error) {
	var t domain.Tag
	if err := scan(&t.ID, &t.Type, &t.Label, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan tag")
	}
	return &t, nil
}

func checkAffected(result sql.Result, message string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, message)
	}
	if affected == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}
