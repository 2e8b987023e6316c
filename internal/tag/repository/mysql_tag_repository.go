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

// MySQLTagRepository handles tag persistence for MySQL
type MySQLTagRepository struct {
	db *sql.DB
}

// NewMySQLTagRepository creates a new MySQLTagRepository
func NewMySQLTagRepository(db *sql.DB) *MySQLTagRepository {
	return &MySQLTagRepository{db: db}
}

// Create inserts a new tag
func (r *MySQLTagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	querier := database.GetTx(ctx, r.db)

	id, err := tag.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `INSERT INTO tags (` + tagColumns + `) VALUES (?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, id, tag.Type, tag.Label, tag.Active, tag.CreatedAt, tag.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrTagExists
		}
		return apperrors.Wrap(err, "failed to create tag")
	}
	return nil
}

// Update writes every mutable tag field. Existence is checked by the caller.
func (r *MySQLTagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	querier := database.GetTx(ctx, r.db)

	id, err := tag.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `UPDATE tags SET type = ?, label = ?, active = ?, updated_at = ? WHERE id = ?`

	_, err = querier.ExecContext(ctx, query, tag.Type, tag.Label, tag.Active, tag.UpdatedAt, id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrTagExists
		}
		return apperrors.Wrap(err, "failed to update tag")
	}
	return nil
}

// Delete removes a tag
func (r *MySQLTagRepository) Delete(ctx context.Context, tagID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	id, err := tagID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete tag")
	}
	return checkAffected(result, "failed to delete tag")
}

// GetByID retrieves a tag by ID
func (r *MySQLTagRepository) GetByID(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error) {
	querier := database.GetTx(ctx, r.db)

	id, err := tagID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	row := querier.QueryRowContext(ctx, `SELECT `+tagColumns+` FROM tags WHERE id = ?`, id)
	return scanMySQLTag(row.Scan)
}

// List retrieves tags ordered by type and label.
func (r *MySQLTagRepository) List(ctx context.Context, offset, limit int) ([]*domain.Tag, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + tagColumns + ` FROM tags ORDER BY type, label LIMIT ? OFFSET ?`
	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list tags")
	}
	defer rows.Close() //nolint:errcheck

	tags := make([]*domain.Tag, 0)
	for rows.Next() {
		tag, err := scanMySQLTag(rows.Scan)
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

func scanMySQLTag(scan func(dest ...any) error) (*domain.Tag, error) {
	var (
		t  domain.Tag
		id []byte
	)
	if err := scan(&id, &t.Type, &t.Label, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan tag")
	}
	if err := t.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	return &t, nil
}
