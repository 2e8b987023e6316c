// Package usecase implements tag management.
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/database"
	"github.com/ourshop/shop/internal/tag/domain"
)

// TagRepository defines persistence for the tags table.
type TagRepository interface {
	Create(ctx context.Context, tag *domain.Tag) error
	Update(ctx context.Context, tag *domain.Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Tag, error)
}

// TagUseCase defines tag business operations.
type TagUseCase interface {
	Create(ctx context.Context, input *domain.TagInput) (*domain.Tag, error)
	Update(ctx context.Context, id uuid.UUID, input *domain.TagInput) (*domain.Tag, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Tag, error)
}

type tagUseCase struct {
	txManager database.TxManager
	tagRepo   TagRepository
}

// NewTagUseCase creates a new TagUseCase
func NewTagUseCase(txManager database.TxManager, tagRepo TagRepository) TagUseCase {
	return &tagUseCase{txManager: txManager, tagRepo: tagRepo}
}

func (uc *tagUseCase) Create(ctx context.Context, input *domain.TagInput) (*domain.Tag, error) {
	now := time.Now().UTC()
	tag := &domain.Tag{ID: uuid.Must(uuid.NewV7()), CreatedAt: now, UpdatedAt: now}
	apply(tag, input)

	if err := uc.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (uc *tagUseCase) Update(ctx context.Context, id uuid.UUID, input *domain.TagInput) (*domain.Tag, error) {
	var tag *domain.Tag
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		if tag, err = uc.tagRepo.GetByID(ctx, id); err != nil {
			return err
		}
		apply(tag, input)
		tag.UpdatedAt = time.Now().UTC()
		return uc.tagRepo.Update(ctx, tag)
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

func (uc *tagUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.tagRepo.Delete(ctx, id)
}

func (uc *tagUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	return uc.tagRepo.GetByID(ctx, id)
}

func (uc *tagUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Tag, error) {
	return uc.tagRepo.List(ctx, offset, limit)
}

// apply normalizes the type to lower case so "Category" and "category" collide.
func apply(tag *domain.Tag, input *domain.TagInput) {
	tag.Type = strings.ToLower(strings.TrimSpace(input.Type))
	tag.Label = strings.TrimSpace(input.Label)
	tag.Active = input.Active
}
