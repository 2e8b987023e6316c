// Package usecase implements admin business logic.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/admin/domain"
)

// AdminRepository defines persistence for the admins table.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	UpdateLastAccess(ctx context.Context, id uuid.UUID, at time.Time) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
}

// AdminUseCase defines admin business operations.
type AdminUseCase interface {
	Create(ctx context.Context, input *domain.CreateAdminInput) (*domain.Admin, error)
	Update(ctx context.Context, id uuid.UUID, input *domain.UpdateAdminInput) (*domain.Admin, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	SignIn(ctx context.Context, input *domain.SignInInput) (*domain.Admin, error)
}
