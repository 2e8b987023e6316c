// Package usecase implements user business logic. Passwords are hashed before they
// are stored and sealed under the session key before they leave the use case.
package usecase

import (
	"context"

	"github.com/google/uuid"

	outboxDomain "github.com/ourshop/shop/internal/outbox/domain"
	"github.com/ourshop/shop/internal/user/domain"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	ListByActive(ctx context.Context, active bool, offset, limit int) ([]*domain.User, error)
}

// OutboxEventRepository records lifecycle events in the caller's transaction.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}

// UserUseCase defines user business operations.
type UserUseCase interface {
	Create(ctx context.Context, input *domain.CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, input *domain.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	ListByActive(ctx context.Context, active bool, offset, limit int) ([]*domain.User, error)
	SignIn(ctx context.Context, input *domain.SignInInput) (*domain.User, error)
}
