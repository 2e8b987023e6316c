// Package usecase implements customer business logic, including the password reset
// flow that delivers a generated password by email.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/customer/domain"
)

// CustomerRepository defines persistence for the customers table.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	UpdateBalance(ctx context.Context, id uuid.UUID, balance float64) error
	Debit(ctx context.Context, id uuid.UUID, amount float64) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
}

// CustomerUseCase defines customer business operations.
type CustomerUseCase interface {
	Create(ctx context.Context, input *domain.CreateCustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id uuid.UUID, input *domain.UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance float64) error

	// ResetPassword replaces the password of the customer registered under email and
	// mails the new plaintext. Unknown emails succeed without effect.
	ResetPassword(ctx context.Context, email string) error
}
