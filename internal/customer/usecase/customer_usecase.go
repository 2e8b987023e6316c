package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	credentialService "github.com/ourshop/shop/internal/credential/service"
	"github.com/ourshop/shop/internal/customer/domain"
	"github.com/ourshop/shop/internal/database"
	apperrors "github.com/ourshop/shop/internal/errors"
	notificationService "github.com/ourshop/shop/internal/notification/service"
	outboxDomain "github.com/ourshop/shop/internal/outbox/domain"
	userDomain "github.com/ourshop/shop/internal/user/domain"
	userUseCase "github.com/ourshop/shop/internal/user/usecase"
)

type customerUseCase struct {
	txManager    database.TxManager
	userRepo     userUseCase.UserRepository
	customerRepo CustomerRepository
	outboxRepo   userUseCase.OutboxEventRepository
	pipeline     credentialService.Pipeline
	notifier     notificationService.Notifier
	logger       *slog.Logger
}

// NewCustomerUseCase creates a new CustomerUseCase
func NewCustomerUseCase(
	txManager database.TxManager,
	userRepo userUseCase.UserRepository,
	customerRepo CustomerRepository,
	outboxRepo userUseCase.OutboxEventRepository,
	pipeline credentialService.Pipeline,
	notifier notificationService.Notifier,
	logger *slog.Logger,
) CustomerUseCase {
	return &customerUseCase{
		txManager:    txManager,
		userRepo:     userRepo,
		customerRepo: customerRepo,
		outboxRepo:   outboxRepo,
		pipeline:     pipeline,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *customerUseCase) Create(ctx context.Context, input *domain.CreateCustomerInput) (*domain.Customer, error) {
	plain, err := uc.pipeline.OpenPassword(input.Password)
	if err != nil {
		return nil, err
	}
	hashed, err := uc.pipeline.HashForStorage(plain)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	customer := &domain.Customer{
		User: userDomain.User{
			ID:        uuid.Must(uuid.NewV7()),
			Username:  strings.TrimSpace(input.Username),
			Password:  hashed,
			Active:    input.Active,
			Type:      userDomain.UserTypeCustomer,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyProfile(customer, input.Profile)

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Create(ctx, &customer.User); err != nil {
			return err
		}
		if err := uc.customerRepo.Create(ctx, customer); err != nil {
			return err
		}
		return userUseCase.RecordUserCreated(ctx, uc.outboxRepo, &customer.User)
	})
	if err != nil {
		return nil, err
	}

	return uc.sealed(customer)
}

func (uc *customerUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateCustomerInput,
) (*domain.Customer, error) {
	var hashed string
	if !input.Password.IsZero() {
		plain, err := uc.pipeline.OpenPassword(input.Password)
		if err != nil {
			return nil, err
		}
		if hashed, err = uc.pipeline.HashForStorage(plain); err != nil {
			return nil, err
		}
	}

	var customer *domain.Customer
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		customer, err = uc.customerRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		customer.Username = strings.TrimSpace(input.Username)
		customer.Active = input.Active
		if hashed != "" {
			customer.Password = hashed
		}
		customer.UpdatedAt = time.Now().UTC()
		applyProfile(customer, input.Profile)

		if err := uc.userRepo.Update(ctx, &customer.User); err != nil {
			return err
		}
		return uc.customerRepo.Update(ctx, customer)
	})
	if err != nil {
		return nil, err
	}

	return uc.sealed(customer)
}

// Delete removes the user row; the customers row follows by cascade.
func (uc *customerUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := uc.customerRepo.GetByID(ctx, id); err != nil {
			return err
		}
		return uc.userRepo.Delete(ctx, id)
	})
}

func (uc *customerUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.sealed(customer)
}

func (uc *customerUseCase) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	customer, err := uc.customerRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return uc.sealed(customer)
}

func (uc *customerUseCase) UpdateBalance(ctx context.Context, id uuid.UUID, balance float64) error {
	if err := domain.ValidateBalance(balance); err != nil {
		return err
	}
	return uc.customerRepo.UpdateBalance(ctx, id, balance)
}

// ResetPassword generates a password, stores its hash and sends the plaintext to the
// customer. The message is sent inside the transaction so a delivery failure keeps
// the previous password.
func (uc *customerUseCase) ResetPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)

	customer, err := uc.customerRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			uc.logger.Info("password reset requested for unknown email")
			return nil
		}
		return err
	}

	password, err := uc.pipeline.GeneratePassword()
	if err != nil {
		return err
	}
	hashed, err := uc.pipeline.HashForStorage(password)
	if err != nil {
		return err
	}
	message, err := notificationService.PasswordResetEmail(customer.Email, password)
	if err != nil {
		return err
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		customer.Password = hashed
		customer.UpdatedAt = time.Now().UTC()
		if err := uc.userRepo.Update(ctx, &customer.User); err != nil {
			return err
		}

		event, err := outboxDomain.NewOutboxEvent(
			outboxDomain.EventTypeCustomerPasswordReset,
			outboxDomain.PasswordResetPayload{CustomerID: customer.ID, Email: customer.Email},
		)
		if err != nil {
			return err
		}
		if err := uc.outboxRepo.Create(ctx, event); err != nil {
			return apperrors.Wrap(err, "failed to create outbox event")
		}

		// A commit failure after a successful send leaves the mailed password unstored.
		return uc.notifier.Send(ctx, message)
	})
	if err != nil {
		return err
	}

	uc.logger.Info("customer password reset", slog.String("customer_id", customer.ID.String()))
	return nil
}

func (uc *customerUseCase) sealed(customer *domain.Customer) (*domain.Customer, error) {
	if err := userUseCase.SealUser(uc.pipeline, &customer.User); err != nil {
		return nil, err
	}
	return customer, nil
}

func applyProfile(customer *domain.Customer, profile domain.Profile) {
	customer.FullName = strings.TrimSpace(profile.FullName)
	customer.Email = strings.TrimSpace(profile.Email)
	customer.Street = profile.Street
	customer.PostalCode = profile.PostalCode
	customer.City = profile.City
	customer.Phone = profile.Phone
}
