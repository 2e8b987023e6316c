package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	credentialDomain "github.com/ourshop/shop/internal/credential/domain"
	credentialService "github.com/ourshop/shop/internal/credential/service"
	"github.com/ourshop/shop/internal/database"
	apperrors "github.com/ourshop/shop/internal/errors"
	outboxDomain "github.com/ourshop/shop/internal/outbox/domain"
	"github.com/ourshop/shop/internal/user/domain"
)

type userUseCase struct {
	txManager  database.TxManager
	userRepo   UserRepository
	outboxRepo OutboxEventRepository
	pipeline   credentialService.Pipeline
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	outboxRepo OutboxEventRepository,
	pipeline credentialService.Pipeline,
) UserUseCase {
	return &userUseCase{
		txManager:  txManager,
		userRepo:   userRepo,
		outboxRepo: outboxRepo,
		pipeline:   pipeline,
	}
}

// Create opens the inbound password, hashes it and stores the user together with a
// user.created event.
func (uc *userUseCase) Create(ctx context.Context, input *domain.CreateUserInput) (*domain.User, error) {
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidUserType
	}

	plain, err := uc.pipeline.OpenPassword(input.Password)
	if err != nil {
		return nil, err
	}
	hashed, err := uc.pipeline.HashForStorage(plain)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Username:  strings.TrimSpace(input.Username),
		Password:  hashed,
		Active:    input.Active,
		Type:      input.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return err
		}
		return RecordUserCreated(ctx, uc.outboxRepo, user)
	})
	if err != nil {
		return nil, err
	}

	return uc.sealed(user)
}

// Update changes username and active flag, and the password when one is supplied.
func (uc *userUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateUserInput,
) (*domain.User, error) {
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

	var user *domain.User
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = uc.userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		user.Username = strings.TrimSpace(input.Username)
		user.Active = input.Active
		if hashed != "" {
			user.Password = hashed
		}
		user.UpdatedAt = time.Now().UTC()

		return uc.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return uc.sealed(user)
}

func (uc *userUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.userRepo.Delete(ctx, id)
}

func (uc *userUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.sealed(user)
}

func (uc *userUseCase) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return uc.sealed(user)
}

func (uc *userUseCase) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	users, err := uc.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return uc.sealedAll(users)
}

func (uc *userUseCase) ListByActive(
	ctx context.Context,
	active bool,
	offset, limit int,
) ([]*domain.User, error) {
	users, err := uc.userRepo.ListByActive(ctx, active, offset, limit)
	if err != nil {
		return nil, err
	}
	return uc.sealedAll(users)
}

// SignIn verifies the presented password. Unknown usernames, inactive users and wrong
// passwords all yield ErrInvalidCredentials.
func (uc *userUseCase) SignIn(ctx context.Context, input *domain.SignInInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, signInLookupError(err)
	}

	if err := credentialService.Authenticate(uc.pipeline, input.Password, user.Password, user.Active); err != nil {
		return nil, err
	}

	return uc.sealed(user)
}

func (uc *userUseCase) sealed(user *domain.User) (*domain.User, error) {
	if err := SealUser(uc.pipeline, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *userUseCase) sealedAll(users []*domain.User) ([]*domain.User, error) {
	for _, user := range users {
		if err := SealUser(uc.pipeline, user); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// SealUser replaces the stored hash on user with its sealed form.
func SealUser(pipeline credentialService.Pipeline, user *domain.User) error {
	sealed, err := pipeline.Seal(user.Password)
	if err != nil {
		return err
	}
	user.Password = sealed
	return nil
}

// RecordUserCreated writes a user.created event in the caller's transaction.
func RecordUserCreated(ctx context.Context, outboxRepo OutboxEventRepository, user *domain.User) error {
	event, err := outboxDomain.NewOutboxEvent(outboxDomain.EventTypeUserCreated, outboxDomain.UserCreatedPayload{
		UserID:   user.ID,
		Username: user.Username,
		Type:     string(user.Type),
	})
	if err != nil {
		return err
	}
	if err := outboxRepo.Create(ctx, event); err != nil {
		return apperrors.Wrap(err, "failed to create outbox event")
	}
	return nil
}

func signInLookupError(err error) error {
	if apperrors.Is(err, apperrors.ErrNotFound) {
		return credentialDomain.ErrInvalidCredentials
	}
	return err
}
