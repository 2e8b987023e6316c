package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/admin/domain"
	credentialDomain "github.com/ourshop/shop/internal/credential/domain"
	credentialService "github.com/ourshop/shop/internal/credential/service"
	"github.com/ourshop/shop/internal/database"
	apperrors "github.com/ourshop/shop/internal/errors"
	userDomain "github.com/ourshop/shop/internal/user/domain"
	userUseCase "github.com/ourshop/shop/internal/user/usecase"
)

type adminUseCase struct {
	txManager  database.TxManager
	userRepo   userUseCase.UserRepository
	adminRepo  AdminRepository
	outboxRepo userUseCase.OutboxEventRepository
	pipeline   credentialService.Pipeline
}

// NewAdminUseCase creates a new AdminUseCase
func NewAdminUseCase(
	txManager database.TxManager,
	userRepo userUseCase.UserRepository,
	adminRepo AdminRepository,
	outboxRepo userUseCase.OutboxEventRepository,
	pipeline credentialService.Pipeline,
) AdminUseCase {
	return &adminUseCase{
		txManager:  txManager,
		userRepo:   userRepo,
		adminRepo:  adminRepo,
		outboxRepo: outboxRepo,
		pipeline:   pipeline,
	}
}

func (uc *adminUseCase) Create(ctx context.Context, input *domain.CreateAdminInput) (*domain.Admin, error) {
	plain, err := uc.pipeline.OpenPassword(input.Password)
	if err != nil {
		return nil, err
	}
	hashed, err := uc.pipeline.HashForStorage(plain)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	admin := &domain.Admin{
		User: userDomain.User{
			ID:        uuid.Must(uuid.NewV7()),
			Username:  strings.TrimSpace(input.Username),
			Password:  hashed,
			Active:    input.Active,
			Type:      userDomain.UserTypeAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Create(ctx, &admin.User); err != nil {
			return err
		}
		if err := uc.adminRepo.Create(ctx, admin); err != nil {
			return err
		}
		return userUseCase.RecordUserCreated(ctx, uc.outboxRepo, &admin.User)
	})
	if err != nil {
		return nil, err
	}

	return uc.sealed(admin)
}

func (uc *adminUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateAdminInput,
) (*domain.Admin, error) {
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

	var admin *domain.Admin
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		admin, err = uc.adminRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		admin.Username = strings.TrimSpace(input.Username)
		admin.Active = input.Active
		if hashed != "" {
			admin.Password = hashed
		}
		admin.UpdatedAt = time.Now().UTC()

		return uc.userRepo.Update(ctx, &admin.User)
	})
	if err != nil {
		return nil, err
	}

	return uc.sealed(admin)
}

// Delete removes the user row; the admins row follows by cascade.
func (uc *adminUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := uc.adminRepo.GetByID(ctx, id); err != nil {
			return err
		}
		return uc.userRepo.Delete(ctx, id)
	})
}

func (uc *adminUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	admin, err := uc.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.sealed(admin)
}

// SignIn verifies admin credentials and records the access time.
func (uc *adminUseCase) SignIn(ctx context.Context, input *domain.SignInInput) (*domain.Admin, error) {
	admin, err := uc.adminRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, credentialDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := credentialService.Authenticate(uc.pipeline, input.Password, admin.Password, admin.Active); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := uc.adminRepo.UpdateLastAccess(ctx, admin.ID, now); err != nil {
		return nil, err
	}
	admin.LastAccess = &now

	return uc.sealed(admin)
}

func (uc *adminUseCase) sealed(admin *domain.Admin) (*domain.Admin, error) {
	if err := userUseCase.SealUser(uc.pipeline, &admin.User); err != nil {
		return nil, err
	}
	return admin, nil
}
