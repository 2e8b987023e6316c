package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	credentialDomain "github.com/ourshop/shop/internal/credential/domain"
	credentialMocks "github.com/ourshop/shop/internal/credential/service/mocks"
	databaseMocks "github.com/ourshop/shop/internal/database/mocks"
	apperrors "github.com/ourshop/shop/internal/errors"
	outboxDomain "github.com/ourshop/shop/internal/outbox/domain"
	"github.com/ourshop/shop/internal/user/domain"
	userMocks "github.com/ourshop/shop/internal/user/usecase/mocks"
)

const testHash = "5F4DCC3B5AA765D61D8327DEB882CF99"

type userFixture struct {
	txManager  *databaseMocks.MockTxManager
	userRepo   *userMocks.MockUserRepository
	outboxRepo *userMocks.MockOutboxEventRepository
	pipeline   *credentialMocks.MockPipeline
	useCase    UserUseCase
}

func newUserFixture() *userFixture {
	f := &userFixture{
		txManager:  &databaseMocks.MockTxManager{},
		userRepo:   &userMocks.MockUserRepository{},
		outboxRepo: &userMocks.MockOutboxEventRepository{},
		pipeline:   &credentialMocks.MockPipeline{},
	}
	f.useCase = NewUserUseCase(f.txManager, f.userRepo, f.outboxRepo, f.pipeline)
	return f
}

func (f *userFixture) assertExpectations(t *testing.T) {
	f.txManager.AssertExpectations(t)
	f.userRepo.AssertExpectations(t)
	f.outboxRepo.AssertExpectations(t)
	f.pipeline.AssertExpectations(t)
}

func storedUser(active bool) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Username:  "alice",
		Password:  testHash,
		Active:    active,
		Type:      domain.UserTypeCustomer,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()
	plain := credentialDomain.PasswordInput{Plain: "password"}

	t.Run("Success_HashesStoresAndSeals", func(t *testing.T) {
		f := newUserFixture()
		f.pipeline.On("OpenPassword", plain).Return("password", nil).Once()
		f.pipeline.On("HashForStorage", "password").Return(testHash, nil).Once()
		f.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		f.userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "alice" && u.Password == testHash && u.Active && u.Type == domain.UserTypeCustomer
		})).Return(nil).Once()
		f.outboxRepo.On("Create", ctx, mock.MatchedBy(func(e *outboxDomain.OutboxEvent) bool {
			return e.EventType == outboxDomain.EventTypeUserCreated && e.Status == outboxDomain.OutboxEventStatusPending
		})).Return(nil).Once()
		f.pipeline.On("Seal", testHash).Return("c2VhbGVk", nil).Once()

		user, err := f.useCase.Create(ctx, &domain.CreateUserInput{
			Username: "  alice ",
			Password: plain,
			Active:   true,
			Type:     domain.UserTypeCustomer,
		})

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "c2VhbGVk", user.Password)
		assert.NotEqual(t, uuid.Nil, user.ID)
		f.assertExpectations(t)
	})

	t.Run("Error_InvalidType", func(t *testing.T) {
		f := newUserFixture()

		_, err := f.useCase.Create(ctx, &domain.CreateUserInput{Username: "alice", Password: plain, Type: "guest"})

		assert.ErrorIs(t, err, domain.ErrInvalidUserType)
		f.assertExpectations(t)
	})

	t.Run("Error_InvalidSealedPassword", func(t *testing.T) {
		f := newUserFixture()
		sealed := credentialDomain.PasswordInput{Sealed: "bm9wZQ=="}
		f.pipeline.On("OpenPassword", sealed).Return("", credentialDomain.ErrInvalidSealedPassword).Once()

		_, err := f.useCase.Create(ctx, &domain.CreateUserInput{
			Username: "alice",
			Password: sealed,
			Type:     domain.UserTypeAdmin,
		})

		assert.ErrorIs(t, err, credentialDomain.ErrInvalidSealedPassword)
		f.assertExpectations(t)
	})

	t.Run("Error_UsernameTakenSkipsSeal", func(t *testing.T) {
		f := newUserFixture()
		f.pipeline.On("OpenPassword", plain).Return("password", nil).Once()
		f.pipeline.On("HashForStorage", "password").Return(testHash, nil).Once()
		f.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		f.userRepo.On("Create", ctx, mock.Anything).Return(domain.ErrUsernameTaken).Once()

		_, err := f.useCase.Create(ctx, &domain.CreateUserInput{
			Username: "alice",
			Password: plain,
			Type:     domain.UserTypeCustomer,
		})

		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
		f.outboxRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.pipeline.AssertNotCalled(t, "Seal", mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("Error_OutboxFailureRollsBack", func(t *testing.T) {
		f := newUserFixture()
		f.pipeline.On("OpenPassword", plain).Return("password", nil).Once()
		f.pipeline.On("HashForStorage", "password").Return(testHash, nil).Once()
		f.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		f.userRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		f.outboxRepo.On("Create", ctx, mock.Anything).Return(errors.New("insert failed")).Once()

		_, err := f.useCase.Create(ctx, &domain.CreateUserInput{
			Username: "alice",
			Password: plain,
			Type:     domain.UserTypeCustomer,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create outbox event")
		f.assertExpectations(t)
	})
}

func TestUserUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_KeepsPasswordWhenAbsent", func(t *testing.T) {
		f := newUserFixture()
		existing := storedUser(true)
		f.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		f.userRepo.On("GetByID", ctx, existing.ID).Return(existing, nil).Once()
		f.userRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "bob" && !u.Active && u.Password == testHash
		})).Return(nil).Once()
		f.pipeline.On("Seal", testHash).Return("c2VhbGVk", nil).Once()

		user, err := f.useCase.Update(ctx, existing.ID, &domain.UpdateUserInput{Username: "bob", Active: false})

		require.NoError(t, err)
		assert.Equal(t, "c2VhbGVk", user.Password)
		f.assertExpectations(t)
	})

	t.Run("Success_HashesNewPassword", func(t *testing.T) {
		f := newUserFixture()
		existing := storedUser(true)
		input := credentialDomain.PasswordInput{Plain: "n3w-secret"}
		f.pipeline.On("OpenPassword", input).Return("n3w-secret", nil).Once()
		f.pipeline.On("HashForStorage", "n3w-secret").Return("NEWHASH", nil).Once()
		f.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		f.userRepo.On("GetByID", ctx, existing.ID).Return(existing, nil).Once()
		f.userRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Password == "NEWHASH"
		})).Return(nil).Once()
		f.pipeline.On("Seal", "NEWHASH").Return("bmV3", nil).Once()

		user, err := f.useCase.Update(ctx, existing.ID, &domain.UpdateUserInput{
			Username: "alice",
			Password: input,
			Active:   true,
		})

		require.NoError(t, err)
		assert.Equal(t, "bmV3", user.Password)
		f.assertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		f := newUserFixture()
		id := uuid.Must(uuid.NewV7())
		f.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		f.userRepo.On("GetByID", ctx, id).Return(nil, domain.ErrUserNotFound).Once()

		_, err := f.useCase.Update(ctx, id, &domain.UpdateUserInput{Username: "alice"})

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		f.assertExpectations(t)
	})
}

func TestUserUseCase_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("Get_SealsPassword", func(t *testing.T) {
		f := newUserFixture()
		existing := storedUser(true)
		f.userRepo.On("GetByID", ctx, existing.ID).Return(existing, nil).Once()
		f.pipeline.On("Seal", testHash).Return("c2VhbGVk", nil).Once()

		user, err := f.useCase.Get(ctx, existing.ID)

		require.NoError(t, err)
		assert.Equal(t, "c2VhbGVk", user.Password)
		f.assertExpectations(t)
	})

	t.Run("GetByUsername_NotFound", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrUserNotFound).Once()

		_, err := f.useCase.GetByUsername(ctx, "ghost")

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		f.assertExpectations(t)
	})

	t.Run("List_SealsEveryUser", func(t *testing.T) {
		f := newUserFixture()
		users := []*domain.User{storedUser(true), storedUser(true)}
		f.userRepo.On("List", ctx, 0, 50).Return(users, nil).Once()
		f.pipeline.On("Seal", testHash).Return("c2VhbGVk", nil).Twice()

		result, err := f.useCase.List(ctx, 0, 50)

		require.NoError(t, err)
		require.Len(t, result, 2)
		for _, u := range result {
			assert.Equal(t, "c2VhbGVk", u.Password)
		}
		f.assertExpectations(t)
	})

	t.Run("ListByActive_CipherNotReady", func(t *testing.T) {
		f := newUserFixture()
		unavailable := apperrors.Wrap(apperrors.ErrUnavailable, "credential cipher is not ready")
		f.userRepo.On("ListByActive", ctx, true, 0, 10).Return([]*domain.User{storedUser(true)}, nil).Once()
		f.pipeline.On("Seal", testHash).Return("", unavailable).Once()

		_, err := f.useCase.ListByActive(ctx, true, 0, 10)

		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
		f.assertExpectations(t)
	})

	t.Run("Delete", func(t *testing.T) {
		f := newUserFixture()
		id := uuid.Must(uuid.NewV7())
		f.userRepo.On("Delete", ctx, id).Return(nil).Once()

		require.NoError(t, f.useCase.Delete(ctx, id))
		f.assertExpectations(t)
	})
}

func TestUserUseCase_SignIn(t *testing.T) {
	ctx := context.Background()
	input := credentialDomain.PasswordInput{Plain: "password"}

	t.Run("Success", func(t *testing.T) {
		f := newUserFixture()
		existing := storedUser(true)
		f.userRepo.On("GetByUsername", ctx, "alice").Return(existing, nil).Once()
		f.pipeline.On("OpenPassword", input).Return("password", nil).Once()
		f.pipeline.On("Verify", "password", testHash).Return(true, nil).Once()
		f.pipeline.On("Seal", testHash).Return("c2VhbGVk", nil).Once()

		user, err := f.useCase.SignIn(ctx, &domain.SignInInput{Username: "alice", Password: input})

		require.NoError(t, err)
		assert.Equal(t, existing.ID, user.ID)
		f.assertExpectations(t)
	})

	t.Run("Failure_UnknownUsername", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrUserNotFound).Once()

		_, err := f.useCase.SignIn(ctx, &domain.SignInInput{Username: "ghost", Password: input})

		assert.ErrorIs(t, err, credentialDomain.ErrInvalidCredentials)
		assert.NotErrorIs(t, err, apperrors.ErrNotFound)
		f.assertExpectations(t)
	})

	t.Run("Failure_WrongPassword", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.On("GetByUsername", ctx, "alice").Return(storedUser(true), nil).Once()
		f.pipeline.On("OpenPassword", input).Return("password", nil).Once()
		f.pipeline.On("Verify", "password", testHash).Return(false, nil).Once()

		_, err := f.useCase.SignIn(ctx, &domain.SignInInput{Username: "alice", Password: input})

		assert.ErrorIs(t, err, credentialDomain.ErrInvalidCredentials)
		f.assertExpectations(t)
	})

	t.Run("Failure_InactiveUser", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.On("GetByUsername", ctx, "alice").Return(storedUser(false), nil).Once()
		f.pipeline.On("OpenPassword", input).Return("password", nil).Once()
		f.pipeline.On("Verify", "password", testHash).Return(true, nil).Once()

		_, err := f.useCase.SignIn(ctx, &domain.SignInInput{Username: "alice", Password: input})

		assert.ErrorIs(t, err, credentialDomain.ErrInvalidCredentials)
		f.assertExpectations(t)
	})

	t.Run("Error_RepositoryFailurePassesThrough", func(t *testing.T) {
		f := newUserFixture()
		dbErr := errors.New("connection reset")
		f.userRepo.On("GetByUsername", ctx, "alice").Return(nil, dbErr).Once()

		_, err := f.useCase.SignIn(ctx, &domain.SignInInput{Username: "alice", Password: input})

		assert.ErrorIs(t, err, dbErr)
		f.assertExpectations(t)
	})
}
