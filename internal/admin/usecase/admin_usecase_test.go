package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ourshop/shop/internal/admin/domain"
	adminMocks "github.com/ourshop/shop/internal/admin/usecase/mocks"
	credentialDomain "github.com/ourshop/shop/internal/credential/domain"
	credentialService "github.com/ourshop/shop/internal/credential/service"
	credentialMocks "github.com/ourshop/shop/internal/credential/service/mocks"
	cryptoDomain "github.com/ourshop/shop/internal/crypto/domain"
	cryptoService "github.com/ourshop/shop/internal/crypto/service"
	databaseMocks "github.com/ourshop/shop/internal/database/mocks"
	userDomain "github.com/ourshop/shop/internal/user/domain"
	userMocks "github.com/ourshop/shop/internal/user/usecase/mocks"
)

const testHash = "5F4DCC3B5AA765D61D8327DEB882CF99"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type adminFixture struct {
	txManager  *databaseMocks.MockTxManager
	userRepo   *userMocks.MockUserRepository
	adminRepo  *adminMocks.MockAdminRepository
	outboxRepo *userMocks.MockOutboxEventRepository
}

func newAdminFixture() *adminFixture {
	return &adminFixture{
		txManager:  &databaseMocks.MockTxManager{},
		userRepo:   &userMocks.MockUserRepository{},
		adminRepo:  &adminMocks.MockAdminRepository{},
		outboxRepo: &userMocks.MockOutboxEventRepository{},
	}
}

func (f *adminFixture) useCase(pipeline credentialService.Pipeline) AdminUseCase {
	return NewAdminUseCase(f.txManager, f.userRepo, f.adminRepo, f.outboxRepo, pipeline)
}

func (f *adminFixture) assertExpectations(t *testing.T) {
	f.txManager.AssertExpectations(t)
	f.userRepo.AssertExpectations(t)
	f.adminRepo.AssertExpectations(t)
	f.outboxRepo.AssertExpectations(t)
}

func storedAdmin(password string, active bool) *domain.Admin {
	now := time.Now().UTC()
	return &domain.Admin{
		User: userDomain.User{
			ID:        uuid.Must(uuid.NewV7()),
			Username:  "root",
			Password:  password,
			Active:    active,
			Type:      userDomain.UserTypeAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// newRealPipeline returns a pipeline over a real cipher and the cipher itself for
// sealing client side values.
func newRealPipeline(t *testing.T) (credentialService.Pipeline, cryptoService.CredentialCipher) {
	t.Helper()

	root := t.TempDir()
	keyFile := filepath.Join(root, "session.key")
	require.NoError(t, os.WriteFile(keyFile, bytes.Repeat([]byte{0x5A}, cryptoDomain.SymmetricKeySize), 0o600))

	hasher, err := cryptoService.NewHasher(cryptoDomain.MD5)
	require.NoError(t, err)

	cipher := cryptoService.NewCredentialCipher(
		cryptoService.NewKeyPairStore(filepath.Join(root, "keys"), discardLogger()),
		cryptoService.NewSymmetricKeyProvider(cryptoService.SymmetricKeyConfig{KeyFile: keyFile}, nil, discardLogger()),
		hasher,
		discardLogger(),
	)
	require.NoError(t, cipher.Init(context.Background()))

	return credentialService.NewPipeline(cipher, credentialService.NewPasswordGenerator(), discardLogger()), cipher
}

func TestAdminUseCase_CreateThenSignIn(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()
	pipeline, cipher := newRealPipeline(t)

	ciphertext, err := cipher.Encrypt(base64.StdEncoding.EncodeToString([]byte("Sw0rdfish!")))
	require.NoError(t, err)
	sealed := credentialDomain.PasswordInput{Sealed: base64.StdEncoding.EncodeToString(ciphertext)}

	var stored *userDomain.User
	f.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
	f.userRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		u := *args.Get(1).(*userDomain.User)
		stored = &u
	}).Return(nil).Once()
	f.adminRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	f.outboxRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

	created, err := f.useCase(pipeline).Create(ctx, &domain.CreateAdminInput{
		Username: "root",
		Password: sealed,
		Active:   true,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	// The stored value is the hash of the opened password, the returned one is sealed.
	expectedHash, err := cipher.Hash("Sw0rdfish!")
	require.NoError(t, err)
	assert.Equal(t, expectedHash, stored.Password)
	assert.NotEqual(t, stored.Password, created.Password)

	admin := storedAdmin(stored.Password, true)
	f.adminRepo.On("GetByUsername", ctx, "root").Return(admin, nil).Twice()
	f.adminRepo.On("UpdateLastAccess", ctx, admin.ID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	signedIn, err := f.useCase(pipeline).SignIn(ctx, &domain.SignInInput{
		Username: "root",
		Password: credentialDomain.PasswordInput{Plain: "Sw0rdfish!"},
	})
	require.NoError(t, err)
	require.NotNil(t, signedIn.LastAccess)

	_, err = f.useCase(pipeline).SignIn(ctx, &domain.SignInInput{
		Username: "root",
		Password: credentialDomain.PasswordInput{Plain: "swordfish"},
	})
	assert.ErrorIs(t, err, credentialDomain.ErrInvalidCredentials)
	f.assertExpectations(t)
}

func TestAdminUseCase_SignIn(t *testing.T) {
	ctx := context.Background()
	input := credentialDomain.PasswordInput{Plain: "password"}

	t.Run("Failure_UnknownAdmin", func(t *testing.T) {
		f := newAdminFixture()
		f.adminRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrAdminNotFound).Once()

		_, err := f.useCase(&credentialMocks.MockPipeline{}).SignIn(ctx, &domain.SignInInput{
			Username: "ghost",
			Password: input,
		})

		assert.ErrorIs(t, err, credentialDomain.ErrInvalidCredentials)
		f.assertExpectations(t)
	})

	t.Run("Failure_InactiveDoesNotTouchLastAccess", func(t *testing.T) {
		f := newAdminFixture()
		pipeline := &credentialMocks.MockPipeline{}
		f.adminRepo.On("GetByUsername", ctx, "root").Return(storedAdmin(testHash, false), nil).Once()
		pipeline.On("OpenPassword", input).Return("password", nil).Once()
		pipeline.On("Verify", "password", testHash).Return(true, nil).Once()

		_, err := f.useCase(pipeline).SignIn(ctx, &domain.SignInInput{Username: "root", Password: input})

		assert.ErrorIs(t, err, credentialDomain.ErrInvalidCredentials)
		f.adminRepo.AssertNotCalled(t, "UpdateLastAccess", mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})
}

func TestAdminUseCase_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Update", func(t *testing.T) {
		f := newAdminFixture()
		pipeline := &credentialMocks.MockPipeline{}
		existing := storedAdmin(testHash, true)
		f.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		f.adminRepo.On("GetByID", ctx, existing.ID).Return(existing, nil).Once()
		f.userRepo.On("Update", ctx, mock.MatchedBy(func(u *userDomain.User) bool {
			return u.Username == "admin" && !u.Active
		})).Return(nil).Once()
		pipeline.On("Seal", testHash).Return("c2VhbGVk", nil).Once()

		admin, err := f.useCase(pipeline).Update(ctx, existing.ID, &domain.UpdateAdminInput{Username: "admin"})

		require.NoError(t, err)
		assert.Equal(t, "c2VhbGVk", admin.Password)
		f.assertExpectations(t)
	})

	t.Run("Delete_NotFound", func(t *testing.T) {
		f := newAdminFixture()
		id := uuid.Must(uuid.NewV7())
		f.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		f.adminRepo.On("GetByID", ctx, id).Return(nil, domain.ErrAdminNotFound).Once()

		err := f.useCase(&credentialMocks.MockPipeline{}).Delete(ctx, id)

		assert.ErrorIs(t, err, domain.ErrAdminNotFound)
		f.assertExpectations(t)
	})
}
