package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	credentialDomain "github.com/ourshop/shop/internal/credential/domain"
	credentialService "github.com/ourshop/shop/internal/credential/service"
	credentialMocks "github.com/ourshop/shop/internal/credential/service/mocks"
	cryptoDomain "github.com/ourshop/shop/internal/crypto/domain"
	cryptoService "github.com/ourshop/shop/internal/crypto/service"
	"github.com/ourshop/shop/internal/customer/domain"
	customerMocks "github.com/ourshop/shop/internal/customer/usecase/mocks"
	databaseMocks "github.com/ourshop/shop/internal/database/mocks"
	notificationDomain "github.com/ourshop/shop/internal/notification/domain"
	notificationMocks "github.com/ourshop/shop/internal/notification/service/mocks"
	outboxDomain "github.com/ourshop/shop/internal/outbox/domain"
	userDomain "github.com/ourshop/shop/internal/user/domain"
	userMocks "github.com/ourshop/shop/internal/user/usecase/mocks"
)

const testHash = "5F4DCC3B5AA765D61D8327DEB882CF99"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type customerFixture struct {
	txManager    *databaseMocks.MockTxManager
	userRepo     *userMocks.MockUserRepository
	customerRepo *customerMocks.MockCustomerRepository
	outboxRepo   *userMocks.MockOutboxEventRepository
	notifier     *notificationMocks.MockNotifier
}

func newCustomerFixture() *customerFixture {
	return &customerFixture{
		txManager:    &databaseMocks.MockTxManager{},
		userRepo:     &userMocks.MockUserRepository{},
		customerRepo: &customerMocks.MockCustomerRepository{},
		outboxRepo:   &userMocks.MockOutboxEventRepository{},
		notifier:     &notificationMocks.MockNotifier{},
	}
}

func (f *customerFixture) useCase(pipeline credentialService.Pipeline) CustomerUseCase {
	return NewCustomerUseCase(f.txManager, f.userRepo, f.customerRepo, f.outboxRepo, pipeline, f.notifier,
		discardLogger())
}

func (f *customerFixture) assertExpectations(t *testing.T) {
	f.txManager.AssertExpectations(t)
	f.userRepo.AssertExpectations(t)
	f.customerRepo.AssertExpectations(t)
	f.outboxRepo.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func storedCustomer() *domain.Customer {
	now := time.Now().UTC()
	return &domain.Customer{
		User: userDomain.User{
			ID:        uuid.Must(uuid.NewV7()),
			Username:  "jane",
			Password:  testHash,
			Active:    true,
			Type:      userDomain.UserTypeCustomer,
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		PostalCode: 48001,
		Balance:    10,
	}
}

func newRealPipeline(t *testing.T) credentialService.Pipeline {
	t.Helper()

	root := t.TempDir()
	keyFile := filepath.Join(root, "session.key")
	require.NoError(t, os.WriteFile(keyFile, bytes.Repeat([]byte{0x3C}, cryptoDomain.SymmetricKeySize), 0o600))

	hasher, err := cryptoService.NewHasher(cryptoDomain.MD5)
	require.NoError(t, err)

	cipher := cryptoService.NewCredentialCipher(
		cryptoService.NewKeyPairStore(filepath.Join(root, "keys"), discardLogger()),
		cryptoService.NewSymmetricKeyProvider(cryptoService.SymmetricKeyConfig{KeyFile: keyFile}, nil, discardLogger()),
		hasher,
		discardLogger(),
	)
	require.NoError(t, cipher.Init(context.Background()))

	return credentialService.NewPipeline(cipher, credentialService.NewPasswordGenerator(), discardLogger())
}

func TestCustomerUseCase_Create(t *testing.T) {
	ctx := context.Background()
	password := credentialDomain.PasswordInput{Plain: "password"}

	t.Run("Success_WritesUserCustomerAndEvent", func(t *testing.T) {
		f := newCustomerFixture()
		pipeline := &credentialMocks.MockPipeline{}
		pipeline.On("OpenPassword", password).Return("password", nil).Once()
		pipeline.On("HashForStorage", "password").Return(testHash, nil).Once()
		pipeline.On("Seal", testHash).Return("c2VhbGVk", nil).Once()
		f.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		f.userRepo.On("Create", ctx, mock.MatchedBy(func(u *userDomain.User) bool {
			return u.Type == userDomain.UserTypeCustomer && u.Password == testHash
		})).Return(nil).Once()
		f.customerRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.Customer) bool {
			return c.Email == "jane@example.com" && c.Balance == 0
		})).Return(nil).Once()
		f.outboxRepo.On("Create", ctx, mock.MatchedBy(func(e *outboxDomain.OutboxEvent) bool {
			return e.EventType == outboxDomain.EventTypeUserCreated
		})).Return(nil).Once()

		customer, err := f.useCase(pipeline).Create(ctx, &domain.CreateCustomerInput{
			Username: "jane",
			Password: password,
			Active:   true,
			Profile:  domain.Profile{FullName: "Jane Doe", Email: " jane@example.com "},
		})

		require.NoError(t, err)
		assert.Equal(t, "c2VhbGVk", customer.Password)
		assert.Equal(t, userDomain.UserTypeCustomer, customer.Type)
		f.assertExpectations(t)
		pipeline.AssertExpectations(t)
	})

	t.Run("Error_EmailTaken", func(t *testing.T) {
		f := newCustomerFixture()
		pipeline := &credentialMocks.MockPipeline{}
		pipeline.On("OpenPassword", password).Return("password", nil).Once()
		pipeline.On("HashForStorage", "password").Return(testHash, nil).Once()
		f.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		f.userRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		f.customerRepo.On("Create", ctx, mock.Anything).Return(domain.ErrEmailTaken).Once()

		_, err := f.useCase(pipeline).Create(ctx, &domain.CreateCustomerInput{Username: "jane", Password: password})

		assert.ErrorIs(t, err, domain.ErrEmailTaken)
		f.assertExpectations(t)
	})
}

func TestCustomerUseCase_Update(t *testing.T) {
	ctx := context.Background()
	f := newCustomerFixture()
	pipeline := &credentialMocks.MockPipeline{}
	existing := storedCustomer()

	f.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
	f.customerRepo.On("GetByID", ctx, existing.ID).Return(existing, nil).Once()
	f.userRepo.On("Update", ctx, mock.MatchedBy(func(u *userDomain.User) bool {
		return u.Username == "jane.doe" && u.Password == testHash
	})).Return(nil).Once()
	f.customerRepo.On("Update", ctx, mock.MatchedBy(func(c *domain.Customer) bool {
		return c.City == "Bilbao" && c.Balance == 10
	})).Return(nil).Once()
	pipeline.On("Seal", testHash).Return("c2VhbGVk", nil).Once()

	customer, err := f.useCase(pipeline).Update(ctx, existing.ID, &domain.UpdateCustomerInput{
		Username: "jane.doe",
		Active:   true,
		Profile:  domain.Profile{FullName: "Jane Doe", Email: "jane@example.com", City: "Bilbao"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Bilbao", customer.City)
	f.assertExpectations(t)
	pipeline.AssertExpectations(t)
}

func TestCustomerUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DeletesUserRow", func(t *testing.T) {
		f := newCustomerFixture()
		existing := storedCustomer()
		f.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		f.customerRepo.On("GetByID", ctx, existing.ID).Return(existing, nil).Once()
		f.userRepo.On("Delete", ctx, existing.ID).Return(nil).Once()

		require.NoError(t, f.useCase(&credentialMocks.MockPipeline{}).Delete(ctx, existing.ID))
		f.assertExpectations(t)
	})

	t.Run("Error_NotACustomer", func(t *testing.T) {
		f := newCustomerFixture()
		id := uuid.Must(uuid.NewV7())
		f.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		f.customerRepo.On("GetByID", ctx, id).Return(nil, domain.ErrCustomerNotFound).Once()

		err := f.useCase(&credentialMocks.MockPipeline{}).Delete(ctx, id)

		assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
		f.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCustomerUseCase_UpdateBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newCustomerFixture()
		id := uuid.Must(uuid.NewV7())
		f.customerRepo.On("UpdateBalance", ctx, id, 42.5).Return(nil).Once()

		require.NoError(t, f.useCase(&credentialMocks.MockPipeline{}).UpdateBalance(ctx, id, 42.5))
		f.assertExpectations(t)
	})

	t.Run("Error_Negative", func(t *testing.T) {
		f := newCustomerFixture()

		err := f.useCase(&credentialMocks.MockPipeline{}).UpdateBalance(ctx, uuid.Must(uuid.NewV7()), -1)

		assert.ErrorIs(t, err, domain.ErrInvalidBalance)
		f.assertExpectations(t)
	})
}

func TestCustomerUseCase_GetByEmail(t *testing.T) {
	ctx := context.Background()
	f := newCustomerFixture()
	pipeline := &credentialMocks.MockPipeline{}
	existing := storedCustomer()
	f.customerRepo.On("GetByEmail", ctx, existing.Email).Return(existing, nil).Once()
	pipeline.On("Seal", testHash).Return("c2VhbGVk", nil).Once()

	customer, err := f.useCase(pipeline).GetByEmail(ctx, existing.Email)

	require.NoError(t, err)
	assert.Equal(t, "c2VhbGVk", customer.Password)
	f.assertExpectations(t)
}

func TestCustomerUseCase_ResetPassword(t *testing.T) {
	ctx := context.Background()
	pool := regexp.MustCompile(`^[A-Za-z0-9]{16}$`)

	t.Run("Success_PlaintextReachesNotifierOnly", func(t *testing.T) {
		f := newCustomerFixture()
		pipeline := newRealPipeline(t)
		existing := storedCustomer()

		var (
			persisted string
			delivered []notificationDomain.Email
		)

		f.customerRepo.On("GetByEmail", ctx, existing.Email).Return(existing, nil).Once()
		f.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		f.userRepo.On("Update", ctx, mock.Anything).Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*userDomain.User).Password
		}).Return(nil).Once()
		f.outboxRepo.On("Create", ctx, mock.MatchedBy(func(e *outboxDomain.OutboxEvent) bool {
			return e.EventType == outboxDomain.EventTypeCustomerPasswordReset
		})).Return(nil).Once()
		f.notifier.On("Send", ctx, mock.Anything).Run(func(args mock.Arguments) {
			delivered = append(delivered, args.Get(1).(notificationDomain.Email))
		}).Return(nil).Once()

		err := f.useCase(pipeline).ResetPassword(ctx, existing.Email)
		require.NoError(t, err)
		f.assertExpectations(t)

		require.Len(t, delivered, 1)
		email := delivered[0]
		assert.Equal(t, existing.Email, email.To)
		assert.Equal(t, "Password Recovery", email.Subject)

		const marker = "Your new password is: "
		idx := strings.Index(email.Text, marker)
		require.GreaterOrEqual(t, idx, 0)
		plaintext := strings.TrimSpace(email.Text[idx+len(marker):])
		assert.Regexp(t, pool, plaintext)

		// Only the hash of the delivered password is persisted.
		assert.NotEqual(t, plaintext, persisted)
		assert.NotEqual(t, testHash, persisted)
		ok, err := pipeline.Verify(plaintext, persisted)
		require.NoError(t, err)
		assert.True(t, ok)

		// The outbox payload does not carry the password.
		event := f.outboxRepo.Calls[0].Arguments.Get(1).(*outboxDomain.OutboxEvent)
		assert.NotContains(t, event.Payload, plaintext)
		assert.NotContains(t, event.Payload, persisted)
	})

	t.Run("Success_UnknownEmailIsSilent", func(t *testing.T) {
		f := newCustomerFixture()
		f.customerRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrCustomerNotFound).Once()

		err := f.useCase(&credentialMocks.MockPipeline{}).ResetPassword(ctx, "ghost@example.com")

		require.NoError(t, err)
		f.assertExpectations(t)
	})

	t.Run("Error_DeliveryFailureRollsBack", func(t *testing.T) {
		f := newCustomerFixture()
		pipeline := &credentialMocks.MockPipeline{}
		existing := storedCustomer()
		deliveryErr := notificationDomain.ErrDeliveryFailed

		f.customerRepo.On("GetByEmail", ctx, existing.Email).Return(existing, nil).Once()
		pipeline.On("GeneratePassword").Return("AbCdEfGh12345678", nil).Once()
		pipeline.On("HashForStorage", "AbCdEfGh12345678").Return("NEWHASH", nil).Once()
		f.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		f.userRepo.On("Update", ctx, mock.Anything).Return(nil).Once()
		f.outboxRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		f.notifier.On("Send", ctx, mock.Anything).Return(deliveryErr).Once()

		err := f.useCase(pipeline).ResetPassword(ctx, existing.Email)

		assert.ErrorIs(t, err, deliveryErr)
		f.assertExpectations(t)
	})

	t.Run("Error_LookupFailure", func(t *testing.T) {
		f := newCustomerFixture()
		dbErr := errors.New("connection reset")
		f.customerRepo.On("GetByEmail", ctx, "jane@example.com").Return(nil, dbErr).Once()

		err := f.useCase(&credentialMocks.MockPipeline{}).ResetPassword(ctx, "jane@example.com")

		assert.ErrorIs(t, err, dbErr)
	})
}
