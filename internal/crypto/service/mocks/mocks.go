// Package mocks provides testify mocks for the crypto service interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/ourshop/shop/internal/crypto/domain"
)

// MockKMSService is a mock implementation of service.KMSService.
type MockKMSService struct {
	mock.Mock
}

// OpenKeeper mocks the OpenKeeper method.
func (m *MockKMSService) OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	args := m.Called(ctx, keyURI)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(cryptoDomain.KMSKeeper), args.Error(1)
}

// MockKMSKeeper is a mock implementation of domain.KMSKeeper.
type MockKMSKeeper struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method.
func (m *MockKMSKeeper) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	args := m.Called(ctx, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Decrypt mocks the Decrypt method.
func (m *MockKMSKeeper) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Close mocks the Close method.
func (m *MockKMSKeeper) Close() error {
	return m.Called().Error(0)
}

// MockCredentialCipher is a mock implementation of service.CredentialCipher.
type MockCredentialCipher struct {
	mock.Mock
}

// Init mocks the Init method.
func (m *MockCredentialCipher) Init(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// Ready mocks the Ready method.
func (m *MockCredentialCipher) Ready() bool {
	return m.Called().Bool(0)
}

// Encrypt mocks the Encrypt method.
func (m *MockCredentialCipher) Encrypt(plainBase64 string) ([]byte, error) {
	args := m.Called(plainBase64)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Decrypt mocks the Decrypt method.
func (m *MockCredentialCipher) Decrypt(cipherBase64 string) ([]byte, error) {
	args := m.Called(cipherBase64)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Hash mocks the Hash method.
func (m *MockCredentialCipher) Hash(message string) (string, error) {
	args := m.Called(message)
	return args.String(0), args.Error(1)
}

// VerifyHash mocks the VerifyHash method.
func (m *MockCredentialCipher) VerifyHash(message, stored string) (bool, error) {
	args := m.Called(message, stored)
	return args.Bool(0), args.Error(1)
}

// WrapSymmetricKeyForDistribution mocks the WrapSymmetricKeyForDistribution method.
func (m *MockCredentialCipher) WrapSymmetricKeyForDistribution() ([]byte, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// UnwrapSymmetricKey mocks the UnwrapSymmetricKey method.
func (m *MockCredentialCipher) UnwrapSymmetricKey(envelopeBase64 string) ([]byte, error) {
	args := m.Called(envelopeBase64)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// WrapSymmetricKeyFor mocks the WrapSymmetricKeyFor method.
func (m *MockCredentialCipher) WrapSymmetricKeyFor(clientPublicDER []byte) ([]byte, error) {
	args := m.Called(clientPublicDER)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// PublicKeyDER mocks the PublicKeyDER method.
func (m *MockCredentialCipher) PublicKeyDER() ([]byte, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Fingerprint mocks the Fingerprint method.
func (m *MockCredentialCipher) Fingerprint() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
