package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	credentialDomain "github.com/ourshop/shop/internal/credential/domain"
	cryptoDomain "github.com/ourshop/shop/internal/crypto/domain"
	cryptoService "github.com/ourshop/shop/internal/crypto/service"
	cryptoMocks "github.com/ourshop/shop/internal/crypto/service/mocks"
	apperrors "github.com/ourshop/shop/internal/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRealPipeline wires the pipeline to a real cipher backed by a temporary keystore.
func newRealPipeline(t *testing.T) (Pipeline, cryptoService.CredentialCipher) {
	t.Helper()

	root := t.TempDir()
	keyFile := filepath.Join(root, "session.key")
	require.NoError(t, os.WriteFile(keyFile, bytes.Repeat([]byte{0x2F}, cryptoDomain.SymmetricKeySize), 0o600))

	hasher, err := cryptoService.NewHasher(cryptoDomain.MD5)
	require.NoError(t, err)

	cipher := cryptoService.NewCredentialCipher(
		cryptoService.NewKeyPairStore(filepath.Join(root, "keys"), discardLogger()),
		cryptoService.NewSymmetricKeyProvider(cryptoService.SymmetricKeyConfig{KeyFile: keyFile}, nil, discardLogger()),
		hasher,
		discardLogger(),
	)
	require.NoError(t, cipher.Init(context.Background()))

	return NewPipeline(cipher, NewPasswordGenerator(), discardLogger()), cipher
}

func TestPipeline_CreateAndSignIn(t *testing.T) {
	p, cipher := newRealPipeline(t)

	// A client seals the password with the session key before sending it.
	ciphertext, err := cipher.Encrypt(base64.StdEncoding.EncodeToString([]byte("Sw0rdfish!")))
	require.NoError(t, err)
	sealed := base64.StdEncoding.EncodeToString(ciphertext)

	plain, err := p.OpenPassword(credentialDomain.PasswordInput{Sealed: sealed, Plain: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "Sw0rdfish!", plain)

	stored, err := p.HashForStorage(plain)
	require.NoError(t, err)
	assert.Len(t, stored, 32)
	assert.NotContains(t, stored, "Sw0rdfish!")

	ok, err := p.Verify("Sw0rdfish!", stored)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Verify("swordfish", stored)
	require.NoError(t, err)
	assert.False(t, ok)

	t.Run("sealed outbound value opens with the session key", func(t *testing.T) {
		out, err := p.Seal(stored)
		require.NoError(t, err)

		raw, err := base64.StdEncoding.DecodeString(out)
		require.NoError(t, err)
		assert.Zero(t, len(raw)%16)

		// Decrypt undoes both the outer encoding and the inner one Encrypt consumed.
		opened, err := cipher.Decrypt(out)
		require.NoError(t, err)
		assert.Equal(t, stored, string(opened))
	})
}

func TestPipeline_OpenPassword(t *testing.T) {
	p, _ := newRealPipeline(t)

	t.Run("plain", func(t *testing.T) {
		plain, err := p.OpenPassword(credentialDomain.PasswordInput{Plain: "Sw0rdfish!"})
		require.NoError(t, err)
		assert.Equal(t, "Sw0rdfish!", plain)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := p.OpenPassword(credentialDomain.PasswordInput{})
		assert.ErrorIs(t, err, credentialDomain.ErrPasswordRequired)
	})

	t.Run("truncated sealed value is invalid input", func(t *testing.T) {
		_, err := p.OpenPassword(credentialDomain.PasswordInput{Sealed: base64.StdEncoding.EncodeToString([]byte("0123456789"))})
		assert.ErrorIs(t, err, credentialDomain.ErrInvalidSealedPassword)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("non base64 sealed value is invalid input", func(t *testing.T) {
		_, err := p.OpenPassword(credentialDomain.PasswordInput{Sealed: "***"})
		assert.ErrorIs(t, err, credentialDomain.ErrInvalidSealedPassword)
	})
}

func TestPipeline_GeneratePassword(t *testing.T) {
	p, _ := newRealPipeline(t)

	password, err := p.GeneratePassword()
	require.NoError(t, err)
	assert.Len(t, password, credentialDomain.ResetPasswordLength)
	assert.NoError(t, NewPasswordGenerator().Validate(password))
}

func TestPipeline_CipherErrors(t *testing.T) {
	t.Run("not ready is passed through", func(t *testing.T) {
		cipher := &cryptoMocks.MockCredentialCipher{}
		cipher.On("Hash", "x").Return("", cryptoDomain.ErrCipherNotReady)
		cipher.On("Decrypt", "c2VhbGVk").Return(nil, cryptoDomain.ErrCipherNotReady)
		cipher.On("Encrypt", mock.Anything).Return(nil, cryptoDomain.ErrCipherNotReady)
		cipher.On("VerifyHash", "x", "y").Return(false, cryptoDomain.ErrCipherNotReady)

		p := NewPipeline(cipher, NewPasswordGenerator(), discardLogger())

		_, err := p.HashForStorage("x")
		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
		_, err = p.OpenPassword(credentialDomain.PasswordInput{Sealed: "c2VhbGVk"})
		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
		_, err = p.Seal("x")
		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
		_, err = p.Verify("x", "y")
		assert.ErrorIs(t, err, apperrors.ErrUnavailable)

		cipher.AssertExpectations(t)
	})

	t.Run("hash failure is internal", func(t *testing.T) {
		cipher := &cryptoMocks.MockCredentialCipher{}
		cipher.On("Hash", "x").Return("", cryptoDomain.ErrHashFailed)

		p := NewPipeline(cipher, NewPasswordGenerator(), discardLogger())

		_, err := p.HashForStorage("x")
		assert.ErrorIs(t, err, cryptoDomain.ErrHashFailed)
		assert.False(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("empty inputs never reach the cipher", func(t *testing.T) {
		cipher := &cryptoMocks.MockCredentialCipher{}
		p := NewPipeline(cipher, NewPasswordGenerator(), discardLogger())

		_, err := p.HashForStorage("")
		assert.ErrorIs(t, err, credentialDomain.ErrPasswordRequired)

		ok, err := p.Verify("", "stored")
		require.NoError(t, err)
		assert.False(t, ok)

		cipher.AssertNotCalled(t, "Hash", mock.Anything)
		cipher.AssertNotCalled(t, "VerifyHash", mock.Anything, mock.Anything)
	})

	t.Run("generator failure", func(t *testing.T) {
		gen := &failingGenerator{err: errors.New("entropy exhausted")}
		p := NewPipeline(&cryptoMocks.MockCredentialCipher{}, gen, discardLogger())

		_, err := p.GeneratePassword()
		assert.ErrorContains(t, err, "entropy exhausted")
	})
}

type failingGenerator struct{ err error }

func (g *failingGenerator) Generate(int) (string, error) { return "", g.err }
func (g *failingGenerator) Validate(string) error        { return nil }
