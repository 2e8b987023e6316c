package service

import (
	"bytes"
	"context"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/ourshop/shop/internal/crypto/domain"
)

var testSessionKey = bytes.Repeat([]byte{0x6B}, cryptoDomain.SymmetricKeySize)

func newTestCipher(t *testing.T) (CredentialCipher, string) {
	t.Helper()

	root := t.TempDir()
	keyFile := filepath.Join(root, "session.key")
	require.NoError(t, os.WriteFile(keyFile, testSessionKey, 0o600))

	hasher, err := NewHasher(cryptoDomain.MD5)
	require.NoError(t, err)

	keystore := filepath.Join(root, "keys")
	cipher := NewCredentialCipher(
		NewKeyPairStore(keystore, discardLogger()),
		NewSymmetricKeyProvider(SymmetricKeyConfig{KeyFile: keyFile}, nil, discardLogger()),
		hasher,
		discardLogger(),
	)
	require.NoError(t, cipher.Init(context.Background()))
	return cipher, keystore
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

type failingKeyProvider struct{ err error }

func (p failingKeyProvider) GetOrCreateKey(context.Context) (*cryptoDomain.SymmetricKey, error) {
	return nil, p.err
}

func TestCredentialCipher_NotReady(t *testing.T) {
	hasher, err := NewHasher(cryptoDomain.MD5)
	require.NoError(t, err)

	cipher := NewCredentialCipher(
		NewKeyPairStore(filepath.Join(t.TempDir(), "keys"), discardLogger()),
		NewSymmetricKeyProvider(SymmetricKeyConfig{}, nil, discardLogger()),
		hasher,
		discardLogger(),
	)
	assert.False(t, cipher.Ready())

	_, err = cipher.Encrypt(b64("x"))
	assert.ErrorIs(t, err, cryptoDomain.ErrCipherNotReady)
	_, err = cipher.Decrypt(b64("x"))
	assert.ErrorIs(t, err, cryptoDomain.ErrCipherNotReady)
	_, err = cipher.Hash("x")
	assert.ErrorIs(t, err, cryptoDomain.ErrCipherNotReady)
	_, err = cipher.VerifyHash("x", "y")
	assert.ErrorIs(t, err, cryptoDomain.ErrCipherNotReady)
	_, err = cipher.WrapSymmetricKeyForDistribution()
	assert.ErrorIs(t, err, cryptoDomain.ErrCipherNotReady)
	_, err = cipher.UnwrapSymmetricKey("")
	assert.ErrorIs(t, err, cryptoDomain.ErrCipherNotReady)
	_, err = cipher.WrapSymmetricKeyFor(nil)
	assert.ErrorIs(t, err, cryptoDomain.ErrCipherNotReady)
	_, err = cipher.PublicKeyDER()
	assert.ErrorIs(t, err, cryptoDomain.ErrCipherNotReady)
	_, err = cipher.Fingerprint()
	assert.ErrorIs(t, err, cryptoDomain.ErrCipherNotReady)

	t.Run("nil cipher", func(t *testing.T) {
		var nilCipher *credentialCipher
		assert.False(t, nilCipher.Ready())
		assert.ErrorIs(t, nilCipher.Init(context.Background()), cryptoDomain.ErrCipherNotReady)
		_, err := nilCipher.Encrypt(b64("x"))
		assert.ErrorIs(t, err, cryptoDomain.ErrCipherNotReady)
	})
}

func TestCredentialCipher_InitFailure(t *testing.T) {
	hasher, err := NewHasher(cryptoDomain.MD5)
	require.NoError(t, err)

	setupErr := errors.New("boom")
	cipher := NewCredentialCipher(
		NewKeyPairStore(filepath.Join(t.TempDir(), "keys"), discardLogger()),
		failingKeyProvider{err: setupErr},
		hasher,
		discardLogger(),
	)

	err = cipher.Init(context.Background())
	assert.ErrorIs(t, err, setupErr)
	assert.False(t, cipher.Ready())

	// The first result is sticky.
	assert.Equal(t, err, cipher.Init(context.Background()))

	_, err = cipher.Hash("x")
	assert.ErrorIs(t, err, cryptoDomain.ErrCipherNotReady)
}

func TestCredentialCipher_InitMissingDependencies(t *testing.T) {
	cipher := NewCredentialCipher(nil, nil, nil, discardLogger())
	assert.ErrorIs(t, cipher.Init(context.Background()), cryptoDomain.ErrKeySetup)
}

func TestCredentialCipher_EncryptDecrypt(t *testing.T) {
	cipher, _ := newTestCipher(t)
	require.True(t, cipher.Ready())

	t.Run("round trip", func(t *testing.T) {
		for _, value := range []string{"", "a", "Sw0rdfish!", "sixteen chars!!!", "ünïcödé pässwörd"} {
			ciphertext, err := cipher.Encrypt(b64(value))
			require.NoError(t, err)

			plain, err := cipher.Decrypt(base64.StdEncoding.EncodeToString(ciphertext))
			require.NoError(t, err)
			assert.Equal(t, value, string(plain))
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first, err := cipher.Encrypt(b64("Sw0rdfish!"))
		require.NoError(t, err)
		second, err := cipher.Encrypt(b64("Sw0rdfish!"))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("bad base64 input", func(t *testing.T) {
		_, err := cipher.Encrypt("not base64!")
		assert.ErrorIs(t, err, cryptoDomain.ErrEncryptionFailed)

		_, err = cipher.Decrypt("not base64!")
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		ciphertext, err := cipher.Encrypt(b64("Sw0rdfish!"))
		require.NoError(t, err)

		ciphertext[len(ciphertext)-1] ^= 0xFF
		_, err = cipher.Decrypt(base64.StdEncoding.EncodeToString(ciphertext))
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("truncated ciphertext", func(t *testing.T) {
		ciphertext, err := cipher.Encrypt(b64("Sw0rdfish!"))
		require.NoError(t, err)

		_, err = cipher.Decrypt(base64.StdEncoding.EncodeToString(ciphertext[:10]))
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("concurrent use", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ciphertext, err := cipher.Encrypt(b64("Sw0rdfish!"))
				if !assert.NoError(t, err) {
					return
				}
				plain, err := cipher.Decrypt(base64.StdEncoding.EncodeToString(ciphertext))
				assert.NoError(t, err)
				assert.Equal(t, "Sw0rdfish!", string(plain))
			}()
		}
		wg.Wait()
	})
}

func TestCredentialCipher_Hash(t *testing.T) {
	cipher, _ := newTestCipher(t)

	hashed, err := cipher.Hash("password")
	require.NoError(t, err)
	assert.Equal(t, "5F4DCC3B5AA765D61D8327DEB882CF99", hashed)

	ok, err := cipher.VerifyHash("password", hashed)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cipher.VerifyHash("Password", hashed)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCredentialCipher_KeyExchange(t *testing.T) {
	cipher, keystore := newTestCipher(t)

	t.Run("legacy envelope recovers the session key", func(t *testing.T) {
		envelope, err := cipher.WrapSymmetricKeyForDistribution()
		require.NoError(t, err)
		assert.Len(t, envelope, cryptoDomain.EnvelopeSize)

		recovered, err := cipher.UnwrapSymmetricKey(base64.StdEncoding.EncodeToString(envelope))
		require.NoError(t, err)
		assert.Equal(t, testSessionKey, recovered)
	})

	t.Run("unwrap rejects bad base64", func(t *testing.T) {
		_, err := cipher.UnwrapSymmetricKey("***")
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("client wrap", func(t *testing.T) {
		client := generateRSAKey(t, cryptoDomain.RSAKeyBits)
		der, err := x509.MarshalPKIXPublicKey(&client.PublicKey)
		require.NoError(t, err)

		envelope, err := cipher.WrapSymmetricKeyFor(der)
		require.NoError(t, err)

		recovered, err := rsa.DecryptOAEP(sha256.New(), nil, client, envelope, nil)
		require.NoError(t, err)
		assert.Equal(t, testSessionKey, recovered)
	})

	t.Run("public key matches keystore file", func(t *testing.T) {
		der, err := cipher.PublicKeyDER()
		require.NoError(t, err)

		onDisk, err := os.ReadFile(filepath.Join(keystore, cryptoDomain.PublicKeyFileName))
		require.NoError(t, err)
		assert.Equal(t, onDisk, der)

		der[0] ^= 0xFF
		again, err := cipher.PublicKeyDER()
		require.NoError(t, err)
		assert.Equal(t, onDisk, again, "callers receive a copy")
	})

	t.Run("fingerprint", func(t *testing.T) {
		fingerprint, err := cipher.Fingerprint()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(fingerprint, "SHA256:"))
	})
}
