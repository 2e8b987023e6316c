package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/crypto/ssh"

	cryptoDomain "github.com/ourshop/shop/internal/crypto/domain"
)

// credentialCipher moves from uninitialized to ready exactly once. Key material is
// written before ready is set and never changes afterwards, so ready methods need no
// locking.
type credentialCipher struct {
	store  KeyPairStore
	keys   SymmetricKeyProvider
	hasher Hasher
	logger *slog.Logger

	initOnce sync.Once
	initErr  error
	ready    atomic.Bool

	keyPair    *cryptoDomain.KeyPair
	sessionKey []byte
	publicDER  []byte
}

// NewCredentialCipher returns an uninitialized cipher. Call Init before use.
func NewCredentialCipher(
	store KeyPairStore,
	keys SymmetricKeyProvider,
	hasher Hasher,
	logger *slog.Logger,
) CredentialCipher {
	return &credentialCipher{
		store:  store,
		keys:   keys,
		hasher: hasher,
		logger: logger,
	}
}

func (c *credentialCipher) Init(ctx context.Context) error {
	if c == nil {
		return cryptoDomain.ErrCipherNotReady
	}

	c.initOnce.Do(func() {
		c.initErr = c.init(ctx)
		if c.initErr != nil {
			if c.logger != nil {
				c.logger.Error("credential cipher setup failed", slog.Any("error", c.initErr))
			}
			return
		}
		c.ready.Store(true)
		if c.logger != nil {
			c.logger.Info("credential cipher ready",
				slog.String("keystore", c.store.Dir()),
				slog.String("hash_algorithm", string(c.hasher.Algorithm())),
			)
		}
	})
	return c.initErr
}

func (c *credentialCipher) init(ctx context.Context) error {
	if c.store == nil || c.keys == nil || c.hasher == nil {
		return fmt.Errorf("%w: cipher dependencies missing", cryptoDomain.ErrKeySetup)
	}

	if err := c.store.EnsureKeyPair(ctx); err != nil {
		return err
	}

	keyPair, err := c.store.LoadKeyPair()
	if err != nil {
		return err
	}

	publicDER, err := c.store.PublicKeyDER()
	if err != nil {
		return err
	}

	sessionKey, err := c.keys.GetOrCreateKey(ctx)
	if err != nil {
		return err
	}
	if len(sessionKey.Key) != cryptoDomain.SymmetricKeySize {
		return fmt.Errorf("%w: %w", cryptoDomain.ErrKeySetup, cryptoDomain.ErrInvalidKeySize)
	}

	c.keyPair = keyPair
	c.publicDER = publicDER
	c.sessionKey = append([]byte(nil), sessionKey.Key...)
	return nil
}

func (c *credentialCipher) Ready() bool {
	return c != nil && c.ready.Load()
}

func (c *credentialCipher) checkReady() error {
	if !c.Ready() {
		return cryptoDomain.ErrCipherNotReady
	}
	return nil
}

func (c *credentialCipher) Encrypt(plainBase64 string) ([]byte, error) {
	if err := c.checkReady(); err != nil {
		return nil, err
	}

	plain, err := base64.StdEncoding.DecodeString(plainBase64)
	if err != nil {
		return nil, cryptoDomain.ErrEncryptionFailed
	}
	return encryptECB(c.sessionKey, plain)
}

func (c *credentialCipher) Decrypt(cipherBase64 string) ([]byte, error) {
	if err := c.checkReady(); err != nil {
		return nil, err
	}

	ciphertext, err := base64.StdEncoding.DecodeString(cipherBase64)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return decryptECB(c.sessionKey, ciphertext)
}

func (c *credentialCipher) Hash(message string) (string, error) {
	if err := c.checkReady(); err != nil {
		return "", err
	}

	hashed, err := c.hasher.Hash(message)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrHashFailed, err)
	}
	return hashed, nil
}

func (c *credentialCipher) VerifyHash(message, stored string) (bool, error) {
	if err := c.checkReady(); err != nil {
		return false, err
	}

	ok, err := c.hasher.Verify(message, stored)
	if err != nil {
		return false, fmt.Errorf("%w: %v", cryptoDomain.ErrHashFailed, err)
	}
	return ok, nil
}

func (c *credentialCipher) WrapSymmetricKeyForDistribution() ([]byte, error) {
	if err := c.checkReady(); err != nil {
		return nil, err
	}
	return wrapWithPrivateKey(c.keyPair.Private, c.sessionKey)
}

func (c *credentialCipher) UnwrapSymmetricKey(envelopeBase64 string) ([]byte, error) {
	if err := c.checkReady(); err != nil {
		return nil, err
	}

	envelope, err := base64.StdEncoding.DecodeString(envelopeBase64)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return unwrapWithPublicKey(c.keyPair.Public, envelope)
}

func (c *credentialCipher) WrapSymmetricKeyFor(clientPublicDER []byte) ([]byte, error) {
	if err := c.checkReady(); err != nil {
		return nil, err
	}
	return wrapForClient(clientPublicDER, c.sessionKey)
}

func (c *credentialCipher) PublicKeyDER() ([]byte, error) {
	if err := c.checkReady(); err != nil {
		return nil, err
	}
	return append([]byte(nil), c.publicDER...), nil
}

func (c *credentialCipher) Fingerprint() (string, error) {
	if err := c.checkReady(); err != nil {
		return "", err
	}

	sshKey, err := ssh.NewPublicKey(c.keyPair.Public)
	if err != nil {
		return "", fmt.Errorf("failed to convert public key: %w", err)
	}
	return ssh.FingerprintSHA256(sshKey), nil
}
