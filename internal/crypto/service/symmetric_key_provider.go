package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	cryptoDomain "github.com/ourshop/shop/internal/crypto/domain"
)

// SymmetricKeyConfig lists the optional pre-provisioned session key sources.
type SymmetricKeyConfig struct {
	// KeyFile holds 16 raw bytes or their base64 text.
	KeyFile string
	// KeyCiphertext is a base64 KMS ciphertext of the 16 key bytes.
	KeyCiphertext string
	// KMSKeyURI opens the keeper that unwraps KeyCiphertext.
	KMSKeyURI string
}

type symmetricKeyProvider struct {
	config     SymmetricKeyConfig
	kmsService KMSService
	logger     *slog.Logger

	once sync.Once
	key  *cryptoDomain.SymmetricKey
	err  error
}

// NewSymmetricKeyProvider creates a provider that resolves the session key from, in
// order, the key file, the KMS ciphertext, or crypto/rand. kmsService may be nil when
// no ciphertext is configured.
func NewSymmetricKeyProvider(
	config SymmetricKeyConfig,
	kmsService KMSService,
	logger *slog.Logger,
) SymmetricKeyProvider {
	return &symmetricKeyProvider{
		config:     config,
		kmsService: kmsService,
		logger:     logger,
	}
}

func (p *symmetricKeyProvider) GetOrCreateKey(ctx context.Context) (*cryptoDomain.SymmetricKey, error) {
	p.once.Do(func() {
		p.key, p.err = p.resolve(ctx)
		if p.err == nil && p.logger != nil {
			p.logger.Info("session key ready", slog.String("source", string(p.key.Source)))
		}
	})
	return p.key, p.err
}

func (p *symmetricKeyProvider) resolve(ctx context.Context) (*cryptoDomain.SymmetricKey, error) {
	if p.config.KeyFile != "" {
		key, err := p.fromFile()
		if err == nil {
			return key, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if p.logger != nil {
			p.logger.Warn("session key file not found, falling back",
				slog.String("path", p.config.KeyFile))
		}
	}

	if p.config.KeyCiphertext != "" {
		return p.fromKMS(ctx)
	}

	key := make([]byte, cryptoDomain.SymmetricKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("%w: failed to generate session key: %w", cryptoDomain.ErrKeySetup, err)
	}
	return &cryptoDomain.SymmetricKey{Key: key, Source: cryptoDomain.KeySourceGenerated}, nil
}

// fromFile returns an error matching fs.ErrNotExist when the file is absent so the
// caller can fall through to the next source.
func (p *symmetricKeyProvider) fromFile() (*cryptoDomain.SymmetricKey, error) {
	data, err := os.ReadFile(p.config.KeyFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to read session key file: %w", cryptoDomain.ErrKeySetup, err)
	}

	key, err := decodeKeyMaterial(data)
	if err != nil {
		return nil, err
	}
	return &cryptoDomain.SymmetricKey{Key: key, Source: cryptoDomain.KeySourceFile}, nil
}

func (p *symmetricKeyProvider) fromKMS(ctx context.Context) (*cryptoDomain.SymmetricKey, error) {
	if p.kmsService == nil || p.config.KMSKeyURI == "" {
		return nil, fmt.Errorf("%w: KMS_KEY_URI is required with SYMMETRIC_KEY_CIPHERTEXT", cryptoDomain.ErrKeySetup)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(p.config.KeyCiphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: session key ciphertext is not base64", cryptoDomain.ErrKeySetup)
	}

	keeper, err := p.kmsService.OpenKeeper(ctx, p.config.KMSKeyURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoDomain.ErrKeySetup, err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil && p.logger != nil {
			p.logger.Warn("failed to close kms keeper", slog.Any("error", closeErr))
		}
	}()

	key, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decrypt session key: %w", cryptoDomain.ErrKeySetup, err)
	}
	if len(key) != cryptoDomain.SymmetricKeySize {
		cryptoDomain.Zero(key)
		return nil, fmt.Errorf("%w: %w", cryptoDomain.ErrKeySetup, cryptoDomain.ErrInvalidKeySize)
	}
	return &cryptoDomain.SymmetricKey{Key: key, Source: cryptoDomain.KeySourceKMS}, nil
}

// decodeKeyMaterial accepts exactly 16 raw bytes or base64 text decoding to 16 bytes.
func decodeKeyMaterial(data []byte) ([]byte, error) {
	if len(data) == cryptoDomain.SymmetricKeySize {
		return append([]byte(nil), data...), nil
	}

	decoded, err := base64.StdEncoding.DecodeString(string(bytes.TrimSpace(data)))
	if err != nil || len(decoded) != cryptoDomain.SymmetricKeySize {
		return nil, fmt.Errorf("%w: %w", cryptoDomain.ErrKeySetup, cryptoDomain.ErrInvalidKeySize)
	}
	return decoded, nil
}
