package service

import (
	"encoding/base64"
	"log/slog"

	credentialDomain "github.com/ourshop/shop/internal/credential/domain"
	cryptoDomain "github.com/ourshop/shop/internal/crypto/domain"
	cryptoService "github.com/ourshop/shop/internal/crypto/service"
	apperrors "github.com/ourshop/shop/internal/errors"
)

type pipeline struct {
	cipher    cryptoService.CredentialCipher
	generator PasswordGenerator
	logger    *slog.Logger
}

// NewPipeline creates a Pipeline over an initialized cipher.
func NewPipeline(
	cipher cryptoService.CredentialCipher,
	generator PasswordGenerator,
	logger *slog.Logger,
) Pipeline {
	return &pipeline{
		cipher:    cipher,
		generator: generator,
		logger:    logger,
	}
}

func (p *pipeline) HashForStorage(plain string) (string, error) {
	if plain == "" {
		return "", credentialDomain.ErrPasswordRequired
	}

	hashed, err := p.cipher.Hash(plain)
	if err != nil {
		return "", p.internal(err, "failed to hash password")
	}
	return hashed, nil
}

func (p *pipeline) OpenPassword(input credentialDomain.PasswordInput) (string, error) {
	if input.Sealed == "" {
		if input.Plain == "" {
			return "", credentialDomain.ErrPasswordRequired
		}
		return input.Plain, nil
	}

	plain, err := p.cipher.Decrypt(input.Sealed)
	if err != nil {
		if apperrors.Is(err, cryptoDomain.ErrCipherNotReady) {
			return "", err
		}
		p.logFailure(err, "failed to open sealed password")
		return "", credentialDomain.ErrInvalidSealedPassword
	}
	if len(plain) == 0 {
		return "", credentialDomain.ErrPasswordRequired
	}
	return string(plain), nil
}

func (p *pipeline) Verify(plain, stored string) (bool, error) {
	if plain == "" || stored == "" {
		return false, nil
	}

	ok, err := p.cipher.VerifyHash(plain, stored)
	if err != nil {
		return false, p.internal(err, "failed to verify password")
	}
	return ok, nil
}

func (p *pipeline) Seal(value string) (string, error) {
	ciphertext, err := p.cipher.Encrypt(base64.StdEncoding.EncodeToString([]byte(value)))
	if err != nil {
		return "", p.internal(err, "failed to seal value")
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (p *pipeline) GeneratePassword() (string, error) {
	password, err := p.generator.Generate(credentialDomain.ResetPasswordLength)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to generate password")
	}
	return password, nil
}

// internal keeps ErrCipherNotReady matchable and logs everything else before wrapping.
func (p *pipeline) internal(err error, message string) error {
	if apperrors.Is(err, cryptoDomain.ErrCipherNotReady) {
		return err
	}
	p.logFailure(err, message)
	return apperrors.Wrap(err, message)
}

func (p *pipeline) logFailure(err error, message string) {
	if p.logger != nil {
		p.logger.Warn(message, slog.Any("error", err))
	}
}
