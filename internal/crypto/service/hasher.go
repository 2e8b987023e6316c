package service

import (
	"crypto/md5" //nolint:gosec // legacy stored credential format
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/allisson/go-pwdhash"

	cryptoDomain "github.com/ourshop/shop/internal/crypto/domain"
)

// NewHasher returns the Hasher for alg.
func NewHasher(alg cryptoDomain.HashAlgorithm) (Hasher, error) {
	switch alg {
	case cryptoDomain.MD5, "":
		return &md5Hasher{}, nil
	case cryptoDomain.Argon2id:
		hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
		if err != nil {
			return nil, fmt.Errorf("failed to create argon2id hasher: %w", err)
		}
		return &argon2idHasher{hasher: hasher}, nil
	default:
		return nil, cryptoDomain.ErrUnsupportedHashAlgorithm
	}
}

// md5Hasher renders the MD5 digest of the UTF-8 message as uppercase hex.
type md5Hasher struct{}

func (h *md5Hasher) Algorithm() cryptoDomain.HashAlgorithm {
	return cryptoDomain.MD5
}

func (h *md5Hasher) Hash(message string) (string, error) {
	sum := md5.Sum([]byte(message)) //nolint:gosec // legacy stored credential format
	return strings.ToUpper(hex.EncodeToString(sum[:])), nil
}

func (h *md5Hasher) Verify(message, stored string) (bool, error) {
	computed, err := h.Hash(message)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(strings.ToUpper(stored))) == 1, nil
}

// argon2idHasher produces salted PHC strings.
type argon2idHasher struct {
	hasher *pwdhash.PasswordHasher
}

func (h *argon2idHasher) Algorithm() cryptoDomain.HashAlgorithm {
	return cryptoDomain.Argon2id
}

func (h *argon2idHasher) Hash(message string) (string, error) {
	return h.hasher.Hash([]byte(message))
}

func (h *argon2idHasher) Verify(message, stored string) (bool, error) {
	return h.hasher.Verify([]byte(message), stored)
}
