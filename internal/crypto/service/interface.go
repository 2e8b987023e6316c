// Package service implements the credential cipher: RSA-2048 key pair lifecycle, the
// AES-128 session key, password hashing and the hybrid key exchange envelope.
package service

import (
	"context"

	cryptoDomain "github.com/ourshop/shop/internal/crypto/domain"
)

// KeyPairStore persists the RSA key pair as DER files in a single directory.
type KeyPairStore interface {
	// EnsureKeyPair creates the key directory and both key files when the directory
	// does not exist yet. An existing directory is never touched.
	EnsureKeyPair(ctx context.Context) error

	// LoadKeyPair parses both key files and checks that they belong together.
	LoadKeyPair() (*cryptoDomain.KeyPair, error)

	// PublicKeyDER returns the raw publicKey.der bytes for distribution.
	PublicKeyDER() ([]byte, error)

	// Dir returns the key directory.
	Dir() string
}

// SymmetricKeyProvider supplies the process session key.
type SymmetricKeyProvider interface {
	// GetOrCreateKey returns the session key, resolving it on first call. Every later
	// call returns the same key or the same error.
	GetOrCreateKey(ctx context.Context) (*cryptoDomain.SymmetricKey, error)
}

// Hasher turns a credential into its stored form and verifies candidates against it.
type Hasher interface {
	Algorithm() cryptoDomain.HashAlgorithm
	Hash(message string) (string, error)
	Verify(message, stored string) (bool, error)
}

// CredentialCipher is the single entry point used by the credential pipeline and the
// key exchange endpoints. Every method returns ErrCipherNotReady until Init succeeds.
type CredentialCipher interface {
	// Init bootstraps the key pair, loads it, and resolves the session key. It runs
	// at most once; its result is returned to every caller.
	Init(ctx context.Context) error

	// Ready reports whether Init completed successfully.
	Ready() bool

	// Encrypt base64-decodes plainBase64 and encrypts the bytes with AES-128-ECB and
	// PKCS#7 padding under the session key.
	Encrypt(plainBase64 string) ([]byte, error)

	// Decrypt base64-decodes cipherBase64 and reverses Encrypt.
	Decrypt(cipherBase64 string) ([]byte, error)

	// Hash returns the stored form of message using the configured algorithm.
	Hash(message string) (string, error)

	// VerifyHash reports whether message hashes to stored.
	VerifyHash(message, stored string) (bool, error)

	// WrapSymmetricKeyForDistribution transforms the raw session key with the private
	// key using PKCS#1 v1.5 block type 1 padding. Anyone holding the public key can
	// recover it.
	WrapSymmetricKeyForDistribution() ([]byte, error)

	// UnwrapSymmetricKey reverses WrapSymmetricKeyForDistribution using the public key.
	UnwrapSymmetricKey(envelopeBase64 string) ([]byte, error)

	// WrapSymmetricKeyFor encrypts the session key with RSA-OAEP (SHA-256) under a
	// client supplied DER encoded RSA public key.
	WrapSymmetricKeyFor(clientPublicDER []byte) ([]byte, error)

	// PublicKeyDER returns the server public key in X.509 SubjectPublicKeyInfo form.
	PublicKeyDER() ([]byte, error)

	// Fingerprint returns the OpenSSH SHA256 fingerprint of the server public key.
	Fingerprint() (string, error)
}
