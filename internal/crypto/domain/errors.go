package domain

import (
	stderrors "errors"

	"github.com/ourshop/shop/internal/errors"
)

// Credential cryptography error definitions.
//
// Failures that originate server side (key setup, encryption, hashing) are plain errors
// so the HTTP layer renders them as an opaque 500. Failures caused by client supplied
// data wrap errors.ErrInvalidInput. None of them carry the underlying cipher message.
var (
	// ErrKeySetup indicates the key pair or the session key could not be created,
	// read or parsed. It is fatal at startup.
	//
	// HTTP Status: 503 Service Unavailable
	ErrKeySetup = errors.Wrap(errors.ErrUnavailable, "key setup failed")

	// ErrCipherNotReady indicates a cipher operation was attempted before the
	// credential cipher finished initialization, or after initialization failed.
	//
	// HTTP Status: 503 Service Unavailable
	ErrCipherNotReady = errors.Wrap(errors.ErrUnavailable, "credential cipher not ready")

	// ErrEncryptionFailed indicates a value could not be encrypted.
	//
	// HTTP Status: 500 Internal Server Error
	ErrEncryptionFailed = stderrors.New("encryption failed")

	// ErrDecryptionFailed indicates the ciphertext was not valid base64, had the wrong
	// length, or its padding did not verify under the session key.
	//
	// For security reasons the specific cause is not disclosed.
	//
	// HTTP Status: 500 Internal Server Error unless the caller translates it
	ErrDecryptionFailed = stderrors.New("decryption failed")

	// ErrHashFailed indicates the configured hasher could not digest the credential.
	//
	// HTTP Status: 500 Internal Server Error
	ErrHashFailed = stderrors.New("hash failed")

	// ErrUnsupportedHashAlgorithm indicates CREDENTIAL_HASH_ALGORITHM is unknown.
	ErrUnsupportedHashAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported hash algorithm")

	// ErrInvalidKeySize indicates a provisioned session key is not 16 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrInvalidPublicKey indicates a client supplied public key is not an RSA
	// SubjectPublicKeyInfo of at least 2048 bits.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrInvalidPublicKey = errors.Wrap(errors.ErrInvalidInput, "invalid public key")
)
