// Package domain defines the key material and error taxonomy of the credential cipher.
//
// Two kinds of keys exist per process:
//
//   - KeyPair: an RSA-2048 pair persisted as DER files in the keystore directory. It is
//     generated once, never rotated, and only used to hand the session key to clients.
//   - SymmetricKey: the AES-128 session key that encrypts passwords in transit. It lives
//     for the whole process and is never written next to the key pair.
package domain

import (
	"context"
	"crypto/rsa"
)

// KeyPair groups the private and public halves generated by a single RSA call.
type KeyPair struct {
	Private *rsa.PrivateKey
	Public  *rsa.PublicKey
}

// SymmetricKey is the process-wide AES-128 session key.
type SymmetricKey struct {
	Key    []byte
	Source KeySource
}

// Zero clears the raw key bytes.
func (k *SymmetricKey) Zero() {
	if k == nil {
		return
	}
	Zero(k.Key)
}

// Zero overwrites b with zeros.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// KMSKeeper is the subset of *secrets.Keeper used to unwrap a provisioned session key
// and to wrap a new one from the CLI.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}
