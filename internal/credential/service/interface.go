// Package service applies the credential cipher to principal passwords: hashing before
// storage, opening sealed inbound passwords, sealing outbound values and generating
// reset passwords.
package service

import (
	credentialDomain "github.com/ourshop/shop/internal/credential/domain"
)

// PasswordGenerator produces random passwords.
type PasswordGenerator interface {
	Generate(length int) (string, error)
	Validate(password string) error
}

// Pipeline is used by the user, customer and admin use cases.
type Pipeline interface {
	// HashForStorage returns the stored form of a plaintext password.
	HashForStorage(plain string) (string, error)

	// OpenPassword returns the plaintext of an inbound password, decrypting it when
	// it arrived sealed.
	OpenPassword(input credentialDomain.PasswordInput) (string, error)

	// Verify reports whether plain matches the stored hash.
	Verify(plain, stored string) (bool, error)

	// Seal returns base64(Encrypt(base64(value))) for transport to a client holding
	// the session key.
	Seal(value string) (string, error)

	// GeneratePassword returns a fresh reset password of ResetPasswordLength
	// characters from [A-Za-z0-9].
	GeneratePassword() (string, error)
}
