// Package domain defines the credential types shared by every principal module.
package domain

import (
	"github.com/ourshop/shop/internal/errors"
)

// ResetPasswordLength is the length of a generated reset password.
const ResetPasswordLength = 16

// PasswordInput carries an inbound password in one of two forms. Sealed, when set, is
// the base64 session key ciphertext of the UTF-8 password and takes precedence over
// Plain.
type PasswordInput struct {
	Plain  string
	Sealed string
}

// IsZero reports whether neither form was supplied.
func (p PasswordInput) IsZero() bool {
	return p.Plain == "" && p.Sealed == ""
}

var (
	// ErrPasswordRequired indicates neither a plain nor a sealed password was supplied.
	ErrPasswordRequired = errors.Wrap(errors.ErrInvalidInput, "password is required")

	// ErrInvalidSealedPassword indicates the sealed password did not decrypt under the
	// session key.
	ErrInvalidSealedPassword = errors.Wrap(errors.ErrInvalidInput, "sealed password is invalid")

	// ErrInvalidCredentials indicates a failed sign-in. The cause is never disclosed.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")
)
