// Package domain defines the admin principal.
package domain

import (
	"time"

	credentialDomain "github.com/ourshop/shop/internal/credential/domain"
	"github.com/ourshop/shop/internal/errors"
	userDomain "github.com/ourshop/shop/internal/user/domain"
)

// Admin is a user of type admin. LastAccess is nil until the first sign-in.
type Admin struct {
	userDomain.User
	LastAccess *time.Time
}

// CreateAdminInput contains the parameters for creating an admin.
type CreateAdminInput struct {
	Username string
	Password credentialDomain.PasswordInput
	Active   bool
}

// UpdateAdminInput contains the mutable admin fields.
type UpdateAdminInput struct {
	Username string
	Password credentialDomain.PasswordInput
	Active   bool
}

// SignInInput contains admin sign-in credentials.
type SignInInput struct {
	Username string
	Password credentialDomain.PasswordInput
}

// ErrAdminNotFound indicates the requested admin does not exist.
var ErrAdminNotFound = errors.Wrap(errors.ErrNotFound, "admin not found")
