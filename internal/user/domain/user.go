// Package domain defines the user principal shared by customers and admins.
package domain

import (
	"time"

	"github.com/google/uuid"

	credentialDomain "github.com/ourshop/shop/internal/credential/domain"
	"github.com/ourshop/shop/internal/errors"
)

// UserType distinguishes the principal kind behind a user row.
type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeAdmin    UserType = "admin"
)

// Valid reports whether t is a known user type.
func (t UserType) Valid() bool {
	return t == UserTypeCustomer || t == UserTypeAdmin
}

// User is the credential bearing principal. Password holds the stored hash when read
// from a repository and the sealed hash when returned by a use case.
type User struct {
	ID        uuid.UUID
	Username  string
	Password  string //nolint:gosec // stored hash or sealed hash, never plaintext
	Active    bool
	Type      UserType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateUserInput contains the parameters for creating a user.
type CreateUserInput struct {
	Username string
	Password credentialDomain.PasswordInput
	Active   bool
	Type     UserType
}

// UpdateUserInput contains the mutable user fields. A zero Password keeps the current
// one.
type UpdateUserInput struct {
	Username string
	Password credentialDomain.PasswordInput
	Active   bool
}

// SignInInput contains the credentials presented at sign-in.
type SignInInput struct {
	Username string
	Password credentialDomain.PasswordInput
}

// User errors.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUsernameTaken indicates another user already has the username.
	ErrUsernameTaken = errors.Wrap(errors.ErrConflict, "username already exists")

	// ErrInvalidUserType indicates the type is neither customer nor admin.
	ErrInvalidUserType = errors.Wrap(errors.ErrInvalidInput, "invalid user type")
)
