// Package domain defines the customer principal.
package domain

import (
	"math"

	credentialDomain "github.com/ourshop/shop/internal/credential/domain"
	"github.com/ourshop/shop/internal/errors"
	userDomain "github.com/ourshop/shop/internal/user/domain"
)

// Customer is a user of type customer with contact and balance data.
type Customer struct {
	userDomain.User
	FullName   string
	Email      string
	Street     string
	PostalCode int
	City       string
	Phone      string
	Balance    float64
}

// Profile holds the customer fields outside the users table.
type Profile struct {
	FullName   string
	Email      string
	Street     string
	PostalCode int
	City       string
	Phone      string
}

// CreateCustomerInput contains the parameters for registering a customer.
type CreateCustomerInput struct {
	Username string
	Password credentialDomain.PasswordInput
	Active   bool
	Profile
}

// UpdateCustomerInput contains the mutable customer fields. A zero Password keeps the
// current one.
type UpdateCustomerInput struct {
	Username string
	Password credentialDomain.PasswordInput
	Active   bool
	Profile
}

// ValidateBalance rejects negative and non finite balances.
func ValidateBalance(balance float64) error {
	if math.IsNaN(balance) || math.IsInf(balance, 0) || balance < 0 {
		return ErrInvalidBalance
	}
	return nil
}

// Customer errors.
var (
	ErrCustomerNotFound = errors.Wrap(errors.ErrNotFound, "customer not found")
	ErrEmailTaken       = errors.Wrap(errors.ErrConflict, "email already exists")
	ErrInvalidBalance   = errors.Wrap(errors.ErrInvalidInput, "balance must be a non-negative number")

	ErrInsufficientBalance = errors.Wrap(errors.ErrConflict, "insufficient balance")
)
