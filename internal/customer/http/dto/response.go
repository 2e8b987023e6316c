package dto

import (
	"time"

	"github.com/ourshop/shop/internal/customer/domain"
)

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Password   string    `json:"password"` //nolint:gosec // sealed hash
	Active     bool      `json:"active"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Street     string    `json:"street"`
	PostalCode int       `json:"postal_code"`
	City       string    `json:"city"`
	Phone      string    `json:"phone"`
	Balance    float64   `json:"balance"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MapCustomerToResponse converts a domain customer to an API response.
func MapCustomerToResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         customer.ID.String(),
		Username:   customer.Username,
		Password:   customer.Password,
		Active:     customer.Active,
		FullName:   customer.FullName,
		Email:      customer.Email,
		Street:     customer.Street,
		PostalCode: customer.PostalCode,
		City:       customer.City,
		Phone:      customer.Phone,
		Balance:    customer.Balance,
		CreatedAt:  customer.CreatedAt,
		UpdatedAt:  customer.UpdatedAt,
	}
}

// PasswordResetResponse acknowledges a reset request without revealing whether the
// email is registered.
type PasswordResetResponse struct {
	Status string `json:"status"`
}
