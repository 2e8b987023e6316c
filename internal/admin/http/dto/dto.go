// Package dto provides data transfer objects for the admin HTTP layer.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	"github.com/ourshop/shop/internal/admin/domain"
	userDto "github.com/ourshop/shop/internal/user/http/dto"
	customValidation "github.com/ourshop/shop/internal/validation"
)

// AdminRequest is the body of create and update requests.
type AdminRequest struct {
	Username string `json:"username"`
	userDto.PasswordFields
	Active bool `json:"active"`
}

// Validate checks the request. A password is required only when creating.
func (r *AdminRequest) Validate(create bool) error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Username,
			validation.Length(1, 255),
		),
	); err != nil {
		return err
	}
	return r.ValidatePassword(create)
}

// ToCreateInput converts the request to a create input.
func (r *AdminRequest) ToCreateInput() *domain.CreateAdminInput {
	return &domain.CreateAdminInput{Username: r.Username, Password: r.PasswordInput(), Active: r.Active}
}

// ToUpdateInput converts the request to an update input.
func (r *AdminRequest) ToUpdateInput() *domain.UpdateAdminInput {
	return &domain.UpdateAdminInput{Username: r.Username, Password: r.PasswordInput(), Active: r.Active}
}

// AdminResponse represents an admin in API responses.
type AdminResponse struct {
	ID         string     `json:"id"`
	Username   string     `json:"username"`
	Password   string     `json:"password"` //nolint:gosec // sealed hash
	Active     bool       `json:"active"`
	LastAccess *time.Time `json:"last_access"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// MapAdminToResponse converts a domain admin to an API response.
func MapAdminToResponse(admin *domain.Admin) AdminResponse {
	return AdminResponse{
		ID:         admin.ID.String(),
		Username:   admin.Username,
		Password:   admin.Password,
		Active:     admin.Active,
		LastAccess: admin.LastAccess,
		CreatedAt:  admin.CreatedAt,
		UpdatedAt:  admin.UpdatedAt,
	}
}
