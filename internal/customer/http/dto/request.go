// Package dto provides data transfer objects for the customer HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/ourshop/shop/internal/customer/domain"
	userDto "github.com/ourshop/shop/internal/user/http/dto"
	customValidation "github.com/ourshop/shop/internal/validation"
)

// ProfileFields are the customer contact fields.
type ProfileFields struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Street     string `json:"street"`
	PostalCode int    `json:"postal_code"`
	City       string `json:"city"`
	Phone      string `json:"phone"`
}

func (p *ProfileFields) validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.FullName, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&p.Email, validation.Required, customValidation.Email, validation.Length(5, 255)),
		validation.Field(&p.Street, validation.Length(0, 255)),
		validation.Field(&p.PostalCode, validation.Min(0)),
		validation.Field(&p.City, validation.Length(0, 255)),
		validation.Field(&p.Phone, validation.Length(0, 32)),
	)
}

func (p ProfileFields) toDomain() domain.Profile {
	return domain.Profile{
		FullName:   p.FullName,
		Email:      p.Email,
		Street:     p.Street,
		PostalCode: p.PostalCode,
		City:       p.City,
		Phone:      p.Phone,
	}
}

// CreateCustomerRequest contains the parameters for registering a customer.
type CreateCustomerRequest struct {
	Username string `json:"username"`
	userDto.PasswordFields
	Active bool `json:"active"`
	ProfileFields
}

// Validate checks if the create customer request is valid.
func (r *CreateCustomerRequest) Validate() error {
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
	if err := r.ValidatePassword(true); err != nil {
		return err
	}
	return r.validate()
}

// ToInput converts the request to the use case input.
func (r *CreateCustomerRequest) ToInput() *domain.CreateCustomerInput {
	return &domain.CreateCustomerInput{
		Username: r.Username,
		Password: r.PasswordInput(),
		Active:   r.Active,
		Profile:  r.toDomain(),
	}
}

// UpdateCustomerRequest contains the mutable customer fields.
type UpdateCustomerRequest struct {
	Username string `json:"username"`
	userDto.PasswordFields
	Active bool `json:"active"`
	ProfileFields
}

// Validate checks if the update customer request is valid.
func (r *UpdateCustomerRequest) Validate() error {
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
	if err := r.ValidatePassword(false); err != nil {
		return err
	}
	return r.validate()
}

// ToInput converts the request to the use case input.
func (r *UpdateCustomerRequest) ToInput() *domain.UpdateCustomerInput {
	return &domain.UpdateCustomerInput{
		Username: r.Username,
		Password: r.PasswordInput(),
		Active:   r.Active,
		Profile:  r.toDomain(),
	}
}

// UpdateBalanceRequest sets a customer's balance.
type UpdateBalanceRequest struct {
	Balance *float64 `json:"balance"`
}

// Validate checks if the balance request is valid.
func (r *UpdateBalanceRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Balance, validation.NotNil, validation.Min(0.0)),
	)
}

// PasswordResetRequest asks for a new password to be mailed.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// Validate checks if the password reset request is valid.
func (r *PasswordResetRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, customValidation.Email),
	)
}
