// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"errors"

	validation "github.com/jellydator/validation"

	credentialDomain "github.com/ourshop/shop/internal/credential/domain"
	"github.com/ourshop/shop/internal/user/domain"
	customValidation "github.com/ourshop/shop/internal/validation"
)

var errPasswordAmbiguous = errors.New("password and sealed_password are mutually exclusive")

// PasswordFields carries an inbound password either in plaintext or sealed under the
// session key. Customer and admin requests embed it as well.
type PasswordFields struct {
	Password       string `json:"password,omitempty"`        //nolint:gosec // inbound credential
	SealedPassword string `json:"sealed_password,omitempty"` //nolint:gosec // inbound credential
}

// PasswordInput converts the fields to the credential pipeline input.
func (p PasswordFields) PasswordInput() credentialDomain.PasswordInput {
	return credentialDomain.PasswordInput{Plain: p.Password, Sealed: p.SealedPassword}
}

// ValidatePassword checks that at most one form is present, and exactly one when
// required is set.
func (p *PasswordFields) ValidatePassword(required bool) error {
	if p.Password != "" && p.SealedPassword != "" {
		return validation.Errors{"password": errPasswordAmbiguous}
	}
	return validation.ValidateStruct(p,
		validation.Field(&p.Password,
			validation.When(required && p.SealedPassword == "", validation.Required),
			validation.Length(1, 128),
		),
		validation.Field(&p.SealedPassword,
			customValidation.SealedCiphertext,
			validation.Length(0, 1024),
		),
	)
}

// CreateUserRequest contains the parameters for creating a user.
type CreateUserRequest struct {
	Username string `json:"username"`
	PasswordFields
	Active bool   `json:"active"`
	Type   string `json:"type"`
}

// Validate checks if the create user request is valid.
func (r *CreateUserRequest) Validate() error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Username,
			validation.Length(1, 255),
		),
		validation.Field(&r.Type,
			validation.Required,
			validation.In(string(domain.UserTypeCustomer), string(domain.UserTypeAdmin)),
		),
	); err != nil {
		return err
	}
	return r.ValidatePassword(true)
}

// ToInput converts the request to the use case input.
func (r *CreateUserRequest) ToInput() *domain.CreateUserInput {
	return &domain.CreateUserInput{
		Username: r.Username,
		Password: r.PasswordInput(),
		Active:   r.Active,
		Type:     domain.UserType(r.Type),
	}
}

// UpdateUserRequest contains the mutable user fields.
type UpdateUserRequest struct {
	Username string `json:"username"`
	PasswordFields
	Active bool `json:"active"`
}

// Validate checks if the update user request is valid.
func (r *UpdateUserRequest) Validate() error {
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
	return r.ValidatePassword(false)
}

// ToInput converts the request to the use case input.
func (r *UpdateUserRequest) ToInput() *domain.UpdateUserInput {
	return &domain.UpdateUserInput{
		Username: r.Username,
		Password: r.PasswordInput(),
		Active:   r.Active,
	}
}

// SignInRequest contains sign-in credentials.
type SignInRequest struct {
	Username string `json:"username"`
	PasswordFields
}

// Validate checks if the sign-in request is valid.
func (r *SignInRequest) Validate() error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required, customValidation.NotBlank),
	); err != nil {
		return err
	}
	return r.ValidatePassword(true)
}

// ToInput converts the request to the use case input.
func (r *SignInRequest) ToInput() *domain.SignInInput {
	return &domain.SignInInput{Username: r.Username, Password: r.PasswordInput()}
}
