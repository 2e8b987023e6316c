// Package dto provides data transfer objects for the product HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/ourshop/shop/internal/product/domain"
	customValidation "github.com/ourshop/shop/internal/validation"
)

// ProductRequest carries the writable product fields for create and update.
type ProductRequest struct {
	ProductNumber string  `json:"product_number"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	OtherInfo     string  `json:"other_info"`
	Weight        float32 `json:"weight"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
}

// Validate checks if the product request is valid.
func (r *ProductRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ProductNumber, validation.Required, customValidation.NotBlank, validation.Length(1, 64)),
		validation.Field(&r.Brand, validation.Length(0, 255)),
		validation.Field(&r.Model, validation.Length(0, 255)),
		validation.Field(&r.OtherInfo, validation.Length(0, 1024)),
		validation.Field(&r.Weight, validation.Min(float32(0))),
		validation.Field(&r.Description, validation.Length(0, 4096)),
		validation.Field(&r.Price, validation.Min(0.0)),
	)
}

// ToInput converts the request to a domain input.
func (r *ProductRequest) ToInput() *domain.ProductInput {
	return &domain.ProductInput{
		ProductNumber: r.ProductNumber,
		Brand:         r.Brand,
		Model:         r.Model,
		OtherInfo:     r.OtherInfo,
		Weight:        r.Weight,
		Description:   r.Description,
		Price:         r.Price,
	}
}
