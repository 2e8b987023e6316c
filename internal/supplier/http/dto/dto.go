// Package dto provides data transfer objects for the supplier HTTP layer.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	"github.com/ourshop/shop/internal/supplier/domain"
	customValidation "github.com/ourshop/shop/internal/validation"
)

// SupplierRequest carries the writable supplier fields for create and update.
type SupplierRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Country string `json:"country"`
	Zip     int    `json:"zip"`
}

// Validate checks if the supplier request is valid.
func (r *SupplierRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.Phone, validation.Length(0, 64)),
		validation.Field(&r.Country, validation.Length(0, 128)),
		validation.Field(&r.Zip, validation.Min(0)),
	)
}

// ToInput converts the request to a domain input.
func (r *SupplierRequest) ToInput() *domain.SupplierInput {
	return &domain.SupplierInput{Name: r.Name, Phone: r.Phone, Country: r.Country, Zip: r.Zip}
}

// SupplierResponse represents a supplier in API responses.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Country   string    `json:"country"`
	Zip       int       `json:"zip"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierListResponse wraps a page of suppliers.
type SupplierListResponse struct {
	Data []SupplierResponse `json:"data"`
}

// MapSupplierToResponse converts a domain supplier to an API response.
func MapSupplierToResponse(supplier *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        supplier.ID.String(),
		Name:      supplier.Name,
		Phone:     supplier.Phone,
		Country:   supplier.Country,
		Zip:       supplier.Zip,
		CreatedAt: supplier.CreatedAt,
		UpdatedAt: supplier.UpdatedAt,
	}
}

// MapSuppliersToListResponse converts domain suppliers to a list response.
func MapSuppliersToListResponse(suppliers []*domain.Supplier) SupplierListResponse {
	data := make([]SupplierResponse, 0, len(suppliers))
	for _, supplier := range suppliers {
		data = append(data, MapSupplierToResponse(supplier))
	}
	return SupplierListResponse{Data: data}
}
