// Package dto provides data transfer objects for the purchase HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	productDto "github.com/ourshop/shop/internal/product/http/dto"
	"github.com/ourshop/shop/internal/purchase/domain"
)

// PurchaseRequest buys amount units of a product.
type PurchaseRequest struct {
	ProductID string `json:"product_id"`
	Amount    int    `json:"amount"`
}

// Validate checks if the purchase request is valid.
func (r *PurchaseRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ProductID, validation.Required, validation.By(isUUID)),
		validation.Field(&r.Amount, validation.Required, validation.Min(1)),
	)
}

// UpdateAmountRequest replaces the recorded amount of a purchase.
type UpdateAmountRequest struct {
	Amount int `json:"amount"`
}

// Validate checks if the update amount request is valid.
func (r *UpdateAmountRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Amount, validation.Required, validation.Min(1)),
	)
}

func isUUID(value any) error {
	s, _ := value.(string)
	if _, err := uuid.Parse(s); err != nil {
		return validation.NewError("validation_uuid", "must be a valid UUID")
	}
	return nil
}

// PurchaseResponse represents a purchase in API responses.
type PurchaseResponse struct {
	CustomerID string                      `json:"customer_id"`
	ProductID  string                      `json:"product_id"`
	Amount     int                         `json:"amount"`
	BoughtAt   time.Time                   `json:"bought_at"`
	Product    *productDto.ProductResponse `json:"product,omitempty"`
}

// PurchaseListResponse wraps the purchases of a customer.
type PurchaseListResponse struct {
	Data []PurchaseResponse `json:"data"`
}

// MapPurchaseToResponse converts a domain purchase to an API response.
func MapPurchaseToResponse(purchase *domain.Purchase) PurchaseResponse {
	response := PurchaseResponse{
		CustomerID: purchase.CustomerID.String(),
		ProductID:  purchase.ProductID.String(),
		Amount:     purchase.Amount,
		BoughtAt:   purchase.BoughtAt,
	}
	if purchase.Product != nil {
		product := productDto.MapProductToResponse(purchase.Product)
		response.Product = &product
	}
	return response
}

// MapPurchasesToListResponse converts domain purchases to a list response.
func MapPurchasesToListResponse(purchases []*domain.Purchase) PurchaseListResponse {
	data := make([]PurchaseResponse, 0, len(purchases))
	for _, purchase := range purchases {
		data = append(data, MapPurchaseToResponse(purchase))
	}
	return PurchaseListResponse{Data: data}
}
