package dto

import (
	"time"

	"github.com/ourshop/shop/internal/product/domain"
)

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID            string    `json:"id"`
	ProductNumber string    `json:"product_number"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	OtherInfo     string    `json:"other_info"`
	Weight        float32   `json:"weight"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductListResponse wraps a page of products.
type ProductListResponse struct {
	Data []ProductResponse `json:"data"`
}

// MapProductToResponse converts a domain product to an API response.
func MapProductToResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:            product.ID.String(),
		ProductNumber: product.ProductNumber,
		Brand:         product.Brand,
		Model:         product.Model,
		OtherInfo:     product.OtherInfo,
		Weight:        product.Weight,
		Description:   product.Description,
		Price:         product.Price,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

// MapProductsToListResponse converts domain products to a list response.
func MapProductsToListResponse(products []*domain.Product) ProductListResponse {
	data := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		data = append(data, MapProductToResponse(product))
	}
	return ProductListResponse{Data: data}
}
