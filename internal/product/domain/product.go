// Package domain defines catalog products.
package domain

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/errors"
)

// Product is an item customers can purchase. ProductNumber is unique.
type Product struct {
	ID            uuid.UUID
	ProductNumber string
	Brand         string
	Model         string
	OtherInfo     string
	Weight        float32
	Description   string
	Price         float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductInput contains the writable product fields.
type ProductInput struct {
	ProductNumber string
	Brand         string
	Model         string
	OtherInfo     string
	Weight        float32
	Description   string
	Price         float64
}

// ValidatePrice rejects negative and non finite prices.
func ValidatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// Product errors.
var (
	ErrProductNotFound    = errors.Wrap(errors.ErrNotFound, "product not found")
	ErrProductNumberTaken = errors.Wrap(errors.ErrConflict, "product number already exists")
	ErrInvalidPrice       = errors.Wrap(errors.ErrInvalidInput, "price must be a non-negative number")
)
