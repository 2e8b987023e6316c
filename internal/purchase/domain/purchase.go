// Package domain defines customer purchases, one record per customer and product.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/errors"
	productDomain "github.com/ourshop/shop/internal/product/domain"
)

// Purchase is the running amount of one product a customer has bought. BoughtAt is
// the time of the latest purchase.
type Purchase struct {
	CustomerID uuid.UUID
	ProductID  uuid.UUID
	Amount     int
	BoughtAt   time.Time

	// Product is filled by reads that join the catalog.
	Product *productDomain.Product
}

// ValidateAmount rejects amounts below one.
func ValidateAmount(amount int) error {
	if amount < 1 {
		return ErrInvalidAmount
	}
	return nil
}

// Purchase errors.
var (
	ErrPurchaseNotFound = errors.Wrap(errors.ErrNotFound, "purchase not found")
	ErrInvalidAmount    = errors.Wrap(errors.ErrInvalidInput, "amount must be at least 1")
)
