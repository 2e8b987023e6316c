// Package domain defines product suppliers.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/errors"
)

// Supplier is a company the shop sources products from.
type Supplier struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Country   string
	Zip       int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupplierInput contains the writable supplier fields.
type SupplierInput struct {
	Name    string
	Phone   string
	Country string
	Zip     int
}

// ErrSupplierNotFound indicates the supplier does not exist.
var ErrSupplierNotFound = errors.Wrap(errors.ErrNotFound, "supplier not found")
