// Package http provides HTTP handlers for customer purchases.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/httputil"
	"github.com/ourshop/shop/internal/purchase/http/dto"
	"github.com/ourshop/shop/internal/purchase/usecase"
	customValidation "github.com/ourshop/shop/internal/validation"
)

// PurchaseHandler handles HTTP requests for purchases.
type PurchaseHandler struct {
	purchaseUseCase usecase.PurchaseUseCase
	logger          *slog.Logger
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(purchaseUseCase usecase.PurchaseUseCase, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUseCase: purchaseUseCase,
		logger:          logger,
	}
}

// CreateHandler buys a product for a customer.
// POST /v1/customers/:id/purchases - Returns 201 Created, 409 when the balance is short.
func (h *PurchaseHandler) CreateHandler(c *gin.Context) {
	customerID, ok := h.parseUUID(c, "id", "customer")
	if !ok {
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	purchase, err := h.purchaseUseCase.Purchase(c.Request.Context(), customerID, uuid.MustParse(req.ProductID), req.Amount)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapPurchaseToResponse(purchase))
}

// UpdateAmountHandler corrects the amount of a recorded purchase.
// PUT /v1/customers/:id/purchases/:product_id - Returns 200 OK.
func (h *PurchaseHandler) UpdateAmountHandler(c *gin.Context) {
	customerID, ok := h.parseUUID(c, "id", "customer")
	if !ok {
		return
	}
	productID, ok := h.parseUUID(c, "product_id", "product")
	if !ok {
		return
	}

	var req dto.UpdateAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	purchase, err := h.purchaseUseCase.UpdateAmount(c.Request.Context(), customerID, productID, req.Amount)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPurchaseToResponse(purchase))
}

// ListHandler lists the purchases of a customer.
// GET /v1/customers/:id/purchases - Returns 200 OK.
func (h *PurchaseHandler) ListHandler(c *gin.Context) {
	customerID, ok := h.parseUUID(c, "id", "customer")
	if !ok {
		return
	}

	purchases, err := h.purchaseUseCase.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPurchasesToListResponse(purchases))
}

func (h *PurchaseHandler) parseUUID(c *gin.Context, param, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid %s ID format: must be a valid UUID", name), h.logger)
		return uuid.Nil, false
	}
	return id, true
}
