// Package http provides HTTP handlers for suppliers.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/httputil"
	"github.com/ourshop/shop/internal/supplier/http/dto"
	"github.com/ourshop/shop/internal/supplier/usecase"
	customValidation "github.com/ourshop/shop/internal/validation"
)

// SupplierHandler handles HTTP requests for suppliers.
type SupplierHandler struct {
	supplierUseCase usecase.SupplierUseCase
	logger          *slog.Logger
}

// NewSupplierHandler creates a new supplier handler.
func NewSupplierHandler(supplierUseCase usecase.SupplierUseCase, logger *slog.Logger) *SupplierHandler {
	return &SupplierHandler{
		supplierUseCase: supplierUseCase,
		logger:          logger,
	}
}

// CreateHandler registers a supplier.
// POST /v1/suppliers - Returns 201 Created.
func (h *SupplierHandler) CreateHandler(c *gin.Context) {
	var req dto.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	supplier, err := h.supplierUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapSupplierToResponse(supplier))
}

// UpdateHandler updates a supplier.
// PUT /v1/suppliers/:id - Returns 200 OK.
func (h *SupplierHandler) UpdateHandler(c *gin.Context) {
	supplierID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	supplier, err := h.supplierUseCase.Update(c.Request.Context(), supplierID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSupplierToResponse(supplier))
}

// GetHandler retrieves a supplier.
// GET /v1/suppliers/:id - Returns 200 OK.
func (h *SupplierHandler) GetHandler(c *gin.Context) {
	supplierID, ok := h.parseID(c)
	if !ok {
		return
	}

	supplier, err := h.supplierUseCase.Get(c.Request.Context(), supplierID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSupplierToResponse(supplier))
}

// ListHandler lists suppliers with pagination.
// GET /v1/suppliers?offset=0&limit=50 - Returns 200 OK.
func (h *SupplierHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	suppliers, err := h.supplierUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSuppliersToListResponse(suppliers))
}

// DeleteHandler removes a supplier.
// DELETE /v1/suppliers/:id - Returns 204 No Content.
func (h *SupplierHandler) DeleteHandler(c *gin.Context) {
	supplierID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.supplierUseCase.Delete(c.Request.Context(), supplierID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

func (h *SupplierHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid supplier ID format: must be a valid UUID"), h.logger)
		return uuid.Nil, false
	}
	return id, true
}
