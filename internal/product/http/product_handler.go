// Package http provides HTTP handlers for catalog products.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/httputil"
	"github.com/ourshop/shop/internal/product/http/dto"
	"github.com/ourshop/shop/internal/product/usecase"
	customValidation "github.com/ourshop/shop/internal/validation"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	productUseCase usecase.ProductUseCase
	logger         *slog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productUseCase usecase.ProductUseCase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		logger:         logger,
	}
}

// CreateHandler adds a product to the catalog.
// POST /v1/products - Returns 201 Created.
func (h *ProductHandler) CreateHandler(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	product, err := h.productUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapProductToResponse(product))
}

// UpdateHandler replaces a product's fields.
// PUT /v1/products/:id - Returns 200 OK.
func (h *ProductHandler) UpdateHandler(c *gin.Context) {
	productID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	product, err := h.productUseCase.Update(c.Request.Context(), productID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductToResponse(product))
}

// GetHandler retrieves a product.
// GET /v1/products/:id - Returns 200 OK.
func (h *ProductHandler) GetHandler(c *gin.Context) {
	productID, ok := h.parseID(c)
	if !ok {
		return
	}

	product, err := h.productUseCase.Get(c.Request.Context(), productID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductToResponse(product))
}

// ListHandler lists products with pagination.
// GET /v1/products?offset=0&limit=50 - Returns 200 OK.
func (h *ProductHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	products, err := h.productUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductsToListResponse(products))
}

// DeleteHandler removes a product and every purchase record of it.
// DELETE /v1/products/:id - Returns 204 No Content.
func (h *ProductHandler) DeleteHandler(c *gin.Context) {
	productID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.productUseCase.Delete(c.Request.Context(), productID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

func (h *ProductHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid product ID format: must be a valid UUID"), h.logger)
		return uuid.Nil, false
	}
	return id, true
}
