// Package http provides HTTP handlers for customer operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/customer/http/dto"
	"github.com/ourshop/shop/internal/customer/usecase"
	"github.com/ourshop/shop/internal/httputil"
	customValidation "github.com/ourshop/shop/internal/validation"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	customerUseCase usecase.CustomerUseCase
	logger          *slog.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customerUseCase usecase.CustomerUseCase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerUseCase: customerUseCase,
		logger:          logger,
	}
}

// CreateHandler registers a customer.
// POST /v1/customers - Returns 201 Created.
func (h *CustomerHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	customer, err := h.customerUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCustomerToResponse(customer))
}

// UpdateHandler updates a customer.
// PUT /v1/customers/:id - Returns 200 OK.
func (h *CustomerHandler) UpdateHandler(c *gin.Context) {
	customerID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	customer, err := h.customerUseCase.Update(c.Request.Context(), customerID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCustomerToResponse(customer))
}

// DeleteHandler deletes a customer and its user.
// DELETE /v1/customers/:id - Returns 204 No Content.
func (h *CustomerHandler) DeleteHandler(c *gin.Context) {
	customerID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.customerUseCase.Delete(c.Request.Context(), customerID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// GetHandler retrieves a customer by ID.
// GET /v1/customers/:id - Returns 200 OK.
func (h *CustomerHandler) GetHandler(c *gin.Context) {
	customerID, ok := h.parseID(c)
	if !ok {
		return
	}

	customer, err := h.customerUseCase.Get(c.Request.Context(), customerID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCustomerToResponse(customer))
}

// GetByEmailHandler retrieves a customer by email.
// GET /v1/customers/email/:email - Returns 200 OK.
func (h *CustomerHandler) GetByEmailHandler(c *gin.Context) {
	customer, err := h.customerUseCase.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCustomerToResponse(customer))
}

// UpdateBalanceHandler sets a customer's balance.
// PUT /v1/customers/:id/balance - Returns 204 No Content.
func (h *CustomerHandler) UpdateBalanceHandler(c *gin.Context) {
	customerID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.customerUseCase.UpdateBalance(c.Request.Context(), customerID, *req.Balance); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// PasswordResetHandler mails a new password to the customer.
// POST /v1/customers/password-reset - Returns 202 Accepted whether or not the email is
// registered. The new password is never part of the response.
func (h *CustomerHandler) PasswordResetHandler(c *gin.Context) {
	var req dto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.customerUseCase.ResetPassword(c.Request.Context(), req.Email); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusAccepted, dto.PasswordResetResponse{Status: "accepted"})
}

func (h *CustomerHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid customer ID format: must be a valid UUID"), h.logger)
		return uuid.Nil, false
	}
	return id, true
}
