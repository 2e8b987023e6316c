// Package http provides HTTP handlers for admin operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/admin/domain"
	"github.com/ourshop/shop/internal/admin/http/dto"
	"github.com/ourshop/shop/internal/admin/usecase"
	"github.com/ourshop/shop/internal/httputil"
	userDto "github.com/ourshop/shop/internal/user/http/dto"
	customValidation "github.com/ourshop/shop/internal/validation"
)

// AdminHandler handles HTTP requests for admins.
type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       *slog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

// CreateHandler creates an admin.
// POST /v1/admins - Returns 201 Created.
func (h *AdminHandler) CreateHandler(c *gin.Context) {
	req, ok := h.bind(c, true)
	if !ok {
		return
	}

	admin, err := h.adminUseCase.Create(c.Request.Context(), req.ToCreateInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapAdminToResponse(admin))
}

// UpdateHandler updates an admin.
// PUT /v1/admins/:id - Returns 200 OK.
func (h *AdminHandler) UpdateHandler(c *gin.Context) {
	adminID, ok := h.parseID(c)
	if !ok {
		return
	}

	req, ok := h.bind(c, false)
	if !ok {
		return
	}

	admin, err := h.adminUseCase.Update(c.Request.Context(), adminID, req.ToUpdateInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAdminToResponse(admin))
}

// DeleteHandler deletes an admin.
// DELETE /v1/admins/:id - Returns 204 No Content.
func (h *AdminHandler) DeleteHandler(c *gin.Context) {
	adminID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.adminUseCase.Delete(c.Request.Context(), adminID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// GetHandler retrieves an admin by ID.
// GET /v1/admins/:id - Returns 200 OK.
func (h *AdminHandler) GetHandler(c *gin.Context) {
	adminID, ok := h.parseID(c)
	if !ok {
		return
	}

	admin, err := h.adminUseCase.Get(c.Request.Context(), adminID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAdminToResponse(admin))
}

// SignInHandler verifies admin credentials.
// POST /v1/admins/signin - Returns 200 OK, or 401 for any credential failure.
func (h *AdminHandler) SignInHandler(c *gin.Context) {
	var req userDto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	admin, err := h.adminUseCase.SignIn(c.Request.Context(), &domain.SignInInput{
		Username: req.Username,
		Password: req.PasswordInput(),
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAdminToResponse(admin))
}

func (h *AdminHandler) bind(c *gin.Context, create bool) (*dto.AdminRequest, bool) {
	var req dto.AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return nil, false
	}

	if err := req.Validate(create); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return nil, false
	}
	return &req, true
}

func (h *AdminHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid admin ID format: must be a valid UUID"), h.logger)
		return uuid.Nil, false
	}
	return id, true
}
