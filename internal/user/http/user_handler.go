// Package http provides HTTP handlers for user management and sign-in.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/httputil"
	"github.com/ourshop/shop/internal/user/http/dto"
	"github.com/ourshop/shop/internal/user/usecase"
	customValidation "github.com/ourshop/shop/internal/validation"
)

// UserHandler handles HTTP requests for users. Every password in a response is the
// stored hash sealed under the session key.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userUseCase usecase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CreateHandler creates a user.
// POST /v1/users - Returns 201 Created.
func (h *UserHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapUserToResponse(user))
}

// UpdateHandler updates a user.
// PUT /v1/users/:id - Returns 200 OK.
func (h *UserHandler) UpdateHandler(c *gin.Context) {
	userID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.Update(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// DeleteHandler deletes a user.
// DELETE /v1/users/:id - Returns 204 No Content.
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	userID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), userID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// GetHandler retrieves a user by ID.
// GET /v1/users/:id - Returns 200 OK.
func (h *UserHandler) GetHandler(c *gin.Context) {
	userID, ok := h.parseID(c)
	if !ok {
		return
	}

	user, err := h.userUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// GetByUsernameHandler retrieves a user by username.
// GET /v1/users/username/:username - Returns 200 OK.
func (h *UserHandler) GetByUsernameHandler(c *gin.Context) {
	user, err := h.userUseCase.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// ListHandler lists users with pagination.
// GET /v1/users?offset=0&limit=50 - Returns 200 OK.
func (h *UserHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	users, err := h.userUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToListResponse(users))
}

// ListByActiveHandler lists users filtered by the active flag.
// GET /v1/users/active/:active - Returns 200 OK.
func (h *UserHandler) ListByActiveHandler(c *gin.Context) {
	active, err := strconv.ParseBool(c.Param("active"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid active parameter: must be a boolean"), h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	users, err := h.userUseCase.ListByActive(c.Request.Context(), active, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToListResponse(users))
}

// SignInHandler verifies user credentials.
// POST /v1/users/signin - Returns 200 OK, or 401 for any credential failure.
func (h *UserHandler) SignInHandler(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.SignIn(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

func (h *UserHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid user ID format: must be a valid UUID"), h.logger)
		return uuid.Nil, false
	}
	return id, true
}
