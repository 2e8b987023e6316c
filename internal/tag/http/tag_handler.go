// Package http provides HTTP handlers for tags.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ourshop/shop/internal/httputil"
	"github.com/ourshop/shop/internal/tag/http/dto"
	"github.com/ourshop/shop/internal/tag/usecase"
	customValidation "github.com/ourshop/shop/internal/validation"
)

// TagHandler handles HTTP requests for tags.
type TagHandler struct {
	tagUseCase usecase.TagUseCase
	logger     *slog.Logger
}

// NewTagHandler creates a new tag handler.
func NewTagHandler(tagUseCase usecase.TagUseCase, logger *slog.Logger) *TagHandler {
	return &TagHandler{
		tagUseCase: tagUseCase,
		logger:     logger,
	}
}

// CreateHandler creates a tag.
// POST /v1/tags - Returns 201 Created.
func (h *TagHandler) CreateHandler(c *gin.Context) {
	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	tag, err := h.tagUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTagToResponse(tag))
}

// UpdateHandler updates a tag.
// PUT /v1/tags/:id - Returns 200 OK.
func (h *TagHandler) UpdateHandler(c *gin.Context) {
	tagID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	tag, err := h.tagUseCase.Update(c.Request.Context(), tagID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTagToResponse(tag))
}

// GetHandler retrieves a tag.
// GET /v1/tags/:id - Returns 200 OK.
func (h *TagHandler) GetHandler(c *gin.Context) {
	tagID, ok := h.parseID(c)
	if !ok {
		return
	}

	tag, err := h.tagUseCase.Get(c.Request.Context(), tagID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTagToResponse(tag))
}

// ListHandler lists tags with pagination.
// GET /v1/tags?offset=0&limit=50 - Returns 200 OK.
func (h *TagHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	tags, err := h.tagUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTagsToListResponse(tags))
}

// DeleteHandler removes a tag.
// DELETE /v1/tags/:id - Returns 204 No Content.
func (h *TagHandler) DeleteHandler(c *gin.Context) {
	tagID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.tagUseCase.Delete(c.Request.Context(), tagID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

func (h *TagHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid tag ID format: must be a valid UUID"), h.logger)
		return uuid.Nil, false
	}
	return id, true
}
