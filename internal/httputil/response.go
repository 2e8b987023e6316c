// Package httputil renders errors and parses common query parameters for the gin handlers.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ourshop/shop/internal/errors"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// errorMapping binds a sentinel to its status code. An empty message exposes the
// error text to the client; only invalid input does so.
type errorMapping struct {
	sentinel error
	status   int
	code     string
	message  string
}

var errorMappings = []errorMapping{
	{apperrors.ErrNotFound, http.StatusNotFound, "not_found", "The requested resource was not found"},
	{apperrors.ErrConflict, http.StatusConflict, "conflict", "A conflict occurred with existing data"},
	{apperrors.ErrInvalidInput, http.StatusUnprocessableEntity, "invalid_input", ""},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", "Invalid credentials"},
	{apperrors.ErrUnavailable, http.StatusServiceUnavailable, "service_unavailable", "The service is temporarily unavailable"},
	{apperrors.ErrForbidden, http.StatusForbidden, "forbidden", "You don't have permission to access this resource"},
}

// unavailableRetryAfter is sent with 503 responses, in seconds.
const unavailableRetryAfter = "5"

// HandleErrorGin maps err onto a status code and writes it as JSON. Anything not
// wrapping a known sentinel becomes an opaque 500; crypto and driver details only
// reach the log.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	status := http.StatusInternalServerError
	response := ErrorResponse{Error: "internal_error", Message: "An internal error occurred"}

	for _, m := range errorMappings {
		if apperrors.Is(err, m.sentinel) {
			status = m.status
			response = ErrorResponse{Error: m.code, Message: m.message}
			if response.Message == "" {
				response.Message = err.Error()
			}
			break
		}
	}

	if logger != nil {
		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", status),
			slog.String("error_code", response.Error),
			slog.Any("error", err),
		)
	}

	if status == http.StatusServiceUnavailable {
		c.Header("Retry-After", unavailableRetryAfter)
	}
	c.JSON(status, response)
}

// HandleBadRequestGin writes 400 for bodies or parameters that could not be parsed.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: err.Error()})
}

// HandleValidationErrorGin writes 422 for requests that parsed but failed validation.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation_error", Message: err.Error()})
}
