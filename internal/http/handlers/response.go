// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all endpoints:
// the error envelope, the sentinel-to-status mapping and small helpers for
// success responses.
//
// Conventions:
//   - All error responses return an ErrorResponse with a stable `code`.
//   - `fail()` centralizes error logging and formatting; 5xx responses are
//     logged with the request-scoped logger.
//   - Field validation failures carry per-field messages in `details`.
//
// Example error response:
//
//	HTTP/1.1 400 Bad Request
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "validation_error",
//	  "error": "invalid input",
//	  "details": {"password": "Ensure this field has at least 8 characters."}
//	}
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/closet-backend/internal/http/middleware"
	"github.com/tbourn/closet-backend/internal/services"
	"github.com/tbourn/closet-backend/internal/weather"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Error string `json:"error" example:"clothing item not found"`
	// Per-field validation messages, when any
	Details map[string]string `json:"details,omitempty"`
}

// fail aborts the request with a structured error and logs server-side errors.
func fail(c *gin.Context, status int, code, msg string) {
	failDetails(c, status, code, msg, nil)
}

func failDetails(c *gin.Context, status int, code, msg string, details map[string]string) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Error:     msg,
		Details:   details,
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail() for the router's fallbacks and
// middleware that live outside this package.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// serviceError maps a service-layer error to its HTTP response. Unknown
// errors become a logged 500 whose message does not leak internals.
func serviceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		failDetails(c, http.StatusBadRequest, ErrCodeValidation, "invalid input", ve.Fields)
	case errors.Is(err, services.ErrMissingCredentials):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Please provide both username and password")
	case errors.Is(err, services.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "Invalid Credentials")
	case errors.Is(err, services.ErrUnauthenticated):
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "Authentication credentials were not provided.")
	case errors.Is(err, services.ErrItemNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "clothing item not found")
	case errors.Is(err, services.ErrWearLogNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "wear log not found")
	case errors.Is(err, services.ErrItemsNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "One or more items not found")
	case errors.Is(err, services.ErrForeignItems):
		fail(c, http.StatusForbidden, ErrCodeForbidden, "Cannot create wear log with items that don't belong to you")
	case errors.Is(err, weather.ErrMissingAPIKey), errors.Is(err, weather.ErrLocationRequired):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrWeatherUnavailable):
		fail(c, http.StatusServiceUnavailable, ErrCodeWeatherUnavailable, "Could not fetch weather data")
	default:
		lg := middleware.LoggerFrom(c)
		lg.Error().Err(err).Msg("unhandled service error")
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
	}
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
