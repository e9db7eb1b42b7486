package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookgoblin/internal/catalog"
	"github.com/mrlokans/bookgoblin/internal/database"
	"github.com/mrlokans/bookgoblin/internal/entities"
	"github.com/mrlokans/bookgoblin/internal/services"
	"github.com/mrlokans/bookgoblin/internal/validation"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s) [%s]: %v", context, requestID(c), err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondError sends an error response with the given status code.
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: message, Code: code})
}

// respondServiceError maps an error from the service layer onto a status
// code. Anything unrecognised is a 500 and is only logged.
func respondServiceError(c *gin.Context, err error, context string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Message, Code: "validation_failed", Details: verr.Fields})
	case errors.Is(err, entities.ErrInvalidStatus):
		respondError(c, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, catalog.ErrEmptyQuery):
		respondError(c, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, services.ErrForbidden):
		respondError(c, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, services.ErrAlreadyAssigned):
		respondError(c, http.StatusBadRequest, "already_assigned", services.ErrAlreadyAssigned.Error())
	case errors.Is(err, services.ErrNotAssigned):
		respondError(c, http.StatusNotFound, "not_assigned", services.ErrNotAssigned.Error())
	case errors.Is(err, database.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "user_not_found", database.ErrUserNotFound.Error())
	case errors.Is(err, database.ErrIntegrityViolation):
		log.Printf("Integrity violation (%s) [%s]: %v", context, requestID(c), err)
		respondError(c, http.StatusConflict, "integrity_violation", "request conflicts with existing data")
	case errors.Is(err, catalog.ErrUnavailable):
		log.Printf("Upstream error (%s) [%s]: %v", context, requestID(c), err)
		respondError(c, http.StatusBadGateway, "upstream_unavailable", catalog.ErrUnavailable.Error())
	default:
		respondInternalError(c, err, context)
	}
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body or responds with a 400.
func bindJSON(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", "invalid request body: "+err.Error())
		return false
	}
	return true
}
