package handlers

import (
	"net/http"
	"strconv"

	apperrors "growth-roadmap-backend/internal/errors"
	"growth-roadmap-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty" example:"underlying cause"`
}

// respondError maps typed service errors to HTTP status codes. Anything
// untyped is a 500 carrying action as the message.
func respondError(c *gin.Context, err error, action string) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsAlreadyExists(err), apperrors.IsPrecondition(err):
		status = http.StatusConflict
	case apperrors.IsGenerationFailure(err):
		status = http.StatusBadGateway
	case apperrors.IsAuthentication(err):
		status = http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		status = http.StatusForbidden
	case apperrors.IsConfiguration(err):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).Errorf("%s: %v", action, err)
		c.JSON(status, ErrorResponse{Error: action, Details: err.Error()})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// organizationID parses the :id path parameter
func organizationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid organization ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// uuidParam parses a UUID path parameter named param
func uuidParam(c *gin.Context, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + label + ": invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// phaseNumber parses the :number path parameter
func phaseNumber(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("number"))
	if err != nil || n < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid phase number: must be a positive integer"})
		return 0, false
	}
	return n, true
}

// optionalInt parses an optional positive integer query parameter
func optionalInt(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name + ": must be a positive integer"})
		return nil, false
	}
	return &n, true
}
