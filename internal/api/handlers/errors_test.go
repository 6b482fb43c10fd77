package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "growth-roadmap-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{"Validation", apperrors.NewValidationError("Title", "required"), http.StatusBadRequest, "validation error: Title - required"},
		{"NotFound", apperrors.ErrPhaseNotFound, http.StatusNotFound, "phase not found"},
		{"WrappedNotFound", fmt.Errorf("activate: %w", apperrors.ErrPhaseNotFound), http.StatusNotFound, "activate: phase not found"},
		{"AlreadyExists", apperrors.ErrRoadmapExists, http.StatusConflict, "roadmap already exists for this organization"},
		{"Precondition", apperrors.ErrNoRegenerationsRemaining, http.StatusConflict, "cannot regenerate phase: no regenerations remaining"},
		{"GenerationFailure", apperrors.NewGenerationFailure("regenerate phase", errors.New("timeout")), http.StatusBadGateway, "content generation failed during regenerate phase: timeout"},
		{"Authentication", apperrors.ErrMissingClaims, http.StatusUnauthorized, "token claims not found in context"},
		{"Authorization", apperrors.ErrInsufficientRole, http.StatusForbidden, "role is not allowed to perform this operation"},
		{"Configuration", apperrors.ErrGeneratorNotConfigured, http.StatusServiceUnavailable, apperrors.ErrGeneratorNotConfigured.Error()},
		{"Internal", errors.New("boom"), http.StatusInternalServerError, "Failed to do it"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tc.err, "Failed to do it")

			assert.Equal(t, tc.expectedStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), `"error":"`+tc.expectedError+`"`)
		})
	}
}

func TestRespondErrorInternalIncludesDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, errors.New("pq: connection refused"), "Failed to get roadmap")

	assert.JSONEq(t, `{"error":"Failed to get roadmap","details":"pq: connection refused"}`, recorder.Body.String())
}

func TestPhaseNumber(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		raw      string
		expected int
		ok       bool
	}{
		{"1", 1, true},
		{"12", 12, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"first", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Params = gin.Params{{Key: "number", Value: tc.raw}}

			n, ok := phaseNumber(c)

			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, n)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
			}
		})
	}
}
