package handlers

import (
	"net/http"

	"growth-roadmap-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OKRHandler handles HTTP requests for key results
type OKRHandler struct {
	service service.OKRServiceInterface
}

// NewOKRHandler creates a new OKR handler
func NewOKRHandler(service service.OKRServiceInterface) *OKRHandler {
	return &OKRHandler{service: service}
}

// GetStatus handles GET /api/v1/organizations/:id/okrs/status
// @Summary Get OKR status
// @Description Report whether the organization has generated OKRs. Objective progress is only shown when it has.
// @Tags okrs
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OKRStatusResponse "OKR status"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id}/okrs/status [get]
func (h *OKRHandler) GetStatus(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	status, err := h.service.GetStatus(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err, "Failed to get OKR status")
		return
	}

	c.JSON(http.StatusOK, status)
}

// CreateKeyResult handles POST /api/v1/organizations/:id/key-results
// @Summary Create key result
// @Description Add a key result to the organization's OKRs
// @Tags okrs
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param keyResult body service.CreateKeyResultRequest true "Key result data"
// @Success 201 {object} models.KeyResult "Successfully created key result"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id}/key-results [post]
func (h *OKRHandler) CreateKeyResult(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var req service.CreateKeyResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	kr, err := h.service.CreateKeyResult(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to create key result")
		return
	}

	c.JSON(http.StatusCreated, kr)
}

// UpdateKeyResultProgress handles PUT /api/v1/organizations/:id/key-results/:krId/progress
// @Summary Update key result progress
// @Description Set the current value of a key result. Phase progress is recomputed afterwards.
// @Tags okrs
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param krId path string true "Key result ID (UUID)"
// @Param progress body service.UpdateKeyResultProgressRequest true "New current value"
// @Success 200 {object} models.KeyResult "Updated key result"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Key result not found"
// @Security BearerAuth
// @Router /organizations/{id}/key-results/{krId}/progress [put]
func (h *OKRHandler) UpdateKeyResultProgress(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	krID, ok := uuidParam(c, "krId", "key result ID")
	if !ok {
		return
	}

	var req service.UpdateKeyResultProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	kr, err := h.service.UpdateKeyResultProgress(c.Request.Context(), orgID, krID, &req)
	if err != nil {
		respondError(c, err, "Failed to update key result progress")
		return
	}

	c.JSON(http.StatusOK, kr)
}

// GetObjectiveProgress handles GET /api/v1/organizations/:id/key-results/:krId/progress
// @Summary Get key result progress
// @Description Get the completion percentage of a key result
// @Tags okrs
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param krId path string true "Key result ID (UUID)"
// @Success 200 {object} service.ObjectiveProgressResponse "Key result progress"
// @Failure 400 {object} ErrorResponse "Invalid key result ID"
// @Failure 404 {object} ErrorResponse "Key result not found"
// @Security BearerAuth
// @Router /organizations/{id}/key-results/{krId}/progress [get]
func (h *OKRHandler) GetObjectiveProgress(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	krID, ok := uuidParam(c, "krId", "key result ID")
	if !ok {
		return
	}

	progress, err := h.service.GetObjectiveProgress(c.Request.Context(), orgID, krID)
	if err != nil {
		respondError(c, err, "Failed to get key result progress")
		return
	}

	c.JSON(http.StatusOK, progress)
}
