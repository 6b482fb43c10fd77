package handlers

import (
	"errors"
	"io"
	"net/http"

	"growth-roadmap-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RoadmapHandler handles HTTP requests for an organization's phase roadmap
type RoadmapHandler struct {
	service service.PhaseServiceInterface
}

// NewRoadmapHandler creates a new roadmap handler
func NewRoadmapHandler(service service.PhaseServiceInterface) *RoadmapHandler {
	return &RoadmapHandler{service: service}
}

// GetRoadmap handles GET /api/v1/organizations/:id/roadmap
// @Summary Get roadmap
// @Description Get all phases of an organization ordered by phase number, with progress and available actions
// @Tags roadmap
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} progression.RoadmapView "Successfully retrieved roadmap"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/roadmap [get]
func (h *RoadmapHandler) GetRoadmap(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	roadmap, err := h.service.GetRoadmap(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err, "Failed to get roadmap")
		return
	}

	c.JSON(http.StatusOK, roadmap)
}

// GenerateRoadmap handles POST /api/v1/organizations/:id/roadmap/generate
// @Summary Generate roadmap
// @Description Generate the initial phases of an organization's roadmap. Phase 1 starts active.
// @Tags roadmap
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param request body service.GenerateRoadmapRequest false "Generation options"
// @Success 201 {object} progression.RoadmapView "Successfully generated roadmap"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 409 {object} ErrorResponse "Roadmap already exists"
// @Failure 502 {object} ErrorResponse "Content generation failed"
// @Failure 503 {object} ErrorResponse "Content generator not configured"
// @Security BearerAuth
// @Router /organizations/{id}/roadmap/generate [post]
func (h *RoadmapHandler) GenerateRoadmap(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	// The body is optional
	var req service.GenerateRoadmapRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
			return
		}
	}

	roadmap, err := h.service.GenerateRoadmap(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to generate roadmap")
		return
	}

	c.JSON(http.StatusCreated, roadmap)
}

// Recompute handles POST /api/v1/organizations/:id/roadmap/recompute
// @Summary Recompute progress
// @Description Recompute objectives and checklist completion from the task ledger and key results. Status is never changed.
// @Tags roadmap
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param phase query int false "Only recompute this phase number"
// @Success 200 {array} service.RecomputeResult "Recomputed phases with inconsistency warnings"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Organization or phase not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/roadmap/recompute [post]
func (h *RoadmapHandler) Recompute(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	phase, ok := optionalInt(c, "phase")
	if !ok {
		return
	}

	if phase != nil {
		result, err := h.service.RecomputePhase(c.Request.Context(), orgID, *phase)
		if err != nil {
			respondError(c, err, "Failed to recompute phase")
			return
		}
		c.JSON(http.StatusOK, []service.RecomputeResult{*result})
		return
	}

	results, err := h.service.RecomputeOrganization(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err, "Failed to recompute roadmap")
		return
	}

	c.JSON(http.StatusOK, results)
}

// ActivationPreview handles GET /api/v1/organizations/:id/phases/:number/activation-preview
// @Summary Preview phase activation
// @Description Show the tasks that would move into focus if the phase were activated
// @Tags roadmap
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param number path int true "Phase number"
// @Success 200 {object} progression.ActivationPreview "Activation preview"
// @Failure 400 {object} ErrorResponse "Invalid phase number"
// @Failure 404 {object} ErrorResponse "Phase not found"
// @Failure 409 {object} ErrorResponse "Phase cannot be activated"
// @Security BearerAuth
// @Router /organizations/{id}/phases/{number}/activation-preview [get]
func (h *RoadmapHandler) ActivationPreview(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	number, ok := phaseNumber(c)
	if !ok {
		return
	}

	preview, err := h.service.ActivationPreview(c.Request.Context(), orgID, number)
	if err != nil {
		respondError(c, err, "Failed to preview activation")
		return
	}

	c.JSON(http.StatusOK, preview)
}

// Activate handles POST /api/v1/organizations/:id/phases/:number/activate
// @Summary Activate phase
// @Description Make a pending phase the active one. The previously active phase is completed as superseded.
// @Tags roadmap
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param number path int true "Phase number"
// @Success 200 {object} progression.RoadmapView "Updated roadmap"
// @Failure 400 {object} ErrorResponse "Invalid phase number"
// @Failure 404 {object} ErrorResponse "Phase not found"
// @Failure 409 {object} ErrorResponse "Phase cannot be activated"
// @Security BearerAuth
// @Router /organizations/{id}/phases/{number}/activate [post]
func (h *RoadmapHandler) Activate(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	number, ok := phaseNumber(c)
	if !ok {
		return
	}

	roadmap, err := h.service.Activate(c.Request.Context(), orgID, number)
	if err != nil {
		respondError(c, err, "Failed to activate phase")
		return
	}

	c.JSON(http.StatusOK, roadmap)
}

// Regenerate handles POST /api/v1/organizations/:id/phases/:number/regenerate
// @Summary Regenerate phase content
// @Description Replace a phase's objectives, checklist and playbook with freshly generated content. Limited per phase.
// @Tags roadmap
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param number path int true "Phase number"
// @Success 200 {object} progression.PhaseView "Regenerated phase"
// @Failure 400 {object} ErrorResponse "Invalid phase number"
// @Failure 404 {object} ErrorResponse "Phase not found"
// @Failure 409 {object} ErrorResponse "No regenerations remaining"
// @Failure 502 {object} ErrorResponse "Content generation failed"
// @Failure 503 {object} ErrorResponse "Content generator not configured"
// @Security BearerAuth
// @Router /organizations/{id}/phases/{number}/regenerate [post]
func (h *RoadmapHandler) Regenerate(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	number, ok := phaseNumber(c)
	if !ok {
		return
	}

	phase, err := h.service.Regenerate(c.Request.Context(), orgID, number)
	if err != nil {
		respondError(c, err, "Failed to regenerate phase")
		return
	}

	c.JSON(http.StatusOK, phase)
}

// Skip handles POST /api/v1/organizations/:id/phases/:number/skip
// @Summary Skip phase
// @Description Mark a pending or active phase as skipped
// @Tags roadmap
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param number path int true "Phase number"
// @Success 200 {object} progression.RoadmapView "Updated roadmap"
// @Failure 400 {object} ErrorResponse "Invalid phase number"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Phase not found"
// @Failure 409 {object} ErrorResponse "Phase cannot be skipped"
// @Security BearerAuth
// @Router /organizations/{id}/phases/{number}/skip [post]
func (h *RoadmapHandler) Skip(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	number, ok := phaseNumber(c)
	if !ok {
		return
	}

	roadmap, err := h.service.Skip(c.Request.Context(), orgID, number)
	if err != nil {
		respondError(c, err, "Failed to skip phase")
		return
	}

	c.JSON(http.StatusOK, roadmap)
}
