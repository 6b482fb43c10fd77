package handlers

import (
	"net/http"
	"strconv"

	"growth-roadmap-backend/internal/auth"
	"growth-roadmap-backend/internal/repository"
	"growth-roadmap-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskHandler handles HTTP requests for tasks and the completion ledger
type TaskHandler struct {
	service service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(service service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{service: service}
}

// CreateTask handles POST /api/v1/organizations/:id/tasks
// @Summary Create task
// @Description Add a task to a phase, optionally linked to a key result
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} models.Task "Successfully created task"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Organization or key result not found"
// @Security BearerAuth
// @Router /organizations/{id}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks handles GET /api/v1/organizations/:id/tasks
// @Summary List tasks
// @Description List the organization's tasks, optionally for one phase
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param phase query int false "Phase number"
// @Success 200 {array} models.Task "Tasks"
// @Failure 400 {object} ErrorResponse "Invalid query parameter"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id}/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	phase, ok := optionalInt(c, "phase")
	if !ok {
		return
	}

	tasks, err := h.service.ListTasks(c.Request.Context(), orgID, phase)
	if err != nil {
		respondError(c, err, "Failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// RecordCompletion handles POST /api/v1/organizations/:id/tasks/:taskId/completions
// @Summary Complete task
// @Description Record that the authenticated user completed a task. The completion awaits leader validation.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param taskId path string true "Task ID (UUID)"
// @Success 201 {object} models.TaskCompletion "Recorded completion"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 409 {object} ErrorResponse "Task already completed by this user"
// @Security BearerAuth
// @Router /organizations/{id}/tasks/{taskId}/completions [post]
func (h *TaskHandler) RecordCompletion(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	taskID, ok := uuidParam(c, "taskId", "task ID")
	if !ok {
		return
	}
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	completion, err := h.service.RecordCompletion(c.Request.Context(), orgID, taskID, userID)
	if err != nil {
		respondError(c, err, "Failed to record task completion")
		return
	}

	c.JSON(http.StatusCreated, completion)
}

// ListCompletions handles GET /api/v1/organizations/:id/task-completions
// @Summary List task completions
// @Description List the completion ledger of an organization
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param phase query int false "Phase number"
// @Param task_id query string false "Task ID (UUID)"
// @Param validated query bool false "Only validated (true) or only unvalidated (false) completions"
// @Success 200 {array} models.TaskCompletion "Task completions"
// @Failure 400 {object} ErrorResponse "Invalid query parameter"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id}/task-completions [get]
func (h *TaskHandler) ListCompletions(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var filter repository.CompletionFilter
	if filter.Phase, ok = optionalInt(c, "phase"); !ok {
		return
	}
	if raw := c.Query("task_id"); raw != "" {
		taskID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid task_id: invalid UUID format"})
			return
		}
		filter.TaskID = &taskID
	}
	if raw := c.Query("validated"); raw != "" {
		validated, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid validated: must be true or false"})
			return
		}
		filter.ValidatedOnly = validated
		filter.UnvalidatedOnly = !validated
	}

	completions, err := h.service.ListCompletions(c.Request.Context(), orgID, filter)
	if err != nil {
		respondError(c, err, "Failed to list task completions")
		return
	}

	c.JSON(http.StatusOK, completions)
}

// ValidateCompletion handles POST /api/v1/organizations/:id/task-completions/:completionId/validate
// @Summary Validate task completion
// @Description Mark a task completion as validated by the authenticated leader. Phase progress is recomputed afterwards.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param completionId path string true "Task completion ID (UUID)"
// @Success 200 {object} models.TaskCompletion "Validated completion"
// @Failure 400 {object} ErrorResponse "Invalid completion ID"
// @Failure 403 {object} ErrorResponse "Leader role required"
// @Failure 404 {object} ErrorResponse "Task completion not found"
// @Failure 409 {object} ErrorResponse "Completion already validated"
// @Security BearerAuth
// @Router /organizations/{id}/task-completions/{completionId}/validate [post]
func (h *TaskHandler) ValidateCompletion(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	completionID, ok := uuidParam(c, "completionId", "completion ID")
	if !ok {
		return
	}
	leaderID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	completion, err := h.service.ValidateCompletion(c.Request.Context(), orgID, completionID, leaderID)
	if err != nil {
		respondError(c, err, "Failed to validate task completion")
		return
	}

	c.JSON(http.StatusOK, completion)
}
