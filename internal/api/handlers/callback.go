package handlers

import (
	"net/http"
	"strings"

	"cargodeploy-backend/internal/database/models"
	"cargodeploy-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CallbackHandler receives results and build output from the build service
type CallbackHandler struct {
	orchestrator service.OrchestratorInterface
	logService   service.LogServiceInterface
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(orchestrator service.OrchestratorInterface, logService service.LogServiceInterface) *CallbackHandler {
	return &CallbackHandler{
		orchestrator: orchestrator,
		logService:   logService,
	}
}

// BuildResultRequest is sent by the build service when a build finishes
type BuildResultRequest struct {
	DeploymentID uuid.UUID `json:"deployment_id" binding:"required"`
	Status       string    `json:"status" binding:"required" example:"SUCCESS"`
}

// ResolveDeployment handles POST /internal/deployments/callback
// @Summary Report a build result
// @Description Mark an IN_PROGRESS deployment SUCCESS or FAILED and start the next queued deployment of its project
// @Tags internal
// @Accept json
// @Produce json
// @Param result body BuildResultRequest true "Build result"
// @Success 204 "Deployment resolved"
// @Failure 400 {object} ErrorResponse "Invalid body or status"
// @Failure 401 {object} ErrorResponse "Missing or wrong API key"
// @Failure 404 {object} ErrorResponse "Deployment not found"
// @Failure 409 {object} ErrorResponse "Deployment is not in progress"
// @Security ApiKeyAuth
// @Router /internal/deployments/callback [post]
func (h *CallbackHandler) ResolveDeployment(c *gin.Context) {
	var req BuildResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.DeploymentStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if err := h.orchestrator.ResolveDeployment(c.Request.Context(), req.DeploymentID, status); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AppendLogs handles POST /internal/deployments/:id/logs
// @Summary Ingest build output
// @Description Append lines to a deployment's log and push them to live subscribers
// @Tags internal
// @Accept json
// @Param id path string true "Deployment ID (UUID)"
// @Param logs body service.AppendLogsRequest true "Log lines"
// @Success 204 "Lines stored"
// @Failure 400 {object} ErrorResponse "Invalid body"
// @Failure 401 {object} ErrorResponse "Missing or wrong API key"
// @Failure 404 {object} ErrorResponse "Deployment not found"
// @Security ApiKeyAuth
// @Router /internal/deployments/{id}/logs [post]
func (h *CallbackHandler) AppendLogs(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "deployment")
	if !ok {
		return
	}

	var req service.AppendLogsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Logs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "logs must contain at least one line"})
		return
	}

	if err := h.logService.AppendLines(c.Request.Context(), id, req.Logs); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
