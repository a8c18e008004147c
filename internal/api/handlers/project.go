package handlers

import (
	"net/http"

	"cargodeploy-backend/internal/database/models"
	apperrors "cargodeploy-backend/internal/errors"
	"cargodeploy-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for projects and their deployments
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject handles POST /projects
// @Summary Create a new project
// @Description Create a project with its environment variables and start its first deployment. If the build service refuses the first build the project is not kept.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} service.CreateProjectResponse "Project created and first deployment started"
// @Failure 400 {object} ErrorResponse "Invalid request body or quota exceeded"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 409 {object} ErrorResponse "Slug already taken or duplicate environment variable"
// @Failure 502 {object} ErrorResponse "Build service did not accept the first build"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /v1/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}

	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.projectService.CreateProject(c.Request.Context(), owner, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListProjects handles GET /projects
// @Summary List projects
// @Description List the caller's projects with pagination, newest first
// @Tags projects
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ProjectListResponse "Successfully retrieved projects"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /v1/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	resp, err := h.projectService.ListProjects(c.Request.Context(), owner, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProject handles GET /projects/:id
// @Summary Get project by ID
// @Description Get one of the caller's projects with its environment variables
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectResponse "Successfully retrieved project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 403 {object} ErrorResponse "Project belongs to another user"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /v1/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), owner, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete project
// @Description Delete a project together with its deployments, logs and environment variables
// @Tags projects
// @Param id path string true "Project ID (UUID)"
// @Success 204 "Project deleted"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 403 {object} ErrorResponse "Project belongs to another user"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /v1/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), owner, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckSlugAvailability handles GET /projects/slug-availability
// @Summary Check slug availability
// @Description Report whether a slug identifier is still free
// @Tags projects
// @Produce json
// @Param slug query string true "Slug identifier"
// @Success 200 {object} map[string]interface{} "Availability"
// @Failure 400 {object} ErrorResponse "Missing or malformed slug"
// @Security BearerAuth
// @Router /v1/projects/slug-availability [get]
func (h *ProjectHandler) CheckSlugAvailability(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug parameter is required"})
		return
	}

	available, err := h.projectService.CheckSlugAvailability(c.Request.Context(), slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slug": slug, "available": available})
}

// Redeploy handles POST /projects/:id/deployments
// @Summary Deploy a commit
// @Description Start a deployment, or queue it behind the project's running deployment
// @Tags deployments
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param commit body service.RedeployRequest false "Commit to deploy"
// @Success 201 {object} service.DeploymentResponse "Deployment started"
// @Success 202 {object} service.DeploymentResponse "Deployment queued"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Project belongs to another user"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 502 {object} map[string]interface{} "Build service did not accept the build; the deployment is FAILED"
// @Security BearerAuth
// @Router /v1/projects/{id}/deployments [post]
func (h *ProjectHandler) Redeploy(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	var req service.RedeployRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	deployment, err := h.projectService.Redeploy(c.Request.Context(), owner, id, req.CommitMeta)
	if err != nil {
		if deployment != nil && apperrors.IsTriggerError(err) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "deployment": deployment})
			return
		}
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if deployment.Status == models.DeploymentStatusPending {
		status = http.StatusAccepted
	}
	c.JSON(status, deployment)
}

// ListDeployments handles GET /projects/:id/deployments
// @Summary List deployments
// @Description List a project's deployments, newest first
// @Tags deployments
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.DeploymentListResponse "Successfully retrieved deployments"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 403 {object} ErrorResponse "Project belongs to another user"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /v1/projects/{id}/deployments [get]
func (h *ProjectHandler) ListDeployments(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	resp, err := h.projectService.ListDeployments(c.Request.Context(), owner, id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
