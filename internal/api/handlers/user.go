package handlers

import (
	"net/http"

	"cargodeploy-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for the authenticated user's account
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetCurrentUser handles GET /users/me
// @Summary Get current user
// @Description Return the caller's account with quota usage. The account is created with the default quota on first call.
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse "Current user"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /v1/users/me [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}

	user, err := h.userService.GetCurrentUser(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateCurrentUser handles PATCH /users/me
// @Summary Update current user
// @Description Update the caller's display name or email
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.UpdateUserRequest true "Profile fields"
// @Success 200 {object} service.UserResponse "Updated user"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /v1/users/me [patch]
func (h *UserHandler) UpdateCurrentUser(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateCurrentUser(c.Request.Context(), owner, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// LinkInstallation handles PUT /users/me/installation
// @Summary Link GitHub App installation
// @Description Store the GitHub App installation used to clone the caller's private repositories. The installation must be reachable by the app.
// @Tags users
// @Accept json
// @Produce json
// @Param installation body service.LinkInstallationRequest true "Installation"
// @Success 200 {object} service.UserResponse "Installation linked"
// @Failure 400 {object} ErrorResponse "Invalid or inaccessible installation"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 503 {object} ErrorResponse "GitHub App not configured"
// @Security BearerAuth
// @Router /v1/users/me/installation [put]
func (h *UserHandler) LinkInstallation(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}

	var req service.LinkInstallationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.LinkInstallation(c.Request.Context(), owner, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListRepositories handles GET /users/me/repositories
// @Summary List installation repositories
// @Description List the repositories the caller's GitHub App installation grants access to
// @Tags users
// @Produce json
// @Success 200 {object} service.RepositoryListResponse "Repositories"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 412 {object} ErrorResponse "No installation linked"
// @Failure 503 {object} ErrorResponse "GitHub App not configured"
// @Security BearerAuth
// @Router /v1/users/me/repositories [get]
func (h *UserHandler) ListRepositories(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}

	repos, err := h.userService.ListRepositories(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, repos)
}
