package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	apperrors "cargodeploy-backend/internal/errors"
	"cargodeploy-backend/internal/logger"
	"cargodeploy-backend/internal/service"
	"cargodeploy-backend/internal/stream"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// StreamHub tracks live subscribers per deployment
type StreamHub interface {
	Register(deploymentID string, client stream.Subscriber)
	Unregister(deploymentID string, client stream.Subscriber)
}

// DeploymentHandler handles read access to deployments, their logs and live streams
type DeploymentHandler struct {
	projectService service.ProjectServiceInterface
	logService     service.LogServiceInterface
	hub            StreamHub
	upgrader       websocket.Upgrader
}

// NewDeploymentHandler creates a new deployment handler. allowedOrigins limits websocket origins; "*" allows any.
func NewDeploymentHandler(projectService service.ProjectServiceInterface, logService service.LogServiceInterface, hub StreamHub, allowedOrigins []string) *DeploymentHandler {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = struct{}{}
	}
	return &DeploymentHandler{
		projectService: projectService,
		logService:     logService,
		hub:            hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := origins[origin]
				_, wildcard := origins["*"]
				return ok || wildcard
			},
		},
	}
}

// GetDeployment handles GET /deployments/:id
// @Summary Get deployment by ID
// @Description Get a deployment of one of the caller's projects
// @Tags deployments
// @Produce json
// @Param id path string true "Deployment ID (UUID)"
// @Success 200 {object} service.DeploymentResponse "Successfully retrieved deployment"
// @Failure 400 {object} ErrorResponse "Invalid deployment ID"
// @Failure 403 {object} ErrorResponse "Deployment belongs to another user's project"
// @Failure 404 {object} ErrorResponse "Deployment not found"
// @Security BearerAuth
// @Router /v1/deployments/{id} [get]
func (h *DeploymentHandler) GetDeployment(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "deployment")
	if !ok {
		return
	}

	deployment, err := h.projectService.GetDeployment(c.Request.Context(), owner, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deployment)
}

// GetLogs handles GET /deployments/:id/logs
// @Summary Get deployment logs
// @Description Get everything the build has logged so far
// @Tags deployments
// @Produce json
// @Param id path string true "Deployment ID (UUID)"
// @Success 200 {object} service.LogResponse "Accumulated log output"
// @Failure 400 {object} ErrorResponse "Invalid deployment ID"
// @Failure 403 {object} ErrorResponse "Deployment belongs to another user's project"
// @Failure 404 {object} ErrorResponse "Deployment or log not found"
// @Security BearerAuth
// @Router /v1/deployments/{id}/logs [get]
func (h *DeploymentHandler) GetLogs(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "deployment")
	if !ok {
		return
	}

	if _, err := h.projectService.GetDeployment(c.Request.Context(), owner, id); err != nil {
		respondError(c, err)
		return
	}

	logs, err := h.logService.GetLogs(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

// Stream handles GET /deployments/:id/stream
// @Summary Stream deployment events
// @Description Upgrade to a websocket that first replays the log so far and the current status, then pushes log lines and status changes as they happen
// @Tags deployments
// @Param id path string true "Deployment ID (UUID)"
// @Param access_token query string false "Bearer token, for clients that cannot set headers"
// @Success 101 "Switching protocols"
// @Failure 403 {object} ErrorResponse "Deployment belongs to another user's project"
// @Failure 404 {object} ErrorResponse "Deployment not found"
// @Security BearerAuth
// @Router /v1/deployments/{id}/stream [get]
func (h *DeploymentHandler) Stream(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "deployment")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	log := logger.WithContext(ctx).WithField("deployment_id", id)

	deployment, err := h.projectService.GetDeployment(ctx, owner, id)
	if err != nil {
		respondError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warnf("Websocket upgrade failed: %v", err)
		return
	}
	client := stream.NewClient(conn, log.Entry)

	key := id.String()
	h.hub.Register(key, client)
	defer func() {
		h.hub.Unregister(key, client)
		client.Close()
	}()

	// Replay what happened before the client connected
	if existing, err := h.logService.GetLogs(ctx, id); err == nil && existing.Message != "" {
		h.sendSnapshot(client, stream.Event{
			Type:         stream.EventLog,
			DeploymentID: key,
			Lines:        strings.Split(existing.Message, "\n"),
			Timestamp:    time.Now().UTC(),
		})
	} else if err != nil && !errors.Is(err, apperrors.ErrLogNotFound) {
		log.Warnf("Failed to load logs for stream replay: %v", err)
	}
	h.sendSnapshot(client, stream.Event{
		Type:         stream.EventStatus,
		DeploymentID: key,
		Status:       string(deployment.Status),
		Timestamp:    time.Now().UTC(),
	})

	client.Wait()
}

func (h *DeploymentHandler) sendSnapshot(client *stream.Client, event stream.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	_ = client.Send(payload)
}
