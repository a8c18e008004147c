package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cargodeploy-backend/internal/database/models"
	apperrors "cargodeploy-backend/internal/errors"
	"cargodeploy-backend/internal/logger"
	"cargodeploy-backend/internal/repository"
	"cargodeploy-backend/internal/stream"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogService persists build output and pushes deployment events to live subscribers
type LogService struct {
	logs        repository.LogRepositoryInterface
	deployments repository.DeploymentRepositoryInterface
	publisher   stream.Publisher
}

// NewLogService creates a new log service
func NewLogService(logs repository.LogRepositoryInterface, deployments repository.DeploymentRepositoryInterface, publisher stream.Publisher) *LogService {
	return &LogService{
		logs:        logs,
		deployments: deployments,
		publisher:   publisher,
	}
}

// LogResponse represents the accumulated output of a deployment
type LogResponse struct {
	DeploymentID uuid.UUID `json:"deployment_id"`
	Message      string    `json:"message"`
	UpdatedAt    string    `json:"updated_at"`
}

// AppendLogsRequest represents a batch of build output lines
type AppendLogsRequest struct {
	Logs []string `json:"logs" validate:"required,min=1"`
}

// AppendLines stores lines for the deployment and forwards them to live subscribers
func (s *LogService) AppendLines(ctx context.Context, deploymentID uuid.UUID, lines []string) error {
	if len(lines) == 0 {
		return nil
	}

	deployment, err := s.deployments.GetByID(ctx, deploymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDeploymentNotFound
		}
		return fmt.Errorf("failed to load deployment: %w", err)
	}

	if err := s.logs.Append(ctx, deploymentID, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("failed to append logs: %w", err)
	}

	// Output is a sign of life; the reaper only fails deployments that went quiet
	if deployment.Status == models.DeploymentStatusInProgress {
		if err := s.deployments.Touch(ctx, deploymentID); err != nil {
			logger.WithContext(ctx).WithField("deployment_id", deploymentID).Warnf("Failed to refresh deployment activity: %v", err)
		}
	}

	s.publish(ctx, stream.Event{
		Type:         stream.EventLog,
		DeploymentID: deploymentID.String(),
		Lines:        lines,
		Timestamp:    time.Now().UTC(),
	})
	return nil
}

// NotifyStatus tells live subscribers a deployment changed state. Failures are only logged.
func (s *LogService) NotifyStatus(ctx context.Context, deploymentID uuid.UUID, status models.DeploymentStatus) {
	s.publish(ctx, stream.Event{
		Type:         stream.EventStatus,
		DeploymentID: deploymentID.String(),
		Status:       string(status),
		Timestamp:    time.Now().UTC(),
	})
}

func (s *LogService) publish(ctx context.Context, event stream.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"deployment_id": event.DeploymentID,
			"event":         event.Type,
		}).Warnf("Failed to publish deployment event: %v", err)
	}
}

// GetLogs returns everything logged for a deployment so far
func (s *LogService) GetLogs(ctx context.Context, deploymentID uuid.UUID) (*LogResponse, error) {
	entry, err := s.logs.GetByDeploymentID(ctx, deploymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLogNotFound
		}
		return nil, fmt.Errorf("failed to get logs: %w", err)
	}
	return &LogResponse{
		DeploymentID: entry.DeploymentID,
		Message:      entry.Message,
		UpdatedAt:    entry.UpdatedAt.Format(time.RFC3339),
	}, nil
}
