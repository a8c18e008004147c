package service

import (
	"context"
	"time"

	"cargodeploy-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// BuildTriggerClient submits jobs to the external build-execution service.
// A nil error means the job was accepted; failures are *apperrors.TriggerError.
type BuildTriggerClient interface {
	Submit(ctx context.Context, job *BuildJob) error
}

// CredentialProvider supplies short-lived clone tokens for private repositories
type CredentialProvider interface {
	GetCloneToken(ctx context.Context, installationID int64) (string, time.Time, error)
}

// InstallationInspector reads what a GitHub App installation grants access to
type InstallationInspector interface {
	ListRepositories(ctx context.Context, installationID int64) ([]InstallationRepository, error)
}

// LogSink persists build output and fans deployment events out to live subscribers
type LogSink interface {
	AppendLines(ctx context.Context, deploymentID uuid.UUID, lines []string) error
	NotifyStatus(ctx context.Context, deploymentID uuid.UUID, status models.DeploymentStatus)
}

// ProjectLocker serializes admission and queue decisions per project.
// The returned function releases the lock.
type ProjectLocker interface {
	Lock(ctx context.Context, projectID uuid.UUID) (func(), error)
}

// OrchestratorInterface defines the deployment queue operations
type OrchestratorInterface interface {
	CreateDeployment(ctx context.Context, projectID uuid.UUID, meta models.CommitMeta) (*models.Deployment, error)
	ResolveDeployment(ctx context.Context, deploymentID uuid.UUID, result models.DeploymentStatus) error
	AdvanceQueue(ctx context.Context, projectID uuid.UUID) error
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	CreateProject(ctx context.Context, owner Owner, req *CreateProjectRequest) (*CreateProjectResponse, error)
	GetProject(ctx context.Context, owner Owner, id uuid.UUID) (*ProjectResponse, error)
	ListProjects(ctx context.Context, owner Owner, page, pageSize int) (*ProjectListResponse, error)
	DeleteProject(ctx context.Context, owner Owner, id uuid.UUID) error
	CheckSlugAvailability(ctx context.Context, slug string) (bool, error)
	Redeploy(ctx context.Context, owner Owner, projectID uuid.UUID, meta models.CommitMeta) (*DeploymentResponse, error)
	ListDeployments(ctx context.Context, owner Owner, projectID uuid.UUID, page, pageSize int) (*DeploymentListResponse, error)
	GetDeployment(ctx context.Context, owner Owner, deploymentID uuid.UUID) (*DeploymentResponse, error)
}

// LogServiceInterface defines the interface for deployment log service
type LogServiceInterface interface {
	LogSink
	GetLogs(ctx context.Context, deploymentID uuid.UUID) (*LogResponse, error)
}

// UserServiceInterface defines the interface for the caller's account
type UserServiceInterface interface {
	GetCurrentUser(ctx context.Context, owner Owner) (*UserResponse, error)
	UpdateCurrentUser(ctx context.Context, owner Owner, req *UpdateUserRequest) (*UserResponse, error)
	LinkInstallation(ctx context.Context, owner Owner, req *LinkInstallationRequest) (*UserResponse, error)
	ListRepositories(ctx context.Context, owner Owner) (*RepositoryListResponse, error)
}
