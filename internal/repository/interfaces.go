package repository

import (
	"context"
	"time"

	"cargodeploy-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
	FirstOrCreate(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(ctx context.Context, project *models.Project, envVars []models.EnvironmentVariable) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Project, int64, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	SetDeployed(ctx context.Context, id uuid.UUID, deployed bool) error
	ListEnvVars(ctx context.Context, projectID uuid.UUID) ([]models.EnvironmentVariable, error)
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

// DeploymentRepositoryInterface defines the interface for deployment repository operations
type DeploymentRepositoryInterface interface {
	Create(ctx context.Context, deployment *models.Deployment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Deployment, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.DeploymentStatus) error
	FindOldestPending(ctx context.Context, projectID uuid.UUID) (*models.Deployment, error)
	FindInProgress(ctx context.Context, projectID uuid.UUID) (*models.Deployment, error)
	CountPending(ctx context.Context, projectID uuid.UUID) (int64, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]models.Deployment, int64, error)
	FindStaleInProgress(ctx context.Context, updatedBefore time.Time) ([]models.Deployment, error)
	Touch(ctx context.Context, id uuid.UUID) error
}

// LogRepositoryInterface defines the interface for deployment log repository operations
type LogRepositoryInterface interface {
	Append(ctx context.Context, deploymentID uuid.UUID, text string) error
	GetByDeploymentID(ctx context.Context, deploymentID uuid.UUID) (*models.Log, error)
}
