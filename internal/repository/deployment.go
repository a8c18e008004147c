package repository

import (
	"context"
	"errors"
	"time"

	"cargodeploy-backend/internal/database/models"
	apperrors "cargodeploy-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeploymentRepository handles database operations for deployments
type DeploymentRepository struct {
	db *gorm.DB
}

// NewDeploymentRepository creates a new deployment repository
func NewDeploymentRepository(db *gorm.DB) *DeploymentRepository {
	return &DeploymentRepository{db: db}
}

// Create inserts a deployment. Creating a second IN_PROGRESS row for a project
// violates idx_deployments_one_in_progress and yields apperrors.ErrDeploymentInFlight.
func (r *DeploymentRepository) Create(ctx context.Context, deployment *models.Deployment) error {
	if deployment.Status == "" {
		deployment.Status = models.DeploymentStatusPending
	}
	err := r.db.WithContext(ctx).Omit("Log").Create(deployment).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrDeploymentInFlight
	}
	return err
}

// GetByID retrieves a deployment by ID
func (r *DeploymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Deployment, error) {
	var deployment models.Deployment
	err := r.db.WithContext(ctx).First(&deployment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &deployment, nil
}

// SetStatus moves a deployment forward as a compare-and-set on its current status.
// Returns apperrors.ErrDeploymentNotFound, an InvalidTransitionError when the row is not
// in an allowed predecessor state, or apperrors.ErrDeploymentInFlight when promoting
// would create a second IN_PROGRESS row for the project.
func (r *DeploymentRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.DeploymentStatus) error {
	predecessors := status.Predecessors()
	if len(predecessors) == 0 {
		return apperrors.NewInvalidTransitionError("", string(status))
	}
	from := make([]string, 0, len(predecessors))
	for _, p := range predecessors {
		from = append(from, string(p))
	}

	res := r.db.WithContext(ctx).Model(&models.Deployment{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDeploymentInFlight
		}
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDeploymentNotFound
		}
		return err
	}
	return apperrors.NewInvalidTransitionError(string(current.Status), string(status))
}

// FindOldestPending returns the PENDING deployment created first, or nil when the queue is empty
func (r *DeploymentRepository) FindOldestPending(ctx context.Context, projectID uuid.UUID) (*models.Deployment, error) {
	return r.findFirst(ctx, projectID, models.DeploymentStatusPending)
}

// FindInProgress returns the project's IN_PROGRESS deployment, or nil when none runs
func (r *DeploymentRepository) FindInProgress(ctx context.Context, projectID uuid.UUID) (*models.Deployment, error) {
	return r.findFirst(ctx, projectID, models.DeploymentStatusInProgress)
}

func (r *DeploymentRepository) findFirst(ctx context.Context, projectID uuid.UUID, status models.DeploymentStatus) (*models.Deployment, error) {
	var deployments []models.Deployment
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND status = ?", projectID, string(status)).
		Order("created_at ASC, id ASC").
		Limit(1).
		Find(&deployments).Error
	if err != nil {
		return nil, err
	}
	if len(deployments) == 0 {
		return nil, nil
	}
	return &deployments[0], nil
}

// CountPending counts the project's queued deployments
func (r *DeploymentRepository) CountPending(ctx context.Context, projectID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Deployment{}).
		Where("project_id = ? AND status = ?", projectID, string(models.DeploymentStatusPending)).
		Count(&total).Error
	return total, err
}

// Touch bumps updated_at of an IN_PROGRESS deployment so the reaper treats it as alive
func (r *DeploymentRepository) Touch(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.Deployment{}).
		Where("id = ? AND status = ?", id, string(models.DeploymentStatusInProgress)).
		UpdateColumn("updated_at", time.Now()).Error
}

// GetByProjectID retrieves a project's deployments with pagination, newest first
func (r *DeploymentRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]models.Deployment, int64, error) {
	var deployments []models.Deployment
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Deployment{}).Where("project_id = ?", projectID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&deployments).Error
	if err != nil {
		return nil, 0, err
	}

	return deployments, total, nil
}

// FindStaleInProgress returns IN_PROGRESS deployments not updated since updatedBefore
func (r *DeploymentRepository) FindStaleInProgress(ctx context.Context, updatedBefore time.Time) ([]models.Deployment, error) {
	var deployments []models.Deployment
	err := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", string(models.DeploymentStatusInProgress), updatedBefore).
		Order("updated_at ASC").
		Find(&deployments).Error
	return deployments, err
}
