package repository

import (
	"context"

	"cargodeploy-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects and their environment variables
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a project and its environment variables in one transaction
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project, envVars []models.EnvironmentVariable) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("EnvironmentVariables", "Deployments", "Owner").Create(project).Error; err != nil {
			return err
		}
		if len(envVars) == 0 {
			return nil
		}
		for i := range envVars {
			envVars[i].ProjectID = project.ID
			envVars[i].Position = i
		}
		if err := tx.Create(&envVars).Error; err != nil {
			return err
		}
		project.EnvironmentVariables = envVars
		return nil
	})
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetBySlug retrieves a project by its slug identifier
func (r *ProjectRepository) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, "slug_identifier = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByUserID retrieves the projects owned by a user with pagination, newest first
func (r *ProjectRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Project{}).Where("user_id = ?", userID)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// CountByUserID counts the projects a user owns
func (r *ProjectRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}

// SetDeployed updates the derived isDeployed flag
func (r *ProjectRepository) SetDeployed(ctx context.Context, id uuid.UUID, deployed bool) error {
	res := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Update("is_deployed", deployed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListEnvVars returns the project's environment variables in their declared order
func (r *ProjectRepository) ListEnvVars(ctx context.Context, projectID uuid.UUID) ([]models.EnvironmentVariable, error) {
	var envVars []models.EnvironmentVariable
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("position ASC, created_at ASC").
		Find(&envVars).Error
	return envVars, err
}

// DeleteCascade removes logs, deployments, environment variables and the project itself in one transaction
func (r *ProjectRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deploymentIDs := tx.Model(&models.Deployment{}).Select("id").Where("project_id = ?", id)
		if err := tx.Where("deployment_id IN (?)", deploymentIDs).Delete(&models.Log{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Deployment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.EnvironmentVariable{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Project{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
