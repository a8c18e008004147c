package repository

import (
	"context"

	"cargodeploy-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LogRepository handles database operations for deployment logs
type LogRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new log repository
func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

// Append adds text to the deployment's log, creating the row on first write.
// Existing and new text are joined with a newline.
func (r *LogRepository) Append(ctx context.Context, deploymentID uuid.UUID, text string) error {
	entry := models.Log{DeploymentID: deploymentID, Message: text}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "deployment_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"message": gorm.Expr(
				"CASE WHEN logs.message = '' THEN EXCLUDED.message ELSE logs.message || E'\\n' || EXCLUDED.message END"),
			"updated_at": gorm.Expr("EXCLUDED.updated_at"),
		}),
	}).Create(&entry).Error
}

// GetByDeploymentID retrieves the log of a deployment
func (r *LogRepository) GetByDeploymentID(ctx context.Context, deploymentID uuid.UUID) (*models.Log, error) {
	var entry models.Log
	err := r.db.WithContext(ctx).First(&entry, "deployment_id = ?", deploymentID).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
