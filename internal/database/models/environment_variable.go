package models

import "github.com/google/uuid"

// EnvironmentVariable is one key/value pair handed to the build. Keys are unique per project.
type EnvironmentVariable struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_env_vars_project_key,priority:1"`
	Key       string    `json:"key" gorm:"not null;size:255;uniqueIndex:idx_env_vars_project_key,priority:2" validate:"required,max=255"`
	Value     string    `json:"value" gorm:"type:text"`
	Position  int       `json:"position" gorm:"not null;default:0"`
}

// TableName returns the table name for EnvironmentVariable
func (EnvironmentVariable) TableName() string {
	return "environment_variables"
}
