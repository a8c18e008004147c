package models

import "github.com/google/uuid"

// Log accumulates the streamed build output of one deployment, newline-joined
type Log struct {
	BaseModel
	DeploymentID uuid.UUID `json:"deployment_id" gorm:"type:uuid;not null;uniqueIndex"`
	Message      string    `json:"message" gorm:"type:text;not null;default:''"`
}

// TableName returns the table name for Log
func (Log) TableName() string {
	return "logs"
}
