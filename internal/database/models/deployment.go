package models

import "github.com/google/uuid"

// Deployment is one attempt to build and release a commit of a project.
// CreatedAt is the queue order key.
type Deployment struct {
	BaseModel
	ProjectID    uuid.UUID        `json:"project_id" gorm:"type:uuid;not null;index:idx_deployments_project_status,priority:1"`
	Status       DeploymentStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index:idx_deployments_project_status,priority:2"`
	CommitID     string           `json:"commit_id,omitempty" gorm:"size:64"`
	CommitMsg    string           `json:"commit_msg,omitempty" gorm:"type:text"`
	CommitAuthor string           `json:"commit_author,omitempty" gorm:"size:255"`

	Log *Log `json:"-" gorm:"foreignKey:DeploymentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Deployment
func (Deployment) TableName() string {
	return "deployments"
}

// CommitMeta is the optional commit information attached to a deployment at creation
type CommitMeta struct {
	CommitID     string `json:"commit_id,omitempty" validate:"omitempty,max=64"`
	CommitMsg    string `json:"commit_msg,omitempty"`
	CommitAuthor string `json:"commit_author,omitempty" validate:"omitempty,max=255"`
}
