package models

import (
	"github.com/google/uuid"
)

// Project is a connected repository plus the build configuration used for every deployment of it
type Project struct {
	BaseModel
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string    `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	SlugIdentifier string    `json:"slug_identifier" gorm:"uniqueIndex;not null;size:63" validate:"required,max=63"`
	GitHubRepoURL  string    `json:"github_repo_url" gorm:"column:github_repo_url;not null;size:500" validate:"required,url"`
	Branch         string    `json:"branch" gorm:"not null;size:255;default:'main'"`
	RootDir        string    `json:"root_dir" gorm:"not null;size:255;default:'./'"`
	BuildCommand   string    `json:"build_command" gorm:"size:500"`
	InstallCommand string    `json:"install_command" gorm:"size:500"`
	IsPrivate      bool      `json:"is_private" gorm:"not null;default:false"`
	IsDeployed     bool      `json:"is_deployed" gorm:"not null;default:false"`

	// Relationships
	Owner                User                  `json:"-" gorm:"foreignKey:UserID"`
	EnvironmentVariables []EnvironmentVariable `json:"environment_variables,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Deployments          []Deployment          `json:"deployments,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
