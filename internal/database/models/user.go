package models

// User owns projects. ExternalID is the subject of the bearer token issued by the identity provider.
type User struct {
	BaseModel
	ExternalID           string `json:"external_id" gorm:"uniqueIndex;not null;size:255" validate:"required,max=255"`
	Email                string `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Name                 string `json:"name" gorm:"size:200"`
	QuotaLimit           int    `json:"quota_limit" gorm:"not null;default:3"`
	GitHubInstallationID *int64 `json:"github_installation_id,omitempty"`

	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
