package testutils

import (
	"fmt"

	"cargodeploy-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test user with default values
func (f *UserFactory) Create() *models.User {
	suffix := uuid.New().String()[:8]
	return &models.User{
		ExternalID: "github|" + suffix,
		Email:      fmt.Sprintf("user-%s@example.com", suffix),
		Name:       "Test User",
		QuotaLimit: 3,
	}
}

// WithInstallation creates a test user that has installed the GitHub App
func (f *UserFactory) WithInstallation(installationID int64) *models.User {
	user := f.Create()
	user.GitHubInstallationID = &installationID
	return user
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test project with default values. UserID must be set by the caller.
func (f *ProjectFactory) Create() *models.Project {
	slug := "app-" + uuid.New().String()[:8]
	return &models.Project{
		Name:           "Test Project",
		SlugIdentifier: slug,
		GitHubRepoURL:  "https://github.com/example/" + slug,
		Branch:         "main",
		RootDir:        "./",
		BuildCommand:   "npm run build",
		InstallCommand: "npm ci",
	}
}

// WithUser creates a test project owned by userID
func (f *ProjectFactory) WithUser(userID uuid.UUID) *models.Project {
	project := f.Create()
	project.UserID = userID
	return project
}

// WithSlug creates a test project with a specific slug
func (f *ProjectFactory) WithSlug(slug string) *models.Project {
	project := f.Create()
	project.SlugIdentifier = slug
	return project
}

// DeploymentFactory provides methods to create test Deployment data
type DeploymentFactory struct{}

// NewDeploymentFactory creates a new DeploymentFactory
func NewDeploymentFactory() *DeploymentFactory {
	return &DeploymentFactory{}
}

// Create creates a PENDING test deployment. ProjectID must be set by the caller.
func (f *DeploymentFactory) Create() *models.Deployment {
	return &models.Deployment{
		Status:       models.DeploymentStatusPending,
		CommitID:     uuid.New().String()[:12],
		CommitMsg:    "Test commit",
		CommitAuthor: "tester",
	}
}

// WithProject creates a test deployment for projectID in the given status
func (f *DeploymentFactory) WithProject(projectID uuid.UUID, status models.DeploymentStatus) *models.Deployment {
	deployment := f.Create()
	deployment.ProjectID = projectID
	deployment.Status = status
	return deployment
}

// FactorySet provides all factories in one place
type FactorySet struct {
	User       *UserFactory
	Project    *ProjectFactory
	Deployment *DeploymentFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Project:    NewProjectFactory(),
		Deployment: NewDeploymentFactory(),
	}
}
