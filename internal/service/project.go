package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"cargodeploy-backend/internal/database/models"
	apperrors "cargodeploy-backend/internal/errors"
	"cargodeploy-backend/internal/logger"
	"cargodeploy-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// RegisterValidations adds the custom tags used by project requests
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
}

// Owner identifies the authenticated caller acting on projects
type Owner struct {
	ExternalID string
	Email      string
}

// ProjectService handles business logic for projects
type ProjectService struct {
	projects     repository.ProjectRepositoryInterface
	deployments  repository.DeploymentRepositoryInterface
	users        repository.UserRepositoryInterface
	orchestrator OrchestratorInterface
	validator    *validator.Validate
	defaultQuota int
}

// NewProjectService creates a new project service
func NewProjectService(
	projects repository.ProjectRepositoryInterface,
	deployments repository.DeploymentRepositoryInterface,
	users repository.UserRepositoryInterface,
	orchestrator OrchestratorInterface,
	validator *validator.Validate,
	defaultQuota int,
) *ProjectService {
	if defaultQuota <= 0 {
		defaultQuota = 3
	}
	return &ProjectService{
		projects:     projects,
		deployments:  deployments,
		users:        users,
		orchestrator: orchestrator,
		validator:    validator,
		defaultQuota: defaultQuota,
	}
}

// EnvVarRequest is one environment variable of a project
type EnvVarRequest struct {
	Key   string `json:"key" validate:"required,max=255"`
	Value string `json:"value"`
}

// CreateProjectRequest represents the request to create a project and its first deployment
type CreateProjectRequest struct {
	Name           string            `json:"name" validate:"required,min=1,max=255"`
	SlugIdentifier string            `json:"slug_identifier" validate:"required,max=63,slug" example:"my-app"`
	GitHubRepoURL  string            `json:"github_repo_url" validate:"required,url,max=500"`
	Branch         string            `json:"branch" validate:"omitempty,max=255" example:"main"`
	RootDir        string            `json:"root_dir" validate:"omitempty,max=255" example:"./"`
	BuildCommand   string            `json:"build_command" validate:"max=500"`
	InstallCommand string            `json:"install_command" validate:"max=500"`
	IsPrivate      bool              `json:"is_private"`
	EnvVars        []EnvVarRequest   `json:"env_vars" validate:"omitempty,dive"`
	Commit         models.CommitMeta `json:"commit"`
}

// RedeployRequest represents the request to deploy a commit of an existing project
type RedeployRequest struct {
	models.CommitMeta
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	SlugIdentifier string           `json:"slug_identifier"`
	GitHubRepoURL  string           `json:"github_repo_url"`
	Branch         string           `json:"branch"`
	RootDir        string           `json:"root_dir"`
	BuildCommand   string           `json:"build_command"`
	InstallCommand string           `json:"install_command"`
	IsPrivate      bool             `json:"is_private"`
	IsDeployed     bool             `json:"is_deployed"`
	EnvVars        []EnvVarResponse `json:"env_vars,omitempty"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}

// EnvVarResponse is an environment variable as returned to the owner
type EnvVarResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DeploymentResponse represents the response for deployment operations
type DeploymentResponse struct {
	ID           uuid.UUID               `json:"id"`
	ProjectID    uuid.UUID               `json:"project_id"`
	Status       models.DeploymentStatus `json:"status"`
	CommitID     string                  `json:"commit_id,omitempty"`
	CommitMsg    string                  `json:"commit_msg,omitempty"`
	CommitAuthor string                  `json:"commit_author,omitempty"`
	CreatedAt    string                  `json:"created_at"`
	UpdatedAt    string                  `json:"updated_at"`
}

// CreateProjectResponse carries the new project and its first deployment
type CreateProjectResponse struct {
	Project    ProjectResponse    `json:"project"`
	Deployment DeploymentResponse `json:"deployment"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// DeploymentListResponse represents a paginated list of deployments
type DeploymentListResponse struct {
	Deployments []DeploymentResponse `json:"deployments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// CreateProject validates the request, stores the project with its environment variables
// and creates its first deployment. If the first build cannot be triggered the project
// and everything created with it is removed again and the TriggerError is returned.
func (s *ProjectService) CreateProject(ctx context.Context, owner Owner, req *CreateProjectRequest) (*CreateProjectResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	log := logger.WithContext(ctx).WithField("slug", req.SlugIdentifier)

	user, err := s.resolveUser(ctx, owner)
	if err != nil {
		return nil, err
	}

	count, err := s.projects.CountByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	if count >= int64(user.QuotaLimit) {
		return nil, apperrors.ErrQuotaExceeded
	}

	available, err := s.CheckSlugAvailability(ctx, req.SlugIdentifier)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, apperrors.ErrSlugTaken
	}

	envVars := make([]models.EnvironmentVariable, 0, len(req.EnvVars))
	seen := make(map[string]struct{}, len(req.EnvVars))
	for _, ev := range req.EnvVars {
		if _, dup := seen[ev.Key]; dup {
			return nil, apperrors.ErrDuplicateEnvVarKey
		}
		seen[ev.Key] = struct{}{}
		envVars = append(envVars, models.EnvironmentVariable{Key: ev.Key, Value: ev.Value})
	}

	project := &models.Project{
		UserID:         user.ID,
		Name:           req.Name,
		SlugIdentifier: req.SlugIdentifier,
		GitHubRepoURL:  req.GitHubRepoURL,
		Branch:         defaultString(req.Branch, "main"),
		RootDir:        defaultString(req.RootDir, "./"),
		BuildCommand:   req.BuildCommand,
		InstallCommand: req.InstallCommand,
		IsPrivate:      req.IsPrivate,
	}
	if err := s.projects.Create(ctx, project, envVars); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	log = log.WithField("project_id", project.ID)

	deployment, err := s.orchestrator.CreateDeployment(ctx, project.ID, req.Commit)
	if err != nil {
		log.Warnf("First deployment failed, removing project: %v", err)
		if cleanupErr := s.projects.DeleteCascade(context.WithoutCancel(ctx), project.ID); cleanupErr != nil {
			log.Errorf("Failed to remove project after failed deployment: %v", cleanupErr)
		}
		return nil, err
	}

	log.Info("Project created")
	project.EnvironmentVariables = envVars
	return &CreateProjectResponse{
		Project:    *s.toProjectResponse(project),
		Deployment: *toDeploymentResponse(deployment),
	}, nil
}

// Redeploy queues or starts a new deployment of an owned project
func (s *ProjectService) Redeploy(ctx context.Context, owner Owner, projectID uuid.UUID, meta models.CommitMeta) (*DeploymentResponse, error) {
	if err := s.validator.Struct(meta); err != nil {
		return nil, validationError(err)
	}
	if _, err := s.ownedProject(ctx, owner, projectID); err != nil {
		return nil, err
	}

	deployment, err := s.orchestrator.CreateDeployment(ctx, projectID, meta)
	if err != nil {
		if deployment != nil && apperrors.IsTriggerError(err) {
			// The deployment exists and has been marked FAILED
			return toDeploymentResponse(deployment), err
		}
		return nil, err
	}
	return toDeploymentResponse(deployment), nil
}

// GetProject retrieves an owned project with its environment variables
func (s *ProjectService) GetProject(ctx context.Context, owner Owner, id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.ownedProject(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	envVars, err := s.projects.ListEnvVars(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get environment variables: %w", err)
	}
	project.EnvironmentVariables = envVars
	return s.toProjectResponse(project), nil
}

// ListProjects retrieves the caller's projects with pagination
func (s *ProjectService) ListProjects(ctx context.Context, owner Owner, page, pageSize int) (*ProjectListResponse, error) {
	user, err := s.resolveUser(ctx, owner)
	if err != nil {
		return nil, err
	}

	page, pageSize = normalizePage(page, pageSize)
	offset := (page - 1) * pageSize
	projects, total, err := s.projects.GetByUserID(ctx, user.ID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = *s.toProjectResponse(&project)
	}

	return &ProjectListResponse{
		Projects: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// DeleteProject removes an owned project with its deployments, logs and environment variables
func (s *ProjectService) DeleteProject(ctx context.Context, owner Owner, id uuid.UUID) error {
	if _, err := s.ownedProject(ctx, owner, id); err != nil {
		return err
	}
	if err := s.projects.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	logger.WithContext(ctx).WithField("project_id", id).Info("Project deleted")
	return nil
}

// CheckSlugAvailability reports whether no project uses slug yet
func (s *ProjectService) CheckSlugAvailability(ctx context.Context, slug string) (bool, error) {
	if !slugPattern.MatchString(slug) || len(slug) > 63 {
		return false, apperrors.NewValidationError("slug", "must be lowercase letters, digits and inner hyphens, at most 63 characters")
	}
	_, err := s.projects.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return false, nil
}

// ListDeployments retrieves an owned project's deployments, newest first
func (s *ProjectService) ListDeployments(ctx context.Context, owner Owner, projectID uuid.UUID, page, pageSize int) (*DeploymentListResponse, error) {
	if _, err := s.ownedProject(ctx, owner, projectID); err != nil {
		return nil, err
	}

	page, pageSize = normalizePage(page, pageSize)
	offset := (page - 1) * pageSize
	deployments, total, err := s.deployments.GetByProjectID(ctx, projectID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get deployments: %w", err)
	}

	responses := make([]DeploymentResponse, len(deployments))
	for i := range deployments {
		responses[i] = *toDeploymentResponse(&deployments[i])
	}

	return &DeploymentListResponse{
		Deployments: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// GetDeployment retrieves a deployment of an owned project
func (s *ProjectService) GetDeployment(ctx context.Context, owner Owner, deploymentID uuid.UUID) (*DeploymentResponse, error) {
	deployment, err := s.deployments.GetByID(ctx, deploymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDeploymentNotFound
		}
		return nil, fmt.Errorf("failed to get deployment: %w", err)
	}
	if _, err := s.ownedProject(ctx, owner, deployment.ProjectID); err != nil {
		return nil, err
	}
	return toDeploymentResponse(deployment), nil
}

func (s *ProjectService) validate(req *CreateProjectRequest) error {
	req.SlugIdentifier = strings.TrimSpace(req.SlugIdentifier)
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}
	return nil
}

// resolveUser loads the caller's user row, provisioning it with the default quota on first use
func (s *ProjectService) resolveUser(ctx context.Context, owner Owner) (*models.User, error) {
	if owner.ExternalID == "" {
		return nil, apperrors.ErrMissingIdentity
	}
	user := &models.User{
		ExternalID: owner.ExternalID,
		Email:      owner.Email,
		QuotaLimit: s.defaultQuota,
	}
	if err := s.users.FirstOrCreate(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	return user, nil
}

// ownedProject loads a project and checks the caller owns it
func (s *ProjectService) ownedProject(ctx context.Context, owner Owner, id uuid.UUID) (*models.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	user, err := s.users.GetByExternalID(ctx, owner.ExternalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectAccessDenied
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if project.UserID != user.ID {
		return nil, apperrors.ErrProjectAccessDenied
	}
	return project, nil
}

func (s *ProjectService) toProjectResponse(project *models.Project) *ProjectResponse {
	var envVars []EnvVarResponse
	for _, ev := range project.EnvironmentVariables {
		envVars = append(envVars, EnvVarResponse{Key: ev.Key, Value: ev.Value})
	}
	return &ProjectResponse{
		ID:             project.ID,
		Name:           project.Name,
		SlugIdentifier: project.SlugIdentifier,
		GitHubRepoURL:  project.GitHubRepoURL,
		Branch:         project.Branch,
		RootDir:        project.RootDir,
		BuildCommand:   project.BuildCommand,
		InstallCommand: project.InstallCommand,
		IsPrivate:      project.IsPrivate,
		IsDeployed:     project.IsDeployed,
		EnvVars:        envVars,
		CreatedAt:      project.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      project.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toDeploymentResponse(deployment *models.Deployment) *DeploymentResponse {
	return &DeploymentResponse{
		ID:           deployment.ID,
		ProjectID:    deployment.ProjectID,
		Status:       deployment.Status,
		CommitID:     deployment.CommitID,
		CommitMsg:    deployment.CommitMsg,
		CommitAuthor: deployment.CommitAuthor,
		CreatedAt:    deployment.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    deployment.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// validationError flattens validator output into a ValidationError naming the first bad field
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperrors.NewValidationError(strings.ToLower(fe.Field()), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("request", err.Error())
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func defaultString(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
