package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cargodeploy-backend/internal/database/models"
	apperrors "cargodeploy-backend/internal/errors"
	"cargodeploy-backend/internal/logger"
	"cargodeploy-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for the authenticated user's account
type UserService struct {
	users        repository.UserRepositoryInterface
	projects     repository.ProjectRepositoryInterface
	inspector    InstallationInspector
	validator    *validator.Validate
	defaultQuota int
}

// NewUserService creates a new user service. inspector may be nil when no GitHub App is configured.
func NewUserService(
	users repository.UserRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	inspector InstallationInspector,
	validator *validator.Validate,
	defaultQuota int,
) *UserService {
	if defaultQuota <= 0 {
		defaultQuota = 3
	}
	return &UserService{
		users:        users,
		projects:     projects,
		inspector:    inspector,
		validator:    validator,
		defaultQuota: defaultQuota,
	}
}

// UpdateUserRequest represents the editable profile fields
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
}

// LinkInstallationRequest links a GitHub App installation to the caller
type LinkInstallationRequest struct {
	InstallationID int64 `json:"installation_id" validate:"required,gt=0" example:"41000001"`
}

// UserResponse represents the caller's account with quota usage
type UserResponse struct {
	ID                   uuid.UUID `json:"id"`
	ExternalID           string    `json:"external_id"`
	Email                string    `json:"email"`
	Name                 string    `json:"name"`
	QuotaLimit           int       `json:"quota_limit"`
	ProjectCount         int64     `json:"project_count"`
	GitHubInstallationID *int64    `json:"github_installation_id,omitempty"`
	CreatedAt            string    `json:"created_at"`
	UpdatedAt            string    `json:"updated_at"`
}

// RepositoryListResponse lists the repositories the caller's installation can deploy
type RepositoryListResponse struct {
	InstallationID int64                    `json:"installation_id"`
	Repositories   []InstallationRepository `json:"repositories"`
}

// GetCurrentUser returns the caller's account, provisioning it on first sign-in
func (s *UserService) GetCurrentUser(ctx context.Context, owner Owner) (*UserResponse, error) {
	user, err := s.provision(ctx, owner)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, user)
}

// UpdateCurrentUser updates the caller's profile fields
func (s *UserService) UpdateCurrentUser(ctx context.Context, owner Owner, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	user, err := s.provision(ctx, owner)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.toResponse(ctx, user)
}

// LinkInstallation stores the caller's GitHub App installation after checking the app can use it
func (s *UserService) LinkInstallation(ctx context.Context, owner Owner, req *LinkInstallationRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if s.inspector == nil {
		return nil, apperrors.ErrGitHubAppNotConfigured
	}
	user, err := s.provision(ctx, owner)
	if err != nil {
		return nil, err
	}
	log := logger.WithContext(ctx).WithField("installation_id", req.InstallationID)

	if _, err := s.inspector.ListRepositories(ctx, req.InstallationID); err != nil {
		log.Warnf("Installation could not be verified: %v", err)
		return nil, apperrors.NewValidationError("installation_id", "installation is not accessible to the GitHub App")
	}

	id := req.InstallationID
	user.GitHubInstallationID = &id
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to link installation: %w", err)
	}
	log.Info("GitHub App installation linked")
	return s.toResponse(ctx, user)
}

// ListRepositories lists the repositories granted to the caller's installation
func (s *UserService) ListRepositories(ctx context.Context, owner Owner) (*RepositoryListResponse, error) {
	if s.inspector == nil {
		return nil, apperrors.ErrGitHubAppNotConfigured
	}
	user, err := s.provision(ctx, owner)
	if err != nil {
		return nil, err
	}
	if user.GitHubInstallationID == nil {
		return nil, apperrors.ErrInstallationMissing
	}

	repos, err := s.inspector.ListRepositories(ctx, *user.GitHubInstallationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}
	if repos == nil {
		repos = []InstallationRepository{}
	}
	return &RepositoryListResponse{InstallationID: *user.GitHubInstallationID, Repositories: repos}, nil
}

func (s *UserService) provision(ctx context.Context, owner Owner) (*models.User, error) {
	if owner.ExternalID == "" {
		return nil, apperrors.ErrMissingIdentity
	}
	user, err := s.users.GetByExternalID(ctx, owner.ExternalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user = &models.User{
		ExternalID: owner.ExternalID,
		Email:      owner.Email,
		QuotaLimit: s.defaultQuota,
	}
	if err := s.users.FirstOrCreate(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	logger.WithContext(ctx).WithField("user_id", user.ID).Info("User provisioned")
	return user, nil
}

func (s *UserService) toResponse(ctx context.Context, user *models.User) (*UserResponse, error) {
	count, err := s.projects.CountByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	return &UserResponse{
		ID:                   user.ID,
		ExternalID:           user.ExternalID,
		Email:                user.Email,
		Name:                 user.Name,
		QuotaLimit:           user.QuotaLimit,
		ProjectCount:         count,
		GitHubInstallationID: user.GitHubInstallationID,
		CreatedAt:            user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            user.UpdatedAt.Format(time.RFC3339),
	}, nil
}
